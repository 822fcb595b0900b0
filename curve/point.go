// Package curve implements projective short-Weierstrass elliptic curve
// arithmetic (y^2*z = x^3 + A*x*z^2 + B*z^3) over package field's F_p,
// generalizing _examples/original_source/cpp/mini/CurvePoint16.{hpp,cpp}
// from its 16-bit toy curve up to secp256k1, in the struct shape of
// _examples/mleku-p256k1/group.go (Generator/curve-constant var block).
package curve

import (
	"github.com/andcrypt/Bitcoin-Cryptography-Library/bigint"
	"github.com/andcrypt/Bitcoin-Cryptography-Library/field"
)

// Point is a curve point in projective coordinates (X:Y:Z). The point at
// infinity (the group identity) is represented by Z == 0, following
// CurvePoint16's default constructor (0,1,0).
type Point struct {
	X, Y, Z field.FieldInt
}

// Identity is the group identity (point at infinity).
var Identity = Point{X: field.Zero, Y: field.One, Z: field.Zero}

// Params holds the parameters of a short-Weierstrass curve y^2 = x^3 +
// A*x + B over F_p together with its generator and group order, mirroring
// CurvePoint16.hpp's static A/B/ORDER/G members.
type Params struct {
	A, B field.FieldInt
	G    Point
	N    bigint.Uint256
}

// Secp256k1 is the production curve: A=0, B=7, with the standard
// generator and group order.
var Secp256k1 = Params{
	A: field.Zero,
	B: field.FromUint64(7),
	G: Point{
		X: mustField("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798"),
		Y: mustField("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8"),
		Z: field.One,
	},
	N: bigint.MustFromHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141"),
}

func mustField(hexStr string) field.FieldInt {
	f, err := field.FromHex(hexStr)
	if err != nil {
		panic(err)
	}
	return f
}

// IsZero reports whether p is the point at infinity.
func (p Point) IsZero() bool { return p.Z.IsZero() }

// Equal reports whether p and other denote the same projective point,
// comparing cross-multiplied coordinates so neither side needs to be
// normalized first.
func (p Point) Equal(other Point) bool {
	if p.IsZero() || other.IsZero() {
		return p.IsZero() == other.IsZero()
	}
	x1 := p.X.Multiply(other.Z)
	x2 := other.X.Multiply(p.Z)
	y1 := p.Y.Multiply(other.Z)
	y2 := other.Y.Multiply(p.Z)
	return x1.Equal(x2) && y1.Equal(y2)
}

// Replace sets p = other when enable is 1, and leaves p unchanged when
// enable is 0.
func (p *Point) Replace(other Point, enable uint32) {
	p.X.Replace(other.X, enable)
	p.Y.Replace(other.Y, enable)
	p.Z.Replace(other.Z, enable)
}

// Negate returns the additive inverse of p: (X : -Y : Z).
func (p Point) Negate() Point {
	return Point{X: p.X, Y: p.Y.Negate(), Z: p.Z}
}

// IsOnCurve reports whether p satisfies the curve equation in homogeneous
// form: Y^2*Z == X^3 + A*X*Z^2 + B*Z^3.
func (p Point) IsOnCurve(params Params) bool {
	if p.IsZero() {
		return true
	}
	lhs := p.Y.Square().Multiply(p.Z)
	z2 := p.Z.Square()
	rhs := p.X.Square().Multiply(p.X)
	rhs = rhs.Add(params.A.Multiply(p.X).Multiply(z2))
	rhs = rhs.Add(params.B.Multiply(p.Z).Multiply(z2))
	return lhs.Equal(rhs)
}

// FromX recovers a point on the curve whose affine X coordinate is x,
// returning ok == false when x^3 + A*x + B is not a quadratic residue
// (there is then no point on the curve with this X). The returned point
// is the candidate with the root Sqrt produces directly; callers needing
// the other candidate for two-candidate public-key recovery call Negate
// on the result, mirroring Ecdsa16.cpp's recovery building R1 via the
// from-x constructor and R2 via R1.negate().
func FromX(x field.FieldInt, params Params) (Point, bool) {
	ySquared := x.Square().Multiply(x).Add(params.A.Multiply(x)).Add(params.B)
	y := ySquared.Sqrt()
	if !y.Square().Equal(ySquared) {
		return Point{}, false
	}
	return Point{X: x, Y: y, Z: field.One}, true
}

// Normalize rescales p to its canonical affine representative (x/z, y/z,
// 1), or to the canonical identity (0,1,0) when p is the point at
// infinity.
func (p Point) Normalize() Point {
	zInv := p.Z.Reciprocal()
	x := p.X.Multiply(zInv)
	y := p.Y.Multiply(zInv)
	z := field.One

	isIdentity := b2bit(p.Z.IsZero())
	x.Replace(field.Zero, isIdentity)
	y.Replace(field.One, isIdentity)
	z.Replace(field.Zero, isIdentity)
	return Point{X: x, Y: y, Z: z}
}

// Twice returns p+p, via the standard projective doubling formulas for
// y^2*z = x^3 + A*x*z^2 + B*z^3 (CurvePoint16::twice, generalized). No
// identity special case is needed: with z=0 every term carrying a factor
// of u (itself 2*y*z) collapses to zero regardless of x and y, so the
// result's z coordinate is already 0 — still the identity, by this
// package's Z==0 convention — without branching on p.IsZero().
func (p Point) Twice(params Params) Point {
	x, y, z := p.X, p.Y, p.Z

	t := x.Square().Multiply(field.FromUint64(3)).Add(params.A.Multiply(z.Square()))
	u := y.Multiply(z).Multiply(field.FromUint64(2))
	v := u.Multiply(x).Multiply(y).Multiply(field.FromUint64(2))
	w := t.Square().Subtract(v.Multiply(field.FromUint64(2)))

	rx := u.Multiply(w)
	uy := u.Multiply(y)
	ry := t.Multiply(v.Subtract(w)).Subtract(uy.Square().Multiply(field.FromUint64(2)))
	rz := u.Square().Multiply(u)

	return Point{X: rx, Y: ry, Z: rz}
}

// Add returns p+other, via CurvePoint16::add's case analysis (identity,
// same-affine-x, general addition formula), generalized to secp256k1.
// Unlike CurvePoint16::add, every case is computed unconditionally and
// the result is chosen by masked Replace rather than early return, so
// this runs the same sequence of field operations regardless of which
// case applies — needed because Add is called on secret-derived
// intermediate points inside Multiply's ladder.
func (p Point) Add(other Point, params Params) Point {
	t0 := p.Y.Multiply(other.Z)
	t1 := other.Y.Multiply(p.Z)
	u0 := p.X.Multiply(other.Z)
	u1 := other.X.Multiply(p.Z)

	maskSameX := b2bit(u0.Equal(u1))
	maskSameY := b2bit(t0.Equal(t1))
	maskOtherZero := b2bit(other.IsZero())
	maskPZero := b2bit(p.IsZero())

	t := t0.Subtract(t1)
	u := u0.Subtract(u1)
	u2 := u.Square()
	v := p.Z.Multiply(other.Z)
	w := t.Square().Multiply(v).Subtract(u2.Multiply(u0.Add(u1)))

	rx := u.Multiply(w)
	u3 := u2.Multiply(u)
	ry := t.Multiply(u0.Multiply(u2).Subtract(w)).Subtract(t0.Multiply(u3))
	rz := u3.Multiply(v)

	result := Point{X: rx, Y: ry, Z: rz}
	twice := p.Twice(params)

	// Priority, lowest first so later Replace calls win: general formula,
	// then same-x/opposite-y (the two points are mutual negations, so
	// the sum is the identity), then same-x/same-y (the general formula's
	// division-by-zero case, which doubling handles instead), then
	// other==O, then p==O. The same-x checks can fire spuriously when p
	// or other is the identity (its canonical (0,1,0) form makes u0 or u1
	// zero), but the p==O/other==O replacements are applied last and
	// override whatever the spurious case selected.
	result.Replace(Identity, maskSameX&(1-maskSameY))
	result.Replace(twice, maskSameX&maskSameY)
	result.Replace(p, maskOtherZero)
	result.Replace(other, maskPZero)
	return result
}

// Multiply returns k*p via a constant-time-shaped double-and-add ladder:
// every iteration unconditionally doubles and unconditionally computes
// the addition, masking only the final write-back by the scanned bit, so
// the sequence of field operations performed does not depend on k.
func (p Point) Multiply(k bigint.Uint256, params Params) Point {
	result := Identity
	limbs := k.Limbs()
	for word := bigint.NumWords - 1; word >= 0; word-- {
		w := limbs[word]
		for bit := 31; bit >= 0; bit-- {
			result = result.Twice(params)
			enable := (w >> uint(bit)) & 1
			sum := result.Add(p, params)
			result.Replace(sum, enable)
		}
	}
	return result
}

// PrivateExponentToPublicPoint returns k*G, the public point derived
// from a private scalar k (CurvePoint16::privateExponentToPublicPoint).
func PrivateExponentToPublicPoint(k bigint.Uint256, params Params) Point {
	return params.G.Multiply(k, params)
}

func b2bit(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

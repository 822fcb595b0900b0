package mini

// Point is a projective point on a mini curve: (X:Y:Z) represents the
// affine point (X/Z, Y/Z), with Z=0 standing for the identity. Mirrors
// CurvePoint16's layout, generalized to take its modulus from a Profile
// instead of a compiled-in constant.
type Point struct {
	X, Y, Z uint64
}

// Identity returns the point at infinity in its canonical (0,1,0) form.
func Identity() Point { return Point{X: 0, Y: 1, Z: 0} }

// Generator returns the profile's base point in affine form (Z=1).
func (pr Profile) Generator() Point { return Point{X: pr.Gx, Y: pr.Gy, Z: 1} }

// IsZero reports whether pt is the point at infinity.
func (pr Profile) IsZero(pt Point) bool { return pt.Z == 0 }

// Negate returns -pt.
func (pr Profile) Negate(pt Point) Point {
	if pr.IsZero(pt) {
		return pt
	}
	return Point{X: pt.X, Y: negMod(pt.Y, pr.P), Z: pt.Z}
}

// Equal compares two projective points by cross-multiplying their
// coordinates, so it is correct regardless of each point's particular
// representative of its projective equivalence class.
func (pr Profile) Equal(a, b Point) bool {
	if pr.IsZero(a) || pr.IsZero(b) {
		return pr.IsZero(a) == pr.IsZero(b)
	}
	p := pr.P
	return mulMod(a.X, b.Z, p) == mulMod(b.X, a.Z, p) && mulMod(a.Y, b.Z, p) == mulMod(b.Y, a.Z, p)
}

// IsOnCurve reports whether pt satisfies Y^2*Z = X^3 + A*X*Z^2 + B*Z^3.
func (pr Profile) IsOnCurve(pt Point) bool {
	if pr.IsZero(pt) {
		return true
	}
	p := pr.P
	lhs := mulMod(mulMod(pt.Y, pt.Y, p), pt.Z, p)
	z2 := mulMod(pt.Z, pt.Z, p)
	rhs := mulMod(mulMod(pt.X, pt.X, p), pt.X, p)
	rhs = addMod(rhs, mulMod(mulMod(pr.A, pt.X, p), z2, p), p)
	rhs = addMod(rhs, mulMod(mulMod(pr.B, pt.Z, p), z2, p), p)
	return lhs == rhs
}

// Twice doubles pt, following CurvePoint16.cpp's twice() term for term:
// t=3x^2+A*z^2; u=2yz; v=2uxy; w=t^2-2v; x'=uw; y'=t(v-w)-2(uy)^2; z'=u^3.
func (pr Profile) Twice(pt Point) Point {
	if pr.IsZero(pt) {
		return Identity()
	}
	p := pr.P
	x, y, z := pt.X, pt.Y, pt.Z

	t := addMod(mulMod(3, mulMod(x, x, p), p), mulMod(pr.A, mulMod(z, z, p), p), p)
	u := mulMod(2, mulMod(y, z, p), p)
	v := mulMod(2, mulMod(u, mulMod(x, y, p), p), p)
	w := subMod(mulMod(t, t, p), mulMod(2, v, p), p)

	rx := mulMod(u, w, p)
	uy := mulMod(u, y, p)
	ry := subMod(mulMod(t, subMod(v, w, p), p), mulMod(2, mulMod(uy, uy, p), p), p)
	rz := mulMod(mulMod(u, u, p), u, p)

	return Point{X: rx, Y: ry, Z: rz}
}

// Add returns a+b, following CurvePoint16.cpp's add() term for term:
// t=t0-t1; u=u0-u1; u2=u^2; v=z*z'; w=t^2*v-u2*(u0+u1); x'=uw;
// u3=u2*u; y'=t(u0*u2-w)-t0*u3; z'=u3*v, with the identity and
// doubling/negation special cases handled before the general formula.
func (pr Profile) Add(a, b Point) Point {
	if pr.IsZero(a) {
		return b
	}
	if pr.IsZero(b) {
		return a
	}
	p := pr.P

	t0 := mulMod(a.Y, b.Z, p)
	t1 := mulMod(b.Y, a.Z, p)
	u0 := mulMod(a.X, b.Z, p)
	u1 := mulMod(b.X, a.Z, p)

	if u0 == u1 {
		if t0 == t1 {
			return pr.Twice(a)
		}
		return Identity()
	}

	t := subMod(t0, t1, p)
	u := subMod(u0, u1, p)
	u2 := mulMod(u, u, p)
	v := mulMod(a.Z, b.Z, p)
	w := subMod(mulMod(mulMod(t, t, p), v, p), mulMod(u2, addMod(u0, u1, p), p), p)

	rx := mulMod(u, w, p)
	u3 := mulMod(u2, u, p)
	ry := subMod(mulMod(t, subMod(mulMod(u0, u2, p), w, p), p), mulMod(t0, u3, p), p)
	rz := mulMod(u3, v, p)

	return Point{X: rx, Y: ry, Z: rz}
}

// Normalize rescales pt to affine form (Z=1), or to the canonical
// (0,1,0) identity when Z is 0.
func (pr Profile) Normalize(pt Point) Point {
	if pr.IsZero(pt) {
		return Identity()
	}
	zInv := invMod(pt.Z, pr.P)
	return Point{X: mulMod(pt.X, zInv, pr.P), Y: mulMod(pt.Y, zInv, pr.P), Z: 1}
}

// Multiply computes k*pt via the textbook LSB-first double-and-add
// ladder used by CurvePoint16::multiply: unlike package curve's
// constant-time MSB-first ladder, this branches freely on the scalar's
// bits, which is acceptable for a testing-only curve family.
func (pr Profile) Multiply(pt Point, k uint64) Point {
	result := Identity()
	addend := pt
	for k > 0 {
		if k&1 == 1 {
			result = pr.Add(result, addend)
		}
		addend = pr.Twice(addend)
		k >>= 1
	}
	return result
}

// PrivateExponentToPublicPoint computes k*G for the profile's generator.
func (pr Profile) PrivateExponentToPublicPoint(k uint64) Point {
	return pr.Multiply(pr.Generator(), k)
}

// FromX recovers a point with the given x coordinate, if one exists,
// via the profile's modular square root (valid since every mini profile
// is built with p congruent to 3 mod 4).
func (pr Profile) FromX(x uint64) (Point, bool) {
	rhs := curveRHS(x, pr.A, pr.B, pr.P)
	y := sqrtMod(rhs, pr.P)
	if mulMod(y, y, pr.P) != rhs {
		return Point{}, false
	}
	return Point{X: x, Y: y, Z: 1}, true
}

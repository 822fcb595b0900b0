// Package field implements arithmetic over the secp256k1 base field F_p,
// p = 2^256 - 2^32 - 977, built on top of package bigint's fixed-width
// constant-time Uint256. The design generalizes
// _examples/original_source/cpp/mini/FieldInt16.{hpp,cpp} (the toy 16-bit
// field used for exhaustive testing) up to 256 bits, while exploiting p's
// sparse form for the multiply/square reduction the way
// _examples/mleku-p256k1/field.go's fieldNormalize does for its 5x52-limb
// representation.
package field

import (
	"fmt"

	"github.com/andcrypt/Bitcoin-Cryptography-Library/bigint"
)

// P is the secp256k1 field prime: 2^256 - 2^32 - 977.
var P = bigint.MustFromHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F")

// reductionConstant is c = 2^256 - p = 2^32 + 977, used to fold the high
// half of a 512-bit product back into the field: 2^256 = c (mod p).
var reductionConstant = bigint.FromLimbs([8]uint32{0x000003D1, 0x00000001, 0, 0, 0, 0, 0, 0})

// FieldInt is an element of F_p, always held fully reduced: 0 <= value < P.
type FieldInt struct {
	value bigint.Uint256
}

// Zero and One are the additive and multiplicative identities of F_p.
var (
	Zero = FieldInt{value: bigint.Zero}
	One  = FieldInt{value: bigint.One}
)

// New reduces v modulo P and returns the resulting field element. Non-secret
// path (used only to build constants and to parse untrusted input).
func New(v bigint.Uint256) FieldInt {
	f := FieldInt{value: v}
	f.reduceFull()
	return f
}

// FromUint64 builds a small field element, for curve constants such as A
// and B.
func FromUint64(v uint64) FieldInt {
	return New(bigint.FromLimbs([8]uint32{uint32(v), uint32(v >> 32), 0, 0, 0, 0, 0, 0}))
}

// FromBytes parses a big-endian 32-byte encoding, reducing modulo P.
// Non-secret path.
func FromBytes(b []byte) (FieldInt, error) {
	v, err := bigint.FromBytes(b)
	if err != nil {
		return FieldInt{}, fmt.Errorf("field: %w", err)
	}
	return New(v), nil
}

// FromHex parses a big-endian hex string, reducing modulo P. Non-secret path.
func FromHex(s string) (FieldInt, error) {
	v, err := bigint.FromHex(s)
	if err != nil {
		return FieldInt{}, fmt.Errorf("field: %w", err)
	}
	return New(v), nil
}

// Bytes returns the big-endian 32-byte encoding of f. Non-secret path.
func (f FieldInt) Bytes() [32]byte { return f.value.Bytes() }

// Uint256 returns the underlying reduced value.
func (f FieldInt) Uint256() bigint.Uint256 { return f.value }

// Equal reports whether f and other represent the same field element.
func (f FieldInt) Equal(other FieldInt) bool { return f.value.Equal(other.value) }

// IsZero reports whether f is the zero element.
func (f FieldInt) IsZero() bool { return f.value.IsZero() }

// IsOdd reports whether f's canonical representative is odd.
func (f FieldInt) IsOdd() bool { return f.value.IsOdd() }

// Replace sets f = other when enable is 1, and leaves f unchanged when
// enable is 0. enable must be 0 or 1.
func (f *FieldInt) Replace(other FieldInt, enable uint32) {
	f.value.Replace(&other.value, enable)
}

// reduceFull conditionally subtracts P until the value is in [0, P),
// guided only by the carry/comparison outcome, never by an early exit
// on the number of subtractions needed (add can overflow by at most one
// P, subtract needs at most one conditional correction).
func (f *FieldInt) reduceFull() {
	needsReduce := f.value.GreaterEqual(P)
	var sub bigint.Uint256 = f.value
	sub.Subtract(&P, b2bit(needsReduce))
	f.value = sub
}

// Add returns f + other mod P.
func (f FieldInt) Add(other FieldInt) FieldInt {
	sum := f.value
	carry := sum.Add(&other.value, 1)
	// sum is at most 2P-2, i.e. at most one bit wider than P; a single
	// conditional subtraction (guided by carry-out or sum >= P) suffices.
	needsReduce := carry == 1 || sum.GreaterEqual(P)
	sum.Subtract(&P, b2bit(needsReduce))
	return FieldInt{value: sum}
}

// Subtract returns f - other mod P.
func (f FieldInt) Subtract(other FieldInt) FieldInt {
	diff := f.value
	borrow := diff.Subtract(&other.value, 1)
	diff.Add(&P, borrow)
	return FieldInt{value: diff}
}

// Negate returns -f mod P (P - f, with the degenerate f == 0 case handled
// by an extra conditional addition so the result stays in [0, P)).
func (f FieldInt) Negate() FieldInt {
	diff := P
	borrow := diff.Subtract(&f.value, 1)
	diff.Add(&P, borrow)
	return FieldInt{value: diff}
}

// Multiply returns f * other mod P, folding the 512-bit product using
// P's sparse form (p = 2^256 - c, c = 2^32 + 977), the same technique
// _examples/mleku-p256k1/field.go applies at 5x52-limb granularity.
func (f FieldInt) Multiply(other FieldInt) FieldInt {
	wide := bigint.MulWide(f.value, other.value)

	var lo, hi [bigint.NumWords]uint32
	copy(lo[:], wide[:bigint.NumWords])
	copy(hi[:], wide[bigint.NumWords:])
	loVal := bigint.FromLimbs(lo)
	hiVal := bigint.FromLimbs(hi)

	result := foldHighHalf(loVal, hiVal)
	return New(result)
}

// Square returns f * f mod P.
func (f FieldInt) Square() FieldInt { return f.Multiply(f) }

// foldHighHalf reduces lo + hi*2^256 modulo P by repeatedly substituting
// 2^256 = c (mod p) and re-folding the (rapidly shrinking) high part back
// in, mirroring the two-pass reduction of _examples/mleku-p256k1/field.go's
// normalize(). After two folds the excess above 256 bits is provably zero
// (hi2 < 2^40, c < 2^34, hi2*c < 2^74 contributes nothing past word 2),
// leaving only a small, bounded final reduction in New's reduceFull.
func foldHighHalf(lo, hi bigint.Uint256) bigint.Uint256 {
	fold := func(lo, hi bigint.Uint256) (newLo, newHi bigint.Uint256) {
		wide := bigint.MulWide(hi, reductionConstant)
		var contribLo, contribHi [bigint.NumWords]uint32
		copy(contribLo[:], wide[:bigint.NumWords])
		copy(contribHi[:], wide[bigint.NumWords:])

		sum := lo
		contrib := bigint.FromLimbs(contribLo)
		carry := sum.Add(&contrib, 1)

		newHi = bigint.FromLimbs(contribHi)
		newHi.Add(&bigint.One, carry)
		return sum, newHi
	}

	// First fold: hi can be as large as 2^256-1, so c*hi can still spill
	// past 256 bits (contribHi nonzero). Second fold: hi1 is bounded by
	// roughly 2^34 (c's bit length plus one carry bit), so c*hi1 fits
	// entirely within 256 bits and hi2 is at most the single carry bit
	// from the lo+contrib addition. Third fold clears that last bit.
	lo1, hi1 := fold(lo, hi)
	lo2, hi2 := fold(lo1, hi1)
	lo3, _ := fold(lo2, hi2)
	return lo3
}

// Pow returns f^e mod P using right-to-left square-and-multiply. e is a
// public exponent (the only caller is Sqrt, with e = (P+1)/4), so this
// need not be constant time with respect to e per spec.
func (f FieldInt) Pow(e bigint.Uint256) FieldInt {
	result := One
	base := f
	elimbs := e.Limbs()
	for word := 0; word < bigint.NumWords; word++ {
		w := elimbs[word]
		for bit := 0; bit < 32; bit++ {
			if w&(1<<uint(bit)) != 0 {
				result = result.Multiply(base)
			}
			base = base.Square()
		}
	}
	return result
}

// sqrtExponent is (P+1)/4, valid because P = 3 (mod 4).
var sqrtExponent = func() bigint.Uint256 {
	// (P+1)/4: add 1 then shift right twice. P is odd and P+1 is
	// divisible by 4 exactly when P = 3 (mod 4), which holds for
	// secp256k1's prime.
	v := P
	v.Add(&bigint.One, 1)
	v.ShiftRight1(1)
	v.ShiftRight1(1)
	return v
}()

// Sqrt returns f^((P+1)/4) mod P. When f is a quadratic residue this is a
// square root of f; the caller is responsible for checking the result
// squares back to f if a guaranteed-valid root is required (this
// exponentiation formula is only a square root because secp256k1's p is
// 3 mod 4).
func (f FieldInt) Sqrt() FieldInt { return f.Pow(sqrtExponent) }

// Reciprocal returns f^-1 mod P via the constant-time binary extended GCD
// (bigint.Uint256.ReciprocalMod), or zero if f is zero.
func (f FieldInt) Reciprocal() FieldInt {
	if f.IsZero() {
		return Zero
	}
	return FieldInt{value: f.value.ReciprocalMod(P)}
}

func b2bit(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// Package ecdsa implements ECDSA signing, verification, and public-key
// recovery over an arbitrary short-Weierstrass curve (package curve),
// generalizing _examples/original_source/cpp/mini/Ecdsa16.{hpp,cpp}'s
// sign/verify/recovery/multiplyModOrder from its 16-bit mini curve up to
// secp256k1. Protocol entry points return a boolean ok rather than an
// error, mirroring Ecdsa16::sign's bool return, so callers can't branch
// on an error string derived from secret state.
package ecdsa

import (
	"github.com/andcrypt/Bitcoin-Cryptography-Library/bigint"
	"github.com/andcrypt/Bitcoin-Cryptography-Library/curve"
	"github.com/andcrypt/Bitcoin-Cryptography-Library/field"
)

// Signature is an (r, s) ECDSA signature pair, both reduced mod the
// curve's group order.
type Signature struct {
	R, S bigint.Uint256
}

// Sign produces a signature over msgHash under privateKey using the
// given explicit nonce, returning ok == false for any of the "unlucky
// nonce" failure conditions Ecdsa16::sign checks (nonce out of range,
// r == 0, s == 0) — each has probability roughly 2^-128, and branching
// on them leaks only that this particular nonce was rejected, not the
// private key or nonce value.
func Sign(privateKey, msgHash, nonce bigint.Uint256, params curve.Params) (Signature, bool) {
	if nonce.IsZero() || nonce.GreaterEqual(params.N) {
		return Signature{}, false
	}

	point := curve.PrivateExponentToPublicPoint(nonce, params).Normalize()
	r := reduceOnce(point.X.Uint256(), params.N)
	if r.IsZero() {
		return Signature{}, false
	}

	z := reduceOnce(msgHash, params.N)
	s := MulModOrder(r, privateKey, params.N)
	s = addMod(s, z, params.N)

	kInv := nonce.ReciprocalMod(params.N)
	s = MulModOrder(s, kInv, params.N)
	if s.IsZero() {
		return Signature{}, false
	}

	// Low-s (BIP-62) canonicalization: replace s by n-s when that is
	// smaller, matching Ecdsa16::sign_simple's min(s, order-s).
	negS := params.N
	negS.Subtract(&s, 1)
	if negS.Less(s) {
		s = negS
	}

	return Signature{R: r, S: s}, true
}

// Verify reports whether sig is a valid signature over msgHash under
// pubKey. Per Ecdsa16::verify, pubKey must already be normalized
// (Z == 1); this does not normalize it implicitly.
func Verify(pubKey curve.Point, msgHash bigint.Uint256, sig Signature, params curve.Params) bool {
	if !pubKey.Z.Equal(field.One) {
		return false
	}
	if pubKey.IsZero() || !pubKey.IsOnCurve(params) {
		return false
	}
	if !pubKey.Multiply(params.N, params).IsZero() {
		return false
	}
	if sig.R.IsZero() || sig.R.GreaterEqual(params.N) {
		return false
	}
	if sig.S.IsZero() || sig.S.GreaterEqual(params.N) {
		return false
	}

	w := sig.S.ReciprocalMod(params.N)
	z := reduceOnce(msgHash, params.N)
	u1 := MulModOrder(z, w, params.N)
	u2 := MulModOrder(sig.R, w, params.N)

	sum := curve.PrivateExponentToPublicPoint(u1, params).Add(pubKey.Multiply(u2, params), params)
	if sum.IsZero() {
		return false
	}
	x := reduceOnce(sum.Normalize().X.Uint256(), params.N)
	return x.Equal(sig.R)
}

// Recover returns the two public-key candidates consistent with sig over
// msgHash (Ecdsa16::recovery builds R1 from the from-x constructor and
// R2 = -R1; the caller picks whichever of the two matches the expected
// signer, e.g. by comparing against a known public key or a recovery-id
// bit transmitted alongside the signature). ok is false when r does not
// correspond to a point on the curve.
func Recover(msgHash bigint.Uint256, sig Signature, params curve.Params) (candidateA, candidateB curve.Point, ok bool) {
	if sig.R.IsZero() || sig.R.GreaterEqual(params.N) {
		return curve.Point{}, curve.Point{}, false
	}
	if sig.S.IsZero() || sig.S.GreaterEqual(params.N) {
		return curve.Point{}, curve.Point{}, false
	}

	r1, found := curve.FromX(field.New(sig.R), params)
	if !found {
		return curve.Point{}, curve.Point{}, false
	}
	r2 := r1.Negate()

	rInv := sig.R.ReciprocalMod(params.N)
	z := reduceOnce(msgHash, params.N)
	negZ := subMod(bigint.Zero, z, params.N)
	u1 := MulModOrder(negZ, rInv, params.N)
	u2 := MulModOrder(sig.S, rInv, params.N)

	base := curve.PrivateExponentToPublicPoint(u1, params)
	candidateA = base.Add(r1.Multiply(u2, params), params).Normalize()
	candidateB = base.Add(r2.Multiply(u2, params), params).Normalize()
	return candidateA, candidateB, true
}

// MulModOrder computes x*y mod modulus using the constant-time-shaped
// Russian-peasant multiplication of Ecdsa16::multiplyModOrder: scan y
// from its most to least significant bit, always doubling the
// accumulator mod modulus, and masking the conditional add by the
// current bit so the same sequence of operations runs regardless of y's
// value.
func MulModOrder(x, y, modulus bigint.Uint256) bigint.Uint256 {
	var acc bigint.Uint256
	limbs := y.Limbs()
	for word := bigint.NumWords - 1; word >= 0; word-- {
		w := limbs[word]
		for bit := 31; bit >= 0; bit-- {
			overflow := acc.ShiftLeft1()
			needsReduce := overflow == 1 || acc.GreaterEqual(modulus)
			acc.Subtract(&modulus, b2bit(needsReduce))

			enable := (w >> uint(bit)) & 1
			sum := addMod(acc, x, modulus)
			acc.Replace(&sum, enable)
		}
	}
	return acc
}

func reduceOnce(a, modulus bigint.Uint256) bigint.Uint256 {
	v := a
	needsReduce := v.GreaterEqual(modulus)
	v.Subtract(&modulus, b2bit(needsReduce))
	return v
}

func addMod(a, b, modulus bigint.Uint256) bigint.Uint256 {
	sum := a
	carry := sum.Add(&b, 1)
	needsReduce := carry == 1 || sum.GreaterEqual(modulus)
	sum.Subtract(&modulus, b2bit(needsReduce))
	return sum
}

func subMod(a, b, modulus bigint.Uint256) bigint.Uint256 {
	diff := a
	borrow := diff.Subtract(&b, 1)
	diff.Add(&modulus, borrow)
	return diff
}

func b2bit(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

package mini

// Signature is an (r,s) pair over a mini profile's group order,
// mirroring Ecdsa16.cpp's Signature struct.
type Signature struct {
	R, S uint64
}

// Sign produces a signature over msgHash under privateKey using the
// given nonce, following the same r=x(kG); s=k^-1(z+r*priv) construction
// as package ecdsa, low-s canonicalized. Unlike the production package,
// all arithmetic here is plain uint64 modular arithmetic: at these bit
// widths x*y never overflows a uint64, so there is no need for the
// production package's Russian-peasant MulModOrder.
func Sign(pr Profile, privateKey, msgHash, nonce uint64) (Signature, bool) {
	if nonce == 0 || nonce >= pr.N {
		return Signature{}, false
	}
	point := pr.Normalize(pr.PrivateExponentToPublicPoint(nonce))
	r := point.X % pr.N
	if r == 0 {
		return Signature{}, false
	}
	z := msgHash % pr.N
	s := addMod(mulMod(r, privateKey, pr.N), z, pr.N)
	s = mulMod(s, invMod(nonce, pr.N), pr.N)
	if s == 0 {
		return Signature{}, false
	}
	if negS := pr.N - s; negS < s {
		s = negS
	}
	return Signature{R: r, S: s}, true
}

// Verify checks sig against msgHash under pubKey.
func Verify(pr Profile, pubKey Point, msgHash uint64, sig Signature) bool {
	if pubKey.Z != 1 {
		return false
	}
	if pr.IsZero(pubKey) || !pr.IsOnCurve(pubKey) {
		return false
	}
	if !pr.IsZero(pr.Multiply(pubKey, pr.N)) {
		return false
	}
	if sig.R == 0 || sig.R >= pr.N || sig.S == 0 || sig.S >= pr.N {
		return false
	}

	w := invMod(sig.S, pr.N)
	z := msgHash % pr.N
	u1 := mulMod(z, w, pr.N)
	u2 := mulMod(sig.R, w, pr.N)

	sum := pr.Add(pr.PrivateExponentToPublicPoint(u1), pr.Multiply(pubKey, u2))
	if pr.IsZero(sum) {
		return false
	}
	x := pr.Normalize(sum).X % pr.N
	return x == sig.R
}

// Recover returns the (up to) two public keys consistent with sig over
// msgHash, mirroring package ecdsa's two-candidate recovery.
func Recover(pr Profile, msgHash uint64, sig Signature) (candidateA, candidateB Point, ok bool) {
	if sig.R == 0 || sig.R >= pr.N || sig.S == 0 || sig.S >= pr.N {
		return Point{}, Point{}, false
	}
	r1, found := pr.FromX(sig.R)
	if !found {
		return Point{}, Point{}, false
	}
	r2 := pr.Negate(r1)

	rInv := invMod(sig.R, pr.N)
	z := msgHash % pr.N
	negZ := (pr.N - z) % pr.N
	u1 := mulMod(negZ, rInv, pr.N)
	u2 := mulMod(sig.S, rInv, pr.N)

	base := pr.PrivateExponentToPublicPoint(u1)
	candidateA = pr.Normalize(pr.Add(base, pr.Multiply(r1, u2)))
	candidateB = pr.Normalize(pr.Add(base, pr.Multiply(r2, u2)))
	return candidateA, candidateB, true
}

package ecdsa

import (
	"crypto/hmac"

	sha256simd "github.com/minio/sha256-simd"

	"github.com/andcrypt/Bitcoin-Cryptography-Library/bigint"
)

// rfc6979DRBG is the HMAC-DRBG construction of RFC 6979 section 3.2,
// ported in spirit from _examples/mleku-p256k1/hash.go's
// RFC6979HMACSHA256 (same V/K state, same b/c/d/f/h step ordering), using
// the standard library's generic crypto/hmac instead of hand-rolled
// inner/outer SHA256 contexts since sha256-simd's New already implements
// hash.Hash.
type rfc6979DRBG struct {
	v, k  [32]byte
	retry bool
}

func newRFC6979DRBG(keyMaterial []byte) *rfc6979DRBG {
	rng := &rfc6979DRBG{}
	for i := range rng.v {
		rng.v[i] = 0x01
	}
	for i := range rng.k {
		rng.k[i] = 0x00
	}

	mac := hmac.New(sha256simd.New, rng.k[:])
	mac.Write(rng.v[:])
	mac.Write([]byte{0x00})
	mac.Write(keyMaterial)
	copy(rng.k[:], mac.Sum(nil))

	mac = hmac.New(sha256simd.New, rng.k[:])
	mac.Write(rng.v[:])
	copy(rng.v[:], mac.Sum(nil))

	mac = hmac.New(sha256simd.New, rng.k[:])
	mac.Write(rng.v[:])
	mac.Write([]byte{0x01})
	mac.Write(keyMaterial)
	copy(rng.k[:], mac.Sum(nil))

	mac = hmac.New(sha256simd.New, rng.k[:])
	mac.Write(rng.v[:])
	copy(rng.v[:], mac.Sum(nil))

	return rng
}

// generate produces the next 32-byte candidate, advancing K/V per RFC
// 6979 step 3.2.h on every call after the first.
func (rng *rfc6979DRBG) generate() [32]byte {
	if rng.retry {
		mac := hmac.New(sha256simd.New, rng.k[:])
		mac.Write(rng.v[:])
		mac.Write([]byte{0x00})
		copy(rng.k[:], mac.Sum(nil))

		mac = hmac.New(sha256simd.New, rng.k[:])
		mac.Write(rng.v[:])
		copy(rng.v[:], mac.Sum(nil))
	}

	mac := hmac.New(sha256simd.New, rng.k[:])
	mac.Write(rng.v[:])
	copy(rng.v[:], mac.Sum(nil))
	rng.retry = true

	var out [32]byte
	copy(out[:], rng.v[:])
	return out
}

// DeriveNonceRFC6979 derives a deterministic per-signature nonce from a
// private key and message hash, following RFC 6979's reduce-and-retry
// rule (reject a candidate that maps to 0 or to >= modulus and draw
// another). The signing algorithm itself accepts an explicit nonce;
// this is one way to produce it without relying on an external RNG.
func DeriveNonceRFC6979(privateKey, msgHash, modulus bigint.Uint256) bigint.Uint256 {
	privBytes := privateKey.Bytes()
	msgBytes := msgHash.Bytes()
	seed := make([]byte, 0, len(privBytes)+len(msgBytes))
	seed = append(seed, privBytes[:]...)
	seed = append(seed, msgBytes[:]...)

	rng := newRFC6979DRBG(seed)
	for {
		candidate := rng.generate()
		k, err := bigint.FromBytes(candidate[:])
		if err != nil {
			continue
		}
		if k.IsZero() || k.GreaterEqual(modulus) {
			continue
		}
		return k
	}
}

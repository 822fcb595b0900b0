// Package mini implements a small-width short-Weierstrass curve family
// (y^2 = x^3 + A*x + B over F_p, p a handful of bits wide), generalizing
// _examples/original_source/cpp/mini/{FieldInt16,CurvePoint16,Ecdsa16}
// from a single hardcoded 16-bit C++ class into a runtime-parameterized
// Profile, since Go cannot parameterize array length by a type parameter
// the way a distinct class per bit width would need. The mini family is
// for exhaustive round-trip testing, not production use, so — matching
// the original's own non-constant-time mini implementation — nothing in
// this package follows the enable-mask/constant-time discipline of
// packages bigint/field/curve/ecdsa.
package mini

import (
	"fmt"
	"sync"
)

// Profile holds a curve's parameters: modulus P, group order N, curve
// coefficients A and B, and generator coordinates Gx, Gy. Values up to
// 31 bits fit safely in a uint64 product (p < 2^31 implies p*p < 2^62),
// so field arithmetic here is plain uint64 modular arithmetic with no
// need for a wide-multiply helper.
type Profile struct {
	Width              int
	P, N, A, B, Gx, Gy uint64
}

// DefaultProfile16 is the 16-bit profile exercised directly by
// _examples/original_source/cpp/mini/CurvePoint16.cpp's static members
// (A=0, B=7, ORDER=64879, G=(62171,14828), modulus 65167).
var DefaultProfile16 = Profile{
	Width: 16,
	P:     65167,
	N:     64879,
	A:     0,
	B:     7,
	Gx:    62171,
	Gy:    14828,
}

var (
	profileCacheMu sync.Mutex
	profileCache   = map[int]Profile{16: DefaultProfile16}
)

// GetProfile returns the mini curve profile for the given bit width,
// building and caching it on first use (see BuildProfile) for any width
// other than 16, which always returns the authoritative profile above.
//
// Widths 24 and 31 are reachable through the same BuildProfile search
// but are not exercised by this package's tests: brute-force point
// counting is O(p), which is tens of millions of iterations at 24 bits
// and billions at 31 — mathematically fine, but impractical to run in a
// test suite. The algorithm is validated at 7, 8, and 16 bits instead,
// where it completes quickly.
func GetProfile(width int) (Profile, error) {
	profileCacheMu.Lock()
	defer profileCacheMu.Unlock()
	if p, ok := profileCache[width]; ok {
		return p, nil
	}
	p, err := BuildProfile(width)
	if err != nil {
		return Profile{}, err
	}
	profileCache[width] = p
	return p, nil
}

// BuildProfile derives a mini curve profile at the given bit width: it
// scans primes p < 2^width congruent to 3 mod 4 from the top down,
// counts the points of y^2 = x^3 + 7 over F_p by brute force, and
// accepts the first p whose point count N is itself prime. A prime
// point count means the curve's group has no nontrivial subgroups, so
// every non-identity point automatically generates the full group —
// the first quadratic-residue x coordinate found is already a valid
// generator, sidestepping a separate generator search.
func BuildProfile(width int) (Profile, error) {
	if width < 5 || width > 40 {
		return Profile{}, fmt.Errorf("mini: width %d out of supported range [5,40]", width)
	}
	const a, b uint64 = 0, 7
	limit := (uint64(1) << uint(width)) - 1

	for p := limit; p >= 7; p-- {
		if p%4 != 3 || !isPrime(p) {
			continue
		}
		n := countPoints(p, a, b)
		if !isPrime(n) {
			continue
		}
		gx, gy, found := findGenerator(p, a, b)
		if !found {
			continue
		}
		return Profile{Width: width, P: p, N: n, A: a, B: b, Gx: gx, Gy: gy}, nil
	}
	return Profile{}, fmt.Errorf("mini: no suitable curve found below 2^%d", width)
}

func mulMod(x, y, p uint64) uint64 { return (x % p) * (y % p) % p }
func addMod(x, y, p uint64) uint64 { return (x + y) % p }
func subMod(x, y, p uint64) uint64 { return (x + p - y%p) % p }
func negMod(x, p uint64) uint64    { return (p - x%p) % p }

func modPow(base, exp, mod uint64) uint64 {
	if mod == 1 {
		return 0
	}
	result := uint64(1)
	base %= mod
	for exp > 0 {
		if exp&1 == 1 {
			result = mulMod(result, base, mod)
		}
		base = mulMod(base, base, mod)
		exp >>= 1
	}
	return result
}

func sqrtMod(a, p uint64) uint64 { return modPow(a, (p+1)/4, p) }

// invMod returns a^-1 mod p via the iterative extended Euclidean
// algorithm (not constant time; this package's arithmetic never claims
// to be). Returns 0 when a is 0.
func invMod(a, p uint64) uint64 {
	if a == 0 {
		return 0
	}
	oldR, r := int64(a), int64(p)
	oldS, s := int64(1), int64(0)
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
	}
	result := oldS % int64(p)
	if result < 0 {
		result += int64(p)
	}
	return uint64(result)
}

func isPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := uint64(3); d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// countPoints counts the points of y^2 = x^3 + a*x + b over F_p
// (including the point at infinity) via Euler's criterion at every x.
func countPoints(p, a, b uint64) uint64 {
	count := uint64(1)
	legendreExp := (p - 1) / 2
	for x := uint64(0); x < p; x++ {
		rhs := curveRHS(x, a, b, p)
		if rhs == 0 {
			count++
			continue
		}
		if modPow(rhs, legendreExp, p) == 1 {
			count += 2
		}
	}
	return count
}

func findGenerator(p, a, b uint64) (gx, gy uint64, found bool) {
	legendreExp := (p - 1) / 2
	for x := uint64(0); x < p; x++ {
		rhs := curveRHS(x, a, b, p)
		if rhs == 0 || modPow(rhs, legendreExp, p) != 1 {
			continue
		}
		return x, sqrtMod(rhs, p), true
	}
	return 0, 0, false
}

func curveRHS(x, a, b, p uint64) uint64 {
	x2 := mulMod(x, x, p)
	x3 := mulMod(x2, x, p)
	return addMod(addMod(x3, mulMod(a, x, p), p), b, p)
}

package field

import (
	"testing"

	"github.com/andcrypt/Bitcoin-Cryptography-Library/bigint"
	"github.com/davecgh/go-spew/spew"
)

func TestAddSubtractRoundTrip(t *testing.T) {
	a, err := FromHex("0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcd")
	if err != nil {
		t.Fatalf("FromHex: %v", err)
	}
	b, err := FromHex("deadbeefcafebabe0000000000000000000000000000000000000000000001")
	if err != nil {
		t.Fatalf("FromHex: %v", err)
	}

	sum := a.Add(b)
	back := sum.Subtract(b)
	if !back.Equal(a) {
		t.Fatalf("(a+b)-b != a: got %s want %s", spew.Sdump(back), spew.Sdump(a))
	}
}

func TestNegate(t *testing.T) {
	a := FromUint64(12345)
	neg := a.Negate()
	if !a.Add(neg).Equal(Zero) {
		t.Fatalf("a + (-a) != 0, got %s", spew.Sdump(a.Add(neg)))
	}
	if !Zero.Negate().Equal(Zero) {
		t.Fatalf("-0 != 0")
	}
}

func TestMultiplyIdentities(t *testing.T) {
	a := FromUint64(987654321)
	if !a.Multiply(One).Equal(a) {
		t.Fatalf("a*1 != a")
	}
	if !a.Multiply(Zero).Equal(Zero) {
		t.Fatalf("a*0 != 0")
	}
}

func TestMultiplyAgainstP(t *testing.T) {
	// Known multiplication check that exercises the sparse-prime fold:
	// (p-1) * (p-1) mod p == 1, since p-1 == -1 (mod p).
	pMinus1 := One.Negate()
	result := pMinus1.Multiply(pMinus1)
	if !result.Equal(One) {
		t.Fatalf("(p-1)*(p-1) != 1, got %s", spew.Sdump(result))
	}
}

func TestMultiplyCommutativeAssociative(t *testing.T) {
	a := FromUint64(0xABCDEF)
	b := FromUint64(0x123456789)
	c := FromUint64(0xFEDCBA987654321)

	if !a.Multiply(b).Equal(b.Multiply(a)) {
		t.Fatalf("multiply not commutative")
	}
	lhs := a.Multiply(b).Multiply(c)
	rhs := a.Multiply(b.Multiply(c))
	if !lhs.Equal(rhs) {
		t.Fatalf("multiply not associative: %s vs %s", spew.Sdump(lhs), spew.Sdump(rhs))
	}
}

func TestSquareMatchesMultiplySelf(t *testing.T) {
	a := FromUint64(0x7777777777)
	if !a.Square().Equal(a.Multiply(a)) {
		t.Fatalf("square != multiply(self, self)")
	}
}

func TestReciprocal(t *testing.T) {
	a := FromUint64(3)
	inv := a.Reciprocal()
	if !a.Multiply(inv).Equal(One) {
		t.Fatalf("3 * 3^-1 != 1, got %s", spew.Sdump(a.Multiply(inv)))
	}
	if !Zero.Reciprocal().Equal(Zero) {
		t.Fatalf("0^-1 should be defined as 0, got %s", spew.Sdump(Zero.Reciprocal()))
	}
}

func TestSqrtOfSquareIsRoot(t *testing.T) {
	a := FromUint64(424242)
	sq := a.Square()
	r := sq.Sqrt()
	if !r.Square().Equal(sq) && !r.Negate().Square().Equal(sq) {
		t.Fatalf("sqrt(a^2)^2 != a^2")
	}
}

func TestBytesRoundTrip(t *testing.T) {
	a := FromUint64(0x0102030405060708)
	b := a.Bytes()
	back, err := FromBytes(b[:])
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if !back.Equal(a) {
		t.Fatalf("bytes round trip mismatch")
	}
}

func TestReplace(t *testing.T) {
	a := FromUint64(1)
	b := FromUint64(2)
	a.Replace(b, 0)
	if !a.Equal(FromUint64(1)) {
		t.Fatalf("Replace with enable=0 mutated value")
	}
	a.Replace(b, 1)
	if !a.Equal(b) {
		t.Fatalf("Replace with enable=1 did not take effect")
	}
}

func TestPValue(t *testing.T) {
	want := bigint.MustFromHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F")
	if !P.Equal(want) {
		t.Fatalf("P mismatch")
	}
}

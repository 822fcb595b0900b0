package hexutil

import "testing"

func TestBE32RoundTrip(t *testing.T) {
	buf := make([]byte, 4)
	WriteBE32(buf, 0x01020304)
	if got := ReadBE32(buf); got != 0x01020304 {
		t.Fatalf("ReadBE32 = %#x, want 0x01020304", got)
	}
	if buf[0] != 0x01 || buf[3] != 0x04 {
		t.Fatalf("WriteBE32 did not write big-endian bytes: %x", buf)
	}
}

func TestBE64RoundTrip(t *testing.T) {
	buf := make([]byte, 8)
	WriteBE64(buf, 0x0102030405060708)
	if got := ReadBE64(buf); got != 0x0102030405060708 {
		t.Fatalf("ReadBE64 = %#x, want 0x0102030405060708", got)
	}
	if buf[0] != 0x01 || buf[7] != 0x08 {
		t.Fatalf("WriteBE64 did not write big-endian bytes: %x", buf)
	}
}

func TestPadLeft(t *testing.T) {
	padded := PadLeft([]byte{0x2a}, 4)
	want := []byte{0x00, 0x00, 0x00, 0x2a}
	if len(padded) != len(want) {
		t.Fatalf("PadLeft length = %d, want %d", len(padded), len(want))
	}
	for i := range want {
		if padded[i] != want[i] {
			t.Fatalf("PadLeft = %x, want %x", padded, want)
		}
	}

	unchanged := []byte{1, 2, 3, 4, 5}
	if out := PadLeft(unchanged, 3); len(out) != len(unchanged) {
		t.Fatalf("PadLeft should not truncate input already at or above size")
	}
}

func TestDecodeEncodeHex(t *testing.T) {
	b, err := DecodeHex("0x2a2b")
	if err != nil {
		t.Fatalf("DecodeHex: %v", err)
	}
	if len(b) != 2 || b[0] != 0x2a || b[1] != 0x2b {
		t.Fatalf("DecodeHex(0x2a2b) = %x", b)
	}
	if EncodeHex(b) != "2a2b" {
		t.Fatalf("EncodeHex = %s, want 2a2b", EncodeHex(b))
	}
}

func TestDecodeHexRejectsOddLength(t *testing.T) {
	if _, err := DecodeHex("abc"); err == nil {
		t.Fatalf("expected error for odd-length hex string")
	}
}

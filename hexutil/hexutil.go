// Package hexutil collects the non-secret byte/hex plumbing shared by
// the kernel's public APIs: big-endian word packing (grounded on
// _examples/mleku-p256k1/verify.go's secp256k1_read_be32/write_be64
// helpers) and left-padding a short byte slice to a fixed width
// (grounded on _examples/ModChain-secp256k1/ecckd/utils.go's
// paddedAppend). None of this operates on secret data, so unlike
// package bigint it is free to branch and panic on malformed input.
package hexutil

import (
	"encoding/hex"
	"fmt"
)

// ReadBE32 reads a big-endian uint32 from the first 4 bytes of p.
func ReadBE32(p []byte) uint32 {
	if len(p) < 4 {
		panic("hexutil: buffer too small for ReadBE32")
	}
	return uint32(p[0])<<24 | uint32(p[1])<<16 | uint32(p[2])<<8 | uint32(p[3])
}

// WriteBE32 writes x as big-endian into the first 4 bytes of p.
func WriteBE32(p []byte, x uint32) {
	if len(p) < 4 {
		panic("hexutil: buffer too small for WriteBE32")
	}
	p[0] = byte(x >> 24)
	p[1] = byte(x >> 16)
	p[2] = byte(x >> 8)
	p[3] = byte(x)
}

// ReadBE64 reads a big-endian uint64 from the first 8 bytes of p.
func ReadBE64(p []byte) uint64 {
	if len(p) < 8 {
		panic("hexutil: buffer too small for ReadBE64")
	}
	return uint64(p[0])<<56 | uint64(p[1])<<48 | uint64(p[2])<<40 | uint64(p[3])<<32 |
		uint64(p[4])<<24 | uint64(p[5])<<16 | uint64(p[6])<<8 | uint64(p[7])
}

// WriteBE64 writes x as big-endian into the first 8 bytes of p.
func WriteBE64(p []byte, x uint64) {
	if len(p) < 8 {
		panic("hexutil: buffer too small for WriteBE64")
	}
	p[0] = byte(x >> 56)
	p[1] = byte(x >> 48)
	p[2] = byte(x >> 40)
	p[3] = byte(x >> 32)
	p[4] = byte(x >> 24)
	p[5] = byte(x >> 16)
	p[6] = byte(x >> 8)
	p[7] = byte(x)
}

// PadLeft returns src left-padded with zero bytes to size, or src
// itself (unchanged, never truncated) when it is already at least that
// long.
func PadLeft(src []byte, size int) []byte {
	if len(src) >= size {
		return src
	}
	out := make([]byte, size)
	copy(out[size-len(src):], src)
	return out
}

// DecodeHex parses s (with an optional "0x"/"0X" prefix) into raw bytes.
func DecodeHex(s string) ([]byte, error) {
	if len(s) >= 2 && (s[0:2] == "0x" || s[0:2] == "0X") {
		s = s[2:]
	}
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("hexutil: odd-length hex string")
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("hexutil: invalid hex: %w", err)
	}
	return b, nil
}

// EncodeHex returns the lowercase hex encoding of b, without a prefix.
func EncodeHex(b []byte) string {
	return hex.EncodeToString(b)
}

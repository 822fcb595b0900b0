// Package crosscheck validates this module's secp256k1 arithmetic and
// ECDSA operations against two independent, widely-used implementations:
// github.com/decred/dcrd/dcrec/secp256k1/v4 and
// github.com/btcsuite/btcd/btcec/v2. Agreement here is a much stronger
// signal than this module's own unit tests, which could share a
// transcription error with the code they test.
package crosscheck

import (
	"bytes"
	"testing"

	"github.com/andcrypt/Bitcoin-Cryptography-Library/bigint"
	"github.com/andcrypt/Bitcoin-Cryptography-Library/curve"
	"github.com/andcrypt/Bitcoin-Cryptography-Library/ecdsa"

	btcec "github.com/btcsuite/btcd/btcec/v2"
	dcrsecp "github.com/decred/dcrd/dcrec/secp256k1/v4"
	dcrecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

func testPrivateKeyBytes() [32]byte {
	var b [32]byte
	for i := range b {
		b[i] = byte(i + 1)
	}
	return b
}

func testMsgHashBytes() [32]byte {
	var b [32]byte
	for i := range b {
		b[i] = byte(0xA0 + i)
	}
	return b
}

func TestPublicKeyMatchesDecred(t *testing.T) {
	keyBytes := testPrivateKeyBytes()
	priv := bigint.MustFromBytes(keyBytes[:])
	ourPub := curve.PrivateExponentToPublicPoint(priv, curve.Secp256k1).Normalize()

	dcrPub := dcrsecp.PrivKeyFromBytes(keyBytes[:]).PubKey().SerializeUncompressed()

	ourX, ourY := ourPub.X.Bytes(), ourPub.Y.Bytes()
	if !bytes.Equal(ourX[:], dcrPub[1:33]) || !bytes.Equal(ourY[:], dcrPub[33:65]) {
		t.Fatalf("public key derivation disagrees with decred/dcrd")
	}
}

func TestPublicKeyMatchesBtcec(t *testing.T) {
	keyBytes := testPrivateKeyBytes()
	priv := bigint.MustFromBytes(keyBytes[:])
	ourPub := curve.PrivateExponentToPublicPoint(priv, curve.Secp256k1).Normalize()

	_, btcPub := btcec.PrivKeyFromBytes(keyBytes[:])
	btcSerialized := btcPub.SerializeUncompressed()

	ourX, ourY := ourPub.X.Bytes(), ourPub.Y.Bytes()
	if !bytes.Equal(ourX[:], btcSerialized[1:33]) || !bytes.Equal(ourY[:], btcSerialized[33:65]) {
		t.Fatalf("public key derivation disagrees with btcsuite/btcd/btcec")
	}
}

func TestVerifyAcceptsDecredProducedSignature(t *testing.T) {
	keyBytes := testPrivateKeyBytes()
	msgHash := testMsgHashBytes()
	priv := bigint.MustFromBytes(keyBytes[:])
	ourPub := curve.PrivateExponentToPublicPoint(priv, curve.Secp256k1).Normalize()

	dcrPriv := dcrsecp.PrivKeyFromBytes(keyBytes[:])
	dcrSig := dcrecdsa.Sign(dcrPriv, msgHash[:])
	r, s := dcrSig.R(), dcrSig.S()
	rBytes, sBytes := r.Bytes(), s.Bytes()

	sig := ecdsa.Signature{R: bigint.MustFromBytes(rBytes[:]), S: bigint.MustFromBytes(sBytes[:])}
	hash := bigint.MustFromBytes(msgHash[:])
	if !ecdsa.Verify(ourPub, hash, sig, curve.Secp256k1) {
		t.Fatalf("our Verify rejected a signature produced by decred/dcrd")
	}
}

func TestDecredAcceptsOurSignature(t *testing.T) {
	keyBytes := testPrivateKeyBytes()
	msgHash := testMsgHashBytes()
	priv := bigint.MustFromBytes(keyBytes[:])
	hash := bigint.MustFromBytes(msgHash[:])
	nonce := bigint.MustFromHex("000000000000000000000000000000000000000000000000000000000c0ffee")

	sig, ok := ecdsa.Sign(priv, hash, nonce, curve.Secp256k1)
	if !ok {
		t.Fatalf("Sign failed")
	}

	rBytes, sBytes := sig.R.Bytes(), sig.S.Bytes()
	var r, s dcrsecp.ModNScalar
	r.SetByteSlice(rBytes[:])
	s.SetByteSlice(sBytes[:])
	dcrSig := dcrecdsa.NewSignature(&r, &s)

	dcrPub := dcrsecp.PrivKeyFromBytes(keyBytes[:]).PubKey()
	if !dcrSig.Verify(msgHash[:], dcrPub) {
		t.Fatalf("decred/dcrd rejected a signature produced by this module")
	}
}

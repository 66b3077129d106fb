// Package ecdh derives a shared secret from an elliptic curve
// Diffie-Hellman key agreement, adapted from
// ephemeral/symmetric_key.go's btcec.GenerateSharedSecret call
// (originally built for a threshold share) to operate on this
// module's own ecdsa key types. It stops at key derivation: sealing
// the result into an authenticated ciphertext is out of scope (AEAD
// is a named non-goal) and left to the caller.
package ecdh

import (
	"github.com/btcsuite/btcd/btcec"

	"signet.dev/signet/ecdsa"
	"signet.dev/signet/encoding/sec1"
)

// SharedSecret is the raw ECDH agreement output btcec.GenerateSharedSecret
// derives from the product point's X coordinate, suitable as key
// material for whatever symmetric primitive the caller chooses.
type SharedSecret []byte

// Derive performs ECDH between priv and pub by handing both keys to
// btcec.GenerateSharedSecret, round-tripping this module's own
// bigint-backed key types through their SEC1 byte encodings to cross
// the boundary into btcec's stdlib-big.Int-backed ones.
func Derive(priv *ecdsa.PrivateKey, pub *ecdsa.PublicKey) (SharedSecret, error) {
	btcecPriv, _ := btcec.PrivKeyFromBytes(btcec.S256(), priv.D.Abs().Bytes())

	pubBytes := sec1.EncodeUncompressed(pub.Point, pub.Curve)
	btcecPub, err := btcec.ParsePubKey(pubBytes, btcec.S256())
	if err != nil {
		return nil, err
	}

	return SharedSecret(btcec.GenerateSharedSecret(btcecPriv, btcecPub)), nil
}

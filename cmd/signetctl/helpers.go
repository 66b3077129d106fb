package main

import (
	"fmt"

	"signet.dev/signet/curve"
	"signet.dev/signet/hash/hmac"
	"signet.dev/signet/hash/sha2"
	"signet.dev/signet/internal/config"
)

func hashFor(choice config.HashChoice) hmac.Hash {
	switch choice {
	case config.HashSHA512:
		return hmac.Hash{
			BlockBytes:  sha2.Sha512BlockBytes,
			OutputBytes: sha2.Sha512OutputBytes,
			Digest: func(b []byte) []byte {
				d := sha2.Sum512(b)
				return d[:]
			},
		}
	default:
		return hmac.Hash{
			BlockBytes:  sha2.Sha256BlockBytes,
			OutputBytes: sha2.Sha256OutputBytes,
			Digest: func(b []byte) []byte {
				d := sha2.Sum256(b)
				return d[:]
			},
		}
	}
}

func curveFor(name string) (*curve.Curve, error) {
	if name != "secp256k1" {
		return nil, fmt.Errorf("unsupported curve %q", name)
	}
	return curve.Secp256k1(), nil
}

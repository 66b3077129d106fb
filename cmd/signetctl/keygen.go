package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"signet.dev/signet/bigint"
	"signet.dev/signet/ecdsa"
	"signet.dev/signet/encoding/hexutil"
	"signet.dev/signet/encoding/sec1"
	"signet.dev/signet/entropy"
)

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "generate a new private/public key pair",
	RunE:  runKeygen,
}

func init() {
	rootCmd.AddCommand(keygenCmd)
}

func runKeygen(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := curveFor(cfg.Curve)
	if err != nil {
		return err
	}

	var priv *ecdsa.PrivateKey
	for {
		raw, err := entropy.OSRandomBytes(32)
		if err != nil {
			return fmt.Errorf("keygen: draw entropy: %w", err)
		}
		d := bigint.FromBigUint(bigint.FromBytesBigEndian(raw))
		priv, err = ecdsa.NewPrivateKey(d, c)
		if err == nil {
			break
		}
		logger.Debug().Msg("drawn scalar out of range, retrying")
	}

	pub := priv.Public()
	logger.Info().Str("curve", cfg.Curve).Msg("generated key pair")

	fmt.Printf("private: %s\n", hexutil.Encode(priv.D.Abs().Bytes()))
	fmt.Printf("public:  %s\n", hexutil.Encode(sec1.EncodeUncompressed(pub.Point, c)))
	return nil
}

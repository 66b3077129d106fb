package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"signet.dev/signet/bigint"
	"signet.dev/signet/ecdsa"
	"signet.dev/signet/encoding/hexutil"
	"signet.dev/signet/encoding/p1363"
	"signet.dev/signet/entropy"
)

var (
	signKeyHex     string
	signMessageHex string
)

var signCmd = &cobra.Command{
	Use:   "sign",
	Short: "sign a message digest with a private key",
	RunE:  runSign,
}

func init() {
	signCmd.Flags().StringVar(&signKeyHex, "key", "", "hex-encoded private key scalar (required)")
	signCmd.Flags().StringVar(&signMessageHex, "message", "", "hex-encoded message digest to sign (required)")
	_ = signCmd.MarkFlagRequired("key")
	_ = signCmd.MarkFlagRequired("message")
	rootCmd.AddCommand(signCmd)
}

func runSign(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := curveFor(cfg.Curve)
	if err != nil {
		return err
	}

	keyBytes, err := hexutil.Decode(signKeyHex)
	if err != nil {
		return fmt.Errorf("sign: decode key: %w", err)
	}
	d := bigint.FromBigUint(bigint.FromBytesBigEndian(keyBytes))
	priv, err := ecdsa.NewPrivateKey(d, c)
	if err != nil {
		return fmt.Errorf("sign: %w", err)
	}

	msgBytes, err := hexutil.Decode(signMessageHex)
	if err != nil {
		return fmt.Errorf("sign: decode message: %w", err)
	}

	opts := ecdsa.SignOptions{LowS: cfg.LowS}
	if cfg.ExtraEntropy {
		extra, err := entropy.OSRandomBytes(32)
		if err != nil {
			return fmt.Errorf("sign: draw extra entropy: %w", err)
		}
		opts.ExtraEntropy = extra
	}

	sig, err := ecdsa.Sign(msgBytes, priv, hashFor(cfg.Hash), opts)
	if err != nil {
		return fmt.Errorf("sign: %w", err)
	}

	logger.Info().Bool("low_s", cfg.LowS).Msg("produced signature")
	fmt.Printf("signature: %s\n", hexutil.Encode(p1363.Encode(sig, c.N)))
	fmt.Printf("recovery_id: %d\n", sig.RecoveryID)
	return nil
}

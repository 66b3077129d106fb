package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"signet.dev/signet/ecdsa"
	"signet.dev/signet/encoding/hexutil"
	"signet.dev/signet/encoding/p1363"
	"signet.dev/signet/encoding/sec1"
)

var (
	recoverMessageHex   string
	recoverSignatureHex string
	recoverAll          bool
)

var recoverCmd = &cobra.Command{
	Use:   "recover",
	Short: "recover candidate public keys from a signature and message digest",
	RunE:  runRecover,
}

func init() {
	recoverCmd.Flags().StringVar(&recoverMessageHex, "message", "", "hex-encoded message digest (required)")
	recoverCmd.Flags().StringVar(&recoverSignatureHex, "signature", "", "hex-encoded IEEE P1363 signature (required)")
	recoverCmd.Flags().BoolVar(&recoverAll, "all", false, "ignore the recovery id (a decoded P1363 signature carries id 0) and return every candidate")
	_ = recoverCmd.MarkFlagRequired("message")
	_ = recoverCmd.MarkFlagRequired("signature")
	rootCmd.AddCommand(recoverCmd)
}

func runRecover(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := curveFor(cfg.Curve)
	if err != nil {
		return err
	}

	msgBytes, err := hexutil.Decode(recoverMessageHex)
	if err != nil {
		return fmt.Errorf("recover: decode message: %w", err)
	}
	sigBytes, err := hexutil.Decode(recoverSignatureHex)
	if err != nil {
		return fmt.Errorf("recover: decode signature: %w", err)
	}
	sig, err := p1363.Decode(sigBytes, c.N)
	if err != nil {
		return fmt.Errorf("recover: %w", err)
	}

	var candidates []*ecdsa.PublicKey
	if recoverAll {
		candidates, err = ecdsa.RecoverAll(sig, msgBytes, c)
	} else {
		candidates, err = ecdsa.Recover(sig, msgBytes, c)
	}
	if err != nil {
		return fmt.Errorf("recover: %w", err)
	}

	logger.Info().Int("candidates", len(candidates)).Msg("recovered public keys")
	for _, pub := range candidates {
		fmt.Println(hexutil.Encode(sec1.EncodeUncompressed(pub.Point, c)))
	}
	return nil
}

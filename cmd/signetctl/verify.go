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
	verifyPubKeyHex    string
	verifyMessageHex   string
	verifySignatureHex string
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "verify a signature against a message digest and public key",
	RunE:  runVerify,
}

func init() {
	verifyCmd.Flags().StringVar(&verifyPubKeyHex, "pubkey", "", "hex-encoded SEC1 public key (required)")
	verifyCmd.Flags().StringVar(&verifyMessageHex, "message", "", "hex-encoded message digest (required)")
	verifyCmd.Flags().StringVar(&verifySignatureHex, "signature", "", "hex-encoded IEEE P1363 signature (required)")
	_ = verifyCmd.MarkFlagRequired("pubkey")
	_ = verifyCmd.MarkFlagRequired("message")
	_ = verifyCmd.MarkFlagRequired("signature")
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := curveFor(cfg.Curve)
	if err != nil {
		return err
	}

	pubBytes, err := hexutil.Decode(verifyPubKeyHex)
	if err != nil {
		return fmt.Errorf("verify: decode pubkey: %w", err)
	}
	point, err := sec1.Decode(pubBytes, c)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	pub, err := ecdsa.NewPublicKey(point, c)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}

	msgBytes, err := hexutil.Decode(verifyMessageHex)
	if err != nil {
		return fmt.Errorf("verify: decode message: %w", err)
	}
	sigBytes, err := hexutil.Decode(verifySignatureHex)
	if err != nil {
		return fmt.Errorf("verify: decode signature: %w", err)
	}
	sig, err := p1363.Decode(sigBytes, c.N)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}

	ok, err := ecdsa.Verify(msgBytes, sig, pub, ecdsa.VerifyOptions{RequireLowS: cfg.LowS})
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}

	logger.Info().Bool("valid", ok).Msg("verification result")
	if ok {
		fmt.Println("valid")
	} else {
		fmt.Println("invalid")
	}
	return nil
}

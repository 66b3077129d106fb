package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"signet.dev/signet/bigint"
	"signet.dev/signet/ecdh"
	"signet.dev/signet/ecdsa"
	"signet.dev/signet/encoding/hexutil"
	"signet.dev/signet/encoding/sec1"
)

var (
	deriveKeyHex    string
	derivePubKeyHex string
)

var deriveCmd = &cobra.Command{
	Use:   "derive",
	Short: "derive a shared secret via ECDH between a private key and a peer's public key",
	RunE:  runDerive,
}

func init() {
	deriveCmd.Flags().StringVar(&deriveKeyHex, "key", "", "hex-encoded private key scalar (required)")
	deriveCmd.Flags().StringVar(&derivePubKeyHex, "peer-pubkey", "", "hex-encoded SEC1 public key of the peer (required)")
	_ = deriveCmd.MarkFlagRequired("key")
	_ = deriveCmd.MarkFlagRequired("peer-pubkey")
	rootCmd.AddCommand(deriveCmd)
}

func runDerive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := curveFor(cfg.Curve)
	if err != nil {
		return err
	}

	keyBytes, err := hexutil.Decode(deriveKeyHex)
	if err != nil {
		return fmt.Errorf("derive: decode key: %w", err)
	}
	d := bigint.FromBigUint(bigint.FromBytesBigEndian(keyBytes))
	priv, err := ecdsa.NewPrivateKey(d, c)
	if err != nil {
		return fmt.Errorf("derive: %w", err)
	}

	pubBytes, err := hexutil.Decode(derivePubKeyHex)
	if err != nil {
		return fmt.Errorf("derive: decode peer pubkey: %w", err)
	}
	point, err := sec1.Decode(pubBytes, c)
	if err != nil {
		return fmt.Errorf("derive: %w", err)
	}
	peerPub, err := ecdsa.NewPublicKey(point, c)
	if err != nil {
		return fmt.Errorf("derive: %w", err)
	}

	secret, err := ecdh.Derive(priv, peerPub)
	if err != nil {
		return fmt.Errorf("derive: %w", err)
	}
	logger.Info().Msg("derived shared secret")
	fmt.Println(hexutil.Encode(secret))
	return nil
}

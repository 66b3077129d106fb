package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"signet.dev/signet/encoding/hexutil"
	"signet.dev/signet/encoding/sec1"
	ethaddress "signet.dev/signet/ethereum/address"
)

var addressPubKeyHex string

var addressCmd = &cobra.Command{
	Use:   "address",
	Short: "derive the EIP-55 checksummed Ethereum address for a public key",
	RunE:  runAddress,
}

func init() {
	addressCmd.Flags().StringVar(&addressPubKeyHex, "pubkey", "", "hex-encoded SEC1 public key (required)")
	_ = addressCmd.MarkFlagRequired("pubkey")
	rootCmd.AddCommand(addressCmd)
}

func runAddress(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := curveFor(cfg.Curve)
	if err != nil {
		return err
	}

	pubBytes, err := hexutil.Decode(addressPubKeyHex)
	if err != nil {
		return fmt.Errorf("address: decode pubkey: %w", err)
	}
	point, err := sec1.Decode(pubBytes, c)
	if err != nil {
		return fmt.Errorf("address: %w", err)
	}

	addr := ethaddress.FromPublicKey(point)
	logger.Info().Str("address", addr.Hex()).Msg("derived address")
	fmt.Println(addr.Hex())
	return nil
}

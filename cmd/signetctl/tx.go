package main

import (
	"fmt"

	"github.com/holiman/uint256"
	"github.com/spf13/cobra"

	"signet.dev/signet/bigint"
	"signet.dev/signet/ecdsa"
	"signet.dev/signet/encoding/hexutil"
	ethaddress "signet.dev/signet/ethereum/address"
	"signet.dev/signet/ethereum/tx"
)

var (
	txType     string
	txKeyHex   string
	txNonce    uint64
	txTo       string
	txValue    uint64
	txGasLimit uint64
	txGasPrice uint64
	txTipCap   uint64
	txFeeCap   uint64
	txDataHex  string
)

var txCmd = &cobra.Command{
	Use:   "tx",
	Short: "build and sign an Ethereum transaction",
	RunE:  runTx,
}

func init() {
	txCmd.Flags().StringVar(&txType, "type", "legacy", "transaction type (legacy, eip155, eip2930, eip1559)")
	txCmd.Flags().StringVar(&txKeyHex, "key", "", "hex-encoded private key scalar (required)")
	txCmd.Flags().Uint64Var(&txNonce, "nonce", 0, "account nonce")
	txCmd.Flags().StringVar(&txTo, "to", "", "hex-encoded recipient address (omit for contract creation)")
	txCmd.Flags().Uint64Var(&txValue, "value", 0, "value to transfer, in wei")
	txCmd.Flags().Uint64Var(&txGasLimit, "gas-limit", 21000, "gas limit")
	txCmd.Flags().Uint64Var(&txGasPrice, "gas-price", 0, "gas price, in wei (legacy, eip155, eip2930)")
	txCmd.Flags().Uint64Var(&txTipCap, "gas-tip-cap", 0, "max priority fee per gas, in wei (eip1559)")
	txCmd.Flags().Uint64Var(&txFeeCap, "gas-fee-cap", 0, "max fee per gas, in wei (eip1559)")
	txCmd.Flags().StringVar(&txDataHex, "data", "", "hex-encoded call data")
	_ = txCmd.MarkFlagRequired("key")
	rootCmd.AddCommand(txCmd)
}

func parseRecipient(s string) (*ethaddress.Address, error) {
	if s == "" {
		return nil, nil
	}
	addr, err := ethaddress.Parse(s)
	if err != nil {
		return nil, err
	}
	return &addr, nil
}

func runTx(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := curveFor(cfg.Curve)
	if err != nil {
		return err
	}

	keyBytes, err := hexutil.Decode(txKeyHex)
	if err != nil {
		return fmt.Errorf("tx: decode key: %w", err)
	}
	d := bigint.FromBigUint(bigint.FromBytesBigEndian(keyBytes))
	priv, err := ecdsa.NewPrivateKey(d, c)
	if err != nil {
		return fmt.Errorf("tx: %w", err)
	}

	to, err := parseRecipient(txTo)
	if err != nil {
		return fmt.Errorf("tx: decode recipient: %w", err)
	}

	var data []byte
	if txDataHex != "" {
		data, err = hexutil.Decode(txDataHex)
		if err != nil {
			return fmt.Errorf("tx: decode data: %w", err)
		}
	}

	chainID := uint256.NewInt(cfg.ChainID)
	value := uint256.NewInt(txValue)

	var transaction *tx.Transaction
	switch txType {
	case "legacy":
		transaction = tx.NewLegacyTx(txNonce, uint256.NewInt(txGasPrice), txGasLimit, to, value, data)
	case "eip155":
		transaction = tx.NewEIP155Tx(chainID, txNonce, uint256.NewInt(txGasPrice), txGasLimit, to, value, data)
	case "eip2930":
		transaction = tx.NewEIP2930Tx(chainID, txNonce, uint256.NewInt(txGasPrice), txGasLimit, to, value, data, nil)
	case "eip1559":
		transaction = tx.NewEIP1559Tx(chainID, txNonce, uint256.NewInt(txTipCap), uint256.NewInt(txFeeCap), txGasLimit, to, value, data, nil)
	default:
		return fmt.Errorf("tx: unsupported type %q", txType)
	}

	if err := transaction.Sign(priv, hashFor(cfg.Hash)); err != nil {
		return fmt.Errorf("tx: sign: %w", err)
	}

	encoded, err := transaction.MarshalBinary()
	if err != nil {
		return fmt.Errorf("tx: marshal: %w", err)
	}
	hash, err := transaction.Hash()
	if err != nil {
		return fmt.Errorf("tx: hash: %w", err)
	}

	logger.Info().Str("type", txType).Uint64("chain_id", cfg.ChainID).Msg("signed transaction")
	fmt.Printf("raw:  %s\n", hexutil.Encode(encoded))
	fmt.Printf("hash: %s\n", hexutil.Encode(hash[:]))
	return nil
}

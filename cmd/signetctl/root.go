// Command signetctl is a CLI front end for the signet toolkit:
// key generation, ECDSA sign/verify/recover, address derivation, and
// Ethereum transaction building, wired to cobra for flags and viper
// for layered configuration.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"signet.dev/signet/internal/config"
)

var (
	cfgFile string
	logger  zerolog.Logger
	v       *viper.Viper
)

var rootCmd = &cobra.Command{
	Use:   "signetctl",
	Short: "signet: a from-scratch secp256k1/ECDSA/Ethereum toolkit",
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().String("curve", "secp256k1", "elliptic curve to use")
	rootCmd.PersistentFlags().String("hash", "sha256", "hash for RFC 6979 nonce generation (sha256, sha512)")
	rootCmd.PersistentFlags().Bool("low-s", true, "canonicalize signatures to low-S form")
	rootCmd.PersistentFlags().Bool("extra-entropy", false, "mix OS entropy into RFC 6979 nonce generation")
	rootCmd.PersistentFlags().String("output", "hex", "output encoding (hex, sec1, p1363); validated, but no subcommand reads it")
	rootCmd.PersistentFlags().Uint64("chain-id", 1, "Ethereum chain id for EIP-155/2930/1559 transactions")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	v = viper.New()
	_ = v.BindPFlags(rootCmd.PersistentFlags())
}

func initConfig() {
	v = config.New(cfgFile)
	_ = v.BindPFlags(rootCmd.PersistentFlags())

	level, err := zerolog.ParseLevel(v.GetString("log-level"))
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger = zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
}

func loadConfig() (*config.Config, error) {
	return config.Load(v)
}

func fatalf(format string, args ...interface{}) {
	logger.Error().Msgf(format, args...)
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

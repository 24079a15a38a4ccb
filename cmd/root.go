// Package cmd wires the circularchain CLI.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "circularchain",
	Short: "Storage-metered supply-chain record store",
	Long: `circularchain tracks brands, products and their provenance stages.
Every mutation settles its exact storage delta against the caller's
prepaid deposit.`,
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("account", "alice.testnet", "caller account identity")
	rootCmd.PersistentFlags().Uint64("deposit", 1_000_000, "prepaid deposit attached to each mutating call")
	rootCmd.PersistentFlags().Uint64("byte-cost", 100, "unit price of one persisted byte")
	_ = viper.BindPFlag("account", rootCmd.PersistentFlags().Lookup("account"))
	_ = viper.BindPFlag("deposit", rootCmd.PersistentFlags().Lookup("deposit"))
	_ = viper.BindPFlag("byte_cost", rootCmd.PersistentFlags().Lookup("byte-cost"))
}

func initConfig() {
	viper.SetConfigName("circularchain")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("CIRCULARCHAIN")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.ReadInConfig() // Config file is optional.
}

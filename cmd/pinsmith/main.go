// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pinsmith CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the pinsmith CLI.
var rootCmd = &cobra.Command{
	Use:   "pinsmith",
	Short: "Generate SEO metadata and pin feeds from a product catalog",
	Long: `pinsmith converts a JSON file of product records into two derived
artifacts: one SEO metadata JSON document per product, and a single CSV
feed for the downstream pin generation tool.

Each stage is a subcommand: generate runs both passes, seo and pins run a
single pass, and history lists runs recorded in the ledger. Product copy is
screened against a word blocklist before anything is written; the first
offending record aborts the whole run.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pinsmith.yaml or ~/.config/pinsmith/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pinsmith")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pinsmith"))
		}
	}

	viper.SetEnvPrefix("PINSMITH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

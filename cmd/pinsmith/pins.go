// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/pdiddy/pinsmith/internal/catalog"
	"github.com/pdiddy/pinsmith/internal/pinfeed"
)

var pinsCmd = &cobra.Command{
	Use:   "pins [products.json]",
	Short: "Run only the pin feed pass",
	Long: `Pins loads a JSON array of product records and writes the aggregated
CSV feed to <out-dir>/pins/pins.csv, overwriting any prior feed.`,
	Args: cobra.ExactArgs(1),
	RunE: runPins,
}

func init() {
	pinsCmd.Flags().String("out-dir", "build", "parent directory for the pins/ output directory")
	pinsCmd.Flags().Bool("skip-validation", false, "disable the banned-word check for this run")

	rootCmd.AddCommand(pinsCmd)
}

func runPins(cmd *cobra.Command, args []string) error {
	fsys := afero.NewOsFs()
	outDir, _ := cmd.Flags().GetString("out-dir")

	validator, _, err := buildValidator(cmd)
	if err != nil {
		return err
	}

	products, err := catalog.Load(fsys, args[0])
	if err != nil {
		return err
	}

	rows, err := pinfeed.NewFormatter(fsys, outDir, validator).Generate(products, os.Stderr)
	if err != nil {
		return err
	}

	fmt.Printf("Generated %d pin row(s) from %d product(s)\n", rows, len(products))
	return nil
}

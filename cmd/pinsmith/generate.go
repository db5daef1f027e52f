// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pinsmith/internal/catalog"
	"github.com/pdiddy/pinsmith/internal/ledger"
	"github.com/pdiddy/pinsmith/internal/pinfeed"
	"github.com/pdiddy/pinsmith/internal/report"
	"github.com/pdiddy/pinsmith/internal/rules"
	"github.com/pdiddy/pinsmith/internal/seo"
	"github.com/pdiddy/pinsmith/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate [products.json]",
	Short: "Run both projection passes over a product file",
	Long: `Generate loads a JSON array of product records and runs the SEO pass
followed by the pin feed pass. SEO metadata lands in <out-dir>/seo/, one
file per product handle; the feed lands in <out-dir>/pins/pins.csv.

Validation failures abort the run. SEO files written before the failure
stay on disk; there is no rollback.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("out-dir", "build", "parent directory for the seo/ and pins/ output directories")
	generateCmd.Flags().Bool("skip-validation", false, "disable the banned-word check for this run")
	generateCmd.Flags().String("report", "", "write a YAML (or .json) run summary to this path")
	generateCmd.Flags().String("ledger", "", "record the run in this SQLite ledger")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	started := time.Now()
	fsys := afero.NewOsFs()
	outDir, _ := cmd.Flags().GetString("out-dir")

	validator, skipped, err := buildValidator(cmd)
	if err != nil {
		return err
	}

	products, err := catalog.Load(fsys, args[0])
	if err != nil {
		return err
	}

	seoFiles, err := seo.NewProjector(fsys, outDir, validator).Generate(products, os.Stderr)
	if err != nil {
		return err
	}

	pinRows, err := pinfeed.NewFormatter(fsys, outDir, validator).Generate(products, os.Stderr)
	if err != nil {
		return err
	}

	fmt.Printf("Generated %d SEO file(s) and %d pin row(s) from %d product(s)\n", seoFiles, pinRows, len(products))

	summary := types.RunSummary{
		InputPath:         args[0],
		Products:          len(products),
		SeoFiles:          seoFiles,
		PinRows:           pinRows,
		ValidationSkipped: skipped,
		StartedAt:         started,
		FinishedAt:        time.Now(),
	}

	if reportPath, _ := cmd.Flags().GetString("report"); reportPath != "" {
		if err := report.Write(fsys, reportPath, summary); err != nil {
			return err
		}
	}

	if ledgerPath := resolveLedgerPath(cmd); ledgerPath != "" {
		led, err := ledger.Open(ledgerPath)
		if err != nil {
			return err
		}
		defer led.Close()
		if err := led.Record(cmd.Context(), summary); err != nil {
			return err
		}
	}

	return nil
}

// buildValidator resolves the blocklist configuration from flags, the
// config file, and the environment. The PINSMITH_SKIP_VALIDATION override
// counts only when its value is exactly "true".
func buildValidator(cmd *cobra.Command) (*rules.Validator, bool, error) {
	skip, _ := cmd.Flags().GetBool("skip-validation")
	if !skip {
		skip = viper.GetString("skip_validation") == "true"
	}

	words := viper.GetStringSlice("banned_words")
	if len(words) == 0 {
		words = types.DefaultBannedWords
	}

	v, err := rules.New(types.ValidationConfig{BannedWords: words, Skip: skip})
	if err != nil {
		return nil, false, err
	}
	return v, skip, nil
}

// resolveLedgerPath prefers the --ledger flag over the config file.
func resolveLedgerPath(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("ledger"); path != "" {
		return path
	}
	return viper.GetString("ledger")
}

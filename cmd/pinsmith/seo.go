// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/pdiddy/pinsmith/internal/catalog"
	"github.com/pdiddy/pinsmith/internal/seo"
)

var seoCmd = &cobra.Command{
	Use:   "seo [products.json]",
	Short: "Run only the SEO metadata pass",
	Long: `Seo loads a JSON array of product records and writes one truncated SEO
metadata document per product to <out-dir>/seo/<handle>.json.`,
	Args: cobra.ExactArgs(1),
	RunE: runSeo,
}

func init() {
	seoCmd.Flags().String("out-dir", "build", "parent directory for the seo/ output directory")
	seoCmd.Flags().Bool("skip-validation", false, "disable the banned-word check for this run")

	rootCmd.AddCommand(seoCmd)
}

func runSeo(cmd *cobra.Command, args []string) error {
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

	written, err := seo.NewProjector(fsys, outDir, validator).Generate(products, os.Stderr)
	if err != nil {
		return err
	}

	fmt.Printf("Generated %d SEO file(s) from %d product(s)\n", written, len(products))
	return nil
}

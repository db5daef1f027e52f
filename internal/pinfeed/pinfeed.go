// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pinfeed renders the aggregated CSV feed consumed by the
// downstream pin generation tool.
//
// The feed format is not RFC 4180: double quotes in copy fields are deleted
// rather than escaped, and a field is quoted only when it contains a comma.
// The downstream tool consumes this exact shape, so a standard CSV writer
// cannot be used here.
package pinfeed

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/pdiddy/pinsmith/internal/rules"
	"github.com/pdiddy/pinsmith/internal/textutil"
	"github.com/pdiddy/pinsmith/pkg/types"
)

const (
	// outSubdir is the fixed directory under the output root for the feed.
	outSubdir = "pins"
	// feedFile is the fixed feed filename.
	feedFile = "pins.csv"
)

// header holds the fixed feed column names, in output order.
var header = []string{"Title", "Description", "Alt Text", "Board", "URL", "Tags", "Image_URL"}

// Formatter renders the product list into a single CSV feed file.
type Formatter struct {
	fs        afero.Fs
	outDir    string
	validator *rules.Validator
}

// NewFormatter returns a Formatter writing outDir/pins/pins.csv.
func NewFormatter(fsys afero.Fs, outDir string, v *rules.Validator) *Formatter {
	return &Formatter{fs: fsys, outDir: outDir, validator: v}
}

// Generate validates and formats every product, in input order, then writes
// the feed in one pass, overwriting any prior content. It returns the
// number of product rows written (the header excluded). A validation
// failure aborts before anything is written, even when the SEO pass already
// accepted earlier records.
func (f *Formatter) Generate(products []types.ProductRecord, w io.Writer) (int, error) {
	rows := make([]string, 0, len(products)+1)
	rows = append(rows, strings.Join(header, ","))

	for _, product := range products {
		// Same three fields as the SEO pass, re-validated independently on
		// the original values.
		for _, field := range []string{product.Title, product.Description, product.AltText} {
			if err := f.validator.Check(field); err != nil {
				return 0, err
			}
		}

		fields := []string{
			stripQuotes(textutil.Truncate(product.Title, types.MaxTitleLen)),
			stripQuotes(textutil.Truncate(product.Description, types.MaxDescriptionLen)),
			stripQuotes(textutil.Truncate(product.AltText, types.MaxAltTextLen)),
			product.Board,
			product.URL,
			strings.Join(product.Tags, " "),
			product.ImageURL,
		}
		for i, v := range fields {
			fields[i] = quoteIfComma(v)
		}
		rows = append(rows, strings.Join(fields, ","))
	}

	dir := filepath.Join(f.outDir, outSubdir)
	if err := f.fs.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("creating pins directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, feedFile)
	if err := afero.WriteFile(f.fs, path, []byte(strings.Join(rows, "\n")), 0o644); err != nil {
		return 0, fmt.Errorf("writing %s: %w", path, err)
	}

	fmt.Fprintf(w, "pins: %d row(s) -> %s\n", len(products), path)
	return len(products), nil
}

// stripQuotes deletes every double-quote character. Deletion, not escaping:
// the feed contract drops them from copy fields.
func stripQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, "")
}

// quoteIfComma wraps v in double quotes when it contains a comma. No other
// escaping is applied; quotes or newlines inside passthrough fields survive
// unmodified.
func quoteIfComma(v string) string {
	if strings.Contains(v, ",") {
		return `"` + v + `"`
	}
	return v
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package seo projects product records into per-product SEO metadata files.
package seo

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/pdiddy/pinsmith/internal/rules"
	"github.com/pdiddy/pinsmith/internal/textutil"
	"github.com/pdiddy/pinsmith/pkg/types"
)

// outSubdir is the fixed directory under the output root for SEO files.
const outSubdir = "seo"

// Projector writes one truncated SEO metadata document per product.
type Projector struct {
	fs        afero.Fs
	outDir    string
	validator *rules.Validator
}

// NewProjector returns a Projector writing under outDir/seo/.
func NewProjector(fsys afero.Fs, outDir string, v *rules.Validator) *Projector {
	return &Projector{fs: fsys, outDir: outDir, validator: v}
}

// Generate writes one metadata file per product, in input order, printing a
// status line per file to w. It returns the number of files written. The
// first validation or write failure aborts the pass; files already written
// stay on disk. Duplicate handles overwrite silently, last write wins.
func (p *Projector) Generate(products []types.ProductRecord, w io.Writer) (int, error) {
	dir := filepath.Join(p.outDir, outSubdir)
	if err := p.fs.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("creating seo directory %s: %w", dir, err)
	}

	written := 0
	for _, product := range products {
		// Validation runs on the original field values, before truncation.
		for _, field := range []string{product.Title, product.Description, product.AltText} {
			if err := p.validator.Check(field); err != nil {
				return written, err
			}
		}

		meta := types.SeoMetadata{
			ProductHandle:   product.Handle,
			MetaTitle:       textutil.Truncate(product.Title, types.MaxTitleLen),
			MetaDescription: textutil.Truncate(product.Description, types.MaxDescriptionLen),
			ImageAltText:    textutil.Truncate(product.AltText, types.MaxAltTextLen),
		}

		data, err := json.MarshalIndent(meta, "", "  ")
		if err != nil {
			return written, fmt.Errorf("marshaling metadata for %s: %w", product.Handle, err)
		}

		path := filepath.Join(dir, product.Handle+".json")
		if err := afero.WriteFile(p.fs, path, data, 0o644); err != nil {
			return written, fmt.Errorf("writing %s: %w", path, err)
		}

		fmt.Fprintf(w, "seo: %s\n", product.Handle)
		written++
	}
	return written, nil
}

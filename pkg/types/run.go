// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// RunSummary records the outcome of one generation run. It backs the
// printed count summary, the optional report file, and the run ledger.
type RunSummary struct {
	// InputPath is the product file the run was generated from.
	InputPath string `json:"input_path" yaml:"input_path"`

	// Products is the number of records loaded from the input file.
	Products int `json:"products" yaml:"products"`

	// SeoFiles is the number of per-product metadata files written.
	SeoFiles int `json:"seo_files" yaml:"seo_files"`

	// PinRows is the number of feed rows written, excluding the header.
	PinRows int `json:"pin_rows" yaml:"pin_rows"`

	// ValidationSkipped reports whether the banned-word check was disabled
	// for the run.
	ValidationSkipped bool `json:"validation_skipped" yaml:"validation_skipped"`

	StartedAt  time.Time `json:"started_at" yaml:"started_at"`
	FinishedAt time.Time `json:"finished_at" yaml:"finished_at"`
}

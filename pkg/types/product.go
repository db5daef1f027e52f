// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the pinsmith pipeline.
package types

// Truncation limits for the derived text fields. Both projection passes use
// the same limits, measured in bytes.
const (
	MaxTitleLen       = 60
	MaxDescriptionLen = 160
	MaxAltTextLen     = 150
)

// DefaultBannedWords is the blocklist applied when the configuration names
// no words of its own.
var DefaultBannedWords = []string{"pink", "rainbow"}

// ProductRecord is one entry of the input catalog file. Records are
// externally owned and never mutated after loading; both projection passes
// read the same slice.
type ProductRecord struct {
	// Handle is the unique product slug, used verbatim as the output
	// filename stem. Path safety is the caller's responsibility.
	Handle string `json:"handle" yaml:"handle"`

	// Title, Description, and AltText are free-form copy subject to
	// banned-word validation and length truncation.
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	AltText     string `json:"alt" yaml:"alt"`

	// Board, URL, and ImageURL are opaque passthrough values.
	Board    string `json:"board" yaml:"board"`
	URL      string `json:"url" yaml:"url"`
	ImageURL string `json:"image_url" yaml:"image_url"`

	// Tags are joined with single spaces in the pin feed, in order, without
	// deduplication.
	Tags []string `json:"tags" yaml:"tags"`
}

// SeoMetadata is the derived per-product SEO document. Constructed,
// serialized, discarded; never mutated.
type SeoMetadata struct {
	ProductHandle   string `json:"product_handle" yaml:"product_handle"`
	MetaTitle       string `json:"meta_title" yaml:"meta_title"`
	MetaDescription string `json:"meta_description" yaml:"meta_description"`
	ImageAltText    string `json:"image_alt_text" yaml:"image_alt_text"`
}

// ValidationConfig configures the content validator. It is resolved once by
// the CLI (flags, config file, environment) and injected at construction,
// never read from ambient state inside the validator.
type ValidationConfig struct {
	// BannedWords are matched as whole words, case-insensitively.
	BannedWords []string `json:"banned_words" yaml:"banned_words"`

	// Skip disables the check entirely.
	Skip bool `json:"skip" yaml:"skip"`
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rules screens product copy against a configured word blocklist
// before any output is generated.
package rules

import (
	"fmt"
	"regexp"

	"github.com/pdiddy/pinsmith/pkg/types"
)

// BannedWordError reports the first blocklisted word found in a validated
// text field. It is fatal to the whole run; there is no per-record recovery.
type BannedWordError struct {
	Word string
	Text string
}

func (e *BannedWordError) Error() string {
	return fmt.Sprintf("banned word %q found in %q", e.Word, e.Text)
}

type pattern struct {
	word string
	re   *regexp.Regexp
}

// Validator matches text fields against whole-word, case-insensitive
// blocklist patterns. It holds no ambient state; the skip override is fixed
// at construction.
type Validator struct {
	patterns []pattern
	skip     bool
}

// New compiles one \b-bounded, case-insensitive pattern per banned word.
func New(cfg types.ValidationConfig) (*Validator, error) {
	v := &Validator{skip: cfg.Skip}
	for _, word := range cfg.BannedWords {
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
		if err != nil {
			return nil, fmt.Errorf("compiling blocklist pattern for %q: %w", word, err)
		}
		v.patterns = append(v.patterns, pattern{word: word, re: re})
	}
	return v, nil
}

// Check returns a *BannedWordError for the first blocklisted word found in
// text, or nil. A skip-configured validator accepts everything.
func (v *Validator) Check(text string) error {
	if v.skip {
		return nil
	}
	for _, p := range v.patterns {
		if p.re.MatchString(text) {
			return &BannedWordError{Word: p.word, Text: text}
		}
	}
	return nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textutil provides the string shaping helpers shared by the SEO
// and pin feed passes.
package textutil

import "strings"

// Truncate caps s at max bytes and trims surrounding whitespace. When s
// exceeds the limit, the trim applies to the truncated slice; otherwise the
// original string is trimmed as-is. Indexing is by byte, so a cut may land
// inside a multi-byte sequence.
func Truncate(s string, max int) string {
	if max < 0 {
		max = 0
	}
	if len(s) > max {
		return strings.TrimSpace(s[:max])
	}
	return strings.TrimSpace(s)
}

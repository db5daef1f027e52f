// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textutil

import (
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{
			name: "short text is trimmed only",
			in:   "  A great mug  ",
			max:  60,
			want: "A great mug",
		},
		{
			name: "exact length is untouched",
			in:   "abcde",
			max:  5,
			want: "abcde",
		},
		{
			name: "over limit cuts then trims",
			in:   "hello world",
			max:  6,
			want: "hello",
		},
		{
			name: "cut point inside trailing space",
			in:   "mug   with a very long tail",
			max:  4,
			want: "mug",
		},
		{
			name: "empty input",
			in:   "",
			max:  10,
			want: "",
		},
		{
			name: "zero limit",
			in:   "anything",
			max:  0,
			want: "",
		},
		{
			name: "negative limit treated as zero",
			in:   "anything",
			max:  -1,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, tt.max)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestTruncateNeverExceedsLimit(t *testing.T) {
	inputs := []string{
		"",
		"short",
		strings.Repeat("x", 200),
		"  padded   " + strings.Repeat("word ", 50),
		"commas, and \"quotes\" and trailing space   ",
	}
	limits := []int{0, 1, 5, 60, 150, 160}

	for _, in := range inputs {
		for _, max := range limits {
			got := Truncate(in, max)
			if len(got) > max {
				t.Errorf("Truncate(%q, %d) length %d exceeds limit", in, max, len(got))
			}
		}
	}
}

func TestTruncateIdempotent(t *testing.T) {
	inputs := []string{
		"  A great mug  ",
		strings.Repeat("description text ", 20),
		"a red mug on a table",
	}
	for _, in := range inputs {
		for _, max := range []int{10, 60, 160} {
			once := Truncate(in, max)
			twice := Truncate(once, max)
			if once != twice {
				t.Errorf("Truncate not idempotent for %q at %d: %q then %q", in, max, once, twice)
			}
		}
	}
}

func TestTruncateShortEqualsTrim(t *testing.T) {
	in := "  Holds coffee well \t"
	if got, want := Truncate(in, 160), strings.TrimSpace(in); got != want {
		t.Errorf("Truncate = %q, want trimmed input %q", got, want)
	}
}

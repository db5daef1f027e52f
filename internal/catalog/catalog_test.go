// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFeed = `[
  {
    "handle": "mug-1",
    "title": "A great mug",
    "description": "Holds coffee well",
    "alt": "a red mug on a table",
    "board": "Kitchen",
    "url": "https://x/mug-1",
    "tags": ["mug", "kitchen"],
    "image_url": "https://x/mug-1.jpg"
  }
]`

func TestLoad(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "products.json", []byte(sampleFeed), 0o644))

	products, err := Load(fsys, "products.json")
	require.NoError(t, err)
	require.Len(t, products, 1)

	p := products[0]
	assert.Equal(t, "mug-1", p.Handle)
	assert.Equal(t, "A great mug", p.Title)
	assert.Equal(t, "Holds coffee well", p.Description)
	assert.Equal(t, "a red mug on a table", p.AltText)
	assert.Equal(t, "Kitchen", p.Board)
	assert.Equal(t, "https://x/mug-1", p.URL)
	assert.Equal(t, []string{"mug", "kitchen"}, p.Tags)
	assert.Equal(t, "https://x/mug-1.jpg", p.ImageURL)
}

func TestLoadEmptyArray(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "products.json", []byte("[]"), 0o644))

	products, err := Load(fsys, "products.json")
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestLoadMissingFile(t *testing.T) {
	fsys := afero.NewMemMapFs()

	_, err := Load(fsys, "absent.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading product file")
}

func TestLoadInvalidJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "not json at all"},
		{name: "object instead of array", body: `{"handle": "mug-1"}`},
		{name: "mistyped tags", body: `[{"handle": "mug-1", "tags": "mug kitchen"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fsys, "products.json", []byte(tt.body), 0o644))

			_, err := Load(fsys, "products.json")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "parsing product file")
		})
	}
}

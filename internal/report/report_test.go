// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pinsmith/pkg/types"
)

func sampleSummary() types.RunSummary {
	return types.RunSummary{
		InputPath:  "products.json",
		Products:   3,
		SeoFiles:   3,
		PinRows:    3,
		StartedAt:  time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC),
		FinishedAt: time.Date(2026, 2, 10, 9, 0, 1, 0, time.UTC),
	}
}

func TestWriteYAML(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, Write(fsys, "report.yaml", sampleSummary()))

	data, err := afero.ReadFile(fsys, "report.yaml")
	require.NoError(t, err)

	var got types.RunSummary
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, "products.json", got.InputPath)
	assert.Equal(t, 3, got.Products)
	assert.Equal(t, 3, got.SeoFiles)
	assert.Equal(t, 3, got.PinRows)
	assert.False(t, got.ValidationSkipped)
}

func TestWriteJSON(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, Write(fsys, "report.json", sampleSummary()))

	data, err := afero.ReadFile(fsys, "report.json")
	require.NoError(t, err)

	var got types.RunSummary
	require.NoError(t, json.Unmarshal(data, &got))
	want := sampleSummary()
	assert.Equal(t, want.InputPath, got.InputPath)
	assert.Equal(t, want.Products, got.Products)
	assert.Equal(t, want.SeoFiles, got.SeoFiles)
	assert.Equal(t, want.PinRows, got.PinRows)
	assert.True(t, got.StartedAt.Equal(want.StartedAt))
	assert.True(t, got.FinishedAt.Equal(want.FinishedAt))
}

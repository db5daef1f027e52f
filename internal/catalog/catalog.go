// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog loads product records from the input feed file.
package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"

	"github.com/pdiddy/pinsmith/pkg/types"
)

// Load reads path from fsys and decodes it as a JSON array of product
// records. An unreadable file or invalid JSON is fatal; there is no
// per-record recovery and no schema validation beyond decoding.
func Load(fsys afero.Fs, path string) ([]types.ProductRecord, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading product file %s: %w", path, err)
	}

	var products []types.ProductRecord
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("parsing product file %s: %w", path, err)
	}
	return products, nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report serializes run summaries for post-run inspection.
package report

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pinsmith/pkg/types"
)

// Write marshals s to path. A .json extension selects pretty-printed JSON;
// any other extension gets YAML.
func Write(fsys afero.Fs, path string, s types.RunSummary) error {
	var (
		data []byte
		err  error
	)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err = json.MarshalIndent(s, "", "  ")
	} else {
		data, err = yaml.Marshal(s)
	}
	if err != nil {
		return fmt.Errorf("marshaling run report: %w", err)
	}

	if err := afero.WriteFile(fsys, path, data, 0o644); err != nil {
		return fmt.Errorf("writing run report %s: %w", path, err)
	}
	return nil
}

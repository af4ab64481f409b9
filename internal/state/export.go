// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package state

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/specnav/pkg/types"
)

// Export is the full content of the state store.
type Export struct {
	Pins      []string         `json:"pins" yaml:"pins"`
	Snapshots []types.Snapshot `json:"snapshots" yaml:"snapshots"`
}

// Dump reads the pin list and every pending snapshot.
func (s *Store) Dump(ctx context.Context) (Export, error) {
	pins, err := s.Pins(ctx)
	if err != nil {
		return Export{}, err
	}
	snaps, err := s.Snapshots(ctx, "")
	if err != nil {
		return Export{}, err
	}
	if snaps == nil {
		snaps = []types.Snapshot{}
	}
	return Export{Pins: pins, Snapshots: snaps}, nil
}

// ExportYAML writes the store content to w as YAML.
func (s *Store) ExportYAML(ctx context.Context, w io.Writer) error {
	dump, err := s.Dump(ctx)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(dump); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return enc.Close()
}

// ExportJSON writes the store content to w as indented JSON.
func (s *Store) ExportJSON(ctx context.Context, w io.Writer) error {
	dump, err := s.Dump(ctx)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dump); err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return nil
}

package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"promogen/src-gen/model"

	"github.com/google/uuid"
)

// WriteIndex serializes events to <root>/index.json through a temp file and a
// rename, so a concurrent reader never observes a half-written index.
func WriteIndex(root string, events []model.Event) error {
	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return fmt.Errorf("WriteIndex: %w", err)
	}
	data = append(data, '\n')

	tmp := filepath.Join(root, ".index-"+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("WriteIndex: %w", err)
	}
	if err := os.Rename(tmp, filepath.Join(root, IndexFileName)); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("WriteIndex: %w", err)
	}
	return nil
}

// Build scans the store root and rewrites the index document. Rebuilding an
// unchanged store yields byte-identical output.
func Build(root string) ([]model.Event, error) {
	events, err := Scan(root)
	if err != nil {
		return nil, err
	}
	if err := WriteIndex(root, events); err != nil {
		return nil, err
	}
	return events, nil
}

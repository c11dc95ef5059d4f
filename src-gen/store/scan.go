package store

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"promogen/src-gen/model"
	"sort"
	"strings"
)

const IndexFileName = "index.json"

var (
	ErrStoreRootMissing = errors.New("store root does not exist")
	ErrFolderExists     = errors.New("event folder already exists")
)

// Scan enumerates the event folders under root and returns them sorted by
// date, time, then folder name. Folders with a missing or malformed metadata
// document are logged and skipped, never fatal. Dot-prefixed folders are
// staging space and ignored.
func Scan(root string) ([]model.Event, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrStoreRootMissing, root)
		}
		return nil, fmt.Errorf("Scan: %w", err)
	}

	events := make([]model.Event, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		meta, err := model.LoadMeta(filepath.Join(root, entry.Name()))
		if err != nil {
			slog.Warn("skipping event folder", "folder", entry.Name(), "error", err)
			continue
		}
		if _, err := os.Stat(filepath.Join(root, entry.Name(), meta.ImageName())); err != nil {
			slog.Warn("missing cover image", "folder", entry.Name(), "image", meta.ImageName())
		}
		events = append(events, model.Event{Folder: entry.Name(), Meta: *meta})
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Less(events[j])
	})
	return events, nil
}

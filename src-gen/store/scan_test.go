package store_test

import (
	"bytes"
	"os"
	"path/filepath"
	"promogen/src-gen/model"
	"promogen/src-gen/store"
	"testing"
)

func writeEventFolder(t *testing.T, root, folder, metaJSON string) {
	t.Helper()
	dir := filepath.Join(root, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if metaJSON != "" {
		if err := os.WriteFile(filepath.Join(dir, model.MetaFileName), []byte(metaJSON), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, model.DefaultImageName), []byte("jpg"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestScan(t *testing.T) {
	root := t.TempDir()

	writeEventFolder(t, root, "2026-03-02-closing", `{"title":"Closing","date":"2026-03-02"}`)
	writeEventFolder(t, root, "2026-02-10-opening", `{"title":"Opening","date":"2026-02-10"}`)
	writeEventFolder(t, root, "broken", `{`)
	writeEventFolder(t, root, "no-date", `{"title":"No Date"}`)
	writeEventFolder(t, root, ".stage-abc", `{"title":"Staged","date":"2026-01-01"}`)
	if err := os.MkdirAll(filepath.Join(root, "no-meta"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "stray-file.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	events, err := store.Scan(root)
	if err != nil {
		t.Fatal(err)
	}

	// exactly one entry per folder with a valid date, in chronological order
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2: %+v", len(events), events)
	}
	if events[0].Folder != "2026-02-10-opening" || events[1].Folder != "2026-03-02-closing" {
		t.Errorf("wrong order: %q, %q", events[0].Folder, events[1].Folder)
	}
}

func TestScanOrderIsTotal(t *testing.T) {
	root := t.TempDir()

	writeEventFolder(t, root, "zz-late", `{"date":"2026-06-01","time":"23:00"}`)
	writeEventFolder(t, root, "aa-early", `{"date":"2026-06-01","time":"20:00"}`)
	writeEventFolder(t, root, "bb-tied", `{"date":"2026-06-01","time":"20:00"}`)

	events, err := store.Scan(root)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"aa-early", "bb-tied", "zz-late"}
	for i, folder := range want {
		if events[i].Folder != folder {
			t.Errorf("position %d: got %q, want %q", i, events[i].Folder, folder)
		}
	}
}

func TestScanMissingRoot(t *testing.T) {
	if _, err := store.Scan(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected missing store root to fail")
	}
}

func TestBuildIdempotent(t *testing.T) {
	root := t.TempDir()
	writeEventFolder(t, root, "2026-02-10-opening", `{"title":"Opening","date":"2026-02-10","time":"22:00"}`)
	writeEventFolder(t, root, "2026-03-02-closing", `{"title":"Closing","date":"2026-03-02"}`)

	if _, err := store.Build(root); err != nil {
		t.Fatal(err)
	}
	first, err := os.ReadFile(filepath.Join(root, store.IndexFileName))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := store.Build(root); err != nil {
		t.Fatal(err)
	}
	second, err := os.ReadFile(filepath.Join(root, store.IndexFileName))
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(first, second) {
		t.Error("rebuilding an unchanged store must yield byte-identical output")
	}

	// no temp files left behind
	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatal(err)
	}
	for _, entry := range entries {
		if !entry.IsDir() && entry.Name() != store.IndexFileName {
			t.Errorf("unexpected file in store root: %s", entry.Name())
		}
	}
}

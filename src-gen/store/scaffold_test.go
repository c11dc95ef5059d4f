package store_test

import (
	"errors"
	"os"
	"path/filepath"
	"promogen/src-gen/model"
	"promogen/src-gen/store"
	"strings"
	"testing"
)

func TestScaffold(t *testing.T) {
	root := filepath.Join(t.TempDir(), "events")

	folder, err := store.Scaffold(root, store.ScaffoldRequest{
		Title: "Opening Night",
		Date:  "2026-03-07",
		Time:  "22:00",
	})
	if err != nil {
		t.Fatal(err)
	}
	if folder != "2026-03-07-opening-night" {
		t.Errorf("unexpected folder name: %q", folder)
	}

	meta, err := model.LoadMeta(filepath.Join(root, folder))
	if err != nil {
		t.Fatal(err)
	}
	if meta.Title != "Opening Night" || meta.Date != "2026-03-07" || meta.Image != model.DefaultImageName {
		t.Errorf("unexpected meta: %+v", meta)
	}
	if _, err := os.Stat(filepath.Join(root, folder, model.DefaultImageName)); err != nil {
		t.Error("placeholder cover image missing:", err)
	}

	// no staging leftovers
	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatal(err)
	}
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			t.Errorf("staging leftover in store root: %s", entry.Name())
		}
	}
}

func TestScaffoldCollision(t *testing.T) {
	root := filepath.Join(t.TempDir(), "events")
	req := store.ScaffoldRequest{Title: "Opening Night", Date: "2026-03-07"}

	if _, err := store.Scaffold(root, req); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Scaffold(root, req); !errors.Is(err, store.ErrFolderExists) {
		t.Errorf("second scaffold must collide, got %v", err)
	}

	// the store must still hold exactly one event folder
	events, err := store.Scan(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 {
		t.Errorf("got %d events after collision, want 1", len(events))
	}
}

func TestScaffoldRejectsBadInput(t *testing.T) {
	root := filepath.Join(t.TempDir(), "events")

	// case: missing date
	func() {
		if _, err := store.Scaffold(root, store.ScaffoldRequest{Title: "x"}); err == nil {
			t.Error("expected missing date to be rejected")
		}
	}()

	// case: unparsable date
	func() {
		if _, err := store.Scaffold(root, store.ScaffoldRequest{Title: "x", Date: "next friday"}); err == nil {
			t.Error("expected unparsable date to be rejected")
		}
	}()

	// case: bad time
	func() {
		if _, err := store.Scaffold(root, store.ScaffoldRequest{Title: "x", Date: "2026-03-07", Time: "25:99"}); err == nil {
			t.Error("expected bad time to be rejected")
		}
	}()

	// case: blank title
	func() {
		if _, err := store.Scaffold(root, store.ScaffoldRequest{Date: "2026-03-07"}); err == nil {
			t.Error("expected blank title to be rejected")
		}
	}()

	// case: unreadable image
	func() {
		_, err := store.Scaffold(root, store.ScaffoldRequest{
			Title:     "x",
			Date:      "2026-03-07",
			ImagePath: filepath.Join(root, "does-not-exist.jpg"),
		})
		if err == nil {
			t.Error("expected unreadable image to be rejected")
		}
	}()

	// nothing may have been written
	if _, err := os.Stat(root); err == nil {
		entries, err := os.ReadDir(root)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 0 {
			t.Errorf("rejected scaffolds left files behind: %v", entries)
		}
	}
}

func TestScaffoldCopiesImage(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "events")
	src := filepath.Join(dir, "flyer.png")
	if err := os.WriteFile(src, []byte("png-bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	folder, err := store.Scaffold(root, store.ScaffoldRequest{
		Title:     "Neon Nights",
		Date:      "2026-05-01",
		ImagePath: src,
	})
	if err != nil {
		t.Fatal(err)
	}

	copied, err := os.ReadFile(filepath.Join(root, folder, model.DefaultImageName))
	if err != nil {
		t.Fatal(err)
	}
	if string(copied) != "png-bytes" {
		t.Error("cover image content differs from the source image")
	}
}

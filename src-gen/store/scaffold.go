package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"promogen/src-gen/model"
	"promogen/src-gen/utils"
	"strings"

	"github.com/google/uuid"
)

type ScaffoldRequest struct {
	Title       string
	Date        string
	Time        string
	Location    string
	Description string
	TicketURL   string
	PromoterURL string
	CouponCode  string

	// path to the source cover image; a zero-byte placeholder is written
	// when blank
	ImagePath string

	// custom folder slug, derived from the title when blank
	Slug string
}

// Scaffold creates one event folder under root and returns its name. The
// whole folder is staged under a dot-prefixed temp name and renamed into
// place, so a concurrent scan never sees a partial event. Validation failures
// and name collisions reject the request before anything is written.
func Scaffold(root string, req ScaffoldRequest) (string, error) {
	if strings.TrimSpace(req.Title) == "" {
		return "", fmt.Errorf("Scaffold: title is blank")
	}
	meta := &model.Meta{
		Title:       req.Title,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		Description: req.Description,
		TicketURL:   req.TicketURL,
		PromoterURL: req.PromoterURL,
		CouponCode:  req.CouponCode,
		Image:       model.DefaultImageName,
	}
	if err := meta.Validate(); err != nil {
		return "", fmt.Errorf("Scaffold: %w", err)
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Title)
	}
	folder := meta.Date + "-" + slug
	target := filepath.Join(root, folder)
	if _, err := os.Stat(target); err == nil {
		return "", fmt.Errorf("%w: %s", ErrFolderExists, folder)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("Scaffold: %w", err)
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return "", fmt.Errorf("Scaffold: %w", err)
	}
	stage := filepath.Join(root, ".stage-"+uuid.NewString())
	if err := os.Mkdir(stage, 0o755); err != nil {
		return "", fmt.Errorf("Scaffold: %w", err)
	}

	if err := func() error {
		data, err := json.MarshalIndent(meta, "", "  ")
		if err != nil {
			return err
		}
		data = append(data, '\n')
		if err := os.WriteFile(filepath.Join(stage, model.MetaFileName), data, 0o644); err != nil {
			return err
		}
		cover := filepath.Join(stage, model.DefaultImageName)
		if req.ImagePath == "" {
			// placeholder, to be replaced with the real flyer
			return os.WriteFile(cover, nil, 0o644)
		}
		return copyFile(req.ImagePath, cover)
	}(); err != nil {
		os.RemoveAll(stage)
		return "", fmt.Errorf("Scaffold: %w", err)
	}

	if err := os.Rename(stage, target); err != nil {
		os.RemoveAll(stage)
		return "", fmt.Errorf("Scaffold: %w", err)
	}
	return folder, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

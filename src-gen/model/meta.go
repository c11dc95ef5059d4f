package model

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator"
)

const (
	MetaFileName     = "meta.json"
	DefaultImageName = "cover.jpg"

	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var validate = func() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("ymd", validateYMD)
	_ = v.RegisterValidation("hhmm", validateHHMM)
	return v
}()

func validateYMD(fl validator.FieldLevel) bool {
	_, err := time.Parse(DateLayout, fl.Field().String())
	return err == nil
}

func validateHHMM(fl validator.FieldLevel) bool {
	_, err := time.Parse(TimeLayout, fl.Field().String())
	return err == nil
}

// Meta is the per-folder metadata document. Unknown fields in the document are
// ignored so older builds keep working against newer folders.
type Meta struct {
	Title       string `json:"title"`
	Date        string `json:"date" validate:"required,ymd"`
	Time        string `json:"time" validate:"omitempty,hhmm"`
	Location    string `json:"location"`
	Description string `json:"description"`
	TicketURL   string `json:"ticket_url" validate:"omitempty,url"`
	PromoterURL string `json:"promoter_url" validate:"omitempty,url"`
	CouponCode  string `json:"coupon_code"`
	Image       string `json:"image"`
}

func (m *Meta) Validate() error {
	if err := validate.Struct(m); err != nil {
		return fmt.Errorf("(*Meta).Validate: %w", err)
	}
	return nil
}

// ImageName returns the cover image filename, falling back to cover.jpg.
func (m *Meta) ImageName() string {
	if m.Image == "" {
		return DefaultImageName
	}
	return m.Image
}

// LoadMeta reads and validates the metadata document of one event folder.
func LoadMeta(dir string) (*Meta, error) {
	raw, err := os.ReadFile(filepath.Join(dir, MetaFileName))
	if err != nil {
		return nil, fmt.Errorf("LoadMeta: %w", err)
	}
	meta := new(Meta)
	if err := json.Unmarshal(raw, meta); err != nil {
		return nil, fmt.Errorf("LoadMeta: %w", err)
	}
	if err := meta.Validate(); err != nil {
		return nil, fmt.Errorf("LoadMeta: %w", err)
	}
	return meta, nil
}

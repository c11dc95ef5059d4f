package command

import (
	"flag"
	"fmt"
	"log/slog"
	"promogen/src-gen/model"
	"promogen/src-gen/store"
	"promogen/src-gen/utils"
	"strings"
	"time"
)

// New scaffolds one event folder from flag values.
func New(as *utils.AppState, args []string) error {
	flagSet := flag.NewFlagSet("new", flag.ContinueOnError)
	title := flagSet.String("title", "", "event title (required)")
	date := flagSet.String("date", "", "event date, YYYY-MM-DD or natural language (required)")
	timeStr := flagSet.String("time", "", "start time, HH:MM")
	location := flagSet.String("location", "", "location text")
	description := flagSet.String("description", "", "short description")
	ticket := flagSet.String("ticket", "", "ticket purchase URL")
	promoter := flagSet.String("promoter", "", "promoter link (instagram/whatsapp/etc)")
	coupon := flagSet.String("coupon", "", "coupon code")
	image := flagSet.String("image", "", "path to the cover image; a placeholder is written when omitted")
	slug := flagSet.String("slug", "", "custom folder slug; derived from the title when omitted")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	resolvedDate, err := resolveDate(as, *date)
	if err != nil {
		return err
	}

	folder, err := store.Scaffold(as.Config.GetEventsDir(), store.ScaffoldRequest{
		Title:       utils.CleanupString(*title),
		Date:        resolvedDate,
		Time:        strings.TrimSpace(*timeStr),
		Location:    utils.CleanupString(*location),
		Description: utils.CleanupString(*description),
		TicketURL:   strings.TrimSpace(*ticket),
		PromoterURL: strings.TrimSpace(*promoter),
		CouponCode:  strings.TrimSpace(*coupon),
		ImagePath:   *image,
		Slug:        *slug,
	})
	if err != nil {
		return err
	}

	slog.Info("event folder created", "folder", folder)
	if *image == "" {
		slog.Warn("placeholder cover image written, replace it before publishing",
			"image", model.DefaultImageName)
	}
	slog.Info("next: run `promogen build` to refresh the index")
	return nil
}

// resolveDate accepts the canonical YYYY-MM-DD form first and falls back to
// the natural-language parser ("next friday", "march 2") before rejecting.
func resolveDate(as *utils.AppState, raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("resolveDate: date is blank")
	}
	if _, err := time.ParseInLocation(model.DateLayout, raw, as.Config.GetLocation()); err == nil {
		return raw, nil
	}
	result, err := as.When.Parse(raw, time.Now().In(as.Config.GetLocation()))
	if err != nil || result == nil {
		return "", fmt.Errorf("resolveDate: can't parse date %q (expected YYYY-MM-DD)", raw)
	}
	return result.Time.Format(model.DateLayout), nil
}

package command

import (
	"flag"
	"log/slog"
	"path/filepath"
	"promogen/src-gen/store"
	"promogen/src-gen/utils"
	"time"
)

// Build scans the event store and rewrites the index document.
func Build(as *utils.AppState, args []string) error {
	flagSet := flag.NewFlagSet("build", flag.ContinueOnError)
	verbose := flagSet.Bool("verbose", false, "log every indexed folder")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	start := time.Now()
	events, err := store.Build(as.Config.GetEventsDir())
	if err != nil {
		return err
	}
	if *verbose {
		for _, event := range events {
			slog.Info("indexed", "folder", event.Folder, "date", event.Date, "time", event.Time)
		}
	}
	slog.Info("index written",
		"path", filepath.Join(as.Config.GetEventsDir(), store.IndexFileName),
		"events", len(events),
		"took", time.Since(start))
	return nil
}

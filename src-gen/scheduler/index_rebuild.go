package scheduler

import (
	"log/slog"
	"promogen/src-gen/store"
	"promogen/src-gen/utils"
	"time"
)

// IndexRebuild rebuilds the index on a fixed interval so folders added or
// edited while the preview server runs show up without a manual build.
func IndexRebuild(as *utils.AppState) {
	for {
		time.Sleep(as.Config.GetRebuildInterval())

		start := time.Now()
		events, err := store.Build(as.Config.GetEventsDir())
		if err != nil {
			slog.Error("IndexRebuild: can't rebuild index", "error", err)
			continue
		}
		as.MetricChans.IndexBuild <- float64(time.Since(start).Microseconds())
		as.MetricChans.IndexedEvents <- float64(len(events))
		slog.Debug("index rebuilt", "events", len(events))
	}
}

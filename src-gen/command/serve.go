package command

import (
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"promogen/src-gen/metric"
	"promogen/src-gen/route"
	"promogen/src-gen/scheduler"
	"promogen/src-gen/store"
	"promogen/src-gen/utils"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Serve rebuilds the index once, then serves the site for local preview until
// interrupted. A scheduler goroutine keeps the index fresh while it runs.
func Serve(as *utils.AppState, args []string) error {
	flagSet := flag.NewFlagSet("serve", flag.ContinueOnError)
	port := flagSet.String("port", as.Config.GetPort(), "port to listen on")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	metric.Init(as)

	start := time.Now()
	events, err := store.Build(as.Config.GetEventsDir())
	if err != nil {
		return err
	}
	as.MetricChans.IndexBuild <- float64(time.Since(start).Microseconds())
	as.MetricChans.IndexedEvents <- float64(len(events))

	go scheduler.IndexRebuild(as)

	go func() {
		muxer := http.NewServeMux()
		muxer.Handle("GET /metrics", promhttp.Handler())
		route.Site(muxer, as)
		if err := http.ListenAndServe(":"+*port, muxer); err != nil {
			slog.Error("cannot start HTTP server", "error", err)
			as.AppCloseSignalChan <- syscall.SIGTERM
		}
	}()

	slog.Info("serving", "url", "http://localhost:"+*port, "events", len(events))
	slog.Info("press Ctrl+C to exit")

	signal.Notify(as.AppCloseSignalChan, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-as.AppCloseSignalChan
	as.GracefulShutdown()

	slog.Info("gracefully shutting down...")
	return nil
}

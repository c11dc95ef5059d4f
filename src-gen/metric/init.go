package metric

import (
	"log/slog"
	"promogen/src-gen/utils"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func indexBuild(as *utils.AppState, clearTickerInterval *time.Duration) {
	indexBuild := promauto.NewGauge(prometheus.GaugeOpts{
		Name: "promogen_index_build_microsec",
		Help: "The latency of the last index rebuild in microseconds",
	})
	good := true
	if err := prometheus.Register(indexBuild); err != nil {
		if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
			slog.Error("can't register promogen_index_build_microsec metric", "error", err)
			good = false
		}
	}
	if good {
		slog.Debug("promogen_index_build_microsec metric registered")
		indexBuild.Set(0)
	}
	go func() {
		gracefulShutdownCh := as.CreateGracefulShutdownChan()
		clearTicker := time.NewTicker(*clearTickerInterval)
		defer clearTicker.Stop()
		for {
			select {
			case <-gracefulShutdownCh:
				switch prometheus.Unregister(indexBuild) {
				case true:
					slog.Debug("promogen_index_build_microsec metric unregistered")
				case false:
					slog.Warn("promogen_index_build_microsec metric not registered")
				}
				return
			case latency := <-as.MetricChans.IndexBuild:
				indexBuild.Set(latency)
				clearTicker.Reset(*clearTickerInterval)
			case <-clearTicker.C:
				indexBuild.Set(0)
			}
		}
	}()
}

func indexedEvents(as *utils.AppState) {
	indexedEvents := promauto.NewGauge(prometheus.GaugeOpts{
		Name: "promogen_indexed_events",
		Help: "The number of events in the last written index",
	})
	good := true
	if err := prometheus.Register(indexedEvents); err != nil {
		if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
			slog.Error("can't register promogen_indexed_events metric", "error", err)
			good = false
		}
	}
	if good {
		slog.Debug("promogen_indexed_events metric registered")
		indexedEvents.Set(0)
	}
	go func() {
		gracefulShutdownCh := as.CreateGracefulShutdownChan()
		for {
			select {
			case <-gracefulShutdownCh:
				switch prometheus.Unregister(indexedEvents) {
				case true:
					slog.Debug("promogen_indexed_events metric unregistered")
				case false:
					slog.Warn("promogen_indexed_events metric not registered")
				}
				return
			case count := <-as.MetricChans.IndexedEvents:
				indexedEvents.Set(count)
			}
		}
	}()
}

func httpRequest(as *utils.AppState, clearTickerInterval *time.Duration) {
	httpRequest := promauto.NewGauge(prometheus.GaugeOpts{
		Name: "promogen_http_request_microsec",
		Help: "The latency of a preview server request in microseconds",
	})
	good := true
	if err := prometheus.Register(httpRequest); err != nil {
		if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
			slog.Error("can't register promogen_http_request_microsec metric", "error", err)
			good = false
		}
	}
	if good {
		slog.Debug("promogen_http_request_microsec metric registered")
		httpRequest.Set(0)
	}
	go func() {
		gracefulShutdownCh := as.CreateGracefulShutdownChan()
		clearTicker := time.NewTicker(*clearTickerInterval)
		defer clearTicker.Stop()
		for {
			select {
			case <-gracefulShutdownCh:
				switch prometheus.Unregister(httpRequest) {
				case true:
					slog.Debug("promogen_http_request_microsec metric unregistered")
				case false:
					slog.Warn("promogen_http_request_microsec metric not registered")
				}
				return
			case latency := <-as.MetricChans.HttpRequest:
				httpRequest.Set(latency)
				clearTicker.Reset(*clearTickerInterval)
			case <-clearTicker.C:
				httpRequest.Set(0)
			}
		}
	}()
}

func Init(as *utils.AppState) {
	clearTickerInterval := as.Config.GetRebuildInterval() * 2

	indexBuild(as, &clearTickerInterval)
	indexedEvents(as)
	httpRequest(as, &clearTickerInterval)
}

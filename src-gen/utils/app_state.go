package utils

import (
	"os"
	"sync"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

type AppState struct {
	Config      *Config
	When        *when.Parser
	MetricChans *Metric

	AppCloseSignalChan chan os.Signal

	mutex                 sync.Mutex
	gracefulShutdownChans []chan struct{}
}

func NewAppState() *AppState {
	as := &AppState{}

	// date parser
	as.When = when.New(nil)
	as.When.Add(en.All...)
	as.When.Add(common.All...)

	// env
	as.Config = NewConfig()

	as.MetricChans = NewMetric()
	as.AppCloseSignalChan = make(chan os.Signal, 1)

	return as
}

// Each long-running goroutine gets its own channel; GracefulShutdown closes
// them all.
func (as *AppState) CreateGracefulShutdownChan() chan struct{} {
	as.mutex.Lock()
	defer as.mutex.Unlock()
	ch := make(chan struct{})
	as.gracefulShutdownChans = append(as.gracefulShutdownChans, ch)
	return ch
}

func (as *AppState) GracefulShutdown() {
	as.mutex.Lock()
	defer as.mutex.Unlock()
	for _, ch := range as.gracefulShutdownChans {
		close(ch)
	}
	as.gracefulShutdownChans = nil
}

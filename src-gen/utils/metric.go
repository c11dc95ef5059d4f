package utils

type Metric struct {
	IndexBuild    chan float64
	IndexedEvents chan float64
	HttpRequest   chan float64
}

func NewMetric() *Metric {
	return &Metric{
		IndexBuild:    make(chan float64),
		IndexedEvents: make(chan float64),
		HttpRequest:   make(chan float64),
	}
}

package store

import (
	"promogen/src-gen/clock"
	"promogen/src-gen/model"
	"time"
)

// Partition splits an index into upcoming and past relative to the clock's
// current date in loc. An event dated today counts as upcoming regardless of
// its time. Upcoming keeps the index order; past is returned most recent
// first, which is how the site shows it.
func Partition(events []model.Event, clk clock.Clock, loc *time.Location) (upcoming, past []model.Event) {
	today := clk.Now().In(loc).Format(model.DateLayout)
	for _, event := range events {
		if event.Date >= today {
			upcoming = append(upcoming, event)
		} else {
			past = append(past, event)
		}
	}
	for i, j := 0, len(past)-1; i < j; i, j = i+1, j-1 {
		past[i], past[j] = past[j], past[i]
	}
	return upcoming, past
}

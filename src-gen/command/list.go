package command

import (
	"flag"
	"fmt"
	"promogen/src-gen/clock"
	"promogen/src-gen/model"
	"promogen/src-gen/store"
	"promogen/src-gen/utils"
)

// List prints the upcoming events, and the past ones on request.
func List(as *utils.AppState, args []string) error {
	flagSet := flag.NewFlagSet("list", flag.ContinueOnError)
	showPast := flagSet.Bool("past", false, "also print past events, most recent first")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	events, err := store.Scan(as.Config.GetEventsDir())
	if err != nil {
		return err
	}
	upcoming, past := store.Partition(events, clock.NewSystem(), as.Config.GetLocation())

	fmt.Printf("upcoming (%d):\n", len(upcoming))
	for _, event := range upcoming {
		printEvent(event)
	}
	if *showPast {
		fmt.Printf("past (%d):\n", len(past))
		for _, event := range past {
			printEvent(event)
		}
	}
	return nil
}

func printEvent(event model.Event) {
	startTime := event.Time
	if startTime == "" {
		startTime = "--:--"
	}
	fmt.Printf("  %s %s  %-30s  %s\n", event.Date, startTime, event.Title, event.Folder)
}

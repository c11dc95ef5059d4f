package main

import (
	"fmt"
	"log/slog"
	"os"
	"promogen/src-gen/command"
	"promogen/src-gen/utils"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
)

func init() {
	if err := godotenv.Load(); err != nil {
		slog.Info(err.Error())
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.RFC1123Z,
		}),
	))
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: promogen <command> [flags]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "commands:")
	fmt.Fprintln(os.Stderr, "  new    create a new event folder with meta.json and a cover image")
	fmt.Fprintln(os.Stderr, "  build  rebuild events/index.json from the event folders")
	fmt.Fprintln(os.Stderr, "  list   print upcoming (and optionally past) events")
	fmt.Fprintln(os.Stderr, "  serve  local preview server, rebuilds the index while running")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	as := utils.NewAppState()

	var err error
	switch os.Args[1] {
	case "new":
		err = command.New(as, os.Args[2:])
	case "build":
		err = command.Build(as, os.Args[2:])
	case "list":
		err = command.List(as, os.Args[2:])
	case "serve":
		err = command.Serve(as, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		slog.Error(os.Args[1]+" failed", "error", err)
		os.Exit(1)
	}
}

// Command uselist replays scripted list operations against a headless todo
// app and prints what it renders.
package main

import (
	"os"

	"github.com/go-drift/uselist/cmd/uselist/internal/cli"
	"github.com/go-drift/uselist/cmd/uselist/internal/logging"
)

func main() {
	logger := logging.NewLogger(os.Stderr, logging.LevelInfo)
	if err := cli.Execute(os.Args[1:], logger); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

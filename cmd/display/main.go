// Command display runs a headless display client for one screen. It keeps
// the screen snapshot in sync the same way the kiosk frontend does, which
// makes it useful for burn-in tests and for watching a lane from a terminal.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	aqm "github.com/appetiteclub/apt"
	"github.com/glenwooddrivein/menuboard/internal/display"
)

const appNamespace = "DISPLAY"

func main() {
	config, err := aqm.LoadConfig(appNamespace, os.Args[1:])
	if err != nil {
		log.Fatalf("Cannot setup display client: %v", err)
	}

	logLevel, _ := config.GetString("log.level")
	logger := aqm.NewLogger(logLevel)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	pollInterval, err := time.ParseDuration(config.GetStringOrDef("poll.interval", "5s"))
	if err != nil {
		log.Fatalf("Invalid poll.interval: %v", err)
	}

	client := display.NewClient(display.Config{
		BaseURL:      config.GetStringOrDef("board.url", "http://localhost:8080"),
		ScreenID:     config.GetStringOrDef("screen.id", "screen-1"),
		PollInterval: pollInterval,
	}, logger)

	if err := client.Start(ctx); err != nil {
		log.Fatalf("Cannot start display client: %v", err)
	}

	<-ctx.Done()

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Stop(stopCtx); err != nil {
		logger.Errorf("Display client stop: %v", err)
	}
}

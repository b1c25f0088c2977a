package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/walterobrien/authsim/internal/cli"
	"github.com/walterobrien/authsim/internal/config"
	"github.com/walterobrien/authsim/internal/logging"
)

func main() {

	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(context.Background())
}

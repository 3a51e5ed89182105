package main

import (
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/FabioCZ/receipt-craft-fabs/internal/api"
	"github.com/FabioCZ/receipt-craft-fabs/internal/config"
	"github.com/FabioCZ/receipt-craft-fabs/internal/library"
)

// Version is set during build via ldflags
var Version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		// No logger yet
		os.Stderr.WriteString("invalid configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	log, err := newLogger(cfg.App.Env)
	if err != nil {
		os.Stderr.WriteString("failed to create logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer log.Sync()

	designs, err := library.New(cfg.Library.Path)
	if err != nil {
		log.Fatal("failed to open design library", zap.Error(err))
	}

	server := api.NewServer(cfg.Render, designs, log)

	serverErrChan := make(chan error, 1)
	go func() {
		addr := cfg.Server.Address()
		log.Info("starting render API server",
			zap.String("addr", addr),
			zap.String("version", Version),
			zap.String("paper_width", cfg.Render.PaperWidth),
		)
		serverErrChan <- server.Run(addr)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrChan:
		log.Fatal("server error", zap.Error(err))
	case sig := <-sigChan:
		log.Info("shutting down", zap.String("signal", sig.String()))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "production" || env == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fixtureconv/internal/config"
	applog "fixtureconv/internal/log"
	"fixtureconv/internal/pipeline"
	"fixtureconv/internal/web"
)

func main() {
	cfg, err := config.Load()
	must(err)
	must(cfg.Require("LISTEN_ADDR", cfg.ListenAddr))

	applog.Configure(applog.Config{
		Level:   cfg.LogLevel,
		Service: "fixtureconv-server",
		Version: cfg.AppVersion,
		Pretty:  cfg.PrettyLogs,
	})

	srv := web.NewServer(cfg, pipeline.NewConverter(cfg))
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	must(srv.ListenAndServe(ctx))
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

package main

import (
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"WebBasics/internal/validation"
	"WebBasics/pkg/config"
	"WebBasics/pkg/kit"
)

func main() {
	service := "validation"

	var cfg config.Lesson
	ok, err := config.Load(&cfg)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	if !ok {
		return
	}

	log := kit.NewLogger(service, cfg.HTTP.LogLevel)
	defer func() { _ = log.Sync() }()

	h := validation.NewHandler(&validation.Server{Log: log}, kit.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       prometheus.NewRegistry(),
		MetricsEnabled: cfg.HTTP.MetricsEnabled,
		MetricsToken:   cfg.HTTP.MetricsToken,
	})

	if err := kit.RunHTTPServer(cfg.HTTP.Addr("8083"), h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

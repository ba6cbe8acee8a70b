package main

import (
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"WebBasics/internal/gateway"
	"WebBasics/pkg/config"
	"WebBasics/pkg/kit"
)

func main() {
	service := "gateway"

	var cfg config.Gateway
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

	deps := gateway.Deps{
		CatalogURL:         cfg.CatalogURL,
		BasicsURL:          cfg.BasicsURL,
		ValidationURL:      cfg.ValidationURL,
		BodiesURL:          cfg.BodiesURL,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimit:          cfg.RateLimit,
		RateWindow:         cfg.RateWindow,
		Development:        cfg.Development,
	}

	h, err := gateway.NewHandler(deps, kit.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       prometheus.NewRegistry(),
		MetricsEnabled: cfg.HTTP.MetricsEnabled,
		MetricsToken:   cfg.HTTP.MetricsToken,
	})
	if err != nil {
		log.Fatal("init gateway handler failed", zap.Error(err))
	}

	if err := kit.RunHTTPServer(cfg.HTTP.Addr("8080"), h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

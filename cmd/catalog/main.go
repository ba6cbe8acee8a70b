package main

import (
	"context"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"WebBasics/internal/catalog"
	"WebBasics/pkg/config"
	"WebBasics/pkg/kit"
)

func main() {
	service := "catalog"

	var cfg config.Catalog
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

	ctx := context.Background()

	var src catalog.Source = catalog.NewMemSource()
	if cfg.DatabaseURL != "" {
		db, err := catalog.OpenPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal("postgres unavailable", zap.Error(err))
		}
		defer func() { _ = db.Close() }()

		if cfg.Migrate {
			if err := catalog.Migrate(ctx, db); err != nil {
				log.Fatal("migrate catalog failed", zap.Error(err))
			}
		}
		src = catalog.NewPostgresSource(db)
	}

	deps := kit.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       prometheus.NewRegistry(),
		MetricsEnabled: cfg.HTTP.MetricsEnabled,
		MetricsToken:   cfg.HTTP.MetricsToken,
	}

	s, err := catalog.NewServer(ctx, src, deps)
	if err != nil {
		log.Fatal("init catalog failed", zap.Error(err))
	}
	log.Info("catalog loaded", zap.Int("items", s.Catalog.Len()))

	if err := kit.RunHTTPServer(cfg.HTTP.Addr("8082"), catalog.NewHandler(s, deps), log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

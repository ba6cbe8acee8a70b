package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"WebBasics/pkg/kit"
)

type Deps struct {
	CatalogURL    string
	BasicsURL     string
	ValidationURL string
	BodiesURL     string

	CORSAllowedOrigins string
	RateLimit          int
	RateWindow         time.Duration
	Development        bool
}

const (
	readyTimeout      = 2 * time.Second
	readyProbeTimeout = 700 * time.Millisecond
)

var readyClient = &http.Client{
	Transport: &http.Transport{
		MaxIdleConns:        50,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     30 * time.Second,
	},
}

type upstream struct {
	name   string
	url    string
	prefix string
	proxy  http.Handler
}

func NewHandler(deps Deps, httpDeps kit.HTTPDeps) (http.Handler, error) {
	ups, err := buildUpstreams(deps, httpDeps.Log)
	if err != nil {
		return nil, err
	}

	r := kit.NewRouter(httpDeps)

	r.Get("/healthz", kit.Healthz)
	r.Get("/readyz", readyz(ups, httpDeps.Log))

	r.Group(func(pr chi.Router) {
		pr.Use(kit.SecureHeaders(deps.Development))
		pr.Use(kit.CORS(deps.CORSAllowedOrigins))
		if deps.RateLimit > 0 {
			pr.Use(kit.RateLimitByIP(deps.RateLimit, deps.RateWindow))
		}

		for _, up := range ups {
			if up.prefix == "" {
				pr.Handle("/items", up.proxy)
				pr.Handle("/items/*", up.proxy)
				continue
			}
			// /basics/users/7 reaches the basics service as /users/7.
			pr.Handle(up.prefix+"/*", http.StripPrefix(up.prefix, up.proxy))
		}
	})

	return r, nil
}

func buildUpstreams(deps Deps, log *zap.Logger) ([]upstream, error) {
	ups := []upstream{
		{name: "catalog", url: deps.CatalogURL},
		{name: "basics", url: deps.BasicsURL, prefix: "/basics"},
		{name: "validation", url: deps.ValidationURL, prefix: "/validation"},
		{name: "bodies", url: deps.BodiesURL, prefix: "/bodies"},
	}

	for i := range ups {
		p, err := NewReverseProxy(ups[i].url, log)
		if err != nil {
			return nil, fmt.Errorf("%s proxy: %w", ups[i].name, err)
		}
		ups[i].proxy = p
	}
	return ups, nil
}

func readyz(ups []upstream, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		for _, up := range ups {
			if err := checkReady(ctx, up.url+"/readyz"); err != nil {
				if log != nil {
					log.Warn("readyz failed", zap.String("upstream", up.name), zap.Error(err))
				}
				kit.WriteError(w, r, http.StatusServiceUnavailable, up.name+" not ready", nil)
				return
			}
		}

		w.WriteHeader(http.StatusOK)
	}
}

func checkReady(ctx context.Context, url string) error {
	cctx, cancel := context.WithTimeout(ctx, readyProbeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(cctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := readyClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status=%d", resp.StatusCode)
	}

	return nil
}

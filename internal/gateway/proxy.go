package gateway

import (
	"net/http"
	"net/http/httputil"
	"net/url"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"WebBasics/pkg/kit"
)

// NewReverseProxy forwards to target, keeping the request id so upstream
// logs line up with the gateway's. Upstream failures answer 502.
func NewReverseProxy(target string, log *zap.Logger) (*httputil.ReverseProxy, error) {
	u, err := url.Parse(target)
	if err != nil {
		return nil, err
	}

	p := httputil.NewSingleHostReverseProxy(u)

	director := p.Director
	p.Director = func(r *http.Request) {
		director(r)
		if id := chimw.GetReqID(r.Context()); id != "" {
			r.Header.Set(chimw.RequestIDHeader, id)
		}
	}

	p.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		if log != nil {
			log.Warn("upstream request failed",
				zap.String("upstream", u.Host),
				zap.String("path", r.URL.Path),
				zap.Error(err),
			)
		}
		kit.WriteError(w, r, http.StatusBadGateway, "upstream unavailable", nil)
	}

	return p, nil
}


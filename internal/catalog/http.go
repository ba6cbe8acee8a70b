package catalog

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"WebBasics/pkg/kit"
)

type Server struct {
	Catalog *Catalog
	Source  Source
	Log     *zap.Logger

	queries *queryMetrics
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", kit.Healthz)

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 1*time.Second)
		defer cancel()

		if err := s.Source.Ping(ctx); err != nil {
			if s.Log != nil {
				s.Log.Warn("readyz failed", zap.Error(err))
			}
			kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		kit.WriteMessage(w, http.StatusOK, "Hello, World!")
	})

	r.Get("/items", s.list)
	r.Get("/items/prices", s.byPrice)
	r.Get("/items/stock", s.byStock)

	return r
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	p := kit.NewParams(r)
	q := Query{
		Start: p.QueryInt("start", DefaultStart),
		End:   p.QueryInt("end", DefaultEnd),
		ID:    p.QueryInt("id", 0),
		Name:  p.QueryString("name", ""),
	}
	if err := p.Err(); err != nil {
		kit.WriteValidationError(w, r, err)
		return
	}

	res := s.Catalog.Find(q)
	s.queries.observe(res.Kind.String())

	switch res.Kind {
	case ResultNotFound:
		kit.WriteMessage(w, http.StatusOK, NotFoundMessage)
	case ResultItem:
		kit.WriteJSON(w, http.StatusOK, res.Item)
	default:
		kit.WriteJSON(w, http.StatusOK, res.Items)
	}
}

func (s *Server) byPrice(w http.ResponseWriter, r *http.Request) {
	maxRange, _ := kit.NewParams(r).OptionalQueryString("max_range")

	items, err := s.Catalog.SortedByPrice(maxRange)
	switch {
	case errors.Is(err, ErrInvalidMaxRange):
		s.queries.observe("invalid_max_range")
		kit.WriteJSON(w, http.StatusOK, map[string]string{"error": InvalidMaxRangeMessage})
		return
	case err != nil:
		if s.Log != nil {
			s.Log.Error("sort by price failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	s.queries.observe("prices")
	kit.WriteJSON(w, http.StatusOK, items)
}

func (s *Server) byStock(w http.ResponseWriter, r *http.Request) {
	p := kit.NewParams(r)
	inStock := p.QueryBool("in_stock", true)
	if err := p.Err(); err != nil {
		kit.WriteValidationError(w, r, err)
		return
	}

	s.queries.observe("stock")
	kit.WriteJSON(w, http.StatusOK, s.Catalog.ByStock(inStock))
}

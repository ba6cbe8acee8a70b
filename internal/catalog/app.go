package catalog

import (
	"context"
	"fmt"
	"net/http"

	"WebBasics/pkg/kit"
)

// NewServer reads every item from src once and freezes them into a Catalog.
func NewServer(ctx context.Context, src Source, deps kit.HTTPDeps) (*Server, error) {
	items, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	s := &Server{
		Catalog: New(items),
		Source:  src,
		Log:     deps.Log,
	}
	if deps.Registry != nil {
		s.queries = newQueryMetrics(deps.Registry)
	}
	return s, nil
}

func NewHandler(s *Server, deps kit.HTTPDeps) http.Handler {
	r := kit.NewRouter(deps)
	r.Mount("/", s.Routes())
	return r
}

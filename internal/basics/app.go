// Package basics serves the HTTP verb and path parameter examples.
package basics

import (
	"net/http"

	"WebBasics/pkg/kit"
)

func NewHandler(s *Server, deps kit.HTTPDeps) http.Handler {
	r := kit.NewRouter(deps)
	r.Mount("/", s.Routes())
	return r
}

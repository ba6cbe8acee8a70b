// Package bodies serves the JSON request body examples: a flat item, several
// body parameters at once, field constraints and nested models.
package bodies

import (
	"net/http"

	"WebBasics/pkg/kit"
)

func NewHandler(s *Server, deps kit.HTTPDeps) http.Handler {
	r := kit.NewRouter(deps)
	r.Mount("/", s.Routes())
	return r
}

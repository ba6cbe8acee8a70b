// Package validation serves the string and numeric constraint examples. Every
// constraint lives in a validate tag; handlers only echo accepted input.
package validation

import (
	"net/http"

	"WebBasics/pkg/kit"
)

func NewHandler(s *Server, deps kit.HTTPDeps) http.Handler {
	r := kit.NewRouter(deps)
	r.Mount("/", s.Routes())
	return r
}

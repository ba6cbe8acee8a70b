package kit

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// FieldErrors maps a parameter or body field to a human-readable problem.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fe[k])
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// Params reads typed query and path parameters, collecting every conversion
// failure instead of stopping at the first one. An empty value counts as
// absent.
type Params struct {
	r    *http.Request
	errs FieldErrors
}

func NewParams(r *http.Request) *Params {
	return &Params{r: r, errs: FieldErrors{}}
}

func (p *Params) Err() error {
	if len(p.errs) == 0 {
		return nil
	}
	return p.errs
}

func (p *Params) QueryString(name, def string) string {
	if v, ok := p.query(name); ok {
		return v
	}
	return def
}

// OptionalQueryString reports whether the parameter was sent at all, even
// with an empty value.
func (p *Params) OptionalQueryString(name string) (string, bool) {
	q := p.r.URL.Query()
	if !q.Has(name) {
		return "", false
	}
	return q.Get(name), true
}

func (p *Params) QueryInt(name string, def int) int {
	v, ok := p.query(name)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		p.errs[name] = "Must be an integer"
		return def
	}
	return n
}

func (p *Params) QueryFloat(name string) *float64 {
	v, ok := p.query(name)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		p.errs[name] = "Must be a number"
		return nil
	}
	return &f
}

func (p *Params) QueryBool(name string, def bool) bool {
	v, ok := p.query(name)
	if !ok {
		return def
	}
	b, ok := parseBool(strings.TrimSpace(v))
	if !ok {
		p.errs[name] = "Must be a boolean"
		return def
	}
	return b
}

func (p *Params) PathInt(name string) int {
	return p.PathIntAs(name, name)
}

// PathIntAs reads route param but reports failures under field, for routes
// that share one pattern across methods.
func (p *Params) PathIntAs(param, field string) int {
	n, err := strconv.Atoi(chi.URLParam(p.r, param))
	if err != nil {
		p.errs[field] = "Must be an integer"
		return 0
	}
	return n
}

func (p *Params) PathString(name string) string {
	return chi.URLParam(p.r, name)
}

func (p *Params) query(name string) (string, bool) {
	v := p.r.URL.Query().Get(name)
	return v, v != ""
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "1", "true", "t", "yes", "y", "on":
		return true, true
	case "0", "false", "f", "no", "n", "off":
		return false, true
	}
	return false, false
}

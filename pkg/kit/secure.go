package kit

import (
	"net/http"

	"github.com/unrolled/secure"
)

// SecureHeaders sets the browser hardening headers of the public surface.
// HSTS is only emitted over TLS.
func SecureHeaders(isDevelopment bool) func(http.Handler) http.Handler {
	sec := secure.New(secure.Options{
		STSSeconds:            63072000,
		STSIncludeSubdomains:  true,
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'none'",
		IsDevelopment:         isDevelopment,
	})
	return sec.Handler
}

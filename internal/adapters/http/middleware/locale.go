package middleware

import (
	"net/http"

	"github.com/jsamuelsen11/draftdesk/internal/platform/httpclient"
	"github.com/jsamuelsen11/draftdesk/internal/platform/i18n"
)

// Locale returns middleware that negotiates the request locale from
// Accept-Language against the catalog's bundles. The negotiated catalog is
// stored via i18n.WithTranslator, so drafts opened by this request localize
// their notices, and the locale is forwarded to the admin backend.
func Locale(catalog *i18n.Catalog) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c := catalog.ForAcceptLanguage(r.Header.Get("Accept-Language"))
			tag := c.Locale().String()

			ctx := i18n.WithTranslator(r.Context(), c)
			ctx = httpclient.WithAcceptLanguage(ctx, tag)

			w.Header().Set("Content-Language", tag)
			w.Header().Add("Vary", "Accept-Language")
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

package i18n

import (
	"context"

	"github.com/jsamuelsen11/draftdesk/internal/ports"
)

type translatorKey struct{}

// WithTranslator returns a context carrying the translator negotiated for
// the current request.
func WithTranslator(ctx context.Context, t ports.Translator) context.Context {
	return context.WithValue(ctx, translatorKey{}, t)
}

// TranslatorFromContext returns the request's translator, if any.
func TranslatorFromContext(ctx context.Context) (ports.Translator, bool) {
	t, ok := ctx.Value(translatorKey{}).(ports.Translator)
	return t, ok && t != nil
}

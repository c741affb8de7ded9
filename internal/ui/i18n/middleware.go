// middleware.go — HTTP middleware для определения языка пользователя.
// Приоритет: cookie "lang" → заголовок Accept-Language → язык по умолчанию.
package i18n

import (
	"net/http"
)

// LangCookieName — имя cookie для хранения выбранного языка.
const LangCookieName = "lang"

// Middleware определяет язык запроса и помещает его вместе с Bundle в контекст.
func Middleware(bundle *Bundle) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithBundle(r.Context(), bundle)
			ctx = WithLang(ctx, detectLanguage(r, bundle.DefaultLang()))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// detectLanguage определяет язык из запроса.
func detectLanguage(r *http.Request, fallback string) string {
	// Пользователь явно выбрал язык
	if cookie, err := r.Cookie(LangCookieName); err == nil && IsSupported(cookie.Value) {
		return cookie.Value
	}

	if accept := r.Header.Get("Accept-Language"); accept != "" {
		return MatchLanguage(accept, fallback)
	}

	return fallback
}

// language.go — обработчик переключения языка UI.
package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bigkaa/goartstore/catalog-console/internal/ui/i18n"
)

// defaultBackURL — страница, куда возвращают формы без Referer.
const defaultBackURL = "/ui/products"

// HandleSetLanguage обрабатывает POST /ui/language.
// Устанавливает cookie "lang" и перенаправляет обратно.
// Неподдерживаемый язык оставляет текущий выбор без изменений.
func HandleSetLanguage(w http.ResponseWriter, r *http.Request) {
	lang := r.FormValue("lang")

	if i18n.IsSupported(lang) {
		// Cookie на 1 год
		http.SetCookie(w, &http.Cookie{
			Name:     i18n.LangCookieName,
			Value:    lang,
			Path:     "/",
			MaxAge:   365 * 24 * 60 * 60,
			SameSite: http.SameSiteLaxMode,
			Expires:  time.Now().Add(365 * 24 * time.Hour),
		})
	}

	http.Redirect(w, r, backURL(r), http.StatusSeeOther)
}

// backURL возвращает путь страницы, с которой пришла форма.
// Берётся только путь из Referer, чтобы не уводить на чужой хост.
func backURL(r *http.Request) string {
	ref, err := url.Parse(r.Header.Get("Referer"))
	if err != nil || !strings.HasPrefix(ref.Path, "/") || strings.HasPrefix(ref.Path, "//") {
		return defaultBackURL
	}
	if ref.RawQuery != "" {
		return ref.Path + "?" + ref.RawQuery
	}
	return ref.Path
}

// Пакет handlers — HTTP-обработчики HTML-консоли.
// Полные страницы отдаются по /ui/*, HTMX-фрагменты по /ui/partials/*.
package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/bigkaa/goartstore/catalog-console/internal/service"
	"github.com/bigkaa/goartstore/catalog-console/internal/ui/i18n"
	"github.com/bigkaa/goartstore/catalog-console/internal/ui/pages"
)

// base — общая часть обработчиков: оболочка страницы и оповещения.
type base struct {
	users  *service.UserService
	logger *slog.Logger
}

// renderPage рендерит полную страницу вкладки tab.
func (b base) renderPage(w http.ResponseWriter, r *http.Request, status int, tab string, content templ.Component) {
	data := pages.ShellData{
		Acting: b.users.Acting(),
		Perms:  b.users.Permissions(),
		Tab:    tab,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pages.Page(data, content).Render(r.Context(), w); err != nil {
		b.logger.Error("Ошибка рендеринга страницы",
			slog.String("tab", tab),
			slog.String("error", err.Error()),
		)
	}
}

// renderPartial рендерит HTMX-фрагмент и дополнительные out-of-band компоненты.
func (b base) renderPartial(w http.ResponseWriter, r *http.Request, c templ.Component, oob ...templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	for _, comp := range append([]templ.Component{c}, oob...) {
		if err := comp.Render(r.Context(), w); err != nil {
			b.logger.Error("Ошибка рендеринга фрагмента",
				slog.String("path", r.URL.Path),
				slog.String("error", err.Error()),
			)
			return
		}
	}
}

// success — out-of-band оповещение об успешной операции.
func success(ctx context.Context, key string, args ...any) templ.Component {
	return pages.AlertOOB(pages.AlertSuccess, i18n.Tf(ctx, key, args...))
}

// renderError логирует ошибку сервиса и выводит оповещение в #alerts
// вместо цели исходного запроса.
func (b base) renderError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		b.logger.Error("Ошибка операции",
			slog.String("op", op),
			slog.String("error", err.Error()),
		)
	} else {
		b.logger.Warn("Операция отклонена",
			slog.String("op", op),
			slog.String("error", err.Error()),
		)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("HX-Retarget", "#alerts")
	w.Header().Set("HX-Reswap", "innerHTML")
	w.WriteHeader(status)
	if rErr := pages.Alert(pages.AlertError, errorMessage(r.Context(), err)).Render(r.Context(), w); rErr != nil {
		b.logger.Error("Ошибка рендеринга alert", slog.String("error", rErr.Error()))
	}
}

// statusFor возвращает HTTP-статус для ошибки сервисного слоя.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrValidation):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage переводит ошибку сервисного слоя в текст оповещения.
func errorMessage(ctx context.Context, err error) string {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return i18n.T(ctx, "alert.not_found")
	case errors.Is(err, service.ErrForbidden):
		return i18n.T(ctx, "alert.forbidden")
	case errors.Is(err, service.ErrValidation):
		// Подробности валидации идут после префикса сентинела
		detail := err.Error()
		if _, after, ok := strings.Cut(detail, service.ErrValidation.Error()+": "); ok {
			detail = after
		}
		return i18n.Tf(ctx, "alert.validation", detail)
	default:
		return i18n.T(ctx, "alert.error")
	}
}

package pages

import (
	"context"

	"github.com/a-h/templ"
)

// Варианты оповещений.
const (
	AlertSuccess = "success"
	AlertError   = "error"
)

// Alert — оповещение внутри контейнера #alerts.
func Alert(variant, msg string) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw("<div")
		h.attr("class", "alert alert-"+variant)
		h.raw(` role="alert">`)
		h.text(msg)
		h.raw(`<button type="button" class="alert-close" data-dismiss aria-label="close">&times;</button></div>`)
	})
}

// AlertOOB — оповещение, которое HTMX вставляет в #alerts вне основной цели
// запроса (hx-swap-oob).
func AlertOOB(variant, msg string) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<div id="alerts" class="alerts" hx-swap-oob="innerHTML">`)
		h.child(ctx, Alert(variant, msg))
		h.raw("</div>")
	})
}

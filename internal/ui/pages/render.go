// Пакет pages — HTML-компоненты консоли (templ.Component).
// Полные страницы собираются в Page, HTMX-фрагменты рендерятся
// отдельными компонентами и подменяют секции страницы по id.
package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// htmlWriter — запись HTML с накоплением первой ошибки.
type htmlWriter struct {
	w   io.Writer
	err error
}

// raw пишет строки без экранирования.
func (h *htmlWriter) raw(parts ...string) {
	for _, s := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, s)
	}
}

// text пишет экранированный текст.
func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

// attr пишет атрибут name="value" с экранированным значением.
func (h *htmlWriter) attr(name, value string) {
	h.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

// url пишет атрибут со ссылкой, прошедшей санитизацию templ.
func (h *htmlWriter) url(name, value string) {
	h.attr(name, string(templ.URL(value)))
}

// flag пишет булев атрибут, если on.
func (h *htmlWriter) flag(name string, on bool) {
	if on {
		h.raw(" ", name)
	}
}

// child рендерит вложенный компонент.
func (h *htmlWriter) child(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

// component превращает функцию отрисовки в templ.Component.
func component(fn func(ctx context.Context, h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		fn(ctx, h)
		return h.err
	})
}

// option пишет <option> с отметкой selected.
func (h *htmlWriter) option(value, label string, selected bool) {
	h.raw("<option")
	h.attr("value", value)
	h.flag("selected", selected)
	h.raw(">")
	h.text(label)
	h.raw("</option>")
}

package pages

import (
	"context"

	"github.com/a-h/templ"

	"github.com/bigkaa/goartstore/catalog-console/internal/domain/model"
	"github.com/bigkaa/goartstore/catalog-console/internal/domain/rbac"
	"github.com/bigkaa/goartstore/catalog-console/internal/ui/i18n"
)

// Вкладки консоли.
const (
	TabProducts = "products"
	TabUsers    = "users"
	TabProfile  = "profile"
)

// htmxScript — HTMX подключается с CDN.
const htmxScript = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

// ShellData — данные оболочки страницы.
type ShellData struct {
	Acting model.User
	Perms  rbac.Permissions
	Tab    string
}

type tab struct {
	id   string
	href string
	key  string
}

// tabs возвращает вкладки, доступные действующему пользователю.
func tabs(perms rbac.Permissions) []tab {
	result := []tab{{TabProducts, "/ui/products", "tab.products"}}
	if perms.CanManageUsers() {
		result = append(result, tab{TabUsers, "/ui/users", "tab.users"})
	}
	return append(result, tab{TabProfile, "/ui/profile", "tab.profile"})
}

// Page — полная страница: шапка с переключателями, вкладки и содержимое.
func Page(data ShellData, content templ.Component) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		lang := i18n.LangFromContext(ctx)

		h.raw(`<!DOCTYPE html><html`)
		h.attr("lang", lang)
		h.raw(`><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw("<title>")
		h.text(i18n.T(ctx, "app.title"))
		h.raw("</title>")
		h.raw(`<link rel="stylesheet" href="/static/css/console.css">`)
		h.raw("<script")
		h.url("src", htmxScript)
		h.raw(` crossorigin="anonymous"></script>`)
		h.raw(`<script src="/static/js/console.js" defer></script>`)
		h.raw("</head><body>")

		h.child(ctx, shellHeader(data))

		h.raw(`<nav class="tabs">`)
		for _, t := range tabs(data.Perms) {
			h.raw("<a")
			h.url("href", t.href)
			if t.id == data.Tab {
				h.raw(` class="tab active" aria-current="page"`)
			} else {
				h.raw(` class="tab"`)
			}
			h.raw(">")
			h.text(i18n.T(ctx, t.key))
			h.raw("</a>")
		}
		h.raw("</nav>")

		h.raw(`<div id="alerts" class="alerts"></div>`)
		h.raw(`<main id="content">`)
		h.child(ctx, content)
		h.raw("</main></body></html>")
	})
}

// shellHeader — заголовок, действующий пользователь, смена роли и языка.
func shellHeader(data ShellData) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		lang := i18n.LangFromContext(ctx)

		h.raw(`<header class="shell"><div class="shell-title"><h1>`)
		h.text(i18n.T(ctx, "app.title"))
		h.raw(`</h1><span class="muted">`)
		h.text(i18n.T(ctx, "app.subtitle"))
		h.raw(`</span></div>`)

		h.raw(`<div class="shell-identity"><span>`)
		h.text(i18n.Tf(ctx, "shell.acting_as", data.Acting.Username))
		h.raw("</span>")
		h.child(ctx, RoleBadge(data.Acting.Role))
		h.raw(`<form method="post" action="/ui/role/toggle">`)
		h.raw(`<button type="submit" class="btn btn-outline">`)
		h.text(i18n.T(ctx, "shell.toggle_role"))
		h.raw("</button></form></div>")

		h.raw(`<form method="post" action="/ui/language" class="shell-lang"><label>`)
		h.text(i18n.T(ctx, "shell.language"))
		h.raw(` <select name="lang" data-autosubmit>`)
		for _, l := range i18n.Languages {
			h.option(l, i18n.T(ctx, "lang."+l), l == lang)
		}
		h.raw("</select></label><noscript><button type=\"submit\">OK</button></noscript></form>")
		h.raw("</header>")
	})
}

// RoleBadge — метка роли.
func RoleBadge(role model.Role) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		class := "badge"
		if rbac.IsAdmin(role) {
			class += " badge-admin"
		}
		h.raw("<span")
		h.attr("class", class)
		h.raw(">")
		h.text(roleLabel(ctx, role))
		h.raw("</span>")
	})
}

// Forbidden — содержимое вкладки, недоступной действующему пользователю.
func Forbidden(key string) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section class="forbidden"><p>`)
		h.text(i18n.T(ctx, key))
		h.raw("</p></section>")
	})
}

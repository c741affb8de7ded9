package pages

import (
	"context"

	"github.com/a-h/templ"

	"github.com/bigkaa/goartstore/catalog-console/internal/service"
	"github.com/bigkaa/goartstore/catalog-console/internal/ui/i18n"
)

const profilePartials = "/ui/partials/profile"

// ProfilePanel — профиль выбранного пользователя.
// Без выбора (или после удаления выбранного) выводится заглушка.
func ProfilePanel(view service.ProfileView) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section id="profile" class="profile card">`)
		if !view.Found {
			h.raw(`<p class="placeholder">`)
			h.text(i18n.T(ctx, "profile.placeholder"))
			h.raw("</p></section>")
			return
		}

		u := view.User
		target := func() {
			h.raw(` hx-target="#profile" hx-swap="outerHTML"`)
		}

		h.raw(`<div class="profile-header">`)
		if u.Avatar != "" {
			h.raw(`<img class="avatar"`)
			h.url("src", u.Avatar)
			h.attr("alt", u.Username)
			h.raw(">")
		} else {
			h.raw(`<div class="avatar" aria-hidden="true">`)
			h.text(u.Initial())
			h.raw("</div>")
		}
		h.raw("<div><h2>")
		h.text(u.Username)
		h.raw("</h2><span>")
		h.text(i18n.T(ctx, "profile.role"))
		h.raw(": </span>")
		h.child(ctx, RoleBadge(u.Role))
		if view.Perms.IsOwnProfile {
			h.raw(` <small class="muted">`)
			h.text(i18n.T(ctx, "profile.own"))
			h.raw("</small>")
		}
		h.raw("</div></div>")

		if view.Editing {
			h.raw("<form")
			h.attr("hx-post", profilePartials+"/save")
			target()
			h.raw(`><label for="profile-username">`)
			h.text(i18n.T(ctx, "profile.username"))
			h.raw(`</label><input id="profile-username" type="text" name="username"`)
			h.attr("value", view.Draft.Username)
			h.raw(`><label for="profile-email">`)
			h.text(i18n.T(ctx, "profile.email"))
			h.raw(`</label><input id="profile-email" type="text" name="email"`)
			h.attr("value", view.Draft.Email)
			h.raw(`><div class="actions"><button type="submit" class="btn btn-primary">`)
			h.text(i18n.T(ctx, "action.save"))
			h.raw(`</button><button type="button" class="btn btn-outline"`)
			h.attr("hx-post", profilePartials+"/cancel")
			target()
			h.raw(">")
			h.text(i18n.T(ctx, "action.cancel"))
			h.raw("</button></div></form></section>")
			return
		}

		h.raw("<dl><dt>")
		h.text(i18n.T(ctx, "profile.username"))
		h.raw("</dt><dd>")
		h.text(u.Username)
		h.raw("</dd><dt>")
		h.text(i18n.T(ctx, "profile.email"))
		h.raw("</dt><dd>")
		h.text(u.Email)
		h.raw("</dd></dl>")

		if view.Perms.CanEditProfile() {
			h.raw(`<div class="actions"><button type="button" class="btn btn-outline"`)
			h.attr("hx-post", profilePartials+"/edit")
			target()
			h.raw(">")
			h.text(i18n.T(ctx, "action.edit"))
			h.raw("</button></div>")
		} else {
			h.raw(`<p class="muted">`)
			h.text(i18n.T(ctx, "profile.readonly"))
			h.raw("</p>")
		}
		h.raw("</section>")
	})
}

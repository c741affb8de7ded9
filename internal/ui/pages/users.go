package pages

import (
	"context"

	"github.com/a-h/templ"

	"github.com/bigkaa/goartstore/catalog-console/internal/domain/model"
	"github.com/bigkaa/goartstore/catalog-console/internal/domain/rbac"
	"github.com/bigkaa/goartstore/catalog-console/internal/service"
	"github.com/bigkaa/goartstore/catalog-console/internal/ui/i18n"
)

const usersPartials = "/ui/partials/users"

// UsersTab — таблица пользователей. Щелчок по строке открывает профиль,
// ячейки роли и действий щелчок не пропускают.
func UsersTab(table service.UserTable) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section id="users" class="users"><h2>`)
		h.text(i18n.T(ctx, "users.title"))
		h.raw(`</h2><table class="table"><thead><tr><th>ID</th><th>`)
		h.text(i18n.T(ctx, "users.username"))
		h.raw("</th><th>")
		h.text(i18n.T(ctx, "users.email"))
		h.raw("</th><th>")
		h.text(i18n.T(ctx, "users.role"))
		h.raw("</th><th>")
		h.text(i18n.T(ctx, "users.actions"))
		h.raw("</th></tr></thead><tbody>")
		for _, row := range table.Rows {
			h.child(ctx, UserRow(row, table.Perms))
		}
		h.raw("</tbody></table></section>")
	})
}

// UserRow — строка таблицы пользователей.
// Выбор роли подготавливается на change и применяется на focusout;
// оба запроса идут в очередь строки, чтобы применение не обогнало подготовку.
func UserRow(row service.UserRow, perms rbac.Permissions) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		u := row.User
		rowID := "user-" + u.ID
		base := usersPartials + "/" + u.ID

		h.raw("<tr")
		h.attr("id", rowID)
		if row.Selected {
			h.raw(` class="clickable selected" aria-selected="true"`)
		} else {
			h.raw(` class="clickable"`)
		}
		h.attr("hx-post", base+"/select")
		h.raw(` hx-trigger="click[!event.target.closest('.stop')]" hx-target="#users" hx-swap="outerHTML">`)

		h.raw("<td>")
		h.text(u.ID)
		h.raw("</td><td>")
		h.text(u.Username)
		h.raw("</td><td>")
		h.text(u.Email)
		h.raw(`</td><td class="stop">`)

		if perms.CanEditRoles() {
			h.raw("<form")
			h.attr("hx-post", base+"/role/commit")
			h.raw(` hx-trigger="focusout" hx-sync="closest tr:queue all"`)
			h.attr("hx-target", "#"+rowID)
			h.raw(` hx-swap="outerHTML"><select name="role"`)
			h.attr("aria-label", i18n.T(ctx, "users.role"))
			h.attr("hx-post", base+"/role/stage")
			h.raw(` hx-trigger="change" hx-sync="closest tr:queue all" hx-swap="none">`)
			for _, r := range model.Roles {
				h.option(string(r), roleLabel(ctx, r), row.Role == r)
			}
			h.raw("</select>")
			if row.Staged {
				h.raw(` <small class="muted">`)
				h.text(i18n.T(ctx, "users.staged"))
				h.raw("</small>")
			}
			h.raw("</form>")
		} else {
			h.child(ctx, RoleBadge(u.Role))
		}

		h.raw(`</td><td class="stop">`)
		if row.CanDelete {
			h.raw(`<button type="button" class="btn btn-danger"`)
			h.attr("hx-delete", base)
			h.raw(` hx-target="#users" hx-swap="outerHTML">`)
			h.text(i18n.T(ctx, "action.delete"))
			h.raw("</button>")
		}
		h.raw("</td></tr>")
	})
}

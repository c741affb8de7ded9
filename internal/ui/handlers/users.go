// users.go — обработчики вкладки пользователей и переключения роли.
package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/bigkaa/goartstore/catalog-console/internal/domain/model"
	"github.com/bigkaa/goartstore/catalog-console/internal/service"
	"github.com/bigkaa/goartstore/catalog-console/internal/ui/pages"
)

// UsersHandler — обработчик вкладки пользователей.
type UsersHandler struct {
	base
}

// NewUsersHandler создаёт новый UsersHandler.
func NewUsersHandler(users *service.UserService, logger *slog.Logger) *UsersHandler {
	return &UsersHandler{
		base: base{
			users:  users,
			logger: logger.With(slog.String("component", "ui.users")),
		},
	}
}

// HandleList обрабатывает GET /ui/users. Не администратору отдаётся 403
// без содержимого таблицы.
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	table, err := h.users.Table()
	if errors.Is(err, service.ErrForbidden) {
		h.renderPage(w, r, http.StatusForbidden, pages.TabUsers, pages.Forbidden("users.forbidden"))
		return
	}
	if err != nil {
		h.renderError(w, r, "users_table", err)
		return
	}
	h.renderPage(w, r, http.StatusOK, pages.TabUsers, pages.UsersTab(table))
}

// renderTable отдаёт секцию #users целиком.
func (h *UsersHandler) renderTable(w http.ResponseWriter, r *http.Request, op string, oob ...templ.Component) {
	table, err := h.users.Table()
	if err != nil {
		h.renderError(w, r, op, err)
		return
	}
	h.renderPartial(w, r, pages.UsersTab(table), oob...)
}

// HandleSelect обрабатывает POST /ui/partials/users/{id}/select —
// щелчок по строке открывает профиль пользователя.
func (h *UsersHandler) HandleSelect(w http.ResponseWriter, r *http.Request) {
	if err := h.users.SelectRow(chi.URLParam(r, "id")); err != nil {
		h.renderError(w, r, "select_user", err)
		return
	}
	h.renderTable(w, r, "select_user")
}

// HandleStageRole обрабатывает POST /ui/partials/users/{id}/role/stage —
// запоминает роль, выбранную в селекторе.
func (h *UsersHandler) HandleStageRole(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderError(w, r, "stage_role", fmt.Errorf("%w: %v", service.ErrValidation, err))
		return
	}
	if err := h.users.StageRole(chi.URLParam(r, "id"), model.Role(r.FormValue("role"))); err != nil {
		h.renderError(w, r, "stage_role", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleCommitRole обрабатывает POST /ui/partials/users/{id}/role/commit —
// потеря фокуса селектором применяет подготовленную роль.
// Если изменилась роль действующего пользователя, страница перезагружается:
// от роли зависят вкладки и права.
func (h *UsersHandler) HandleCommitRole(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	updated, committed, err := h.users.CommitRole(id)
	if err != nil {
		h.renderError(w, r, "commit_role", err)
		return
	}

	if committed && updated.ID == h.users.Acting().ID {
		w.Header().Set("HX-Refresh", "true")
		w.WriteHeader(http.StatusOK)
		return
	}

	row, err := h.users.Row(id)
	if err != nil {
		h.renderError(w, r, "commit_role", err)
		return
	}

	rowView := pages.UserRow(row, h.users.Permissions())
	if committed {
		h.renderPartial(w, r, rowView, success(r.Context(), "alert.role_saved", updated.Username))
		return
	}
	h.renderPartial(w, r, rowView)
}

// HandleDelete обрабатывает DELETE /ui/partials/users/{id}.
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.users.Delete(chi.URLParam(r, "id")); err != nil {
		h.renderError(w, r, "delete_user", err)
		return
	}
	h.renderTable(w, r, "delete_user", success(r.Context(), "alert.user_deleted"))
}

// HandleToggleRole обрабатывает POST /ui/role/toggle — переключает роль
// действующего пользователя и возвращает на предыдущую страницу.
func (h *UsersHandler) HandleToggleRole(w http.ResponseWriter, r *http.Request) {
	if _, err := h.users.ToggleActingRole(); err != nil {
		h.logger.Error("Ошибка переключения роли", slog.String("error", err.Error()))
		http.Error(w, "Ошибка переключения роли", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, backURL(r), http.StatusSeeOther)
}

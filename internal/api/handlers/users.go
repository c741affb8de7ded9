// users.go — обработчики /api/v1/users, /api/v1/me и /api/v1/selection.
// Права проверяются сервисным слоем относительно действующего пользователя.
package handlers

import (
	"net/http"

	"github.com/go-chi/render"

	apierrors "github.com/bigkaa/goartstore/catalog-console/internal/api/errors"
	"github.com/bigkaa/goartstore/catalog-console/internal/domain/model"
	"github.com/bigkaa/goartstore/catalog-console/internal/domain/rbac"
)

// userListResponse — ответ GET /api/v1/users.
type userListResponse struct {
	Items []model.User `json:"items"`
	Total int          `json:"total"`
}

// meResponse — ответ GET /api/v1/me.
type meResponse struct {
	User           model.User `json:"user"`
	IsAdmin        bool       `json:"isAdmin"`
	SelectedUserID string     `json:"selectedUserId,omitempty"`
}

type roleUpdateRequest struct {
	Role model.Role `json:"role"`
}

type selectionRequest struct {
	UserID string `json:"userId"`
}

// ListUsers — GET /api/v1/users. Доступ: admin.
func (h *APIHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List()
	if err != nil {
		h.serviceError(w, r, "list_users", err)
		return
	}

	render.JSON(w, r, userListResponse{Items: users, Total: len(users)})
}

// UpdateProfile — PATCH /api/v1/users/{id}.
// Доступ: admin или владелец профиля.
func (h *APIHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var patch model.ProfilePatch
	if err := render.DecodeJSON(r.Body, &patch); err != nil {
		apierrors.ValidationError(w, r, "Некорректное тело запроса: "+err.Error())
		return
	}

	updated, err := h.profile.Update(id, patch)
	if err != nil {
		h.serviceError(w, r, "update_profile", err)
		return
	}

	render.JSON(w, r, updated)
}

// SetUserRole — PUT /api/v1/users/{id}/role. Доступ: admin.
func (h *APIHandler) SetUserRole(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req roleUpdateRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		apierrors.ValidationError(w, r, "Некорректное тело запроса: "+err.Error())
		return
	}

	updated, err := h.users.SetRole(id, req.Role)
	if err != nil {
		h.serviceError(w, r, "set_user_role", err)
		return
	}

	render.JSON(w, r, updated)
}

// DeleteUser — DELETE /api/v1/users/{id}.
// Доступ: admin; администраторов и действующего пользователя удалить нельзя.
func (h *APIHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.users.Delete(id); err != nil {
		h.serviceError(w, r, "delete_user", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetMe — GET /api/v1/me.
func (h *APIHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, h.me(h.users.Acting()))
}

// ToggleRole — POST /api/v1/me/toggle-role.
func (h *APIHandler) ToggleRole(w http.ResponseWriter, r *http.Request) {
	u, err := h.users.ToggleActingRole()
	if err != nil {
		h.serviceError(w, r, "toggle_role", err)
		return
	}

	render.JSON(w, r, h.me(u))
}

// SelectUser — PUT /api/v1/selection. Пустой userId сбрасывает выбор.
func (h *APIHandler) SelectUser(w http.ResponseWriter, r *http.Request) {
	var req selectionRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		apierrors.ValidationError(w, r, "Некорректное тело запроса: "+err.Error())
		return
	}

	if err := h.users.Select(req.UserID); err != nil {
		h.serviceError(w, r, "select_user", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *APIHandler) me(u model.User) meResponse {
	return meResponse{
		User:           u,
		IsAdmin:        rbac.IsAdmin(u.Role),
		SelectedUserID: h.users.SelectedID(),
	}
}

// profile.go — обработчики панели профиля.
package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bigkaa/goartstore/catalog-console/internal/service"
	"github.com/bigkaa/goartstore/catalog-console/internal/ui/pages"
)

// ProfileHandler — обработчик вкладки профиля.
type ProfileHandler struct {
	base
	profile *service.ProfileService
}

// NewProfileHandler создаёт новый ProfileHandler.
func NewProfileHandler(profile *service.ProfileService, users *service.UserService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		base: base{
			users:  users,
			logger: logger.With(slog.String("component", "ui.profile")),
		},
		profile: profile,
	}
}

// HandleView обрабатывает GET /ui/profile.
func (h *ProfileHandler) HandleView(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, http.StatusOK, pages.TabProfile, pages.ProfilePanel(h.profile.View()))
}

// HandleEdit обрабатывает POST /ui/partials/profile/edit.
func (h *ProfileHandler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	if err := h.profile.BeginEdit(); err != nil {
		h.renderError(w, r, "begin_profile_edit", err)
		return
	}
	h.renderPartial(w, r, pages.ProfilePanel(h.profile.View()))
}

// HandleSave обрабатывает POST /ui/partials/profile/save.
// Изменение собственного профиля обновляет шапку, поэтому страница
// перезагружается.
func (h *ProfileHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	draft, err := parseProfileDraft(r)
	if err != nil {
		h.renderError(w, r, "save_profile", fmt.Errorf("%w: %v", service.ErrValidation, err))
		return
	}

	updated, err := h.profile.Save(draft)
	if err != nil {
		h.renderError(w, r, "save_profile", err)
		return
	}

	if updated.ID == h.users.Acting().ID {
		w.Header().Set("HX-Refresh", "true")
	}
	h.renderPartial(w, r, pages.ProfilePanel(h.profile.View()), success(r.Context(), "alert.profile_saved"))
}

// HandleCancel обрабатывает POST /ui/partials/profile/cancel.
func (h *ProfileHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	h.profile.Cancel()
	h.renderPartial(w, r, pages.ProfilePanel(h.profile.View()))
}

// profile.go — сервис панели профиля выбранного пользователя.
package service

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/bigkaa/goartstore/catalog-console/internal/domain/edit"
	"github.com/bigkaa/goartstore/catalog-console/internal/domain/model"
	"github.com/bigkaa/goartstore/catalog-console/internal/domain/rbac"
	"github.com/bigkaa/goartstore/catalog-console/internal/store"
)

// ProfileView — данные панели профиля.
type ProfileView struct {
	User model.User
	// Found == false — профиль не выбран или пользователь удалён
	Found   bool
	Perms   rbac.Permissions
	Editing bool
	Draft   model.ProfileDraft
}

// ProfileService — просмотр и редактирование профиля.
// Сеанс редактирования привязан к выбранному пользователю и
// сбрасывается при смене выбора.
type ProfileService struct {
	store *store.Store

	mu      sync.Mutex
	gen     uint64
	session edit.State[model.ProfileDraft]

	logger *slog.Logger
}

// NewProfileService создаёт сервис профиля.
func NewProfileService(st *store.Store, logger *slog.Logger) *ProfileService {
	return &ProfileService{
		store:  st,
		logger: logger.With(slog.String("component", "profile_service")),
	}
}

// syncTarget сбрасывает сеанс, если с момента его открытия профиль
// выбирался заново. Вызывается под s.mu.
func (s *ProfileService) syncTarget(st *store.State) {
	if s.gen != st.SelectionGen {
		s.gen = st.SelectionGen
		s.session = edit.Idle[model.ProfileDraft]()
	}
}

// View возвращает состояние панели профиля.
func (s *ProfileService) View() ProfileView {
	st := s.store.Snapshot()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncTarget(st)

	u, ok := st.SelectedUser()
	if !ok {
		return ProfileView{Perms: rbac.For(st.ActingUser(), "")}
	}

	view := ProfileView{
		User:  u,
		Found: true,
		Perms: rbac.For(st.ActingUser(), u.ID),
		Draft: u.Draft(),
	}
	if d, editing := s.session.Draft(); editing {
		view.Editing = true
		view.Draft = d
	}
	return view
}

// BeginEdit открывает сеанс редактирования выбранного профиля.
func (s *ProfileService) BeginEdit() error {
	st := s.store.Snapshot()
	u, ok := st.SelectedUser()
	if !ok {
		return fmt.Errorf("%w: профиль не выбран", ErrNotFound)
	}
	if !rbac.For(st.ActingUser(), u.ID).CanEditProfile() {
		return deny("update_profile")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncTarget(st)
	s.session = edit.Begin(u.Draft())
	return nil
}

// Save применяет черновик к выбранному пользователю и закрывает сеанс.
func (s *ProfileService) Save(draft model.ProfileDraft) (model.User, error) {
	st := s.store.Snapshot()

	s.mu.Lock()
	s.syncTarget(st)
	editing := s.session.Editing()
	s.mu.Unlock()
	if !editing {
		return model.User{}, fmt.Errorf("%w: профиль не редактируется", ErrValidation)
	}

	updated, err := s.Update(st.SelectedUserID, draft.Patch())

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.session = s.session.Update(draft)
		return model.User{}, err
	}
	s.session = s.session.Cancel()
	return updated, nil
}

// Cancel отбрасывает черновик профиля.
func (s *ProfileService) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = s.session.Cancel()
}

// Update применяет обновление профиля пользователя id.
// Разрешено администратору и владельцу профиля; формат и
// уникальность username/email не проверяются.
func (s *ProfileService) Update(id string, patch model.ProfilePatch) (model.User, error) {
	st := s.store.Snapshot()
	if _, ok := st.User(id); !ok {
		return model.User{}, fmt.Errorf("%w: пользователь %s", ErrNotFound, id)
	}
	if !rbac.For(st.ActingUser(), id).CanEditProfile() {
		return model.User{}, deny("update_profile")
	}

	updated, err := s.store.UpdateUserProfile(id, patch)
	if err != nil {
		return model.User{}, fmt.Errorf("обновление профиля: %w", mapStoreError(err))
	}

	recordMutation("user", "profile")
	s.logger.Info("Профиль обновлён", slog.String("user_id", id))
	return updated, nil
}

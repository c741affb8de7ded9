package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bigkaa/goartstore/catalog-console/internal/domain/model"
)

func TestProfileView(t *testing.T) {
	s := newServices(t)

	view := s.profile.View()
	require.True(t, view.Found)
	assert.Equal(t, "ivan", view.User.Username)
	assert.False(t, view.Editing)
	assert.Equal(t, model.ProfileDraft{Username: "ivan", Email: "ivan@example.com"}, view.Draft)
	assert.True(t, view.Perms.CanEditProfile(), "администратор редактирует любой профиль")
	assert.False(t, view.Perms.IsOwnProfile)

	require.NoError(t, s.users.Select(""))
	view = s.profile.View()
	assert.False(t, view.Found)
}

func TestProfileEdit_Save(t *testing.T) {
	s := newServices(t)

	require.NoError(t, s.profile.BeginEdit())
	view := s.profile.View()
	require.True(t, view.Editing)

	saved, err := s.profile.Save(model.ProfileDraft{Username: "ivan.p", Email: ""})
	require.NoError(t, err)
	assert.Equal(t, "ivan.p", saved.Username)
	assert.Equal(t, "", saved.Email, "пустые значения допустимы")

	view = s.profile.View()
	assert.False(t, view.Editing)
	assert.Equal(t, "ivan.p", view.User.Username)

	row, _ := s.store.Snapshot().User("u2")
	assert.Equal(t, "ivan.p", row.Username)
}

func TestProfileEdit_ResetOnSelectionChange(t *testing.T) {
	s := newServices(t)

	require.NoError(t, s.profile.BeginEdit())
	require.NoError(t, s.users.Select("u3"))

	view := s.profile.View()
	assert.False(t, view.Editing, "смена выбранного пользователя сбрасывает сеанс")
	assert.Equal(t, "olga", view.Draft.Username)

	_, err := s.profile.Save(model.ProfileDraft{Username: "x"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestProfileEdit_ResetOnReturnToSameUser(t *testing.T) {
	s := newServices(t)

	require.NoError(t, s.profile.BeginEdit())
	require.NoError(t, s.users.Select("u3"))

	name := "renamed"
	_, err := s.profile.Update("u2", model.ProfilePatch{Username: &name})
	require.NoError(t, err)
	require.NoError(t, s.users.Select("u2"))

	view := s.profile.View()
	assert.False(t, view.Editing, "сеанс, открытый до смены выбора, не восстанавливается")
	assert.Equal(t, "renamed", view.User.Username)
	assert.Equal(t, "renamed", view.Draft.Username, "черновик засеян из текущей записи")
}

func TestProfileEdit_ResetOnReselect(t *testing.T) {
	s := newServices(t)

	require.NoError(t, s.profile.BeginEdit())
	require.NoError(t, s.users.Select("u2"))
	assert.False(t, s.profile.View().Editing)
}

func TestProfileEdit_OwnProfileSyncsActingIdentity(t *testing.T) {
	s := newServices(t)
	require.NoError(t, s.users.Select("u1"))

	require.NoError(t, s.profile.BeginEdit())
	_, err := s.profile.Save(model.ProfileDraft{Username: "root", Email: "root@example.com"})
	require.NoError(t, err)

	st := s.store.Snapshot()
	selected, _ := st.SelectedUser()
	assert.Equal(t, "root", st.ActingUser().Username)
	assert.Equal(t, "root", selected.Username)
}

func TestProfile_NonAdmin(t *testing.T) {
	s := newServices(t)
	demote(t, s)

	// Чужой профиль — только просмотр
	view := s.profile.View()
	require.True(t, view.Found)
	assert.False(t, view.Perms.CanEditProfile())
	assert.ErrorIs(t, s.profile.BeginEdit(), ErrForbidden)

	name := "hacked"
	_, err := s.profile.Update("u2", model.ProfilePatch{Username: &name})
	assert.ErrorIs(t, err, ErrForbidden)

	// Свой профиль — можно
	require.NoError(t, s.users.Select("u1"))
	view = s.profile.View()
	assert.True(t, view.Perms.IsOwnProfile)
	assert.True(t, view.Perms.CanEditProfile())
	require.NoError(t, s.profile.BeginEdit())

	s.profile.Cancel()
	assert.False(t, s.profile.View().Editing)
}

func TestProfileUpdate_NotFound(t *testing.T) {
	s := newServices(t)
	_, err := s.profile.Update("missing", model.ProfilePatch{})
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, s.users.Select(""))
	assert.ErrorIs(t, s.profile.BeginEdit(), ErrNotFound)
}

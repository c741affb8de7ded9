package rbac

import (
	"testing"

	"github.com/bigkaa/goartstore/catalog-console/internal/domain/model"
)

func TestToggle(t *testing.T) {
	if got := Toggle(model.RoleAdmin); got != model.RoleUser {
		t.Errorf("Toggle(admin) = %q, хотели user", got)
	}
	if got := Toggle(model.RoleUser); got != model.RoleAdmin {
		t.Errorf("Toggle(user) = %q, хотели admin", got)
	}
}

func TestIsValidRole(t *testing.T) {
	tests := []struct {
		role string
		want bool
	}{
		{"admin", true},
		{"user", true},
		{"readonly", false},
		{"", false},
		{"Admin", false},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			if got := IsValidRole(tt.role); got != tt.want {
				t.Errorf("IsValidRole(%q) = %v, хотели %v", tt.role, got, tt.want)
			}
		})
	}
}

func TestPermissions(t *testing.T) {
	admin := model.User{ID: "1", Role: model.RoleAdmin}
	user := model.User{ID: "2", Role: model.RoleUser}

	tests := []struct {
		name           string
		acting         model.User
		viewedID       string
		wantEdit       bool
		wantManage     bool
		wantOwnProfile bool
	}{
		{
			name:       "администратор смотрит чужой профиль",
			acting:     admin,
			viewedID:   "2",
			wantEdit:   true,
			wantManage: true,
		},
		{
			name:           "пользователь смотрит свой профиль",
			acting:         user,
			viewedID:       "2",
			wantEdit:       true,
			wantOwnProfile: true,
		},
		{
			name:     "пользователь смотрит чужой профиль — нет прав",
			acting:   user,
			viewedID: "1",
		},
		{
			name:     "профиль не выбран",
			acting:   user,
			viewedID: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := For(tt.acting, tt.viewedID)
			if p.CanEditProfile() != tt.wantEdit {
				t.Errorf("CanEditProfile() = %v, хотели %v", p.CanEditProfile(), tt.wantEdit)
			}
			if p.CanManageUsers() != tt.wantManage {
				t.Errorf("CanManageUsers() = %v, хотели %v", p.CanManageUsers(), tt.wantManage)
			}
			if p.IsOwnProfile != tt.wantOwnProfile {
				t.Errorf("IsOwnProfile = %v, хотели %v", p.IsOwnProfile, tt.wantOwnProfile)
			}
		})
	}
}

func TestCanDeleteUser(t *testing.T) {
	adminPerms := Permissions{IsAdmin: true}
	userPerms := Permissions{IsAdmin: false}

	target := model.User{ID: "3", Role: model.RoleUser}
	adminTarget := model.User{ID: "4", Role: model.RoleAdmin}

	if !adminPerms.CanDeleteUser(target) {
		t.Error("администратор должен удалять обычного пользователя")
	}
	if adminPerms.CanDeleteUser(adminTarget) {
		t.Error("удаление администратора должно быть запрещено")
	}
	if userPerms.CanDeleteUser(target) {
		t.Error("обычный пользователь не должен удалять пользователей")
	}
}

package model

import (
	"time"
	"unicode"
)

// Role — роль пользователя консоли.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Roles — все роли в порядке отображения.
var Roles = []Role{RoleUser, RoleAdmin}

// IsValid проверяет, что роль входит в перечисление.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User — пользователь консоли.
// Набор пользователей фиксируется при загрузке seed-данных.
type User struct {
	// ID — непрозрачный идентификатор, не меняется
	ID       string `json:"id" yaml:"id" validate:"required"`
	Username string `json:"username" yaml:"username"`
	Email    string `json:"email" yaml:"email"`
	Role     Role   `json:"role" yaml:"role" validate:"oneof=user admin"`
	// Avatar — ссылка на аватар (опционально)
	Avatar    string    `json:"avatar,omitempty" yaml:"avatar,omitempty" validate:"omitempty,url"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt"`
}

// Initial возвращает первую букву имени для аватара-заглушки.
func (u User) Initial() string {
	for _, r := range u.Username {
		return string(unicode.ToUpper(r))
	}
	return "?"
}

// ProfileDraft — редактируемые поля профиля.
type ProfileDraft struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Draft возвращает редактируемые поля профиля пользователя.
func (u User) Draft() ProfileDraft {
	return ProfileDraft{Username: u.Username, Email: u.Email}
}

// ProfilePatch — частичное обновление профиля. Формат и уникальность
// username/email не проверяются, пустая строка допустима.
type ProfilePatch struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
}

// Patch превращает черновик профиля в полное обновление.
func (d ProfileDraft) Patch() ProfilePatch {
	return ProfilePatch{Username: &d.Username, Email: &d.Email}
}

// Apply возвращает копию пользователя с применённым обновлением профиля.
func (u User) Apply(patch ProfilePatch) User {
	if patch.Username != nil {
		u.Username = *patch.Username
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	return u
}

// Пакет rbac — модель прав консоли.
// Два бинарных признака управляют всеми изменяющими действиями:
// isAdmin (роль действующего пользователя) и isOwnProfile
// (действующий пользователь смотрит свой профиль).
package rbac

import "github.com/bigkaa/goartstore/catalog-console/internal/domain/model"

// knownRoles — допустимые роли.
var knownRoles = map[model.Role]bool{
	model.RoleUser:  true,
	model.RoleAdmin: true,
}

// IsAdmin проверяет, что роль даёт административные права.
func IsAdmin(role model.Role) bool {
	return role == model.RoleAdmin
}

// Toggle возвращает противоположную роль: admin ↔ user.
func Toggle(role model.Role) model.Role {
	if IsAdmin(role) {
		return model.RoleUser
	}
	return model.RoleAdmin
}

// IsValidRole проверяет, является ли строка допустимой ролью.
func IsValidRole(role string) bool {
	return knownRoles[model.Role(role)]
}

// Permissions — права действующего пользователя относительно
// просматриваемого объекта.
type Permissions struct {
	// IsAdmin — действующий пользователь администратор
	IsAdmin bool
	// IsOwnProfile — просматривается профиль действующего пользователя
	IsOwnProfile bool
}

// For вычисляет права действующего пользователя acting при просмотре
// пользователя viewedID (пустой viewedID — профиль не выбран).
func For(acting model.User, viewedID string) Permissions {
	return Permissions{
		IsAdmin:      IsAdmin(acting.Role),
		IsOwnProfile: viewedID != "" && acting.ID == viewedID,
	}
}

// CanEditProfile — редактировать профиль может администратор или владелец.
func (p Permissions) CanEditProfile() bool {
	return p.IsAdmin || p.IsOwnProfile
}

// CanManageUsers — вкладка управления пользователями доступна только администратору.
func (p Permissions) CanManageUsers() bool {
	return p.IsAdmin
}

// CanEditRoles — менять роли в таблице может только администратор.
func (p Permissions) CanEditRoles() bool {
	return p.IsAdmin
}

// CanDeleteUser — удалять можно только администратору и только не-администраторов.
func (p Permissions) CanDeleteUser(target model.User) bool {
	return p.IsAdmin && !IsAdmin(target.Role)
}

// CanManageProducts — добавление, редактирование и удаление товаров.
func (p Permissions) CanManageProducts() bool {
	return p.IsAdmin
}

// users.go — сервис управления пользователями: таблица с инлайн-редактором
// ролей, удаление, выбор профиля и переключение роли действующего пользователя.
package service

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/bigkaa/goartstore/catalog-console/internal/domain/model"
	"github.com/bigkaa/goartstore/catalog-console/internal/domain/rbac"
	"github.com/bigkaa/goartstore/catalog-console/internal/store"
)

// UserRow — строка таблицы пользователей.
type UserRow struct {
	User model.User
	// Role — значение селектора: подготовленная роль или каноническая
	Role model.Role
	// Staged — роль изменена в селекторе, но ещё не применена
	Staged    bool
	Selected  bool
	CanDelete bool
}

// UserTable — данные вкладки пользователей.
type UserTable struct {
	Rows  []UserRow
	Perms rbac.Permissions
}

// UserService — сервис управления пользователями.
type UserService struct {
	store *store.Store

	mu sync.Mutex
	// staged — роли, выбранные в селекторе и ожидающие потери фокуса
	staged map[string]model.Role

	logger *slog.Logger
}

// NewUserService создаёт сервис пользователей.
func NewUserService(st *store.Store, logger *slog.Logger) *UserService {
	return &UserService{
		store:  st,
		staged: make(map[string]model.Role),
		logger: logger.With(slog.String("component", "user_service")),
	}
}

// Acting возвращает действующего пользователя.
func (s *UserService) Acting() model.User {
	return s.store.Snapshot().ActingUser()
}

// SelectedID возвращает ID открытого профиля ("" — не выбран).
func (s *UserService) SelectedID() string {
	return s.store.Snapshot().SelectedUserID
}

// Permissions возвращает права действующего пользователя без привязки к профилю.
func (s *UserService) Permissions() rbac.Permissions {
	return rbac.For(s.Acting(), "")
}

// Table строит таблицу пользователей. Доступна только администратору.
func (s *UserService) Table() (UserTable, error) {
	st := s.store.Snapshot()
	perms := rbac.For(st.ActingUser(), "")
	if !perms.CanManageUsers() {
		return UserTable{}, deny("list_users")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rows := make([]UserRow, 0, len(st.Users))
	for _, u := range st.Users {
		row := UserRow{
			User:      u,
			Role:      u.Role,
			Selected:  u.ID == st.SelectedUserID,
			CanDelete: perms.CanDeleteUser(u) && u.ID != st.ActingUserID,
		}
		if role, ok := s.staged[u.ID]; ok {
			row.Role = role
			row.Staged = true
		}
		rows = append(rows, row)
	}
	return UserTable{Rows: rows, Perms: perms}, nil
}

// Row возвращает одну строку таблицы.
func (s *UserService) Row(id string) (UserRow, error) {
	table, err := s.Table()
	if err != nil {
		return UserRow{}, err
	}
	for _, row := range table.Rows {
		if row.User.ID == id {
			return row, nil
		}
	}
	return UserRow{}, fmt.Errorf("%w: пользователь %s", ErrNotFound, id)
}

// List возвращает коллекцию пользователей. Доступна только администратору.
func (s *UserService) List() ([]model.User, error) {
	st := s.store.Snapshot()
	if !rbac.For(st.ActingUser(), "").CanManageUsers() {
		return nil, deny("list_users")
	}
	return st.Users, nil
}

// Select открывает профиль пользователя id; пустой id сбрасывает выбор.
// Не затрагивает подготовленные изменения ролей.
func (s *UserService) Select(id string) error {
	if err := s.store.SelectUser(id); err != nil {
		return fmt.Errorf("выбор пользователя: %w", mapStoreError(err))
	}
	return nil
}

// SelectRow открывает профиль щелчком по строке таблицы пользователей.
// Таблица доступна только администратору, поэтому выбор проверяет права
// до изменения состояния.
func (s *UserService) SelectRow(id string) error {
	if !s.Permissions().CanManageUsers() {
		return deny("select_user")
	}
	return s.Select(id)
}

// StageRole запоминает роль, выбранную в селекторе строки.
func (s *UserService) StageRole(id string, role model.Role) error {
	if !s.Permissions().CanEditRoles() {
		return deny("set_role")
	}
	if !rbac.IsValidRole(string(role)) {
		return fmt.Errorf("%w: недопустимая роль %q", ErrValidation, role)
	}
	if _, ok := s.store.Snapshot().User(id); !ok {
		return fmt.Errorf("%w: пользователь %s", ErrNotFound, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.staged[id] = role
	return nil
}

// CommitRole применяет подготовленную роль при потере фокуса селектором.
// committed == false, если для пользователя ничего не подготовлено.
func (s *UserService) CommitRole(id string) (user model.User, committed bool, err error) {
	s.mu.Lock()
	role, ok := s.staged[id]
	s.mu.Unlock()
	if !ok {
		u, found := s.store.Snapshot().User(id)
		if !found {
			return model.User{}, false, fmt.Errorf("%w: пользователь %s", ErrNotFound, id)
		}
		return u, false, nil
	}

	updated, err := s.SetRole(id, role)
	if err != nil {
		return model.User{}, false, err
	}

	s.mu.Lock()
	if s.staged[id] == role {
		delete(s.staged, id)
	}
	s.mu.Unlock()
	return updated, true, nil
}

// SetRole сразу меняет роль пользователя. Если это действующий
// пользователь, вместе с ролью меняются права консоли.
func (s *UserService) SetRole(id string, role model.Role) (model.User, error) {
	if !s.Permissions().CanEditRoles() {
		return model.User{}, deny("set_role")
	}
	if !rbac.IsValidRole(string(role)) {
		return model.User{}, fmt.Errorf("%w: недопустимая роль %q", ErrValidation, role)
	}

	updated, err := s.store.UpdateUserRole(id, role)
	if err != nil {
		return model.User{}, fmt.Errorf("изменение роли: %w", mapStoreError(err))
	}

	recordMutation("user", "role")
	s.logger.Info("Роль пользователя изменена",
		slog.String("user_id", id),
		slog.String("role", string(role)),
	)
	return updated, nil
}

// Delete удаляет пользователя. Администраторов удалить нельзя,
// действующего пользователя тоже. Если профиль удалённого был открыт,
// выбор сбрасывается.
func (s *UserService) Delete(id string) error {
	st := s.store.Snapshot()
	target, ok := st.User(id)
	if !ok {
		return fmt.Errorf("%w: пользователь %s", ErrNotFound, id)
	}
	if !rbac.For(st.ActingUser(), "").CanDeleteUser(target) {
		return deny("delete_user")
	}

	if err := s.store.DeleteUser(id); err != nil {
		return fmt.Errorf("удаление пользователя: %w", mapStoreError(err))
	}

	s.mu.Lock()
	delete(s.staged, id)
	s.mu.Unlock()

	recordMutation("user", "delete")
	s.logger.Info("Пользователь удалён", slog.String("user_id", id))
	return nil
}

// ToggleActingRole переключает роль действующего пользователя admin ↔ user.
func (s *UserService) ToggleActingRole() (model.User, error) {
	updated, err := s.store.ToggleActingRole()
	if err != nil {
		return model.User{}, fmt.Errorf("переключение роли: %w", mapStoreError(err))
	}

	s.mu.Lock()
	delete(s.staged, updated.ID)
	s.mu.Unlock()

	recordMutation("user", "toggle_role")
	s.logger.Info("Роль действующего пользователя переключена",
		slog.String("user_id", updated.ID),
		slog.String("role", string(updated.Role)),
	)
	return updated, nil
}

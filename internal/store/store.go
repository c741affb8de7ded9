package store

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bigkaa/goartstore/catalog-console/internal/domain/model"
	"github.com/bigkaa/goartstore/catalog-console/internal/domain/rbac"
)

// Ошибки контейнера состояния.
var (
	// ErrNotFound — сущность с таким ID отсутствует.
	ErrNotFound = errors.New("запись не найдена")
	// ErrActingUser — операция недопустима для действующего пользователя.
	ErrActingUser = errors.New("операция недопустима для действующего пользователя")
	// ErrInvalidSeed — начальное состояние некорректно.
	ErrInvalidSeed = errors.New("некорректное начальное состояние")
)

// Store — потокобезопасный владелец снимка состояния.
// sync.RWMutex нужен только потому, что net/http обслуживает запросы
// параллельно: мутации применяются по одной, чтения не блокируют друг друга.
type Store struct {
	mu     sync.RWMutex
	state  *State
	now    func() time.Time
	newID  func() string
	logger *slog.Logger
}

// Option — опция конструктора Store.
type Option func(*Store)

// WithClock подменяет источник текущего времени.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator подменяет генератор ID товаров.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// New создаёт Store с начальным состоянием.
// ID товаров и пользователей должны быть уникальны, действующий
// пользователь должен присутствовать в коллекции.
func New(initial State, logger *slog.Logger, opts ...Option) (*Store, error) {
	if err := checkInitial(initial); err != nil {
		return nil, err
	}

	s := &Store{
		state:  initial.clone(),
		now:    time.Now,
		newID:  newUUIDv7,
		logger: logger.With(slog.String("component", "store")),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.logger.Info("Состояние консоли инициализировано",
		slog.Int("products", len(initial.Products)),
		slog.Int("users", len(initial.Users)),
		slog.String("acting_user_id", initial.ActingUserID),
	)
	return s, nil
}

// checkInitial проверяет инварианты начального состояния.
func checkInitial(st State) error {
	seen := make(map[string]bool, len(st.Products))
	for _, p := range st.Products {
		if p.ID == "" || seen[p.ID] {
			return fmt.Errorf("%w: товар с пустым или повторяющимся ID %q", ErrInvalidSeed, p.ID)
		}
		seen[p.ID] = true
	}

	seen = make(map[string]bool, len(st.Users))
	for _, u := range st.Users {
		if u.ID == "" || seen[u.ID] {
			return fmt.Errorf("%w: пользователь с пустым или повторяющимся ID %q", ErrInvalidSeed, u.ID)
		}
		seen[u.ID] = true
	}

	if !seen[st.ActingUserID] {
		return fmt.Errorf("%w: действующий пользователь %q отсутствует в коллекции", ErrInvalidSeed, st.ActingUserID)
	}
	if st.SelectedUserID != "" && !seen[st.SelectedUserID] {
		return fmt.Errorf("%w: выбранный пользователь %q отсутствует в коллекции", ErrInvalidSeed, st.SelectedUserID)
	}
	return nil
}

// Snapshot возвращает текущий неизменяемый снимок.
// Вызывающий код не должен изменять срезы снимка.
func (s *Store) Snapshot() *State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// CheckReady сообщает готовность для readiness probe: снимок загружен
// и действующий пользователь присутствует в коллекции.
func (s *Store) CheckReady() (status string, message string) {
	st := s.Snapshot()
	if st == nil {
		return "fail", "состояние не загружено"
	}
	if _, ok := st.User(st.ActingUserID); !ok {
		return "fail", "действующий пользователь отсутствует"
	}
	return "ok", fmt.Sprintf("товаров: %d, пользователей: %d", len(st.Products), len(st.Users))
}

// update применяет fn к копии состояния и публикует её при успехе.
func (s *Store) update(fn func(next *State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.clone()
	if err := fn(next); err != nil {
		return err
	}
	s.state = next
	return nil
}

// stamp возвращает отметку времени строго позже prev.
func (s *Store) stamp(prev time.Time) time.Time {
	now := s.now().UTC()
	if !now.After(prev) {
		now = prev.Add(time.Microsecond)
	}
	return now
}

// --- Товары ---

// AddProduct добавляет товар в конец коллекции.
// ID уникален в пределах коллекции, createdAt == updatedAt.
func (s *Store) AddProduct(draft model.ProductDraft) (model.Product, error) {
	var created model.Product
	err := s.update(func(next *State) error {
		id := s.newID()
		for attempts := 0; id == "" || next.productIndex(id) >= 0; attempts++ {
			if attempts >= 16 {
				return fmt.Errorf("не удалось сгенерировать уникальный ID товара")
			}
			id = s.newID()
		}

		now := s.now().UTC()
		base := model.Product{ID: id, CreatedAt: now, UpdatedAt: now}
		created = base.Apply(draft.Patch())
		next.Products = append(next.Products, created)
		return nil
	})
	if err != nil {
		return model.Product{}, err
	}

	s.logger.Debug("Товар добавлен",
		slog.String("product_id", created.ID),
		slog.String("name", created.Name),
	)
	return created, nil
}

// UpdateProduct применяет частичное обновление к товару и обновляет updatedAt.
func (s *Store) UpdateProduct(id string, patch model.ProductPatch) (model.Product, error) {
	var updated model.Product
	err := s.update(func(next *State) error {
		i := next.productIndex(id)
		if i < 0 {
			return fmt.Errorf("товар %s: %w", id, ErrNotFound)
		}
		updated = next.Products[i].Apply(patch)
		updated.UpdatedAt = s.stamp(next.Products[i].UpdatedAt)
		next.Products[i] = updated
		return nil
	})
	if err != nil {
		return model.Product{}, err
	}
	return updated, nil
}

// DeleteProduct удаляет ровно один товар по ID.
func (s *Store) DeleteProduct(id string) error {
	return s.update(func(next *State) error {
		i := next.productIndex(id)
		if i < 0 {
			return fmt.Errorf("товар %s: %w", id, ErrNotFound)
		}
		next.Products = append(next.Products[:i], next.Products[i+1:]...)
		return nil
	})
}

// --- Пользователи ---

// UpdateUserRole меняет роль пользователя. Если это действующий
// пользователь, его права меняются вместе со строкой таблицы.
func (s *Store) UpdateUserRole(id string, role model.Role) (model.User, error) {
	var updated model.User
	err := s.update(func(next *State) error {
		i := next.userIndex(id)
		if i < 0 {
			return fmt.Errorf("пользователь %s: %w", id, ErrNotFound)
		}
		updated = next.Users[i]
		updated.Role = role
		updated.UpdatedAt = s.stamp(updated.UpdatedAt)
		next.Users[i] = updated
		return nil
	})
	if err != nil {
		return model.User{}, err
	}
	return updated, nil
}

// ToggleActingRole переключает роль действующего пользователя admin ↔ user.
// Действующий пользователь — запись коллекции, поэтому строка таблицы
// и права консоли меняются одной операцией.
func (s *Store) ToggleActingRole() (model.User, error) {
	var updated model.User
	err := s.update(func(next *State) error {
		i := next.userIndex(next.ActingUserID)
		if i < 0 {
			return fmt.Errorf("действующий пользователь %s: %w", next.ActingUserID, ErrNotFound)
		}
		updated = next.Users[i]
		updated.Role = rbac.Toggle(updated.Role)
		updated.UpdatedAt = s.stamp(updated.UpdatedAt)
		next.Users[i] = updated
		return nil
	})
	if err != nil {
		return model.User{}, err
	}
	return updated, nil
}

// UpdateUserProfile применяет обновление профиля к пользователю.
func (s *Store) UpdateUserProfile(id string, patch model.ProfilePatch) (model.User, error) {
	var updated model.User
	err := s.update(func(next *State) error {
		i := next.userIndex(id)
		if i < 0 {
			return fmt.Errorf("пользователь %s: %w", id, ErrNotFound)
		}
		updated = next.Users[i].Apply(patch)
		updated.UpdatedAt = s.stamp(next.Users[i].UpdatedAt)
		next.Users[i] = updated
		return nil
	})
	if err != nil {
		return model.User{}, err
	}
	return updated, nil
}

// DeleteUser удаляет пользователя. Если он был выбран, выбор сбрасывается.
// Действующего пользователя удалить нельзя.
func (s *Store) DeleteUser(id string) error {
	return s.update(func(next *State) error {
		if id == next.ActingUserID {
			return fmt.Errorf("удаление пользователя %s: %w", id, ErrActingUser)
		}
		i := next.userIndex(id)
		if i < 0 {
			return fmt.Errorf("пользователь %s: %w", id, ErrNotFound)
		}
		next.Users = append(next.Users[:i], next.Users[i+1:]...)
		if next.SelectedUserID == id {
			next.SelectedUserID = ""
			next.SelectionGen++
		}
		return nil
	})
}

// SelectUser открывает профиль пользователя id. Пустой id сбрасывает выбор.
func (s *Store) SelectUser(id string) error {
	return s.update(func(next *State) error {
		if id != "" && next.userIndex(id) < 0 {
			return fmt.Errorf("пользователь %s: %w", id, ErrNotFound)
		}
		next.SelectedUserID = id
		next.SelectionGen++
		return nil
	})
}

// newUUIDv7 генерирует упорядоченный по времени UUID.
func newUUIDv7() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

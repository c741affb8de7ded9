// Пакет store — корневой контейнер состояния консоли.
//
// Состояние — неизменяемый снимок (State): коллекции товаров и пользователей,
// ссылка на действующего пользователя и ссылка на выбранный профиль.
// Действующий пользователь и выбранный профиль хранятся только как ID
// и всегда выводятся поиском по коллекции, поэтому три представления
// одного пользователя не могут разойтись.
//
// Каждая мутация строит новые срезы и атомарно подменяет указатель
// на снимок; выданные ранее снимки никогда не изменяются.
package store

import (
	"github.com/bigkaa/goartstore/catalog-console/internal/domain/model"
)

// State — неизменяемый снимок состояния консоли.
type State struct {
	// Products — товары в порядке добавления
	Products []model.Product
	// Users — пользователи, набор фиксирован seed-данными
	Users []model.User
	// ActingUserID — кто сейчас работает с консолью
	ActingUserID string
	// SelectedUserID — чей профиль открыт ("" — не выбран)
	SelectedUserID string
	// SelectionGen растёт при каждом выборе профиля и при сбросе выбора
	// удалением; повторный выбор того же пользователя тоже его меняет.
	SelectionGen uint64
}

// Product возвращает товар по ID.
func (s *State) Product(id string) (model.Product, bool) {
	for _, p := range s.Products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

// User возвращает пользователя по ID.
func (s *State) User(id string) (model.User, bool) {
	if id == "" {
		return model.User{}, false
	}
	for _, u := range s.Users {
		if u.ID == id {
			return u, true
		}
	}
	return model.User{}, false
}

// ActingUser возвращает действующего пользователя.
func (s *State) ActingUser() model.User {
	u, _ := s.User(s.ActingUserID)
	return u
}

// SelectedUser возвращает выбранного пользователя или ok=false,
// если профиль не выбран или пользователь удалён.
func (s *State) SelectedUser() (model.User, bool) {
	return s.User(s.SelectedUserID)
}

func (s *State) productIndex(id string) int {
	for i, p := range s.Products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (s *State) userIndex(id string) int {
	for i, u := range s.Users {
		if u.ID == id {
			return i
		}
	}
	return -1
}

// clone возвращает поверхностную копию снимка с собственными срезами.
func (s *State) clone() *State {
	next := *s
	next.Products = make([]model.Product, len(s.Products))
	copy(next.Products, s.Products)
	next.Users = make([]model.User, len(s.Users))
	copy(next.Users, s.Users)
	return &next
}

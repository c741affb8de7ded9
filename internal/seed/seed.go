// Пакет seed — начальные данные консоли: товары, пользователи и
// действующий пользователь. Формат — YAML; встроенный набор используется,
// если путь к файлу не задан.
package seed

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-playground/validator"
	"gopkg.in/yaml.v3"

	"github.com/bigkaa/goartstore/catalog-console/internal/domain/model"
	"github.com/bigkaa/goartstore/catalog-console/internal/store"
)

// defaultSeed — встроенный набор данных.
//
//go:embed default.yaml
var defaultSeed []byte

// ErrInvalid — seed-данные не прошли проверку.
var ErrInvalid = errors.New("некорректные seed-данные")

// Document — структура seed-файла.
type Document struct {
	Products []model.Product `yaml:"products" validate:"dive"`
	Users    []model.User    `yaml:"users" validate:"dive"`
	// ActingUser — действующий пользователь. Если его ID уже есть
	// в users, используется запись коллекции; иначе запись добавляется
	// в конец коллекции.
	ActingUser model.User `yaml:"actingUser"`
	// SelectedUserID — изначально открытый профиль; по умолчанию
	// первый пользователь коллекции.
	SelectedUserID string `yaml:"selectedUserId"`
}

// Load читает seed-файл path или встроенный набор, если path пуст.
func Load(path string, logger *slog.Logger) (store.State, error) {
	data := defaultSeed
	source := "embedded"
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return store.State{}, fmt.Errorf("чтение seed-файла %s: %w", path, err)
		}
		source = path
	}

	st, err := Parse(data)
	if err != nil {
		return store.State{}, err
	}

	logger.Info("Seed-данные загружены",
		slog.String("source", source),
		slog.Int("products", len(st.Products)),
		slog.Int("users", len(st.Users)),
	)
	return st, nil
}

// Parse разбирает и проверяет seed-документ и строит начальное состояние.
func Parse(data []byte) (store.State, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return store.State{}, fmt.Errorf("%w: разбор YAML: %v", ErrInvalid, err)
	}

	validate := validator.New()
	if err := model.RegisterValidations(validate); err != nil {
		return store.State{}, fmt.Errorf("регистрация правил валидации: %w", err)
	}
	if err := validate.Struct(doc); err != nil {
		return store.State{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := validate.Struct(doc.ActingUser); err != nil {
		return store.State{}, fmt.Errorf("%w: actingUser: %v", ErrInvalid, err)
	}

	users := make([]model.User, 0, len(doc.Users)+1)
	users = append(users, doc.Users...)
	found := false
	for _, u := range users {
		if u.ID == doc.ActingUser.ID {
			found = true
			break
		}
	}
	if !found {
		users = append(users, doc.ActingUser)
	}

	for i := range doc.Products {
		normalizeProduct(&doc.Products[i])
	}
	for i := range users {
		normalizeUser(&users[i])
	}

	selected := doc.SelectedUserID
	if selected == "" && len(users) > 0 {
		selected = users[0].ID
	}

	return store.State{
		Products:       doc.Products,
		Users:          users,
		ActingUserID:   doc.ActingUser.ID,
		SelectedUserID: selected,
	}, nil
}

// normalizeProduct восстанавливает инвариант updatedAt ≥ createdAt
// и заменяет nil-список изображений пустым.
func normalizeProduct(p *model.Product) {
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.UpdatedAt.Before(p.CreatedAt) {
		p.UpdatedAt = p.CreatedAt
	}
}

func normalizeUser(u *model.User) {
	if u.UpdatedAt.Before(u.CreatedAt) {
		u.UpdatedAt = u.CreatedAt
	}
}

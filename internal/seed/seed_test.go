package seed

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bigkaa/goartstore/catalog-console/internal/domain/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestLoad_Embedded(t *testing.T) {
	st, err := Load("", testLogger())
	require.NoError(t, err)

	assert.Len(t, st.Products, 8)
	assert.Len(t, st.Users, 4, "действующий пользователь уже есть в коллекции")
	assert.Equal(t, "1", st.ActingUserID)
	assert.Equal(t, "1", st.SelectedUserID, "по умолчанию открыт первый пользователь")
	assert.Equal(t, model.RoleAdmin, st.ActingUser().Role)

	for _, p := range st.Products {
		assert.NotNil(t, p.Images)
		assert.False(t, p.UpdatedAt.Before(p.CreatedAt))
	}
}

func TestParse_ActingUserAppended(t *testing.T) {
	doc := `
users:
  - id: "a"
    username: anna
    role: user
actingUser:
  id: "me"
  username: me
  role: admin
selectedUserId: "a"
`
	st, err := Parse([]byte(doc))
	require.NoError(t, err)

	require.Len(t, st.Users, 2)
	assert.Equal(t, "me", st.Users[1].ID)
	assert.Equal(t, "me", st.ActingUserID)
	assert.Equal(t, "a", st.SelectedUserID)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "битый YAML",
			doc:  "products: [",
		},
		{
			name: "неизвестная категория",
			doc: `
products:
  - id: "1"
    category: ceiling
    brand: lg
    power: 9000
actingUser: {id: "me", role: admin}
`,
		},
		{
			name: "недопустимая мощность",
			doc: `
products:
  - id: "1"
    category: split
    brand: lg
    power: 10000
actingUser: {id: "me", role: admin}
`,
		},
		{
			name: "отрицательная цена",
			doc: `
products:
  - id: "1"
    price: -5
    category: split
    brand: lg
    power: 9000
actingUser: {id: "me", role: admin}
`,
		},
		{
			name: "неизвестная роль",
			doc: `
users:
  - id: "1"
    role: root
actingUser: {id: "1", role: admin}
`,
		},
		{
			name: "действующий пользователь без ID",
			doc:  `actingUser: {role: admin}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	doc := []byte(`
products:
  - id: "x"
    name: Test
    category: mobile
    brand: samsung
    power: 7000
actingUser: {id: "me", username: me, role: user}
`)
	require.NoError(t, os.WriteFile(path, doc, 0o600))

	st, err := Load(path, testLogger())
	require.NoError(t, err)
	assert.Len(t, st.Products, 1)
	assert.Equal(t, []string{}, st.Products[0].Images)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"), testLogger())
	assert.Error(t, err)
}

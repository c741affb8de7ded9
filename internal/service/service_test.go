package service

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bigkaa/goartstore/catalog-console/internal/domain/model"
	"github.com/bigkaa/goartstore/catalog-console/internal/store"
)

// testLogger возвращает логгер для тестов.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

var seedTime = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func product(id, name string, c model.Category, b model.Brand, inStock bool) model.Product {
	return model.Product{
		ID: id, Name: name, Price: 30000,
		Category: c, Brand: b, Power: model.Power9000, InStock: inStock,
		Images: []string{}, CreatedAt: seedTime, UpdatedAt: seedTime,
	}
}

// testState — 7 товаров (4 сплит-системы) и 3 пользователя;
// действующий — администратор u1, открыт профиль u2.
func testState() store.State {
	return store.State{
		Products: []model.Product{
			product("p1", "Daikin FTXB", model.CategorySplit, model.BrandDaikin, true),
			product("p2", "LG W09", model.CategoryWindow, model.BrandLG, false),
			product("p3", "Samsung AR", model.CategorySplit, model.BrandSamsung, true),
			product("p4", "Mitsubishi MSZ", model.CategorySplit, model.BrandMitsubishi, false),
			product("p5", "LG Mobile", model.CategoryMobile, model.BrandLG, true),
			product("p6", "Daikin Emura", model.CategorySplit, model.BrandDaikin, true),
			product("p7", "Samsung 360", model.CategoryCassette, model.BrandSamsung, true),
		},
		Users: []model.User{
			{ID: "u1", Username: "admin", Email: "admin@example.com", Role: model.RoleAdmin, CreatedAt: seedTime, UpdatedAt: seedTime},
			{ID: "u2", Username: "ivan", Email: "ivan@example.com", Role: model.RoleUser, CreatedAt: seedTime, UpdatedAt: seedTime},
			{ID: "u3", Username: "olga", Email: "olga@example.com", Role: model.RoleAdmin, CreatedAt: seedTime, UpdatedAt: seedTime},
		},
		ActingUserID:   "u1",
		SelectedUserID: "u2",
	}
}

type services struct {
	store    *store.Store
	products *ProductService
	users    *UserService
	profile  *ProfileService
}

func newServices(t *testing.T) services {
	t.Helper()
	st, err := store.New(testState(), testLogger())
	require.NoError(t, err)
	return services{
		store:    st,
		products: NewProductService(st, testLogger()),
		users:    NewUserService(st, testLogger()),
		profile:  NewProfileService(st, testLogger()),
	}
}

// demote делает действующего пользователя обычным.
func demote(t *testing.T, s services) {
	t.Helper()
	u, err := s.users.ToggleActingRole()
	require.NoError(t, err)
	require.Equal(t, model.RoleUser, u.Role)
}

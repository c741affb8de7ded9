package i18n

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBundle(t *testing.T, defaultLang string) *Bundle {
	t.Helper()
	b := NewBundle(defaultLang, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, LoadFromEmbedFS(b))
	return b
}

func TestLocales_SameKeys(t *testing.T) {
	catalogs := make(map[string]map[string]string)
	for _, lang := range Languages {
		data, err := LocaleFS.ReadFile("locales/" + lang + ".json")
		require.NoError(t, err)
		var m map[string]string
		require.NoError(t, json.Unmarshal(data, &m))
		catalogs[lang] = m
	}

	for key := range catalogs["ru"] {
		assert.Contains(t, catalogs["en"], key, "ключ %q отсутствует в en", key)
	}
	for key := range catalogs["en"] {
		assert.Contains(t, catalogs["ru"], key, "ключ %q отсутствует в ru", key)
	}
}

func TestTranslate(t *testing.T) {
	b := newTestBundle(t, "ru")

	assert.Equal(t, "Товары", b.Translate("ru", "tab.products"))
	assert.Equal(t, "Products", b.Translate("en", "tab.products"))
	assert.Equal(t, "no.such.key", b.Translate("en", "no.such.key"))
	assert.Equal(t, "Страница 2 из 3", b.Translatef("ru", "pager.page", 2, 3))
}

func TestTranslate_FallbackToDefault(t *testing.T) {
	b := NewBundle("ru", slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, b.LoadMessages("ru", []byte(`{"a":"А","b":"Б"}`)))
	require.NoError(t, b.LoadMessages("en", []byte(`{"a":"A"}`)))

	assert.Equal(t, "A", b.Translate("en", "a"))
	assert.Equal(t, "Б", b.Translate("en", "b"))
}

func TestLoadMessages_InvalidJSON(t *testing.T) {
	b := NewBundle("ru", slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, b.LoadMessages("ru", []byte(`{`)))
}

func TestNewBundle_UnsupportedDefault(t *testing.T) {
	b := NewBundle("de", slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Equal(t, "ru", b.DefaultLang())
}

func TestCheckReady(t *testing.T) {
	b := NewBundle("ru", slog.New(slog.NewTextHandler(io.Discard, nil)))
	status, _ := b.CheckReady()
	assert.Equal(t, "fail", status)

	require.NoError(t, LoadFromEmbedFS(b))
	status, _ = b.CheckReady()
	assert.Equal(t, "ok", status)
}

func TestMatchLanguage(t *testing.T) {
	tests := []struct {
		accept string
		want   string
	}{
		{"ru-RU,ru;q=0.9,en;q=0.8", "ru"},
		{"en-US,en;q=0.9", "en"},
		{"de-DE", "ru"},
		{"", "ru"},
		{"fr;q=0.9,en;q=0.5", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.accept, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchLanguage(tt.accept, "ru"))
		})
	}
}

func TestMiddleware(t *testing.T) {
	b := newTestBundle(t, "ru")

	var got string
	h := Middleware(b)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = T(r.Context(), "tab.users")
	}))

	tests := []struct {
		name   string
		cookie string
		accept string
		want   string
	}{
		{"по умолчанию", "", "", "Пользователи"},
		{"Accept-Language", "", "en-GB", "Users"},
		{"cookie важнее заголовка", "ru", "en", "Пользователи"},
		{"неизвестный cookie", "de", "en", "Users"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ui/products", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: LangCookieName, Value: tt.cookie})
			}
			if tt.accept != "" {
				req.Header.Set("Accept-Language", tt.accept)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestT_WithoutBundle(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "tab.users", T(ctx, "tab.users"))
	assert.Equal(t, "x 1", Tf(ctx, "x %d", 1))
	assert.Equal(t, "ru", LangFromContext(ctx))
}

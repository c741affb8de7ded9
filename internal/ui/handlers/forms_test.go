package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bigkaa/goartstore/catalog-console/internal/domain/model"
	"github.com/bigkaa/goartstore/catalog-console/internal/service"
	"github.com/bigkaa/goartstore/catalog-console/internal/ui/i18n"
)

func formRequest(values url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func TestParseProductDraft(t *testing.T) {
	tests := []struct {
		name      string
		form      url.Values
		wantPrice float64
		wantPower model.Power
		wantStock bool
	}{
		{"корректные значения", url.Values{"price": {"25990.5"}, "power": {"9000"}, "inStock": {"on"}}, 25990.5, model.Power9000, true},
		{"отрицательная цена", url.Values{"price": {"-10"}, "power": {"7000"}}, 0, model.Power7000, false},
		{"нечисловые значения", url.Values{"price": {"abc"}, "power": {"много"}, "inStock": {"true"}}, 0, 0, true},
		{"пустая форма", url.Values{}, 0, 0, false},
		{"бесконечная цена", url.Values{"price": {"Inf"}, "power": {"9000"}, "inStock": {"true"}}, 0, model.Power9000, true},
		{"переполнение цены", url.Values{"price": {"1e400"}}, 0, 0, false},
		{"NaN", url.Values{"price": {"NaN"}}, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := parseProductDraft(formRequest(tt.form))
			require.NoError(t, err)
			assert.Equal(t, tt.wantPrice, d.Price)
			assert.Equal(t, tt.wantPower, d.Power)
			assert.Equal(t, tt.wantStock, d.InStock)
			assert.NotNil(t, d.Images)
		})
	}
}

func TestParseProfileDraft(t *testing.T) {
	d, err := parseProfileDraft(formRequest(url.Values{"username": {""}, "email": {"a@b"}}))
	require.NoError(t, err)
	assert.Equal(t, model.ProfileDraft{Username: "", Email: "a@b"}, d)
}

func TestBackURL(t *testing.T) {
	tests := []struct {
		referer string
		want    string
	}{
		{"", defaultBackURL},
		{"http://localhost:8080/ui/users", "/ui/users"},
		{"http://localhost:8080/ui/products?x=1", "/ui/products?x=1"},
		{"http://evil.example//evil.example/path", defaultBackURL},
		{"relative/path", defaultBackURL},
	}
	for _, tt := range tests {
		t.Run(tt.referer, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/ui/language", nil)
			r.Header.Set("Referer", tt.referer)
			assert.Equal(t, tt.want, backURL(r))
		})
	}
}

func TestErrorMessageAndStatus(t *testing.T) {
	bundle := i18n.NewBundle("ru", slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, i18n.LoadFromEmbedFS(bundle))
	ctx := i18n.WithLang(i18n.WithBundle(context.Background(), bundle), "ru")

	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"не найдено", fmt.Errorf("%w: товар 9", service.ErrNotFound), http.StatusNotFound, "Запись не найдена"},
		{"нет прав", fmt.Errorf("%w: удаление", service.ErrForbidden), http.StatusForbidden, "Недостаточно прав"},
		{"валидация", fmt.Errorf("%w: power: недопустимое значение", service.ErrValidation), http.StatusUnprocessableEntity, "Ошибка в данных: power: недопустимое значение"},
		{"прочее", errors.New("boom"), http.StatusInternalServerError, "Внутренняя ошибка"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, statusFor(tt.err))
			assert.Equal(t, tt.msg, errorMessage(ctx, tt.err))
		})
	}
}

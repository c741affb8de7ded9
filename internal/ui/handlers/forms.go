package handlers

import (
	"net/http"
	"strings"

	"github.com/spf13/cast"

	"github.com/bigkaa/goartstore/catalog-console/internal/domain/model"
)

// parseProductDraft собирает черновик товара из формы.
// Числовые поля разбираются нестрого: нечисловое или бесконечное значение
// даёт 0, отрицательная цена приводится к 0. Изображения вводятся одной строкой
// через запятую.
func parseProductDraft(r *http.Request) (model.ProductDraft, error) {
	if err := r.ParseForm(); err != nil {
		return model.ProductDraft{}, err
	}

	price := cast.ToFloat64(strings.TrimSpace(r.FormValue("price")))
	if price < 0 || !model.IsFinite(price) {
		price = 0
	}

	return model.ProductDraft{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Price:       price,
		Category:    model.Category(r.FormValue("category")),
		Brand:       model.Brand(r.FormValue("brand")),
		Power:       model.Power(cast.ToInt(strings.TrimSpace(r.FormValue("power")))),
		InStock:     formBool(r.FormValue("inStock")),
		Images:      model.SplitImages(r.FormValue("images")),
	}, nil
}

// formBool разбирает флажок формы: браузер без атрибута value шлёт "on".
func formBool(v string) bool {
	if strings.EqualFold(v, "on") {
		return true
	}
	return cast.ToBool(v)
}

// parseProfileDraft собирает черновик профиля из формы. Значения не проверяются.
func parseProfileDraft(r *http.Request) (model.ProfileDraft, error) {
	if err := r.ParseForm(); err != nil {
		return model.ProfileDraft{}, err
	}
	return model.ProfileDraft{
		Username: r.FormValue("username"),
		Email:    r.FormValue("email"),
	}, nil
}

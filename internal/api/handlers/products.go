// products.go — обработчики /api/v1/products.
// Список с фильтрами и пагинацией, добавление, частичное обновление, удаление.
package handlers

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/oapi-codegen/runtime"

	apierrors "github.com/bigkaa/goartstore/catalog-console/internal/api/errors"
	"github.com/bigkaa/goartstore/catalog-console/internal/catalog"
	"github.com/bigkaa/goartstore/catalog-console/internal/domain/model"
)

// listProductsParams — query-параметры GET /api/v1/products.
type listProductsParams struct {
	Category *string
	Brand    *string
	Stock    *string
	Page     *int
}

// productPageResponse — ответ GET /api/v1/products.
type productPageResponse struct {
	Items      []model.Product `json:"items"`
	Page       int             `json:"page"`
	TotalPages int             `json:"totalPages"`
	TotalItems int             `json:"totalItems"`
	PageSize   int             `json:"pageSize"`
}

// bindListProductsParams разбирает query-параметры так же, как это делает
// сгенерированный oapi-codegen код.
func bindListProductsParams(r *http.Request) (listProductsParams, error) {
	var params listProductsParams
	query := r.URL.Query()

	if err := runtime.BindQueryParameter("form", true, false, "category", query, &params.Category); err != nil {
		return params, err
	}
	if err := runtime.BindQueryParameter("form", true, false, "brand", query, &params.Brand); err != nil {
		return params, err
	}
	if err := runtime.BindQueryParameter("form", true, false, "stock", query, &params.Stock); err != nil {
		return params, err
	}
	if err := runtime.BindQueryParameter("form", true, false, "page", query, &params.Page); err != nil {
		return params, err
	}
	return params, nil
}

func deref[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}
	return *v
}

// ListProducts — GET /api/v1/products.
// Фильтры не меняют состояние представления HTML-консоли.
func (h *APIHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	params, err := bindListProductsParams(r)
	if err != nil {
		apierrors.ValidationError(w, r, err.Error())
		return
	}

	filter := catalog.ParseFilter(deref(params.Category), deref(params.Brand), deref(params.Stock))
	page := 1
	if params.Page != nil {
		page = *params.Page
	}

	result := h.products.Query(filter, page)
	render.JSON(w, r, productPageResponse{
		Items:      result.Items,
		Page:       result.Number,
		TotalPages: result.TotalPages,
		TotalItems: result.TotalItems,
		PageSize:   catalog.PageSize,
	})
}

// CreateProduct — POST /api/v1/products.
// Отсутствующие поля получают значения формы добавления по умолчанию.
// Доступ: admin.
func (h *APIHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	draft := model.DefaultDraft()
	if err := render.DecodeJSON(r.Body, &draft); err != nil {
		apierrors.ValidationError(w, r, "Некорректное тело запроса: "+err.Error())
		return
	}

	created, err := h.products.Create(draft)
	if err != nil {
		h.serviceError(w, r, "create_product", err)
		return
	}

	writeJSON(w, r, http.StatusCreated, created)
}

// UpdateProduct — PATCH /api/v1/products/{id}.
// Меняются только переданные поля. Доступ: admin.
func (h *APIHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var patch model.ProductPatch
	if err := render.DecodeJSON(r.Body, &patch); err != nil {
		apierrors.ValidationError(w, r, "Некорректное тело запроса: "+err.Error())
		return
	}

	updated, err := h.products.Update(id, patch)
	if err != nil {
		h.serviceError(w, r, "update_product", err)
		return
	}

	render.JSON(w, r, updated)
}

// DeleteProduct — DELETE /api/v1/products/{id}. Доступ: admin.
func (h *APIHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.products.Delete(id); err != nil {
		h.serviceError(w, r, "delete_product", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// products.go — обработчики вкладки товаров: фильтры, пагинация,
// форма добавления, редактирование и удаление карточек.
package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/spf13/cast"

	"github.com/bigkaa/goartstore/catalog-console/internal/catalog"
	"github.com/bigkaa/goartstore/catalog-console/internal/service"
	"github.com/bigkaa/goartstore/catalog-console/internal/ui/pages"
)

// ProductsHandler — обработчик вкладки товаров.
type ProductsHandler struct {
	base
	products *service.ProductService
}

// NewProductsHandler создаёт новый ProductsHandler.
func NewProductsHandler(products *service.ProductService, users *service.UserService, logger *slog.Logger) *ProductsHandler {
	return &ProductsHandler{
		base: base{
			users:  users,
			logger: logger.With(slog.String("component", "ui.products")),
		},
		products: products,
	}
}

// HandleList обрабатывает GET /ui/products — страница каталога.
func (h *ProductsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, http.StatusOK, pages.TabProducts, pages.ProductsTab(h.products.List()))
}

// renderSection отдаёт секцию #products целиком.
func (h *ProductsHandler) renderSection(w http.ResponseWriter, r *http.Request, oob ...templ.Component) {
	h.renderPartial(w, r, pages.ProductsTab(h.products.List()), oob...)
}

// HandleFilter обрабатывает POST /ui/partials/products/filter.
func (h *ProductsHandler) HandleFilter(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderError(w, r, "filter", fmt.Errorf("%w: %v", service.ErrValidation, err))
		return
	}
	h.products.SetFilter(catalog.ParseFilter(
		r.FormValue("category"),
		r.FormValue("brand"),
		r.FormValue("stock"),
	))
	h.renderSection(w, r)
}

// HandleClearFilters обрабатывает POST /ui/partials/products/clear.
func (h *ProductsHandler) HandleClearFilters(w http.ResponseWriter, r *http.Request) {
	h.products.ClearFilters()
	h.renderSection(w, r)
}

// HandlePage обрабатывает POST /ui/partials/products/page/{page}.
// Номер вне диапазона приводится к ближайшей странице.
func (h *ProductsHandler) HandlePage(w http.ResponseWriter, r *http.Request) {
	h.products.SetPage(cast.ToInt(chi.URLParam(r, "page")))
	h.renderSection(w, r)
}

// --- Форма добавления ---

// HandleOpenAdd обрабатывает POST /ui/partials/products/add/open.
func (h *ProductsHandler) HandleOpenAdd(w http.ResponseWriter, r *http.Request) {
	if err := h.products.OpenAddForm(); err != nil {
		h.renderError(w, r, "open_add_form", err)
		return
	}
	h.renderSection(w, r)
}

// HandleCancelAdd обрабатывает POST /ui/partials/products/add/cancel.
// Введённые значения сохраняются до следующего открытия формы.
func (h *ProductsHandler) HandleCancelAdd(w http.ResponseWriter, r *http.Request) {
	draft, err := parseProductDraft(r)
	if err != nil {
		h.renderError(w, r, "cancel_add_form", fmt.Errorf("%w: %v", service.ErrValidation, err))
		return
	}
	h.products.CancelAddForm(draft)
	h.renderSection(w, r)
}

// HandleSubmitAdd обрабатывает POST /ui/partials/products/add.
func (h *ProductsHandler) HandleSubmitAdd(w http.ResponseWriter, r *http.Request) {
	draft, err := parseProductDraft(r)
	if err != nil {
		h.renderError(w, r, "create_product", fmt.Errorf("%w: %v", service.ErrValidation, err))
		return
	}

	created, err := h.products.SubmitAddForm(draft)
	if err != nil {
		h.renderError(w, r, "create_product", err)
		return
	}
	h.renderSection(w, r, success(r.Context(), "alert.product_created", created.Name))
}

// --- Карточка товара ---

// renderCard отдаёт карточку товара id.
func (h *ProductsHandler) renderCard(w http.ResponseWriter, r *http.Request, id string) {
	card, err := h.products.Card(id)
	if err != nil {
		h.renderError(w, r, "product_card", err)
		return
	}
	h.renderPartial(w, r, pages.ProductCard(card.Product, card.Draft, card.Editing, card.CanManage))
}

// HandleEdit обрабатывает POST /ui/partials/products/{id}/edit.
func (h *ProductsHandler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.products.BeginEdit(id); err != nil {
		h.renderError(w, r, "begin_edit", err)
		return
	}
	h.renderCard(w, r, id)
}

// HandleDraft обрабатывает POST /ui/partials/products/{id}/draft —
// сохраняет черновик открытой карточки при изменении полей.
func (h *ProductsHandler) HandleDraft(w http.ResponseWriter, r *http.Request) {
	draft, err := parseProductDraft(r)
	if err != nil {
		h.renderError(w, r, "update_draft", fmt.Errorf("%w: %v", service.ErrValidation, err))
		return
	}
	h.products.UpdateEdit(chi.URLParam(r, "id"), draft)
	w.WriteHeader(http.StatusNoContent)
}

// HandleSave обрабатывает POST /ui/partials/products/{id}/save.
// Сохранённый товар может выпасть из фильтра, поэтому обновляется вся секция.
func (h *ProductsHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	draft, err := parseProductDraft(r)
	if err != nil {
		h.renderError(w, r, "save_product", fmt.Errorf("%w: %v", service.ErrValidation, err))
		return
	}

	if _, err := h.products.SaveEdit(id, draft); err != nil {
		h.renderError(w, r, "save_product", err)
		return
	}

	w.Header().Set("HX-Retarget", "#products")
	w.Header().Set("HX-Reswap", "outerHTML")
	h.renderSection(w, r, success(r.Context(), "alert.product_saved"))
}

// HandleCancel обрабатывает POST /ui/partials/products/{id}/cancel.
func (h *ProductsHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.products.CancelEdit(id)
	h.renderCard(w, r, id)
}

// HandleDelete обрабатывает DELETE /ui/partials/products/{id}. Без подтверждения.
func (h *ProductsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.products.Delete(chi.URLParam(r, "id")); err != nil {
		h.renderError(w, r, "delete_product", err)
		return
	}
	h.renderSection(w, r, success(r.Context(), "alert.product_deleted"))
}

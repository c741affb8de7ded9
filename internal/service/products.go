// Пакет service — бизнес-логика консоли каталога.
// products.go — сервис каталога: представление списка, форма добавления,
// сеансы редактирования карточек и удаление.
package service

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/bigkaa/goartstore/catalog-console/internal/catalog"
	"github.com/bigkaa/goartstore/catalog-console/internal/domain/edit"
	"github.com/bigkaa/goartstore/catalog-console/internal/domain/model"
	"github.com/bigkaa/goartstore/catalog-console/internal/domain/rbac"
	"github.com/bigkaa/goartstore/catalog-console/internal/store"
)

// AddForm — состояние формы добавления товара.
type AddForm struct {
	Open  bool
	Draft model.ProductDraft
}

// ProductList — всё, что нужно для отрисовки вкладки товаров.
type ProductList struct {
	View    catalog.View
	Page    catalog.Page
	AddForm AddForm
	// Edits — черновики открытых сеансов редактирования по ID товара
	Edits map[string]model.ProductDraft
	Perms rbac.Permissions
}

// Draft возвращает черновик карточки, если она в режиме редактирования.
func (l ProductList) Draft(id string) (model.ProductDraft, bool) {
	d, ok := l.Edits[id]
	return d, ok
}

// ProductService — сервис каталога товаров.
// Состояние представления (фильтры, страница, форма, сеансы) общее
// для консоли: аутентификации нет, оператор один.
type ProductService struct {
	store *store.Store

	mu    sync.Mutex
	view  catalog.View
	add   AddForm
	edits map[string]edit.State[model.ProductDraft]

	logger *slog.Logger
}

// NewProductService создаёт сервис каталога.
func NewProductService(st *store.Store, logger *slog.Logger) *ProductService {
	return &ProductService{
		store:  st,
		view:   catalog.NewView(),
		add:    AddForm{Draft: model.DefaultDraft()},
		edits:  make(map[string]edit.State[model.ProductDraft]),
		logger: logger.With(slog.String("component", "product_service")),
	}
}

// permissions возвращает права действующего пользователя.
func (s *ProductService) permissions() rbac.Permissions {
	st := s.store.Snapshot()
	return rbac.For(st.ActingUser(), "")
}

// List строит текущую страницу каталога с учётом фильтров
// и открытых сеансов редактирования.
func (s *ProductService) List() ProductList {
	st := s.store.Snapshot()

	s.mu.Lock()
	defer s.mu.Unlock()

	page := s.view.Render(st.Products)
	// Сохраняем номер страницы после приведения к допустимому диапазону
	s.view.Page = page.Number

	edits := make(map[string]model.ProductDraft)
	for id, session := range s.edits {
		if _, ok := st.Product(id); !ok {
			delete(s.edits, id)
			continue
		}
		if d, ok := session.Draft(); ok {
			edits[id] = d
		}
	}

	return ProductList{
		View:    s.view,
		Page:    page,
		AddForm: s.add,
		Edits:   edits,
		Perms:   rbac.For(st.ActingUser(), ""),
	}
}

// Query возвращает страницу каталога для произвольного фильтра,
// не затрагивая состояние представления консоли.
func (s *ProductService) Query(f catalog.Filter, page int) catalog.Page {
	st := s.store.Snapshot()
	return catalog.NewView().WithFilter(f).WithPage(page).Render(st.Products)
}

// SetFilter меняет фильтры; при изменении страница сбрасывается на первую.
func (s *ProductService) SetFilter(f catalog.Filter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = s.view.WithFilter(f)
}

// SetPage переходит на страницу page.
func (s *ProductService) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = s.view.WithPage(page)
}

// ClearFilters сбрасывает фильтры и возвращает на первую страницу.
func (s *ProductService) ClearFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = s.view.Cleared()
}

// --- Форма добавления ---

// OpenAddForm открывает форму добавления с сохранённым черновиком.
func (s *ProductService) OpenAddForm() error {
	if !s.permissions().CanManageProducts() {
		return deny("create_product")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.add.Open = true
	return nil
}

// CancelAddForm закрывает форму, сохраняя введённые значения.
func (s *ProductService) CancelAddForm(draft model.ProductDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.add = AddForm{Open: false, Draft: draft}
}

// SubmitAddForm создаёт товар из формы, закрывает её и сбрасывает
// черновик к значениям по умолчанию. При ошибке валидации форма
// остаётся открытой с введёнными значениями.
func (s *ProductService) SubmitAddForm(draft model.ProductDraft) (model.Product, error) {
	created, err := s.Create(draft)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.add = AddForm{Open: true, Draft: draft}
		return model.Product{}, err
	}
	s.add = AddForm{Open: false, Draft: model.DefaultDraft()}
	return created, nil
}

// Create добавляет товар в конец каталога.
func (s *ProductService) Create(draft model.ProductDraft) (model.Product, error) {
	if !s.permissions().CanManageProducts() {
		return model.Product{}, deny("create_product")
	}
	if err := validateStruct(draft); err != nil {
		return model.Product{}, err
	}

	created, err := s.store.AddProduct(draft)
	if err != nil {
		return model.Product{}, fmt.Errorf("добавление товара: %w", mapStoreError(err))
	}

	recordMutation("product", "create")
	s.logger.Info("Товар добавлен",
		slog.String("product_id", created.ID),
		slog.String("name", created.Name),
	)
	return created, nil
}

// --- Редактирование карточки ---

// ProductCard — товар и состояние его карточки.
type ProductCard struct {
	Product model.Product
	// Draft — черновик, если карточка в режиме редактирования
	Draft     model.ProductDraft
	Editing   bool
	CanManage bool
}

// Card возвращает карточку товара id.
func (s *ProductService) Card(id string) (ProductCard, error) {
	st := s.store.Snapshot()
	p, ok := st.Product(id)
	if !ok {
		return ProductCard{}, fmt.Errorf("%w: товар %s", ErrNotFound, id)
	}

	card := ProductCard{
		Product:   p,
		CanManage: rbac.For(st.ActingUser(), "").CanManageProducts(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if session, ok := s.edits[id]; ok {
		card.Draft, card.Editing = session.Draft()
	}
	return card, nil
}

// BeginEdit открывает сеанс редактирования с черновиком из канонической записи.
func (s *ProductService) BeginEdit(id string) error {
	if !s.permissions().CanManageProducts() {
		return deny("update_product")
	}
	p, ok := s.store.Snapshot().Product(id)
	if !ok {
		return fmt.Errorf("%w: товар %s", ErrNotFound, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.edits[id] = edit.Begin(p.Draft())
	return nil
}

// UpdateEdit заменяет черновик открытого сеанса.
func (s *ProductService) UpdateEdit(id string, draft model.ProductDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if session, ok := s.edits[id]; ok {
		s.edits[id] = session.Update(draft)
	}
}

// SaveEdit применяет черновик к товару и закрывает сеанс.
// При ошибке валидации сеанс остаётся открытым с введёнными значениями.
func (s *ProductService) SaveEdit(id string, draft model.ProductDraft) (model.Product, error) {
	s.mu.Lock()
	session, ok := s.edits[id]
	s.mu.Unlock()
	if !ok || !session.Editing() {
		return model.Product{}, fmt.Errorf("%w: товар %s не редактируется", ErrValidation, id)
	}

	updated, err := s.Update(id, draft.Patch())

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.edits[id] = session.Update(draft)
		return model.Product{}, err
	}
	delete(s.edits, id)
	return updated, nil
}

// CancelEdit отбрасывает черновик.
func (s *ProductService) CancelEdit(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.edits, id)
}

// Update применяет частичное обновление к товару.
func (s *ProductService) Update(id string, patch model.ProductPatch) (model.Product, error) {
	if !s.permissions().CanManageProducts() {
		return model.Product{}, deny("update_product")
	}
	if err := validateStruct(patch); err != nil {
		return model.Product{}, err
	}

	updated, err := s.store.UpdateProduct(id, patch)
	if err != nil {
		return model.Product{}, fmt.Errorf("обновление товара: %w", mapStoreError(err))
	}

	recordMutation("product", "update")
	s.logger.Info("Товар обновлён", slog.String("product_id", id))
	return updated, nil
}

// Delete удаляет товар и закрывает его сеанс редактирования.
func (s *ProductService) Delete(id string) error {
	if !s.permissions().CanManageProducts() {
		return deny("delete_product")
	}
	if err := s.store.DeleteProduct(id); err != nil {
		return fmt.Errorf("удаление товара: %w", mapStoreError(err))
	}

	s.mu.Lock()
	delete(s.edits, id)
	s.mu.Unlock()

	recordMutation("product", "delete")
	s.logger.Info("Товар удалён", slog.String("product_id", id))
	return nil
}

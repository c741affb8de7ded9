package catalog

import "github.com/bigkaa/goartstore/catalog-console/internal/domain/model"

// PageSize — фиксированный размер страницы сетки товаров.
const PageSize = 6

// Page — одна страница отфильтрованного списка.
type Page struct {
	// Items — товары страницы
	Items []model.Product
	// Number — номер страницы (с 1) после приведения к допустимому диапазону
	Number int
	// TotalPages — ceil(TotalItems / size); 0 для пустого списка
	TotalPages int
	// TotalItems — количество товаров после фильтрации
	TotalItems int
}

// TotalPages возвращает количество страниц: ceil(n / size).
func TotalPages(n, size int) int {
	if size < 1 || n <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// ClampPage приводит номер страницы к диапазону [1, totalPages].
// Для пустого списка возвращает 1.
func ClampPage(page, totalPages int) int {
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return page
}

// Paginate возвращает страницу page (с 1) размера size.
// Номер вне диапазона приводится к ближайшей существующей странице.
func Paginate(items []model.Product, page, size int) Page {
	total := len(items)
	totalPages := TotalPages(total, size)
	page = ClampPage(page, totalPages)

	start := (page - 1) * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page{
		Items:      items[start:end],
		Number:     page,
		TotalPages: totalPages,
		TotalItems: total,
	}
}

// View — состояние представления списка: фильтр и текущая страница.
type View struct {
	Filter Filter
	Page   int
}

// NewView возвращает представление без фильтров на первой странице.
func NewView() View {
	return View{Page: 1}
}

// WithFilter меняет фильтр. Любое изменение фильтра сбрасывает страницу на 1.
func (v View) WithFilter(f Filter) View {
	if f != v.Filter {
		v.Page = 1
	}
	v.Filter = f
	return v
}

// WithPage переходит на страницу page.
func (v View) WithPage(page int) View {
	v.Page = page
	return v
}

// Cleared сбрасывает все фильтры и возвращает на первую страницу.
func (v View) Cleared() View {
	return NewView()
}

// Render применяет конвейер фильтр → пагинация к коллекции.
func (v View) Render(products []model.Product) Page {
	return Paginate(v.Filter.Apply(products), v.Page, PageSize)
}

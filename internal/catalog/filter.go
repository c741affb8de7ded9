// Пакет catalog — производное представление списка товаров:
// фильтрация (категория, бренд, наличие) → пагинация.
// Функции чистые: входной срез не изменяется, порядок сохраняется.
package catalog

import (
	"github.com/bigkaa/goartstore/catalog-console/internal/domain/model"
)

// StockFilter — фильтр по наличию.
type StockFilter string

const (
	// StockAny — без фильтра
	StockAny StockFilter = ""
	// StockIn — только в наличии
	StockIn StockFilter = "inStock"
	// StockOut — только отсутствующие
	StockOut StockFilter = "outOfStock"
)

// ParseStockFilter разбирает значение фильтра наличия.
// Неизвестные значения трактуются как «без фильтра».
func ParseStockFilter(s string) StockFilter {
	switch StockFilter(s) {
	case StockIn, StockOut:
		return StockFilter(s)
	default:
		return StockAny
	}
}

// Filter — три независимых предиката. Пустое значение предиката
// означает «совпадает всё».
type Filter struct {
	Category model.Category
	Brand    model.Brand
	Stock    StockFilter
}

// IsZero сообщает, что ни один предикат не задан.
func (f Filter) IsZero() bool {
	return f.Category == "" && f.Brand == "" && f.Stock == StockAny
}

// Match проверяет товар на соответствие всем заданным предикатам.
func (f Filter) Match(p model.Product) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Brand != "" && p.Brand != f.Brand {
		return false
	}
	if f.Stock == StockIn && !p.InStock {
		return false
	}
	if f.Stock == StockOut && p.InStock {
		return false
	}
	return true
}

// Apply возвращает подпоследовательность товаров, прошедших фильтр,
// в исходном относительном порядке.
func (f Filter) Apply(products []model.Product) []model.Product {
	result := make([]model.Product, 0, len(products))
	for _, p := range products {
		if f.Match(p) {
			result = append(result, p)
		}
	}
	return result
}

// ParseFilter собирает фильтр из строковых значений формы.
// Значения вне перечислений сбрасываются в «без фильтра».
func ParseFilter(category, brand, stock string) Filter {
	f := Filter{Stock: ParseStockFilter(stock)}
	if c := model.Category(category); c.IsValid() {
		f.Category = c
	}
	if b := model.Brand(brand); b.IsValid() {
		f.Brand = b
	}
	return f
}

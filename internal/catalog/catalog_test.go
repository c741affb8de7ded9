package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bigkaa/goartstore/catalog-console/internal/domain/model"
)

// sevenProducts — семь товаров, четыре из них split.
func sevenProducts() []model.Product {
	return []model.Product{
		{ID: "1", Name: "Daikin FTXB", Category: model.CategorySplit, Brand: model.BrandDaikin, InStock: true},
		{ID: "2", Name: "LG W09", Category: model.CategoryWindow, Brand: model.BrandLG, InStock: true},
		{ID: "3", Name: "Mitsubishi MSZ", Category: model.CategorySplit, Brand: model.BrandMitsubishi, InStock: false},
		{ID: "4", Name: "Samsung AR", Category: model.CategorySplit, Brand: model.BrandSamsung, InStock: true},
		{ID: "5", Name: "Daikin mobile", Category: model.CategoryMobile, Brand: model.BrandDaikin, InStock: false},
		{ID: "6", Name: "LG cassette", Category: model.CategoryCassette, Brand: model.BrandLG, InStock: true},
		{ID: "7", Name: "LG split", Category: model.CategorySplit, Brand: model.BrandLG, InStock: true},
	}
}

func ids(products []model.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

// isSubsequence проверяет, что sub — подпоследовательность all по ID.
func isSubsequence(sub, all []model.Product) bool {
	j := 0
	for i := 0; i < len(all) && j < len(sub); i++ {
		if all[i].ID == sub[j].ID {
			j++
		}
	}
	return j == len(sub)
}

func TestFilter_SplitScenario(t *testing.T) {
	products := sevenProducts()

	page := NewView().WithFilter(Filter{Category: model.CategorySplit}).Render(products)

	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 4, page.TotalItems)
	assert.Equal(t, []string{"1", "3", "4", "7"}, ids(page.Items))
}

func TestFilter_AllCombinations(t *testing.T) {
	products := sevenProducts()

	categories := append([]model.Category{""}, model.Categories...)
	brands := append([]model.Brand{""}, model.Brands...)
	stocks := []StockFilter{StockAny, StockIn, StockOut}

	for _, c := range categories {
		for _, b := range brands {
			for _, s := range stocks {
				f := Filter{Category: c, Brand: b, Stock: s}
				t.Run(fmt.Sprintf("%s/%s/%s", c, b, s), func(t *testing.T) {
					got := f.Apply(products)
					assert.True(t, isSubsequence(got, products), "результат должен быть подпоследовательностью")

					for _, p := range got {
						if c != "" {
							assert.Equal(t, c, p.Category)
						}
						if b != "" {
							assert.Equal(t, b, p.Brand)
						}
						if s == StockIn {
							assert.True(t, p.InStock)
						}
						if s == StockOut {
							assert.False(t, p.InStock)
						}
					}

					// Все пропущенные товары действительно не проходят фильтр
					kept := make(map[string]bool, len(got))
					for _, p := range got {
						kept[p.ID] = true
					}
					for _, p := range products {
						if !kept[p.ID] {
							assert.False(t, f.Match(p), "товар %s отброшен, но проходит фильтр", p.ID)
						}
					}
				})
			}
		}
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	products := sevenProducts()
	before := ids(products)

	_ = Filter{Brand: model.BrandLG}.Apply(products)

	assert.Equal(t, before, ids(products))
}

func TestParseFilter(t *testing.T) {
	f := ParseFilter("window", "bosch", "outOfStock")
	assert.Equal(t, model.CategoryWindow, f.Category)
	assert.Equal(t, model.Brand(""), f.Brand, "неизвестный бренд сбрасывается")
	assert.Equal(t, StockOut, f.Stock)

	assert.True(t, ParseFilter("", "", "garbage").IsZero())
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{0, 0}, {1, 1}, {5, 1}, {6, 1}, {7, 2}, {12, 2}, {13, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.n, PageSize), "n=%d", tt.n)
	}
}

func TestPaginate_ConcatenationReproducesList(t *testing.T) {
	for n := 0; n <= 20; n++ {
		items := make([]model.Product, n)
		for i := range items {
			items[i] = model.Product{ID: fmt.Sprintf("p%d", i)}
		}

		totalPages := TotalPages(n, PageSize)
		var concat []model.Product
		for page := 1; page <= totalPages; page++ {
			p := Paginate(items, page, PageSize)
			require.Equal(t, page, p.Number)
			require.LessOrEqual(t, len(p.Items), PageSize)
			concat = append(concat, p.Items...)
		}

		assert.Equal(t, ids(items), ids(concat), "n=%d", n)
	}
}

func TestPaginate_ClampsOutOfRange(t *testing.T) {
	products := sevenProducts()

	last := Paginate(products, 99, PageSize)
	assert.Equal(t, 2, last.Number)
	assert.Equal(t, []string{"7"}, ids(last.Items))

	first := Paginate(products, -3, PageSize)
	assert.Equal(t, 1, first.Number)
	assert.Len(t, first.Items, PageSize)

	empty := Paginate(nil, 4, PageSize)
	assert.Equal(t, 1, empty.Number)
	assert.Equal(t, 0, empty.TotalPages)
	assert.Empty(t, empty.Items)
}

func TestView_FilterChangeResetsPage(t *testing.T) {
	v := NewView().WithPage(2)
	assert.Equal(t, 2, v.Page)

	// Тот же фильтр — страница сохраняется
	v = v.WithFilter(Filter{})
	assert.Equal(t, 2, v.Page)

	// Новый фильтр — страница сбрасывается
	v = v.WithPage(2).WithFilter(Filter{Brand: model.BrandLG})
	assert.Equal(t, 1, v.Page)
}

func TestView_Cleared(t *testing.T) {
	v := NewView().
		WithFilter(Filter{Category: model.CategorySplit, Brand: model.BrandLG, Stock: StockIn}).
		WithPage(3).
		Cleared()

	assert.True(t, v.Filter.IsZero())
	assert.Equal(t, 1, v.Page)
}

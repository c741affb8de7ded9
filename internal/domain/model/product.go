// Пакет model — доменные модели каталога кондиционеров и пользователей консоли.
package model

import (
	"strings"
	"time"
)

// Category — тип кондиционера.
type Category string

const (
	CategorySplit    Category = "split"
	CategoryWindow   Category = "window"
	CategoryMobile   Category = "mobile"
	CategoryCassette Category = "cassette"
)

// Categories — все категории в порядке отображения.
var Categories = []Category{CategorySplit, CategoryWindow, CategoryMobile, CategoryCassette}

// IsValid проверяет, что категория входит в перечисление.
func (c Category) IsValid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// Brand — производитель.
type Brand string

const (
	BrandDaikin     Brand = "daikin"
	BrandMitsubishi Brand = "mitsubishi"
	BrandLG         Brand = "lg"
	BrandSamsung    Brand = "samsung"
)

// Brands — все бренды в порядке отображения.
var Brands = []Brand{BrandDaikin, BrandMitsubishi, BrandLG, BrandSamsung}

// IsValid проверяет, что бренд входит в перечисление.
func (b Brand) IsValid() bool {
	for _, v := range Brands {
		if b == v {
			return true
		}
	}
	return false
}

// Power — мощность охлаждения в BTU.
type Power int

const (
	Power7000  Power = 7000
	Power9000  Power = 9000
	Power12000 Power = 12000
	Power18000 Power = 18000
)

// Powers — все допустимые значения мощности.
var Powers = []Power{Power7000, Power9000, Power12000, Power18000}

// IsValid проверяет, что мощность входит в перечисление.
func (p Power) IsValid() bool {
	for _, v := range Powers {
		if p == v {
			return true
		}
	}
	return false
}

// Product — товар каталога.
type Product struct {
	// ID — непрозрачный идентификатор, назначается при создании и не меняется
	ID          string    `json:"id" yaml:"id" validate:"required"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description" yaml:"description"`
	Price       float64   `json:"price" yaml:"price" validate:"finite,gte=0"`
	Category    Category  `json:"category" yaml:"category" validate:"oneof=split window mobile cassette"`
	Brand       Brand     `json:"brand" yaml:"brand" validate:"oneof=daikin mitsubishi lg samsung"`
	Power       Power     `json:"power" yaml:"power" validate:"oneof=7000 9000 12000 18000"`
	InStock     bool      `json:"inStock" yaml:"inStock"`
	Images      []string  `json:"images" yaml:"images"`
	CreatedAt   time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" yaml:"updatedAt"`
}

// Draft возвращает редактируемые поля товара.
func (p Product) Draft() ProductDraft {
	return ProductDraft{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Brand:       p.Brand,
		Power:       p.Power,
		InStock:     p.InStock,
		Images:      cloneStrings(p.Images),
	}
}

// Apply возвращает копию товара с применённым частичным обновлением.
// ID и временные метки не затрагиваются.
func (p Product) Apply(patch ProductPatch) Product {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Brand != nil {
		p.Brand = *patch.Brand
	}
	if patch.Power != nil {
		p.Power = *patch.Power
	}
	if patch.InStock != nil {
		p.InStock = *patch.InStock
	}
	if patch.Images != nil {
		p.Images = cloneStrings(*patch.Images)
	} else {
		p.Images = cloneStrings(p.Images)
	}
	return p
}

// ProductDraft — редактируемые поля товара: форма добавления и черновик карточки.
type ProductDraft struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"finite,gte=0"`
	Category    Category `json:"category" validate:"oneof=split window mobile cassette"`
	Brand       Brand    `json:"brand" validate:"oneof=daikin mitsubishi lg samsung"`
	Power       Power    `json:"power" validate:"oneof=7000 9000 12000 18000"`
	InStock     bool     `json:"inStock"`
	Images      []string `json:"images"`
}

// DefaultDraft — значения формы добавления товара по умолчанию.
func DefaultDraft() ProductDraft {
	return ProductDraft{
		Category: CategorySplit,
		Brand:    BrandDaikin,
		Power:    Power7000,
		InStock:  true,
		Images:   []string{},
	}
}

// Patch превращает черновик в полное частичное обновление (все поля заданы).
func (d ProductDraft) Patch() ProductPatch {
	images := cloneStrings(d.Images)
	return ProductPatch{
		Name:        &d.Name,
		Description: &d.Description,
		Price:       &d.Price,
		Category:    &d.Category,
		Brand:       &d.Brand,
		Power:       &d.Power,
		InStock:     &d.InStock,
		Images:      &images,
	}
}

// ProductPatch — частичное обновление товара. nil-поля не меняются.
type ProductPatch struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Price       *float64  `json:"price,omitempty" validate:"omitempty,finite,gte=0"`
	Category    *Category `json:"category,omitempty" validate:"omitempty,oneof=split window mobile cassette"`
	Brand       *Brand    `json:"brand,omitempty" validate:"omitempty,oneof=daikin mitsubishi lg samsung"`
	Power       *Power    `json:"power,omitempty" validate:"omitempty,oneof=7000 9000 12000 18000"`
	InStock     *bool     `json:"inStock,omitempty"`
	Images      *[]string `json:"images,omitempty"`
}

// JoinImages собирает список ссылок в одно текстовое поле формы.
func JoinImages(images []string) string {
	return strings.Join(images, ", ")
}

// SplitImages разбирает текстовое поле формы обратно в список ссылок:
// разделитель — запятая, пробелы обрезаются, пустые сегменты отбрасываются.
// Ссылка, содержащая запятую, при этом разрывается на части.
func SplitImages(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

func cloneStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

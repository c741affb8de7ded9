package pages

import (
	"context"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/bigkaa/goartstore/catalog-console/internal/domain/model"
	"github.com/bigkaa/goartstore/catalog-console/internal/ui/i18n"
)

// PlaceholderImage — картинка карточки товара без изображений.
const PlaceholderImage = "/static/img/placeholder.svg"

// FormatPrice форматирует цену с разделителями разрядов по правилам
// языка и знаком рубля: «45 990 ₽», «45,990 ₽».
func FormatPrice(lang string, price float64) string {
	tag := language.Russian
	if lang == "en" {
		tag = language.English
	}
	p := message.NewPrinter(tag)
	return p.Sprint(number.Decimal(price, number.MaxFractionDigits(2))) + " ₽"
}

// FormatTime форматирует метку времени для карточки товара.
func FormatTime(lang string, t time.Time) string {
	if lang == "en" {
		return t.Local().Format("Jan 2, 2006 15:04")
	}
	return t.Local().Format("02.01.2006 15:04")
}

// PreviewImage возвращает первое изображение товара или заглушку.
func PreviewImage(p model.Product) string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return PlaceholderImage
}

func categoryLabel(ctx context.Context, c model.Category) string {
	return i18n.T(ctx, "category."+string(c))
}

func brandLabel(ctx context.Context, b model.Brand) string {
	return i18n.T(ctx, "brand."+string(b))
}

func powerLabel(ctx context.Context, p model.Power) string {
	return i18n.Tf(ctx, "power.btu", int(p))
}

func roleLabel(ctx context.Context, r model.Role) string {
	return i18n.T(ctx, "role."+string(r))
}

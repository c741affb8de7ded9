package pages

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"github.com/bigkaa/goartstore/catalog-console/internal/catalog"
	"github.com/bigkaa/goartstore/catalog-console/internal/domain/model"
	"github.com/bigkaa/goartstore/catalog-console/internal/service"
	"github.com/bigkaa/goartstore/catalog-console/internal/ui/i18n"
)

const productsPartials = "/ui/partials/products"

// ProductsTab — вкладка товаров: фильтры, форма добавления, сетка, пагинация.
// Секция #products целиком подменяется при смене фильтров и страниц.
func ProductsTab(list service.ProductList) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		canManage := list.Perms.CanManageProducts()

		h.raw(`<section id="products" class="products">`)
		h.child(ctx, filters(list.View.Filter, canManage && !list.AddForm.Open))

		if canManage && list.AddForm.Open {
			h.child(ctx, AddForm(list.AddForm.Draft))
		}

		h.raw(`<p class="muted">`)
		h.text(i18n.Tf(ctx, "products.found", list.Page.TotalItems))
		h.raw("</p>")

		if len(list.Page.Items) == 0 {
			h.raw(`<p class="empty">`)
			h.text(i18n.T(ctx, "products.empty"))
			h.raw("</p>")
		} else {
			h.raw(`<div class="grid">`)
			for _, p := range list.Page.Items {
				draft, editing := list.Draft(p.ID)
				h.child(ctx, ProductCard(p, draft, editing, canManage))
			}
			h.raw("</div>")
		}

		h.child(ctx, pager(list.Page))
		h.raw("</section>")
	})
}

// sectionTarget — атрибуты подмены всей секции товаров.
func (h *htmlWriter) sectionTarget() {
	h.raw(` hx-target="#products" hx-swap="outerHTML"`)
}

func filters(f catalog.Filter, showAdd bool) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<form class="filters"`)
		h.attr("hx-post", productsPartials+"/filter")
		h.raw(` hx-trigger="change"`)
		h.sectionTarget()
		h.raw(">")

		h.raw("<label>")
		h.text(i18n.T(ctx, "filter.category"))
		h.raw(` <select name="category">`)
		h.option("", i18n.T(ctx, "filter.all"), f.Category == "")
		for _, c := range model.Categories {
			h.option(string(c), categoryLabel(ctx, c), f.Category == c)
		}
		h.raw("</select></label>")

		h.raw("<label>")
		h.text(i18n.T(ctx, "filter.brand"))
		h.raw(` <select name="brand">`)
		h.option("", i18n.T(ctx, "filter.all"), f.Brand == "")
		for _, b := range model.Brands {
			h.option(string(b), brandLabel(ctx, b), f.Brand == b)
		}
		h.raw("</select></label>")

		h.raw("<label>")
		h.text(i18n.T(ctx, "filter.stock"))
		h.raw(` <select name="stock">`)
		h.option(string(catalog.StockAny), i18n.T(ctx, "filter.all"), f.Stock == catalog.StockAny)
		h.option(string(catalog.StockIn), i18n.T(ctx, "stock.in"), f.Stock == catalog.StockIn)
		h.option(string(catalog.StockOut), i18n.T(ctx, "stock.out"), f.Stock == catalog.StockOut)
		h.raw("</select></label>")

		h.raw(`<button type="button" class="btn btn-outline"`)
		h.attr("hx-post", productsPartials+"/clear")
		h.sectionTarget()
		h.raw(">")
		h.text(i18n.T(ctx, "filter.clear"))
		h.raw("</button>")

		if showAdd {
			h.raw(`<button type="button" class="btn btn-primary"`)
			h.attr("hx-post", productsPartials+"/add/open")
			h.sectionTarget()
			h.raw(">")
			h.text(i18n.T(ctx, "products.add"))
			h.raw("</button>")
		}
		h.raw("</form>")
	})
}

// AddForm — форма добавления товара.
// «Отмена» закрывает форму, сохраняя введённые значения.
func AddForm(draft model.ProductDraft) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<form class="card add-form"`)
		h.attr("hx-post", productsPartials+"/add")
		h.sectionTarget()
		h.raw("><h2>")
		h.text(i18n.T(ctx, "products.add_title"))
		h.raw("</h2>")

		h.child(ctx, productFields("add", draft))

		h.raw(`<div class="actions"><button type="submit" class="btn btn-primary">`)
		h.text(i18n.T(ctx, "action.create"))
		h.raw(`</button><button type="button" class="btn btn-outline"`)
		h.attr("hx-post", productsPartials+"/add/cancel")
		h.sectionTarget()
		h.raw(">")
		h.text(i18n.T(ctx, "action.cancel"))
		h.raw("</button></div></form>")
	})
}

// productFields — поля черновика товара. prefix делает id полей
// уникальными на странице.
func productFields(prefix string, d model.ProductDraft) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		input := func(name, key, typ, value string, extra ...string) {
			id := prefix + "-" + name
			h.raw("<label")
			h.attr("for", id)
			h.raw(">")
			h.text(i18n.T(ctx, key))
			h.raw("</label><input")
			h.attr("id", id)
			h.attr("type", typ)
			h.attr("name", name)
			h.attr("value", value)
			for i := 0; i+1 < len(extra); i += 2 {
				h.attr(extra[i], extra[i+1])
			}
			h.raw(">")
		}

		input("name", "product.name", "text", d.Name)

		h.raw("<label")
		h.attr("for", prefix+"-description")
		h.raw(">")
		h.text(i18n.T(ctx, "product.description"))
		h.raw(`</label><textarea name="description" rows="2"`)
		h.attr("id", prefix+"-description")
		h.raw(">")
		h.text(d.Description)
		h.raw("</textarea>")

		input("price", "product.price", "number",
			strconv.FormatFloat(d.Price, 'f', -1, 64), "min", "0", "step", "any")

		h.raw(`<div class="row">`)
		h.raw("<label>")
		h.text(i18n.T(ctx, "product.category"))
		h.raw(` <select name="category">`)
		for _, c := range model.Categories {
			h.option(string(c), categoryLabel(ctx, c), d.Category == c)
		}
		h.raw("</select></label>")

		h.raw("<label>")
		h.text(i18n.T(ctx, "product.brand"))
		h.raw(` <select name="brand">`)
		for _, b := range model.Brands {
			h.option(string(b), brandLabel(ctx, b), d.Brand == b)
		}
		h.raw("</select></label>")

		h.raw("<label>")
		h.text(i18n.T(ctx, "product.power"))
		h.raw(` <select name="power">`)
		for _, p := range model.Powers {
			h.option(strconv.Itoa(int(p)), powerLabel(ctx, p), d.Power == p)
		}
		h.raw("</select></label>")

		h.raw(`<label class="checkbox"><input type="checkbox" name="inStock" value="true"`)
		h.flag("checked", d.InStock)
		h.raw("> ")
		h.text(i18n.T(ctx, "product.in_stock"))
		h.raw("</label></div>")

		input("images", "product.images", "text", model.JoinImages(d.Images),
			"placeholder", i18n.T(ctx, "product.images_hint"))
	})
}

// ProductCard — карточка товара в режиме просмотра или редактирования.
func ProductCard(p model.Product, draft model.ProductDraft, editing, canManage bool) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		lang := i18n.LangFromContext(ctx)
		cardID := "product-" + p.ID
		base := productsPartials + "/" + p.ID
		cardTarget := func() {
			h.attr("hx-target", "#"+cardID)
			h.raw(` hx-swap="outerHTML"`)
		}

		inEdit := editing && canManage

		h.raw("<article")
		h.attr("id", cardID)
		if inEdit {
			h.raw(` class="card editing">`)
		} else {
			h.raw(` class="card">`)
		}

		h.raw(`<img class="card-media" loading="lazy"`)
		h.url("src", PreviewImage(p))
		h.attr("alt", p.Name)
		h.raw(">")
		h.raw(`<div class="card-body">`)

		if inEdit {
			h.raw("<form")
			h.attr("hx-post", base+"/draft")
			h.raw(` hx-trigger="change" hx-swap="none">`)
			h.child(ctx, productFields(cardID, draft))
			h.raw(`<div class="actions"><button type="button" class="btn btn-primary"`)
			h.attr("hx-post", base+"/save")
			cardTarget()
			h.raw(">")
			h.text(i18n.T(ctx, "action.save"))
			h.raw(`</button><button type="button" class="btn btn-outline"`)
			h.attr("hx-post", base+"/cancel")
			cardTarget()
			h.raw(">")
			h.text(i18n.T(ctx, "action.cancel"))
			h.raw("</button></div></form></div></article>")
			return
		}

		h.raw(`<h3 class="card-title">`)
		h.text(p.Name)
		h.raw(`</h3><p class="card-description">`)
		h.text(p.Description)
		h.raw(`</p><div class="price">`)
		h.text(FormatPrice(lang, p.Price))
		h.raw(`</div><div class="chips">`)
		chip := func(class, label string) {
			h.raw("<span")
			h.attr("class", class)
			h.raw(">")
			h.text(label)
			h.raw("</span>")
		}
		chip("chip", categoryLabel(ctx, p.Category))
		chip("chip", brandLabel(ctx, p.Brand))
		chip("chip", powerLabel(ctx, p.Power))
		if p.InStock {
			chip("chip chip-success", i18n.T(ctx, "stock.in"))
		} else {
			chip("chip", i18n.T(ctx, "stock.out"))
		}
		h.raw(`</div><small class="muted">`)
		h.text(i18n.Tf(ctx, "product.updated", FormatTime(lang, p.UpdatedAt)))
		h.raw("</small>")

		if canManage {
			h.raw(`<div class="actions"><button type="button" class="btn btn-outline"`)
			h.attr("hx-post", base+"/edit")
			cardTarget()
			h.raw(">")
			h.text(i18n.T(ctx, "action.edit"))
			h.raw(`</button><button type="button" class="btn btn-danger"`)
			h.attr("hx-delete", base)
			h.sectionTarget()
			h.raw(">")
			h.text(i18n.T(ctx, "action.delete"))
			h.raw("</button></div>")
		}
		h.raw("</div></article>")
	})
}

// pager — переключатель страниц; не выводится для одной страницы.
func pager(page catalog.Page) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		if page.TotalPages <= 1 {
			return
		}
		button := func(target int, label string, disabled, current bool) {
			h.raw("<button type=\"button\"")
			class := "btn btn-page"
			if current {
				class += " active"
			}
			h.attr("class", class)
			h.flag("disabled", disabled)
			h.attr("hx-post", productsPartials+"/page/"+strconv.Itoa(target))
			h.sectionTarget()
			h.raw(">")
			h.text(label)
			h.raw("</button>")
		}

		h.raw(`<nav class="pager"`)
		h.attr("aria-label", i18n.Tf(ctx, "pager.page", page.Number, page.TotalPages))
		h.raw(">")
		button(page.Number-1, i18n.T(ctx, "pager.prev"), page.Number <= 1, false)
		for n := 1; n <= page.TotalPages; n++ {
			button(n, strconv.Itoa(n), false, n == page.Number)
		}
		button(page.Number+1, i18n.T(ctx, "pager.next"), page.Number >= page.TotalPages, false)
		h.raw("</nav>")
	})
}

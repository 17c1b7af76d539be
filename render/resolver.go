package render

import (
	"strings"
	"time"

	"catalog-builder/models"
	"catalog-builder/utils"
)

// defaultProductBlock renders products when a page-level custom template
// exists but no sibling product fragment does.
const defaultProductBlock = `<div class="product">
<h3>{{productName}}</h3>
<img src="{{productImage}}" alt="{{productName}}">
<p>{{productSku}}</p>
<p>{{productPrice}}</p>
<p>{{productDescription}}</p>
</div>
`

// ResolveCustom looks for an on-disk override for the template and, if found,
// renders the catalog through it via token substitution. Returns false when
// no override exists so the caller proceeds to the dynamic composer.
func ResolveCustom(registry TemplateRegistry, template models.Template, catalog models.Catalog, products []models.Product, business models.Business) (string, bool) {
	files, ok := registry.Resolve(customTemplateName(template))
	if !ok {
		return "", false
	}

	page := ReplaceTokens(files.Page, map[string]string{
		"catalogName":        catalog.Name,
		"catalogDescription": catalog.Description,
		"businessName":       business.Name,
		"generatedDate":      utils.FormatDate(time.Now()),
	})

	fragment := files.Product
	if fragment == "" {
		fragment = defaultProductBlock
	}

	var b strings.Builder
	for i := range products {
		b.WriteString(ReplaceTokens(fragment, productTokens(&products[i])))
	}
	page = strings.ReplaceAll(page, "{{products}}", b.String())

	return page, true
}

// customTemplateName derives the registry lookup name for a template: the
// recorded custom filename when the layout is custom, otherwise a slug of the
// template's display name.
func customTemplateName(template models.Template) string {
	if template.Layout == models.LayoutCustom && template.Config.CustomTemplate != "" {
		return strings.TrimSuffix(template.Config.CustomTemplate, ".html")
	}
	return utils.Slugify(template.Name)
}

// productTokens maps the product-level placeholder vocabulary
func productTokens(p *models.Product) map[string]string {
	return map[string]string{
		"productName":        p.Name,
		"productImage":       p.FirstImage(),
		"productSku":         p.SKU,
		"productPrice":       utils.FormatPrice(p.Price),
		"productDescription": p.Description,
	}
}

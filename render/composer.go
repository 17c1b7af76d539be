package render

import (
	"fmt"
	"strings"
	"time"

	"catalog-builder/models"
	"catalog-builder/utils"
)

// Compose builds the full HTML document for a catalog: page shell, the
// fragment produced by the layout generator matching the template's layout
// type, and layout-specific styling. Unknown layout types fall back to grid.
func Compose(catalog models.Catalog, products []models.Product, template models.Template, business models.Business) string {
	fragment := generateFragment(template.Layout, products, template.Config)

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	fmt.Fprintf(&b, "<meta charset=\"utf-8\">\n<title>%s</title>\n", catalog.Name)
	b.WriteString("<style>\n")
	b.WriteString(baseCSS)
	b.WriteString(layoutCSS(template.Layout))
	if catalog.Settings.ShowPageNumbers {
		b.WriteString(pageNumberCSS)
	}
	b.WriteString("</style>\n</head>\n<body>\n")

	if catalog.Settings.ShowHeader {
		b.WriteString(`<header class="catalog-header">`)
		fmt.Fprintf(&b, `<h1>%s</h1>`, catalog.Name)
		if catalog.Description != "" {
			fmt.Fprintf(&b, `<p class="catalog-description">%s</p>`, catalog.Description)
		}
		fmt.Fprintf(&b, `<p class="business-name">%s</p>`, business.Name)
		b.WriteString("</header>\n")
	}

	b.WriteString(fragment)
	b.WriteString("\n")

	if catalog.Settings.ShowFooter {
		b.WriteString(`<footer class="catalog-footer">`)
		fmt.Fprintf(&b, `<p>Generated on %s</p>`, utils.FormatDate(time.Now()))
		b.WriteString("</footer>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// generateFragment dispatches to the layout generator for the given layout
// type. Unrecognized types render as grid rather than failing.
func generateFragment(layout string, products []models.Product, cfg models.LayoutConfig) string {
	switch layout {
	case models.LayoutFeatured:
		return GenerateFeatured(products, cfg)
	case models.LayoutList:
		return GenerateList(products, cfg)
	case models.LayoutShowcase:
		return GenerateShowcase(products, cfg)
	default:
		return GenerateGrid(products, cfg)
	}
}

const baseCSS = `body { font-family: 'Helvetica Neue', Arial, sans-serif; margin: 0; padding: 24px; color: #222; }
.catalog-header { text-align: center; border-bottom: 2px solid #333; padding-bottom: 16px; margin-bottom: 24px; }
.catalog-header h1 { margin: 0 0 8px; font-size: 28px; }
.catalog-description { color: #555; margin: 4px 0; }
.business-name { font-weight: bold; color: #444; margin: 4px 0 0; }
.catalog-footer { text-align: center; border-top: 1px solid #ccc; margin-top: 32px; padding-top: 12px; font-size: 12px; color: #777; }
.no-image { display: flex; align-items: center; justify-content: center; background: #f2f2f2; color: #999; font-size: 13px; }
.product-name { margin: 8px 0 4px; }
.product-sku { color: #777; font-size: 12px; margin: 2px 0; }
.product-price { font-weight: bold; color: #2a7a2a; margin: 4px 0; }
.product-description { color: #555; font-size: 14px; margin: 6px 0; }
.feature-list { text-align: left; color: #555; font-size: 14px; padding-left: 20px; margin: 6px 0; }
`

const pageNumberCSS = `@page { @bottom-center { content: "Page " counter(page); } }
`

// layoutCSS returns the styling rules for the given layout type, matching the
// grid default used by the fragment dispatch.
func layoutCSS(layout string) string {
	switch layout {
	case models.LayoutFeatured:
		return `.featured-item { display: flex; gap: 24px; align-items: center; border-bottom: 1px solid #eee; padding: 24px 0; page-break-inside: avoid; }
.featured-item.row-reverse { flex-direction: row-reverse; }
.featured-image { width: 40%; }
.featured-image img { width: 100%; border-radius: 6px; }
.featured-image.no-image { height: 200px; }
.featured-details { flex: 1; }
`
	case models.LayoutList:
		return `.product-list .list-row { display: flex; gap: 16px; align-items: center; border-bottom: 1px solid #eee; padding: 12px 0; page-break-inside: avoid; }
.list-image { width: 80px; height: 80px; }
.list-image img { width: 100%; height: 100%; object-fit: cover; border-radius: 4px; }
.list-details { flex: 1; }
.product-list .product-price { margin-left: auto; }
.product-list.compact .list-row { padding: 6px 0; font-size: 13px; }
.product-list.compact .list-image { width: 48px; height: 48px; }
.product-list.compact .product-name { font-size: 14px; margin: 2px 0; }
`
	case models.LayoutShowcase:
		return `.showcase-item { text-align: center; max-width: 640px; margin: 0 auto 48px; page-break-inside: avoid; }
.showcase-image { margin-bottom: 16px; }
.showcase-image img { max-width: 100%; border-radius: 8px; }
.showcase-image.no-image { height: 280px; }
.showcase-meta { display: flex; justify-content: center; gap: 24px; margin-top: 12px; border-top: 1px solid #eee; padding-top: 12px; }
.feature-list { display: inline-block; }
`
	default:
		return `.product-grid { display: grid; gap: 20px; }
.product-card { border: 1px solid #e0e0e0; border-radius: 6px; padding: 16px; text-align: center; page-break-inside: avoid; }
.product-image { margin-bottom: 8px; }
.product-image img { max-width: 100%; max-height: 180px; object-fit: contain; }
.product-image.no-image { height: 140px; }
`
	}
}

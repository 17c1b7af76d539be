package render

import (
	"fmt"
	"strings"

	"catalog-builder/models"
	"catalog-builder/utils"
)

// writeImageBlock writes the product image, or a "No Image" text box when the
// product has none. Broken-image placeholders are never emitted.
func writeImageBlock(b *strings.Builder, p *models.Product, class string) {
	if img := p.FirstImage(); img != "" {
		fmt.Fprintf(b, `<div class="%s"><img src="%s" alt="%s"></div>`, class, img, p.Name)
		return
	}
	fmt.Fprintf(b, `<div class="%s no-image">No Image</div>`, class)
}

// writeSKU writes the SKU block when the flag is set and the field is present
func writeSKU(b *strings.Builder, p *models.Product, cfg models.LayoutConfig) {
	if cfg.ShowSKU && p.SKU != "" {
		fmt.Fprintf(b, `<p class="product-sku">SKU: %s</p>`, p.SKU)
	}
}

// writePrice writes the price block when the flag is set and the field is present
func writePrice(b *strings.Builder, p *models.Product, cfg models.LayoutConfig) {
	if cfg.ShowPrice && p.Price != "" {
		fmt.Fprintf(b, `<p class="product-price">%s</p>`, utils.FormatPrice(p.Price))
	}
}

// writeDescription writes the description block when the flag is set and the
// field is present
func writeDescription(b *strings.Builder, p *models.Product, cfg models.LayoutConfig) {
	if cfg.ShowDescription && p.Description != "" {
		fmt.Fprintf(b, `<p class="product-description">%s</p>`, p.Description)
	}
}

// writeFeatureList writes the description as a bullet list derived by the
// sentence-splitting heuristic
func writeFeatureList(b *strings.Builder, description string) {
	features := SplitFeatures(description)
	if len(features) == 0 {
		return
	}
	b.WriteString(`<ul class="feature-list">`)
	for _, feature := range features {
		fmt.Fprintf(b, `<li>%s</li>`, feature)
	}
	b.WriteString(`</ul>`)
}

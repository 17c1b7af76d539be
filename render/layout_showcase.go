package render

import (
	"fmt"
	"strings"

	"catalog-builder/models"
	"catalog-builder/utils"
)

// GenerateShowcase renders one large centered block per product with an
// optional feature bullet list and a metadata footer row showing sku and
// price side by side.
func GenerateShowcase(products []models.Product, cfg models.LayoutConfig) string {
	var b strings.Builder
	b.WriteString(`<div class="showcase-layout">`)
	for i := range products {
		p := &products[i]
		b.WriteString(`<div class="showcase-item">`)
		writeImageBlock(&b, p, "showcase-image")
		fmt.Fprintf(&b, `<h2 class="product-name">%s</h2>`, p.Name)
		if cfg.ShowFeatures && p.Description != "" {
			writeFeatureList(&b, p.Description)
		} else {
			writeDescription(&b, p, cfg)
		}
		writeShowcaseMeta(&b, p, cfg)
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}

// writeShowcaseMeta writes the sku/price footer row. Omitted entirely when
// neither field renders.
func writeShowcaseMeta(b *strings.Builder, p *models.Product, cfg models.LayoutConfig) {
	showSKU := cfg.ShowSKU && p.SKU != ""
	showPrice := cfg.ShowPrice && p.Price != ""
	if !showSKU && !showPrice {
		return
	}
	b.WriteString(`<div class="showcase-meta">`)
	if showSKU {
		fmt.Fprintf(b, `<span class="product-sku">SKU: %s</span>`, p.SKU)
	}
	if showPrice {
		fmt.Fprintf(b, `<span class="product-price">%s</span>`, utils.FormatPrice(p.Price))
	}
	b.WriteString(`</div>`)
}

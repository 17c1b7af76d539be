package render

import (
	"fmt"
	"strings"

	"catalog-builder/models"
)

// GenerateFeatured renders one full-width block per product. When the image
// position is "right" the text column is emitted first and the row gets a
// row-reverse class. With ShowFeatures set, the description renders as a
// bullet list instead of prose.
func GenerateFeatured(products []models.Product, cfg models.LayoutConfig) string {
	imageRight := cfg.ImagePosition == "right"
	rowClass := "featured-item"
	if imageRight {
		rowClass += " row-reverse"
	}

	var b strings.Builder
	b.WriteString(`<div class="featured-layout">`)
	for i := range products {
		p := &products[i]
		fmt.Fprintf(&b, `<div class="%s">`, rowClass)
		if !imageRight {
			writeImageBlock(&b, p, "featured-image")
		}
		b.WriteString(`<div class="featured-details">`)
		fmt.Fprintf(&b, `<h2 class="product-name">%s</h2>`, p.Name)
		writeSKU(&b, p, cfg)
		writePrice(&b, p, cfg)
		if cfg.ShowFeatures && p.Description != "" {
			writeFeatureList(&b, p.Description)
		} else {
			writeDescription(&b, p, cfg)
		}
		b.WriteString(`</div>`)
		if imageRight {
			writeImageBlock(&b, p, "featured-image")
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}

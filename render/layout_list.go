package render

import (
	"fmt"
	"strings"

	"catalog-builder/models"
)

// GenerateList renders compact single-column rows. Compact mode shrinks the
// image, font and padding, and suppresses the description entirely regardless
// of its own flag.
func GenerateList(products []models.Product, cfg models.LayoutConfig) string {
	containerClass := "product-list"
	if cfg.Compact {
		containerClass += " compact"
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<div class="%s">`, containerClass)
	for i := range products {
		p := &products[i]
		b.WriteString(`<div class="list-row">`)
		writeImageBlock(&b, p, "list-image")
		b.WriteString(`<div class="list-details">`)
		fmt.Fprintf(&b, `<h3 class="product-name">%s</h3>`, p.Name)
		writeSKU(&b, p, cfg)
		if !cfg.Compact {
			writeDescription(&b, p, cfg)
		}
		b.WriteString(`</div>`)
		writePrice(&b, p, cfg)
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}

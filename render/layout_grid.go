package render

import (
	"fmt"
	"strings"

	"catalog-builder/models"
)

const defaultGridColumns = 2

// GenerateGrid arranges products into a grid of self-contained cards.
// Column count comes from the config, defaulting to 2.
func GenerateGrid(products []models.Product, cfg models.LayoutConfig) string {
	columns := cfg.Columns
	if columns <= 0 {
		columns = defaultGridColumns
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<div class="product-grid" style="grid-template-columns: repeat(%d, 1fr);">`, columns)
	for i := range products {
		p := &products[i]
		b.WriteString(`<div class="product-card">`)
		writeImageBlock(&b, p, "product-image")
		fmt.Fprintf(&b, `<h3 class="product-name">%s</h3>`, p.Name)
		writeSKU(&b, p, cfg)
		writePrice(&b, p, cfg)
		writeDescription(&b, p, cfg)
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}

package render

import (
	"fmt"
	"log"
	"strings"
	"time"

	"catalog-builder/models"
	"catalog-builder/utils"
)

// Orchestrator is the top-level rendering entry point. It tries the custom
// template resolver, falls back to the dynamic composer, and falls back again
// to a minimal hardcoded template if either tier panics. It always returns
// renderable HTML.
type Orchestrator struct {
	registry TemplateRegistry
}

// NewOrchestrator creates an Orchestrator backed by the given registry
func NewOrchestrator(registry TemplateRegistry) *Orchestrator {
	return &Orchestrator{registry: registry}
}

// Render produces the final HTML for a catalog. Never fails: any panic inside
// the custom or dynamic tiers is recovered and answered with the minimal
// fallback template.
func (o *Orchestrator) Render(catalog models.Catalog, products []models.Product, template models.Template, business models.Business) (html string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("⚠️  Render: recovered from panic (%v), using fallback template for catalog %s", r, catalog.ID)
			html = minimalTemplate(catalog, products, business)
		}
	}()

	if custom, ok := ResolveCustom(o.registry, template, catalog, products, business); ok {
		log.Printf("✓ Render: catalog %s rendered via custom template", catalog.ID)
		return custom
	}

	return Compose(catalog, products, template, business)
}

// minimalTemplate is the last-resort render path: a plain document built
// directly from the raw catalog, product and business fields.
func minimalTemplate(catalog models.Catalog, products []models.Product, business models.Business) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<body style=\"font-family: Arial, sans-serif; padding: 24px;\">\n")
	fmt.Fprintf(&b, "<h1>%s</h1>\n", catalog.Name)
	fmt.Fprintf(&b, "<p>%s</p>\n", business.Name)
	b.WriteString("<ul>\n")
	for i := range products {
		p := &products[i]
		fmt.Fprintf(&b, "<li>%s", p.Name)
		if p.Price != "" {
			fmt.Fprintf(&b, " - %s", utils.FormatPrice(p.Price))
		}
		b.WriteString("</li>\n")
	}
	b.WriteString("</ul>\n")
	fmt.Fprintf(&b, "<p style=\"color: #777; font-size: 12px;\">Generated on %s</p>\n", utils.FormatDate(time.Now()))
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

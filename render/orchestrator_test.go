package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"catalog-builder/models"
)

// panicRegistry blows up on every lookup
type panicRegistry struct{}

func (panicRegistry) Resolve(string) (TemplateFiles, bool) {
	panic("registry exploded")
}

func TestRenderPrefersCustomTemplate(t *testing.T) {
	registry := MapRegistry{
		"promo": {Page: "<h1>custom {{catalogName}}</h1>{{products}}"},
	}
	o := NewOrchestrator(registry)

	html := o.Render(
		models.Catalog{ID: "c1", Name: "Promo Catalog"},
		nil,
		models.Template{Name: "Promo"},
		models.Business{Name: "Acme"},
	)

	assert.Contains(t, html, "<h1>custom Promo Catalog</h1>")
	assert.NotContains(t, html, "product-grid")
}

func TestRenderFallsBackToComposer(t *testing.T) {
	// Custom layout pointing at a file that does not exist: the resolver
	// misses and the dynamic composer still produces a full document
	o := NewOrchestrator(MapRegistry{})

	template := models.Template{
		Name:   "Gone",
		Layout: models.LayoutCustom,
		Config: models.LayoutConfig{CustomTemplate: "nonexistent.html"},
	}
	html := o.Render(
		models.Catalog{ID: "c1", Name: "Resilient"},
		[]models.Product{{Name: "Widget"}},
		template,
		models.Business{Name: "Acme"},
	)

	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, "Widget")
	assert.Contains(t, html, "product-grid", "custom layout without an override composes as grid")
}

func TestRenderRecoversToMinimalTemplate(t *testing.T) {
	o := NewOrchestrator(panicRegistry{})

	html := o.Render(
		models.Catalog{ID: "c1", Name: "Sturdy"},
		[]models.Product{{Name: "Widget", Price: "9.99"}, {Name: "Gadget"}},
		models.Template{Name: "Any"},
		models.Business{Name: "Acme"},
	)

	assert.Contains(t, html, "<h1>Sturdy</h1>")
	assert.Contains(t, html, "<li>Widget - $9.99</li>")
	assert.Contains(t, html, "<li>Gadget</li>")
	assert.Contains(t, html, "Generated on ")
}

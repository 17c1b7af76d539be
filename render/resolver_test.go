package render

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-builder/models"
)

func TestResolveCustomPageAndProductFragment(t *testing.T) {
	t.Parallel()

	registry := MapRegistry{
		"summer-sale": {
			Page:    "<h1>{{catalogName}} by {{businessName}}</h1>\n{{products}}",
			Product: "<div>{{productName}}: {{productPrice}}</div>\n",
		},
	}
	template := models.Template{Name: "Summer Sale"}
	catalog := models.Catalog{Name: "Summer Catalog"}
	business := models.Business{Name: "Acme"}
	products := []models.Product{
		{Name: "Widget", Price: "9.99"},
		{Name: "Gadget", Price: "4.50"},
	}

	html, ok := ResolveCustom(registry, template, catalog, products, business)
	require.True(t, ok)

	assert.Contains(t, html, "<h1>Summer Catalog by Acme</h1>")
	assert.Contains(t, html, "<div>Widget: $9.99</div>")
	assert.Contains(t, html, "<div>Gadget: $4.50</div>")
	assert.NotContains(t, html, "{{products}}")
}

func TestResolveCustomDefaultProductBlock(t *testing.T) {
	t.Parallel()

	registry := MapRegistry{
		"bare": {Page: "{{products}}"},
	}
	template := models.Template{Name: "Bare"}
	products := []models.Product{{Name: "Widget", SKU: "W1"}}

	html, ok := ResolveCustom(registry, template, models.Catalog{}, products, models.Business{})
	require.True(t, ok)

	assert.Contains(t, html, "<h3>Widget</h3>")
	assert.Contains(t, html, "<p>W1</p>")
}

func TestResolveCustomNotFound(t *testing.T) {
	t.Parallel()

	html, ok := ResolveCustom(MapRegistry{}, models.Template{Name: "Missing"}, models.Catalog{}, nil, models.Business{})
	assert.False(t, ok)
	assert.Empty(t, html)
}

func TestCustomTemplateName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template models.Template
		want     string
	}{
		{
			name:     "slug of display name",
			template: models.Template{Name: "Summer Sale 2026"},
			want:     "summer-sale-2026",
		},
		{
			name: "custom layout uses configured filename",
			template: models.Template{
				Name:   "Whatever",
				Layout: models.LayoutCustom,
				Config: models.LayoutConfig{CustomTemplate: "holiday.html"},
			},
			want: "holiday",
		},
		{
			name: "custom layout without filename falls back to slug",
			template: models.Template{
				Name:   "Fallback Name",
				Layout: models.LayoutCustom,
			},
			want: "fallback-name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, customTemplateName(tt.template))
		})
	}
}

func TestDirRegistryResolve(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir+"/promo.html", "<h1>{{catalogName}}</h1>{{products}}")
	writeFile(t, dir+"/promo-product.html", "<p>{{productName}}</p>")
	writeFile(t, dir+"/solo.html", "{{products}}")

	registry := NewDirRegistry(dir)

	files, ok := registry.Resolve("promo")
	require.True(t, ok)
	assert.Contains(t, files.Page, "{{catalogName}}")
	assert.Contains(t, files.Product, "{{productName}}")

	files, ok = registry.Resolve("solo")
	require.True(t, ok)
	assert.Empty(t, files.Product)

	_, ok = registry.Resolve("absent")
	assert.False(t, ok)

	_, ok = registry.Resolve("")
	assert.False(t, ok)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"catalog-builder/models"
)

func TestComposeFullDocument(t *testing.T) {
	t.Parallel()

	catalog := models.Catalog{
		Name:        "Spring Collection",
		Description: "Our spring picks",
		Settings:    models.RenderSettings{ShowHeader: true, ShowFooter: true},
	}
	template := models.Template{Layout: models.LayoutGrid}
	business := models.Business{Name: "Acme Goods"}
	products := []models.Product{fullProduct()}

	html := Compose(catalog, products, template, business)

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "<title>Spring Collection</title>")
	assert.Contains(t, html, "<h1>Spring Collection</h1>")
	assert.Contains(t, html, "Our spring picks")
	assert.Contains(t, html, "Acme Goods")
	assert.Contains(t, html, `class="product-grid"`)
	assert.Contains(t, html, "Generated on ")
	assert.Contains(t, html, "</html>")
}

func TestComposeHeaderFooterGating(t *testing.T) {
	t.Parallel()

	catalog := models.Catalog{Name: "Plain"}
	html := Compose(catalog, nil, models.Template{}, models.Business{Name: "Acme"})

	assert.NotContains(t, html, "catalog-header")
	assert.NotContains(t, html, "catalog-footer")
	assert.NotContains(t, html, "Generated on")
}

func TestComposeUnknownLayoutFallsBackToGrid(t *testing.T) {
	t.Parallel()

	catalog := models.Catalog{Name: "C"}
	template := models.Template{Layout: "mosaic"}

	html := Compose(catalog, []models.Product{fullProduct()}, template, models.Business{})

	assert.Contains(t, html, `class="product-grid"`)
	assert.Contains(t, html, ".product-grid { display: grid;")
}

func TestComposeLayoutCSSMatchesLayout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		layout string
		want   string
	}{
		{models.LayoutGrid, ".product-grid"},
		{models.LayoutFeatured, ".featured-item"},
		{models.LayoutList, ".product-list"},
		{models.LayoutShowcase, ".showcase-item"},
	}

	for _, tt := range tests {
		t.Run(tt.layout, func(t *testing.T) {
			t.Parallel()

			html := Compose(models.Catalog{Name: "C"}, nil, models.Template{Layout: tt.layout}, models.Business{})
			assert.Contains(t, html, tt.want)
		})
	}
}

func TestComposePageNumberCSS(t *testing.T) {
	t.Parallel()

	catalog := models.Catalog{Name: "C"}
	html := Compose(catalog, nil, models.Template{}, models.Business{})
	assert.NotContains(t, html, "counter(page)")

	catalog.Settings.ShowPageNumbers = true
	html = Compose(catalog, nil, models.Template{}, models.Business{})
	assert.Contains(t, html, "counter(page)")
}

func TestComposeDeterministic(t *testing.T) {
	t.Parallel()

	catalog := models.Catalog{
		Name:     "Stable",
		Settings: models.RenderSettings{ShowHeader: true, ShowFooter: true},
	}
	products := []models.Product{fullProduct()}
	template := models.Template{Layout: models.LayoutFeatured}
	business := models.Business{Name: "Acme"}

	first := Compose(catalog, products, template, business)
	second := Compose(catalog, products, template, business)
	assert.Equal(t, first, second, "same inputs must produce identical output")
}

package render

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-builder/models"
)

func fullProduct() models.Product {
	return models.Product{
		ID:          "p1",
		BusinessID:  "b1",
		Name:        "Widget",
		SKU:         "W1",
		Price:       "9.99",
		Description: "A fine widget. Built to last.",
		Images:      []string{"https://example.com/widget.jpg"},
		Active:      true,
	}
}

func TestGridFlagIndependence(t *testing.T) {
	t.Parallel()

	// Every subset of the display flags: a block renders iff its flag is
	// set and the field is present
	for mask := 0; mask < 8; mask++ {
		cfg := models.LayoutConfig{
			ShowPrice:       mask&1 != 0,
			ShowSKU:         mask&2 != 0,
			ShowDescription: mask&4 != 0,
		}
		t.Run(fmt.Sprintf("mask_%d", mask), func(t *testing.T) {
			t.Parallel()

			fragment := GenerateGrid([]models.Product{fullProduct()}, cfg)

			assert.Equal(t, cfg.ShowPrice, strings.Contains(fragment, `class="product-price"`), "price block")
			assert.Equal(t, cfg.ShowSKU, strings.Contains(fragment, `class="product-sku"`), "sku block")
			assert.Equal(t, cfg.ShowDescription, strings.Contains(fragment, `class="product-description"`), "description block")
		})
	}
}

func TestGridMissingFieldsRenderNothing(t *testing.T) {
	t.Parallel()

	// Flags on, fields empty: no blocks and no placeholder dashes
	p := models.Product{Name: "Bare"}
	cfg := models.LayoutConfig{ShowPrice: true, ShowSKU: true, ShowDescription: true}

	fragment := GenerateGrid([]models.Product{p}, cfg)

	assert.NotContains(t, fragment, `class="product-price"`)
	assert.NotContains(t, fragment, `class="product-sku"`)
	assert.NotContains(t, fragment, `class="product-description"`)
}

func TestGridScenarioTwoCards(t *testing.T) {
	t.Parallel()

	widget := fullProduct()
	widget.Description = ""
	gadget := models.Product{ID: "p2", Name: "Gadget"}
	cfg := models.LayoutConfig{ShowPrice: true, ShowSKU: true}

	fragment := GenerateGrid([]models.Product{widget, gadget}, cfg)

	assert.Equal(t, 2, strings.Count(fragment, `class="product-card"`))
	assert.Contains(t, fragment, "$9.99")
	assert.Contains(t, fragment, "SKU: W1")
	// Gadget has neither field, so exactly one price and one sku block
	assert.Equal(t, 1, strings.Count(fragment, `class="product-price"`))
	assert.Equal(t, 1, strings.Count(fragment, `class="product-sku"`))
}

func TestGridColumnsDefault(t *testing.T) {
	t.Parallel()

	fragment := GenerateGrid(nil, models.LayoutConfig{})
	assert.Contains(t, fragment, "repeat(2, 1fr)")

	fragment = GenerateGrid(nil, models.LayoutConfig{Columns: 4})
	assert.Contains(t, fragment, "repeat(4, 1fr)")
}

func TestGridOrderPreserving(t *testing.T) {
	t.Parallel()

	products := []models.Product{
		{Name: "Zebra"},
		{Name: "Apple"},
		{Name: "Mango"},
	}
	fragment := GenerateGrid(products, models.LayoutConfig{})

	zebra := strings.Index(fragment, "Zebra")
	apple := strings.Index(fragment, "Apple")
	mango := strings.Index(fragment, "Mango")
	require.True(t, zebra >= 0 && apple >= 0 && mango >= 0)
	assert.True(t, zebra < apple && apple < mango, "products must render in the given order")
}

func TestNoImageBlock(t *testing.T) {
	t.Parallel()

	p := models.Product{Name: "Imageless"}

	for _, fragment := range []string{
		GenerateGrid([]models.Product{p}, models.LayoutConfig{}),
		GenerateFeatured([]models.Product{p}, models.LayoutConfig{}),
		GenerateList([]models.Product{p}, models.LayoutConfig{}),
		GenerateShowcase([]models.Product{p}, models.LayoutConfig{}),
	} {
		assert.Contains(t, fragment, "No Image")
		assert.NotContains(t, fragment, "<img", "no broken-image placeholder may be emitted")
	}
}

func TestEmptyProductListYieldsWellFormedFragment(t *testing.T) {
	t.Parallel()

	for name, fragment := range map[string]string{
		"grid":     GenerateGrid(nil, models.LayoutConfig{}),
		"featured": GenerateFeatured(nil, models.LayoutConfig{}),
		"list":     GenerateList(nil, models.LayoutConfig{}),
		"showcase": GenerateShowcase(nil, models.LayoutConfig{}),
	} {
		assert.NotEmpty(t, fragment, name)
		assert.Equal(t, strings.Count(fragment, "<div"), strings.Count(fragment, "</div>"), name)
	}
}

func TestFeaturedImagePositionRight(t *testing.T) {
	t.Parallel()

	p := fullProduct()
	fragment := GenerateFeatured([]models.Product{p}, models.LayoutConfig{ImagePosition: "right"})

	assert.Contains(t, fragment, "row-reverse")
	image := strings.Index(fragment, `class="featured-image"`)
	details := strings.Index(fragment, `class="featured-details"`)
	require.True(t, image >= 0 && details >= 0)
	assert.Greater(t, image, details, "image block must come after the text block in DOM order")
}

func TestFeaturedImagePositionLeftDefault(t *testing.T) {
	t.Parallel()

	p := fullProduct()
	fragment := GenerateFeatured([]models.Product{p}, models.LayoutConfig{})

	assert.NotContains(t, fragment, "row-reverse")
	image := strings.Index(fragment, `class="featured-image"`)
	details := strings.Index(fragment, `class="featured-details"`)
	require.True(t, image >= 0 && details >= 0)
	assert.Less(t, image, details)
}

func TestFeaturedShowFeaturesBullets(t *testing.T) {
	t.Parallel()

	p := fullProduct()
	fragment := GenerateFeatured([]models.Product{p}, models.LayoutConfig{ShowFeatures: true, ShowDescription: true})

	assert.Contains(t, fragment, `class="feature-list"`)
	assert.Contains(t, fragment, "<li>A fine widget</li>")
	assert.Contains(t, fragment, "<li>Built to last</li>")
	assert.NotContains(t, fragment, `class="product-description"`, "bullets replace prose")
}

func TestListCompactSuppressesDescription(t *testing.T) {
	t.Parallel()

	p := fullProduct()

	regular := GenerateList([]models.Product{p}, models.LayoutConfig{ShowDescription: true})
	assert.Contains(t, regular, `class="product-description"`)
	assert.NotContains(t, regular, "compact")

	compact := GenerateList([]models.Product{p}, models.LayoutConfig{ShowDescription: true, Compact: true})
	assert.Contains(t, compact, `class="product-list compact"`)
	assert.NotContains(t, compact, `class="product-description"`, "compact mode suppresses description regardless of its flag")
}

func TestShowcaseMetaRow(t *testing.T) {
	t.Parallel()

	p := fullProduct()
	cfg := models.LayoutConfig{ShowPrice: true, ShowSKU: true}

	fragment := GenerateShowcase([]models.Product{p}, cfg)
	assert.Contains(t, fragment, `class="showcase-meta"`)
	assert.Contains(t, fragment, "SKU: W1")
	assert.Contains(t, fragment, "$9.99")

	// No sku, no price: the meta row is omitted entirely
	bare := models.Product{Name: "Bare"}
	fragment = GenerateShowcase([]models.Product{bare}, cfg)
	assert.NotContains(t, fragment, `class="showcase-meta"`)
}

func TestShowcaseFeatureList(t *testing.T) {
	t.Parallel()

	p := fullProduct()
	fragment := GenerateShowcase([]models.Product{p}, models.LayoutConfig{ShowFeatures: true})

	assert.Contains(t, fragment, `class="feature-list"`)
	assert.Contains(t, fragment, "<li>A fine widget</li>")
}

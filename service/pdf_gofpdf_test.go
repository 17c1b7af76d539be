package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-builder/models"
)

func TestDirectBackendRendersPDF(t *testing.T) {
	t.Parallel()

	backend := NewDirectPDFBackend()
	job := PDFJob{
		Catalog: models.Catalog{
			ID:          "c1",
			Name:        "Spring Catalog",
			Description: "Our spring picks",
			Settings:    models.RenderSettings{PageSize: "A4", ShowPageNumbers: true},
		},
		Business: models.Business{Name: "Acme Goods"},
		Products: []models.Product{
			{Name: "Widget", SKU: "W1", Price: "9.99", Description: "A fine widget."},
			{Name: "Gadget"},
		},
	}

	data, err := backend.Render(context.Background(), job)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"), "output must be a pdf document")
}

func TestDirectBackendPaginatesLongCatalogs(t *testing.T) {
	t.Parallel()

	products := make([]models.Product, 60)
	for i := range products {
		products[i] = models.Product{
			Name:        "Product",
			Description: "Sturdy. Reliable. Ships in a plain box with extra padding around the edges.",
		}
	}
	job := PDFJob{
		Catalog:  models.Catalog{ID: "c1", Name: "Big Catalog"},
		Products: products,
	}

	data, err := NewDirectPDFBackend().Render(context.Background(), job)
	require.NoError(t, err)
	assert.Greater(t, len(data), 2000, "a 60-product catalog spans multiple pages")
}

func TestNormalizePageSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"A4", "A4"},
		{"letter", "Letter"},
		{"LEGAL", "Legal"},
		{"", "A4"},
		{"tabloid", "A4"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizePageSize(tt.in), tt.in)
	}
}

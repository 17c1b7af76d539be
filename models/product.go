package models

// Variation represents a product variation (e.g. Size with options S/M/L)
type Variation struct {
	Name    string   `json:"name"`
	Options []string `json:"options"`
}

// Product represents a product belonging to a business
type Product struct {
	ID          string      `json:"id"`
	BusinessID  string      `json:"businessId"`
	Name        string      `json:"name"`
	SKU         string      `json:"sku"`
	Price       string      `json:"price"` // decimal string, e.g. "9.99"
	Description string      `json:"description"`
	Images      []string    `json:"images"` // ordered list of URLs
	Category    string      `json:"category"`
	Tags        []string    `json:"tags"`
	Variations  []Variation `json:"variations"`
	Active      bool        `json:"active"`
	CreatedAt   string      `json:"createdAt"`
}

// FirstImage returns the first image URL, or "" when the product has no images
func (p *Product) FirstImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

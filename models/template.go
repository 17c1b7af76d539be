package models

// Layout types supported by the dynamic composer
const (
	LayoutGrid     = "grid"
	LayoutFeatured = "featured"
	LayoutList     = "list"
	LayoutShowcase = "showcase"
	LayoutCustom   = "custom"
)

// LayoutConfig holds the display settings for a template.
// Fields that don't apply to the template's layout type are ignored.
type LayoutConfig struct {
	Columns         int    `json:"columns"`         // grid
	Rows            int    `json:"rows"`            // grid
	ShowPrice       bool   `json:"showPrice"`
	ShowSKU         bool   `json:"showSku"`
	ShowDescription bool   `json:"showDescription"`
	ImagePosition   string `json:"imagePosition"`   // featured: "left" (default) or "right"
	ShowFeatures    bool   `json:"showFeatures"`    // featured/showcase: bullet list from description
	Compact         bool   `json:"compact"`         // list
	CustomTemplate  string `json:"customTemplate"`  // custom: on-disk template filename
}

// Template represents a reusable catalog layout definition
type Template struct {
	ID          string       `json:"id"`
	BusinessID  string       `json:"businessId"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Layout      string       `json:"layout"` // grid, featured, list, showcase, custom
	Config      LayoutConfig `json:"config"`
	IsDefault   bool         `json:"isDefault"`
	CreatedAt   string       `json:"createdAt"`
}

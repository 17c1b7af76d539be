package models

// Business represents a business that owns products and catalogs
type Business struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	LogoURL            string `json:"logoUrl"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	Address            string `json:"address"`
	BrandColor         string `json:"brandColor"`
	DefaultTemplateID  string `json:"defaultTemplateId"`
	DefaultPageSize    string `json:"defaultPageSize"`    // e.g. "A4", "Letter"
	DefaultOrientation string `json:"defaultOrientation"` // "portrait" or "landscape"
	CreatedAt          string `json:"createdAt"`
}

package models

// Catalog statuses
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// RenderSettings holds per-catalog document rendering options
type RenderSettings struct {
	PageSize        string `json:"pageSize"`    // "A4", "Letter", "Legal"
	Orientation     string `json:"orientation"` // "portrait" or "landscape"
	ShowHeader      bool   `json:"showHeader"`
	ShowFooter      bool   `json:"showFooter"`
	ShowPageNumbers bool   `json:"showPageNumbers"`
}

// Catalog represents a selection of products rendered under a template
type Catalog struct {
	ID          string         `json:"id"`
	BusinessID  string         `json:"businessId"`
	TemplateID  string         `json:"templateId"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	ProductIDs  []string       `json:"productIds"`
	Status      string         `json:"status"` // draft or published
	Settings    RenderSettings `json:"settings"`
	PDFURL      string         `json:"pdfUrl"`
	CreatedAt   string         `json:"createdAt"`
	UpdatedAt   string         `json:"updatedAt"`
}

// CatalogUpdate carries the fields the render pipeline persists after a
// document has been generated
type CatalogUpdate struct {
	Status *string `json:"status,omitempty"`
	PDFURL *string `json:"pdfUrl,omitempty"`
}

// ExportResult is the response payload of the catalog render entry point
type ExportResult struct {
	PDFURL       string `json:"pdfUrl"`
	HTMLURL      string `json:"htmlUrl"`
	ProductCount int    `json:"productCount"`
	DriveURL     string `json:"driveUrl,omitempty"`
	Error        string `json:"error,omitempty"` // set when the HTML fallback was used
}

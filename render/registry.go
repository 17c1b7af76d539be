package render

import (
	"os"
	"path/filepath"
)

// TemplateFiles holds the contents of a resolved custom template pair
type TemplateFiles struct {
	Page    string // page-level template
	Product string // per-product fragment, empty when the sibling file is absent
}

// TemplateRegistry resolves a template name to its on-disk override files.
// Absence is an expected result, never an error.
type TemplateRegistry interface {
	Resolve(name string) (TemplateFiles, bool)
}

// DirRegistry resolves custom templates from a directory on disk.
// A template named "summer-sale" maps to <dir>/summer-sale.html with an
// optional <dir>/summer-sale-product.html per-product fragment.
type DirRegistry struct {
	dir string
}

// NewDirRegistry creates a DirRegistry rooted at dir
func NewDirRegistry(dir string) *DirRegistry {
	return &DirRegistry{dir: dir}
}

// Ensure DirRegistry implements TemplateRegistry
var _ TemplateRegistry = (*DirRegistry)(nil)

// Resolve reads the template file pair for the given name. Returns false when
// the page-level file does not exist.
func (r *DirRegistry) Resolve(name string) (TemplateFiles, bool) {
	if name == "" {
		return TemplateFiles{}, false
	}

	pageData, err := os.ReadFile(filepath.Join(r.dir, name+".html"))
	if err != nil {
		return TemplateFiles{}, false
	}

	files := TemplateFiles{Page: string(pageData)}
	if productData, err := os.ReadFile(filepath.Join(r.dir, name+"-product.html")); err == nil {
		files.Product = string(productData)
	}
	return files, true
}

// MapRegistry is an in-memory TemplateRegistry, used in tests
type MapRegistry map[string]TemplateFiles

func (r MapRegistry) Resolve(name string) (TemplateFiles, bool) {
	files, ok := r[name]
	return files, ok
}

package catalog

import (
	"sync"

	"agrive-admin/internal/model"
)

// View holds the catalog screen state: the last fetched products and the
// unfiltered rows derived from them. It is safe for concurrent use.
type View struct {
	mu        sync.RWMutex
	imageBase string
	products  map[string]model.Product
	rows      []model.VariantRow
	loaded    bool
}

// NewView creates an empty catalog view.
func NewView(imageBase string) *View {
	return &View{
		imageBase: imageBase,
		products:  make(map[string]model.Product),
	}
}

// Replace installs a fresh fetch and returns the flattened rows.
func (v *View) Replace(products []model.Product) []model.VariantRow {
	rows := FlattenProducts(products, v.imageBase)

	byID := make(map[string]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	v.mu.Lock()
	v.products = byID
	v.rows = rows
	v.loaded = true
	v.mu.Unlock()

	return cloneRows(rows)
}

// Loaded reports whether Replace has been called.
func (v *View) Loaded() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.loaded
}

// Rows returns a copy of the unfiltered rows.
func (v *View) Rows() []model.VariantRow {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return cloneRows(v.rows)
}

// Filtered applies f to the unfiltered rows.
func (v *View) Filtered(f Filter) []model.VariantRow {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return f.Apply(v.rows)
}

// Product returns the parent product with the given id.
func (v *View) Product(id string) (model.Product, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	p, ok := v.products[id]
	return p, ok
}

// RemoveProduct drops the product and every row that belongs to it. It
// returns the number of rows removed.
func (v *View) RemoveProduct(productID string) int {
	v.mu.Lock()
	defer v.mu.Unlock()

	delete(v.products, productID)

	kept := v.rows[:0:0]
	for _, row := range v.rows {
		if row.ProductID != productID {
			kept = append(kept, row)
		}
	}
	removed := len(v.rows) - len(kept)
	v.rows = kept
	return removed
}

// PatchProduct replaces a product's descriptive fields and one variant,
// then re-derives the matching row. The patched row is returned.
func (v *View) PatchProduct(p model.Product, index int) (model.VariantRow, bool) {
	if index < 0 || index >= len(p.Variants) {
		return model.VariantRow{}, false
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	v.products[p.ID] = p
	id := RowID(p.ID, index)
	patched := buildRow(p, index, p.Variants[index], v.imageBase)

	found := false
	for i := range v.rows {
		if v.rows[i].ProductID != p.ID {
			continue
		}
		// Parent fields are shared by every row of the product.
		if v.rows[i].ID == id {
			v.rows[i] = patched
			found = true
			continue
		}
		v.rows[i].Name = p.Name
		v.rows[i].Brand = p.Brand
		v.rows[i].Description = p.Description
		v.rows[i].ShortDescription = p.ShortDescription
		v.rows[i].Category = p.Category
		v.rows[i].Subcategory = p.Subcategory
	}
	if !found {
		v.rows = append(v.rows, patched)
	}
	return patched, true
}

func cloneRows(rows []model.VariantRow) []model.VariantRow {
	out := make([]model.VariantRow, len(rows))
	copy(out, rows)
	return out
}

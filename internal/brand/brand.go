// Package brand resolves listing identifiers to catalog brands. The
// validator consumes lookups through its own interface; this package
// supplies the two real implementations: a catalog JSON file and the
// products table.
package brand

import (
	"encoding/json"
	"fmt"
	"os"

	"listify/internal/models"

	"gorm.io/gorm"
)

// Map is an in-memory identifier → brand lookup built from a catalog
// export.
type Map map[string]string

// Brand implements the validator's lookup interface.
func (m Map) Brand(inputID string) (string, bool) {
	b, ok := m[inputID]
	return b, ok
}

// catalogItem is the subset of a catalog export row the lookup needs.
// Stores disagree on which field identifies an item, so id, sku and
// handle are all accepted, in that order.
type catalogItem struct {
	ID     models.FlexID `json:"id"`
	SKU    string        `json:"sku"`
	Handle string        `json:"handle"`
	Brand  string        `json:"brand"`
	Vendor string        `json:"vendor"`
}

func (it catalogItem) key() string {
	if it.ID != "" {
		return it.ID.String()
	}
	if it.SKU != "" {
		return it.SKU
	}
	return it.Handle
}

func (it catalogItem) brand() string {
	if it.Brand != "" {
		return it.Brand
	}
	return it.Vendor
}

// LoadCatalogFile builds a brand map from a catalog JSON file. The file
// may be a bare array or an object with an "items" array. Rows without an
// identifier or a brand are skipped.
func LoadCatalogFile(path string) (Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var items []catalogItem
	if err := json.Unmarshal(data, &items); err != nil {
		var wrapper struct {
			Items []catalogItem `json:"items"`
		}
		if err := json.Unmarshal(data, &wrapper); err != nil {
			return nil, fmt.Errorf("catalog file is neither an array nor an items object: %w", err)
		}
		items = wrapper.Items
	}

	m := make(Map, len(items))
	for _, it := range items {
		if it.key() != "" && it.brand() != "" {
			m[it.key()] = it.brand()
		}
	}
	return m, nil
}

// Catalog looks brands up in the products table. Used by the API and the
// worker, where the catalog lives in the database rather than a file.
type Catalog struct {
	db *gorm.DB
}

func NewCatalog(db *gorm.DB) *Catalog {
	return &Catalog{db: db}
}

// Brand matches the identifier against external ID, SKU or handle.
func (c *Catalog) Brand(inputID string) (string, bool) {
	if inputID == "" {
		return "", false
	}
	var product models.Product
	err := c.db.
		Where("external_id = ? OR sku = ? OR handle = ?", inputID, inputID, inputID).
		First(&product).Error
	if err != nil {
		return "", false
	}
	if b := product.BrandName(); b != "" {
		return b, true
	}
	return "", false
}

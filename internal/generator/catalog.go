package generator

import (
	"encoding/json"
	"fmt"
	"os"

	"listify/internal/models"
)

// catalogProduct is a catalog export row. Shopify exports name the title
// "name"; other stores use "title".
type catalogProduct struct {
	ID          models.FlexID `json:"id"`
	SKU         string        `json:"sku"`
	Handle      string        `json:"handle"`
	Name        string        `json:"name"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Brand       string        `json:"brand"`
	Vendor      string        `json:"vendor"`
	Category    string        `json:"category"`
}

// LoadProducts reads a catalog JSON file (bare array or an object with an
// "items" array) into catalog products ready for generation.
func LoadProducts(path string) ([]models.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read products file: %w", err)
	}

	var rows []catalogProduct
	if err := json.Unmarshal(data, &rows); err != nil {
		var wrapper struct {
			Items []catalogProduct `json:"items"`
		}
		if err := json.Unmarshal(data, &wrapper); err != nil {
			return nil, fmt.Errorf("products file is neither an array nor an items object: %w", err)
		}
		rows = wrapper.Items
	}

	products := make([]models.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, row.toProduct())
	}
	return products, nil
}

func (c catalogProduct) toProduct() models.Product {
	title := c.Name
	if title == "" {
		title = c.Title
	}
	p := models.Product{
		ExternalID: c.ID.String(),
		SKU:        c.SKU,
		Title:      title,
	}
	if c.Handle != "" {
		p.Handle = &c.Handle
	}
	if c.Description != "" {
		p.Description = &c.Description
	}
	if c.Brand != "" {
		p.Brand = &c.Brand
	}
	if c.Vendor != "" {
		p.Vendor = &c.Vendor
	}
	if c.Category != "" {
		p.Category = &c.Category
	}
	return p
}

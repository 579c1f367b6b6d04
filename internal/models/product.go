package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is a catalog item imported from the source store. It is the
// system of record for the brand lookup used by the title rules.
type Product struct {
	ID          string    `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ExternalID  string    `json:"external_id" gorm:"not null"`
	SKU         string    `json:"sku" gorm:"unique;not null"`
	Handle      *string   `json:"handle"`
	Title       string    `json:"title" gorm:"not null"`
	Description *string   `json:"description"`
	Brand       *string   `json:"brand"`
	Vendor      *string   `json:"vendor"`
	Category    *string   `json:"category"`
	Price       float64   `json:"price" gorm:"type:decimal(10,2)"`
	Currency    string    `json:"currency" gorm:"default:USD"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BrandName returns the brand, falling back to vendor, empty if neither.
func (p *Product) BrandName() string {
	if p.Brand != nil && *p.Brand != "" {
		return *p.Brand
	}
	if p.Vendor != nil {
		return *p.Vendor
	}
	return ""
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

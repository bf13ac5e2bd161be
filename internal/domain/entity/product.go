// Package entity contains the core business objects of the project.
package entity

import "time"

// Product represents a single catalog product. The ID is assigned by the
// external dataset, never generated locally; the SKU is the authoritative
// alternate key used to match incoming records against persisted state.
type Product struct {
	ID                   int64       `json:"id"`
	Title                string      `json:"title"`
	Description          string      `json:"description"`
	Category             string      `json:"category"`
	Price                float64     `json:"price"`
	DiscountPercentage   float64     `json:"discountPercentage"`
	Rating               float64     `json:"rating"`
	Stock                int         `json:"stock"`
	Brand                string      `json:"brand,omitempty"`
	SKU                  string      `json:"sku"`
	Weight               float64     `json:"weight"`
	WarrantyInformation  string      `json:"warrantyInformation"`
	ShippingInformation  string      `json:"shippingInformation"`
	AvailabilityStatus   string      `json:"availabilityStatus"`
	ReturnPolicy         string      `json:"returnPolicy"`
	MinimumOrderQuantity int         `json:"minimumOrderQuantity"`
	Thumbnail            string      `json:"thumbnail"`
	Tags                 []string    `json:"tags"`   // Insertion order preserved, never deduplicated.
	Images               []string    `json:"images"` // Insertion order preserved, never deduplicated.
	Dimensions           *Dimensions `json:"dimensions,omitempty"`
	Meta                 *Meta       `json:"meta,omitempty"`
	Reviews              []Review    `json:"reviews,omitempty"`
}

// Dimensions holds the physical measurements of a product.
// ProductID is a non-owning back-reference; the product owns its dimensions.
type Dimensions struct {
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Depth     float64 `json:"depth"`
	ProductID int64   `json:"-"`
}

// Meta carries identification codes and the persistence timestamps of a
// product. CreatedAt is set exactly once, at first persistence; UpdatedAt
// is refreshed on every creation or merge.
type Meta struct {
	Barcode   string    `json:"barcode"`
	QRCode    string    `json:"qrCode"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	ProductID int64     `json:"-"`
}

// Review is a single customer review attached to a product.
type Review struct {
	Rating        float64   `json:"rating"`
	Comment       string    `json:"comment"`
	Date          time.Time `json:"date"`
	ReviewerName  string    `json:"reviewerName"`
	ReviewerEmail string    `json:"reviewerEmail"`
	ProductID     int64     `json:"-"`
}

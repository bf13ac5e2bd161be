// Package usecase defines the application use-case interfaces and the DTOs
// exchanged with the delivery layer.
package usecase

import (
	"context"
	"time"
)

// ProductUsecase defines the interface for catalog use cases
type ProductUsecase interface {
	// LoadProducts runs one load cycle: fetch the external document, parse
	// it, reconcile the candidates against the store and persist the result.
	LoadProducts(ctx context.Context) (*LoadSummary, error)

	// SearchProducts performs a case-insensitive substring search across
	// product titles and descriptions. An empty result is an error, not an
	// empty list.
	SearchProducts(ctx context.Context, query string) ([]*ProductResponse, error)

	// GetProductByIDOrSKU looks up a single product by numeric ID or SKU.
	GetProductByIDOrSKU(ctx context.Context, identifier string) (*ProductResponse, error)

	// GenerateProductQR renders a PNG QR code for the product matching the
	// identifier.
	GenerateProductQR(ctx context.Context, identifier string) ([]byte, error)
}

// LoadSummary aggregates the outcome of one load cycle.
type LoadSummary struct {
	Added   int `json:"added"`
	Updated int `json:"updated"`
}

// ProductResponse is the flattened product representation returned to clients.
type ProductResponse struct {
	ID                   int64               `json:"id"`
	Title                string              `json:"title"`
	Description          string              `json:"description"`
	Category             string              `json:"category"`
	Price                float64             `json:"price"`
	DiscountPercentage   float64             `json:"discountPercentage"`
	Rating               float64             `json:"rating"`
	Stock                int                 `json:"stock"`
	Brand                string              `json:"brand,omitempty"`
	SKU                  string              `json:"sku"`
	Weight               float64             `json:"weight"`
	WarrantyInformation  string              `json:"warrantyInformation"`
	ShippingInformation  string              `json:"shippingInformation"`
	AvailabilityStatus   string              `json:"availabilityStatus"`
	ReturnPolicy         string              `json:"returnPolicy"`
	MinimumOrderQuantity int                 `json:"minimumOrderQuantity"`
	Thumbnail            string              `json:"thumbnail"`
	Tags                 []string            `json:"tags"`
	Images               []string            `json:"images"`
	Dimensions           *DimensionsResponse `json:"dimensions,omitempty"`
	Meta                 *MetaResponse       `json:"meta,omitempty"`
	Reviews              []ReviewResponse    `json:"reviews"`
}

// DimensionsResponse is the flattened dimensions representation.
type DimensionsResponse struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
}

// MetaResponse is the flattened meta representation.
type MetaResponse struct {
	Barcode   string    `json:"barcode"`
	QRCode    string    `json:"qrCode"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReviewResponse is the flattened review representation.
type ReviewResponse struct {
	Rating        float64   `json:"rating"`
	Comment       string    `json:"comment"`
	Date          time.Time `json:"date"`
	ReviewerName  string    `json:"reviewerName"`
	ReviewerEmail string    `json:"reviewerEmail"`
}

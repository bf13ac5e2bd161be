// Package model contains the GORM-specific structs for the catalog tables.
package model

import (
	"time"

	"github.com/lib/pq"
)

// ProductModel is the GORM-specific struct for the 'products' table.
// The primary key is assigned by the external dataset, never generated.
type ProductModel struct {
	ID                   int64          `gorm:"primaryKey;autoIncrement:false"`
	Title                string         `gorm:"size:100;not null"`
	Description          string         `gorm:"size:500;not null"`
	Category             string         `gorm:"not null"`
	Price                float64        `gorm:"not null"`
	DiscountPercentage   float64        `gorm:"not null"`
	Rating               float64        `gorm:"not null"`
	Stock                int            `gorm:"not null"`
	Brand                string
	SKU                  string         `gorm:"column:sku;uniqueIndex;not null"`
	Weight               float64        `gorm:"not null"`
	WarrantyInformation  string
	ShippingInformation  string
	AvailabilityStatus   string
	ReturnPolicy         string
	MinimumOrderQuantity int            `gorm:"not null;default:1"`
	Thumbnail            string
	Tags                 pq.StringArray `gorm:"type:text[]"`
	Images               pq.StringArray `gorm:"type:text[]"`

	Dimensions *DimensionsModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Meta       *MetaModel       `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Reviews    []ReviewModel    `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// DimensionsModel is the GORM-specific struct for the 'dimensions' table.
type DimensionsModel struct {
	ID        int64   `gorm:"primaryKey"`
	Width     float64 `gorm:"not null"`
	Height    float64 `gorm:"not null"`
	Depth     float64 `gorm:"not null"`
	ProductID int64   `gorm:"uniqueIndex;not null"`
}

// TableName explicitly sets the table name for GORM.
func (DimensionsModel) TableName() string {
	return "dimensions"
}

// MetaModel is the GORM-specific struct for the 'meta' table.
type MetaModel struct {
	ID        int64     `gorm:"primaryKey"`
	Barcode   string
	QRCode    string `gorm:"column:qr_code"`
	// Timestamps are authored by the reconciliation engine's injected clock,
	// not by GORM's auto-tracking. CreatedAt is written once, never updated.
	CreatedAt time.Time `gorm:"<-:create;autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
	ProductID int64     `gorm:"uniqueIndex;not null"`
}

// TableName explicitly sets the table name for GORM.
func (MetaModel) TableName() string {
	return "meta"
}

// ReviewModel is the GORM-specific struct for the 'reviews' table.
type ReviewModel struct {
	ID            int64     `gorm:"primaryKey"`
	Rating        float64   `gorm:"not null"`
	Comment       string    `gorm:"size:300"`
	Date          time.Time
	ReviewerName  string
	ReviewerEmail string
	ProductID     int64     `gorm:"index;not null"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}

// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"catalog/internal/domain/entity"
	"catalog/internal/errors"
)

// ErrProductNotFound is returned when no product matches the given key.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product-related database operations.
type ProductRepository interface {
	// FindBySKU retrieves a product by its SKU, the authoritative alternate key.
	FindBySKU(ctx context.Context, sku string) (*entity.Product, error)

	// FindByID retrieves a product by its externally assigned numeric ID.
	FindByID(ctx context.Context, id int64) (*entity.Product, error)

	// FindByIDOrSKU routes a purely numeric identifier to the ID lookup and
	// anything else to the SKU lookup.
	FindByIDOrSKU(ctx context.Context, identifier string) (*entity.Product, error)

	// SearchByKeyword retrieves all products whose title or description
	// contains the keyword, case-insensitively, in primary-key order.
	SearchByKeyword(ctx context.Context, keyword string) ([]*entity.Product, error)

	// SaveAll persists the given products and their owned sub-entities in a
	// single all-or-nothing batch.
	SaveAll(ctx context.Context, products []*entity.Product) error
}

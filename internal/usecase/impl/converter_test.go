package impl

import (
	"testing"
	"time"

	"catalog/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToProductResponse_AllFields(t *testing.T) {
	createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	updatedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	reviewDate := time.Date(2024, 5, 23, 8, 56, 21, 0, time.UTC)

	product := &entity.Product{
		ID:                   1,
		Title:                "Essence Mascara Lash Princess",
		Description:          "A popular mascara.",
		Category:             "beauty",
		Price:                9.99,
		DiscountPercentage:   7.17,
		Rating:               4.94,
		Stock:                5,
		Brand:                "Essence",
		SKU:                  "RCH45Q1A",
		Weight:               2,
		WarrantyInformation:  "1 month warranty",
		ShippingInformation:  "Ships in 1 month",
		AvailabilityStatus:   "Low Stock",
		ReturnPolicy:         "30 days return policy",
		MinimumOrderQuantity: 24,
		Thumbnail:            "https://example.com/thumb.png",
		Tags:                 []string{"beauty", "mascara", "beauty"},
		Images:               []string{"https://example.com/1.png", "https://example.com/2.png"},
		Dimensions: &entity.Dimensions{
			Width: 23.17, Height: 14.43, Depth: 28.01, ProductID: 1,
		},
		Meta: &entity.Meta{
			Barcode:   "9164035109868",
			QRCode:    "https://example.com/qr",
			CreatedAt: createdAt,
			UpdatedAt: updatedAt,
			ProductID: 1,
		},
		Reviews: []entity.Review{
			{Rating: 2, Comment: "Very unhappy!", Date: reviewDate, ReviewerName: "John Doe", ReviewerEmail: "john@x.com", ProductID: 1},
			{Rating: 5, Comment: "Great!", Date: reviewDate, ReviewerName: "Jane Roe", ReviewerEmail: "jane@x.com", ProductID: 1},
		},
	}

	response := toProductResponse(product)
	require.NotNil(t, response)

	assert.Equal(t, int64(1), response.ID)
	assert.Equal(t, "RCH45Q1A", response.SKU)
	assert.Equal(t, 9.99, response.Price)
	assert.Equal(t, 24, response.MinimumOrderQuantity)

	// Order and duplicates of list fields are preserved as-is.
	assert.Equal(t, []string{"beauty", "mascara", "beauty"}, response.Tags)
	assert.Equal(t, []string{"https://example.com/1.png", "https://example.com/2.png"}, response.Images)

	require.NotNil(t, response.Dimensions)
	assert.Equal(t, 23.17, response.Dimensions.Width)

	require.NotNil(t, response.Meta)
	assert.Equal(t, createdAt, response.Meta.CreatedAt)
	assert.Equal(t, updatedAt, response.Meta.UpdatedAt)

	require.Len(t, response.Reviews, 2)
	assert.Equal(t, "Very unhappy!", response.Reviews[0].Comment)
	assert.Equal(t, "Jane Roe", response.Reviews[1].ReviewerName)
}

func TestToProductResponse_Nil(t *testing.T) {
	assert.Nil(t, toProductResponse(nil))
}

func TestToProductResponse_OptionalPartsAbsent(t *testing.T) {
	response := toProductResponse(&entity.Product{ID: 2, SKU: "BARE1"})
	require.NotNil(t, response)

	assert.Nil(t, response.Dimensions)
	assert.Nil(t, response.Meta)
	require.NotNil(t, response.Reviews)
	assert.Empty(t, response.Reviews)
}

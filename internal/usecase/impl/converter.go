package impl

import (
	"catalog/internal/domain/entity"
	"catalog/internal/usecase"
)

// toProductResponse maps a domain product to its flattened response shape.
// Scalar fields and the order of tags, images and reviews are preserved.
func toProductResponse(product *entity.Product) *usecase.ProductResponse {
	if product == nil {
		return nil
	}

	return &usecase.ProductResponse{
		ID:                   product.ID,
		Title:                product.Title,
		Description:          product.Description,
		Category:             product.Category,
		Price:                product.Price,
		DiscountPercentage:   product.DiscountPercentage,
		Rating:               product.Rating,
		Stock:                product.Stock,
		Brand:                product.Brand,
		SKU:                  product.SKU,
		Weight:               product.Weight,
		WarrantyInformation:  product.WarrantyInformation,
		ShippingInformation:  product.ShippingInformation,
		AvailabilityStatus:   product.AvailabilityStatus,
		ReturnPolicy:         product.ReturnPolicy,
		MinimumOrderQuantity: product.MinimumOrderQuantity,
		Thumbnail:            product.Thumbnail,
		Tags:                 product.Tags,
		Images:               product.Images,
		Dimensions:           toDimensionsResponse(product.Dimensions),
		Meta:                 toMetaResponse(product.Meta),
		Reviews:              toReviewResponses(product.Reviews),
	}
}

func toDimensionsResponse(dimensions *entity.Dimensions) *usecase.DimensionsResponse {
	if dimensions == nil {
		return nil
	}

	return &usecase.DimensionsResponse{
		Width:  dimensions.Width,
		Height: dimensions.Height,
		Depth:  dimensions.Depth,
	}
}

func toMetaResponse(meta *entity.Meta) *usecase.MetaResponse {
	if meta == nil {
		return nil
	}

	return &usecase.MetaResponse{
		Barcode:   meta.Barcode,
		QRCode:    meta.QRCode,
		CreatedAt: meta.CreatedAt,
		UpdatedAt: meta.UpdatedAt,
	}
}

// toReviewResponses returns an empty slice, not nil, when a product has no
// reviews so the JSON field stays an array.
func toReviewResponses(reviews []entity.Review) []usecase.ReviewResponse {
	responses := make([]usecase.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		responses = append(responses, usecase.ReviewResponse{
			Rating:        review.Rating,
			Comment:       review.Comment,
			Date:          review.Date,
			ReviewerName:  review.ReviewerName,
			ReviewerEmail: review.ReviewerEmail,
		})
	}

	return responses
}

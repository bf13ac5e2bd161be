// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"regexp"
	"strconv"

	"catalog/internal/domain/entity"
	"catalog/internal/domain/repository"
	"catalog/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var numericIdentifier = regexp.MustCompile(`^\d+$`)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// FindBySKU retrieves a product by its SKU, the authoritative alternate key.
func (repo *productRepository) FindBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.withAssociations(ctx).
		Where("sku = ?", sku).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by SKU")
	}

	return toProductDomain(&productM), nil
}

// FindByID retrieves a product by its externally assigned numeric ID.
func (repo *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.withAssociations(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindByIDOrSKU routes a purely numeric identifier to the ID lookup and
// anything else to the SKU lookup.
func (repo *productRepository) FindByIDOrSKU(ctx context.Context, identifier string) (*entity.Product, error) {
	if numericIdentifier.MatchString(identifier) {
		id, err := strconv.ParseInt(identifier, 10, 64)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse numeric identifier")
		}

		return repo.FindByID(ctx, id)
	}

	return repo.FindBySKU(ctx, identifier)
}

// SearchByKeyword retrieves all products whose title or description contains
// the keyword, case-insensitively, in primary-key order.
func (repo *productRepository) SearchByKeyword(ctx context.Context, keyword string) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	pattern := "%" + keyword + "%"
	if err := repo.withAssociations(ctx).
		Where("title ILIKE ? OR description ILIKE ?", pattern, pattern).
		Order("id ASC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search products by keyword")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// SaveAll persists the given products and their owned sub-entities inside a
// single transaction; either the whole batch lands or none of it does.
// Reviews are replaced wholesale per product, which is a no-op for the
// update path where the entity carries the rows it loaded.
func (repo *productRepository) SaveAll(ctx context.Context, products []*entity.Product) error {
	if len(products) == 0 {
		return nil
	}

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, product := range products {
			if err := repo.saveProduct(tx, product); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to save products")
	}

	return nil
}

func (repo *productRepository) saveProduct(tx *gorm.DB, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := tx.
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
		Omit(clause.Associations).
		Create(productM).Error; err != nil {
		return errors.Wrap(err, "failed to upsert product row")
	}

	if product.Dimensions != nil {
		dimensionsM := fromDimensionsDomain(product.Dimensions, product.ID)
		if err := tx.
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "product_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"width", "height", "depth"}),
			}).
			Create(dimensionsM).Error; err != nil {
			return errors.Wrap(err, "failed to upsert product dimensions")
		}
	}

	if product.Meta != nil {
		metaM := fromMetaDomain(product.Meta, product.ID)
		// created_at is excluded from the conflict update to keep it immutable.
		if err := tx.
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "product_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"barcode", "qr_code", "updated_at"}),
			}).
			Create(metaM).Error; err != nil {
			return errors.Wrap(err, "failed to upsert product meta")
		}
	}

	if err := tx.Where("product_id = ?", product.ID).Delete(&model.ReviewModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear product reviews")
	}
	if len(product.Reviews) > 0 {
		reviewModels := fromReviewsDomain(product.Reviews, product.ID)
		if err := tx.Create(&reviewModels).Error; err != nil {
			return errors.Wrap(err, "failed to insert product reviews")
		}
	}

	return nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	product := &entity.Product{
		ID:                   data.ID,
		Title:                data.Title,
		Description:          data.Description,
		Category:             data.Category,
		Price:                data.Price,
		DiscountPercentage:   data.DiscountPercentage,
		Rating:               data.Rating,
		Stock:                data.Stock,
		Brand:                data.Brand,
		SKU:                  data.SKU,
		Weight:               data.Weight,
		WarrantyInformation:  data.WarrantyInformation,
		ShippingInformation:  data.ShippingInformation,
		AvailabilityStatus:   data.AvailabilityStatus,
		ReturnPolicy:         data.ReturnPolicy,
		MinimumOrderQuantity: data.MinimumOrderQuantity,
		Thumbnail:            data.Thumbnail,
		Tags:                 data.Tags,
		Images:               data.Images,
	}

	if data.Dimensions != nil {
		product.Dimensions = &entity.Dimensions{
			Width:     data.Dimensions.Width,
			Height:    data.Dimensions.Height,
			Depth:     data.Dimensions.Depth,
			ProductID: data.Dimensions.ProductID,
		}
	}
	if data.Meta != nil {
		product.Meta = &entity.Meta{
			Barcode:   data.Meta.Barcode,
			QRCode:    data.Meta.QRCode,
			CreatedAt: data.Meta.CreatedAt,
			UpdatedAt: data.Meta.UpdatedAt,
			ProductID: data.Meta.ProductID,
		}
	}
	for _, reviewM := range data.Reviews {
		product.Reviews = append(product.Reviews, entity.Review{
			Rating:        reviewM.Rating,
			Comment:       reviewM.Comment,
			Date:          reviewM.Date,
			ReviewerName:  reviewM.ReviewerName,
			ReviewerEmail: reviewM.ReviewerEmail,
			ProductID:     reviewM.ProductID,
		})
	}

	return product
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel
// without its associations; sub-entities are persisted separately.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:                   data.ID,
		Title:                data.Title,
		Description:          data.Description,
		Category:             data.Category,
		Price:                data.Price,
		DiscountPercentage:   data.DiscountPercentage,
		Rating:               data.Rating,
		Stock:                data.Stock,
		Brand:                data.Brand,
		SKU:                  data.SKU,
		Weight:               data.Weight,
		WarrantyInformation:  data.WarrantyInformation,
		ShippingInformation:  data.ShippingInformation,
		AvailabilityStatus:   data.AvailabilityStatus,
		ReturnPolicy:         data.ReturnPolicy,
		MinimumOrderQuantity: data.MinimumOrderQuantity,
		Thumbnail:            data.Thumbnail,
		Tags:                 data.Tags,
		Images:               data.Images,
	}
}

func fromDimensionsDomain(data *entity.Dimensions, productID int64) *model.DimensionsModel {
	return &model.DimensionsModel{
		Width:     data.Width,
		Height:    data.Height,
		Depth:     data.Depth,
		ProductID: productID,
	}
}

func fromMetaDomain(data *entity.Meta, productID int64) *model.MetaModel {
	return &model.MetaModel{
		Barcode:   data.Barcode,
		QRCode:    data.QRCode,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
		ProductID: productID,
	}
}

func fromReviewsDomain(reviews []entity.Review, productID int64) []*model.ReviewModel {
	reviewModels := make([]*model.ReviewModel, 0, len(reviews))
	for _, review := range reviews {
		reviewModels = append(reviewModels, &model.ReviewModel{
			Rating:        review.Rating,
			Comment:       review.Comment,
			Date:          review.Date,
			ReviewerName:  review.ReviewerName,
			ReviewerEmail: review.ReviewerEmail,
			ProductID:     productID,
		})
	}

	return reviewModels
}

func (repo *productRepository) withAssociations(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("Dimensions").
		Preload("Meta").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("reviews.id ASC")
		})
}

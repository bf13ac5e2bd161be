// Package impl contains the use-case implementations: the catalog parser,
// the reconciliation engine and the search/lookup service.
package impl

import (
	"context"
	"log/slog"
	"regexp"
	"time"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	"catalog/internal/errors"
	"catalog/internal/usecase"

	"go.uber.org/fx"
)

const minQueryLength = 3

var (
	queryPattern      = regexp.MustCompile(`^[A-Za-z0-9 ]+$`)
	numericPattern    = regexp.MustCompile(`^\d+$`)
	identifierPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)
)

type productService struct {
	productRepo   repository.ProductRepository
	source        service.ProductSource
	clock         service.Clock
	qrcodeService service.QRCodeService
	logger        *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo   repository.ProductRepository
	Source        service.ProductSource
	Clock         service.Clock
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewProductService creates a new product service instance
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo:   params.ProductRepo,
		source:        params.Source,
		clock:         params.Clock,
		qrcodeService: params.QRCodeService,
		logger:        params.Logger,
	}
}

// LoadProducts runs one load cycle: fetch, parse, reconcile, persist.
// The cycle is all-or-nothing; any failure leaves the store untouched for
// this batch.
func (s *productService) LoadProducts(ctx context.Context) (*usecase.LoadSummary, error) {
	s.logger.Info("Fetching data from external source")

	raw, err := s.source.FetchDocument(ctx)
	if err != nil {
		return nil, domainerrors.ErrSourceFetchFailed.WithDetails(err.Error())
	}

	candidates, err := parseCatalog(raw)
	if err != nil {
		return nil, domainerrors.ErrSourceParseFailed.WithDetails(err.Error())
	}

	toInsert, toUpdate, err := s.reconcile(ctx, candidates)
	if err != nil {
		return nil, err
	}

	// Inserts are persisted before updates, each batch atomically.
	if err := s.productRepo.SaveAll(ctx, toInsert); err != nil {
		return nil, domainerrors.ErrProductSaveFailed.WithDetails(err.Error())
	}
	if err := s.productRepo.SaveAll(ctx, toUpdate); err != nil {
		return nil, domainerrors.ErrProductSaveFailed.WithDetails(err.Error())
	}

	summary := &usecase.LoadSummary{
		Added:   len(toInsert),
		Updated: len(toUpdate),
	}
	s.logger.Info("Load cycle completed",
		slog.Int("added", summary.Added),
		slog.Int("updated", summary.Updated),
	)

	return summary, nil
}

// reconcile classifies each candidate as new or existing, in input order.
// The SKU is the sole match key; a store miss on SKU means a new product
// even when the numeric ID collides with a persisted row.
func (s *productService) reconcile(ctx context.Context, candidates []*entity.Product) (toInsert, toUpdate []*entity.Product, err error) {
	now := s.clock.Now()

	for _, candidate := range candidates {
		existing, err := s.productRepo.FindBySKU(ctx, candidate.SKU)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				s.prepareNewProduct(candidate, now)
				toInsert = append(toInsert, candidate)

				continue
			}

			return nil, nil, domainerrors.NewDatabaseExecuteError(err, "failed to look up product by SKU")
		}

		s.mergeProduct(existing, candidate, now)
		toUpdate = append(toUpdate, existing)
	}

	return toInsert, toUpdate, nil
}

// prepareNewProduct wires ownership back-references on the candidate's
// sub-entities and stamps its Meta timestamps.
func (s *productService) prepareNewProduct(candidate *entity.Product, now time.Time) {
	if candidate.Dimensions != nil {
		candidate.Dimensions.ProductID = candidate.ID
	}
	for i := range candidate.Reviews {
		candidate.Reviews[i].ProductID = candidate.ID
	}
	if candidate.Meta == nil {
		candidate.Meta = &entity.Meta{}
	}
	candidate.Meta.CreatedAt = now
	candidate.Meta.UpdatedAt = now
	candidate.Meta.ProductID = candidate.ID
}

// mergeProduct overwrites every mutable scalar and list field of the
// existing entity with the candidate's data. Dimensions and reviews are
// deliberately not replaced on the update path; only Meta is touched, and
// its CreatedAt survives the merge.
func (s *productService) mergeProduct(existing, candidate *entity.Product, now time.Time) {
	existing.Title = candidate.Title
	existing.Description = candidate.Description
	existing.Category = candidate.Category
	existing.Price = candidate.Price
	existing.DiscountPercentage = candidate.DiscountPercentage
	existing.Rating = candidate.Rating
	existing.Stock = candidate.Stock
	existing.Brand = candidate.Brand
	existing.Weight = candidate.Weight
	existing.WarrantyInformation = candidate.WarrantyInformation
	existing.ShippingInformation = candidate.ShippingInformation
	existing.AvailabilityStatus = candidate.AvailabilityStatus
	existing.ReturnPolicy = candidate.ReturnPolicy
	existing.MinimumOrderQuantity = candidate.MinimumOrderQuantity
	existing.Thumbnail = candidate.Thumbnail
	existing.Tags = candidate.Tags
	existing.Images = candidate.Images

	if existing.Meta == nil {
		existing.Meta = &entity.Meta{ProductID: existing.ID}
	}
	if existing.Meta.CreatedAt.IsZero() {
		// A product without a creation stamp has never carried Meta; start
		// its history here so CreatedAt stays immutable from now on.
		existing.Meta.CreatedAt = now
	}
	existing.Meta.UpdatedAt = now
}

// SearchProducts performs a case-insensitive substring search across titles
// and descriptions. Query shape is validated before the store is touched.
func (s *productService) SearchProducts(ctx context.Context, query string) ([]*usecase.ProductResponse, error) {
	if len(query) < minQueryLength {
		return nil, errors.WithStack(domainerrors.ErrQueryTooShort)
	}
	if !queryPattern.MatchString(query) {
		return nil, errors.WithStack(domainerrors.ErrQueryInvalidCharacters)
	}

	products, err := s.productRepo.SearchByKeyword(ctx, query)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to search products by keyword")
	}
	if len(products) == 0 {
		return nil, errors.WithStack(domainerrors.ErrNoSearchResults)
	}

	responses := make([]*usecase.ProductResponse, 0, len(products))
	for _, product := range products {
		responses = append(responses, toProductResponse(product))
	}

	return responses, nil
}

// GetProductByIDOrSKU looks up a single product. Numeric identifiers route
// to the ID lookup, alphanumeric ones to the SKU lookup; anything else is
// rejected before the store is touched.
func (s *productService) GetProductByIDOrSKU(ctx context.Context, identifier string) (*usecase.ProductResponse, error) {
	if !numericPattern.MatchString(identifier) && !identifierPattern.MatchString(identifier) {
		return nil, errors.WithStack(domainerrors.ErrInvalidIdentifier)
	}

	product, err := s.productRepo.FindByIDOrSKU(ctx, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.WithStack(domainerrors.ErrProductNotFound)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find product by ID or SKU")
	}

	return toProductResponse(product), nil
}

// GenerateProductQR renders a PNG QR code for the product matching the
// identifier.
func (s *productService) GenerateProductQR(ctx context.Context, identifier string) ([]byte, error) {
	product, err := s.GetProductByIDOrSKU(ctx, identifier)
	if err != nil {
		return nil, err
	}

	qrCode, err := s.qrcodeService.GenerateProductQR(product.SKU)
	if err != nil {
		return nil, domainerrors.ErrQRCodeGenerationFailed.WithDetails(err.Error())
	}

	return qrCode, nil
}

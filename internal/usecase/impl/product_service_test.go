package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	mockRepo "catalog/internal/mocks/repository"
	mockSvc "catalog/internal/mocks/service"
	"catalog/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productServiceMocks struct {
	repo   *mockRepo.MockProductRepository
	source *mockSvc.MockProductSource
	clock  *mockSvc.MockClock
	qr     *mockSvc.MockQRCodeService
}

func newTestProductService(t *testing.T) (usecase.ProductUsecase, *productServiceMocks) {
	t.Helper()

	mocks := &productServiceMocks{
		repo:   mockRepo.NewMockProductRepository(t),
		source: mockSvc.NewMockProductSource(t),
		clock:  mockSvc.NewMockClock(t),
		qr:     mockSvc.NewMockQRCodeService(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewProductService(ProductServiceParams{
		ProductRepo:   mocks.repo,
		Source:        mocks.source,
		Clock:         mocks.clock,
		QRCodeService: mocks.qr,
		Logger:        logger,
	})

	return service, mocks
}

func TestProductService_LoadProducts_NewProduct(t *testing.T) {
	service, mocks := newTestProductService(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	doc := []byte(`{"products": [{
		"id": 7,
		"title": "XYZ Gadget 123",
		"sku": "XYZ123",
		"dimensions": {"width": 1, "height": 2, "depth": 3},
		"reviews": [{"rating": 5, "comment": "Great", "reviewerName": "A", "reviewerEmail": "a@x.com"}]
	}]}`)

	mocks.source.EXPECT().FetchDocument(ctx).Return(doc, nil)
	mocks.clock.EXPECT().Now().Return(now)
	mocks.repo.EXPECT().
		FindBySKU(ctx, "XYZ123").
		Return(nil, repository.ErrProductNotFound)

	var inserted, updated []*entity.Product
	mocks.repo.EXPECT().
		SaveAll(ctx, mock.Anything).
		Run(func(ctx context.Context, products []*entity.Product) {
			inserted = products
		}).
		Return(nil).
		Once()
	mocks.repo.EXPECT().
		SaveAll(ctx, mock.Anything).
		Run(func(ctx context.Context, products []*entity.Product) {
			updated = products
		}).
		Return(nil).
		Once()

	summary, err := service.LoadProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Added)
	assert.Equal(t, 0, summary.Updated)

	require.Len(t, inserted, 1)
	assert.Empty(t, updated)

	product := inserted[0]
	require.NotNil(t, product.Meta)
	assert.Equal(t, now, product.Meta.CreatedAt)
	assert.Equal(t, now, product.Meta.UpdatedAt)
	assert.Equal(t, int64(7), product.Meta.ProductID)
	require.NotNil(t, product.Dimensions)
	assert.Equal(t, int64(7), product.Dimensions.ProductID)
	require.Len(t, product.Reviews, 1)
	assert.Equal(t, int64(7), product.Reviews[0].ProductID)
}

func TestProductService_LoadProducts_UpdateExisting(t *testing.T) {
	service, mocks := newTestProductService(t)
	ctx := context.Background()
	createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	existing := &entity.Product{
		ID:    7,
		SKU:   "XYZ123",
		Title: "Old Title",
		Price: 10,
		Dimensions: &entity.Dimensions{
			Width: 9, Height: 9, Depth: 9, ProductID: 7,
		},
		Meta: &entity.Meta{
			Barcode:   "123",
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
			ProductID: 7,
		},
		Reviews: []entity.Review{
			{Rating: 1, Comment: "old review", ProductID: 7},
		},
	}

	doc := []byte(`{"products": [{
		"id": 7,
		"title": "New Title",
		"price": 20,
		"sku": "XYZ123",
		"dimensions": {"width": 1, "height": 2, "depth": 3},
		"reviews": [{"rating": 5, "comment": "new review"}]
	}]}`)

	mocks.source.EXPECT().FetchDocument(ctx).Return(doc, nil)
	mocks.clock.EXPECT().Now().Return(now)
	mocks.repo.EXPECT().FindBySKU(ctx, "XYZ123").Return(existing, nil)

	var inserted, updated []*entity.Product
	mocks.repo.EXPECT().
		SaveAll(ctx, mock.Anything).
		Run(func(ctx context.Context, products []*entity.Product) {
			inserted = products
		}).
		Return(nil).
		Once()
	mocks.repo.EXPECT().
		SaveAll(ctx, mock.Anything).
		Run(func(ctx context.Context, products []*entity.Product) {
			updated = products
		}).
		Return(nil).
		Once()

	summary, err := service.LoadProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Added)
	assert.Equal(t, 1, summary.Updated)

	assert.Empty(t, inserted)
	require.Len(t, updated, 1)

	product := updated[0]
	assert.Same(t, existing, product)
	assert.Equal(t, "New Title", product.Title)
	assert.Equal(t, float64(20), product.Price)

	// Dimensions and reviews survive the merge untouched.
	assert.Equal(t, float64(9), product.Dimensions.Width)
	require.Len(t, product.Reviews, 1)
	assert.Equal(t, "old review", product.Reviews[0].Comment)

	// CreatedAt is immutable; only UpdatedAt moves.
	assert.Equal(t, createdAt, product.Meta.CreatedAt)
	assert.Equal(t, now, product.Meta.UpdatedAt)
}

func TestProductService_LoadProducts_MixedBatch(t *testing.T) {
	service, mocks := newTestProductService(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	doc := []byte(`{"products": [
		{"id": 1, "sku": "AAA", "title": "First"},
		{"id": 2, "sku": "BBB", "title": "Second"},
		{"id": 3, "sku": "CCC", "title": "Third"}
	]}`)

	mocks.source.EXPECT().FetchDocument(ctx).Return(doc, nil)
	mocks.clock.EXPECT().Now().Return(now)
	mocks.repo.EXPECT().FindBySKU(ctx, "AAA").Return(nil, repository.ErrProductNotFound)
	mocks.repo.EXPECT().FindBySKU(ctx, "BBB").Return(&entity.Product{ID: 2, SKU: "BBB"}, nil)
	mocks.repo.EXPECT().FindBySKU(ctx, "CCC").Return(nil, repository.ErrProductNotFound)
	mocks.repo.EXPECT().SaveAll(ctx, mock.Anything).Return(nil).Times(2)

	summary, err := service.LoadProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Added)
	assert.Equal(t, 1, summary.Updated)
}

func TestProductService_LoadProducts_EmptyBatch(t *testing.T) {
	service, mocks := newTestProductService(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	mocks.source.EXPECT().FetchDocument(ctx).Return([]byte(`{"products": []}`), nil)
	mocks.clock.EXPECT().Now().Return(now)
	mocks.repo.EXPECT().SaveAll(ctx, mock.Anything).Return(nil).Times(2)

	summary, err := service.LoadProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Added)
	assert.Equal(t, 0, summary.Updated)
}

func TestProductService_LoadProducts_FetchError(t *testing.T) {
	service, mocks := newTestProductService(t)
	ctx := context.Background()

	mocks.source.EXPECT().FetchDocument(ctx).Return(nil, errors.New("connection refused"))

	summary, err := service.LoadProducts(ctx)
	assert.Nil(t, summary)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SOURCE_FETCH_FAILED", appErr.ErrorCode())
}

func TestProductService_LoadProducts_ParseError(t *testing.T) {
	service, mocks := newTestProductService(t)
	ctx := context.Background()

	mocks.source.EXPECT().FetchDocument(ctx).Return([]byte(`{"total": 194}`), nil)

	summary, err := service.LoadProducts(ctx)
	assert.Nil(t, summary)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SOURCE_PARSE_FAILED", appErr.ErrorCode())
}

func TestProductService_LoadProducts_LookupErrorAborts(t *testing.T) {
	service, mocks := newTestProductService(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	doc := []byte(`{"products": [{"id": 1, "sku": "AAA", "title": "First"}]}`)

	mocks.source.EXPECT().FetchDocument(ctx).Return(doc, nil)
	mocks.clock.EXPECT().Now().Return(now)
	mocks.repo.EXPECT().FindBySKU(ctx, "AAA").Return(nil, errors.New("db error"))

	summary, err := service.LoadProducts(ctx)
	assert.Nil(t, summary)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
	mocks.repo.AssertNotCalled(t, "SaveAll", mock.Anything, mock.Anything)
}

func TestProductService_LoadProducts_SaveError(t *testing.T) {
	service, mocks := newTestProductService(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	doc := []byte(`{"products": [{"id": 1, "sku": "AAA", "title": "First"}]}`)

	mocks.source.EXPECT().FetchDocument(ctx).Return(doc, nil)
	mocks.clock.EXPECT().Now().Return(now)
	mocks.repo.EXPECT().FindBySKU(ctx, "AAA").Return(nil, repository.ErrProductNotFound)
	mocks.repo.EXPECT().SaveAll(ctx, mock.Anything).Return(errors.New("tx failed")).Once()

	summary, err := service.LoadProducts(ctx)
	assert.Nil(t, summary)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PRODUCT_SAVE_FAILED", appErr.ErrorCode())
}

func TestProductService_SearchProducts_Success(t *testing.T) {
	service, mocks := newTestProductService(t)
	ctx := context.Background()

	products := []*entity.Product{
		{ID: 1, SKU: "XYZ123", Title: "XYZ Gadget 123"},
		{ID: 2, SKU: "XYZ456", Title: "Another", Description: "mentions xyz123 somewhere"},
	}
	mocks.repo.EXPECT().SearchByKeyword(ctx, "xyz123").Return(products, nil)

	responses, err := service.SearchProducts(ctx, "xyz123")
	require.NoError(t, err)
	require.Len(t, responses, 2)
	assert.Equal(t, "XYZ Gadget 123", responses[0].Title)
	assert.Equal(t, int64(2), responses[1].ID)
}

func TestProductService_SearchProducts_QueryTooShort(t *testing.T) {
	service, mocks := newTestProductService(t)

	responses, err := service.SearchProducts(context.Background(), "ab")
	assert.Nil(t, responses)
	assert.ErrorIs(t, err, domainerrors.ErrQueryTooShort)
	mocks.repo.AssertNotCalled(t, "SearchByKeyword", mock.Anything, mock.Anything)
}

func TestProductService_SearchProducts_InvalidCharacters(t *testing.T) {
	service, mocks := newTestProductService(t)

	responses, err := service.SearchProducts(context.Background(), "abc!")
	assert.Nil(t, responses)
	assert.ErrorIs(t, err, domainerrors.ErrQueryInvalidCharacters)
	mocks.repo.AssertNotCalled(t, "SearchByKeyword", mock.Anything, mock.Anything)
}

func TestProductService_SearchProducts_NoResults(t *testing.T) {
	service, mocks := newTestProductService(t)
	ctx := context.Background()

	mocks.repo.EXPECT().SearchByKeyword(ctx, "nothing here").Return(nil, nil)

	responses, err := service.SearchProducts(ctx, "nothing here")
	assert.Nil(t, responses)
	assert.ErrorIs(t, err, domainerrors.ErrNoSearchResults)
}

func TestProductService_SearchProducts_RepositoryError(t *testing.T) {
	service, mocks := newTestProductService(t)
	ctx := context.Background()

	mocks.repo.EXPECT().SearchByKeyword(ctx, "abc").Return(nil, errors.New("db error"))

	responses, err := service.SearchProducts(ctx, "abc")
	assert.Nil(t, responses)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestProductService_GetProductByIDOrSKU_NumericIdentifier(t *testing.T) {
	service, mocks := newTestProductService(t)
	ctx := context.Background()

	mocks.repo.EXPECT().
		FindByIDOrSKU(ctx, "42").
		Return(&entity.Product{ID: 42, SKU: "ABC42"}, nil)

	product, err := service.GetProductByIDOrSKU(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), product.ID)
	assert.Equal(t, "ABC42", product.SKU)
}

func TestProductService_GetProductByIDOrSKU_SKUIdentifier(t *testing.T) {
	service, mocks := newTestProductService(t)
	ctx := context.Background()

	mocks.repo.EXPECT().
		FindByIDOrSKU(ctx, "SKU42A").
		Return(&entity.Product{ID: 7, SKU: "SKU42A"}, nil)

	product, err := service.GetProductByIDOrSKU(ctx, "SKU42A")
	require.NoError(t, err)
	assert.Equal(t, "SKU42A", product.SKU)
}

func TestProductService_GetProductByIDOrSKU_InvalidIdentifier(t *testing.T) {
	service, mocks := newTestProductService(t)

	product, err := service.GetProductByIDOrSKU(context.Background(), "bad id!")
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidIdentifier)
	mocks.repo.AssertNotCalled(t, "FindByIDOrSKU", mock.Anything, mock.Anything)
}

func TestProductService_GetProductByIDOrSKU_NotFound(t *testing.T) {
	service, mocks := newTestProductService(t)
	ctx := context.Background()

	mocks.repo.EXPECT().
		FindByIDOrSKU(ctx, "MISSING1").
		Return(nil, repository.ErrProductNotFound)

	product, err := service.GetProductByIDOrSKU(ctx, "MISSING1")
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_GenerateProductQR_Success(t *testing.T) {
	service, mocks := newTestProductService(t)
	ctx := context.Background()

	mocks.repo.EXPECT().
		FindByIDOrSKU(ctx, "42").
		Return(&entity.Product{ID: 42, SKU: "ABC42"}, nil)
	mocks.qr.EXPECT().
		GenerateProductQR("ABC42").
		Return([]byte("png-bytes"), nil)

	qrCode, err := service.GenerateProductQR(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), qrCode)
}

func TestProductService_GenerateProductQR_ProductNotFound(t *testing.T) {
	service, mocks := newTestProductService(t)
	ctx := context.Background()

	mocks.repo.EXPECT().
		FindByIDOrSKU(ctx, "MISSING1").
		Return(nil, repository.ErrProductNotFound)

	qrCode, err := service.GenerateProductQR(ctx, "MISSING1")
	assert.Nil(t, qrCode)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	mocks.qr.AssertNotCalled(t, "GenerateProductQR", mock.Anything)
}

func TestProductService_GenerateProductQR_GenerationError(t *testing.T) {
	service, mocks := newTestProductService(t)
	ctx := context.Background()

	mocks.repo.EXPECT().
		FindByIDOrSKU(ctx, "42").
		Return(&entity.Product{ID: 42, SKU: "ABC42"}, nil)
	mocks.qr.EXPECT().
		GenerateProductQR("ABC42").
		Return(nil, errors.New("encode failed"))

	qrCode, err := service.GenerateProductQR(ctx, "42")
	assert.Nil(t, qrCode)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "QRCODE_GENERATION_FAILED", appErr.ErrorCode())
}

package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"catalog/internal/delivery/http/response"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler holds dependencies for product-related handlers
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// LoadProducts triggers one load cycle from the external dataset.
func (h *ProductHandler) LoadProducts(c echo.Context) error {
	h.logger.Info("Loading products from external dataset")

	summary, err := h.productUC.LoadProducts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	message := fmt.Sprintf("Added %d products and updated %d products.", summary.Added, summary.Updated)

	return response.Success(c, http.StatusOK, summary, message)
}

// SearchProducts searches products by title or description substring.
func (h *ProductHandler) SearchProducts(c echo.Context) error {
	query := c.QueryParam("query")

	products, err := h.productUC.SearchProducts(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products, "Products found")
}

// GetProductByIDOrSKU fetches a single product by numeric ID or SKU.
func (h *ProductHandler) GetProductByIDOrSKU(c echo.Context) error {
	identifier := c.Param("idOrSku")

	product, err := h.productUC.GetProductByIDOrSKU(c.Request().Context(), identifier)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product, "Product found")
}

// GetProductQR renders a PNG QR code for a single product.
func (h *ProductHandler) GetProductQR(c echo.Context) error {
	identifier := c.Param("idOrSku")

	qrCode, err := h.productUC.GenerateProductQR(c.Request().Context(), identifier)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Content-Disposition", "inline; filename=product-qr.png")

	return c.Blob(http.StatusOK, "image/png", qrCode)
}

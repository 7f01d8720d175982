package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Sgarrido33/devsecops-pos-pipeline/internal/core/domain"
	"github.com/Sgarrido33/devsecops-pos-pipeline/internal/core/ports"
)

// ProductHandler handles HTTP requests for the per-user product catalog.
type ProductHandler struct {
	service ports.CatalogService
}

func NewProductHandler(service ports.CatalogService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List handles GET /api/products.
//
// @Summary      List the caller's products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Product
// @Failure      401  {object}  messageResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	ownerID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	products, err := h.service.List(c.Request().Context(), ownerID)
	if err != nil {
		return err
	}
	if products == nil {
		products = []domain.Product{}
	}
	return c.JSON(http.StatusOK, products)
}

// Create handles POST /api/products.
//
// @Summary      Add a product to the caller's catalog
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product name and price"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  messageResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	ownerID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	product, err := h.service.Create(c.Request().Context(), ownerID, req.Name, *req.Price)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidProduct) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "price must be a finite non-negative number"})
		}
		return err
	}

	return c.JSON(http.StatusCreated, product)
}

// Delete handles DELETE /api/products/:id.
//
// @Summary      Delete a product from the caller's catalog
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Product ID"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	ownerID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	// A non-numeric id can never name an existing row; answer exactly like
	// any other missing product.
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "product not found"})
	}

	if err := h.service.Delete(c.Request().Context(), ownerID, productID); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "product not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Product deleted"})
}

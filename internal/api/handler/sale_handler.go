package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Sgarrido33/devsecops-pos-pipeline/internal/core/domain"
	"github.com/Sgarrido33/devsecops-pos-pipeline/internal/core/ports"
)

// SaleHandler handles HTTP requests for recording and listing sales.
type SaleHandler struct {
	service ports.SaleService
}

func NewSaleHandler(service ports.SaleService) *SaleHandler {
	return &SaleHandler{service: service}
}

// Create handles POST /api/sales. The body is a bare JSON array of cart
// lines; prices and quantities are recorded verbatim as point-in-time
// snapshots.
//
// @Summary      Record a sale
// @Tags         sales
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      []saleItemRequest  true  "Cart lines"
// @Success      201   {object}  saleResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  messageResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c echo.Context) error {
	ownerID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var cart []saleItemRequest
	if err := c.Bind(&cart); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if len(cart) == 0 {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Cart is empty"})
	}

	items := make([]ports.CartItemInput, 0, len(cart))
	for _, line := range cart {
		if line.Price == nil || line.Quantity == nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "each item requires name, price and quantity"})
		}
		items = append(items, ports.CartItemInput{
			Name:     line.Name,
			Price:    *line.Price,
			Quantity: *line.Quantity,
		})
	}

	sale, err := h.service.Create(c.Request().Context(), ownerID, items)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyCart):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "Cart is empty"})
		case errors.Is(err, domain.ErrInvalidItem):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "each item requires name, price and quantity"})
		}
		return err
	}

	return c.JSON(http.StatusCreated, toSaleResponse(*sale))
}

// List handles GET /api/sales: the caller's sales, newest first.
//
// @Summary      List the caller's sales
// @Tags         sales
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   saleResponse
// @Failure      401  {object}  messageResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c echo.Context) error {
	ownerID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	sales, err := h.service.List(c.Request().Context(), ownerID)
	if err != nil {
		return err
	}

	out := make([]saleResponse, len(sales))
	for i, s := range sales {
		out[i] = toSaleResponse(s)
	}
	return c.JSON(http.StatusOK, out)
}

package handler

import (
	"time"

	"github.com/Sgarrido33/devsecops-pos-pipeline/internal/core/domain"
)

// saleItemRequest is one cart line as submitted by the client. Price and
// quantity are pointers so missing fields are distinguishable from zeros;
// the distinction matters because a missing field is an invalid line while
// a zero price is a legal giveaway.
type saleItemRequest struct {
	Name     string   `json:"name"`
	Price    *float64 `json:"price"`
	Quantity *int     `json:"quantity"`
}

// saleItemResponse mirrors the persisted snapshot: product_name, not name.
type saleItemResponse struct {
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type saleResponse struct {
	ID        int64              `json:"id"`
	Total     float64            `json:"total"`
	CreatedAt time.Time          `json:"created_at"`
	Items     []saleItemResponse `json:"items"`
}

func toSaleResponse(s domain.Sale) saleResponse {
	items := make([]saleItemResponse, len(s.Items))
	for i, item := range s.Items {
		items[i] = saleItemResponse{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		}
	}
	return saleResponse{
		ID:        s.ID,
		Total:     s.Total,
		CreatedAt: s.CreatedAt.UTC(),
		Items:     items,
	}
}

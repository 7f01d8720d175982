package handler

// createProductRequest is the payload for POST /api/products. Price is a
// pointer so an absent field is distinguishable from an explicit zero
// (zero is a legal price, absence is not).
type createProductRequest struct {
	Name  string   `json:"name"  validate:"required"`
	Price *float64 `json:"price" validate:"required,gte=0"`
}

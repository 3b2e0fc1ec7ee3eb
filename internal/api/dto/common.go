package dto

// SuccessResponse acknowledges a storefront write that has nothing to return,
// such as emptying the wishlist
type SuccessResponse struct {
	Message string `json:"message"`
}

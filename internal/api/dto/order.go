package dto

import (
	"github.com/openshop/storefront/internal/domain/order"
	ierr "github.com/openshop/storefront/internal/errors"
)

// ListOrdersRequest filters the order history by stage; empty means all
type ListOrdersRequest struct {
	Stage order.Stage `form:"stage"`
}

func (r *ListOrdersRequest) Validate() error {
	if r.Stage != "" && !r.Stage.IsValid() {
		return ierr.NewErrorf("unknown order stage %q", string(r.Stage)).
			WithHint("Stage must be one of pending, in_delivering, successful, refused").
			WithReportableDetails(map[string]any{
				"stage": r.Stage,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

type ListOrdersResponse struct {
	Items []*order.Order `json:"items"`
	Stage order.Stage    `json:"stage,omitempty"`
	Total int            `json:"total"`
}

package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/openshop/storefront/internal/api/dto"
	"github.com/openshop/storefront/internal/domain/checkout"
	"github.com/openshop/storefront/internal/domain/discount"
	"github.com/openshop/storefront/internal/domain/order"
	ierr "github.com/openshop/storefront/internal/errors"
	"github.com/openshop/storefront/internal/idempotency"
	"github.com/openshop/storefront/internal/types"
	"github.com/samber/lo"
	"github.com/sourcegraph/conc/pool"
)

// candidateFetchConcurrency bounds the parallel discount lookups per request
const candidateFetchConcurrency = 8

// CheckoutService prices checkout sets and turns them into orders
type CheckoutService interface {
	Quote(ctx context.Context, req dto.QuoteRequest) (*dto.QuoteResponse, error)
	ListDiscountCandidates(ctx context.Context, req dto.ListDiscountCandidatesRequest) (*dto.ListDiscountCandidatesResponse, error)
	PlaceOrder(ctx context.Context, creds types.Credentials, req dto.PlaceOrderRequest) (*dto.PlaceOrderResponse, error)
}

type checkoutService struct {
	ServiceParams
	idempotencyGenerator *idempotency.Generator
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(params ServiceParams) CheckoutService {
	return &checkoutService{
		ServiceParams:        params,
		idempotencyGenerator: idempotency.NewGenerator(),
	}
}

func (s *checkoutService) Quote(ctx context.Context, req dto.QuoteRequest) (*dto.QuoteResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	shippingFee := s.Config.Checkout.ShippingFee
	if req.ShippingFee != nil {
		shippingFee = *req.ShippingFee
	}

	items := req.LineItems()
	if selection, ok := req.Selection(); ok {
		items = selection.Filter(items)
	}

	quote, err := checkout.BuildQuote(items, checkout.Discounts(req.AppliedDiscounts), shippingFee)
	if err != nil {
		return nil, err
	}

	s.Logger.Debugw("priced checkout quote",
		"lines", len(quote.Lines),
		"shipping_fee", shippingFee,
		"total", quote.Total,
		"request_id", types.GetRequestID(ctx))

	return dto.NewQuoteResponse(types.GenerateUUIDWithPrefix(types.UUID_PREFIX_QUOTE), items, quote), nil
}

type productDiscounts struct {
	productID string
	discounts []*discount.Discount
}

// ListDiscountCandidates fetches the offers for each product concurrently.
// A product the backend does not know simply has no offers.
func (s *checkoutService) ListDiscountCandidates(ctx context.Context, req dto.ListDiscountCandidatesRequest) (*dto.ListDiscountCandidatesResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p := pool.NewWithResults[productDiscounts]().
		WithContext(ctx).
		WithCancelOnError().
		WithMaxGoroutines(candidateFetchConcurrency)

	for _, productID := range lo.Uniq(req.ProductIDs) {
		productID := productID
		p.Go(func(ctx context.Context) (productDiscounts, error) {
			discounts, err := s.Storefront.ListDiscountsByProduct(ctx, productID)
			if err != nil {
				if ierr.IsNotFound(err) {
					return productDiscounts{productID: productID}, nil
				}
				return productDiscounts{}, err
			}
			return productDiscounts{productID: productID, discounts: discounts}, nil
		})
	}

	results, err := p.Wait()
	if err != nil {
		s.Logger.Errorw("failed to fetch discount candidates",
			"error", err,
			"product_ids", req.ProductIDs)
		return nil, err
	}

	resp := &dto.ListDiscountCandidatesResponse{
		Discounts: make(map[string][]*dto.DiscountResponse, len(results)),
	}
	for _, r := range results {
		resp.Discounts[r.productID] = lo.FilterMap(r.discounts, func(d *discount.Discount, _ int) (*dto.DiscountResponse, bool) {
			// offers the calculator cannot price are not worth showing
			if d == nil || d.Validate() != nil {
				return nil, false
			}
			return dto.NewDiscountResponse(d), true
		})
	}

	return resp, nil
}

func (s *checkoutService) PlaceOrder(ctx context.Context, creds types.Credentials, req dto.PlaceOrderRequest) (*dto.PlaceOrderResponse, error) {
	if creds.IsAnonymous() {
		return nil, errSignInRequired()
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	items := req.LineItems()
	shippingFee := s.Config.Checkout.ShippingFee
	discounts := checkout.Discounts(req.AppliedDiscounts)

	quote, err := checkout.BuildQuote(items, discounts, shippingFee)
	if err != nil {
		return nil, err
	}

	// only discounts attached to lines in this order travel with it
	applied := lo.PickBy(req.AppliedDiscounts, func(productID string, d *discount.Discount) bool {
		_, inOrder := lo.Find(items, func(item checkout.LineItem) bool {
			return item.ProductID == productID
		})
		return inOrder && d != nil
	})

	submission := &order.Submission{
		Reference:        types.GenerateShortIDWithPrefix(types.SHORT_ID_PREFIX_ORDER),
		Items:            items,
		ShippingAddress:  req.ShippingAddress,
		PaymentMethod:    req.PaymentMethod,
		AppliedDiscounts: applied,
		TotalAmount:      quote.Total,
	}
	submission.IdempotencyKey = s.orderIdempotencyKey(creds, submission)

	if err := s.Storefront.CreateOrder(ctx, creds, submission); err != nil {
		return nil, err
	}

	s.Logger.Infow("order placed",
		"reference", submission.Reference,
		"lines", len(items),
		"total_amount", submission.TotalAmount,
		"payment_method", submission.PaymentMethod)

	return &dto.PlaceOrderResponse{
		Reference:   submission.Reference,
		TotalAmount: submission.TotalAmount,
		Quote:       dto.NewQuoteResponse(types.GenerateUUIDWithPrefix(types.UUID_PREFIX_QUOTE), items, quote),
	}, nil
}

// orderIdempotencyKey identifies a submission by everything except its reference,
// so a repeated click on the same basket maps to the same upstream order.
func (s *checkoutService) orderIdempotencyKey(creds types.Credentials, submission *order.Submission) string {
	lines := lo.Map(submission.Items, func(item checkout.LineItem, _ int) string {
		return fmt.Sprintf("%s x%d @%s", item.ProductID, item.Quantity, item.UnitPrice)
	})
	sort.Strings(lines)

	return s.idempotencyGenerator.GenerateKey(idempotency.ScopeOrderSubmission, map[string]interface{}{
		"access_token":     creds.AccessToken,
		"lines":            strings.Join(lines, ","),
		"shipping_address": submission.ShippingAddress,
		"payment_method":   string(submission.PaymentMethod),
		"total_amount":     submission.TotalAmount.String(),
	})
}

func errSignInRequired() error {
	return ierr.NewError("missing access token").
		WithHint("Please sign in to continue").
		Mark(ierr.ErrPermissionDenied)
}

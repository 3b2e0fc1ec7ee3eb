package service

import (
	"github.com/openshop/storefront/internal/api/dto"
	"github.com/openshop/storefront/internal/domain/discount"
	"github.com/openshop/storefront/internal/testutil"
	"github.com/openshop/storefront/internal/types"
	"github.com/shopspring/decimal"
)

const shopperToken = "shopper-token"

var shopper = types.NewCredentials(shopperToken)

func paramsFrom(s *testutil.BaseServiceTestSuite) ServiceParams {
	return NewServiceParams(s.GetLogger(), s.GetConfig(), s.GetStorefront())
}

func line(productID string, price int64, quantity, stock int) dto.LineItemRequest {
	return dto.LineItemRequest{
		ProductID: productID,
		Price:     decimal.NewFromInt(price),
		Quantity:  quantity,
		Stock:     stock,
	}
}

func percentOff(id string, percent int64) *discount.Discount {
	return &discount.Discount{
		ID:        id,
		Code:      id,
		Kind:      types.DiscountKindPercentage,
		Magnitude: discount.Scalar(decimal.NewFromInt(percent)),
	}
}

func amountOff(id string, amount int64) *discount.Discount {
	return &discount.Discount{
		ID:        id,
		Code:      id,
		Kind:      types.DiscountKindFixed,
		Magnitude: discount.Scalar(decimal.NewFromInt(amount)),
	}
}

func buyGet(id string, buy, free int) *discount.Discount {
	return &discount.Discount{
		ID:        id,
		Code:      id,
		Kind:      types.DiscountKindBuyXGetY,
		Magnitude: discount.Pair(buy, free),
	}
}

package service

import (
	"testing"

	"github.com/openshop/storefront/internal/domain/account"
	"github.com/openshop/storefront/internal/domain/wishlist"
	ierr "github.com/openshop/storefront/internal/errors"
	"github.com/openshop/storefront/internal/testutil"
	"github.com/openshop/storefront/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type WishlistServiceSuite struct {
	testutil.BaseServiceTestSuite
	service WishlistService
}

func TestWishlistService(t *testing.T) {
	suite.Run(t, new(WishlistServiceSuite))
}

func (s *WishlistServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewWishlistService(paramsFrom(&s.BaseServiceTestSuite))

	store := s.GetStorefront()
	store.AddUser(shopperToken, &account.User{UserID: "u1"}, "secret")
	store.AddWishlistItems(shopperToken,
		wishlist.Item{ProductID: "lamp", Name: "Lamp", Price: decimal.RequireFromString("19.99"), Stock: 4},
		wishlist.Item{ProductID: "rug", Name: "Rug", Price: decimal.NewFromInt(89), Stock: 0},
	)
}

func (s *WishlistServiceSuite) TestGetWishlist() {
	resp, err := s.service.GetWishlist(s.GetContext(), shopper)
	s.Require().NoError(err)

	s.Equal(2, resp.Total)
	s.Equal("108.99", resp.Value.String())
	s.Equal([]string{"lamp", "rug"}, lo.Map(resp.Items, func(item wishlist.Item, _ int) string {
		return item.ProductID
	}))
}

func (s *WishlistServiceSuite) TestRequiresCredentials() {
	anonymous := types.Credentials{}

	_, err := s.service.GetWishlist(s.GetContext(), anonymous)
	s.True(ierr.IsPermissionDenied(err))

	_, err = s.service.RemoveItem(s.GetContext(), anonymous, "lamp")
	s.True(ierr.IsPermissionDenied(err))

	_, err = s.service.ClearWishlist(s.GetContext(), anonymous)
	s.True(ierr.IsPermissionDenied(err))
}

func (s *WishlistServiceSuite) TestRemoveItem() {
	testCases := []struct {
		name      string
		productID string
		wantErr   func(error) bool
		wantLeft  int
	}{
		{name: "saved", productID: "rug", wantLeft: 1},
		{name: "not_saved", productID: "sofa", wantErr: ierr.IsNotFound, wantLeft: 2},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()

			resp, err := s.service.RemoveItem(s.GetContext(), shopper, tc.productID)
			if tc.wantErr != nil {
				s.Require().Error(err)
				s.True(tc.wantErr(err))
			} else {
				s.Require().NoError(err)
				s.Equal(tc.wantLeft, resp.Total)
				_, found := wishlist.Find(resp.Items, tc.productID)
				s.False(found)
			}

			left, err := s.GetStorefront().ListWishlist(s.GetContext(), shopper)
			s.Require().NoError(err)
			s.Len(left, tc.wantLeft)
		})
	}
}

func (s *WishlistServiceSuite) TestRemoveItemUpstreamFailure() {
	s.GetStorefront().FailNext("RemoveWishlistItem", ierr.NewError("backend down").Mark(ierr.ErrHTTPClient))

	_, err := s.service.RemoveItem(s.GetContext(), shopper, "lamp")
	s.Require().Error(err)
	s.True(ierr.IsHTTPClient(err))
}

func (s *WishlistServiceSuite) TestClearWishlist() {
	resp, err := s.service.ClearWishlist(s.GetContext(), shopper)
	s.Require().NoError(err)
	s.Equal("wishlist cleared", resp.Message)

	list, err := s.service.GetWishlist(s.GetContext(), shopper)
	s.Require().NoError(err)
	s.Zero(list.Total)
	s.Empty(list.Items)
	s.True(list.Value.IsZero())
}

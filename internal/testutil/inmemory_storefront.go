package testutil

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/openshop/storefront/internal/domain/account"
	"github.com/openshop/storefront/internal/domain/checkout"
	"github.com/openshop/storefront/internal/domain/discount"
	"github.com/openshop/storefront/internal/domain/order"
	"github.com/openshop/storefront/internal/domain/product"
	"github.com/openshop/storefront/internal/domain/wishlist"
	ierr "github.com/openshop/storefront/internal/errors"
	"github.com/openshop/storefront/internal/types"
)

// InMemoryStorefront implements storefront.Client against in-process state.
// Shoppers are keyed by access token; an unknown token is refused.
type InMemoryStorefront struct {
	mu        sync.RWMutex
	products  map[string]*product.Product
	discounts map[string][]*discount.Discount
	carts     map[string]*checkout.Cart
	orders    map[string][]*order.Order
	users     map[string]*account.User
	passwords map[string]string
	wishlists map[string][]wishlist.Item

	submissions    []*order.Submission
	orderKeys      map[string]bool
	detailUpdates  []*account.DetailsUpdate
	resetEmails    []string
	failures       map[string]error
	discountLookup atomic.Int32
}

func NewInMemoryStorefront() *InMemoryStorefront {
	s := &InMemoryStorefront{}
	s.Clear()
	return s
}

// Clear resets all state
func (s *InMemoryStorefront) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = make(map[string]*product.Product)
	s.discounts = make(map[string][]*discount.Discount)
	s.carts = make(map[string]*checkout.Cart)
	s.orders = make(map[string][]*order.Order)
	s.users = make(map[string]*account.User)
	s.passwords = make(map[string]string)
	s.wishlists = make(map[string][]wishlist.Item)
	s.submissions = nil
	s.orderKeys = make(map[string]bool)
	s.detailUpdates = nil
	s.resetEmails = nil
	s.failures = make(map[string]error)
	s.discountLookup.Store(0)
}

// AddUser registers a shopper under an access token
func (s *InMemoryStorefront) AddUser(token string, user *account.User, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[token] = user
	s.passwords[token] = password
	if _, ok := s.carts[token]; !ok {
		s.carts[token] = &checkout.Cart{ID: "cart_" + user.UserID, CustomerID: user.UserID}
	}
}

func (s *InMemoryStorefront) AddProduct(p *product.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID] = p
}

func (s *InMemoryStorefront) AddDiscounts(productID string, discounts ...*discount.Discount) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.discounts[productID] = append(s.discounts[productID], discounts...)
}

func (s *InMemoryStorefront) AddCartItems(token string, items ...checkout.LineItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart, ok := s.carts[token]
	if !ok {
		cart = &checkout.Cart{}
		s.carts[token] = cart
	}
	cart.Items = append(cart.Items, items...)
}

func (s *InMemoryStorefront) AddWishlistItems(token string, items ...wishlist.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wishlists[token] = append(s.wishlists[token], items...)
}

func (s *InMemoryStorefront) AddOrders(token string, orders ...*order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[token] = append(s.orders[token], orders...)
}

// FailNext makes every call to the named method return err until cleared
func (s *InMemoryStorefront) FailNext(method string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method] = err
}

func (s *InMemoryStorefront) Submissions() []*order.Submission {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*order.Submission(nil), s.submissions...)
}

func (s *InMemoryStorefront) DetailUpdates() []*account.DetailsUpdate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*account.DetailsUpdate(nil), s.detailUpdates...)
}

func (s *InMemoryStorefront) ResetEmails() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.resetEmails...)
}

// DiscountLookups counts ListDiscountsByProduct calls
func (s *InMemoryStorefront) DiscountLookups() int {
	return int(s.discountLookup.Load())
}

func (s *InMemoryStorefront) failure(method string) error {
	return s.failures[method]
}

func (s *InMemoryStorefront) user(creds types.Credentials) (*account.User, error) {
	user, ok := s.users[creds.AccessToken]
	if !ok {
		return nil, ierr.NewError("unknown access token").
			WithHint("Please sign in again").
			Mark(ierr.ErrPermissionDenied)
	}
	return user, nil
}

func (s *InMemoryStorefront) GetProduct(_ context.Context, productID string) (*product.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.failure("GetProduct"); err != nil {
		return nil, err
	}
	p, ok := s.products[productID]
	if !ok {
		return nil, ierr.NewErrorf("product %s not found", productID).
			WithHint("The requested resource does not exist").
			Mark(ierr.ErrNotFound)
	}
	return p, nil
}

func (s *InMemoryStorefront) ListDiscountsByProduct(_ context.Context, productID string) ([]*discount.Discount, error) {
	s.discountLookup.Add(1)
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.failure("ListDiscountsByProduct"); err != nil {
		return nil, err
	}
	if _, ok := s.products[productID]; !ok {
		return nil, ierr.NewErrorf("product %s not found", productID).
			Mark(ierr.ErrNotFound)
	}
	return s.discounts[productID], nil
}

func (s *InMemoryStorefront) GetCart(_ context.Context, creds types.Credentials) (*checkout.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.failure("GetCart"); err != nil {
		return nil, err
	}
	if _, err := s.user(creds); err != nil {
		return nil, err
	}
	cart := s.carts[creds.AccessToken]
	return &checkout.Cart{
		ID:         cart.ID,
		CustomerID: cart.CustomerID,
		Items:      append([]checkout.LineItem(nil), cart.Items...),
	}, nil
}

func (s *InMemoryStorefront) UpdateCartQuantity(_ context.Context, creds types.Credentials, productID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("UpdateCartQuantity"); err != nil {
		return err
	}
	if _, err := s.user(creds); err != nil {
		return err
	}
	cart := s.carts[creds.AccessToken]
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity = quantity
			return nil
		}
	}
	return ierr.NewErrorf("product %s not in cart", productID).Mark(ierr.ErrNotFound)
}

func (s *InMemoryStorefront) ClearCart(_ context.Context, creds types.Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("ClearCart"); err != nil {
		return err
	}
	if _, err := s.user(creds); err != nil {
		return err
	}
	s.carts[creds.AccessToken].Items = nil
	return nil
}

func (s *InMemoryStorefront) ListWishlist(_ context.Context, creds types.Credentials) ([]wishlist.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.failure("ListWishlist"); err != nil {
		return nil, err
	}
	if _, err := s.user(creds); err != nil {
		return nil, err
	}
	return append([]wishlist.Item(nil), s.wishlists[creds.AccessToken]...), nil
}

func (s *InMemoryStorefront) RemoveWishlistItem(_ context.Context, creds types.Credentials, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("RemoveWishlistItem"); err != nil {
		return err
	}
	if _, err := s.user(creds); err != nil {
		return err
	}
	items := s.wishlists[creds.AccessToken]
	for i := range items {
		if items[i].ProductID == productID {
			s.wishlists[creds.AccessToken] = append(items[:i:i], items[i+1:]...)
			return nil
		}
	}
	return ierr.NewErrorf("product %s not in wishlist", productID).Mark(ierr.ErrNotFound)
}

func (s *InMemoryStorefront) ClearWishlist(_ context.Context, creds types.Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("ClearWishlist"); err != nil {
		return err
	}
	if _, err := s.user(creds); err != nil {
		return err
	}
	delete(s.wishlists, creds.AccessToken)
	return nil
}

func (s *InMemoryStorefront) CreateOrder(_ context.Context, creds types.Credentials, submission *order.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("CreateOrder"); err != nil {
		return err
	}
	user, err := s.user(creds)
	if err != nil {
		return err
	}
	// a repeated idempotency key is acknowledged without creating another order
	if submission.IdempotencyKey != "" {
		if s.orderKeys[submission.IdempotencyKey] {
			return nil
		}
		s.orderKeys[submission.IdempotencyKey] = true
	}
	s.submissions = append(s.submissions, submission)
	for _, item := range submission.Items {
		s.orders[creds.AccessToken] = append(s.orders[creds.AccessToken], &order.Order{
			ID:              types.GenerateUUIDWithPrefix(types.UUID_PREFIX_ORDER),
			ProductID:       item.ProductID,
			Name:            item.Name,
			Quantity:        item.Quantity,
			Price:           item.UnitPrice,
			ShippingAddress: submission.ShippingAddress,
			PaymentMethod:   string(submission.PaymentMethod),
			PaymentStatus:   order.PaymentStatusUnpaid,
			CustomerID:      user.UserID,
			OrderStatus:     order.StatusPending,
		})
	}
	return nil
}

func (s *InMemoryStorefront) ListOrders(_ context.Context, creds types.Credentials) ([]*order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.failure("ListOrders"); err != nil {
		return nil, err
	}
	if _, err := s.user(creds); err != nil {
		return nil, err
	}
	return append([]*order.Order(nil), s.orders[creds.AccessToken]...), nil
}

func (s *InMemoryStorefront) GetUser(_ context.Context, creds types.Credentials) (*account.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.failure("GetUser"); err != nil {
		return nil, err
	}
	user, err := s.user(creds)
	if err != nil {
		return nil, err
	}
	copied := *user
	return &copied, nil
}

func (s *InMemoryStorefront) VerifyAccount(_ context.Context, creds types.Credentials, email, password string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.failure("VerifyAccount"); err != nil {
		return err
	}
	user, err := s.user(creds)
	if err != nil {
		return err
	}
	if user.Email != email || s.passwords[creds.AccessToken] != password {
		return ierr.NewError("credentials do not match").
			WithHint("Email or password is incorrect").
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (s *InMemoryStorefront) UpdateEmail(_ context.Context, creds types.Credentials, newEmail string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("UpdateEmail"); err != nil {
		return err
	}
	user, err := s.user(creds)
	if err != nil {
		return err
	}
	user.Email = newEmail
	return nil
}

func (s *InMemoryStorefront) UpdatePassword(_ context.Context, creds types.Credentials, newPassword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("UpdatePassword"); err != nil {
		return err
	}
	if _, err := s.user(creds); err != nil {
		return err
	}
	s.passwords[creds.AccessToken] = newPassword
	return nil
}

func (s *InMemoryStorefront) ForgetPassword(_ context.Context, _ types.Credentials, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("ForgetPassword"); err != nil {
		return err
	}
	s.resetEmails = append(s.resetEmails, email)
	return nil
}

func (s *InMemoryStorefront) UpdateDetails(_ context.Context, creds types.Credentials, update *account.DetailsUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("UpdateDetails"); err != nil {
		return err
	}
	user, err := s.user(creds)
	if err != nil {
		return err
	}
	s.detailUpdates = append(s.detailUpdates, update)
	for i, field := range update.Fields {
		value := update.Values[i]
		switch field {
		case "name":
			user.Name = value.(string)
		case "gender":
			user.Gender = value.(string)
		case "about":
			user.About = value.(string)
		case "avatar_uri":
			user.AvatarURI = value.(string)
		case "birthday":
			user.Birthday = value.(string)
		case "age":
			user.Age = value.(int)
		}
	}
	return nil
}


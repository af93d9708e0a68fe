package service

import (
	"context"
	"fmt"

	"bistro-boss/boss-svc/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MenuService struct {
	repo MenuRepository
}

func NewMenuService(repo MenuRepository) *MenuService {
	return &MenuService{repo: repo}
}

func (s *MenuService) List(ctx context.Context) ([]domain.MenuItem, error) {
	return s.repo.ListMenu(ctx)
}

// Get returns nil without an error for an unknown id.
func (s *MenuService) Get(ctx context.Context, id string) (*domain.MenuItem, error) {
	oid, err := domain.ParseID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetMenuItem(ctx, oid)
}

func (s *MenuService) Create(ctx context.Context, item *domain.MenuItem) (domain.InsertResult, error) {
	item.ID = primitive.NilObjectID
	return s.repo.CreateMenuItem(ctx, item)
}

func (s *MenuService) Update(ctx context.Context, id string, update domain.MenuUpdate) (domain.UpdateResult, error) {
	oid, err := domain.ParseID(id)
	if err != nil {
		return domain.UpdateResult{}, err
	}
	return s.repo.UpdateMenuItem(ctx, oid, update)
}

func (s *MenuService) Delete(ctx context.Context, id string) (domain.DeleteResult, error) {
	oid, err := domain.ParseID(id)
	if err != nil {
		return domain.DeleteResult{}, err
	}
	return s.repo.DeleteMenuItem(ctx, oid)
}

var _ MenuServiceInterface = (*MenuService)(nil)

type CartService struct {
	carts    CartRepository
	accounts AccountRepository
}

func NewCartService(carts CartRepository, accounts AccountRepository) *CartService {
	return &CartService{carts: carts, accounts: accounts}
}

func (s *CartService) List(ctx context.Context, email string) ([]domain.CartItem, error) {
	return s.carts.ListCartItems(ctx, email)
}

// Add stores the item under the caller's email. A body naming another owner
// is refused, and the caller must have an account.
func (s *CartService) Add(ctx context.Context, callerEmail string, item *domain.CartItem) (domain.InsertResult, error) {
	if item.UserEmail != "" && item.UserEmail != callerEmail {
		return domain.InsertResult{}, fmt.Errorf("%w: cart owner does not match token", domain.ErrAuthorization)
	}

	account, err := s.accounts.FindAccountByEmail(ctx, callerEmail)
	if err != nil {
		return domain.InsertResult{}, err
	}
	if account == nil {
		return domain.InsertResult{}, fmt.Errorf("%w: no account for %s", domain.ErrValidation, callerEmail)
	}

	item.ID = primitive.NilObjectID
	item.UserEmail = callerEmail
	return s.carts.CreateCartItem(ctx, item)
}

func (s *CartService) Remove(ctx context.Context, callerEmail, id string) (domain.DeleteResult, error) {
	oid, err := domain.ParseID(id)
	if err != nil {
		return domain.DeleteResult{}, err
	}
	return s.carts.DeleteCartItem(ctx, oid, callerEmail)
}

var _ CartServiceInterface = (*CartService)(nil)

type ReviewService struct {
	repo ReviewRepository
}

func NewReviewService(repo ReviewRepository) *ReviewService {
	return &ReviewService{repo: repo}
}

func (s *ReviewService) List(ctx context.Context) ([]domain.Review, error) {
	return s.repo.ListReviews(ctx)
}

var _ ReviewServiceInterface = (*ReviewService)(nil)

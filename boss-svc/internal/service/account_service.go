package service

import (
	"context"
	"fmt"
	"strings"

	"bistro-boss/boss-svc/internal/auth"
	"bistro-boss/boss-svc/internal/domain"
)

const accountExistsMessage = "user already exist"

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Photo    string `json:"photo"`
	Password string `json:"password"`
}

type AccountService struct {
	repo     AccountRepository
	tokens   TokenIssuer
	throttle LoginThrottle
}

func NewAccountService(repo AccountRepository, tokens TokenIssuer, throttle LoginThrottle) *AccountService {
	return &AccountService{repo: repo, tokens: tokens, throttle: throttle}
}

func (s *AccountService) List(ctx context.Context) ([]domain.Account, error) {
	return s.repo.ListAccounts(ctx)
}

func (s *AccountService) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return s.repo.FindAccountByEmail(ctx, email)
}

func (s *AccountService) IsAdmin(ctx context.Context, email string) (bool, error) {
	account, err := s.repo.FindAccountByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return account.IsAdmin(), nil
}

// Register inserts the account unless one already exists for the email.
// New accounts always start as customers.
func (s *AccountService) Register(ctx context.Context, req RegisterRequest) (domain.InsertResult, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return domain.InsertResult{}, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}

	existing, err := s.repo.FindAccountByEmail(ctx, email)
	if err != nil {
		return domain.InsertResult{}, err
	}
	if existing != nil {
		return domain.InsertResult{Message: accountExistsMessage}, nil
	}

	account := &domain.Account{
		Name:  req.Name,
		Email: email,
		Photo: req.Photo,
		Role:  domain.RoleCustomer,
	}
	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return domain.InsertResult{}, err
		}
		account.PasswordHash = hash
	}

	result, created, err := s.repo.CreateAccount(ctx, account)
	if err != nil {
		return domain.InsertResult{}, err
	}
	if !created {
		return domain.InsertResult{Message: accountExistsMessage}, nil
	}
	return result, nil
}

// Promote elevates the account to Admin. The role is fixed; nothing in the
// request body can choose it.
func (s *AccountService) Promote(ctx context.Context, id string) (domain.UpdateResult, error) {
	oid, err := domain.ParseID(id)
	if err != nil {
		return domain.UpdateResult{}, err
	}
	return s.repo.SetAccountRole(ctx, oid, domain.RoleAdmin)
}

func (s *AccountService) Delete(ctx context.Context, id string) (domain.DeleteResult, error) {
	oid, err := domain.ParseID(id)
	if err != nil {
		return domain.DeleteResult{}, err
	}
	return s.repo.DeleteAccount(ctx, oid)
}

// Login checks the password and issues a token carrying the account email.
// Repeated failures lock the email out for a growing cooldown.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", fmt.Errorf("%w: email and password are required", domain.ErrValidation)
	}

	wait, err := s.throttle.WaitSeconds(ctx, email)
	if err != nil {
		return "", err
	}
	if wait > 0 {
		return "", fmt.Errorf("%w: try again in %d seconds", domain.ErrTooManyAttempts, wait)
	}

	account, err := s.repo.FindAccountByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if account == nil || !auth.CheckPassword(account.PasswordHash, password) {
		if err := s.throttle.RecordFailure(ctx, email); err != nil {
			return "", err
		}
		return "", fmt.Errorf("%w: wrong email or password", domain.ErrAuthentication)
	}

	if err := s.throttle.RecordSuccess(ctx, email); err != nil {
		return "", err
	}
	return s.tokens.Issue(map[string]any{"email": account.Email})
}

var _ AccountServiceInterface = (*AccountService)(nil)
var _ auth.AccountFinder = (*AccountService)(nil)

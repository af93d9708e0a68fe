package auth

import (
	"context"
	"fmt"
	"net/http"

	"bistro-boss/boss-svc/internal/domain"
)

// Gate inspects a request before it reaches a handler. It returns the
// request to hand to the next stage, or an error that ends the pipeline.
type Gate func(r *http.Request) (*http.Request, error)

type TokenVerifier interface {
	Verify(raw string) (Claims, error)
}

type AccountFinder interface {
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
}

type claimsKey struct{}

func WithClaims(ctx context.Context, claims Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

func ClaimsFrom(ctx context.Context) (Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(Claims)
	return claims, ok
}

// CallerEmail is the email claim of the verified caller, empty when the
// request never passed VerifyToken.
func CallerEmail(ctx context.Context) string {
	claims, _ := ClaimsFrom(ctx)
	return claims.Email()
}

func VerifyToken(verifier TokenVerifier) Gate {
	return func(r *http.Request) (*http.Request, error) {
		header := r.Header.Get("Authorization")
		if header == "" {
			return nil, domain.ErrAuthentication
		}
		raw, err := BearerToken(header)
		if err != nil {
			return nil, err
		}
		claims, err := verifier.Verify(raw)
		if err != nil {
			return nil, err
		}
		return r.WithContext(WithClaims(r.Context(), claims)), nil
	}
}

// RequireAdmin must follow VerifyToken. A missing account and a non-admin
// account are rejected the same way.
func RequireAdmin(accounts AccountFinder) Gate {
	return func(r *http.Request) (*http.Request, error) {
		claims, ok := ClaimsFrom(r.Context())
		if !ok {
			return nil, domain.ErrAuthentication
		}
		account, err := accounts.FindByEmail(r.Context(), claims.Email())
		if err != nil {
			return nil, fmt.Errorf("load caller account: %w", err)
		}
		if !account.IsAdmin() {
			return nil, domain.ErrAuthorization
		}
		return r, nil
	}
}

// Run applies gates in order and stops at the first failure.
func Run(r *http.Request, gates ...Gate) (*http.Request, error) {
	for _, gate := range gates {
		next, err := gate(r)
		if err != nil {
			return nil, err
		}
		r = next
	}
	return r, nil
}

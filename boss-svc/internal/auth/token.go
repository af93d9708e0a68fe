package auth

import (
	"fmt"
	"strings"
	"time"

	"bistro-boss/boss-svc/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the decoded claim set of a verified token.
type Claims map[string]any

func (c Claims) Email() string {
	email, _ := c["email"].(string)
	return email
}

// Issuer signs whatever claims it is handed. It does not check that the
// caller owns the identity inside them.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	Clock  func() time.Time
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl, Clock: time.Now}
}

func (i *Issuer) Issue(claims map[string]any) (string, error) {
	now := i.Clock()

	mapClaims := jwt.MapClaims{}
	for k, v := range claims {
		mapClaims[k] = v
	}
	mapClaims["iat"] = now.Unix()
	mapClaims["exp"] = now.Add(i.ttl).Unix()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

type Verifier struct {
	secret []byte
	Clock  func() time.Time
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret), Clock: time.Now}
}

func (v *Verifier) Verify(raw string) (Claims, error) {
	token, err := jwt.ParseWithClaims(raw, jwt.MapClaims{},
		func(*jwt.Token) (any, error) { return v.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.Clock),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAuthentication, err)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, domain.ErrAuthentication
	}
	return Claims(mapClaims), nil
}

// BearerToken returns the second whitespace-delimited segment of an
// Authorization header value.
func BearerToken(header string) (string, error) {
	parts := strings.Fields(header)
	if len(parts) < 2 {
		return "", domain.ErrAuthentication
	}
	return parts[1], nil
}

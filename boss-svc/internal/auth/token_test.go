package auth

import (
	"testing"
	"time"

	"bistro-boss/boss-svc/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestIssuer_IssueSetsOneHourExpiry(t *testing.T) {
	issuedAt := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
	issuer := NewIssuer("secret", time.Hour)
	issuer.Clock = fixedClock(issuedAt)

	token, err := issuer.Issue(map[string]any{"email": "a@b.c", "exp": 1})
	require.NoError(t, err)

	verifier := NewVerifier("secret")
	verifier.Clock = fixedClock(issuedAt.Add(59 * time.Minute))
	claims, err := verifier.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, "a@b.c", claims.Email())
	assert.Equal(t, float64(issuedAt.Unix()), claims["iat"])
	assert.Equal(t, float64(issuedAt.Add(time.Hour).Unix()), claims["exp"])
}

func TestVerifier_Verify(t *testing.T) {
	issuedAt := time.Date(2026, 1, 2, 15, 0, 0, 0, time.UTC)
	issuer := NewIssuer("secret", time.Hour)
	issuer.Clock = fixedClock(issuedAt)
	token, err := issuer.Issue(map[string]any{"email": "a@b.c"})
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"email": "a@b.c",
		"exp":   issuedAt.Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"email": "a@b.c"}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name    string
		secret  string
		token   string
		at      time.Time
		wantErr bool
	}{
		{name: "valid", secret: "secret", token: token, at: issuedAt.Add(30 * time.Minute)},
		{name: "expired after one hour", secret: "secret", token: token, at: issuedAt.Add(61 * time.Minute), wantErr: true},
		{name: "wrong secret", secret: "other", token: token, at: issuedAt, wantErr: true},
		{name: "garbage", secret: "secret", token: "not.a.token", at: issuedAt, wantErr: true},
		{name: "unsigned token", secret: "secret", token: noneToken, at: issuedAt, wantErr: true},
		{name: "no expiry claim", secret: "secret", token: noExpiry, at: issuedAt, wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			verifier := NewVerifier(testCase.secret)
			verifier.Clock = fixedClock(testCase.at)

			claims, err := verifier.Verify(testCase.token)
			if testCase.wantErr {
				assert.ErrorIs(t, err, domain.ErrAuthentication)
				assert.Nil(t, claims)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "a@b.c", claims.Email())
		})
	}
}

func TestBearerToken(t *testing.T) {
	token, err := BearerToken("Bearer abc.def.ghi")
	assert.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = BearerToken("Bearer")
	assert.ErrorIs(t, err, domain.ErrAuthentication)
}

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)

	assert.True(t, CheckPassword(hash, "s3cret!"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword("", "s3cret!"))
}

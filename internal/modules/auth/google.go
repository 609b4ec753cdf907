package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/MicahParks/keyfunc/v3"
	jwtlib "github.com/golang-jwt/jwt/v5"
)

var googleIssuers = map[string]bool{
	"accounts.google.com":         true,
	"https://accounts.google.com": true,
}

type googleClaims struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
	jwtlib.RegisteredClaims
}

// JWKSVerifier checks Google ID tokens against Google's published signing keys.
type JWKSVerifier struct {
	clientID string
	keys     keyfunc.Keyfunc
	now      func() time.Time
}

// NewGoogleVerifier fetches the key set once and keeps it refreshed in the
// background until ctx is cancelled.
func NewGoogleVerifier(ctx context.Context, clientID, jwksURL string) (*JWKSVerifier, error) {
	keys, err := keyfunc.NewDefaultCtx(ctx, []string{jwksURL})
	if err != nil {
		return nil, fmt.Errorf("load google jwks: %w", err)
	}
	return newJWKSVerifier(clientID, keys), nil
}

func newJWKSVerifier(clientID string, keys keyfunc.Keyfunc) *JWKSVerifier {
	return &JWKSVerifier{clientID: clientID, keys: keys, now: time.Now}
}

func (v *JWKSVerifier) Verify(ctx context.Context, idToken string) (*GoogleIdentity, error) {
	claims := &googleClaims{}
	token, err := jwtlib.ParseWithClaims(idToken, claims, v.keys.KeyfuncCtx(ctx),
		jwtlib.WithValidMethods([]string{"RS256"}),
		jwtlib.WithAudience(v.clientID),
		jwtlib.WithExpirationRequired(),
		jwtlib.WithTimeFunc(v.now),
	)
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGoogleToken, err)
	}
	if !googleIssuers[claims.Issuer] {
		return nil, fmt.Errorf("%w: unexpected issuer %q", ErrInvalidGoogleToken, claims.Issuer)
	}
	if claims.Subject == "" || claims.Email == "" || !claims.EmailVerified {
		return nil, fmt.Errorf("%w: missing subject or verified email", ErrInvalidGoogleToken)
	}

	return &GoogleIdentity{
		Subject: claims.Subject,
		Email:   claims.Email,
		Name:    claims.Name,
		Picture: claims.Picture,
	}, nil
}

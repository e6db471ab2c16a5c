package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNoKeyConfigured = errors.New("no verification key configured for token algorithm")
	ErrMissingSubject  = errors.New("token has no subject")
	ErrSubjectTooLong  = errors.New("token subject is too long")
)

// MaxSubjectLength matches the user_id column width.
const MaxSubjectLength = 64

// Claims is the identity extracted from a verified bearer token.
type Claims struct {
	UserID string
	Name   string
}

// Verifier checks HS256 tokens against a shared secret and RS256 tokens
// against a JWKS provider. Either may be left unset.
type Verifier struct {
	secret []byte
	jwks   *Provider
}

func NewVerifier(secret string, jwks *Provider) *Verifier {
	v := &Verifier{jwks: jwks}
	if secret != "" {
		v.secret = []byte(secret)
	}
	return v
}

func (v *Verifier) keyFunc(token *jwt.Token) (interface{}, error) {
	switch token.Method.(type) {
	case *jwt.SigningMethodHMAC:
		if v.secret == nil {
			return nil, fmt.Errorf("%w: %s", ErrNoKeyConfigured, token.Method.Alg())
		}
		return v.secret, nil
	case *jwt.SigningMethodRSA:
		if v.jwks == nil {
			return nil, fmt.Errorf("%w: %s", ErrNoKeyConfigured, token.Method.Alg())
		}
		return v.jwks.KeyFunc(token)
	}
	return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
}

// Verify parses tokenString and returns the caller identity. The user id is
// read from "sub", falling back to "id" and "userId".
func (v *Verifier) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, v.keyFunc, jwt.WithValidMethods([]string{"HS256", "HS384", "HS512", "RS256"}))
	if err != nil {
		return nil, err
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	claims := &Claims{
		UserID: firstString(mc, "sub", "id", "userId"),
		Name:   firstString(mc, "name", "fullName"),
	}
	if claims.UserID == "" {
		return nil, ErrMissingSubject
	}
	if len(claims.UserID) > MaxSubjectLength {
		return nil, ErrSubjectTooLong
	}
	return claims, nil
}

func firstString(mc jwt.MapClaims, keys ...string) string {
	for _, k := range keys {
		if s, ok := mc[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// SignHS256 issues a token for userID. Used by the seed tooling and tests.
func SignHS256(secret, userID, name string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	if name != "" {
		claims["name"] = name
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

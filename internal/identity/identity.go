// Package identity adapts the external identity provider to the rest of the
// application. The provider issues HS256-signed session JWTs; this package
// verifies them, extracts the caller's profile into a Principal, and derives
// the display name stored alongside feedback and responses.
//
// The backend never creates or refreshes sessions. A token that fails
// verification is treated exactly like an absent one: the caller is
// anonymous, and route middleware decides whether that is fatal.
package identity

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a presented session token cannot be
// verified (bad signature, wrong algorithm, expired, or wrong issuer).
var ErrInvalidToken = errors.New("invalid session token")

// Principal is the identity snapshot extracted from a verified session token.
// Fields beyond ID may be empty when the provider did not populate the claim.
type Principal struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
	Username  string
}

// sessionClaims mirrors the profile claims the identity provider embeds in
// its session tokens.
type sessionClaims struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	jwt.RegisteredClaims
}

// Verifier validates session tokens against a shared HS256 secret and an
// optional expected issuer. The zero value is unusable; construct with
// NewVerifier.
type Verifier struct {
	secret []byte
	issuer string
}

// NewVerifier returns a Verifier for the given shared secret. When issuer is
// non-empty, tokens must carry a matching iss claim.
func NewVerifier(secret, issuer string) *Verifier {
	return &Verifier{secret: []byte(secret), issuer: issuer}
}

// Verify parses and validates a raw session token and returns the Principal
// it identifies. Any failure (malformed token, bad signature, non-HMAC
// algorithm, expiry, issuer mismatch, missing subject) yields ErrInvalidToken;
// the underlying cause is deliberately not exposed to callers.
func (v *Verifier) Verify(raw string) (*Principal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || len(v.secret) == 0 {
		return nil, ErrInvalidToken
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"HS256"})}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	var claims sessionClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return nil, ErrInvalidToken
	}

	return &Principal{
		ID:        claims.Subject,
		Email:     claims.Email,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
		Username:  claims.Username,
	}, nil
}

// DisplayName derives the name stored with feedback rows from a Principal.
//
// Priority order:
//  1. "First Last" when both name fields are present
//  2. the provider username
//  3. the local part of the email address
//
// Fallbacks are stored verbatim; an empty principal yields "unknown".
func DisplayName(p *Principal) string {
	if p == nil {
		return "unknown"
	}
	first := strings.TrimSpace(p.FirstName)
	last := strings.TrimSpace(p.LastName)
	if first != "" && last != "" {
		return first + " " + last
	}
	if u := strings.TrimSpace(p.Username); u != "" {
		return u
	}
	if local := emailLocalPart(p.Email); local != "" {
		return local
	}
	return "unknown"
}

// EmailOrDefault returns the principal's email, or a placeholder address when
// the provider supplied none. Feedback rows require a non-null author email.
func EmailOrDefault(p *Principal) string {
	if p != nil {
		if e := strings.TrimSpace(p.Email); e != "" {
			return e
		}
	}
	return "unknown@example.com"
}

// emailLocalPart returns the part of an address before '@', or "".
func emailLocalPart(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}
	if i := strings.IndexByte(email, '@'); i > 0 {
		return email[:i]
	}
	return email
}

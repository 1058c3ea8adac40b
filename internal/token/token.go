package token

import (
	"encoding/base64"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenIssuer = "SAI_PRAVEEN"
	tokenID     = "A5266"
	tokenTTL    = 10 * time.Minute
)

var ErrInvalidToken = errors.New("token is malformed or its signature is invalid")

// Issuer creates and validates signed bearer credentials. Tokens are
// HS256-signed, carry a fixed issuer and token id, and expire ten
// minutes after issuance. Validity is stateless: signature plus expiry,
// nothing is persisted.
type Issuer struct {
	key []byte
	now func() time.Time
}

// NewIssuer builds an Issuer from the server secret. The signing key is
// the base64 encoding of the secret bytes, matching what existing
// clients were issued against.
func NewIssuer(secret string) *Issuer {
	key := make([]byte, base64.StdEncoding.EncodedLen(len(secret)))
	base64.StdEncoding.Encode(key, []byte(secret))
	return &Issuer{
		key: key,
		now: time.Now,
	}
}

// NewIssuerWithClock builds an Issuer whose notion of the current time
// comes from the given function. Lets callers sign or check tokens at
// a chosen moment.
func NewIssuerWithClock(secret string, now func() time.Time) *Issuer {
	i := NewIssuer(secret)
	i.now = now
	return i
}

// Generate issues a signed token for the given subject.
func (i *Issuer) Generate(subject string) (string, error) {
	now := i.now()
	claims := jwt.RegisteredClaims{
		ID:        tokenID,
		Subject:   subject,
		Issuer:    tokenIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.key)
}

// Claims verifies the token signature and returns the embedded claims.
// Expiry is deliberately not checked here so that IsExpired and
// Validate stay observable on their own.
func (i *Issuer) Claims(tokenString string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, i.keyFunc, jwt.WithoutClaimsValidation())
	if err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Subject returns the subject embedded in a verified token.
func (i *Issuer) Subject(tokenString string) (string, error) {
	claims, err := i.Claims(tokenString)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// IsExpired reports whether the current time is at or past the token's
// embedded expiry.
func (i *Issuer) IsExpired(tokenString string) (bool, error) {
	claims, err := i.Claims(tokenString)
	if err != nil {
		return false, err
	}
	if claims.ExpiresAt == nil {
		return true, nil
	}
	return !i.now().Before(claims.ExpiresAt.Time), nil
}

// Validate reports whether the token belongs to the expected subject
// and has not expired. A malformed token surfaces as an error, not as
// a false result; callers decide what that means for the request.
func (i *Issuer) Validate(tokenString, expectedSubject string) (bool, error) {
	claims, err := i.Claims(tokenString)
	if err != nil {
		return false, err
	}
	expired := claims.ExpiresAt == nil || !i.now().Before(claims.ExpiresAt.Time)
	return claims.Subject == expectedSubject && !expired, nil
}

func (i *Issuer) keyFunc(t *jwt.Token) (interface{}, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, ErrInvalidToken
	}
	return i.key, nil
}

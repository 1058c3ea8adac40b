package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIssuer_GenerateAndClaims(t *testing.T) {
	issuer := NewIssuer("test-secret")

	signed, err := issuer.Generate("praveen")
	assert.NoError(t, err)
	assert.NotEmpty(t, signed)

	claims, err := issuer.Claims(signed)
	assert.NoError(t, err)
	assert.Equal(t, "praveen", claims.Subject)
	assert.Equal(t, "SAI_PRAVEEN", claims.Issuer)
	assert.Equal(t, "A5266", claims.ID)
	assert.WithinDuration(t, claims.IssuedAt.Time.Add(10*time.Minute), claims.ExpiresAt.Time, time.Second)
}

func TestIssuer_Subject(t *testing.T) {
	issuer := NewIssuer("test-secret")

	signed, err := issuer.Generate("admin")
	assert.NoError(t, err)

	subject, err := issuer.Subject(signed)
	assert.NoError(t, err)
	assert.Equal(t, "admin", subject)
}

func TestIssuer_MalformedToken(t *testing.T) {
	issuer := NewIssuer("test-secret")

	_, err := issuer.Claims("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = issuer.Subject("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = issuer.Validate("not-a-token", "praveen")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssuer_WrongSecret(t *testing.T) {
	issuer := NewIssuer("test-secret")
	other := NewIssuer("other-secret")

	signed, err := issuer.Generate("praveen")
	assert.NoError(t, err)

	_, err = other.Claims(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssuer_IsExpired(t *testing.T) {
	issuer := NewIssuer("test-secret")

	signed, err := issuer.Generate("praveen")
	assert.NoError(t, err)

	expired, err := issuer.IsExpired(signed)
	assert.NoError(t, err)
	assert.False(t, expired)

	// Move the clock past the ten minute lifetime.
	issuer.now = func() time.Time { return time.Now().Add(11 * time.Minute) }

	expired, err = issuer.IsExpired(signed)
	assert.NoError(t, err)
	assert.True(t, expired)
}

func TestNewIssuerWithClock(t *testing.T) {
	// A token signed eleven minutes in the past is already expired for
	// an issuer running on the real clock.
	past := NewIssuerWithClock("test-secret", func() time.Time {
		return time.Now().Add(-11 * time.Minute)
	})

	signed, err := past.Generate("praveen")
	assert.NoError(t, err)

	expired, err := NewIssuer("test-secret").IsExpired(signed)
	assert.NoError(t, err)
	assert.True(t, expired)
}

func TestIssuer_Validate(t *testing.T) {
	issuer := NewIssuer("test-secret")

	signed, err := issuer.Generate("praveen")
	assert.NoError(t, err)

	valid, err := issuer.Validate(signed, "praveen")
	assert.NoError(t, err)
	assert.True(t, valid)

	valid, err = issuer.Validate(signed, "someone-else")
	assert.NoError(t, err)
	assert.False(t, valid)

	// An expired token fails validation even for the right subject.
	issuer.now = func() time.Time { return time.Now().Add(11 * time.Minute) }
	valid, err = issuer.Validate(signed, "praveen")
	assert.NoError(t, err)
	assert.False(t, valid)
}

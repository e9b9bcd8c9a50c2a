package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"munsemsem/internal/common"
	"munsemsem/internal/models"
)

func testAuthor() *models.Author {
	return &models.Author{
		AuthorID:  "author-123",
		Firstname: "Kofi",
		Lastname:  "Mensah",
		Email:     "kofi@example.com",
	}
}

func TestCodec_IssueVerify_RoundTrip(t *testing.T) {
	codec := NewCodec("test-secret-key")

	tokenString, err := codec.Issue(testAuthor(), time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := codec.Verify(tokenString)
	require.NoError(t, err)

	assert.Equal(t, "author-123", claims.AuthorID)
	assert.Equal(t, "Kofi", claims.Firstname)
	assert.Equal(t, "Mensah", claims.Lastname)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestCodec_Verify_Expired(t *testing.T) {
	codec := NewCodec("test-secret-key")

	tokenString, err := codec.Issue(testAuthor(), -time.Minute)
	require.NoError(t, err)

	claims, err := codec.Verify(tokenString)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
	// expired must be distinguishable for logging only
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestCodec_Verify_WrongKey(t *testing.T) {
	codec := NewCodec("test-secret-key")
	other := NewCodec("another-secret-key")

	tokenString, err := codec.Issue(testAuthor(), time.Hour)
	require.NoError(t, err)

	claims, err := other.Verify(tokenString)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestCodec_Verify_Garbage(t *testing.T) {
	codec := NewCodec("test-secret-key")

	claims, err := codec.Verify("not-a-token")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestCodec_Verify_WrongAlgorithm(t *testing.T) {
	codec := NewCodec("test-secret-key")

	// unsigned token must be rejected by the keyfunc
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{AuthorID: "author-123"})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	claims, err := codec.Verify(tokenString)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestCodec_Verify_ErrorsIndistinguishable(t *testing.T) {
	codec := NewCodec("test-secret-key")

	expired, err := codec.Issue(testAuthor(), -time.Minute)
	require.NoError(t, err)
	tampered, err := NewCodec("another-secret-key").Issue(testAuthor(), time.Hour)
	require.NoError(t, err)

	_, errExpired := codec.Verify(expired)
	_, errTampered := codec.Verify(tampered)

	assert.True(t, errors.Is(errExpired, common.ErrInvalidToken))
	assert.True(t, errors.Is(errTampered, common.ErrInvalidToken))
}

package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"munsemsem/internal/common"
	"munsemsem/internal/models"
)

// Claims carried inside the signed token. The token is the only place
// identity lives between requests; nothing is stored server-side.
type Claims struct {
	jwt.RegisteredClaims
	AuthorID  string `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

type Codec struct {
	secretKey []byte
}

func NewCodec(secretKey string) *Codec {
	return &Codec{secretKey: []byte(secretKey)}
}

func (c *Codec) Issue(author *models.Author, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		AuthorID:  author.AuthorID,
		Firstname: author.Firstname,
		Lastname:  author.Lastname,
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secretKey)
	if err != nil {
		return "", fmt.Errorf("could not sign token: %w", err)
	}

	return tokenString, nil
}

// Verify decodes and checks a token string. Expired and tampered
// tokens both come back as common.ErrInvalidToken so callers cannot
// tell the cases apart; the wrapped cause stays available for logging.
func (c *Codec) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
	}

	if !parsed.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}

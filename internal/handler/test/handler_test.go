package test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"munsemsem/internal/config"
	handlers "munsemsem/internal/handler"
	"munsemsem/internal/middleware"
	"munsemsem/internal/token"
)

func createTestHandler(authService *MockAuthService, blogService *MockBlogService) *handlers.Handlers {
	cfg := &config.Config{
		JWTSecretKey:  "test-secret-key",
		ServerPort:    8000,
		MaxUploadSize: 10 * 1024 * 1024,
	}

	return &handlers.Handlers{
		AuthService: authService,
		BlogService: blogService,
		Cfg:         cfg,
		Validate:    validator.New(),
	}
}

// withClaims puts an authenticated identity on the context the way
// the auth gate does.
func withClaims(ctx context.Context, authorID string) context.Context {
	claims := &token.Claims{AuthorID: authorID, Firstname: "Kofi", Lastname: "Mensah"}
	return context.WithValue(ctx, middleware.ClaimsKey, claims)
}

// assertErrorResponse checks the shared {errors:[{msg}]} shape.
func assertErrorResponse(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response struct {
		Errors []struct {
			Msg string `json:"msg"`
		} `json:"errors"`
	}
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	require.NoError(t, err)
	require.NotEmpty(t, response.Errors)
	assert.Contains(t, response.Errors[0].Msg, expectedMsg)
}

package http_test

import (
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "foodorder/internal/adapters/in/http"
	"foodorder/internal/core/domain/model/kernel"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	require.NoError(t, err)
	return signed
}

func callWithAuth(t *testing.T, header string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.GET("/probe", func(ctx echo.Context) error {
		return ctx.NoContent(nethttp.StatusOK)
	}, httpadapter.NewAuthMiddleware(testSecret))

	req := httptest.NewRequest(nethttp.MethodGet, "/probe", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":  kernel.NewUUID().String(),
		"role": "Customer",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	rec := callWithAuth(t, "Bearer "+token)

	assert.Equal(t, nethttp.StatusOK, rec.Code)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	rec := callWithAuth(t, "")

	assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	rec := callWithAuth(t, "Basic dXNlcjpwYXNz")

	assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	token := signToken(t, []byte("other-secret"), jwt.MapClaims{
		"sub":  kernel.NewUUID().String(),
		"role": "Customer",
	})

	rec := callWithAuth(t, "Bearer "+token)

	assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":  kernel.NewUUID().String(),
		"role": "Customer",
		"exp":  time.Now().Add(-time.Hour).Unix(),
	})

	rec := callWithAuth(t, "Bearer "+token)

	assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_UnknownRole(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":  kernel.NewUUID().String(),
		"role": "Superuser",
	})

	rec := callWithAuth(t, "Bearer "+token)

	assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_MissingSubject(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"role": "Customer",
	})

	rec := callWithAuth(t, "Bearer "+token)

	assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)
}

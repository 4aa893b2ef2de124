package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"enplan/internal/domain/service"
	mockSvc "enplan/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAuthenticate(t *testing.T, tokenSvc service.TokenService, authHeader string) (*httptest.ResponseRecorder, echo.Context, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/read", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewAuthMiddleware(tokenSvc)
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	err := m.Authenticate(next)(c)

	return rec, c, err
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	claims := &service.Claims{AccountID: 1, Username: "alice"}
	tokenSvc.EXPECT().Validate("good_token").Return(claims, nil)

	rec, c, err := runAuthenticate(t, tokenSvc, "Bearer good_token")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	gotClaims, ok := ClaimsFromContext(c)
	require.True(t, ok)
	assert.Equal(t, int64(1), gotClaims.AccountID)
	assert.Equal(t, "good_token", TokenFromContext(c))
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	rec, _, err := runAuthenticate(t, tokenSvc, "")

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_AUTHENTICATED")
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	rec, _, err := runAuthenticate(t, tokenSvc, "Basic dXNlcjpwYXNz")

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_AUTHENTICATED")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().
		Validate("bad_token").
		Return(nil, errors.Wrap(service.ErrInvalidToken, "token rejected"))

	rec, _, err := runAuthenticate(t, tokenSvc, "Bearer bad_token")

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_AUTHENTICATED")
}

func TestAuthMiddleware_LowercaseBearerScheme(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	claims := &service.Claims{AccountID: 2, Username: "bob"}
	tokenSvc.EXPECT().Validate("good_token").Return(claims, nil)

	rec, _, err := runAuthenticate(t, tokenSvc, "bearer good_token")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

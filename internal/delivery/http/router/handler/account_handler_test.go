package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"enplan/internal/delivery/http/middleware"
	"enplan/internal/delivery/http/validator"
	"enplan/internal/domain/entity"
	"enplan/internal/domain/service"
	"enplan/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAccountUsecase is a canned-response implementation of AccountUsecase.
type stubAccountUsecase struct {
	authOut   *usecase.AuthOutput
	authErr   error
	readOut   *entity.Projection
	readErr   error
	deleteOut *usecase.DeleteOutput
	deleteErr error

	gotRegister *usecase.RegisterInput
	gotToken    string
}

func (s *stubAccountUsecase) Register(_ context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	s.gotRegister = input
	return s.authOut, s.authErr
}

func (s *stubAccountUsecase) Login(_ context.Context, _ *usecase.LoginInput) (*usecase.AuthOutput, error) {
	return s.authOut, s.authErr
}

func (s *stubAccountUsecase) Read(_ context.Context, _ *service.Claims) (*entity.Projection, error) {
	return s.readOut, s.readErr
}

func (s *stubAccountUsecase) Update(_ context.Context, _ *service.Claims, _ *usecase.UpdateInput) (*entity.Projection, error) {
	return s.readOut, s.readErr
}

func (s *stubAccountUsecase) Delete(_ context.Context, _ *service.Claims, token string) (*usecase.DeleteOutput, error) {
	s.gotToken = token
	return s.deleteOut, s.deleteErr
}

func newAccountTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAccountHandler_Register_Success(t *testing.T) {
	stub := &stubAccountUsecase{
		authOut: &usecase.AuthOutput{
			Account:     &entity.Projection{ID: 1, Username: "alice", Mail: "alice@example.com"},
			AccessToken: "signed_token",
			TokenType:   "bearer",
		},
	}
	h := NewAccountHandler(stub, discardLogger())

	c, rec := newAccountTestContext(http.MethodPost, "/users/auth/register",
		`{"username":"Alice","mail":"alice@example.com","password":"Password123!"}`)

	err := h.Register(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access_token":"signed_token"`)
	assert.Contains(t, rec.Body.String(), `"username":"alice"`)
	// The stored hash never crosses the wire.
	assert.NotContains(t, rec.Body.String(), "password")
	require.NotNil(t, stub.gotRegister)
	assert.Equal(t, "Alice", stub.gotRegister.Username)
}

func TestAccountHandler_Register_MissingFields(t *testing.T) {
	stub := &stubAccountUsecase{}
	h := NewAccountHandler(stub, discardLogger())

	c, rec := newAccountTestContext(http.MethodPost, "/users/auth/register",
		`{"username":"alice"}`)

	err := h.Register(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	assert.Nil(t, stub.gotRegister)
}

func TestAccountHandler_Read_Success(t *testing.T) {
	stub := &stubAccountUsecase{
		readOut: &entity.Projection{ID: 1, Username: "alice", Mail: "alice@example.com"},
	}
	h := NewAccountHandler(stub, discardLogger())

	c, rec := newAccountTestContext(http.MethodGet, "/users/read", "")
	c.Set(middleware.ContextKeyClaims, &service.Claims{AccountID: 1, Username: "alice"})

	err := h.Read(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"alice"`)
}

func TestAccountHandler_Read_NoClaims(t *testing.T) {
	stub := &stubAccountUsecase{}
	h := NewAccountHandler(stub, discardLogger())

	c, rec := newAccountTestContext(http.MethodGet, "/users/read", "")

	err := h.Read(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_AUTHENTICATED")
}

func TestAccountHandler_Delete_EchoesToken(t *testing.T) {
	stub := &stubAccountUsecase{
		deleteOut: &usecase.DeleteOutput{
			Account:   &entity.Projection{ID: 1, Username: "alice"},
			Token:     "the_bearer_token",
			TokenType: "bearer",
		},
	}
	h := NewAccountHandler(stub, discardLogger())

	c, rec := newAccountTestContext(http.MethodDelete, "/users/delete", "")
	c.Set(middleware.ContextKeyClaims, &service.Claims{AccountID: 1, Username: "alice"})
	c.Set(middleware.ContextKeyToken, "the_bearer_token")

	err := h.Delete(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"the_bearer_token"`)
	assert.Equal(t, "the_bearer_token", stub.gotToken)
}

func TestHealthCheck(t *testing.T) {
	c, rec := newAccountTestContext(http.MethodGet, "/health", "")

	err := HealthCheck(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"breakfast/internal/core/domain/model/kernel"
)

func TestTokenIssuer_IssueAndParse(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	accountID := kernel.NewUUID()
	now := time.Now()

	token, expiresAt, err := issuer.Issue(accountID, now)
	require.NoError(t, err)
	assert.WithinDuration(t, now.Add(time.Hour), expiresAt, time.Second)

	parsed, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, accountID, parsed)
}

func TestTokenIssuer_RejectsExpiredToken(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	token, _, err := issuer.Issue(kernel.NewUUID(), time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	_, err = issuer.Parse(token)
	require.Error(t, err)
}

func TestTokenIssuer_RejectsWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	other := NewTokenIssuer("other-secret", time.Hour)

	token, _, err := issuer.Issue(kernel.NewUUID(), time.Now())
	require.NoError(t, err)

	_, err = other.Parse(token)
	require.Error(t, err)
}

func TestRequireAuth_StoresAccountID(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	accountID := kernel.NewUUID()
	token, _, err := issuer.Issue(accountID, time.Now())
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	handler := RequireAuth(issuer)(func(ctx echo.Context) error {
		got, err := authenticatedAccount(ctx)
		require.NoError(t, err)
		assert.Equal(t, accountID, got)
		return ctx.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	called := false
	handler := RequireAuth(issuer)(func(ctx echo.Context) error {
		called = true
		return nil
	})

	require.NoError(t, handler(ctx))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	handler := RequireAuth(issuer)(func(ctx echo.Context) error {
		return ctx.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(ctx))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-token")
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	handler := RequireAuth(issuer)(func(ctx echo.Context) error {
		return ctx.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(ctx))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

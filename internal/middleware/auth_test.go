package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zainxyz/thriller/internal/utils"
)

const testSecret = "test-secret"

func runProtected(t *testing.T, authHeader string, mws ...echo.MiddlewareFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	h := func(c echo.Context) error { return c.String(http.StatusOK, "ok") }
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, h(c))
	return rec
}

func TestAuthMissingHeader(t *testing.T) {
	rec := runProtected(t, "", Auth(testSecret))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "bearer token must be provided")
}

func TestAuthBadScheme(t *testing.T) {
	rec := runProtected(t, "Token abc", Auth(testSecret))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid token")
}

func TestAuthBadToken(t *testing.T) {
	rec := runProtected(t, "Bearer not-a-token", Auth(testSecret))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthValidTokenPasses(t *testing.T) {
	raw, err := utils.NewAccessToken(testSecret, 42, false, 15)
	require.NoError(t, err)

	rec := runProtected(t, "Bearer "+raw, Auth(testSecret))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdminRejectsNonAdmin(t *testing.T) {
	raw, err := utils.NewAccessToken(testSecret, 42, false, 15)
	require.NoError(t, err)

	rec := runProtected(t, "Bearer "+raw, Auth(testSecret), RequireAdmin())
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "access denied")
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	raw, err := utils.NewAccessToken(testSecret, 42, true, 15)
	require.NoError(t, err)

	rec := runProtected(t, "Bearer "+raw, Auth(testSecret), RequireAdmin())
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPrincipalAbsentWithoutAuth(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := Principal(c)
	assert.False(t, ok)
}

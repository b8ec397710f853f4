package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/regiondist/catalog-backend/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuardedRouter(handlerCalled *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/admin/navbar-category", AdminAuthMiddleware(), func(c *gin.Context) {
		*handlerCalled = true
		c.JSON(http.StatusCreated, gin.H{"success": true})
	})
	return r
}

func TestAdminAuthRejectsMissingSession(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	called := false
	r := newGuardedRouter(&called)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/navbar-category", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called, "handler must not run without a session")
	assert.Contains(t, w.Body.String(), "Unauthorized")
}

func TestAdminAuthRejectsInvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	called := false
	r := newGuardedRouter(&called)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/navbar-category", nil)
	req.AddCookie(&http.Cookie{Name: utils.SessionCookieName, Value: "tampered"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called)
}

func TestAdminAuthAcceptsSessionCookie(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	called := false
	r := newGuardedRouter(&called)

	token, err := utils.MintSessionToken("admin-1", "admin@example.com")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/navbar-category", nil)
	req.AddCookie(&http.Cookie{Name: utils.SessionCookieName, Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, called)
}

func TestAdminAuthAcceptsBearerFallback(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	called := false
	r := newGuardedRouter(&called)

	token, err := utils.MintSessionToken("admin-1", "admin@example.com")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/navbar-category", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, called)
}

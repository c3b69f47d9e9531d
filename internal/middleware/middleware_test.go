package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traites/internal/authz"
)

var secret = []byte("test-secret")

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuthMiddleware(secret), ReadOnlyGuard("/plans/preview"))
	r.GET("/plans", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"role": c.GetInt("role_id")}) })
	r.POST("/plans", RequireRoles(authz.Planners...), func(c *gin.Context) { c.Status(http.StatusCreated) })
	r.POST("/plans/preview", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/plans/:id/mail", func(c *gin.Context) { c.Status(http.StatusAccepted) })
	r.GET("/swagger/index.html", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func do(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func token(t *testing.T, role int, ttl time.Duration) string {
	t.Helper()
	tok, err := NewToken(secret, 7, role, ttl)
	require.NoError(t, err)
	return tok
}

func TestAuthMiddleware(t *testing.T) {
	r := newRouter()

	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/plans", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/plans", "garbage").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/plans", token(t, authz.RoleTreasury, -time.Hour)).Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/swagger/index.html", "").Code)

	other, err := NewToken([]byte("other"), 1, authz.RoleAdmin, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/plans", other).Code)

	w := do(r, http.MethodGet, "/plans", token(t, authz.RoleAccounting, time.Hour))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"role":20}`, w.Body.String())
}

func TestRoleGuards(t *testing.T) {
	r := newRouter()

	assert.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/plans", token(t, authz.RoleTreasury, time.Hour)).Code)
	assert.Equal(t, http.StatusForbidden, do(r, http.MethodPost, "/plans", token(t, authz.RoleAccounting, time.Hour)).Code)

	audit := token(t, authz.RoleAudit, time.Hour)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/plans", audit).Code)
	w := do(r, http.MethodPost, "/plans", audit)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "read-only")

	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/plans/preview", audit).Code)
	assert.Equal(t, http.StatusForbidden, do(r, http.MethodPost, "/plans/42/mail", audit).Code)
}

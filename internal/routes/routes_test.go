package routes

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traites/internal/authz"
	"traites/internal/handlers"
	"traites/internal/layout"
	"traites/internal/middleware"
	"traites/internal/models"
	"traites/internal/pdf"
	"traites/internal/repositories"
	"traites/internal/services"
)

var secret = []byte("routes-secret")

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	plans := services.NewPlanService(repositories.NewMemoryPlanRepository(), nil)
	printing := services.NewPrintService(plans, layout.NewEngine(models.Party{Name: "ACME"}, "Sfax"), pdf.NewDraftRenderer("", ""), nil)
	return SetupRoutes(gin.New(), secret, handlers.NewPlanHandler(plans), handlers.NewPrintHandler(printing))
}

func call(t *testing.T, r *gin.Engine, method, path string, role int, body string) int {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if role != 0 {
		tok, err := middleware.NewToken(secret, 1, role, time.Hour)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestSetupRoutes(t *testing.T) {
	r := newEngine()
	plan := `{"partyKind":"client","counterpartyName":"X","installmentCount":2,"firstDueDate":"2030-01-31","totalAmount":"10"}`

	assert.Equal(t, http.StatusOK, call(t, r, http.MethodGet, "/healthz", 0, ""))
	assert.Equal(t, http.StatusUnauthorized, call(t, r, http.MethodGet, "/plans", 0, ""))
	assert.Equal(t, http.StatusOK, call(t, r, http.MethodGet, "/plans", authz.RoleAudit, ""))
	assert.Equal(t, http.StatusForbidden, call(t, r, http.MethodPost, "/plans", authz.RoleAudit, plan))
	assert.Equal(t, http.StatusOK, call(t, r, http.MethodPost, "/plans/preview", authz.RoleAudit, plan))
	assert.Equal(t, http.StatusForbidden, call(t, r, http.MethodDelete, "/plans/"+uuid.NewString(), authz.RoleAudit, ""))
	assert.Equal(t, http.StatusForbidden, call(t, r, http.MethodPost, "/plans", authz.RoleAccounting, plan))
	assert.Equal(t, http.StatusCreated, call(t, r, http.MethodPost, "/plans", authz.RoleTreasury, plan))
	assert.Equal(t, http.StatusOK, call(t, r, http.MethodGet, "/amounts/words?amount=12", authz.RoleAccounting, ""))
}

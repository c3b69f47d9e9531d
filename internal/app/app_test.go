package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traites/internal/config"
	"traites/internal/layout"
	"traites/internal/pdf"
	"traites/internal/services"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	cfg.Database.Driver = "memory"
	cfg.Auth.JWTSecret = "x"

	repo, closeRepo, err := openRepository(cfg)
	require.NoError(t, err)
	t.Cleanup(closeRepo)

	plans := services.NewPlanService(repo, nil)
	printing := services.NewPrintService(plans, layout.NewEngine(cfg.Company.Party(), "Tunis"), pdf.NewDraftRenderer("", ""), nil)
	return NewRouter(cfg, plans, printing)
}

func TestNewRouter_CORSPreflight(t *testing.T) {
	r := testRouter(t)
	req := httptest.NewRequest(http.MethodOptions, "/plans", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "Content-Disposition")
}

func TestNewRouter_Health(t *testing.T) {
	r := testRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

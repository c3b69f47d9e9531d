package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"traites/internal/authz"
	"traites/internal/handlers"
	"traites/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	jwtSecret []byte,
	planHandler *handlers.PlanHandler,
	printHandler *handlers.PrintHandler,
) *gin.Engine {

	// ---- public
	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// ---- protected
	api := r.Group("/")
	api.Use(middleware.AuthMiddleware(jwtSecret))
	api.Use(middleware.ReadOnlyGuard("/plans/preview"))

	plans := api.Group("/plans")
	{
		plans.GET("", planHandler.List)
		plans.GET("/:id", planHandler.Get)
		plans.POST("", middleware.RequireRoles(authz.Planners...), planHandler.Create)
		plans.POST("/preview", planHandler.Preview)
		plans.DELETE("/:id", middleware.RequireRoles(authz.Planners...), planHandler.Delete)

		// settlement
		plans.PUT("/:id/installments/:iid/status", middleware.RequireRoles(authz.Settlers...), planHandler.SetInstallmentStatus)
		plans.PUT("/:id/status", middleware.RequireRoles(authz.Settlers...), planHandler.MarkAll)

		// printing
		plans.GET("/:id/installments/:iid/layout", printHandler.Layout)
		plans.GET("/:id/installments/:iid/print", printHandler.PrintInstallment)
		plans.GET("/:id/print", printHandler.PrintBatch)
		plans.POST("/:id/mail", middleware.RequireRoles(authz.Planners...), printHandler.MailDrafts)
	}

	api.GET("/amounts/words", handlers.AmountInWords)

	return r
}

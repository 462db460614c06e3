package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/sweetcrumb/bakeshop/internal/domain/model"
	"github.com/sweetcrumb/bakeshop/internal/server/http/handlers"
	"github.com/sweetcrumb/bakeshop/internal/server/http/middleware"
	"github.com/sweetcrumb/bakeshop/web"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.ShopFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	userHandler := handlers.NewUserHandler(facade)

	engine.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", web.IndexPage)
	})
	engine.GET("/admin", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", web.AdminPage)
	})

	api := engine.Group("/api")
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/products", catalogHandler.List)
	api.POST("/orders", orderHandler.Create)

	admin := api.Group("")
	admin.Use(middleware.AuthRequired(facade), middleware.RequireRole(model.RoleAdmin))
	admin.GET("/orders", orderHandler.List)
	admin.PATCH("/orders/:id", orderHandler.UpdateStatus)
	admin.PATCH("/users/:id/role", userHandler.UpdateRole)

	return engine
}

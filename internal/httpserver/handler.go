package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	currencyHTTP "travel-planner/internal/currency/delivery/http"
	packingHTTP "travel-planner/internal/packing/delivery/http"
	weatherHTTP "travel-planner/internal/weather/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	packingHTTP.RegisterRoutes(api.Group("/packing"), srv.packingHandler, srv.mw)
	srv.l.Infof(ctx, "Packing domain registered")

	weatherHTTP.RegisterRoutes(api.Group("/weather"), srv.weatherHandler, srv.mw)
	srv.l.Infof(ctx, "Weather domain registered")

	currencyHTTP.RegisterRoutes(api.Group("/currency"), srv.currencyHandler, srv.mw)
	srv.l.Infof(ctx, "Currency domain registered")

	return nil
}

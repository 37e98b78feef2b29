// Package https_server assembles the gin engine: middleware, CORS,
// static assets and route registration.
package https_server

import (
	"imovel_hub_server/internal/config"
	"imovel_hub_server/internal/handler"
	"imovel_hub_server/internal/infrastructure/logger"
	"imovel_hub_server/internal/router"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Init builds the configured gin engine over the handler aggregate.
func Init(handlers *handler.Handlers) *gin.Engine {
	if config.GetConfig().MainConfig.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	engine.Use(logger.GinLogger())
	engine.Use(logger.GinRecovery(true))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"} // tighten per deployment
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	engine.Use(cors.New(corsConfig))

	// TLS redirect middleware is optional; enable when the server
	// terminates TLS itself instead of sitting behind a proxy.
	// engine.Use(middleware.TlsHandler(config.GetConfig().MainConfig.Host, config.GetConfig().MainConfig.Port))

	// property photos and documents
	engine.Static("/static/photos", config.GetConfig().StaticSrcConfig.StaticPhotoPath)
	engine.Static("/static/docs", config.GetConfig().StaticSrcConfig.StaticDocPath)

	rt := router.NewRouter(handlers)
	rt.RegisterRoutes(engine)

	return engine
}

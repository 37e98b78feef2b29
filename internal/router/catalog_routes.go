package router

import (
	"imovel_hub_server/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the public property catalog and the
// authenticated favorites endpoints.
func (rt *Router) RegisterCatalogRoutes(engine *gin.Engine) {
	catalogGroup := engine.Group("/catalog")
	{
		catalogGroup.GET("/properties", rt.handlers.Catalog.ListPropertiesHandler)
		catalogGroup.GET("/properties/:propertyId", rt.handlers.Catalog.GetPropertyHandler)

		favoriteGroup := catalogGroup.Group("/favorites", middleware.JWTAuth())
		{
			favoriteGroup.GET("", rt.handlers.Catalog.ListFavoritesHandler)
			favoriteGroup.POST("/toggle", rt.handlers.Catalog.ToggleFavoriteHandler)
		}
	}
}

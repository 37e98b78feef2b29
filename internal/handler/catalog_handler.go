package handler

import (
	"imovel_hub_server/internal/dto/request"
	"imovel_hub_server/internal/infrastructure/middleware"
	"imovel_hub_server/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogHandler handles public property browsing and favorites.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates the catalog handler.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListPropertiesHandler pages through the public catalog.
// GET /catalog/properties?city=xxx&q=xxx&page=1
// Query: request.CatalogListRequest
// Response: respond.PropertyListRespond
func (h *CatalogHandler) ListPropertiesHandler(c *gin.Context) {
	var req request.CatalogListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.catalogService.ListProperties(req.City, req.Q, req.Page)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetPropertyHandler returns a property with its units.
// GET /catalog/properties/:propertyId
// Response: respond.PropertyDetailRespond
func (h *CatalogHandler) GetPropertyHandler(c *gin.Context) {
	data, err := h.catalogService.GetProperty(c.Param("propertyId"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// ToggleFavoriteHandler flips the caller's favorite on a property.
// POST /catalog/favorites/toggle
// Body: request.ToggleFavoriteRequest
// Response: {"favorited": bool}
func (h *CatalogHandler) ToggleFavoriteHandler(c *gin.Context) {
	var req request.ToggleFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	userUuid := c.GetString(middleware.CtxUserID)
	favorited, err := h.catalogService.ToggleFavorite(userUuid, req.PropertyId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"favorited": favorited})
}

// ListFavoritesHandler lists the caller's favorited properties.
// GET /catalog/favorites
// Response: []respond.PropertyListItem
func (h *CatalogHandler) ListFavoritesHandler(c *gin.Context) {
	userUuid := c.GetString(middleware.CtxUserID)
	data, err := h.catalogService.ListFavorites(userUuid)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

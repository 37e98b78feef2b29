package request

// ToggleFavoriteRequest carries the property to (un)favorite.
// Used by: handler/catalog_handler.go ToggleFavoriteHandler
type ToggleFavoriteRequest struct {
	PropertyId string `json:"property_id" binding:"required"`
}

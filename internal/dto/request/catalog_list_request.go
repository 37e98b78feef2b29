package request

// CatalogListRequest carries public catalog browsing filters.
// Used by: handler/catalog_handler.go ListPropertiesHandler
type CatalogListRequest struct {
	City string `form:"city"`
	Q    string `form:"q"`
	Page string `form:"page"`
}

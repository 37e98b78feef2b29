package constants

const (
	REQUEST_PAGE_SIZE          = 15  // admin request list page size
	CATALOG_PAGE_SIZE          = 15  // public catalog page size
	REDIS_TIMEOUT              = 30  // redis cache key TTL (minutes)
	REFRESH_TOKEN_EXPIRY_HOURS = 168 // refresh token lifetime, 168h = 7 days
)

package respond

// PropertyListItem is one catalog entry in the public listing.
type PropertyListItem struct {
	Id        string `json:"id"`
	Name      string `json:"name"`
	City      string `json:"city"`
	State     string `json:"state"`
	Address   string `json:"address"`
	PhotoPath string `json:"photo_path,omitempty"`
}

// PropertyListRespond is the paginated public catalog.
type PropertyListRespond struct {
	Properties []PropertyListItem `json:"properties"`
	Total      int64              `json:"total"`
	TotalPages int                `json:"total_pages"`
}

// UnitDetail is one unit in the property detail view.
type UnitDetail struct {
	Id          string  `json:"id"`
	Identifier  string  `json:"identifier"`
	Block       string  `json:"block,omitempty"`
	Price       int64   `json:"price"`
	Bedrooms    int     `json:"bedrooms"`
	AreaSqm     float64 `json:"area_sqm"`
	IsAvailable bool    `json:"is_available"`
}

// PropertyDetailRespond is the property page payload.
type PropertyDetailRespond struct {
	Id          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Address     string       `json:"address"`
	City        string       `json:"city"`
	State       string       `json:"state"`
	PhotoPath   string       `json:"photo_path,omitempty"`
	Units       []UnitDetail `json:"units"`
}

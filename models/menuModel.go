package models

// MenuItem is read-only on this side; only the admin console mutates the
// catalog, and it does so through the backend.
type MenuItem struct {
	ID              string  `json:"_id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	Category        string  `json:"category"`
	Image           string  `json:"image"`
	Available       bool    `json:"available"`
	PreparationTime int     `json:"preparationTime"`
}

// Category keys are lowercase slugs (e.g. "main-course"); DisplayName is
// what the filter buttons show.
type Category struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}

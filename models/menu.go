package models

// MenuItem is one purchasable entry in the catalog. Immutable once loaded;
// admin edits go through the catalog service which replaces the stored copy.
type MenuItem struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	Image           string  `json:"image"`
	Category        string  `json:"category"`
	PreparationArea string  `json:"preparation_area,omitempty"`
}

type MenuCategory struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}

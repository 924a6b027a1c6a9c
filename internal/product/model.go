package product

// Category groups catalog entries on the POS screen. Icon is nullable
// in the catalog schema, so it stays a pointer through the scan.
type Category struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Icon *string `json:"icon"`
}

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	CategoryID  string  `json:"categoryId"`
	Image       *string `json:"image"`
}

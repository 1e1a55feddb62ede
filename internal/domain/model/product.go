package model

// Category is the closed set of shop product categories.
type Category string

const (
	CategoryApparel     Category = "apparel"
	CategoryEquipment   Category = "equipment"
	CategoryAccessories Category = "accessories"
	CategorySupplements Category = "supplements"
)

// Categories returns every valid category in display order.
func Categories() []Category {
	return []Category{CategoryApparel, CategoryEquipment, CategoryAccessories, CategorySupplements}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryApparel, CategoryEquipment, CategoryAccessories, CategorySupplements:
		return true
	}
	return false
}

// Product is a shop catalog entry. The shop is not open yet, so every seeded
// product is out of stock. All fields may be empty; Price is nil when no price
// has been announced.
type Product struct {
	ID          int64
	Position    int
	Name        string
	Description string
	Price       *float64
	Currency    string
	ImageURL    string
	Category    Category
	InStock     bool
}

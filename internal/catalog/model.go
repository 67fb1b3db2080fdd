package catalog

// StoreKey is the collection name products persist under.
const StoreKey = "bakeryProducts"

// placeholderImage is stored when a new product arrives without any
// image supplied.
const placeholderImage = "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?auto=format&fit=crop&w=800&q=80"

type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Category    string `json:"category"`
}

package cart

// StoreKey is the collection name the cart persists under.
const StoreKey = "cart"

// customCakeImage illustrates every made-to-order cake line.
const customCakeImage = "https://images.unsplash.com/photo-1550617931-e17a7b70dce2?auto=format&fit=crop&w=800&q=80"

type Item struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	Qty         int    `json:"qty"`
	IsCustom    bool   `json:"isCustom,omitempty"`
}

// CustomCake carries the made-to-order form fields. The price comes
// straight from the caller, there is no server-side validation of it.
type CustomCake struct {
	Flavor  string
	Weight  float64
	Message string
	Price   int
}

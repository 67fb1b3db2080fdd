package order

// StoreKey is the collection name orders persist under.
const StoreKey = "orders"

type Status string

// Intended forward progression of an order. Nothing enforces it: the
// admin may set any status at any time.
const (
	StatusReceived       Status = "Received"
	StatusBaking         Status = "Baking"
	StatusReady          Status = "Ready"
	StatusOutForDelivery Status = "Out for delivery"
	StatusDelivered      Status = "Delivered"
)

func Statuses() []Status {
	return []Status{
		StatusReceived,
		StatusBaking,
		StatusReady,
		StatusOutForDelivery,
		StatusDelivered,
	}
}

type Item struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
	Qty   int    `json:"qty"`
}

type Order struct {
	ID            string `json:"id"`
	Date          string `json:"date"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	Items         []Item `json:"items"`
	Total         string `json:"total"`
	Payment       string `json:"payment"`
	Status        Status `json:"status"`
}

// Pending is a derived classification, not a stored one: everything
// short of Delivered counts.
func (o Order) Pending() bool {
	return o.Status != StatusDelivered
}

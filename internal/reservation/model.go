package reservation

// StoreKey is the collection name reservations persist under.
const StoreKey = "reservations"

type Reservation struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Guests    string `json:"guests"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	CreatedAt string `json:"createdAt"`
}

// Input carries the reservation form fields, pre-trim.
type Input struct {
	Name   string
	Phone  string
	Guests string
	Date   string
	Time   string
}

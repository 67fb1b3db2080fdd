package user

// StoreKey is the collection name users persist under.
const StoreKey = "users"

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

type User struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role,omitempty"`
	Password string `json:"password,omitempty"`
	Wallet   int    `json:"wallet"`
}

// Seed is the single admin account present on first run.
func Seed(name, email string) []User {
	return []User{
		{Name: name, Email: email, Role: RoleAdmin, Password: "admin", Wallet: 0},
	}
}

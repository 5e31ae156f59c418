package auth

// Role identifies which menu a logged-in account is routed to.
type Role string

const (
	// RoleAdmin manages inventory and supplier orders.
	RoleAdmin Role = "admin"
	// RoleSeller runs the checkout flow.
	RoleSeller Role = "seller"
	// RoleCourier handles pending delivery orders.
	RoleCourier Role = "courier"
)

// Account is a hard-coded application login.
type Account struct {
	Username     string
	PasswordHash []byte
	Role         Role
}

package orders

import "time"

// Line is one requested product inside a delivery order.
type Line struct {
	Name     string
	Quantity int
}

// Order is a delivery request filed by the seller and handled by the
// courier. Pending orders live as one text file each; accepting relocates
// the file to the accepted directory, which is the terminal state.
type Order struct {
	Ref        string
	ClientName string
	Address    string
	Lines      []Line
	CreatedAt  time.Time
}

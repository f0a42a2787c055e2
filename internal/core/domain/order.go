package domain

import "time"

// OrderItem is one cart line frozen at checkout time.
type OrderItem struct {
	ProductID int     `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Order is an immutable record of a completed checkout. Total is supplied
// by the client and is stored as-is.
type Order struct {
	ID        string      `json:"_id"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Address   string      `json:"address"`
	Phone     string      `json:"phone"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

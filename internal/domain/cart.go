package domain

import "time"

// Cart is a user's mutable collection of intended purchases. Quantity is
// implicit: adding the same product twice yields two items.
type Cart struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"user_id"`
	CreatedDate time.Time  `json:"created_date"`
	Items       []CartItem `json:"cart_items,omitempty"`
}

type CartItem struct {
	ID          int64     `json:"id"`
	CartID      int64     `json:"cart_id"`
	ProductID   int64     `json:"product_id"`
	CreatedDate time.Time `json:"created_date"`
}

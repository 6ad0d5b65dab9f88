package models

import "time"

// OrderItem is a name/price/quantity snapshot taken at order time; later
// menu edits do not touch it.
type OrderItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type StatusEvent struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// OrderUser is attached to orders on the admin listing only.
type OrderUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Order is a read-only projection. Ordinary clients never mutate it; the
// admin console transitions orderStatus through the backend.
type Order struct {
	ID                    string        `json:"_id"`
	Items                 []OrderItem   `json:"items"`
	OrderStatus           string        `json:"orderStatus"`
	StatusHistory         []StatusEvent `json:"statusHistory"`
	DeliveryAddress       string        `json:"deliveryAddress"`
	Phone                 string        `json:"phone"`
	PaymentStatus         string        `json:"paymentStatus"`
	TotalAmount           float64       `json:"totalAmount"`
	EstimatedDeliveryTime *time.Time    `json:"estimatedDeliveryTime,omitempty"`
	CreatedAt             time.Time     `json:"createdAt"`
	User                  *OrderUser    `json:"user,omitempty"`
}

// ShortID mirrors the reference the customer sees on receipts: the last 8
// characters of the id, upper-cased.
func (o Order) ShortID() string {
	id := o.ID
	if len(id) > 8 {
		id = id[len(id)-8:]
	}
	out := make([]byte, len(id))
	for i := 0; i < len(id); i++ {
		c := id[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		out[i] = c
	}
	return string(out)
}

// Stats backs the admin dashboard tiles.
type Stats struct {
	TotalOrders    int     `json:"totalOrders"`
	PendingOrders  int     `json:"pendingOrders"`
	TotalMenuItems int     `json:"totalMenuItems"`
	TotalUsers     int     `json:"totalUsers"`
	TotalRevenue   float64 `json:"totalRevenue"`
}

package models

// CartItemRef is the denormalized menu item carried on a cart line for
// display (the price on the line itself is the snapshot that counts).
type CartItemRef struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

type CartItem struct {
	ID       string      `json:"_id"`
	MenuItem CartItemRef `json:"menuItem"`
	Price    float64     `json:"price"`
	Quantity int         `json:"quantity"`
}

// Cart is fully server-authoritative: items and totalAmount are replaced
// wholesale from every cart response and never recomputed locally.
type Cart struct {
	Items       []CartItem `json:"items"`
	TotalAmount float64    `json:"totalAmount"`
}

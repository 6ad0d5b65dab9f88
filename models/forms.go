package models

// Form payloads are validated locally before any request leaves the
// process; a validation failure never reaches the network.

type RegisterForm struct {
	Name     string `form:"name" json:"name" validate:"required,min=2,max=100"`
	Email    string `form:"email" json:"email" validate:"required,email"`
	Password string `form:"password" json:"password" validate:"required,min=6"`
	Phone    string `form:"phone" json:"phone" validate:"required"`
	Address  string `form:"address" json:"address"`
}

type LoginForm struct {
	Email    string `form:"email" json:"email" validate:"required,email"`
	Password string `form:"password" json:"password" validate:"required"`
}

type CheckoutForm struct {
	DeliveryAddress string `form:"deliveryAddress" json:"deliveryAddress" validate:"required"`
	Phone           string `form:"phone" json:"phone" validate:"required"`
}

type MenuItemForm struct {
	Name            string  `form:"name" json:"name" validate:"required"`
	Description     string  `form:"description" json:"description" validate:"required"`
	Price           float64 `form:"price" json:"price" validate:"required,gte=0"`
	Category        string  `form:"category" json:"category" validate:"required,lowercase"`
	Image           string  `form:"image" json:"image"`
	Available       bool    `form:"available" json:"available"`
	PreparationTime int     `form:"preparationTime" json:"preparationTime" validate:"gte=0"`
}

type CategoryForm struct {
	Name        string `form:"name" json:"name" validate:"required,lowercase"`
	DisplayName string `form:"displayName" json:"displayName" validate:"required"`
}

type AdminUserForm struct {
	Name     string `form:"name" json:"name" validate:"required,min=2,max=100"`
	Email    string `form:"email" json:"email" validate:"required,email"`
	Password string `form:"password" json:"password" validate:"required,min=6"`
	Phone    string `form:"phone" json:"phone" validate:"required"`
	Address  string `form:"address" json:"address"`
}

type StatusUpdateForm struct {
	OrderStatus string `form:"orderStatus" json:"orderStatus" validate:"required"`
}

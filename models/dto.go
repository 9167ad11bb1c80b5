package models

type AddOnSelection struct {
	ID       string `json:"id" binding:"required"`
	Quantity int    `json:"quantity" binding:"omitempty,min=1"`
}

type AddToCartRequest struct {
	ItemID      string           `json:"item_id" binding:"required"`
	Quantity    int              `json:"quantity" binding:"omitempty,min=1"`
	VariationID string           `json:"variation_id"`
	AddOns      []AddOnSelection `json:"add_ons"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type OrderDetailsRequest struct {
	CustomerName  string `json:"customer_name"`
	ContactNumber string `json:"contact_number"`
	ServiceType   string `json:"service_type" binding:"required,oneof=dine-in pickup delivery"`
	Address       string `json:"address"`
	Landmark      string `json:"landmark"`
	PickupTime    string `json:"pickup_time"`
	CustomTime    string `json:"custom_time"`
	PartySize     int    `json:"party_size"`
	Notes         string `json:"notes"`
}

type PlaceOrderRequest struct {
	PaymentMethodID string `json:"payment_method_id"`
}

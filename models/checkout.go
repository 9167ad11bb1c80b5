package models

type ServiceType string

const (
	ServiceDineIn   ServiceType = "dine-in"
	ServicePickup   ServiceType = "pickup"
	ServiceDelivery ServiceType = "delivery"
)

type CheckoutStep string

const (
	StepDetails CheckoutStep = "details"
	StepPayment CheckoutStep = "payment"
)

// Pickup time presets offered before the custom free-text option.
const (
	PickupWindowShort  = "5-10"
	PickupWindowMedium = "15-20"
	PickupWindowLong   = "25-30"
	PickupWindowCustom = "custom"
)

const (
	MinPartySize = 1
	MaxPartySize = 20
)

// CashMethodID is the reserved id of the synthetic onsite-cash payment method
// appended after the catalog-provided methods.
const CashMethodID = "cash"

// OrderDraft is the per-session checkout state. It lives in memory only and is
// discarded with the session; the terminal state is the dispatch hand-off.
type OrderDraft struct {
	CustomerName    string       `json:"customer_name"`
	ContactNumber   string       `json:"contact_number"`
	ServiceType     ServiceType  `json:"service_type"`
	Address         string       `json:"address,omitempty"`
	Landmark        string       `json:"landmark,omitempty"`
	PickupTime      string       `json:"pickup_time,omitempty"`
	CustomTime      string       `json:"custom_time,omitempty"`
	PartySize       int          `json:"party_size,omitempty"`
	PaymentMethodID string       `json:"payment_method_id,omitempty"`
	Notes           string       `json:"notes,omitempty"`
	Step            CheckoutStep `json:"step"`
}

// ValidationResult reports why the details step cannot advance. Shortfall is
// the amount still missing to reach the delivery minimum, zero otherwise.
type ValidationResult struct {
	Valid     bool              `json:"valid"`
	Errors    map[string]string `json:"errors,omitempty"`
	Shortfall int               `json:"shortfall,omitempty"`
}

// DispatchOrder is the outcome of placing an order: the formatted summary and
// the messenger deep link the client opens. Nothing is recorded server-side.
type DispatchOrder struct {
	Summary     string `json:"summary"`
	DispatchURL string `json:"dispatch_url"`
}

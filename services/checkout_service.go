package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"cafe-storefront/models"
	"cafe-storefront/repositories"
)

const cafeName = "Just Cafè"

var ErrDetailsIncomplete = errors.New("order details have not been completed")
var ErrUnknownPaymentMethod = errors.New("unknown payment method")

// CheckoutService drives the two-step checkout: details -> payment, with the
// dispatch hand-off as the external terminal. Drafts live in memory per
// session and are never persisted.
type CheckoutService struct {
	mu              sync.Mutex
	drafts          map[string]*models.OrderDraft
	paymentRepo     *repositories.PaymentMethodRepository
	messengerPage   string
	deliveryMinimum int
}

func NewCheckoutService(paymentRepo *repositories.PaymentMethodRepository, messengerPage string, deliveryMinimum int) *CheckoutService {
	return &CheckoutService{
		drafts:          make(map[string]*models.OrderDraft),
		paymentRepo:     paymentRepo,
		messengerPage:   messengerPage,
		deliveryMinimum: deliveryMinimum,
	}
}

// ClampPartySize bounds dine-in party size to [1, 20]. Out-of-range input is
// clamped rather than rejected.
func ClampPartySize(size int) int {
	if size < models.MinPartySize {
		return models.MinPartySize
	}
	if size > models.MaxPartySize {
		return models.MaxPartySize
	}
	return size
}

// ValidateOrderDetails checks the details step against the business rules.
// Every failing field blocks the details -> payment transition; for delivery
// orders below the minimum the result carries the remaining shortfall.
func ValidateOrderDetails(req models.OrderDetailsRequest, cartTotal, deliveryMinimum int) models.ValidationResult {
	result := models.ValidationResult{Errors: map[string]string{}}

	if strings.TrimSpace(req.CustomerName) == "" {
		result.Errors["customer_name"] = "Customer name is required"
	}
	if strings.TrimSpace(req.ContactNumber) == "" {
		result.Errors["contact_number"] = "Contact number is required"
	}

	switch models.ServiceType(req.ServiceType) {
	case models.ServiceDelivery:
		if strings.TrimSpace(req.Address) == "" {
			result.Errors["address"] = "Delivery address is required"
		}
		if cartTotal < deliveryMinimum {
			result.Shortfall = deliveryMinimum - cartTotal
			result.Errors["delivery_minimum"] = fmt.Sprintf(
				"Delivery orders require a minimum of %d. Please add %d more to proceed",
				deliveryMinimum, result.Shortfall,
			)
		}
	case models.ServicePickup:
		switch req.PickupTime {
		case models.PickupWindowShort, models.PickupWindowMedium, models.PickupWindowLong:
		case models.PickupWindowCustom:
			if strings.TrimSpace(req.CustomTime) == "" {
				result.Errors["custom_time"] = "Custom pickup time is required"
			}
		default:
			result.Errors["pickup_time"] = "Pickup time is required"
		}
	case models.ServiceDineIn:
		// Party size is clamped at input, never a validation failure.
	}

	result.Valid = len(result.Errors) == 0
	if result.Valid {
		result.Errors = nil
	}
	return result
}

// GetDraft returns a copy of the session's draft, seeding defaults for a fresh
// checkout session.
func (s *CheckoutService) GetDraft(sessionID string) models.OrderDraft {
	s.mu.Lock()
	defer s.mu.Unlock()

	if draft, ok := s.drafts[sessionID]; ok {
		return *draft
	}
	return models.OrderDraft{
		ServiceType: models.ServiceDineIn,
		PickupTime:  models.PickupWindowShort,
		PartySize:   models.MinPartySize,
		Step:        models.StepDetails,
	}
}

// SubmitDetails validates and stores the details step. On success the draft
// advances to the payment step; on failure the draft is untouched and the
// result explains what blocked the transition.
func (s *CheckoutService) SubmitDetails(sessionID string, req models.OrderDetailsRequest, cartTotal int) models.ValidationResult {
	req.PartySize = ClampPartySize(req.PartySize)
	if req.PickupTime == "" {
		req.PickupTime = models.PickupWindowShort
	}

	result := ValidateOrderDetails(req, cartTotal, s.deliveryMinimum)
	if !result.Valid {
		return result
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	draft := s.drafts[sessionID]
	if draft == nil {
		draft = &models.OrderDraft{}
		s.drafts[sessionID] = draft
	}

	draft.CustomerName = strings.TrimSpace(req.CustomerName)
	draft.ContactNumber = strings.TrimSpace(req.ContactNumber)
	draft.ServiceType = models.ServiceType(req.ServiceType)
	draft.Address = strings.TrimSpace(req.Address)
	draft.Landmark = strings.TrimSpace(req.Landmark)
	draft.PickupTime = req.PickupTime
	draft.CustomTime = strings.TrimSpace(req.CustomTime)
	draft.PartySize = req.PartySize
	draft.Notes = strings.TrimSpace(req.Notes)
	draft.Step = models.StepPayment
	return result
}

// BackToDetails moves the draft back to the details step. All fields survive
// the transition.
func (s *CheckoutService) BackToDetails(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if draft, ok := s.drafts[sessionID]; ok {
		draft.Step = models.StepDetails
	}
}

// ResetDraft drops the session's checkout state entirely.
func (s *CheckoutService) ResetDraft(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, sessionID)
}

// AppendCashMethod adds the synthetic onsite-cash entry after the
// catalog-provided methods. Cash carries no account or QR metadata.
func AppendCashMethod(methods []models.PaymentMethod) []models.PaymentMethod {
	cash := models.PaymentMethod{
		ID:        models.CashMethodID,
		Name:      "Cash (Onsite)",
		Active:    true,
		SortOrder: 999,
	}
	return append(methods, cash)
}

// EffectivePaymentMethods is the selectable list: active methods from the
// provider plus cash at lowest priority. A provider failure degrades to
// cash-only so checkout keeps working.
func (s *CheckoutService) EffectivePaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	methods, err := s.paymentRepo.GetActiveMethods(ctx)
	if err != nil {
		return AppendCashMethod(nil), err
	}
	return AppendCashMethod(methods), nil
}

// PlaceOrder turns the completed draft plus the cart snapshot into a dispatch
// order. It is a pure formatting operation with no retry and no server-side
// record; resubmitting produces an identical duplicate dispatch.
func (s *CheckoutService) PlaceOrder(ctx context.Context, sessionID, paymentMethodID string, cart models.Cart) (*models.DispatchOrder, error) {
	s.mu.Lock()
	draft := s.drafts[sessionID]
	if draft == nil || draft.Step != models.StepPayment {
		s.mu.Unlock()
		return nil, ErrDetailsIncomplete
	}
	snapshot := *draft
	s.mu.Unlock()

	methods, _ := s.EffectivePaymentMethods(ctx)

	chosenID := paymentMethodID
	if chosenID == "" {
		chosenID = snapshot.PaymentMethodID
	}
	if chosenID == "" {
		chosenID = methods[0].ID
	}

	var method *models.PaymentMethod
	for i := range methods {
		if methods[i].ID == chosenID {
			method = &methods[i]
			break
		}
	}
	if method == nil {
		return nil, ErrUnknownPaymentMethod
	}

	s.mu.Lock()
	if current, ok := s.drafts[sessionID]; ok {
		current.PaymentMethodID = method.ID
	}
	snapshot.PaymentMethodID = method.ID
	s.mu.Unlock()

	summary := BuildOrderSummary(snapshot, cart, method.Name)
	return &models.DispatchOrder{
		Summary:     summary,
		DispatchURL: BuildDispatchURL(s.messengerPage, summary),
	}, nil
}

// ResolvePickupTime renders the chosen pickup window: the custom free text
// when "custom" was selected, otherwise the preset label.
func ResolvePickupTime(draft models.OrderDraft) string {
	if draft.PickupTime == models.PickupWindowCustom {
		return draft.CustomTime
	}
	return draft.PickupTime + " minutes"
}

// BuildOrderSummary assembles the human-readable order message sent to the
// dispatch channel: customer info, service-specific fields, the itemized cart,
// the grand total, the payment method, the proof reminder for non-cash
// methods, and optional notes.
func BuildOrderSummary(draft models.OrderDraft, cart models.Cart, paymentMethodName string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🛒 %s ORDER\n\n", cafeName)
	fmt.Fprintf(&b, "👤 Customer: %s\n", draft.CustomerName)
	fmt.Fprintf(&b, "📞 Contact: %s\n", draft.ContactNumber)
	fmt.Fprintf(&b, "📍 Service: %s\n", titleServiceType(draft.ServiceType))

	switch draft.ServiceType {
	case models.ServiceDelivery:
		fmt.Fprintf(&b, "🏠 Address: %s\n", draft.Address)
		if draft.Landmark != "" {
			fmt.Fprintf(&b, "🗺️ Landmark: %s\n", draft.Landmark)
		}
	case models.ServicePickup:
		fmt.Fprintf(&b, "⏰ Pickup Time: %s\n", ResolvePickupTime(draft))
	case models.ServiceDineIn:
		fmt.Fprintf(&b, "👥 Party Size: %d %s\n", draft.PartySize, pluralPerson(draft.PartySize))
	}

	b.WriteString("\n📋 ORDER DETAILS:\n")
	for _, item := range cart.Items {
		b.WriteString("• " + item.Name)
		if item.SelectedVariation != nil {
			fmt.Fprintf(&b, " (%s)", item.SelectedVariation.Name)
		}
		if len(item.SelectedAddOns) > 0 {
			labels := make([]string, 0, len(item.SelectedAddOns))
			for _, addOn := range item.SelectedAddOns {
				label := addOn.Name
				if addOn.Quantity > 1 {
					label = fmt.Sprintf("%s x%d", addOn.Name, addOn.Quantity)
				}
				labels = append(labels, label)
			}
			b.WriteString(" + " + strings.Join(labels, ", "))
		}
		fmt.Fprintf(&b, " x%d - ₱%d\n", item.Quantity, item.UnitPrice*item.Quantity)
	}

	fmt.Fprintf(&b, "\n💰 TOTAL: ₱%d\n", cart.TotalPrice)
	if draft.ServiceType == models.ServiceDelivery {
		b.WriteString("🛵 DELIVERY FEE:\n")
	}

	fmt.Fprintf(&b, "\n💳 Payment: %s\n", paymentMethodName)
	if draft.PaymentMethodID != models.CashMethodID {
		b.WriteString("📸 Payment Screenshot: Please attach your payment receipt screenshot\n")
	}

	if draft.Notes != "" {
		fmt.Fprintf(&b, "\n📝 Notes: %s\n", draft.Notes)
	}

	fmt.Fprintf(&b, "\nPlease confirm this order to proceed. Thank you for choosing %s! ☕", cafeName)
	return b.String()
}

// BuildDispatchURL percent-encodes the summary onto the messenger deep link.
// Opening the link is the client's job; there is no confirmation channel.
func BuildDispatchURL(messengerPage, summary string) string {
	u := url.URL{
		Scheme:   "https",
		Host:     "m.me",
		Path:     "/" + messengerPage,
		RawQuery: url.Values{"text": {summary}}.Encode(),
	}
	return u.String()
}

func titleServiceType(serviceType models.ServiceType) string {
	s := string(serviceType)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func pluralPerson(n int) string {
	if n == 1 {
		return "person"
	}
	return "persons"
}

package services

import (
	"net/url"
	"strings"
	"testing"

	"cafe-storefront/models"
)

func validDineInDetails() models.OrderDetailsRequest {
	return models.OrderDetailsRequest{
		CustomerName:  "Maria Santos",
		ContactNumber: "0917 123 4567",
		ServiceType:   "dine-in",
		PartySize:     2,
	}
}

func TestValidateOrderDetailsRequiresNameAndContact(t *testing.T) {
	req := validDineInDetails()
	req.CustomerName = "  "
	req.ContactNumber = ""

	result := ValidateOrderDetails(req, 500, 150)
	if result.Valid {
		t.Fatal("expected validation to fail without name and contact")
	}
	if _, ok := result.Errors["customer_name"]; !ok {
		t.Fatal("expected customer_name error")
	}
	if _, ok := result.Errors["contact_number"]; !ok {
		t.Fatal("expected contact_number error")
	}
}

func TestValidateOrderDetailsDeliveryRequiresAddress(t *testing.T) {
	req := validDineInDetails()
	req.ServiceType = "delivery"

	result := ValidateOrderDetails(req, 500, 150)
	if result.Valid {
		t.Fatal("expected validation to fail without delivery address")
	}
	if _, ok := result.Errors["address"]; !ok {
		t.Fatal("expected address error")
	}
}

func TestDeliveryMinimumBoundaryIsInclusive(t *testing.T) {
	req := validDineInDetails()
	req.ServiceType = "delivery"
	req.Address = "123 Example St"

	blocked := ValidateOrderDetails(req, 149, 150)
	if blocked.Valid {
		t.Fatal("expected total 149 to be blocked at minimum 150")
	}
	if blocked.Shortfall != 1 {
		t.Fatalf("expected shortfall 1, got %d", blocked.Shortfall)
	}

	allowed := ValidateOrderDetails(req, 150, 150)
	if !allowed.Valid {
		t.Fatalf("expected total 150 to pass at minimum 150, got errors %v", allowed.Errors)
	}
	if allowed.Shortfall != 0 {
		t.Fatalf("expected no shortfall, got %d", allowed.Shortfall)
	}
}

func TestDeliveryShortfallReported(t *testing.T) {
	req := validDineInDetails()
	req.ServiceType = "delivery"
	req.Address = "123 Example St"

	result := ValidateOrderDetails(req, 100, 150)
	if result.Valid {
		t.Fatal("expected total 100 to be blocked at minimum 150")
	}
	if result.Shortfall != 50 {
		t.Fatalf("expected shortfall 50, got %d", result.Shortfall)
	}
	if !strings.Contains(result.Errors["delivery_minimum"], "50") {
		t.Fatalf("expected shortfall amount in message, got %q", result.Errors["delivery_minimum"])
	}
}

func TestPickupCustomTimeRequired(t *testing.T) {
	req := validDineInDetails()
	req.ServiceType = "pickup"
	req.PickupTime = models.PickupWindowCustom

	result := ValidateOrderDetails(req, 500, 150)
	if result.Valid {
		t.Fatal("expected validation to fail without custom time text")
	}

	req.CustomTime = "2:30 PM"
	result = ValidateOrderDetails(req, 500, 150)
	if !result.Valid {
		t.Fatalf("expected custom time to satisfy pickup, got errors %v", result.Errors)
	}
}

func TestPickupPresetWindowsAccepted(t *testing.T) {
	presets := []string{models.PickupWindowShort, models.PickupWindowMedium, models.PickupWindowLong}
	for _, preset := range presets {
		req := validDineInDetails()
		req.ServiceType = "pickup"
		req.PickupTime = preset

		if result := ValidateOrderDetails(req, 500, 150); !result.Valid {
			t.Fatalf("expected preset %q to pass, got errors %v", preset, result.Errors)
		}
	}

	req := validDineInDetails()
	req.ServiceType = "pickup"
	req.PickupTime = "whenever"
	if result := ValidateOrderDetails(req, 500, 150); result.Valid {
		t.Fatal("expected unknown pickup window to fail")
	}
}

func TestClampPartySize(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, 1},
		{-3, 1},
		{1, 1},
		{7, 7},
		{20, 20},
		{21, 20},
		{100, 20},
	}
	for _, tc := range cases {
		if got := ClampPartySize(tc.in); got != tc.want {
			t.Fatalf("ClampPartySize(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestSubmitDetailsAdvancesToPaymentAndBackKeepsFields(t *testing.T) {
	svc := NewCheckoutService(nil, "justcafe", 150)

	result := svc.SubmitDetails("s1", validDineInDetails(), 300)
	if !result.Valid {
		t.Fatalf("expected valid details, got errors %v", result.Errors)
	}

	draft := svc.GetDraft("s1")
	if draft.Step != models.StepPayment {
		t.Fatalf("expected step payment, got %s", draft.Step)
	}

	svc.BackToDetails("s1")
	draft = svc.GetDraft("s1")
	if draft.Step != models.StepDetails {
		t.Fatalf("expected step details after going back, got %s", draft.Step)
	}
	if draft.CustomerName != "Maria Santos" || draft.PartySize != 2 {
		t.Fatalf("expected fields to survive the backward transition, got %+v", draft)
	}
}

func TestSubmitDetailsRejectionLeavesStepUnchanged(t *testing.T) {
	svc := NewCheckoutService(nil, "justcafe", 150)

	req := validDineInDetails()
	req.ServiceType = "delivery"
	req.Address = "123 Example St"

	result := svc.SubmitDetails("s1", req, 100)
	if result.Valid {
		t.Fatal("expected delivery below minimum to be rejected")
	}
	if draft := svc.GetDraft("s1"); draft.Step != models.StepDetails {
		t.Fatalf("expected step to stay at details, got %s", draft.Step)
	}
}

func TestFreshDraftDefaults(t *testing.T) {
	svc := NewCheckoutService(nil, "justcafe", 150)

	draft := svc.GetDraft("new-session")
	if draft.Step != models.StepDetails {
		t.Fatalf("expected fresh draft at details step, got %s", draft.Step)
	}
	if draft.ServiceType != models.ServiceDineIn {
		t.Fatalf("expected dine-in default, got %s", draft.ServiceType)
	}
	if draft.PartySize != 1 {
		t.Fatalf("expected party size 1, got %d", draft.PartySize)
	}
}

func TestAppendCashMethodAlwaysLast(t *testing.T) {
	methods := AppendCashMethod([]models.PaymentMethod{
		{ID: "gcash", Name: "GCash", AccountNumber: "0917 000 0000", SortOrder: 1},
	})
	if len(methods) != 2 {
		t.Fatalf("expected 2 methods, got %d", len(methods))
	}

	cash := methods[len(methods)-1]
	if cash.ID != models.CashMethodID {
		t.Fatalf("expected cash appended last, got %s", cash.ID)
	}
	if cash.AccountNumber != "" || cash.AccountName != "" || cash.QRCodeURL != "" {
		t.Fatalf("expected cash to carry no account or QR metadata, got %+v", cash)
	}

	onlyCash := AppendCashMethod(nil)
	if len(onlyCash) != 1 || onlyCash[0].ID != models.CashMethodID {
		t.Fatalf("expected cash-only fallback, got %+v", onlyCash)
	}
}

func summaryFixture(paymentMethodID string) (models.OrderDraft, models.Cart) {
	draft := models.OrderDraft{
		CustomerName:    "Maria Santos",
		ContactNumber:   "0917 123 4567",
		ServiceType:     models.ServiceDelivery,
		Address:         "123 Example St",
		Landmark:        "Near the plaza",
		PaymentMethodID: paymentMethodID,
		Notes:           "Less ice please",
		Step:            models.StepPayment,
	}
	cart := models.Cart{
		Items: []models.CartItem{
			{
				LineID:            "line-1",
				SourceItemID:      "latte",
				Name:              "Café Latte",
				Quantity:          2,
				UnitPrice:         170,
				SelectedVariation: &models.Variation{ID: "large", Name: "Large", Price: 30},
				SelectedAddOns: []models.SelectedAddOn{
					{AddOn: models.AddOn{ID: "oatmilk", Name: "Oat Milk", Price: 20}, Quantity: 2},
				},
			},
			{
				LineID:       "line-2",
				SourceItemID: "americano",
				Name:         "Americano",
				Quantity:     1,
				UnitPrice:    100,
			},
		},
		TotalPrice: 440,
		TotalItems: 3,
	}
	return draft, cart
}

func TestOrderSummaryContents(t *testing.T) {
	draft, cart := summaryFixture("gcash")
	summary := BuildOrderSummary(draft, cart, "GCash")

	for _, want := range []string{
		"Customer: Maria Santos",
		"Contact: 0917 123 4567",
		"Service: Delivery",
		"Address: 123 Example St",
		"Landmark: Near the plaza",
		"Café Latte (Large) + Oat Milk x2 x2 - ₱340",
		"Americano x1 - ₱100",
		"TOTAL: ₱440",
		"Payment: GCash",
		"Payment Screenshot",
		"Notes: Less ice please",
	} {
		if !strings.Contains(summary, want) {
			t.Fatalf("summary missing %q:\n%s", want, summary)
		}
	}
}

func TestCashOrderOmitsProofReminder(t *testing.T) {
	draft, cart := summaryFixture(models.CashMethodID)
	summary := BuildOrderSummary(draft, cart, "Cash (Onsite)")

	if strings.Contains(summary, "Payment Screenshot") {
		t.Fatalf("expected no proof reminder for cash, got:\n%s", summary)
	}
	if !strings.Contains(summary, "Payment: Cash (Onsite)") {
		t.Fatalf("expected cash method name, got:\n%s", summary)
	}
}

func TestPickupSummaryResolvesTime(t *testing.T) {
	draft, cart := summaryFixture("gcash")
	draft.ServiceType = models.ServicePickup
	draft.PickupTime = models.PickupWindowMedium

	summary := BuildOrderSummary(draft, cart, "GCash")
	if !strings.Contains(summary, "Pickup Time: 15-20 minutes") {
		t.Fatalf("expected preset pickup time, got:\n%s", summary)
	}

	draft.PickupTime = models.PickupWindowCustom
	draft.CustomTime = "2:30 PM"
	summary = BuildOrderSummary(draft, cart, "GCash")
	if !strings.Contains(summary, "Pickup Time: 2:30 PM") {
		t.Fatalf("expected custom pickup time, got:\n%s", summary)
	}
}

func TestDineInSummaryShowsPartySize(t *testing.T) {
	draft, cart := summaryFixture("gcash")
	draft.ServiceType = models.ServiceDineIn
	draft.PartySize = 1

	summary := BuildOrderSummary(draft, cart, "GCash")
	if !strings.Contains(summary, "Party Size: 1 person") {
		t.Fatalf("expected singular party size, got:\n%s", summary)
	}

	draft.PartySize = 4
	summary = BuildOrderSummary(draft, cart, "GCash")
	if !strings.Contains(summary, "Party Size: 4 persons") {
		t.Fatalf("expected plural party size, got:\n%s", summary)
	}
}

func TestBuildDispatchURLEncodesSummary(t *testing.T) {
	summary := "🛒 ORDER\n👤 Customer: Maria & Co."
	dispatchURL := BuildDispatchURL("justcafe", summary)

	if !strings.HasPrefix(dispatchURL, "https://m.me/justcafe?text=") {
		t.Fatalf("unexpected dispatch URL prefix: %s", dispatchURL)
	}

	parsed, err := url.Parse(dispatchURL)
	if err != nil {
		t.Fatalf("dispatch URL does not parse: %v", err)
	}
	if got := parsed.Query().Get("text"); got != summary {
		t.Fatalf("round-tripped text = %q, want %q", got, summary)
	}
}

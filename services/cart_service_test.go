package services

import (
	"testing"

	"cafe-storefront/models"
)

func latteFixture() *models.MenuItem {
	return &models.MenuItem{
		ID:        "latte",
		Name:      "Café Latte",
		BasePrice: 120,
		Category:  "coffee",
		Variations: []models.Variation{
			{ID: "medium", Name: "Medium", Price: 0},
			{ID: "large", Name: "Large", Price: 30},
		},
		AddOns: []models.AddOn{
			{ID: "espresso-shot", Name: "Extra Espresso Shot", Price: 25},
			{ID: "oatmilk", Name: "Oat Milk", Price: 20},
		},
	}
}

func largeVariation() *models.Variation {
	return &models.Variation{ID: "large", Name: "Large", Price: 30}
}

func oatmilk(qty int) models.SelectedAddOn {
	return models.SelectedAddOn{AddOn: models.AddOn{ID: "oatmilk", Name: "Oat Milk", Price: 20}, Quantity: qty}
}

func espressoShot(qty int) models.SelectedAddOn {
	return models.SelectedAddOn{AddOn: models.AddOn{ID: "espresso-shot", Name: "Extra Espresso Shot", Price: 25}, Quantity: qty}
}

func TestAddToCartMergesIdenticalConfigurations(t *testing.T) {
	svc := NewCartService()
	item := latteFixture()

	svc.AddToCart("s1", item, 1, largeVariation(), []models.SelectedAddOn{oatmilk(1)})
	svc.AddToCart("s1", item, 1, largeVariation(), []models.SelectedAddOn{oatmilk(1)})

	cart := svc.GetCart("s1")
	if len(cart.Items) != 1 {
		t.Fatalf("expected 1 line after identical adds, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 2 {
		t.Fatalf("expected merged quantity 2, got %d", cart.Items[0].Quantity)
	}
	if cart.Items[0].UnitPrice != 170 {
		t.Fatalf("expected unit price 170 (120+30+20), got %d", cart.Items[0].UnitPrice)
	}
	if cart.TotalPrice != 340 {
		t.Fatalf("expected total 340, got %d", cart.TotalPrice)
	}
}

func TestAddToCartKeepsDistinctConfigurationsSeparate(t *testing.T) {
	svc := NewCartService()
	item := latteFixture()

	svc.AddToCart("s1", item, 1, largeVariation(), nil)
	svc.AddToCart("s1", item, 1, nil, nil)
	svc.AddToCart("s1", item, 1, largeVariation(), []models.SelectedAddOn{oatmilk(1)})

	cart := svc.GetCart("s1")
	if len(cart.Items) != 3 {
		t.Fatalf("expected 3 distinct lines, got %d", len(cart.Items))
	}
}

func TestAddToCartMergeSumsQuantities(t *testing.T) {
	svc := NewCartService()
	item := latteFixture()

	svc.AddToCart("s1", item, 2, nil, nil)
	svc.AddToCart("s1", item, 3, nil, nil)
	svc.AddToCart("s1", item, 1, nil, nil)

	cart := svc.GetCart("s1")
	if len(cart.Items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 6 {
		t.Fatalf("expected summed quantity 6, got %d", cart.Items[0].Quantity)
	}
}

func TestAddOnOrderDoesNotAffectIdentity(t *testing.T) {
	svc := NewCartService()
	item := latteFixture()

	svc.AddToCart("s1", item, 1, nil, []models.SelectedAddOn{oatmilk(1), espressoShot(1)})
	svc.AddToCart("s1", item, 1, nil, []models.SelectedAddOn{espressoShot(1), oatmilk(1)})

	cart := svc.GetCart("s1")
	if len(cart.Items) != 1 {
		t.Fatalf("expected add-on order to be irrelevant, got %d lines", len(cart.Items))
	}
	if cart.Items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", cart.Items[0].Quantity)
	}
}

func TestRepeatedAddOnSelectionsAggregate(t *testing.T) {
	svc := NewCartService()
	item := latteFixture()

	svc.AddToCart("s1", item, 1, nil, []models.SelectedAddOn{oatmilk(1), oatmilk(1)})

	cart := svc.GetCart("s1")
	if len(cart.Items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(cart.Items))
	}
	line := cart.Items[0]
	if len(line.SelectedAddOns) != 1 {
		t.Fatalf("expected one grouped add-on entry, got %d", len(line.SelectedAddOns))
	}
	if line.SelectedAddOns[0].Quantity != 2 {
		t.Fatalf("expected grouped quantity 2, got %d", line.SelectedAddOns[0].Quantity)
	}
	if line.UnitPrice != 160 {
		t.Fatalf("expected unit price 160 (120+20*2), got %d", line.UnitPrice)
	}

	// The same configuration expressed as one grouped selection merges.
	svc.AddToCart("s1", item, 1, nil, []models.SelectedAddOn{oatmilk(2)})
	cart = svc.GetCart("s1")
	if len(cart.Items) != 1 {
		t.Fatalf("expected grouped and repeated selections to share identity, got %d lines", len(cart.Items))
	}
	if cart.Items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2 after merge, got %d", cart.Items[0].Quantity)
	}
}

func TestUpdateQuantityNeverRecomputesUnitPrice(t *testing.T) {
	svc := NewCartService()
	item := latteFixture()

	line := svc.AddToCart("s1", item, 1, largeVariation(), []models.SelectedAddOn{oatmilk(1)})
	if line.UnitPrice != 170 {
		t.Fatalf("expected unit price 170, got %d", line.UnitPrice)
	}

	svc.UpdateQuantity("s1", line.LineID, 5)
	svc.UpdateQuantity("s1", line.LineID, 3)

	cart := svc.GetCart("s1")
	if cart.Items[0].UnitPrice != 170 {
		t.Fatalf("unit price changed to %d after quantity updates", cart.Items[0].UnitPrice)
	}
	if cart.TotalPrice != 510 {
		t.Fatalf("expected total 510 (170*3), got %d", cart.TotalPrice)
	}
}

func TestUpdateQuantityZeroOrNegativeRemovesLine(t *testing.T) {
	svc := NewCartService()
	item := latteFixture()

	first := svc.AddToCart("s1", item, 1, nil, nil)
	svc.UpdateQuantity("s1", first.LineID, 0)
	if got := len(svc.GetCart("s1").Items); got != 0 {
		t.Fatalf("expected empty cart after quantity 0, got %d lines", got)
	}

	second := svc.AddToCart("s1", item, 1, largeVariation(), nil)
	svc.UpdateQuantity("s1", second.LineID, -1)
	if got := len(svc.GetCart("s1").Items); got != 0 {
		t.Fatalf("expected empty cart after quantity -1, got %d lines", got)
	}
}

func TestRemoveUnknownLineIsNoOp(t *testing.T) {
	svc := NewCartService()
	item := latteFixture()

	svc.AddToCart("s1", item, 1, nil, nil)
	svc.RemoveFromCart("s1", "does-not-exist")
	svc.UpdateQuantity("s1", "does-not-exist", 4)

	cart := svc.GetCart("s1")
	if len(cart.Items) != 1 {
		t.Fatalf("expected untouched cart, got %d lines", len(cart.Items))
	}
	if cart.Items[0].Quantity != 1 {
		t.Fatalf("expected quantity 1, got %d", cart.Items[0].Quantity)
	}
}

func TestClearCart(t *testing.T) {
	svc := NewCartService()
	item := latteFixture()

	svc.AddToCart("s1", item, 2, nil, nil)
	svc.AddToCart("s1", item, 1, largeVariation(), nil)
	svc.ClearCart("s1")

	cart := svc.GetCart("s1")
	if len(cart.Items) != 0 || cart.TotalPrice != 0 || cart.TotalItems != 0 {
		t.Fatalf("expected empty cart, got %+v", cart)
	}
}

func TestCartsAreIsolatedPerSession(t *testing.T) {
	svc := NewCartService()
	item := latteFixture()

	svc.AddToCart("s1", item, 1, nil, nil)
	svc.AddToCart("s2", item, 4, nil, nil)

	if got := svc.TotalItems("s1"); got != 1 {
		t.Fatalf("expected 1 item in s1, got %d", got)
	}
	if got := svc.TotalItems("s2"); got != 4 {
		t.Fatalf("expected 4 items in s2, got %d", got)
	}

	svc.ClearCart("s1")
	if got := svc.TotalItems("s2"); got != 4 {
		t.Fatalf("clearing s1 affected s2, got %d items", got)
	}
}

func TestTotalsRecomputedAcrossMixedLines(t *testing.T) {
	svc := NewCartService()
	item := latteFixture()
	other := &models.MenuItem{ID: "americano", Name: "Americano", BasePrice: 100}

	svc.AddToCart("s1", item, 2, largeVariation(), nil) // 150 each
	svc.AddToCart("s1", other, 3, nil, nil)             // 100 each

	cart := svc.GetCart("s1")
	if cart.TotalPrice != 600 {
		t.Fatalf("expected total 600 (150*2+100*3), got %d", cart.TotalPrice)
	}
	if cart.TotalItems != 5 {
		t.Fatalf("expected 5 items, got %d", cart.TotalItems)
	}
}

func TestNormalizeAddOnsSortsById(t *testing.T) {
	normalized := NormalizeAddOns([]models.SelectedAddOn{oatmilk(1), espressoShot(1)})
	if len(normalized) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(normalized))
	}
	if normalized[0].ID != "espresso-shot" || normalized[1].ID != "oatmilk" {
		t.Fatalf("expected ids sorted ascending, got %s, %s", normalized[0].ID, normalized[1].ID)
	}
}

func TestUnitPriceCountsAddOnOccurrences(t *testing.T) {
	item := latteFixture()
	price := UnitPrice(item, largeVariation(), []models.SelectedAddOn{oatmilk(2), espressoShot(1)})
	if price != 215 {
		t.Fatalf("expected 215 (120+30+20*2+25), got %d", price)
	}
}

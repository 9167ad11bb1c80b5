package services

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"cafe-storefront/models"

	"github.com/google/uuid"
)

// CartService keeps one cart per session in memory. Every mutation runs under
// the store lock, so rapid sequential requests compose as an ordered sequence
// of read-modify-write transitions instead of clobbering each other.
// TODO: sweep carts whose session token has expired instead of relying on
// process restarts to reclaim them.
type CartService struct {
	mu    sync.Mutex
	carts map[string][]models.CartItem
}

func NewCartService() *CartService {
	return &CartService{
		carts: make(map[string][]models.CartItem),
	}
}

// NormalizeAddOns groups a selection by add-on id, summing occurrence counts,
// and sorts the result by id. Selecting the same add-on twice therefore yields
// one entry with quantity 2, and selection order never changes the outcome.
func NormalizeAddOns(selections []models.SelectedAddOn) []models.SelectedAddOn {
	if len(selections) == 0 {
		return nil
	}

	grouped := []models.SelectedAddOn{}
	for _, sel := range selections {
		qty := sel.Quantity
		if qty < 1 {
			qty = 1
		}
		found := false
		for i := range grouped {
			if grouped[i].ID == sel.ID {
				grouped[i].Quantity += qty
				found = true
				break
			}
		}
		if !found {
			sel.Quantity = qty
			grouped = append(grouped, sel)
		}
	}

	sort.Slice(grouped, func(i, j int) bool { return grouped[i].ID < grouped[j].ID })
	return grouped
}

// UnitPrice is the fixed per-unit price of a configuration: base price plus
// the variation delta plus every add-on delta counted per occurrence.
func UnitPrice(item *models.MenuItem, variation *models.Variation, addOns []models.SelectedAddOn) int {
	price := item.BasePrice
	if variation != nil {
		price += variation.Price
	}
	for _, addOn := range addOns {
		qty := addOn.Quantity
		if qty < 1 {
			qty = 1
		}
		price += addOn.Price * qty
	}
	return price
}

// configurationKey is the canonical identity of a purchasable configuration.
// Two add requests with equal keys land on the same cart line. The add-on list
// must already be normalized.
func configurationKey(sourceItemID string, variation *models.Variation, addOns []models.SelectedAddOn) string {
	variationKey := "none"
	if variation != nil {
		variationKey = variation.ID
	}

	addOnsKey := "none"
	if len(addOns) > 0 {
		pairs := make([]string, 0, len(addOns))
		for _, addOn := range addOns {
			pairs = append(pairs, fmt.Sprintf("%s:%d", addOn.ID, addOn.Quantity))
		}
		addOnsKey = strings.Join(pairs, ",")
	}

	return sourceItemID + "|" + variationKey + "|" + addOnsKey
}

// AddToCart merges the request into an existing line with the same
// configuration, or appends a new line. A merge only bumps the quantity; the
// unit price stays whatever it was when the line was first created.
func (s *CartService) AddToCart(sessionID string, item *models.MenuItem, quantity int, variation *models.Variation, addOns []models.SelectedAddOn) models.CartItem {
	if quantity < 1 {
		quantity = 1
	}

	normalized := NormalizeAddOns(addOns)
	key := configurationKey(item.ID, variation, normalized)

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[sessionID]
	for i := range items {
		existingKey := configurationKey(items[i].SourceItemID, items[i].SelectedVariation, items[i].SelectedAddOns)
		if existingKey == key {
			items[i].Quantity += quantity
			return items[i]
		}
	}

	line := models.CartItem{
		LineID:            uuid.NewString(),
		SourceItemID:      item.ID,
		Name:              item.Name,
		Quantity:          quantity,
		UnitPrice:         UnitPrice(item, variation, normalized),
		SelectedVariation: variation,
		SelectedAddOns:    normalized,
	}
	s.carts[sessionID] = append(items, line)
	return line
}

// UpdateQuantity replaces a line's quantity in place. A quantity of zero or
// below removes the line. Unknown ids are a no-op.
func (s *CartService) UpdateQuantity(sessionID, lineID string, quantity int) {
	if quantity <= 0 {
		s.RemoveFromCart(sessionID, lineID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[sessionID]
	for i := range items {
		if items[i].LineID == lineID {
			items[i].Quantity = quantity
			return
		}
	}
}

// RemoveFromCart deletes the line with the given id; absent ids are a no-op.
func (s *CartService) RemoveFromCart(sessionID, lineID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[sessionID]
	for i := range items {
		if items[i].LineID == lineID {
			s.carts[sessionID] = append(items[:i], items[i+1:]...)
			return
		}
	}
}

func (s *CartService) ClearCart(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

// GetCart returns a snapshot of the session's cart with derived totals.
func (s *CartService) GetCart(sessionID string) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[sessionID]
	snapshot := make([]models.CartItem, len(items))
	copy(snapshot, items)

	cart := models.Cart{Items: snapshot}
	for _, item := range snapshot {
		cart.TotalPrice += item.UnitPrice * item.Quantity
		cart.TotalItems += item.Quantity
	}
	return cart
}

// TotalPrice sums unit price times quantity over all lines. Always recomputed
// from current state, never cached.
func (s *CartService) TotalPrice(sessionID string) int {
	return s.GetCart(sessionID).TotalPrice
}

func (s *CartService) TotalItems(sessionID string) int {
	return s.GetCart(sessionID).TotalItems
}

package models

// SelectedAddOn is one distinct add-on on a cart line with its aggregated
// quantity. Lines never hold the same add-on id twice.
type SelectedAddOn struct {
	AddOn
	Quantity int `json:"quantity"`
}

// CartItem is one purchasable configuration in the cart. LineID identifies the
// line itself; SourceItemID points back at the catalog entry. UnitPrice is
// fixed when the line is created and never recomputed, even when the quantity
// changes later.
type CartItem struct {
	LineID            string          `json:"line_id"`
	SourceItemID      string          `json:"source_item_id"`
	Name              string          `json:"name"`
	Quantity          int             `json:"quantity"`
	UnitPrice         int             `json:"unit_price"`
	SelectedVariation *Variation      `json:"selected_variation,omitempty"`
	SelectedAddOns    []SelectedAddOn `json:"selected_add_ons,omitempty"`
}

type Cart struct {
	Items      []CartItem `json:"items"`
	TotalPrice int        `json:"total_price"`
	TotalItems int        `json:"total_items"`
}

package models

// ToppingAmount is the portion tier of a configured topping.
type ToppingAmount string

const (
	ToppingAmountNone   ToppingAmount = "none"
	ToppingAmountLight  ToppingAmount = "light"
	ToppingAmountNormal ToppingAmount = "normal"
	ToppingAmountExtra  ToppingAmount = "extra"
)

// ParseToppingAmount validates a stored amount value. Unknown or empty
// values fall back to "normal" so old order lines always load.
func ParseToppingAmount(s string) ToppingAmount {
	switch ToppingAmount(s) {
	case ToppingAmountNone, ToppingAmountLight, ToppingAmountNormal, ToppingAmountExtra:
		return ToppingAmount(s)
	default:
		return ToppingAmountNormal
	}
}

// ConfiguredTopping is one topping choice on a cart selection. Variant
// defaults are free unless the amount is upgraded.
type ConfiguredTopping struct {
	ID        uint          `json:"id"`
	Name      string        `json:"name"`
	Amount    ToppingAmount `json:"amount"`
	Price     float64       `json:"price"`
	IsDefault bool          `json:"is_default"`
	Category  string        `json:"category"`
}

// ConfiguredModifier is a flat price adjustment on a cart selection.
// The adjustment may be negative (e.g. "no cheese" discount).
type ConfiguredModifier struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	PriceAdjustment float64 `json:"price_adjustment"`
}

// CartSelection is an in-progress item configuration. It lives in the
// customer's session and only becomes durable as an OrderLine at checkout.
type CartSelection struct {
	MenuID              uint                 `json:"menu_id"`
	VariantID           *uint                `json:"variant_id,omitempty"`
	ItemName            string               `json:"item_name"`
	VariantName         string               `json:"variant_name,omitempty"`
	Quantity            int                  `json:"quantity"`
	Toppings            []ConfiguredTopping  `json:"toppings"`
	Modifiers           []ConfiguredModifier `json:"modifiers"`
	SpecialInstructions string               `json:"special_instructions,omitempty"`
	UnitPrice           float64              `json:"unit_price"`
	DisplayName         string               `json:"display_name"`
}

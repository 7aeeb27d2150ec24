package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ovenside/ordering-engine/models"
	"github.com/ovenside/ordering-engine/utils"
)

// ErrInvalidQuantity is returned when a selection reaches checkout with a
// quantity below 1. The configuration UI is expected to reject this first.
var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// toppingRecord is the flat wire shape stored in OrderLine.Toppings.
type toppingRecord struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Amount    string  `json:"amount"`
	Price     float64 `json:"price"`
	IsDefault bool    `json:"isDefault"`
	Category  string  `json:"category"`
}

// modifierRecord is the flat wire shape stored in OrderLine.Modifiers.
type modifierRecord struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	PriceAdjustment float64 `json:"priceAdjustment"`
}

// ToOrderLine builds the persistable order line for a configured cart
// selection. The unit price is captured as-is and the total is fixed at
// write time; neither is ever recomputed from live catalog prices.
func ToOrderLine(sel models.CartSelection, orderID uint) (models.OrderLine, error) {
	if sel.Quantity < 1 {
		return models.OrderLine{}, fmt.Errorf("%w: got %d", ErrInvalidQuantity, sel.Quantity)
	}

	toppings := make([]toppingRecord, 0, len(sel.Toppings))
	for _, t := range sel.Toppings {
		toppings = append(toppings, toppingRecord{
			ID:        t.ID,
			Name:      t.Name,
			Amount:    string(t.Amount),
			Price:     t.Price,
			IsDefault: t.IsDefault,
			Category:  t.Category,
		})
	}
	modifiers := make([]modifierRecord, 0, len(sel.Modifiers))
	for _, m := range sel.Modifiers {
		modifiers = append(modifiers, modifierRecord{
			ID:              m.ID,
			Name:            m.Name,
			PriceAdjustment: m.PriceAdjustment,
		})
	}

	toppingBlob, err := json.Marshal(toppings)
	if err != nil {
		return models.OrderLine{}, err
	}
	modifierBlob, err := json.Marshal(modifiers)
	if err != nil {
		return models.OrderLine{}, err
	}

	now := time.Now()
	return models.OrderLine{
		OrderID:             orderID,
		MenuID:              sel.MenuID,
		VariantID:           sel.VariantID,
		ItemName:            sel.ItemName,
		VariantName:         sel.VariantName,
		Quantity:            sel.Quantity,
		UnitPrice:           sel.UnitPrice,
		TotalPrice:          sel.UnitPrice * float64(sel.Quantity),
		Toppings:            toppingBlob,
		Modifiers:           modifierBlob,
		SpecialInstructions: sel.SpecialInstructions,
		CreatedAt:           now,
		UpdatedAt:           now,
	}, nil
}

// FromOrderLine reconstructs a working cart selection from a persisted
// order line. Blobs are schema-on-write, so anything missing or malformed
// degrades to an empty selection instead of failing: a null or non-array
// blob yields no toppings/modifiers, records missing fields take zero
// values, and unknown topping amounts coerce to "normal".
func FromOrderLine(line models.OrderLine) models.CartSelection {
	sel := models.CartSelection{
		MenuID:              line.MenuID,
		VariantID:           line.VariantID,
		ItemName:            line.ItemName,
		VariantName:         line.VariantName,
		Quantity:            line.Quantity,
		Toppings:            decodeToppings(line.Toppings),
		Modifiers:           decodeModifiers(line.Modifiers),
		SpecialInstructions: line.SpecialInstructions,
		UnitPrice:           line.UnitPrice,
	}

	// Display name is re-derived, not stored verbatim.
	if sel.VariantName != "" {
		sel.DisplayName = sel.VariantName + " " + sel.ItemName
	} else {
		sel.DisplayName = sel.ItemName
	}
	return sel
}

func decodeToppings(blob json.RawMessage) []models.ConfiguredTopping {
	var records []toppingRecord
	if len(blob) > 0 {
		if err := json.Unmarshal(blob, &records); err != nil {
			logMalformedBlob("toppings", err)
			records = nil
		}
	}

	toppings := make([]models.ConfiguredTopping, 0, len(records))
	for _, r := range records {
		toppings = append(toppings, models.ConfiguredTopping{
			ID:        r.ID,
			Name:      r.Name,
			Amount:    models.ParseToppingAmount(r.Amount),
			Price:     r.Price,
			IsDefault: r.IsDefault,
			Category:  r.Category,
		})
	}
	return toppings
}

func decodeModifiers(blob json.RawMessage) []models.ConfiguredModifier {
	var records []modifierRecord
	if len(blob) > 0 {
		if err := json.Unmarshal(blob, &records); err != nil {
			logMalformedBlob("modifiers", err)
			records = nil
		}
	}

	modifiers := make([]models.ConfiguredModifier, 0, len(records))
	for _, r := range records {
		modifiers = append(modifiers, models.ConfiguredModifier{
			ID:              r.ID,
			Name:            r.Name,
			PriceAdjustment: r.PriceAdjustment,
		})
	}
	return modifiers
}

// logMalformedBlob records a recovered deserialization failure. The caller
// still gets an empty selection; this never reaches the end user.
func logMalformedBlob(kind string, err error) {
	if utils.ErrorLogger != nil {
		utils.ErrorLogger.Warnf("malformed %s blob, using empty selection: %v", kind, err)
	}
}

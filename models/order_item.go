package models

import (
	"encoding/json"
	"time"
)

// OrderLine is the persisted form of a configured cart item. Prices are
// captured at checkout and never recomputed from the live catalog, so
// historical order totals stay stable when menu prices change. Toppings and
// Modifiers are stored as JSON blobs (schema-on-write).
type OrderLine struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OrderID uint `gorm:"not null;index" json:"order_id"`
	// Omitting Order field from JSON to avoid recursive nesting
	Order               Order           `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	MenuID              uint            `gorm:"not null" json:"menu_id"`
	VariantID           *uint           `gorm:"index" json:"variant_id,omitempty"`
	ItemName            string          `gorm:"type:varchar(255);not null" json:"item_name"`
	VariantName         string          `gorm:"type:varchar(255)" json:"variant_name"`
	Quantity            int             `gorm:"not null" json:"quantity"`
	UnitPrice           float64         `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	TotalPrice          float64         `gorm:"type:decimal(10,2);not null" json:"total_price"`
	Toppings            json.RawMessage `gorm:"type:json" json:"toppings"`
	Modifiers           json.RawMessage `gorm:"type:json" json:"modifiers"`
	SpecialInstructions string          `gorm:"type:text" json:"special_instructions"`
	CreatedAt           time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt           time.Time       `gorm:"not null" json:"updated_at"`
}

package models

import "time"

// Menu is a catalog item as provided by the menu collaborators. The core
// only reads it: display name for variant-rule resolution, base price for
// building cart selections.
type Menu struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	Name        string        `gorm:"type:varchar(255);not null" json:"name"`
	BasePrice   float64       `gorm:"type:decimal(10,2);not null" json:"base_price"`
	Description string        `gorm:"type:text" json:"description"`
	Variants    []MenuVariant `gorm:"foreignKey:MenuID" json:"variants"`
	CreatedAt   time.Time     `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time     `gorm:"not null" json:"updated_at"`
}

// MenuVariant is a size or style option of a menu item, e.g. "Small" or
// "Large". Price is the full unit price for that variant, not a delta.
type MenuVariant struct {
	ID     uint    `gorm:"primaryKey" json:"id"`
	MenuID uint    `gorm:"not null;index" json:"menu_id"`
	Menu   Menu    `gorm:"foreignKey:MenuID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Name   string  `gorm:"type:varchar(100);not null" json:"name"`
	Size   string  `gorm:"type:varchar(50)" json:"size"`
	Crust  string  `gorm:"type:varchar(50)" json:"crust"`
	Price  float64 `gorm:"type:decimal(10,2);not null" json:"price"`
}

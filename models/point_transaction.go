package models

import (
	"time"
)

// PointTransaction is the append-only audit trail for loyalty point
// changes. Delta is signed: redemptions are negative, adjustments may go
// either way. Rows are never updated or deleted.
type PointTransaction struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CustomerID uint      `gorm:"not null;index" json:"customer_id"`
	Customer   Customer  `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Delta      int       `gorm:"not null" json:"delta"`
	Type       string    `gorm:"type:varchar(20);not null" json:"type"`
	Reason     string    `gorm:"type:text" json:"reason"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
}

package models

import (
	"time"
)

// Order is the checkout aggregate the order lines hang off. Its lifecycle
// (status transitions, fulfillment) is owned by the ordering collaborators;
// this package only needs the total for loyalty redemption math.
type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	CustomerID  uint        `gorm:"not null;index" json:"customer_id"`
	Customer    Customer    `gorm:"foreignKey:CustomerID" json:"customer"`
	Status      string      `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	TotalAmount float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"total_amount"`
	Lines       []OrderLine `gorm:"foreignKey:OrderID" json:"lines"`
	CreatedAt   time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"not null" json:"updated_at"`
}

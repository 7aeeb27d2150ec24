package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ovenside/ordering-engine/models"
	"github.com/ovenside/ordering-engine/utils"
)

// Full checkout path: configure selections, persist them as order lines,
// reload the cart from storage, then redeem points against the order total.
func TestCheckoutFlow(t *testing.T) {
	utils.InitLogger()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(
		&models.Customer{},
		&models.Order{},
		&models.OrderLine{},
		&models.PointTransaction{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	customer := models.Customer{Name: "Regular", Points: 1000}
	assert.NoError(t, db.Create(&customer).Error)
	order := models.Order{CustomerID: customer.ID, Status: "pending"}
	assert.NoError(t, db.Create(&order).Error)

	selections := []models.CartSelection{
		{
			MenuID:    1,
			ItemName:  "Stuffed Pizza",
			Quantity:  1,
			UnitPrice: 15.00,
			Toppings: []models.ConfiguredTopping{
				{ID: 2, Name: "Sausage", Amount: models.ToppingAmountExtra, Price: 2.00, Category: "meat"},
			},
		},
		{
			MenuID:    2,
			ItemName:  "Garden Salad",
			Quantity:  1,
			UnitPrice: 5.00,
			Modifiers: []models.ConfiguredModifier{
				{ID: 4, Name: "No Croutons", PriceAdjustment: 0},
			},
		},
	}

	var orderTotal float64
	for _, sel := range selections {
		line, err := ToOrderLine(sel, order.ID)
		assert.NoError(t, err)
		assert.NoError(t, db.Create(&line).Error)
		orderTotal += line.TotalPrice
	}
	assert.Equal(t, 20.00, orderTotal)

	// Reload the lines and make sure the cart round-trips through storage.
	var lines []models.OrderLine
	assert.NoError(t, db.Where("order_id = ?", order.ID).Order("id").Find(&lines).Error)
	assert.Len(t, lines, 2)

	reloaded := FromOrderLine(lines[0])
	assert.Equal(t, selections[0].Toppings, reloaded.Toppings)
	assert.Equal(t, "Stuffed Pizza", reloaded.DisplayName)

	// Loyalty composes with the cart only at the order-total level.
	svc := NewLoyaltyService(db)
	suggestions := svc.GenerateSuggestions(customer.Points, orderTotal)
	assert.Equal(t, &Suggestion{Points: 100, Discount: 5}, suggestions.Quarter)
	assert.Equal(t, &Suggestion{Points: 200, Discount: 10}, suggestions.Half)
	assert.Equal(t, &Suggestion{Points: 400, Discount: 20}, suggestions.Max)

	calc := svc.CalculateDiscount(suggestions.Max.Points, customer.Points, orderTotal)
	assert.Equal(t, RedemptionValid, calc.State)
	assert.Equal(t, 20.00, calc.Discount)

	result, err := svc.CommitRedemption(customer.ID, suggestions.Max.Points, "checkout discount")
	assert.NoError(t, err)
	assert.Equal(t, 600, result.NewBalance)
	assert.False(t, result.Conflicted)
}

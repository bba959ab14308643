package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product categories as stored in the database.
const (
	CategoryMain  = "MAIN"
	CategorySide  = "SIDE"
	CategoryDrink = "DRINK"
)

// Product represents a food product available for order.
// Price is a decimal serialized as a string to avoid floating-point
// currency drift. Availability and creation time are internal; the
// storefront only ever sees available products.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"-"`
	NameZh      string          `json:"nameZh"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`
	IsAvailable bool            `json:"-"`
	IsPopular   bool            `json:"isPopular"`
	IsBreakfast bool            `json:"isBreakfast"`
	IsDinner    bool            `json:"isDinner"`
	CreatedAt   time.Time       `json:"-"`
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is the payment selection made in the storefront.
type PaymentMethod string

const (
	PaymentLinePay    PaymentMethod = "line-pay"
	PaymentApplePay   PaymentMethod = "apple-pay"
	PaymentCreditCard PaymentMethod = "credit-card"
)

// Valid reports whether the method is one of the closed storefront set.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentLinePay, PaymentApplePay, PaymentCreditCard:
		return true
	}
	return false
}

// PaymentMethodType is the backing enumeration persisted with an order.
type PaymentMethodType string

const (
	PaymentTypeLinePay    PaymentMethodType = "LINE_PAY"
	PaymentTypeApplePay   PaymentMethodType = "APPLE_PAY"
	PaymentTypeCreditCard PaymentMethodType = "CREDIT_CARD"
)

// Backing maps the storefront tag to its persisted enumeration value.
// Unrecognized tags fall back to CREDIT_CARD.
func (m PaymentMethod) Backing() PaymentMethodType {
	switch m {
	case PaymentLinePay:
		return PaymentTypeLinePay
	case PaymentApplePay:
		return PaymentTypeApplePay
	default:
		return PaymentTypeCreditCard
	}
}

// DeliveryInfo is the free-text delivery contact supplied at checkout.
type DeliveryInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// OrderRequest is the POST /api/orders payload.
type OrderRequest struct {
	OrderNumber   string           `json:"orderNumber"`
	PaymentMethod PaymentMethod    `json:"paymentMethod"`
	DeliveryInfo  DeliveryInfo     `json:"deliveryInfo"`
	Items         []OrderItemInput `json:"items"`
	TotalPrice    decimal.Decimal  `json:"totalPrice"`
}

// OrderItemInput is a single submitted line item. Beyond the non-empty
// item array check, fields are accepted as-is.
type OrderItemInput struct {
	ID       string          `json:"id"`
	NameZh   string          `json:"nameZh"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// Order is a persisted order row together with its line items.
// Subtotal is computed server-side; Total is the caller-supplied value
// persisted verbatim. The two are never cross-validated.
type Order struct {
	ID              string            `json:"orderId"`
	OrderNumber     string            `json:"orderNumber"`
	Subtotal        decimal.Decimal   `json:"subtotal"`
	Total           decimal.Decimal   `json:"total"`
	PaymentMethod   PaymentMethodType `json:"paymentMethod"`
	EstimatedTime   int               `json:"estimatedTime"`
	DeliveryName    string            `json:"deliveryName"`
	DeliveryPhone   string            `json:"deliveryPhone"`
	DeliveryAddress string            `json:"deliveryAddress"`
	Items           []OrderLine       `json:"items"`
	CreatedAt       time.Time         `json:"createdAt"`
}

// OrderLine is one persisted line item of an order.
type OrderLine struct {
	ID          string          `json:"-"`
	OrderID     string          `json:"-"`
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

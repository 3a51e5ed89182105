// Package order defines the order data rendered onto a receipt
package order

import "time"

// PromotionType distinguishes how an order-level discount was computed
type PromotionType string

const (
	PromotionPercentage PromotionType = "percentage"
	PromotionFixed      PromotionType = "fixed"
)

// Order is the external input to a render pass. The engine treats it as an
// immutable snapshot and never mutates it.
type Order struct {
	StoreName     string    `json:"storeName"`
	StoreNumber   string    `json:"storeNumber"`
	OrderID       string    `json:"orderId"`
	Timestamp     time.Time `json:"timestamp"`
	Subtotal      float64   `json:"subtotal"`
	TaxRate       float64   `json:"taxRate"` // fraction, e.g. 0.085
	TaxAmount     float64   `json:"taxAmount"`
	TotalAmount   float64   `json:"totalAmount"`
	PaymentMethod string    `json:"paymentMethod"`

	Customer *CustomerInfo `json:"customer,omitempty"`
	Table    *TableInfo    `json:"table,omitempty"`

	Items           []LineItem       `json:"items"`
	ItemPromotions  []ItemPromotion  `json:"itemPromotions,omitempty"`
	OrderPromotions []OrderPromotion `json:"orderPromotions,omitempty"`
}

// LineItem is one purchased product entry
type LineItem struct {
	Name       string   `json:"name"`
	Quantity   int      `json:"quantity"`
	UnitPrice  float64  `json:"unitPrice"`
	TotalPrice float64  `json:"totalPrice"`
	Sku        string   `json:"sku,omitempty"`
	Category   string   `json:"category,omitempty"`
	Modifiers  []string `json:"modifiers,omitempty"`
}

// CustomerInfo holds loyalty data for the ordering customer
type CustomerInfo struct {
	CustomerID    string    `json:"customerId"`
	Name          string    `json:"name"`
	MemberStatus  string    `json:"memberStatus"`
	LoyaltyPoints int       `json:"loyaltyPoints"`
	MemberSince   time.Time `json:"memberSince"`
}

// TableInfo holds dine-in seating data
type TableInfo struct {
	TableNumber   string  `json:"tableNumber"`
	ServerName    string  `json:"serverName"`
	GuestCount    int     `json:"guestCount"`
	ServiceRating float64 `json:"serviceRating"`
}

// ItemPromotion is a named discount applied to a specific item
type ItemPromotion struct {
	Name     string  `json:"name"`
	Discount float64 `json:"discount"`
}

// OrderPromotion is a named discount applied to the whole order
type OrderPromotion struct {
	Name       string        `json:"name"`
	Discount   float64       `json:"discount"`
	Type       PromotionType `json:"type"`
	Percentage float64       `json:"percentage,omitempty"` // set for percentage promotions
}

// ItemCount returns the number of distinct line items
func (o *Order) ItemCount() int {
	return len(o.Items)
}

// TotalQuantity returns the summed quantity across all line items
func (o *Order) TotalQuantity() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}

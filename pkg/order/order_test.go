package order

import (
	"encoding/json"
	"testing"
)

func TestItemCount(t *testing.T) {
	o := &Order{
		Items: []LineItem{
			{Name: "Coffee", Quantity: 2},
			{Name: "Bagel", Quantity: 1},
		},
	}

	if got := o.ItemCount(); got != 2 {
		t.Errorf("ItemCount() = %d, want 2", got)
	}
}

func TestTotalQuantity(t *testing.T) {
	o := &Order{
		Items: []LineItem{
			{Name: "Coffee", Quantity: 2},
			{Name: "Bagel", Quantity: 3},
		},
	}

	if got := o.TotalQuantity(); got != 5 {
		t.Errorf("TotalQuantity() = %d, want 5", got)
	}
}

func TestEmptyOrderCounts(t *testing.T) {
	o := &Order{}

	if got := o.ItemCount(); got != 0 {
		t.Errorf("ItemCount() = %d, want 0", got)
	}
	if got := o.TotalQuantity(); got != 0 {
		t.Errorf("TotalQuantity() = %d, want 0", got)
	}
}

func TestUnmarshalOrder(t *testing.T) {
	data := `{
		"storeName": "Acme",
		"orderId": "A-1337",
		"subtotal": 18.50,
		"taxRate": 0.085,
		"totalAmount": 20.07,
		"items": [
			{"name": "Latte", "quantity": 2, "unitPrice": 4.25, "totalPrice": 8.50, "modifiers": ["oat milk"]}
		],
		"customer": {"customerId": "C-42", "name": "Pat", "memberStatus": "Gold", "loyaltyPoints": 120},
		"orderPromotions": [
			{"name": "Member Discount", "discount": 1.85, "type": "percentage", "percentage": 10}
		]
	}`

	var o Order
	if err := json.Unmarshal([]byte(data), &o); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if o.StoreName != "Acme" {
		t.Errorf("StoreName = %q, want %q", o.StoreName, "Acme")
	}
	if len(o.Items) != 1 || o.Items[0].Modifiers[0] != "oat milk" {
		t.Errorf("Items not decoded: %+v", o.Items)
	}
	if o.Customer == nil || o.Customer.LoyaltyPoints != 120 {
		t.Errorf("Customer not decoded: %+v", o.Customer)
	}
	if len(o.OrderPromotions) != 1 || o.OrderPromotions[0].Type != PromotionPercentage {
		t.Errorf("OrderPromotions not decoded: %+v", o.OrderPromotions)
	}
	if !o.Timestamp.IsZero() {
		t.Errorf("Timestamp should stay zero when absent, got %v", o.Timestamp)
	}
}

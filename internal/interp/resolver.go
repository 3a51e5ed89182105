package interp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/FabioCZ/receipt-craft-fabs/pkg/order"
)

// Formatting layouts for time-valued fields
const (
	timestampLayout   = "2006-01-02 15:04:05"
	memberSinceLayout = "Jan 2006"
)

// CashierNamePlaceholder is what CASHIER_NAME always resolves to. The order
// model carries no cashier field yet; the placeholder is kept constant
// rather than inventing a source.
const CashierNamePlaceholder = "[CASHIER]"

// fieldResolvers maps each recognized dynamic field name to its resolver.
// Every resolver must return a usable string for a nil order.
var fieldResolvers = map[string]func(*order.Order) string{
	"STORE_NAME":     func(o *order.Order) string { return orderString(o, func(o *order.Order) string { return o.StoreName }, "Store") },
	"STORE_NUMBER":   func(o *order.Order) string { return orderString(o, func(o *order.Order) string { return o.StoreNumber }, "#000") },
	"ORDER_ID":       func(o *order.Order) string { return orderString(o, func(o *order.Order) string { return o.OrderID }, "000000") },
	"PAYMENT_METHOD": func(o *order.Order) string { return orderString(o, func(o *order.Order) string { return o.PaymentMethod }, "N/A") },
	"TIMESTAMP": func(o *order.Order) string {
		if o == nil || o.Timestamp.IsZero() {
			return "N/A"
		}
		return o.Timestamp.Format(timestampLayout)
	},
	"SUBTOTAL": func(o *order.Order) string { return money(orderFloat(o, func(o *order.Order) float64 { return o.Subtotal })) },
	"TAX":      func(o *order.Order) string { return money(orderFloat(o, func(o *order.Order) float64 { return o.TaxAmount })) },
	"TOTAL":    func(o *order.Order) string { return money(orderFloat(o, func(o *order.Order) float64 { return o.TotalAmount })) },
	"TAX_RATE": func(o *order.Order) string {
		return fmt.Sprintf("%.1f%%", orderFloat(o, func(o *order.Order) float64 { return o.TaxRate })*100)
	},
	"ITEM_COUNT": func(o *order.Order) string {
		if o == nil {
			return "0"
		}
		return strconv.Itoa(o.ItemCount())
	},
	"TOTAL_QUANTITY": func(o *order.Order) string {
		if o == nil {
			return "0"
		}
		return strconv.Itoa(o.TotalQuantity())
	},
	"CUSTOMER_ID":   customerString(func(c *order.CustomerInfo) string { return c.CustomerID }, "GUEST"),
	"CUSTOMER_NAME": customerString(func(c *order.CustomerInfo) string { return c.Name }, "Guest"),
	"MEMBER_STATUS": customerString(func(c *order.CustomerInfo) string { return c.MemberStatus }, "Non-Member"),
	"LOYALTY_POINTS": customerString(func(c *order.CustomerInfo) string {
		return strconv.Itoa(c.LoyaltyPoints)
	}, "0"),
	"MEMBER_SINCE": customerString(func(c *order.CustomerInfo) string {
		if c.MemberSince.IsZero() {
			return "N/A"
		}
		return c.MemberSince.Format(memberSinceLayout)
	}, "N/A"),
	"TABLE_NUMBER": tableString(func(t *order.TableInfo) string { return t.TableNumber }, "N/A"),
	"SERVER_NAME":  tableString(func(t *order.TableInfo) string { return t.ServerName }, "N/A"),
	"GUEST_COUNT": tableString(func(t *order.TableInfo) string {
		return strconv.Itoa(t.GuestCount)
	}, "0"),
	"SERVICE_RATING": tableString(func(t *order.TableInfo) string {
		return fmt.Sprintf("%.1f", t.ServiceRating)
	}, "N/A"),
	"CASHIER_NAME": func(*order.Order) string { return CashierNamePlaceholder },
}

// ResolveField resolves one dynamic field name against an order. Unknown
// names pass through as their own literal value.
func ResolveField(name string, ord *order.Order) string {
	if resolve, ok := fieldResolvers[name]; ok {
		return resolve(ord)
	}
	return name
}

// SubstitutePlaceholders replaces every known {{FIELD}} token in text with
// its resolved value. Unknown tokens are left untouched; they may be
// template directives owned by the line parser. Substituted values are not
// rescanned.
func SubstitutePlaceholders(text string, ord *order.Order) string {
	return substituteTokens(text, func(name string) (string, bool) {
		resolve, ok := fieldResolvers[name]
		if !ok {
			return "", false
		}
		return resolve(ord), true
	})
}

// substituteTokens performs a single left-to-right scan for {{...}} tokens,
// replacing those the lookup recognizes and copying the rest verbatim.
func substituteTokens(text string, lookup func(string) (string, bool)) string {
	var b strings.Builder
	b.Grow(len(text))

	rest := text
	for {
		start := strings.Index(rest, "{{")
		if start < 0 {
			b.WriteString(rest)
			return b.String()
		}
		end := strings.Index(rest[start+2:], "}}")
		if end < 0 {
			b.WriteString(rest)
			return b.String()
		}
		end += start + 2

		name := rest[start+2 : end]
		if value, ok := lookup(name); ok {
			b.WriteString(rest[:start])
			b.WriteString(value)
		} else {
			b.WriteString(rest[:end+2])
		}
		rest = rest[end+2:]
	}
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func orderString(o *order.Order, get func(*order.Order) string, fallback string) string {
	if o == nil {
		return fallback
	}
	return get(o)
}

func orderFloat(o *order.Order, get func(*order.Order) float64) float64 {
	if o == nil {
		return 0
	}
	return get(o)
}

func customerString(get func(*order.CustomerInfo) string, fallback string) func(*order.Order) string {
	return func(o *order.Order) string {
		if o == nil || o.Customer == nil {
			return fallback
		}
		return get(o.Customer)
	}
}

func tableString(get func(*order.TableInfo) string, fallback string) func(*order.Order) string {
	return func(o *order.Order) string {
		if o == nil || o.Table == nil {
			return fallback
		}
		return get(o.Table)
	}
}

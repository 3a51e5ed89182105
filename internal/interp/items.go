package interp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/FabioCZ/receipt-craft-fabs/pkg/design"
	"github.com/FabioCZ/receipt-craft-fabs/pkg/order"
	"github.com/FabioCZ/receipt-craft-fabs/pkg/printcmd"
)

// itemEmitter accumulates commands for one items_list element and tracks
// the alignment the commands have left the consumer in. ambient is the
// document-level alignment the list was entered with; it is restored when
// the list is done.
type itemEmitter struct {
	cmds    []printcmd.Command
	cur     design.Alignment
	ambient design.Alignment
}

// set emits an alignment change unconditionally (directive semantics)
func (em *itemEmitter) set(a design.Alignment) {
	a = normalizeAlignment(a)
	em.cmds = append(em.cmds, printcmd.SetAlignment(a))
	em.cur = a
}

// ensure emits an alignment change only when needed
func (em *itemEmitter) ensure(a design.Alignment) {
	if em.cur != a {
		em.set(a)
	}
}

func (em *itemEmitter) text(s string, style design.TextStyle) {
	em.cmds = append(em.cmds, printcmd.Text(s, style))
}

func (em *itemEmitter) feed(lines int) {
	em.cmds = append(em.cmds, printcmd.Feed(lines))
}

// renderItemsList renders every line item plus promotion summaries. The
// source order is never mutated.
func (e *Engine) renderItemsList(out []printcmd.Command, el *design.Element, ord *order.Order, align *alignmentTracker) []printcmd.Command {
	em := &itemEmitter{
		cmds:    out,
		cur:     align.Current(),
		ambient: align.Current(),
	}

	for i := range ord.Items {
		item := &ord.Items[i]

		if strings.TrimSpace(el.ItemTemplate) == "" {
			e.renderItemFallback(em, item)
		} else {
			e.renderItemTemplate(em, el.ItemTemplate, item, ord)
		}

		e.renderItemExtras(em, el, item)
		em.feed(1)
	}

	e.renderPromotions(em, ord)

	em.ensure(em.ambient)
	return em.cmds
}

// renderItemFallback is the fixed two-line rendering used when no template
// is configured: name on the left, total on the right, back to left.
func (e *Engine) renderItemFallback(em *itemEmitter, item *order.LineItem) {
	name := item.Name
	if item.Quantity > 1 {
		name = fmt.Sprintf("%dx %s", item.Quantity, item.Name)
	}

	em.ensure(design.AlignLeft)
	em.text(name, design.TextStyle{})
	em.ensure(design.AlignRight)
	em.text(money(item.TotalPrice), design.TextStyle{})
	em.ensure(design.AlignLeft)
}

// renderItemTemplate substitutes the item's fields into the template and
// feeds each line through the directive parser. Alignment set by a
// directive persists across the item's remaining lines, then the ambient
// alignment is restored.
func (e *Engine) renderItemTemplate(em *itemEmitter, template string, item *order.LineItem, ord *order.Order) {
	text := substituteItemPlaceholders(template, item, ord)

	for _, line := range splitTemplateLines(text) {
		for _, instr := range parseTemplateLine(line) {
			switch instr.kind {
			case instrSetAlignment:
				em.set(instr.alignment)
			case instrFeed:
				em.feed(instr.lines)
			case instrText:
				em.text(instr.text, design.TextStyle{})
			}
		}
	}

	em.ensure(em.ambient)
}

// renderItemExtras appends the optional indented sub-lines, each governed
// by its own flag and independent of the template/fallback choice.
func (e *Engine) renderItemExtras(em *itemEmitter, el *design.Element, item *order.LineItem) {
	small := design.TextStyle{Size: design.SizeSmall}

	if el.ShowSku && item.Sku != "" {
		em.text("  SKU: "+item.Sku, small)
	}
	if el.ShowCategory && item.Category != "" {
		em.text("  Category: "+item.Category, small)
	}
	if el.ShowModifiers {
		for _, mod := range item.Modifiers {
			em.text("  + "+mod, small)
		}
	}
	if el.ShowUnitPrice && item.Quantity > 1 {
		em.text(fmt.Sprintf("  @ %s each", money(item.UnitPrice)), small)
	}
}

func (e *Engine) renderPromotions(em *itemEmitter, ord *order.Order) {
	if len(ord.ItemPromotions) > 0 {
		em.ensure(design.AlignLeft)
		em.text("ITEM DISCOUNTS:", design.TextStyle{Bold: true})

		for _, promo := range ord.ItemPromotions {
			em.ensure(design.AlignLeft)
			em.text(promo.Name, design.TextStyle{})
			em.ensure(design.AlignRight)
			em.text(fmt.Sprintf("-%s", money(promo.Discount)), design.TextStyle{})
			em.ensure(design.AlignLeft)
		}

		em.feed(1)
	}

	if len(ord.OrderPromotions) > 0 {
		em.ensure(design.AlignLeft)
		em.text("ORDER DISCOUNTS:", design.TextStyle{Bold: true})

		for _, promo := range ord.OrderPromotions {
			name := promo.Name
			if promo.Type == order.PromotionPercentage {
				name = fmt.Sprintf("%s (%.1f%%)", promo.Name, promo.Percentage)
			}

			em.ensure(design.AlignLeft)
			em.text(name, design.TextStyle{})
			em.ensure(design.AlignRight)
			em.text(fmt.Sprintf("-%s", money(promo.Discount)), design.TextStyle{})
			em.ensure(design.AlignLeft)
		}

		em.feed(1)
	}
}

// substituteItemPlaceholders resolves the per-item placeholder set, then
// falls back to the order-level field table for anything else. Directive
// tokens match neither and survive for the line parser.
func substituteItemPlaceholders(template string, item *order.LineItem, ord *order.Order) string {
	fields := map[string]string{
		"name":       item.Name,
		"quantity":   strconv.Itoa(item.Quantity),
		"unitPrice":  fmt.Sprintf("%.2f", item.UnitPrice),
		"totalPrice": fmt.Sprintf("%.2f", item.TotalPrice),
		"sku":        item.Sku,
		"category":   item.Category,
		"modifiers":  strings.Join(item.Modifiers, ", "),
	}

	return substituteTokens(template, func(name string) (string, bool) {
		if value, ok := fields[name]; ok {
			return value, true
		}
		if resolve, ok := fieldResolvers[name]; ok {
			return resolve(ord), true
		}
		return "", false
	})
}

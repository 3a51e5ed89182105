// Package interp renders a receipt design document against order data,
// producing the printer-agnostic command sequence. A render pass is a
// single forward walk over the element list with one ambient alignment
// value; the engine holds no state between calls and never mutates its
// inputs.
package interp

import (
	"go.uber.org/zap"

	"github.com/FabioCZ/receipt-craft-fabs/pkg/design"
	"github.com/FabioCZ/receipt-craft-fabs/pkg/order"
	"github.com/FabioCZ/receipt-craft-fabs/pkg/printcmd"
)

// Engine renders design documents. Safe for concurrent use: all render
// state is local to one call.
type Engine struct {
	log *zap.Logger
}

// New creates an engine. A nil logger disables diagnostics.
func New(log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{log: log}
}

// Render is the package-level convenience form with diagnostics disabled
func Render(doc *design.Document, ord *order.Order) []printcmd.Command {
	return New(nil).Render(doc, ord)
}

// Render walks the document once and returns the command sequence. Data
// problems never fail a render: unknown element kinds are no-ops, unknown
// fields pass through, and missing order data falls back to defaults. If
// anything deeper goes wrong the partial output is discarded and the fixed
// error receipt is returned instead.
func (e *Engine) Render(doc *design.Document, ord *order.Order) (cmds []printcmd.Command) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("render pass failed", zap.Any("panic", r))
			cmds = ErrorReceipt()
		}
	}()

	return e.render(doc, ord)
}

func (e *Engine) render(doc *design.Document, ord *order.Order) []printcmd.Command {
	if doc == nil {
		return nil
	}

	out := make([]printcmd.Command, 0, len(doc.Elements)*2)
	align := newAlignmentTracker()

	for i := range doc.Elements {
		el := &doc.Elements[i]

		switch el.Type {
		case design.KindText:
			out = append(out, printcmd.Text(SubstitutePlaceholders(el.Content, ord), el.Style))

		case design.KindAlign:
			align.Set(el.Alignment)
			out = append(out, printcmd.SetAlignment(align.Current()))

		case design.KindFeedLine:
			out = append(out, printcmd.Feed(el.FeedLines()))

		case design.KindBarcode:
			// Barcode data is deliberately NOT substituted: barcodes
			// encode raw identifiers.
			out = append(out, printcmd.Barcode(el.Data, el.BarcodeFormat()))

		case design.KindQRCode:
			out = append(out, printcmd.QRCode(SubstitutePlaceholders(el.Data, ord), el.QRSize()))

		case design.KindDivider:
			out = e.renderDivider(out, el, align)

		case design.KindDynamic:
			out = append(out, printcmd.Text(ResolveField(el.Field, ord), design.TextStyle{}))

		case design.KindItemsList:
			if ord != nil {
				out = e.renderItemsList(out, el, ord, align)
			}

		case design.KindSplitPayments:
			// Rendering contract not defined upstream; emits nothing.

		case design.KindCutPaper:
			// Terminal action for the paper, not for the pass: elements
			// after a cut are still processed.
			out = append(out, printcmd.Cut())

		default:
			e.log.Warn("skipping element of unknown type", zap.String("type", string(el.Type)))
		}
	}

	return out
}

// renderDivider force-centers the divider text without disturbing the
// ambient alignment.
func (e *Engine) renderDivider(out []printcmd.Command, el *design.Element, align *alignmentTracker) []printcmd.Command {
	centered := align.Current() == design.AlignCenter

	if !centered {
		out = append(out, printcmd.SetAlignment(design.AlignCenter))
	}
	out = append(out, printcmd.Text(el.DividerText(), design.TextStyle{}))
	if !centered {
		out = append(out, printcmd.SetAlignment(align.Current()))
	}

	return out
}

// ErrorReceipt is the fixed whole-document fail-safe output
func ErrorReceipt() []printcmd.Command {
	return []printcmd.Command{
		printcmd.Text("Error occurred", design.TextStyle{Bold: true}),
		printcmd.Feed(1),
		printcmd.Cut(),
	}
}

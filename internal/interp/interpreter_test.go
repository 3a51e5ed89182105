package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FabioCZ/receipt-craft-fabs/pkg/design"
	"github.com/FabioCZ/receipt-craft-fabs/pkg/order"
	"github.com/FabioCZ/receipt-craft-fabs/pkg/printcmd"
)

func TestRender_EndToEnd(t *testing.T) {
	doc := &design.Document{
		Elements: []design.Element{
			{Type: design.KindAlign, Alignment: design.AlignCenter},
			{Type: design.KindText, Content: "Welcome {{STORE_NAME}}"},
			{Type: design.KindFeedLine, Lines: 1},
			{Type: design.KindCutPaper},
		},
	}
	ord := &order.Order{StoreName: "Acme"}

	got := Render(doc, ord)

	want := []printcmd.Command{
		printcmd.SetAlignment(design.AlignCenter),
		printcmd.Text("Welcome Acme", design.TextStyle{}),
		printcmd.Feed(1),
		printcmd.Cut(),
	}
	assert.Equal(t, want, got)
}

func TestRender_Deterministic(t *testing.T) {
	doc := &design.Document{
		Elements: []design.Element{
			{Type: design.KindText, Content: "{{STORE_NAME}} {{TOTAL}} {{CASHIER_NAME}}"},
			{Type: design.KindDivider},
			{Type: design.KindItemsList, ShowModifiers: true},
			{Type: design.KindQRCode, Data: "https://example.com/{{ORDER_ID}}"},
			{Type: design.KindCutPaper},
		},
	}
	ord := sampleOrder()

	first := Render(doc, ord)
	second := Render(doc, ord)

	assert.Equal(t, first, second)
}

func TestRender_UnknownElementSkipped(t *testing.T) {
	doc := &design.Document{
		Elements: []design.Element{
			{Type: "hologram", Content: "shiny"},
			{Type: design.KindText, Content: "after"},
		},
	}

	got := Render(doc, nil)

	require.Len(t, got, 1)
	assert.Equal(t, printcmd.Text("after", design.TextStyle{}), got[0])
}

func TestRender_SplitPaymentsEmitsNothing(t *testing.T) {
	doc := &design.Document{
		Elements: []design.Element{
			{Type: design.KindSplitPayments},
		},
	}

	assert.Empty(t, Render(doc, sampleOrder()))
}

func TestRender_ElementsAfterCutStillProcessed(t *testing.T) {
	doc := &design.Document{
		Elements: []design.Element{
			{Type: design.KindCutPaper},
			{Type: design.KindText, Content: "voucher"},
		},
	}

	got := Render(doc, nil)

	require.Len(t, got, 2)
	assert.Equal(t, printcmd.TypeCut, got[0].Type)
	assert.Equal(t, "voucher", got[1].Text)
}

func TestRender_DividerForcesCenterAndRestores(t *testing.T) {
	doc := &design.Document{
		Elements: []design.Element{
			{Type: design.KindDivider},
			{Type: design.KindText, Content: "left again"},
		},
	}

	got := Render(doc, nil)

	want := []printcmd.Command{
		printcmd.SetAlignment(design.AlignCenter),
		printcmd.Text(design.DefaultDividerContent, design.TextStyle{}),
		printcmd.SetAlignment(design.AlignLeft),
		printcmd.Text("left again", design.TextStyle{}),
	}
	assert.Equal(t, want, got)
}

func TestRender_DividerUnderCenterAmbient(t *testing.T) {
	doc := &design.Document{
		Elements: []design.Element{
			{Type: design.KindAlign, Alignment: design.AlignCenter},
			{Type: design.KindDivider, Content: "----"},
		},
	}

	got := Render(doc, nil)

	// Already centered: no redundant alignment churn around the divider
	want := []printcmd.Command{
		printcmd.SetAlignment(design.AlignCenter),
		printcmd.Text("----", design.TextStyle{}),
	}
	assert.Equal(t, want, got)
}

func TestRender_BarcodeDataNotSubstituted(t *testing.T) {
	doc := &design.Document{
		Elements: []design.Element{
			{Type: design.KindBarcode, Data: "{{ORDER_ID}}", BarcodeType: design.BarcodeCode39},
			{Type: design.KindQRCode, Data: "https://r.example/{{ORDER_ID}}", Size: 160},
		},
	}
	ord := sampleOrder()

	got := Render(doc, ord)

	require.Len(t, got, 2)
	assert.Equal(t, "{{ORDER_ID}}", got[0].Data, "barcode data must stay raw")
	assert.Equal(t, design.BarcodeCode39, got[0].BarcodeType)
	assert.Equal(t, "https://r.example/A-1337", got[1].Data, "qr data is substituted")
	assert.Equal(t, 160, got[1].QRSize)
}

func TestRender_DynamicElement(t *testing.T) {
	doc := &design.Document{
		Elements: []design.Element{
			{Type: design.KindDynamic, Field: "TOTAL"},
			{Type: design.KindDynamic, Field: "UNKNOWN_FIELD"},
		},
	}

	got := Render(doc, sampleOrder())

	require.Len(t, got, 2)
	assert.Equal(t, "$20.07", got[0].Text)
	assert.Equal(t, "UNKNOWN_FIELD", got[1].Text, "unknown fields pass through as literals")
}

func TestRender_TextStyleCarried(t *testing.T) {
	doc := &design.Document{
		Elements: []design.Element{
			{Type: design.KindText, Content: "BIG", Style: design.TextStyle{Bold: true, Underline: true, Size: design.SizeXLarge}},
		},
	}

	got := Render(doc, nil)

	require.Len(t, got, 1)
	assert.True(t, got[0].Bold)
	assert.True(t, got[0].Underline)
	assert.Equal(t, design.SizeXLarge, got[0].Size)
}

func TestRender_NilDocument(t *testing.T) {
	assert.Empty(t, Render(nil, sampleOrder()))
}

func TestErrorReceipt(t *testing.T) {
	got := ErrorReceipt()

	want := []printcmd.Command{
		printcmd.Text("Error occurred", design.TextStyle{Bold: true}),
		printcmd.Feed(1),
		printcmd.Cut(),
	}
	assert.Equal(t, want, got)
}

package design

import (
	"testing"
)

func TestValidate_ValidDocument(t *testing.T) {
	doc := &Document{
		Name: "Test Receipt",
		Elements: []Element{
			{Type: KindAlign, Alignment: AlignCenter},
			{Type: KindText, Content: "Hello World"},
			{Type: KindCutPaper},
		},
	}

	if err := Validate(doc); err != nil {
		t.Errorf("Expected valid document, got error: %v", err)
	}
}

func TestValidate_NilDocument(t *testing.T) {
	if err := Validate(nil); err == nil {
		t.Error("Expected error for nil document")
	}
}

func TestValidate_NoElements(t *testing.T) {
	doc := &Document{Elements: []Element{}}

	if err := Validate(doc); err == nil {
		t.Error("Expected error for empty element list")
	}
}

func TestValidate_MissingType(t *testing.T) {
	doc := &Document{
		Elements: []Element{
			{Content: "Hello"},
		},
	}

	if err := Validate(doc); err == nil {
		t.Error("Expected error for element without type")
	}
}

func TestValidate_InvalidAlignment(t *testing.T) {
	doc := &Document{
		Elements: []Element{
			{Type: KindAlign, Alignment: "justify"},
		},
	}

	if err := Validate(doc); err == nil {
		t.Error("Expected error for invalid alignment")
	}
}

func TestValidate_InvalidTextSize(t *testing.T) {
	doc := &Document{
		Elements: []Element{
			{Type: KindText, Content: "Hi", Style: TextStyle{Size: "huge"}},
		},
	}

	if err := Validate(doc); err == nil {
		t.Error("Expected error for invalid text size")
	}
}

func TestValidate_NegativeFeedLines(t *testing.T) {
	doc := &Document{
		Elements: []Element{
			{Type: KindFeedLine, Lines: -1},
		},
	}

	if err := Validate(doc); err == nil {
		t.Error("Expected error for negative feed lines")
	}
}

func TestValidate_BarcodeRequiresData(t *testing.T) {
	doc := &Document{
		Elements: []Element{
			{Type: KindBarcode},
		},
	}

	if err := Validate(doc); err == nil {
		t.Error("Expected error for barcode without data")
	}
}

func TestValidate_InvalidBarcodeType(t *testing.T) {
	doc := &Document{
		Elements: []Element{
			{Type: KindBarcode, Data: "12345", BarcodeType: "AZTEC"},
		},
	}

	if err := Validate(doc); err == nil {
		t.Error("Expected error for invalid barcode type")
	}
}

func TestValidate_UnknownKindIsCarried(t *testing.T) {
	doc := &Document{
		Elements: []Element{
			{Type: "hologram"},
			{Type: KindText, Content: "still fine"},
		},
	}

	if err := Validate(doc); err != nil {
		t.Errorf("Unknown element kinds should not fail validation, got: %v", err)
	}
}

func TestValidate_DynamicRequiresField(t *testing.T) {
	doc := &Document{
		Elements: []Element{
			{Type: KindDynamic},
		},
	}

	if err := Validate(doc); err == nil {
		t.Error("Expected error for dynamic element without field")
	}
}

func TestElement_Defaults(t *testing.T) {
	feed := Element{Type: KindFeedLine}
	if got := feed.FeedLines(); got != 1 {
		t.Errorf("FeedLines default = %d, want 1", got)
	}

	divider := Element{Type: KindDivider}
	if got := divider.DividerText(); got != DefaultDividerContent {
		t.Errorf("DividerText default = %q, want %q", got, DefaultDividerContent)
	}
	if len(DefaultDividerContent) != 32 {
		t.Errorf("DefaultDividerContent length = %d, want 32", len(DefaultDividerContent))
	}

	qr := Element{Type: KindQRCode, Data: "https://example.com"}
	if got := qr.QRSize(); got != DefaultQRSize {
		t.Errorf("QRSize default = %d, want %d", got, DefaultQRSize)
	}

	bc := Element{Type: KindBarcode, Data: "123"}
	if got := bc.BarcodeFormat(); got != BarcodeCode128 {
		t.Errorf("BarcodeFormat default = %s, want %s", got, BarcodeCode128)
	}

	style := TextStyle{}
	if got := style.SizeOrNormal(); got != SizeNormal {
		t.Errorf("SizeOrNormal default = %s, want %s", got, SizeNormal)
	}
}

// Package design defines the types for receipt design documents
package design

// Kind identifies the element variant
type Kind string

// Element kinds
const (
	KindText          Kind = "text"
	KindAlign         Kind = "align"
	KindFeedLine      Kind = "feedLine"
	KindBarcode       Kind = "barcode"
	KindQRCode        Kind = "qrcode"
	KindDivider       Kind = "divider"
	KindDynamic       Kind = "dynamic"
	KindItemsList     Kind = "items_list"
	KindSplitPayments Kind = "split_payments"
	KindCutPaper      Kind = "cutPaper"
)

// Alignment is a horizontal text alignment
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// TextSize is a named text size
type TextSize string

const (
	SizeSmall  TextSize = "small"
	SizeNormal TextSize = "normal"
	SizeLarge  TextSize = "large"
	SizeXLarge TextSize = "xlarge"
)

// BarcodeType identifies a 1D barcode symbology
type BarcodeType string

const (
	BarcodeCode128 BarcodeType = "CODE128"
	BarcodeCode39  BarcodeType = "CODE39"
	BarcodeEAN13   BarcodeType = "EAN13"
	BarcodeEAN8    BarcodeType = "EAN8"
	BarcodeUPCA    BarcodeType = "UPC_A"
	BarcodeUPCE    BarcodeType = "UPC_E"
	BarcodeITF     BarcodeType = "ITF"
)

// DefaultDividerContent is used when a divider element has no content
const DefaultDividerContent = "================================"

// DefaultQRSize is the pixel size used when a qrcode element omits size
const DefaultQRSize = 200

// TextStyle describes how a text element is drawn
type TextStyle struct {
	Bold      bool     `json:"bold,omitempty"`
	Underline bool     `json:"underline,omitempty"`
	Size      TextSize `json:"size,omitempty"`
}

// Element represents one entry in a design document. Exactly one kind is
// meaningful per element; fields are populated only for the relevant kind.
type Element struct {
	Type Kind `json:"type"`

	// text
	Content string    `json:"content,omitempty"`
	Style   TextStyle `json:"style,omitempty"`

	// align
	Alignment Alignment `json:"alignment,omitempty"`

	// feedLine
	Lines int `json:"lines,omitempty"`

	// barcode / qrcode
	Data        string      `json:"data,omitempty"`
	BarcodeType BarcodeType `json:"barcodeType,omitempty"`
	Size        int         `json:"size,omitempty"`

	// dynamic
	Field string `json:"field,omitempty"`

	// items_list
	ItemTemplate  string `json:"itemTemplate,omitempty"`
	ShowSku       bool   `json:"showSku,omitempty"`
	ShowCategory  bool   `json:"showCategory,omitempty"`
	ShowModifiers bool   `json:"showModifiers,omitempty"`
	ShowUnitPrice bool   `json:"showUnitPrice,omitempty"`
}

// Document is an ordered list of elements. Order is semantically
// significant: it is paint order and the channel through which the ambient
// alignment propagates.
type Document struct {
	Name     string    `json:"name,omitempty"`
	Elements []Element `json:"elements"`
}

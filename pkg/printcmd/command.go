// Package printcmd defines the printer-agnostic command sequence produced
// by a render pass. Consumers (ESC/POS encoder, preview, editor frontends)
// interpret the sequence in order.
package printcmd

import "github.com/FabioCZ/receipt-craft-fabs/pkg/design"

// Type identifies a command variant
type Type string

// Command types
const (
	TypeSetAlignment Type = "set_alignment"
	TypeFeed         Type = "feed"
	TypeText         Type = "text"
	TypeBarcode      Type = "barcode"
	TypeQRCode       Type = "qrcode"
	TypeCut          Type = "cut"
)

// Command is one drawing command. Fields are populated only for the
// relevant type, mirroring the element model.
type Command struct {
	Type Type `json:"type"`

	// set_alignment
	Alignment design.Alignment `json:"alignment,omitempty"`

	// feed
	Lines int `json:"lines,omitempty"`

	// text
	Text      string          `json:"text,omitempty"`
	Bold      bool            `json:"bold,omitempty"`
	Underline bool            `json:"underline,omitempty"`
	Size      design.TextSize `json:"size,omitempty"`

	// barcode / qrcode
	Data        string             `json:"data,omitempty"`
	BarcodeType design.BarcodeType `json:"barcodeType,omitempty"`
	QRSize      int                `json:"qrSize,omitempty"`
}

// SetAlignment builds an alignment-change command
func SetAlignment(a design.Alignment) Command {
	return Command{Type: TypeSetAlignment, Alignment: a}
}

// Feed builds a paper-feed command
func Feed(lines int) Command {
	return Command{Type: TypeFeed, Lines: lines}
}

// Text builds a styled text command
func Text(s string, style design.TextStyle) Command {
	return Command{
		Type:      TypeText,
		Text:      s,
		Bold:      style.Bold,
		Underline: style.Underline,
		Size:      style.SizeOrNormal(),
	}
}

// Barcode builds a barcode command
func Barcode(data string, barcodeType design.BarcodeType) Command {
	return Command{Type: TypeBarcode, Data: data, BarcodeType: barcodeType}
}

// QRCode builds a QR code command
func QRCode(data string, size int) Command {
	return Command{Type: TypeQRCode, Data: data, QRSize: size}
}

// Cut builds a paper-cut command
func Cut() Command {
	return Command{Type: TypeCut}
}

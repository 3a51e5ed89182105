package design

// FeedLines returns the feed count for a feedLine element, defaulting to 1.
func (e *Element) FeedLines() int {
	if e.Lines < 1 {
		return 1
	}
	return e.Lines
}

// DividerText returns the divider content, defaulting to 32 '=' characters.
func (e *Element) DividerText() string {
	if e.Content == "" {
		return DefaultDividerContent
	}
	return e.Content
}

// QRSize returns the QR code size, defaulting to DefaultQRSize.
func (e *Element) QRSize() int {
	if e.Size <= 0 {
		return DefaultQRSize
	}
	return e.Size
}

// BarcodeFormat returns the barcode symbology, defaulting to CODE128.
func (e *Element) BarcodeFormat() BarcodeType {
	if e.BarcodeType == "" {
		return BarcodeCode128
	}
	return e.BarcodeType
}

// SizeOrNormal returns the text size, defaulting to normal.
func (s TextStyle) SizeOrNormal() TextSize {
	if s.Size == "" {
		return SizeNormal
	}
	return s.Size
}

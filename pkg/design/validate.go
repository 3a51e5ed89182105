package design

import (
	"fmt"
)

// Validate checks a Document for values the interpreter cannot make sense
// of. Unknown element kinds and unknown dynamic field names are NOT errors:
// the interpreter treats the former as no-ops and the latter as literal
// passthrough. Validation only rejects values that are structurally wrong.
func Validate(d *Document) error {
	if d == nil {
		return fmt.Errorf("document is nil")
	}
	if len(d.Elements) == 0 {
		return fmt.Errorf("at least one element is required")
	}

	for i, el := range d.Elements {
		if err := validateElement(&el); err != nil {
			return fmt.Errorf("element[%d]: %w", i, err)
		}
	}

	return nil
}

func validateElement(el *Element) error {
	if el.Type == "" {
		return fmt.Errorf("element type is required")
	}

	switch el.Type {
	case KindAlign:
		return validateAlignment(el.Alignment)
	case KindText:
		if el.Style.Size != "" {
			return validateTextSize(el.Style.Size)
		}
		return nil
	case KindFeedLine:
		if el.Lines < 0 {
			return fmt.Errorf("feedLine lines cannot be negative: %d", el.Lines)
		}
		return nil
	case KindBarcode:
		if el.Data == "" {
			return fmt.Errorf("barcode element requires data")
		}
		if el.BarcodeType != "" {
			return validateBarcodeType(el.BarcodeType)
		}
		return nil
	case KindQRCode:
		if el.Data == "" {
			return fmt.Errorf("qrcode element requires data")
		}
		if el.Size < 0 {
			return fmt.Errorf("qrcode size cannot be negative: %d", el.Size)
		}
		return nil
	case KindDynamic:
		if el.Field == "" {
			return fmt.Errorf("dynamic element requires field")
		}
		return nil
	case KindDivider, KindItemsList, KindSplitPayments, KindCutPaper:
		return nil
	default:
		// Unknown kinds render nothing; they are carried, not rejected.
		return nil
	}
}

func validateAlignment(a Alignment) error {
	switch a {
	case AlignLeft, AlignCenter, AlignRight:
		return nil
	}
	return fmt.Errorf("invalid alignment '%s' (must be left, center, or right)", a)
}

func validateTextSize(s TextSize) error {
	switch s {
	case SizeSmall, SizeNormal, SizeLarge, SizeXLarge:
		return nil
	}
	return fmt.Errorf("invalid size '%s' (must be small, normal, large, or xlarge)", s)
}

func validateBarcodeType(t BarcodeType) error {
	switch t {
	case BarcodeCode128, BarcodeCode39, BarcodeEAN13, BarcodeEAN8, BarcodeUPCA, BarcodeUPCE, BarcodeITF:
		return nil
	}
	return fmt.Errorf("invalid barcodeType '%s'", t)
}

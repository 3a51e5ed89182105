// Package escpos encodes a rendered command sequence into ESC/POS bytes.
// It is a pure encoder: bytes in, bytes out, no device I/O.
package escpos

import (
	"bytes"
	"fmt"
	"image"

	"github.com/FabioCZ/receipt-craft-fabs/pkg/design"
	"github.com/FabioCZ/receipt-craft-fabs/pkg/printcmd"
)

// Control bytes
const (
	esc byte = 0x1B
	gs  byte = 0x1D
)

// Encoder generates ESC/POS command streams
type Encoder struct {
	buffer *bytes.Buffer
	width  int // printable width in dots
}

// NewEncoder creates an encoder for the given paper width
// ("58mm", "80mm", or "112mm")
func NewEncoder(paperWidth string) *Encoder {
	return &Encoder{
		buffer: new(bytes.Buffer),
		width:  paperWidthToDots(paperWidth),
	}
}

// Encode converts a command sequence into an ESC/POS byte stream,
// starting with a printer initialize.
func (e *Encoder) Encode(cmds []printcmd.Command) ([]byte, error) {
	e.buffer.Reset()
	e.initialize()

	for i, cmd := range cmds {
		if err := e.encodeCommand(cmd); err != nil {
			return nil, fmt.Errorf("failed to encode command %d (%s): %w", i, cmd.Type, err)
		}
	}

	return e.buffer.Bytes(), nil
}

func (e *Encoder) encodeCommand(cmd printcmd.Command) error {
	switch cmd.Type {
	case printcmd.TypeSetAlignment:
		e.setAlignment(cmd.Alignment)
		return nil
	case printcmd.TypeFeed:
		e.feed(cmd.Lines)
		return nil
	case printcmd.TypeText:
		e.writeText(cmd)
		return nil
	case printcmd.TypeBarcode:
		return e.writeBarcode(cmd)
	case printcmd.TypeQRCode:
		return e.writeQRCode(cmd)
	case printcmd.TypeCut:
		e.cut()
		return nil
	default:
		return fmt.Errorf("unsupported command type: %s", cmd.Type)
	}
}

func (e *Encoder) initialize() {
	e.buffer.Write([]byte{esc, '@'})
}

func (e *Encoder) setAlignment(a design.Alignment) {
	e.buffer.Write([]byte{esc, 'a'})

	switch a {
	case design.AlignCenter:
		e.buffer.WriteByte(1)
	case design.AlignRight:
		e.buffer.WriteByte(2)
	default:
		e.buffer.WriteByte(0)
	}
}

func (e *Encoder) feed(lines int) {
	if lines < 1 {
		lines = 1
	}
	for i := 0; i < lines; i++ {
		e.buffer.WriteByte('\n')
	}
}

func (e *Encoder) writeText(cmd printcmd.Command) {
	e.setBold(cmd.Bold)
	e.setUnderline(cmd.Underline)
	e.setSize(cmd.Size)

	e.buffer.WriteString(cmd.Text)
	e.buffer.WriteByte('\n')

	// Styles are per-command; reset so the next text starts clean
	e.setBold(false)
	e.setUnderline(false)
	e.setSize(design.SizeNormal)
}

func (e *Encoder) setBold(enabled bool) {
	e.buffer.Write([]byte{esc, 'E', flag(enabled)})
}

func (e *Encoder) setUnderline(enabled bool) {
	e.buffer.Write([]byte{esc, '-', flag(enabled)})
}

// setSize maps the named sizes onto the GS ! multiplier byte. Small text
// additionally selects font B.
func (e *Encoder) setSize(size design.TextSize) {
	font := byte(0)
	mult := byte(0x00) // 1x1

	switch size {
	case design.SizeSmall:
		font = 1
	case design.SizeLarge:
		mult = 0x11 // 2x2
	case design.SizeXLarge:
		mult = 0x22 // 3x3
	}

	e.buffer.Write([]byte{esc, 'M', font})
	e.buffer.Write([]byte{gs, '!', mult})
}

func (e *Encoder) cut() {
	e.buffer.Write([]byte{gs, 'V', 0})
}

// writeRaster emits an image as a GS v 0 raster block, centered by padding
func (e *Encoder) writeRaster(img image.Image) error {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width > e.width {
		return fmt.Errorf("raster width %d exceeds printable width %d", width, e.width)
	}

	// Pad to the full printable width so alignment stays predictable
	padLeft := (e.width - width) / 2
	bytesPerLine := (e.width + 7) / 8

	bitmap := make([]byte, bytesPerLine*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			gray := (r + g + b) / 3

			// Threshold at 50%
			if gray < 32768 {
				px := x + padLeft
				bitmap[y*bytesPerLine+px/8] |= 1 << (7 - px%8)
			}
		}
	}

	e.buffer.Write([]byte{gs, 'v', '0', 0})
	e.buffer.WriteByte(byte(bytesPerLine & 0xFF))
	e.buffer.WriteByte(byte((bytesPerLine >> 8) & 0xFF))
	e.buffer.WriteByte(byte(height & 0xFF))
	e.buffer.WriteByte(byte((height >> 8) & 0xFF))
	e.buffer.Write(bitmap)
	e.buffer.WriteByte('\n')

	return nil
}

func flag(enabled bool) byte {
	if enabled {
		return 1
	}
	return 0
}

func paperWidthToDots(width string) int {
	switch width {
	case "58mm":
		return 384
	case "112mm":
		return 832
	default:
		return 576 // 80mm
	}
}

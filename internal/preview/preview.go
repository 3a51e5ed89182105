// Package preview renders a command sequence as fixed-width terminal text,
// approximating what the paper would look like. Alignment is simulated
// with padding; barcodes and QR codes show as labeled placeholders.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/FabioCZ/receipt-craft-fabs/pkg/design"
	"github.com/FabioCZ/receipt-craft-fabs/pkg/printcmd"
)

// DefaultWidth matches an 80mm printer in its standard font
const DefaultWidth = 48

// Options controls preview rendering
type Options struct {
	Width  int  // line width in characters; DefaultWidth when zero
	Styled bool // apply terminal styling (bold, underline, faint)
}

var (
	boldStyle      = lipgloss.NewStyle().Bold(true)
	underlineStyle = lipgloss.NewStyle().Underline(true)
	smallStyle     = lipgloss.NewStyle().Faint(true)
)

// Render formats the command sequence as a multi-line string
func Render(cmds []printcmd.Command, opts Options) string {
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}

	var b strings.Builder
	align := design.AlignLeft

	for _, cmd := range cmds {
		switch cmd.Type {
		case printcmd.TypeSetAlignment:
			align = cmd.Alignment

		case printcmd.TypeFeed:
			lines := cmd.Lines
			if lines < 1 {
				lines = 1
			}
			b.WriteString(strings.Repeat("\n", lines))

		case printcmd.TypeText:
			b.WriteString(pad(styleText(cmd, opts.Styled), len([]rune(cmd.Text)), align, width))
			b.WriteByte('\n')

		case printcmd.TypeBarcode:
			label := fmt.Sprintf("|| %s: %s ||", cmd.BarcodeType, cmd.Data)
			b.WriteString(pad(label, len([]rune(label)), design.AlignCenter, width))
			b.WriteByte('\n')

		case printcmd.TypeQRCode:
			label := fmt.Sprintf("[QR] %s", cmd.Data)
			b.WriteString(pad(label, len([]rune(label)), design.AlignCenter, width))
			b.WriteByte('\n')

		case printcmd.TypeCut:
			b.WriteString(cutLine(width))
			b.WriteByte('\n')
		}
	}

	return b.String()
}

// styleText applies terminal styles without changing the visible width
func styleText(cmd printcmd.Command, styled bool) string {
	text := cmd.Text
	if !styled {
		return text
	}

	if cmd.Bold {
		text = boldStyle.Render(text)
	}
	if cmd.Underline {
		text = underlineStyle.Render(text)
	}
	if cmd.Size == design.SizeSmall {
		text = smallStyle.Render(text)
	}

	return text
}

// pad positions text within the line. visible is the unstyled rune count,
// since styling adds invisible escape sequences.
func pad(text string, visible int, align design.Alignment, width int) string {
	if visible >= width {
		return text
	}

	switch align {
	case design.AlignCenter:
		return strings.Repeat(" ", (width-visible)/2) + text
	case design.AlignRight:
		return strings.Repeat(" ", width-visible) + text
	default:
		return text
	}
}

func cutLine(width int) string {
	dashes := width - 2
	if dashes < 0 {
		dashes = 0
	}
	return "✂" + strings.Repeat("-", dashes)
}

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/FabioCZ/receipt-craft-fabs/internal/escpos"
	"github.com/FabioCZ/receipt-craft-fabs/internal/interp"
	"github.com/FabioCZ/receipt-craft-fabs/internal/preview"
	"github.com/FabioCZ/receipt-craft-fabs/internal/tui"
	"github.com/FabioCZ/receipt-craft-fabs/pkg/design"
	"github.com/FabioCZ/receipt-craft-fabs/pkg/order"
)

func main() {
	var (
		designPath string
		orderPath  string
		format     string
		paper      string
		width      int
		outPath    string
		watch      bool
	)

	flag.StringVar(&designPath, "design", "", "Path to the design document (JSON)")
	flag.StringVar(&designPath, "d", "", "Path to the design document (short)")
	flag.StringVar(&orderPath, "order", "", "Path to the order data (JSON, optional)")
	flag.StringVar(&orderPath, "O", "", "Path to the order data (short)")
	flag.StringVar(&format, "format", "preview", "Output format: json, escpos, or preview")
	flag.StringVar(&format, "f", "preview", "Output format (short)")
	flag.StringVar(&paper, "paper", "80mm", "Paper width for escpos output: 58mm, 80mm, 112mm")
	flag.IntVar(&width, "width", preview.DefaultWidth, "Line width for preview output")
	flag.StringVar(&outPath, "o", "", "Output file (default: stdout)")
	flag.BoolVar(&watch, "watch", false, "Open a live terminal preview that reloads on file changes")
	flag.Usage = printUsage
	flag.Parse()

	if designPath == "" {
		printUsage()
		os.Exit(1)
	}

	if watch {
		if err := tui.Run(designPath, orderPath, width); err != nil {
			fatal(err)
		}
		return
	}

	doc, err := design.ParseFile(designPath)
	if err != nil {
		fatal(err)
	}
	if err := design.Validate(doc); err != nil {
		fatal(fmt.Errorf("invalid design: %w", err))
	}

	var ord *order.Order
	if orderPath != "" {
		data, err := os.ReadFile(orderPath)
		if err != nil {
			fatal(fmt.Errorf("failed to read order file: %w", err))
		}
		ord = &order.Order{}
		if err := json.Unmarshal(data, ord); err != nil {
			fatal(fmt.Errorf("failed to parse order file: %w", err))
		}
	}

	cmds := interp.Render(doc, ord)

	var output []byte
	switch format {
	case "json":
		output, err = json.MarshalIndent(cmds, "", "  ")
		if err != nil {
			fatal(fmt.Errorf("failed to encode commands: %w", err))
		}
		output = append(output, '\n')
	case "escpos":
		output, err = escpos.NewEncoder(paper).Encode(cmds)
		if err != nil {
			fatal(fmt.Errorf("failed to encode receipt: %w", err))
		}
	case "preview":
		styled := outPath == "" // styling only makes sense on a terminal
		output = []byte(preview.Render(cmds, preview.Options{Width: width, Styled: styled}))
	default:
		fatal(fmt.Errorf("unknown format: %s (must be json, escpos, or preview)", format))
	}

	if outPath == "" {
		os.Stdout.Write(output)
		return
	}

	if err := os.WriteFile(outPath, output, 0644); err != nil {
		fatal(fmt.Errorf("failed to write output: %w", err))
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Receipt Craft CLI

Renders a receipt design document against order data.

Usage:
  receipt-craft -design <path> [flags]

Flags:
  -d, -design <path>   Design document JSON (required)
  -O, -order <path>    Order data JSON
  -f, -format <fmt>    Output format: json, escpos, preview (default: preview)
      -paper <width>   Paper width for escpos: 58mm, 80mm, 112mm (default: 80mm)
      -width <n>       Line width for preview (default: %d)
  -o <path>            Write output to a file instead of stdout
      -watch           Live terminal preview, reloading on file changes

Examples:
  receipt-craft -design receipt.json -order order.json
  receipt-craft -design receipt.json -order order.json -f json
  receipt-craft -design receipt.json -f escpos -paper 58mm -o receipt.bin
  receipt-craft -design receipt.json -order order.json -watch

`, preview.DefaultWidth)
}

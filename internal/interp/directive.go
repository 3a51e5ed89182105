package interp

import (
	"strconv"
	"strings"

	"github.com/FabioCZ/receipt-craft-fabs/pkg/design"
)

// Inline directives recognized at the start of a template line
const (
	dirAlignLeft   = "{{align:left}}"
	dirAlignCenter = "{{align:center}}"
	dirAlignRight  = "{{align:right}}"
	dirFeed        = "{{feedLine}}"
	dirFeedPrefix  = "{{feedLine:"
)

type instructionKind int

const (
	instrSetAlignment instructionKind = iota
	instrFeed
	instrText
)

// instruction is one parsed step of a template line
type instruction struct {
	kind      instructionKind
	alignment design.Alignment
	lines     int
	text      string
}

func setAlignmentInstr(a design.Alignment) instruction {
	return instruction{kind: instrSetAlignment, alignment: a}
}

func feedInstr(lines int) instruction {
	return instruction{kind: instrFeed, lines: lines}
}

func textInstr(s string) instruction {
	return instruction{kind: instrText, text: s}
}

// parseTemplateLine tokenizes one already-substituted template line into an
// ordered instruction sequence. At most one leading directive is honored
// per line; this is the documented contract, not an accident. Whatever
// follows the directive becomes literal text.
func parseTemplateLine(line string) []instruction {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	var out []instruction
	rest := line

	switch {
	case strings.HasPrefix(rest, dirAlignLeft):
		out = append(out, setAlignmentInstr(design.AlignLeft))
		rest = rest[len(dirAlignLeft):]
	case strings.HasPrefix(rest, dirAlignCenter):
		out = append(out, setAlignmentInstr(design.AlignCenter))
		rest = rest[len(dirAlignCenter):]
	case strings.HasPrefix(rest, dirAlignRight):
		out = append(out, setAlignmentInstr(design.AlignRight))
		rest = rest[len(dirAlignRight):]
	case strings.HasPrefix(rest, dirFeed):
		out = append(out, feedInstr(1))
		rest = rest[len(dirFeed):]
	case strings.HasPrefix(rest, dirFeedPrefix):
		// Unterminated directives are not directives at all; the whole
		// line stays literal text.
		if end := strings.Index(rest, "}}"); end >= 0 {
			out = append(out, feedInstr(parseFeedCount(rest[len(dirFeedPrefix):end])))
			rest = rest[end+2:]
		}
	}

	if rest != "" {
		out = append(out, textInstr(rest))
	}

	return out
}

// parseFeedCount extracts the leading digit run of a feedLine argument.
// Anything unparseable defaults to one line.
func parseFeedCount(arg string) int {
	digits := 0
	for digits < len(arg) && arg[digits] >= '0' && arg[digits] <= '9' {
		digits++
	}

	n, err := strconv.Atoi(arg[:digits])
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// splitTemplateLines splits a multi-line template on both the literal
// newline and the two-character \n escape the editor stores.
func splitTemplateLines(template string) []string {
	return strings.Split(strings.ReplaceAll(template, `\n`, "\n"), "\n")
}

package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FabioCZ/receipt-craft-fabs/pkg/design"
)

func TestParseTemplateLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []instruction
	}{
		{
			name: "plain text",
			line: "2x Latte",
			want: []instruction{textInstr("2x Latte")},
		},
		{
			name: "empty line",
			line: "",
			want: nil,
		},
		{
			name: "whitespace only",
			line: "   \t ",
			want: nil,
		},
		{
			name: "align right with text",
			line: "{{align:right}}$12.50",
			want: []instruction{setAlignmentInstr(design.AlignRight), textInstr("$12.50")},
		},
		{
			name: "align left",
			line: "{{align:left}}name",
			want: []instruction{setAlignmentInstr(design.AlignLeft), textInstr("name")},
		},
		{
			name: "align center only",
			line: "{{align:center}}",
			want: []instruction{setAlignmentInstr(design.AlignCenter)},
		},
		{
			name: "feed with count",
			line: "{{feedLine:3}}",
			want: []instruction{feedInstr(3)},
		},
		{
			name: "bare feed",
			line: "{{feedLine}}",
			want: []instruction{feedInstr(1)},
		},
		{
			name: "feed with trailing text",
			line: "{{feedLine:2}}subtotal",
			want: []instruction{feedInstr(2), textInstr("subtotal")},
		},
		{
			name: "feed count not numeric",
			line: "{{feedLine:abc}}",
			want: []instruction{feedInstr(1)},
		},
		{
			name: "feed count empty",
			line: "{{feedLine:}}",
			want: []instruction{feedInstr(1)},
		},
		{
			name: "feed count digit run with junk",
			line: "{{feedLine:12x}}",
			want: []instruction{feedInstr(12)},
		},
		{
			name: "only one leading directive is honored",
			line: "{{align:right}}{{feedLine:2}}x",
			want: []instruction{setAlignmentInstr(design.AlignRight), textInstr("{{feedLine:2}}x")},
		},
		{
			name: "directive not at line start stays literal",
			line: "total{{align:right}}",
			want: []instruction{textInstr("total{{align:right}}")},
		},
		{
			name: "unterminated feed directive stays literal",
			line: "{{feedLine:3",
			want: []instruction{textInstr("{{feedLine:3")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseTemplateLine(tt.line))
		})
	}
}

func TestSplitTemplateLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitTemplateLines("a\nb"))
	assert.Equal(t, []string{"a", "b"}, splitTemplateLines(`a\nb`))
	assert.Equal(t, []string{"a", "b", "c"}, splitTemplateLines("a\nb"+`\nc`))
	assert.Equal(t, []string{"one"}, splitTemplateLines("one"))
}

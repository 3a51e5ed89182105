package interp

import "github.com/FabioCZ/receipt-craft-fabs/pkg/design"

// alignmentTracker is the ambient alignment threaded through one render
// pass. It always starts at left.
type alignmentTracker struct {
	current design.Alignment
}

func newAlignmentTracker() *alignmentTracker {
	return &alignmentTracker{current: design.AlignLeft}
}

func (t *alignmentTracker) Current() design.Alignment {
	return t.current
}

func (t *alignmentTracker) Set(a design.Alignment) {
	t.current = normalizeAlignment(a)
}

// normalizeAlignment maps anything outside the enum to the default
func normalizeAlignment(a design.Alignment) design.Alignment {
	switch a {
	case design.AlignLeft, design.AlignCenter, design.AlignRight:
		return a
	}
	return design.AlignLeft
}

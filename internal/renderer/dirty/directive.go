// Package dirty describes which part of the text area must be repainted
// after an editing step.
package dirty

import "fmt"

// Kind is the extent of a repaint.
type Kind uint8

const (
	// KindNone means the text area is unchanged.
	KindNone Kind = iota

	// KindRow means a single screen row changed.
	KindRow

	// KindFull means the whole window must be repainted.
	KindFull
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindRow:
		return "row"
	case KindFull:
		return "full"
	default:
		return "unknown"
	}
}

// Directive tells the renderer what to repaint. Row is only meaningful
// for KindRow.
type Directive struct {
	Kind Kind
	Row  int
}

// None is the directive for an unchanged text area.
var None = Directive{}

// Row returns a directive repainting screen row r.
func Row(r int) Directive {
	return Directive{Kind: KindRow, Row: r}
}

// Full returns a directive repainting the whole window.
func Full() Directive {
	return Directive{Kind: KindFull}
}

// IsNone reports whether nothing needs repainting.
func (d Directive) IsNone() bool {
	return d.Kind == KindNone
}

// IsFull reports whether the whole window needs repainting.
func (d Directive) IsFull() bool {
	return d.Kind == KindFull
}

// Merge combines two directives. None is the identity, Full absorbs
// everything and two different rows widen to Full.
func (d Directive) Merge(o Directive) Directive {
	switch {
	case d.Kind == KindNone:
		return o
	case o.Kind == KindNone:
		return d
	case d.Kind == KindFull || o.Kind == KindFull:
		return Full()
	case d.Row == o.Row:
		return d
	default:
		return Full()
	}
}

// String returns a short description such as "row(3)".
func (d Directive) String() string {
	if d.Kind == KindRow {
		return fmt.Sprintf("row(%d)", d.Row)
	}
	return d.Kind.String()
}

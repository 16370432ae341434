package ast

import (
	"fmt"
	"strings"
)

// WindowType is either a reference to a named window or an inline spec.
type WindowType struct {
	Name *Ident
	Spec *WindowSpec
}

func (w *WindowType) String() string {
	if w.Name != nil {
		return w.Name.String()
	}
	return "(" + w.Spec.String() + ")"
}

// WindowSpec is the body of an OVER (...) clause.
type WindowSpec struct {
	PartitionBy []Expr
	OrderBy     []OrderByExpr
	Frame       *WindowFrame
}

func (w *WindowSpec) String() string {
	var parts []string
	if len(w.PartitionBy) > 0 {
		parts = append(parts, "PARTITION BY "+commaSeparated(w.PartitionBy))
	}
	if len(w.OrderBy) > 0 {
		items := make([]string, len(w.OrderBy))
		for i, o := range w.OrderBy {
			items[i] = o.String()
		}
		parts = append(parts, "ORDER BY "+strings.Join(items, ", "))
	}
	if w.Frame != nil {
		parts = append(parts, w.Frame.String())
	}
	return strings.Join(parts, " ")
}

// WindowFrameUnits selects the frame mode.
type WindowFrameUnits int

// Frame units.
const (
	FrameRows WindowFrameUnits = iota
	FrameRange
	FrameGroups
)

func (u WindowFrameUnits) String() string {
	switch u {
	case FrameRange:
		return "RANGE"
	case FrameGroups:
		return "GROUPS"
	default:
		return "ROWS"
	}
}

// WindowFrame is the ROWS|RANGE|GROUPS frame of a window spec.
// End is nil for the single-bound form (implying CURRENT ROW).
type WindowFrame struct {
	Units WindowFrameUnits
	Start WindowFrameBound
	End   *WindowFrameBound
}

func (f *WindowFrame) String() string {
	if f.End != nil {
		return fmt.Sprintf("%s BETWEEN %s AND %s", f.Units, f.Start, f.End)
	}
	return fmt.Sprintf("%s %s", f.Units, f.Start)
}

// WindowFrameBoundKind classifies a frame bound.
type WindowFrameBoundKind int

// Frame bound kinds.
const (
	BoundCurrentRow WindowFrameBoundKind = iota
	BoundPreceding
	BoundFollowing
)

// WindowFrameBound is one bound of a window frame. Offset is nil for
// UNBOUNDED PRECEDING/FOLLOWING.
type WindowFrameBound struct {
	Kind   WindowFrameBoundKind
	Offset Expr
}

func (b WindowFrameBound) String() string {
	switch b.Kind {
	case BoundCurrentRow:
		return "CURRENT ROW"
	case BoundPreceding:
		if b.Offset == nil {
			return "UNBOUNDED PRECEDING"
		}
		return b.Offset.String() + " PRECEDING"
	default:
		if b.Offset == nil {
			return "UNBOUNDED FOLLOWING"
		}
		return b.Offset.String() + " FOLLOWING"
	}
}

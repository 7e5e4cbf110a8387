package trace

import "github.com/chazu/frost/pkg/geom"

// Compile-time interface check.
var _ Plotter = (*Recorder)(nil)

// OpKind distinguishes recorded plotter operations.
type OpKind int

const (
	OpMove OpKind = iota // pen up
	OpLine               // pen down
)

func (k OpKind) String() string {
	switch k {
	case OpMove:
		return "move"
	case OpLine:
		return "line"
	default:
		return "unknown"
	}
}

// Op is one recorded plotter operation.
type Op struct {
	Kind OpKind
	To   geom.Point
}

// Recorder implements Plotter by recording every operation. It is used
// in tests and dry runs in place of a real drawing backend.
type Recorder struct {
	Ops []Op
}

// MoveTo records a pen-up reposition.
func (r *Recorder) MoveTo(p geom.Point) {
	r.Ops = append(r.Ops, Op{Kind: OpMove, To: p})
}

// LineTo records a pen-down line.
func (r *Recorder) LineTo(p geom.Point) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, To: p})
}

// Reset discards all recorded operations.
func (r *Recorder) Reset() {
	r.Ops = nil
}

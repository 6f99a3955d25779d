package align

import "errors"

// Sentinel errors for align operations.
var (
	// ErrTraceNeedsMatrix indicates trace recovery requires FullMatrix mode.
	ErrTraceNeedsMatrix = errors.New("align: ReturnTrace requires MemoryMode=FullMatrix")
	// ErrBadMode indicates an unrecognized MemoryMode value.
	ErrBadMode = errors.New("align: unknown MemoryMode")
)

// MemoryMode controls how the solvers store their DP table.
//
//   - FullMatrix — keep the entire (n+1)×(m+1) table in memory.
//     Allows the value plus full backtrace (witness subsequence or
//     edit script). Memory: O(n·m).
//   - TwoRows    — only keep the current and previous rows. Reduces
//     memory to O(m) but cannot recover a trace.
type MemoryMode int

const (
	// FullMatrix mode: store all rows, support trace recovery.
	FullMatrix MemoryMode = iota
	// TwoRows mode: keep only two rows, value only.
	TwoRows
)

// OpKind labels one step of an edit script.
type OpKind int

const (
	// Insert adds b[J] after position I of a.
	Insert OpKind = iota
	// Delete removes a[I].
	Delete
	// Substitute replaces a[I] with b[J].
	Substitute
)

// EditOp is one operation of an edit script. I indexes into the first
// string, J into the second; either may be -1 when the operation does
// not consume a character from that side.
type EditOp struct {
	Kind OpKind
	I, J int
}

// Options configures LCS and EditDistance.
//
// Fields:
//   - MemoryMode  — FullMatrix or TwoRows storage.
//   - ReturnTrace — reconstruct the witness subsequence (LCS) or edit
//     script (EditDistance). Requires MemoryMode=FullMatrix.
type Options struct {
	MemoryMode  MemoryMode
	ReturnTrace bool
}

// DefaultOptions returns Options with FullMatrix storage and no trace.
func DefaultOptions() Options {
	return Options{MemoryMode: FullMatrix}
}

// validate rejects option combinations before any table is allocated.
func (o *Options) validate() error {
	if o.MemoryMode != FullMatrix && o.MemoryMode != TwoRows {
		return ErrBadMode
	}
	if o.ReturnTrace && o.MemoryMode != FullMatrix {
		return ErrTraceNeedsMatrix
	}

	return nil
}

// resolve applies defaults for a nil receiver.
func (o *Options) resolve() (Options, error) {
	if o == nil {
		return DefaultOptions(), nil
	}
	if err := o.validate(); err != nil {
		return Options{}, err
	}

	return *o, nil
}

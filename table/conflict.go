package table

import "fmt"

// ConflictKind classifies a Conflict per spec §3: two incompatible ACTION
// entries assigned to the same (state, terminal).
type ConflictKind string

const (
	ShiftReduce  ConflictKind = "shift/reduce"
	ReduceReduce ConflictKind = "reduce/reduce"
)

// Conflict records that ACTION[State, Symbol] was asked to hold two
// different entries. Kept is the entry the table actually uses, resolved
// per the policy in spec §4.4 (shift wins over reduce; lower production id
// wins between two reduces). Discarded is the entry that lost.
type Conflict struct {
	State     int
	Symbol    string
	Kind      ConflictKind
	Kept      Action
	Discarded Action
}

// String renders a one-line summary such as:
//
//	state 7, symbol "e": shift/reduce, kept s12, discarded r3
func (c Conflict) String() string {
	return fmt.Sprintf("state %d, symbol %q: %s, kept %s, discarded %s", c.State, c.Symbol, c.Kind, c.Kept, c.Discarded)
}

// resolve decides what ACTION[state,symbol] should hold when it already
// holds `existing` and construction now wants to write `candidate`.
// Returns the action that should be stored, the conflict kind (empty if
// writing the same action twice, which is idempotent and not a conflict),
// and whether a conflict occurred at all.
func resolve(existing, candidate Action) (kept Action, kind ConflictKind, isConflict bool) {
	if existing.Equal(candidate) {
		return existing, "", false
	}

	switch {
	case existing.Type == Shift && candidate.Type == Reduce:
		return existing, ShiftReduce, true
	case existing.Type == Reduce && candidate.Type == Shift:
		return candidate, ShiftReduce, true
	case existing.Type == Reduce && candidate.Type == Reduce:
		if candidate.Production.ID < existing.Production.ID {
			return candidate, ReduceReduce, true
		}
		return existing, ReduceReduce, true
	default:
		// Not a combination the spec's conflict taxonomy covers (e.g. two
		// distinct shifts, or anything involving Accept); a well-formed
		// LR(1) automaton cannot actually produce these, since GOTO is a
		// function and Accept occurs on exactly one item. Keep the
		// existing entry defensively rather than recording a
		// misclassified conflict.
		return existing, "", false
	}
}

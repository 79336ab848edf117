// Package table builds the ACTION/GOTO parse tables (component C4) from a
// grammar and its canonical LR(1) collection, recording every shift/reduce
// and reduce/reduce conflict it encounters along the way. Table
// construction never fails: it always completes and returns a usable table
// plus whatever conflicts were found.
package table

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"

	"github.com/dekarrin/canonlr/grammar"
)

func tracer() tracing.Trace {
	return tracing.Select("canonlr.table")
}

// ActionType discriminates the four possible ACTION table entries: Shift,
// Reduce, Accept, or absent (= error). Absent has no ActionType value: it is
// represented by the table holding no entry for that state and symbol.
type ActionType int

const (
	Shift ActionType = iota
	Reduce
	Accept
)

func (t ActionType) String() string {
	switch t {
	case Shift:
		return "shift"
	case Reduce:
		return "reduce"
	case Accept:
		return "accept"
	default:
		return "error"
	}
}

// Action is one ACTION table cell.
type Action struct {
	Type ActionType

	// State is used only when Type == Shift: the state to shift to.
	State int

	// Production is used only when Type == Reduce: the production to
	// reduce by.
	Production grammar.Production
}

// String renders the action as "sN", "rN", or "acc", matching the external
// interface's rendering convention (spec §6).
func (a Action) String() string {
	switch a.Type {
	case Shift:
		return fmt.Sprintf("s%d", a.State)
	case Reduce:
		return fmt.Sprintf("r%d", a.Production.ID)
	case Accept:
		return "acc"
	default:
		return ""
	}
}

// Equal reports whether two actions are identical in a way that makes
// writing one after the other idempotent rather than a conflict.
func (a Action) Equal(o Action) bool {
	if a.Type != o.Type {
		return false
	}
	switch a.Type {
	case Shift:
		return a.State == o.State
	case Reduce:
		return a.Production.ID == o.Production.ID
	default:
		return true
	}
}

// Package lrerrors defines the structured error kinds surfaced by the
// canonlr parser-generator pipeline. Each kind in the error taxonomy is its
// own Go type rather than a bare string, so callers can use errors.As to
// recover the offending state, token, or reason instead of parsing message
// text.
package lrerrors

import "fmt"

// GrammarReason is the reason a grammar was rejected during construction.
type GrammarReason string

const (
	ReasonEmpty               GrammarReason = "empty"
	ReasonUnknownStart        GrammarReason = "unknown_start"
	ReasonReservedSymbolInRHS GrammarReason = "reserved_symbol_in_rhs"
	ReasonStartHasNoProdution GrammarReason = "start_has_no_production"
)

// InvalidGrammarError is raised by grammar construction (C1) when the input
// productions or start symbol fail one of the construction-time rules.
type InvalidGrammarError struct {
	Reason GrammarReason
	Detail string
}

func (e *InvalidGrammarError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("invalid grammar: %s", e.Reason)
	}
	return fmt.Sprintf("invalid grammar: %s: %s", e.Reason, e.Detail)
}

// ParseError is raised by the parse driver (C5) when ACTION[state, token] is
// absent. It carries everything a caller needs to build its own diagnostic:
// the offending token, the state the driver was in, its position in the
// input, and the set of terminals that would have been accepted there.
type ParseError struct {
	State    int
	Token    string
	Position int
	Expected []string
}

func (e *ParseError) Error() string {
	if len(e.Expected) == 0 {
		return fmt.Sprintf("syntax error at position %d: unexpected %q", e.Position, e.Token)
	}
	return fmt.Sprintf("syntax error at position %d: unexpected %q (expected %s)", e.Position, e.Token, formatExpected(e.Expected))
}

func formatExpected(expected []string) string {
	if len(expected) == 1 {
		return expected[0]
	}
	out := ""
	for i, t := range expected {
		if i > 0 {
			if i == len(expected)-1 {
				out += " or "
			} else {
				out += ", "
			}
		}
		out += t
	}
	return out
}

// InternalInconsistencyError indicates that the parse driver reached a state
// that a well-formed ACTION/GOTO table should make unreachable: a reduce
// whose GOTO entry is missing, or an accept whose node stack does not hold
// exactly one tree. This always indicates a bug in table construction, not a
// malformed input, so it is not meant to be recovered from the way a
// ParseError is.
type InternalInconsistencyError struct {
	Reason string
}

func (e *InternalInconsistencyError) Error() string {
	return fmt.Sprintf("internal inconsistency in parse tables: %s", e.Reason)
}

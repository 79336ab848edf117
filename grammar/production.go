package grammar

import "strings"

// Reserved symbols. EndOfInput is the lookahead terminal appended to every
// token stream by the parse driver; Epsilon never appears as a grammar
// symbol and is used only inside FIRST sets.
const (
	EndOfInput = "$"
	Epsilon    = "ε"
)

// ProductionInput is how a caller specifies a single rule when building a
// Grammar: a left-hand side and an ordered right-hand side (empty for an
// ε-production). It carries no ID: New numbers the productions 1, 2, ... in
// input order, which gives Production.ID its "stable across a single
// generator run" identity.
type ProductionInput struct {
	LHS string
	RHS []string
}

// Production is a rule "A -> X1 ... Xn". Two productions with equal LHS and
// RHS are semantically equal regardless of ID; ID exists only to give a
// stable integer identity for reduce actions and derivation traces within a
// single generator run.
type Production struct {
	ID  int
	LHS string
	RHS []string
}

// Equal reports whether p and o have the same LHS and RHS, ignoring ID.
func (p Production) Equal(o Production) bool {
	if p.LHS != o.LHS || len(p.RHS) != len(o.RHS) {
		return false
	}
	for i := range p.RHS {
		if p.RHS[i] != o.RHS[i] {
			return false
		}
	}
	return true
}

// IsEpsilon reports whether the production's RHS is empty.
func (p Production) IsEpsilon() bool {
	return len(p.RHS) == 0
}

// String renders the production as "LHS -> X1 X2" or "LHS -> ε" for an
// epsilon production.
func (p Production) String() string {
	var sb strings.Builder
	sb.WriteString(p.LHS)
	sb.WriteString(" -> ")
	if len(p.RHS) == 0 {
		sb.WriteString(Epsilon)
	} else {
		sb.WriteString(strings.Join(p.RHS, " "))
	}
	return sb.String()
}

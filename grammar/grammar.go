// Package grammar implements the canonical representation of a context-free
// grammar (component C1) along with the FIRST/FOLLOW fixed-point engine
// (component C2). It is the leaf of the construction pipeline: every later
// stage (automaton, table, driver) consumes a *Grammar and never mutates it.
package grammar

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dekarrin/canonlr/lrerrors"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("canonlr.grammar")
}

// Grammar is an ordered list of productions plus a designated start symbol.
// A Grammar is built once, by New, and is immutable afterward: the
// augmentation (AugmentedStart, AugmentedProductions), Terminals(),
// NonTerminals(), FIRST and FOLLOW are all computed at
// construction time and never change for the lifetime of the value.
type Grammar struct {
	start       string
	augStart    string
	productions []Production // index 0 is always the augmentation S' -> S
	terminals   []string
	nonTerms    []string

	byNonTerm map[string][]Production

	first  map[string]map[string]bool
	follow map[string]map[string]bool
}

// New validates productions and start, then builds the augmented Grammar.
// An empty production list, a start symbol that is not some production's LHS, or a
// reserved symbol ($ or ε) appearing in an RHS are all rejected with a
// *lrerrors.InvalidGrammarError.
func New(productions []ProductionInput, start string) (*Grammar, error) {
	if len(productions) == 0 {
		return nil, invalidGrammar(reasonEmpty, "no productions supplied")
	}

	lhsSet := map[string]bool{}
	rhsSet := map[string]bool{}

	for _, p := range productions {
		lhsSet[p.LHS] = true
		for _, sym := range p.RHS {
			if sym == EndOfInput || sym == Epsilon {
				return nil, invalidGrammar(reasonReservedSymbol, fmt.Sprintf("production %q -> %v uses reserved symbol %q", p.LHS, p.RHS, sym))
			}
			rhsSet[sym] = true
		}
	}

	if !lhsSet[start] {
		return nil, invalidGrammar(reasonUnknownStart, fmt.Sprintf("start symbol %q is not the LHS of any production", start))
	}

	// terminals = (all RHS symbols) - (all LHS symbols)
	var terminals []string
	for sym := range rhsSet {
		if !lhsSet[sym] {
			terminals = append(terminals, sym)
		}
	}
	sort.Strings(terminals)

	var nonTerms []string
	for sym := range lhsSet {
		nonTerms = append(nonTerms, sym)
	}
	sort.Strings(nonTerms)

	// synthesize S' by appending primes until it collides with nothing
	augStart := start
	for {
		augStart = augStart + "'"
		if !lhsSet[augStart] && !rhsSet[augStart] {
			break
		}
	}

	all := make([]Production, 0, len(productions)+1)
	all = append(all, Production{ID: 0, LHS: augStart, RHS: []string{start}})
	for i, p := range productions {
		all = append(all, Production{ID: i + 1, LHS: p.LHS, RHS: append([]string(nil), p.RHS...)})
	}

	g := &Grammar{
		start:       start,
		augStart:    augStart,
		productions: all,
		terminals:   terminals,
		nonTerms:    nonTerms,
		byNonTerm:   map[string][]Production{},
	}

	for _, p := range g.productions {
		g.byNonTerm[p.LHS] = append(g.byNonTerm[p.LHS], p)
	}

	g.computeFirst()
	g.computeFollow()

	tracer().Debugf("built grammar: start=%q augmented-start=%q terminals=%d nonterminals=%d productions=%d",
		g.start, g.augStart, len(g.terminals), len(g.nonTerms), len(g.productions))

	return g, nil
}

func invalidGrammar(reason lrerrors.GrammarReason, detail string) error {
	return newInvalidGrammarError(reason, detail)
}

// StartSymbol returns the original (non-augmented) start symbol S.
func (g *Grammar) StartSymbol() string { return g.start }

// AugmentedStart returns the synthesized S' used only as the LHS of the
// augmentation production and the RHS of no production.
func (g *Grammar) AugmentedStart() string { return g.augStart }

// AugmentedProductions returns all productions including the id-0
// augmentation rule "S' -> S", in id order.
func (g *Grammar) AugmentedProductions() []Production {
	return g.productions
}

// Productions returns all productions except the synthetic augmentation.
func (g *Grammar) Productions() []Production {
	return g.productions[1:]
}

// ProductionsFor returns every production with the given nonterminal as LHS,
// including the augmentation when nt is the augmented start symbol.
func (g *Grammar) ProductionsFor(nt string) []Production {
	return g.byNonTerm[nt]
}

// Terminals returns the derived terminal set, sorted.
func (g *Grammar) Terminals() []string { return g.terminals }

// NonTerminals returns the derived nonterminal set (every LHS, including the
// augmented start symbol), sorted.
func (g *Grammar) NonTerminals() []string {
	out := make([]string, 0, len(g.nonTerms)+1)
	out = append(out, g.nonTerms...)
	out = append(out, g.augStart)
	sort.Strings(out)
	return out
}

// IsTerminal reports whether sym is classified as a terminal: it never
// appears as an LHS. $ is treated as a terminal for lookahead purposes even
// though it appears in no RHS.
func (g *Grammar) IsTerminal(sym string) bool {
	if sym == EndOfInput {
		return true
	}
	if g.byNonTerm[sym] != nil {
		return false
	}
	for _, t := range g.terminals {
		if t == sym {
			return true
		}
	}
	return false
}

// IsNonTerminal reports whether sym is some production's LHS (including the
// augmented start symbol).
func (g *Grammar) IsNonTerminal(sym string) bool {
	return sym == g.augStart || g.byNonTerm[sym] != nil
}

// String renders the augmented production list, one rule per line, matching
// the "grammar diagnostics" output named in the external interface.
func (g *Grammar) String() string {
	var sb strings.Builder
	for i, p := range g.productions {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(p.String())
	}
	return sb.String()
}

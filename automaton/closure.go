package automaton

import "github.com/dekarrin/canonlr/grammar"

// Closure computes CLOSURE(I): repeat until stable, for every item
// [A -> α · B β, a] in I where B is a nonterminal, for every production
// B -> γ, for every terminal b in FIRST(β a), add [B -> · γ, b] (spec §4.3).
// ε is filtered out of the lookahead set before use, since ε is never a
// valid Item.Lookahead.
func Closure(g *grammar.Grammar, items *ItemSet) *ItemSet {
	closure := NewItemSet(items.Items()...)

	worklist := append([]grammar.Item(nil), items.Items()...)
	for len(worklist) > 0 {
		it := worklist[0]
		worklist = worklist[1:]

		B, ok := it.SymbolAfterDot()
		if !ok || !g.IsNonTerminal(B) {
			continue
		}

		seq := append(append([]string(nil), it.Beta()...), it.Lookahead)
		lookaheads := g.FirstOfSequence(seq)

		for _, prod := range g.ProductionsFor(B) {
			for b := range lookaheads {
				if b == grammar.Epsilon {
					continue
				}
				newItem := grammar.Item{Production: prod, Dot: 0, Lookahead: b}
				if !closure.Contains(newItem) {
					closure.Add(newItem)
					worklist = append(worklist, newItem)
				}
			}
		}
	}

	return closure
}

// Goto computes GOTO(I, X): let J be the set of items [A -> α X · β, a] for
// every [A -> α · X β, a] in I, then return CLOSURE(J). Returns nil when J
// is empty, matching "or the empty set if J is empty" in spec §4.3.
func Goto(g *grammar.Grammar, items *ItemSet, X string) *ItemSet {
	var moved []grammar.Item
	for _, it := range items.Items() {
		sym, ok := it.SymbolAfterDot()
		if ok && sym == X {
			moved = append(moved, it.Advance())
		}
	}
	if len(moved) == 0 {
		return nil
	}
	return Closure(g, NewItemSet(moved...))
}

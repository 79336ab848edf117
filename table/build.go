package table

import (
	"github.com/dekarrin/canonlr/automaton"
	"github.com/dekarrin/canonlr/grammar"
)

// Build walks every state and every item of col, writing ACTION and GOTO
// entries per the rule table in spec §4.4:
//
//	[A -> α · a β, b] (a terminal)  -> ACTION[i, a] := Shift(GOTO(i, a))
//	[S' -> S ·, $]                  -> ACTION[i, $] := Accept
//	[A -> α ·, a] (A != S')         -> ACTION[i, a] := Reduce(A -> α)
//	[A -> α · B β, _] (B nonterminal) -> GOTO_TABLE[i, B] := GOTO(i, B)
//
// It never fails: every conflict it finds is resolved per policy (shift
// wins over reduce; lower production id wins between two reduces) and
// recorded in the returned slice, never raised as an error.
func Build(g *grammar.Grammar, col *automaton.Collection) (*Table, []Conflict) {
	t := &Table{
		grammar:    g,
		collection: col,
		action:     map[int]map[string]Action{},
		goto_:      map[int]map[string]int{},
	}

	var conflicts []Conflict

	setAction := func(state int, symbol string, candidate Action) {
		if t.action[state] == nil {
			t.action[state] = map[string]Action{}
		}
		existing, ok := t.action[state][symbol]
		if !ok {
			t.action[state][symbol] = candidate
			return
		}

		kept, kind, isConflict := resolve(existing, candidate)
		t.action[state][symbol] = kept
		if isConflict {
			tracer().Debugf("conflict in state %d on %q: %s (kept %s, discarded %s)", state, symbol, kind, kept, discardedOf(existing, candidate, kept))
			conflicts = append(conflicts, Conflict{
				State:     state,
				Symbol:    symbol,
				Kind:      kind,
				Kept:      kept,
				Discarded: discardedOf(existing, candidate, kept),
			})
		}
	}

	for i, state := range col.States {
		for _, it := range state.Items() {
			if sym, ok := it.SymbolAfterDot(); ok {
				if g.IsTerminal(sym) {
					if j, ok := col.Next(i, sym); ok {
						setAction(i, sym, Action{Type: Shift, State: j})
					}
				} else {
					if j, ok := col.Next(i, sym); ok {
						if t.goto_[i] == nil {
							t.goto_[i] = map[string]int{}
						}
						t.goto_[i][sym] = j
					}
				}
				continue
			}

			// the item is complete: dot == |rhs|
			if it.Production.LHS == g.AugmentedStart() && it.Lookahead == grammar.EndOfInput {
				setAction(i, grammar.EndOfInput, Action{Type: Accept})
				continue
			}

			setAction(i, it.Lookahead, Action{Type: Reduce, Production: it.Production})
		}
	}

	tracer().Debugf("built table: %d states, %d conflicts", len(col.States), len(conflicts))

	return t, conflicts
}

func discardedOf(existing, candidate, kept Action) Action {
	if kept.Equal(existing) {
		return candidate
	}
	return existing
}

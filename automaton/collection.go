package automaton

import "github.com/dekarrin/canonlr/grammar"

// Collection is the canonical collection of LR(1) item sets reachable from
// the initial closure via GOTO, plus the transition graph that connects
// them. States are indexed by insertion order; state 0 is always the
// initial state I0 = CLOSURE({[S' -> · S, $]}).
type Collection struct {
	Grammar     *grammar.Grammar
	States      []*ItemSet
	Transitions map[int]map[string]int // (state, symbol) -> state
}

// Build constructs the canonical LR(1) collection for g, per spec §4.3:
//
//  1. I0 = CLOSURE({[S' -> · S, $]}); assign index 0.
//  2. Maintain a queue of newly created states.
//  3. For each state I and each grammar symbol X appearing as the
//     symbol-after-dot of some item in I, compute J = GOTO(I, X); if J is
//     non-empty, look it up by set equality; if absent, append it with the
//     next index; record transitions[(index(I), X)] = index(J).
//  4. Terminate when no new state or transition is produced.
//
// Traversal order is deterministic: states are processed in creation order,
// and within a state, symbols are processed terminals-first (string order),
// then nonterminals (string order), so two runs on the same grammar always
// number states identically.
func Build(g *grammar.Grammar) *Collection {
	startItem := grammar.Item{
		Production: g.AugmentedProductions()[0],
		Dot:        0,
		Lookahead:  grammar.EndOfInput,
	}
	i0 := Closure(g, NewItemSet(startItem))

	col := &Collection{
		Grammar:     g,
		Transitions: map[int]map[string]int{},
	}
	indexOf := map[string]int{}

	col.States = append(col.States, i0)
	indexOf[i0.Key()] = 0

	queue := []int{0}
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		state := col.States[i]

		for _, X := range symbolsAfterDot(g, state) {
			j := Goto(g, state, X)
			if j == nil || j.Size() == 0 {
				continue
			}

			key := j.Key()
			jIdx, exists := indexOf[key]
			if !exists {
				jIdx = len(col.States)
				col.States = append(col.States, j)
				indexOf[key] = jIdx
				queue = append(queue, jIdx)
				tracer().Debugf("new state %d from GOTO(%d, %q), %d items", jIdx, i, X, j.Size())
			}

			if col.Transitions[i] == nil {
				col.Transitions[i] = map[string]int{}
			}
			col.Transitions[i][X] = jIdx
		}
	}

	tracer().Debugf("built canonical collection: %d states", len(col.States))

	return col
}

// Next returns the state GOTO(state, symbol) transitions to, and whether
// that transition is defined.
func (c *Collection) Next(state int, symbol string) (int, bool) {
	m, ok := c.Transitions[state]
	if !ok {
		return 0, false
	}
	j, ok := m[symbol]
	return j, ok
}

// State returns the item set for a given state index.
func (c *Collection) State(i int) *ItemSet {
	return c.States[i]
}

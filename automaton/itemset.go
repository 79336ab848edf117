// Package automaton builds the canonical collection of LR(1) item sets
// (component C3): CLOSURE, GOTO, and the transition graph that links them.
// States are identified purely by membership (spec §3); two item sets with
// the same members are the same state regardless of how or when each was
// discovered.
package automaton

import (
	"sort"
	"strings"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/schuko/tracing"

	"github.com/dekarrin/canonlr/grammar"
)

func tracer() tracing.Trace {
	return tracing.Select("canonlr.automaton")
}

func itemComparator(a, b interface{}) int {
	ia, ib := a.(grammar.Item), b.(grammar.Item)
	if ia.Production.ID != ib.Production.ID {
		return ia.Production.ID - ib.Production.ID
	}
	if ia.Dot != ib.Dot {
		return ia.Dot - ib.Dot
	}
	return strings.Compare(ia.Lookahead, ib.Lookahead)
}

// ItemSet is an unordered (by spec) collection of LR(1) items, backed by a
// gods red-black tree set so that iteration is always in a single canonical
// order (by production id, then dot, then lookahead) regardless of
// insertion order. That canonical order is what makes Key() stable: two
// ItemSets built by different discovery paths but with equal membership
// hash identically.
type ItemSet struct {
	tree *treeset.Set
}

// NewItemSet returns an ItemSet containing the given items.
func NewItemSet(items ...grammar.Item) *ItemSet {
	s := &ItemSet{tree: treeset.NewWith(itemComparator)}
	for _, it := range items {
		s.tree.Add(it)
	}
	return s
}

// Add inserts an item into the set; a no-op if it is already present.
func (s *ItemSet) Add(it grammar.Item) {
	s.tree.Add(it)
}

// Contains reports whether it is a member of the set.
func (s *ItemSet) Contains(it grammar.Item) bool {
	return s.tree.Contains(it)
}

// Size returns the number of items in the set.
func (s *ItemSet) Size() int {
	return s.tree.Size()
}

// Items returns the set's members in canonical order.
func (s *ItemSet) Items() []grammar.Item {
	values := s.tree.Values()
	out := make([]grammar.Item, len(values))
	for i, v := range values {
		out[i] = v.(grammar.Item)
	}
	return out
}

// Key returns a structural hash of the set's canonical-ordered members. Two
// ItemSets with equal membership always produce the same Key, which is what
// lets the canonical-collection builder deduplicate states "by set
// equality" (spec §4.3) using a plain map instead of an O(n) linear scan
// comparing every previously discovered state.
func (s *ItemSet) Key() string {
	key, err := structhash.Hash(s.Items(), 1)
	if err != nil {
		// structhash.Hash only fails for unhashable types; Item is a plain
		// value type of strings and ints, so this is unreachable.
		panic("automaton: failed to hash item set: " + err.Error())
	}
	return key
}

// symbolsAfterDot returns, in the deterministic traversal order the spec
// recommends (all terminals first by string order, then nonterminals by
// string order), every grammar symbol that appears just after the dot of
// some item in s.
func symbolsAfterDot(g *grammar.Grammar, s *ItemSet) []string {
	seen := map[string]bool{}
	for _, it := range s.Items() {
		if sym, ok := it.SymbolAfterDot(); ok {
			seen[sym] = true
		}
	}

	var terms, nonTerms []string
	for sym := range seen {
		if g.IsTerminal(sym) {
			terms = append(terms, sym)
		} else {
			nonTerms = append(nonTerms, sym)
		}
	}
	sort.Strings(terms)
	sort.Strings(nonTerms)

	return append(terms, nonTerms...)
}

package table

import (
	"fmt"
	"sort"

	"github.com/dekarrin/rosed"

	"github.com/dekarrin/canonlr/automaton"
	"github.com/dekarrin/canonlr/grammar"
)

// Table is the frozen ACTION/GOTO table produced by Build. It never
// mutates after construction; the parse driver holds a non-owning
// reference to it.
type Table struct {
	grammar    *grammar.Grammar
	collection *automaton.Collection

	action map[int]map[string]Action
	goto_  map[int]map[string]int
}

// Initial returns the index of the start state, always 0.
func (t *Table) Initial() int {
	return 0
}

// Action returns ACTION[state, symbol]. The second return value is false
// when the entry is absent (a parse error at that state/symbol).
func (t *Table) Action(state int, symbol string) (Action, bool) {
	row, ok := t.action[state]
	if !ok {
		return Action{}, false
	}
	a, ok := row[symbol]
	return a, ok
}

// Goto returns GOTO_TABLE[state, nonTerminal].
func (t *Table) Goto(state int, nonTerminal string) (int, bool) {
	row, ok := t.goto_[state]
	if !ok {
		return 0, false
	}
	j, ok := row[nonTerminal]
	return j, ok
}

// ExpectedTerminals returns every terminal for which ACTION[state, *] is
// defined, sorted, for use building a ParseError's Expected set.
func (t *Table) ExpectedTerminals(state int) []string {
	row, ok := t.action[state]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(row))
	for sym := range row {
		out = append(out, sym)
	}
	sort.Strings(out)
	return out
}

// String renders one row per state, one column per terminal (ACTION) and
// nonterminal (GOTO), in the "sN / rN / acc / blank" notation from spec §6.
// This mirrors the teacher's canonicalLR1Table.String() layout: state 0
// first, then the rest in index order, with "|" separators between the
// state column, the ACTION columns, and the GOTO columns.
func (t *Table) String() string {
	terms := append(append([]string{}, t.grammar.Terminals()...), grammar.EndOfInput)
	nonTerms := t.grammar.NonTerminals()

	headers := []string{"S", "|"}
	for _, term := range terms {
		headers = append(headers, "A:"+term)
	}
	headers = append(headers, "|")
	for _, nt := range nonTerms {
		headers = append(headers, "G:"+nt)
	}

	data := [][]string{headers}

	for i := range t.collection.States {
		row := []string{fmt.Sprintf("%d", i), "|"}
		for _, term := range terms {
			cell := ""
			if a, ok := t.Action(i, term); ok {
				cell = a.String()
			}
			row = append(row, cell)
		}
		row = append(row, "|")
		for _, nt := range nonTerms {
			cell := ""
			if j, ok := t.Goto(i, nt); ok {
				cell = fmt.Sprintf("%d", j)
			}
			row = append(row, cell)
		}
		data = append(data, row)
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}

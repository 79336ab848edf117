package automaton

import (
	"fmt"
	"sort"

	"github.com/dekarrin/rosed"
)

// Dump renders the numbered item-set listing plus the transition graph, for
// the "Canonical collection" diagnostic output named in spec §6. State 0 is
// always listed first, matching the table-rendering convention the teacher
// uses for its own ACTION/GOTO dumps.
func (c *Collection) Dump() string {
	data := [][]string{{"State", "Items"}}

	for i, state := range c.States {
		items := ""
		for j, it := range state.Items() {
			if j > 0 {
				items += "; "
			}
			items += it.String()
		}
		data = append(data, []string{fmt.Sprintf("%d", i), items})
	}

	out := rosed.
		Edit("").
		InsertTableOpts(0, data, 20, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()

	out += "\n\ntransitions:\n"

	transData := [][]string{{"From", "Symbol", "To"}}
	states := make([]int, 0, len(c.Transitions))
	for s := range c.Transitions {
		states = append(states, s)
	}
	sort.Ints(states)

	for _, s := range states {
		syms := make([]string, 0, len(c.Transitions[s]))
		for sym := range c.Transitions[s] {
			syms = append(syms, sym)
		}
		sort.Strings(syms)
		for _, sym := range syms {
			transData = append(transData, []string{fmt.Sprintf("%d", s), sym, fmt.Sprintf("%d", c.Transitions[s][sym])})
		}
	}

	out += rosed.
		Edit("").
		InsertTableOpts(0, transData, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()

	return out
}

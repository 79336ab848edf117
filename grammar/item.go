package grammar

import "fmt"

// Item is an LR(1) item: a dotted production paired with a lookahead
// terminal, per spec §3. Items are value-typed, but because Production.RHS
// is a slice an Item is not comparable with == and cannot be a map key;
// compare items with Equal instead.
type Item struct {
	Production Production
	Dot        int
	Lookahead  string
}

// IsComplete reports whether the dot has reached the end of the RHS.
func (it Item) IsComplete() bool {
	return it.Dot >= len(it.Production.RHS)
}

// SymbolAfterDot returns the symbol immediately following the dot and true,
// or ("", false) if the item is complete.
func (it Item) SymbolAfterDot() (string, bool) {
	if it.IsComplete() {
		return "", false
	}
	return it.Production.RHS[it.Dot], true
}

// Beta returns the symbols after the one immediately following the dot (the
// "β" of "A -> α · a β"), used when computing CLOSURE lookaheads.
func (it Item) Beta() []string {
	if it.Dot+1 >= len(it.Production.RHS) {
		return nil
	}
	return it.Production.RHS[it.Dot+1:]
}

// Advance returns a copy of it with the dot moved one position to the
// right. Callers must only call this on a non-complete item.
func (it Item) Advance() Item {
	return Item{Production: it.Production, Dot: it.Dot + 1, Lookahead: it.Lookahead}
}

// Equal reports whether two items have the same production identity, dot
// position, and lookahead. Production identity is compared by LHS/RHS (via
// Production.Equal), matching the spec's "equality and hashing are based on
// all three fields" and the note that two productions with equal LHS/RHS are
// semantically equal regardless of ID.
func (it Item) Equal(o Item) bool {
	return it.Dot == o.Dot && it.Lookahead == o.Lookahead && it.Production.Equal(o.Production)
}

// String renders the item as "A -> α · β, a", the dotted-item notation used
// throughout the design notes and diagnostics.
func (it Item) String() string {
	left := it.Production.RHS[:it.Dot]
	right := it.Production.RHS[it.Dot:]

	dotted := ""
	for _, s := range left {
		dotted += " " + s
	}
	dotted += " ·"
	for _, s := range right {
		dotted += " " + s
	}

	return fmt.Sprintf("%s ->%s, %s", it.Production.LHS, dotted, it.Lookahead)
}

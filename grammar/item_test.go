package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Item_CompleteAndSymbolAfterDot(t *testing.T) {
	assert := assert.New(t)

	p := Production{ID: 1, LHS: "E", RHS: []string{"E", "+", "T"}}

	start := Item{Production: p, Dot: 0, Lookahead: "$"}
	sym, ok := start.SymbolAfterDot()
	assert.True(ok)
	assert.Equal("E", sym)
	assert.False(start.IsComplete())

	end := Item{Production: p, Dot: 3, Lookahead: "$"}
	_, ok = end.SymbolAfterDot()
	assert.False(ok)
	assert.True(end.IsComplete())
}

func Test_Item_Advance(t *testing.T) {
	assert := assert.New(t)

	p := Production{ID: 1, LHS: "E", RHS: []string{"E", "+", "T"}}
	it := Item{Production: p, Dot: 0, Lookahead: "$"}

	next := it.Advance()
	assert.Equal(1, next.Dot)
	assert.Equal(0, it.Dot, "Advance must not mutate the receiver")

	sym, _ := next.SymbolAfterDot()
	assert.Equal("+", sym)
}

func Test_Item_Beta(t *testing.T) {
	assert := assert.New(t)

	p := Production{ID: 1, LHS: "E", RHS: []string{"E", "+", "T"}}
	it := Item{Production: p, Dot: 0, Lookahead: "$"}

	assert.Equal([]string{"+", "T"}, it.Beta())

	atEnd := Item{Production: p, Dot: 2, Lookahead: "$"}
	assert.Nil(atEnd.Beta())
}

func Test_Item_Equal_IgnoresProductionID(t *testing.T) {
	assert := assert.New(t)

	p1 := Production{ID: 1, LHS: "E", RHS: []string{"T"}}
	p2 := Production{ID: 99, LHS: "E", RHS: []string{"T"}}

	a := Item{Production: p1, Dot: 0, Lookahead: "$"}
	b := Item{Production: p2, Dot: 0, Lookahead: "$"}

	assert.True(a.Equal(b))
}

func Test_Item_String(t *testing.T) {
	assert := assert.New(t)

	p := Production{ID: 1, LHS: "E", RHS: []string{"E", "+", "T"}}
	it := Item{Production: p, Dot: 1, Lookahead: "$"}

	assert.Equal("E -> E · + T, $", it.String())
}

package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test_FIRST_EpsilonProductions exercises scenario E from the spec: FIRST(A)
// must include both a terminal and ε when A can derive the empty string.
func Test_FIRST_EpsilonProductions(t *testing.T) {
	assert := assert.New(t)

	g, err := New([]ProductionInput{
		{LHS: "S", RHS: []string{"A", "B"}},
		{LHS: "A", RHS: []string{"a"}},
		{LHS: "A", RHS: []string{}},
		{LHS: "B", RHS: []string{"b"}},
	}, "S")
	assert.NoError(err)

	firstA := g.FirstOfSymbol("A")
	assert.Contains(firstA, "a")
	assert.Contains(firstA, Epsilon)

	firstS := g.FirstOfSymbol("S")
	assert.Contains(firstS, "a")
	assert.Contains(firstS, "b")
	assert.NotContains(firstS, Epsilon)
}

func Test_FIRST_Monotonicity(t *testing.T) {
	assert := assert.New(t)

	g, err := New([]ProductionInput{
		{LHS: "S", RHS: []string{"A", "B"}},
		{LHS: "A", RHS: []string{"a"}},
		{LHS: "A", RHS: []string{}},
		{LHS: "B", RHS: []string{"b"}},
	}, "S")
	assert.NoError(err)

	alphaFirst := g.FirstOfSequence([]string{"A"})
	alphaBetaFirst := g.FirstOfSequence([]string{"A", "B"})

	for sym := range alphaFirst {
		if sym == Epsilon {
			continue
		}
		assert.True(alphaBetaFirst[sym], "FIRST(AB) should contain %q from FIRST(A)\\{ε}", sym)
	}

	// since ε ∈ FIRST(A), FIRST(AB) must also be a superset of FIRST(B).
	if alphaFirst[Epsilon] {
		for sym := range g.FirstOfSequence([]string{"B"}) {
			assert.True(alphaBetaFirst[sym])
		}
	}
}

func Test_FIRST_OrderIndependence(t *testing.T) {
	assert := assert.New(t)

	fwd := []ProductionInput{
		{LHS: "E", RHS: []string{"E", "+", "T"}},
		{LHS: "E", RHS: []string{"T"}},
		{LHS: "T", RHS: []string{"T", "*", "F"}},
		{LHS: "T", RHS: []string{"F"}},
		{LHS: "F", RHS: []string{"(", "E", ")"}},
		{LHS: "F", RHS: []string{"id"}},
	}
	rev := make([]ProductionInput, len(fwd))
	for i := range fwd {
		rev[len(fwd)-1-i] = fwd[i]
	}

	gFwd, err := New(fwd, "E")
	assert.NoError(err)
	gRev, err := New(rev, "E")
	assert.NoError(err)

	assert.Equal(gFwd.FirstOfSymbol("E"), gRev.FirstOfSymbol("E"))
	assert.Equal(gFwd.FirstOfSymbol("T"), gRev.FirstOfSymbol("T"))
	assert.Equal(gFwd.FirstOfSymbol("F"), gRev.FirstOfSymbol("F"))
}

package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/canonlr/automaton"
	"github.com/dekarrin/canonlr/grammar"
	"github.com/dekarrin/canonlr/lrerrors"
	"github.com/dekarrin/canonlr/table"
)

func newDriver(t *testing.T, productions []grammar.ProductionInput, start string) (*grammar.Grammar, *Driver, []table.Conflict) {
	t.Helper()
	g, err := grammar.New(productions, start)
	assert.NoError(t, err)
	col := automaton.Build(g)
	tbl, conflicts := table.Build(g, col)
	return g, New(g, tbl), conflicts
}

// Test_Parse_ScenarioA_Accepting mirrors spec scenario A.
func Test_Parse_ScenarioA_Accepting(t *testing.T) {
	assert := assert.New(t)

	_, d, conflicts := newDriver(t, []grammar.ProductionInput{
		{LHS: "E", RHS: []string{"E", "+", "T"}},
		{LHS: "E", RHS: []string{"T"}},
		{LHS: "T", RHS: []string{"id"}},
	}, "E")
	assert.Empty(conflicts)

	result, err := d.Parse([]string{"id", "+", "id"})
	assert.NoError(err)
	assert.NotNil(result)

	assert.Equal([]int{3, 2, 3, 1}, result.Derivation)
	assert.Equal([]string{"id", "+", "id"}, result.Tree.Yield())

	assert.Equal("E", result.Tree.Symbol)
	assert.Len(result.Tree.Children, 3)
	assert.Equal("E", result.Tree.Children[0].Symbol)
	assert.Equal("+", result.Tree.Children[1].Symbol)
	assert.Equal("T", result.Tree.Children[2].Symbol)
}

// Test_Parse_ScenarioB_Rejecting mirrors spec scenario B.
func Test_Parse_ScenarioB_Rejecting(t *testing.T) {
	assert := assert.New(t)

	_, d, _ := newDriver(t, []grammar.ProductionInput{
		{LHS: "E", RHS: []string{"E", "+", "T"}},
		{LHS: "E", RHS: []string{"T"}},
		{LHS: "T", RHS: []string{"id"}},
	}, "E")

	result, err := d.Parse([]string{"+", "id"})
	assert.Nil(result)
	assert.Error(err)

	var parseErr *lrerrors.ParseError
	assert.ErrorAs(err, &parseErr)
	assert.Equal(0, parseErr.Position)
	assert.Equal(0, parseErr.State)
	assert.Equal("+", parseErr.Token)
	assert.Equal([]string{"id"}, parseErr.Expected)
}

// Test_Parse_ScenarioC_OperatorPrecedence mirrors spec scenario C.
func Test_Parse_ScenarioC_OperatorPrecedence(t *testing.T) {
	assert := assert.New(t)

	_, d, conflicts := newDriver(t, []grammar.ProductionInput{
		{LHS: "E", RHS: []string{"E", "+", "T"}},
		{LHS: "E", RHS: []string{"T"}},
		{LHS: "T", RHS: []string{"T", "*", "F"}},
		{LHS: "T", RHS: []string{"F"}},
		{LHS: "F", RHS: []string{"(", "E", ")"}},
		{LHS: "F", RHS: []string{"id"}},
	}, "E")
	assert.Empty(conflicts)

	result, err := d.Parse([]string{"id", "+", "id", "*", "id"})
	assert.NoError(err)

	root := result.Tree
	assert.Equal("E", root.Symbol)
	assert.Len(root.Children, 3)
	// the E+T node dominates the T*F subtree on the right: the rightmost
	// child is a T whose own children show the T*F shape.
	rightT := root.Children[2]
	assert.Equal("T", rightT.Symbol)
	assert.Len(rightT.Children, 3)
	assert.Equal("*", rightT.Children[1].Symbol)
}

// Test_Parse_ScenarioD_DanglingElse mirrors spec scenario D.
func Test_Parse_ScenarioD_DanglingElse(t *testing.T) {
	assert := assert.New(t)

	_, d, conflicts := newDriver(t, []grammar.ProductionInput{
		{LHS: "S", RHS: []string{"i", "C", "t", "S"}},
		{LHS: "S", RHS: []string{"i", "C", "t", "S", "e", "S"}},
		{LHS: "S", RHS: []string{"a"}},
		{LHS: "C", RHS: []string{"b"}},
	}, "S")

	assert.NotEmpty(conflicts)

	result, err := d.Parse([]string{"i", "b", "t", "i", "b", "t", "a", "e", "a"})
	assert.NoError(err)
	assert.NotNil(result)
}

// Test_Parse_ScenarioE_EpsilonProductions mirrors spec scenario E.
func Test_Parse_ScenarioE_EpsilonProductions(t *testing.T) {
	assert := assert.New(t)

	_, d, conflicts := newDriver(t, []grammar.ProductionInput{
		{LHS: "S", RHS: []string{"A", "B"}},
		{LHS: "A", RHS: []string{"a"}},
		{LHS: "A", RHS: []string{}},
		{LHS: "B", RHS: []string{"b"}},
	}, "S")
	assert.Empty(conflicts)

	result, err := d.Parse([]string{"b"})
	assert.NoError(err)

	var sawEpsilonReduce bool
	for _, id := range result.Derivation {
		if id == 3 { // A -> ε is production id 3 given this ordering
			sawEpsilonReduce = true
		}
	}
	assert.True(sawEpsilonReduce)

	assert.Equal([]string{"b"}, result.Tree.Yield())
}

// Test_Parse_ScenarioF_ReduceReduceStillAccepts mirrors spec scenario F.
func Test_Parse_ScenarioF_ReduceReduceStillAccepts(t *testing.T) {
	assert := assert.New(t)

	_, d, conflicts := newDriver(t, []grammar.ProductionInput{
		{LHS: "S", RHS: []string{"A"}},
		{LHS: "S", RHS: []string{"B"}},
		{LHS: "A", RHS: []string{"a"}},
		{LHS: "B", RHS: []string{"a"}},
	}, "S")
	assert.NotEmpty(conflicts)

	result, err := d.Parse([]string{"a"})
	assert.NoError(err)
	assert.Equal("S", result.Tree.Symbol)
}

func Test_Parse_TreeMatchesProductionRHS(t *testing.T) {
	assert := assert.New(t)

	_, d, _ := newDriver(t, []grammar.ProductionInput{
		{LHS: "E", RHS: []string{"E", "+", "T"}},
		{LHS: "E", RHS: []string{"T"}},
		{LHS: "T", RHS: []string{"id"}},
	}, "E")

	result, err := d.Parse([]string{"id", "+", "id"})
	assert.NoError(err)

	var walk func(n *ParseTree)
	walk = func(n *ParseTree) {
		if n.Terminal {
			assert.Nil(n.Production)
			return
		}
		if n.Production != nil {
			assert.Len(n.Children, len(n.Production.RHS))
			for i, c := range n.Children {
				assert.Equal(n.Production.RHS[i], c.Symbol)
			}
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(result.Tree)
}

// Package driver implements the shift/reduce stack machine (component C5)
// that consumes ACTION/GOTO tables and a token stream to produce a parse
// tree, a derivation trace, or a structured parse error.
package driver

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/schuko/tracing"

	"github.com/dekarrin/canonlr/grammar"
	"github.com/dekarrin/canonlr/lrerrors"
	"github.com/dekarrin/canonlr/table"
)

func tracer() tracing.Trace {
	return tracing.Select("canonlr.driver")
}

// Result is what a successful parse returns: the tree root and the
// derivation (the ordered list of production ids applied during reduces,
// which in reverse is the rightmost derivation).
type Result struct {
	Tree       *ParseTree
	Derivation []int
}

// Driver is an immutable grammar plus ACTION/GOTO table, ready to run
// parses. Because the grammar and table never mutate after construction, a
// single Driver may be shared across goroutines; each call to Parse owns
// its own stacks and tree nodes.
type Driver struct {
	grammar *grammar.Grammar
	table   *table.Table
	trace   func(s string)
}

// New returns a Driver over the given grammar and table. Parse appends $
// internally; callers of Parse must not include it in tokens.
func New(g *grammar.Grammar, t *table.Table) *Driver {
	return &Driver{grammar: g, table: t}
}

// RegisterTraceListener installs a callback invoked with a human-readable
// line at each step of every subsequent Parse call, mirroring the teacher's
// call-site-local tracing hook. This is in addition to, not instead of, the
// always-on structured tracer() channel.
func (d *Driver) RegisterTraceListener(listener func(s string)) {
	d.trace = listener
}

func (d *Driver) notifyTrace(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	tracer().Debugf(msg)
	if d.trace != nil {
		d.trace(msg)
	}
}

// Parse drives the ACTION/GOTO stack machine described in spec §4.5 over
// tokens. The trailing $ is appended internally; tokens must not include
// it. On success it returns the tree root and the derivation; on a missing
// ACTION entry it returns a *lrerrors.ParseError with the offending state,
// token, position, and expected terminal set.
func (d *Driver) Parse(tokens []string) (*Result, error) {
	stream := make([]string, 0, len(tokens)+1)
	stream = append(stream, tokens...)
	stream = append(stream, grammar.EndOfInput)

	states := arraystack.New()
	states.Push(d.table.Initial())

	nodes := arraystack.New()

	pos := 0
	var derivation []int

	for {
		sRaw, _ := states.Peek()
		s := sRaw.(int)
		a := stream[pos]

		act, ok := d.table.Action(s, a)
		if !ok {
			return nil, &lrerrors.ParseError{
				State:    s,
				Token:    a,
				Position: pos,
				Expected: d.table.ExpectedTerminals(s),
			}
		}

		d.notifyTrace("state=%d token=%q action=%s", s, a, act)

		switch act.Type {
		case table.Shift:
			nodes.Push(&ParseTree{Terminal: true, Symbol: a})
			states.Push(act.State)
			pos++

		case table.Reduce:
			prod := act.Production
			k := len(prod.RHS)

			children := make([]*ParseTree, k)
			for i := k - 1; i >= 0; i-- {
				childRaw, ok := nodes.Pop()
				if !ok {
					return nil, &lrerrors.InternalInconsistencyError{Reason: "node stack underflow during reduce"}
				}
				children[i] = childRaw.(*ParseTree)
				states.Pop()
			}

			node := &ParseTree{Symbol: prod.LHS, Production: &prod, Children: children}
			nodes.Push(node)
			derivation = append(derivation, prod.ID)

			topRaw, ok := states.Peek()
			if !ok {
				return nil, &lrerrors.InternalInconsistencyError{Reason: "state stack underflow after reduce"}
			}
			top := topRaw.(int)

			next, ok := d.table.Goto(top, prod.LHS)
			if !ok {
				return nil, &lrerrors.InternalInconsistencyError{Reason: fmt.Sprintf("no GOTO[%d, %s] after reducing by %s", top, prod.LHS, prod)}
			}
			states.Push(next)

		case table.Accept:
			if nodes.Size() != 1 {
				return nil, &lrerrors.InternalInconsistencyError{Reason: fmt.Sprintf("accept with %d nodes on the tree stack, expected 1", nodes.Size())}
			}
			rootRaw, _ := nodes.Pop()
			return &Result{Tree: rootRaw.(*ParseTree), Derivation: derivation}, nil
		}
	}
}

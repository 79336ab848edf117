// Package canonlr wires together the grammar model, the canonical LR(1)
// automaton, the ACTION/GOTO table, and the shift/reduce driver into a
// single parser generator: give it a grammar, get back something that
// parses token streams for that grammar.
package canonlr

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/dekarrin/canonlr/automaton"
	"github.com/dekarrin/canonlr/driver"
	"github.com/dekarrin/canonlr/grammar"
	"github.com/dekarrin/canonlr/table"
)

func tracer() tracing.Trace {
	return tracing.Select("canonlr")
}

// Generator holds the full construction result for one grammar: the
// grammar itself, its canonical collection, its ACTION/GOTO table (with
// whatever conflicts were resolved along the way), and a driver ready to
// parse token streams against it.
type Generator struct {
	grammar    *grammar.Grammar
	collection *automaton.Collection
	table      *table.Table
	conflicts  []table.Conflict
	driver     *driver.Driver
}

// Option configures a Generator at construction time.
type Option func(*Generator)

// WithTraceListener registers a callback invoked with a human-readable line
// at each step of every subsequent Parse call on the resulting Generator,
// in addition to the package's own structured tracer() channel.
func WithTraceListener(listener func(string)) Option {
	return func(gen *Generator) {
		gen.driver.RegisterTraceListener(listener)
	}
}

// Generate validates productions, builds the canonical LR(1) collection,
// derives the ACTION/GOTO table, and returns a ready-to-use Generator.
//
// Generate itself never fails because of grammar ambiguity: shift/reduce
// and reduce/reduce conflicts are resolved per policy (shift wins; lowest
// production id wins between two reduces) and reported through Conflicts,
// not returned as an error. The only error Generate returns comes from
// grammar validation: an empty production list, a start symbol that is not
// some production's LHS, or a reserved symbol ($ or ε) used in a
// production's right-hand side.
func Generate(productions []grammar.ProductionInput, start string, opts ...Option) (*Generator, error) {
	g, err := grammar.New(productions, start)
	if err != nil {
		return nil, err
	}

	col := automaton.Build(g)
	tbl, conflicts := table.Build(g, col)

	gen := &Generator{
		grammar:    g,
		collection: col,
		table:      tbl,
		conflicts:  conflicts,
		driver:     driver.New(g, tbl),
	}

	for _, opt := range opts {
		opt(gen)
	}

	tracer().Debugf("generated parser for start symbol %q: %d states, %d conflicts", start, len(col.States), len(conflicts))

	return gen, nil
}

// Grammar returns the augmented grammar the Generator was built from.
func (gen *Generator) Grammar() *grammar.Grammar { return gen.grammar }

// Table returns the ACTION/GOTO table the Generator parses with.
func (gen *Generator) Table() *table.Table { return gen.table }

// Conflicts returns every shift/reduce or reduce/reduce conflict
// encountered while building the table, in the order they were resolved.
// An empty slice means the grammar is unambiguous under canonical LR(1).
func (gen *Generator) Conflicts() []table.Conflict { return gen.conflicts }

// Driver returns the parse driver bound to this Generator's table, for
// callers that want to register their own trace listener directly rather
// than through WithTraceListener.
func (gen *Generator) Driver() *driver.Driver { return gen.driver }

// Parse runs tokens through the shift/reduce stack machine and returns the
// resulting parse tree and derivation, or a *lrerrors.ParseError /
// *lrerrors.InternalInconsistencyError describing why the stream was
// rejected.
func (gen *Generator) Parse(tokens []string) (*driver.Result, error) {
	return gen.driver.Parse(tokens)
}

// Report renders a human-readable construction summary: the grammar, its
// FIRST/FOLLOW sets, the canonical collection, the ACTION/GOTO table, and
// any conflicts encountered, in that order. It is meant for diagnostics
// and test fixtures, not for machine parsing.
func (gen *Generator) Report() string {
	var out string
	out += "=== grammar ===\n" + gen.grammar.String() + "\n\n"
	out += gen.grammar.DumpFirst() + "\n\n"
	out += gen.grammar.DumpFollow() + "\n\n"
	out += "=== canonical collection ===\n" + gen.collection.Dump() + "\n\n"
	out += "=== table ===\n" + gen.table.String() + "\n"
	if len(gen.conflicts) > 0 {
		out += "\n=== conflicts ===\n"
		for _, c := range gen.conflicts {
			out += c.String() + "\n"
		}
	}
	return out
}

package driver

import (
	"fmt"
	"strings"

	"github.com/dekarrin/canonlr/grammar"
)

// ParseTree is a node in a parse tree (spec §3): "(symbol, children,
// production?)". Terminal leaves carry no production; interior nodes carry
// the production used to reduce them, with children in left-to-right RHS
// order.
type ParseTree struct {
	Terminal   bool
	Symbol     string
	Production *grammar.Production
	Children   []*ParseTree
}

// Yield returns the left-to-right terminal leaves of the tree, which must
// equal the original token sequence for any tree the driver returns (spec
// §8, "Driver soundness").
func (pt *ParseTree) Yield() []string {
	if pt.Terminal {
		return []string{pt.Symbol}
	}
	var out []string
	for _, c := range pt.Children {
		out = append(out, c.Yield()...)
	}
	return out
}

// String renders a line-per-node indented tree, in the spirit of the
// teacher's ParseTree.leveledStr: two trees with identical structure
// produce identical String() output, suitable for line-by-line test
// comparisons.
func (pt *ParseTree) String() string {
	var sb strings.Builder
	pt.write(&sb, "", "")
	return sb.String()
}

func (pt *ParseTree) write(sb *strings.Builder, prefix, childPrefix string) {
	sb.WriteString(prefix)
	if pt.Terminal {
		fmt.Fprintf(sb, "(TERM %q)", pt.Symbol)
	} else {
		fmt.Fprintf(sb, "(%s)", pt.Symbol)
	}
	for i, c := range pt.Children {
		sb.WriteByte('\n')
		if i+1 < len(pt.Children) {
			c.write(sb, childPrefix+"  |-", childPrefix+"  | ")
		} else {
			c.write(sb, childPrefix+"  \\-", childPrefix+"    ")
		}
	}
}

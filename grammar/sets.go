package grammar

import (
	"fmt"
	"sort"
	"strings"
)

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func dumpSets(label string, sets map[string]map[string]bool, order []string) string {
	var sb strings.Builder
	for i, sym := range order {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%s(%s) = { %s }", label, sym, strings.Join(sortedKeys(sets[sym]), ", "))
	}
	return sb.String()
}

package grammar

// computeFirst runs the FIRST fixed point described in the design: FIRST of
// every terminal is itself, FIRST(ε) = {ε}, and for each production
// A -> X1 ... Xn we accumulate FIRST(X1) \ {ε}, then FIRST(X2) \ {ε} if X1 is
// nullable, and so on, adding ε to FIRST(A) only if every Xi is nullable (or
// the production is itself an epsilon production).
func (g *Grammar) computeFirst() {
	first := map[string]map[string]bool{}

	newSet := func() map[string]bool { return map[string]bool{} }

	for _, t := range g.terminals {
		first[t] = newSet()
		first[t][t] = true
	}
	first[EndOfInput] = newSet()
	first[EndOfInput][EndOfInput] = true
	first[Epsilon] = newSet()
	first[Epsilon][Epsilon] = true

	for _, nt := range g.NonTerminals() {
		if _, ok := first[nt]; !ok {
			first[nt] = newSet()
		}
	}

	changed := true
	for changed {
		changed = false
		for _, p := range g.productions {
			added := addFirstOfProduction(first, p)
			changed = changed || added
		}
	}

	g.first = first
}

// addFirstOfProduction adds FIRST(rhs) \ {ε} (and ε itself when rhs is fully
// nullable) to FIRST(lhs), returning whether anything changed.
func addFirstOfProduction(first map[string]map[string]bool, p Production) bool {
	changed := false
	lhsSet := first[p.LHS]

	if p.IsEpsilon() {
		if !lhsSet[Epsilon] {
			lhsSet[Epsilon] = true
			changed = true
		}
		return changed
	}

	allNullableSoFar := true
	for _, sym := range p.RHS {
		symFirst := first[sym]
		for t := range symFirst {
			if t == Epsilon {
				continue
			}
			if !lhsSet[t] {
				lhsSet[t] = true
				changed = true
			}
		}
		if !symFirst[Epsilon] {
			allNullableSoFar = false
			break
		}
	}
	if allNullableSoFar {
		if !lhsSet[Epsilon] {
			lhsSet[Epsilon] = true
			changed = true
		}
	}
	return changed
}

// FirstOfSymbol returns FIRST(sym) as a sorted slice, for a single terminal,
// nonterminal, or the reserved markers $ and ε.
func (g *Grammar) FirstOfSymbol(sym string) []string {
	return sortedKeys(g.first[sym])
}

// FirstOfSequence computes FIRST(X1 ... Xk) following the same accumulation
// rule used for productions: ε is included in the result iff every Xi is
// ε-derivable (including when the sequence itself is empty).
func (g *Grammar) FirstOfSequence(seq []string) map[string]bool {
	out := map[string]bool{}

	allNullableSoFar := true
	for _, sym := range seq {
		symFirst := g.first[sym]
		for t := range symFirst {
			if t == Epsilon {
				continue
			}
			out[t] = true
		}
		if !symFirst[Epsilon] {
			allNullableSoFar = false
			break
		}
	}
	if allNullableSoFar {
		out[Epsilon] = true
	}
	return out
}

// DumpFirst renders one "FIRST(sym) = { ... }" line per terminal and
// nonterminal, for the "Sets: FIRST and FOLLOW dumps" diagnostic output.
func (g *Grammar) DumpFirst() string {
	return dumpSets("FIRST", g.first, append(append([]string{}, g.terminals...), g.NonTerminals()...))
}

package grammar

// computeFollow runs the FOLLOW fixed point: $ is in FOLLOW(S) for the
// original (non-augmented) start symbol; for every production A -> α B β,
// FIRST(β) \ {ε} is added to FOLLOW(B), and if β is empty or nullable,
// FOLLOW(A) is added to FOLLOW(B) as well. FOLLOW is computed for diagnostic
// parity with theory; the LR(1) table builder never consults it (lookaheads
// there come from closure).
func (g *Grammar) computeFollow() {
	follow := map[string]map[string]bool{}
	for _, nt := range g.NonTerminals() {
		follow[nt] = map[string]bool{}
	}
	follow[g.start][EndOfInput] = true

	changed := true
	for changed {
		changed = false
		for _, p := range g.productions {
			for i, sym := range p.RHS {
				if !g.IsNonTerminal(sym) {
					continue
				}
				beta := p.RHS[i+1:]
				betaFirst := g.FirstOfSequence(beta)

				for t := range betaFirst {
					if t == Epsilon {
						continue
					}
					if !follow[sym][t] {
						follow[sym][t] = true
						changed = true
					}
				}

				if len(beta) == 0 || betaFirst[Epsilon] {
					for t := range follow[p.LHS] {
						if !follow[sym][t] {
							follow[sym][t] = true
							changed = true
						}
					}
				}
			}
		}
	}

	g.follow = follow
}

// FollowOf returns FOLLOW(nt) as a sorted slice of terminals (including $
// where applicable).
func (g *Grammar) FollowOf(nt string) []string {
	return sortedKeys(g.follow[nt])
}

// DumpFollow renders one "FOLLOW(nt) = { ... }" line per nonterminal.
func (g *Grammar) DumpFollow() string {
	return dumpSets("FOLLOW", g.follow, g.NonTerminals())
}

package synth

import "sort"

// activationOrder returns the element set sorted by the current phase's
// activation ranks. The sort is stable over declaration order, which both
// breaks rank ties and keeps unranked elements (sorted after ranked ones)
// in a deterministic sequence. The result is a fresh permutation; the
// table's element slice is never reordered.
func activationOrder(table *ParameterTable, phaseName string) []string {
	order := make([]string, len(table.Elements))
	copy(order, table.Elements)

	ranks := table.Ranks[phaseName]
	if len(ranks) == 0 {
		return order
	}

	sort.SliceStable(order, func(i, j int) bool {
		ri, iok := ranks[order[i]]
		rj, jok := ranks[order[j]]
		if iok && jok {
			return ri < rj
		}
		// Ranked elements precede unranked ones.
		return iok && !jok
	})
	return order
}

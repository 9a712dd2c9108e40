package topology

import (
	"sort"

	"golang-netreconcile/internal/types"
)

// SortNetworks returns the definitions ordered by layering weight: networks
// with neither VLAN nor bridge first, then those with one, then both. Ties
// keep their input order.
func SortNetworks(networks []types.NetworkDefinition) []types.NetworkDefinition {
	sorted := make([]types.NetworkDefinition, len(networks))
	copy(sorted, networks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return layerWeight(sorted[i]) < layerWeight(sorted[j])
	})
	return sorted
}

func layerWeight(n types.NetworkDefinition) int {
	w := 0
	if n.UseVLAN {
		w++
	}
	if n.AddBridge {
		w++
	}
	return w
}

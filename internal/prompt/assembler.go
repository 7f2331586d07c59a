package prompt

import (
	"sort"
	"strings"
)

// LayerSeparator joins adjacent layers in the assembled payload.
const LayerSeparator = "\n\n---\n\n"

// SortByPriority returns a copy of the layer set ordered by priority
// descending. The sort is stable: layers with equal priority keep their
// input order.
func SortByPriority(layers []PopulatedLayer) []PopulatedLayer {
	sorted := make([]PopulatedLayer, len(layers))
	copy(sorted, layers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority > sorted[j].Priority
	})
	return sorted
}

// JoinLayers concatenates layer contents in the given order with the
// layer separator. An empty set yields an empty string; a single layer
// yields exactly its text.
func JoinLayers(layers []PopulatedLayer) string {
	parts := make([]string, len(layers))
	for i, l := range layers {
		parts[i] = l.Content
	}
	return strings.Join(parts, LayerSeparator)
}

// Assemble orders the layers by descending priority and joins them into
// one payload string. Pure function, no side effects.
func Assemble(layers []PopulatedLayer) string {
	return JoinLayers(SortByPriority(layers))
}

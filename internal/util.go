package internal

import "slices"

// ReconstructPath follows predecessor links back from end until it reaches
// a node with no predecessor, and returns the chain in forward order.
// The returned slice is freshly allocated.
func ReconstructPath[NodeType comparable](cameFrom map[NodeType]NodeType, end NodeType) []NodeType {
	path := []NodeType{end}
	for current := end; ; {
		previous, ok := cameFrom[current]
		if !ok {
			break
		}
		path = append(path, previous)
		current = previous
	}
	slices.Reverse(path)
	return path
}

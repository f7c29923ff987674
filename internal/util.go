package internal

// ReconstructPath rebuilds the path from the cameFrom map.
// The result is ordered goal first and start last. The walk stops early if
// a link is missing.
func ReconstructPath[Key comparable, NodeType any](
	cameFrom map[Key]NodeType,
	keyOf func(NodeType) Key,
	goal NodeType,
	start Key,
) []NodeType {
	path := []NodeType{goal}
	current := goal
	// a chain can never be longer than the map
	for steps := 0; keyOf(current) != start && steps <= len(cameFrom); steps++ {
		previousNode, exists := cameFrom[keyOf(current)]
		if !exists {
			break
		}
		path = append(path, previousNode)
		current = previousNode
	}
	return path
}

// Reversed returns a copy of path in the opposite order.
func Reversed[NodeType any](path []NodeType) []NodeType {
	if path == nil {
		return nil
	}
	out := make([]NodeType, len(path))
	for i, node := range path {
		out[len(path)-1-i] = node
	}
	return out
}

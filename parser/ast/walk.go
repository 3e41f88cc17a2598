package ast

// Inspect traverses nodes in document order, calling f for each node. If f
// returns false the children of that node are skipped.
func Inspect(nodes []Node, f func(Node) bool) {
	for _, n := range nodes {
		if f(n) {
			Inspect(Children(n), f)
		}
	}
}

// Count returns the number of nodes in the tree, children included.
func Count(nodes []Node) int {
	c := 0
	Inspect(nodes, func(Node) bool {
		c++
		return true
	})
	return c
}

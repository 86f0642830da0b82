package scene

// Node is an entry of the scene outline. Nodes with children are groups.
type Node struct {
	Name     string
	Children []Node
}

func (n Node) IsGroup() bool { return len(n.Children) > 0 }

// Walk visits n and its descendants depth-first with their depth.
func (n Node) Walk(fn func(n Node, depth int)) {
	n.walk(fn, 0)
}

func (n Node) walk(fn func(Node, int), depth int) {
	fn(n, depth)
	for _, c := range n.Children {
		c.walk(fn, depth+1)
	}
}

// DefaultHierarchy is the outline shown by the demo. It is decorative; only
// expand/collapse state lives in the GUI.
func DefaultHierarchy() Node {
	return Node{Name: "Main scene", Children: []Node{
		{Name: "Cube"},
		{Name: "Game Object 1", Children: []Node{
			{Name: "Sphere"},
		}},
		{Name: "Game Object 2", Children: []Node{
			{Name: "Point Light"},
			{Name: "Cylinder"},
		}},
	}}
}

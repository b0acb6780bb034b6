package viewtree

// ActionBarKind is the kind reported by the platform's action bar container
const ActionBarKind = "com.android.internal.widget.ActionBarContainer"

// Node is one element of a view tree
type Node interface {
	// Kind identifies the element type, e.g. a class or Go type name
	Kind() string

	// Children returns the direct children; leaves return nil
	Children() []Node
}

// Remover is implemented by nodes whose children can be removed
type Remover interface {
	Node
	Remove(child Node)
}

// FindFirst returns the first descendant of root, in depth-first pre-order,
// matching pred. root itself is not tested.
func FindFirst(root Node, pred func(Node) bool) Node {
	if root == nil {
		return nil
	}
	for _, child := range root.Children() {
		if pred(child) {
			return child
		}
		if found := FindFirst(child, pred); found != nil {
			return found
		}
	}
	return nil
}

// FindFirstByKind returns the first descendant of root with the given kind
func FindFirstByKind(root Node, kind string) Node {
	return FindFirst(root, func(n Node) bool { return n.Kind() == kind })
}

// FindActionBar locates the action bar container under a window's root view
func FindActionBar(root Node) Node {
	return FindFirstByKind(root, ActionBarKind)
}

// FindAll returns every descendant of root matching pred, in depth-first pre-order
func FindAll(root Node, pred func(Node) bool) []Node {
	var found []Node
	walk(root, func(n Node) {
		if pred(n) {
			found = append(found, n)
		}
	})
	return found
}

func walk(root Node, visit func(Node)) {
	if root == nil {
		return
	}
	for _, child := range root.Children() {
		visit(child)
		walk(child, visit)
	}
}

// Prune removes every descendant matching pred from its parent and returns the
// number removed. Matches under a parent that is not a Remover are left in place.
// Removed subtrees are not searched further.
func Prune(root Node, pred func(Node) bool) int {
	if root == nil {
		return 0
	}

	removed := 0
	children := root.Children()
	parent, canRemove := root.(Remover)
	for _, child := range children {
		if pred(child) && canRemove {
			parent.Remove(child)
			removed++
			continue
		}
		removed += Prune(child, pred)
	}
	return removed
}

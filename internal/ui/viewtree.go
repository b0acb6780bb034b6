package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"github.com/ytget/pulltorefresh/internal/viewtree"
)

// objectNode adapts a fyne.CanvasObject to viewtree.Node
type objectNode struct {
	obj fyne.CanvasObject
}

// containerNode is an objectNode whose children can be removed
type containerNode struct {
	objectNode
	c *fyne.Container
}

// NewViewNode wraps obj for viewtree lookups
func NewViewNode(obj fyne.CanvasObject) viewtree.Node {
	if c, ok := obj.(*fyne.Container); ok {
		return containerNode{objectNode: objectNode{obj: obj}, c: c}
	}
	return objectNode{obj: obj}
}

// ViewObject returns the canvas object behind a node created by NewViewNode
func ViewObject(n viewtree.Node) fyne.CanvasObject {
	switch v := n.(type) {
	case containerNode:
		return v.obj
	case objectNode:
		return v.obj
	}
	return nil
}

func (n objectNode) Kind() string {
	return fmt.Sprintf("%T", n.obj)
}

func (n objectNode) Children() []viewtree.Node {
	var objects []fyne.CanvasObject
	switch v := n.obj.(type) {
	case *fyne.Container:
		objects = v.Objects
	case *RefreshableScroll:
		objects = []fyne.CanvasObject{v.Content}
	case *container.Scroll:
		objects = []fyne.CanvasObject{v.Content}
	}

	children := make([]viewtree.Node, 0, len(objects))
	for _, obj := range objects {
		if obj != nil {
			children = append(children, NewViewNode(obj))
		}
	}
	return children
}

func (n containerNode) Remove(child viewtree.Node) {
	if obj := ViewObject(child); obj != nil {
		n.c.Remove(obj)
	}
}

func isIndicator(n viewtree.Node) bool {
	_, ok := ViewObject(n).(*RefreshIndicator)
	return ok
}

// FindIndicator returns the first refresh indicator under root, or nil
func FindIndicator(root fyne.CanvasObject) *RefreshIndicator {
	node := viewtree.FindFirst(NewViewNode(root), isIndicator)
	if node == nil {
		return nil
	}
	return ViewObject(node).(*RefreshIndicator)
}

// FindToolbar returns the first toolbar under root, the closest thing a Fyne
// window has to an action bar
func FindToolbar(root fyne.CanvasObject) fyne.CanvasObject {
	node := viewtree.FindFirstByKind(NewViewNode(root), "*widget.Toolbar")
	if node == nil {
		return nil
	}
	return ViewObject(node)
}

// ResetIndicators removes every refresh indicator found under root and
// returns how many were removed
func ResetIndicators(root fyne.CanvasObject) int {
	return viewtree.Prune(NewViewNode(root), isIndicator)
}

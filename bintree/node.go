package bintree

// Node is a binary-tree node. Parent is maintained by SetLeft and SetRight.
type Node[T any] struct {
	Value               T
	Left, Right, Parent *Node[T]
}

// NewNode returns a detached node holding v.
func NewNode[T any](v T) *Node[T] {
	return &Node[T]{Value: v}
}

// SetLeft attaches c as the left child of n and returns c.
func (n *Node[T]) SetLeft(c *Node[T]) *Node[T] {
	n.Left = c
	if c != nil {
		c.Parent = n
	}

	return c
}

// SetRight attaches c as the right child of n and returns c.
func (n *Node[T]) SetRight(c *Node[T]) *Node[T] {
	n.Right = c
	if c != nil {
		c.Parent = n
	}

	return c
}

// InOrder visits the tree rooted at n in order using an explicit stack.
func InOrder[T any](n *Node[T], visit func(*Node[T])) {
	var stack []*Node[T]
	for cur := n; cur != nil || len(stack) > 0; {
		for cur != nil {
			stack = append(stack, cur)
			cur = cur.Left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(cur)
		cur = cur.Right
	}
}

// MorrisInOrder visits the tree rooted at root in order without a stack.
// Right pointers of in-order predecessors are threaded temporarily; the tree is
// unchanged when MorrisInOrder returns. visit must not modify the tree.
func MorrisInOrder[T any](root *Node[T], visit func(*Node[T])) {
	cur := root
	for cur != nil {
		if cur.Left == nil {
			visit(cur)
			cur = cur.Right
			continue
		}
		pred := cur.Left
		for pred.Right != nil && pred.Right != cur {
			pred = pred.Right
		}
		if pred.Right == nil {
			pred.Right = cur
			cur = cur.Left
			continue
		}
		pred.Right = nil
		visit(cur)
		cur = cur.Right
	}
}

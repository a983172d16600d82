package linkedlist

// Node is a singly linked list node.
type Node[T any] struct {
	Value T
	Next  *Node[T]
}

// FromSlice links vals in order. When loopAt is in [0, len(vals)) the last node
// points back to the node at that index.
func FromSlice[T any](vals []T, loopAt int) *Node[T] {
	nodes := make([]*Node[T], len(vals))
	for i := len(vals) - 1; i >= 0; i-- {
		nodes[i] = &Node[T]{Value: vals[i]}
		if i+1 < len(vals) {
			nodes[i].Next = nodes[i+1]
		}
	}
	if len(nodes) == 0 {
		return nil
	}
	if loopAt >= 0 && loopAt < len(nodes) {
		nodes[len(nodes)-1].Next = nodes[loopAt]
	}

	return nodes[0]
}

// meet runs the tortoise and hare and returns a node inside the cycle, or nil.
func meet[T any](head *Node[T]) *Node[T] {
	slow, fast := head, head
	for fast != nil && fast.Next != nil {
		slow, fast = slow.Next, fast.Next.Next
		if slow == fast {
			return slow
		}
	}

	return nil
}

// DetectCycle returns the first node of the cycle reachable from head.
//
// Complexity: O(n) time, O(1) space.
func DetectCycle[T any](head *Node[T]) (*Node[T], bool) {
	m := meet(head)
	if m == nil {
		return nil, false
	}
	// The distance from head to the cycle entry equals the distance from the
	// meeting point to the entry, modulo the cycle length.
	for a := head; ; a, m = a.Next, m.Next {
		if a == m {
			return a, true
		}
	}
}

// CycleLength returns the number of nodes on the cycle, or 0 for an acyclic list.
func CycleLength[T any](head *Node[T]) int {
	m := meet(head)
	if m == nil {
		return 0
	}
	n := 1
	for cur := m.Next; cur != m; cur = cur.Next {
		n++
	}

	return n
}

// Len returns the number of distinct nodes reachable from head.
func Len[T any](head *Node[T]) int {
	entry, ok := DetectCycle(head)
	n := 0
	for cur := head; cur != nil && cur != entry; cur = cur.Next {
		n++
	}
	if ok {
		n += CycleLength(head)
	}

	return n
}

package bintree

// LCA returns the lowest common ancestor of p and q in the tree rooted at root.
//
// It follows the classic recursive contract: a node equal to p or q is returned
// without searching below it, so when only one of p and q is in the tree that
// node is returned, and nil when neither is.
//
// Complexity: O(n) time, O(h) stack.
func LCA[T any](root, p, q *Node[T]) *Node[T] {
	if root == nil {
		return nil
	}
	type frame struct {
		n       *Node[T]
		visited bool
	}
	found := make(map[*Node[T]]*Node[T])
	stack := []frame{{n: root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := top.n
		if n == p || n == q {
			found[n] = n
			continue
		}
		if !top.visited {
			stack = append(stack, frame{n: n, visited: true})
			if n.Right != nil {
				stack = append(stack, frame{n: n.Right})
			}
			if n.Left != nil {
				stack = append(stack, frame{n: n.Left})
			}
			continue
		}
		l, r := found[n.Left], found[n.Right]
		switch {
		case l != nil && r != nil:
			found[n] = n
		case l != nil:
			found[n] = l
		case r != nil:
			found[n] = r
		}
	}

	return found[root]
}

// LCAWithParents returns the lowest common ancestor of p and q using Parent
// links, or nil when they are in different trees.
//
// Complexity: O(h).
func LCAWithParents[T any](p, q *Node[T]) *Node[T] {
	if p == nil || q == nil {
		return nil
	}
	depth := func(n *Node[T]) int {
		d := 0
		for ; n.Parent != nil; n = n.Parent {
			d++
		}
		return d
	}
	dp, dq := depth(p), depth(q)
	for ; dp > dq; dp-- {
		p = p.Parent
	}
	for ; dq > dp; dq-- {
		q = q.Parent
	}
	for p != q {
		p, q = p.Parent, q.Parent
	}

	return p
}

package rdfxml

import "github.com/sirupsen/logrus"

// avlNode is one node of the height-balanced tree: a payload, two children,
// and a balance factor in {-1, 0, +1} meaning height(right) - height(left).
type avlNode struct {
	node    *Node
	left    *avlNode
	right   *avlNode
	balance int8
}

// avlTree is the ordered-tree index (component A): a self-balancing
// ordered collection keyed by compareTerms, supporting lookup, insert,
// delete and in-order visit. Grounded on raptor_avltree.c's sprout/balance
// routines, translated from its explicit rebalancing_p-flag threading into
// Go's natural recursive-return style (each recursive call reports whether
// the subtree grew or shrank instead of mutating an out-parameter), the
// same shape as the beelog AVL tree's recurInsert.
type avlTree struct {
	root *avlNode
	size int
}

// search descends by compareTerms and returns the stored node when found.
func (t *avlTree) search(probe *Term) *Node {
	n := t.root
	for n != nil {
		c := compareTerms(probe, n.node.Term)
		switch {
		case c == 0:
			return n.node
		case c < 0:
			n = n.left
		default:
			n = n.right
		}
	}
	return nil
}

// insert adds node to the tree. If a node comparing equal already exists,
// it is replaced in place (the evicted node is returned) and no rebalance
// occurs, matching the "replace on equal key" semantics of sprout. insert
// never fails in this Go translation (allocation failure has no analogue),
// so it has no error return; see store.go for why the term store never
// actually exercises the replace path (it searches before it inserts).
func (t *avlTree) insert(node *Node) (evicted *Node) {
	var grew bool
	t.root, grew, evicted = avlInsert(t.root, node)
	if grew {
		// root growing never requires external action; balance factor
		// bookkeeping is entirely internal to avlInsert's return value.
	}
	if evicted == nil {
		t.size++
	}
	return evicted
}

func avlInsert(n *avlNode, node *Node) (root *avlNode, grew bool, evicted *Node) {
	if n == nil {
		return &avlNode{node: node}, true, nil
	}
	c := compareTerms(node.Term, n.node.Term)
	if c == 0 {
		evicted = n.node
		n.node = node
		return n, false, evicted
	}
	if c < 0 {
		newLeft, childGrew, ev := avlInsert(n.left, node)
		n.left = newLeft
		evicted = ev
		if !childGrew {
			return n, false, evicted
		}
		switch n.balance {
		case 1:
			n.balance = 0
			return n, false, evicted
		case 0:
			n.balance = -1
			return n, true, evicted
		default: // -1: left-heavy became over-heavy, rebalance
			return rebalanceLeftHeavy(n), false, evicted
		}
	}
	newRight, childGrew, ev := avlInsert(n.right, node)
	n.right = newRight
	evicted = ev
	if !childGrew {
		return n, false, evicted
	}
	switch n.balance {
	case -1:
		n.balance = 0
		return n, false, evicted
	case 0:
		n.balance = 1
		return n, true, evicted
	default: // 1: right-heavy became over-heavy, rebalance
		return rebalanceRightHeavy(n), false, evicted
	}
}

// rebalanceLeftHeavy handles the LL (single right rotation) and LR (double:
// left-rotate the left child, then right-rotate self) cases, per the
// balance-factor update table.
func rebalanceLeftHeavy(n *avlNode) *avlNode {
	left := n.left
	if left.balance <= 0 {
		// LL case.
		n.left = left.right
		left.right = n
		if left.balance == 0 {
			n.balance = -1
			left.balance = 1
		} else {
			n.balance = 0
			left.balance = 0
		}
		logrus.WithField("case", "LL").Debug("avltree: rotation")
		return left
	}
	// LR case: left.balance == 1.
	lr := left.right
	left.right = lr.left
	lr.left = left
	n.left = lr.right
	lr.right = n
	switch lr.balance {
	case 1:
		left.balance = -1
		n.balance = 0
	case -1:
		left.balance = 0
		n.balance = 1
	default:
		left.balance = 0
		n.balance = 0
	}
	lr.balance = 0
	logrus.WithField("case", "LR").Debug("avltree: rotation")
	return lr
}

// rebalanceRightHeavy is the mirror of rebalanceLeftHeavy: RR (single left
// rotation) and RL (double) cases.
func rebalanceRightHeavy(n *avlNode) *avlNode {
	right := n.right
	if right.balance >= 0 {
		// RR case.
		n.right = right.left
		right.left = n
		if right.balance == 0 {
			n.balance = 1
			right.balance = -1
		} else {
			n.balance = 0
			right.balance = 0
		}
		logrus.WithField("case", "RR").Debug("avltree: rotation")
		return right
	}
	// RL case: right.balance == -1.
	rl := right.left
	right.left = rl.right
	rl.right = right
	n.right = rl.left
	rl.left = n
	switch rl.balance {
	case -1:
		right.balance = 1
		n.balance = 0
	case 1:
		right.balance = 0
		n.balance = -1
	default:
		right.balance = 0
		n.balance = 0
	}
	rl.balance = 0
	logrus.WithField("case", "RL").Debug("avltree: rotation")
	return rl
}

// delete removes the node comparing equal to probe, if present, rebalancing
// on the way back up. Grounded on raptor_avltree.c's delete_internal: on
// match, if either child is absent the other child is spliced directly
// in; otherwise the rightmost descendant of the left child is found and
// swapped into the deleted node's place.
func (t *avlTree) delete(probe *Term) (removed *Node) {
	var shrank bool
	t.root, shrank, removed = avlDelete(t.root, probe)
	_ = shrank
	if removed != nil {
		t.size--
	}
	return removed
}

func avlDelete(n *avlNode, probe *Term) (root *avlNode, shrank bool, removed *Node) {
	if n == nil {
		return nil, false, nil
	}
	c := compareTerms(probe, n.node.Term)
	switch {
	case c < 0:
		newLeft, childShrank, rem := avlDelete(n.left, probe)
		n.left = newLeft
		removed = rem
		if !childShrank {
			return n, false, removed
		}
		newN, s := balanceAfterLeftShrink(n)
		return newN, s, removed
	case c > 0:
		newRight, childShrank, rem := avlDelete(n.right, probe)
		n.right = newRight
		removed = rem
		if !childShrank {
			return n, false, removed
		}
		newN, s := balanceAfterRightShrink(n)
		return newN, s, removed
	default:
		removed = n.node
		if n.left == nil {
			return n.right, true, removed
		}
		if n.right == nil {
			return n.left, true, removed
		}
		// Splice in the rightmost descendant of the left child.
		var predecessor *Node
		newLeft, childShrank := removeRightmost(n.left, &predecessor)
		n.left = newLeft
		n.node = predecessor
		if !childShrank {
			return n, false, removed
		}
		newN, s := balanceAfterLeftShrink(n)
		return newN, s, removed
	}
}

// removeRightmost strips the rightmost node out of the subtree rooted at
// n, reporting it through out, and returns the resulting subtree plus
// whether it shrank.
func removeRightmost(n *avlNode, out **Node) (root *avlNode, shrank bool) {
	if n.right == nil {
		*out = n.node
		return n.left, true
	}
	newRight, childShrank := removeRightmost(n.right, out)
	n.right = newRight
	if !childShrank {
		return n, false
	}
	return balanceAfterRightShrink(n)
}

// balanceAfterLeftShrink rebalances n after its left subtree's height
// decreased by one, mirroring raptor_avltree_balance_left.
func balanceAfterLeftShrink(n *avlNode) (root *avlNode, shrank bool) {
	switch n.balance {
	case -1:
		n.balance = 0
		return n, true
	case 0:
		n.balance = 1
		return n, false
	default:
		right := n.right
		if right.balance >= 0 {
			n.right = right.left
			right.left = n
			if right.balance == 0 {
				n.balance = 1
				right.balance = -1
				logrus.WithField("case", "RR").Debug("avltree: delete rotation")
				return right, false
			}
			n.balance = 0
			right.balance = 0
			logrus.WithField("case", "RR").Debug("avltree: delete rotation")
			return right, true
		}
		rl := right.left
		right.left = rl.right
		rl.right = right
		n.right = rl.left
		rl.left = n
		switch rl.balance {
		case -1:
			right.balance = 1
			n.balance = 0
		case 1:
			right.balance = 0
			n.balance = -1
		default:
			right.balance = 0
			n.balance = 0
		}
		rl.balance = 0
		logrus.WithField("case", "RL").Debug("avltree: delete rotation")
		return rl, true
	}
}

// balanceAfterRightShrink mirrors balanceAfterLeftShrink.
func balanceAfterRightShrink(n *avlNode) (root *avlNode, shrank bool) {
	switch n.balance {
	case 1:
		n.balance = 0
		return n, true
	case 0:
		n.balance = -1
		return n, false
	default:
		left := n.left
		if left.balance <= 0 {
			n.left = left.right
			left.right = n
			if left.balance == 0 {
				n.balance = -1
				left.balance = 1
				logrus.WithField("case", "LL").Debug("avltree: delete rotation")
				return left, false
			}
			n.balance = 0
			left.balance = 0
			logrus.WithField("case", "LL").Debug("avltree: delete rotation")
			return left, true
		}
		lr := left.right
		left.right = lr.left
		lr.left = left
		n.left = lr.right
		lr.right = n
		switch lr.balance {
		case 1:
			left.balance = -1
			n.balance = 0
		case -1:
			left.balance = 0
			n.balance = 1
		default:
			left.balance = 0
			n.balance = 0
		}
		lr.balance = 0
		logrus.WithField("case", "LR").Debug("avltree: delete rotation")
		return lr, true
	}
}

// visitFn is called once per node in ascending order with its depth;
// returning false stops the traversal early.
type visitFn func(depth int, node *Node) bool

// visit performs an in-order traversal, stopping on the first false
// return from fn. Grounded on raptor_avltree_visit_internal.
func (t *avlTree) visit(fn visitFn) {
	avlVisit(t.root, 0, fn)
}

func avlVisit(n *avlNode, depth int, fn visitFn) bool {
	if n == nil {
		return true
	}
	if !avlVisit(n.left, depth+1, fn) {
		return false
	}
	if !fn(depth, n.node) {
		return false
	}
	return avlVisit(n.right, depth+1, fn)
}

// height computes the subtree height for tests asserting the balance
// property; production code never calls this (the tree maintains balance
// factors incrementally, not heights).
func (n *avlNode) height() int {
	if n == nil {
		return 0
	}
	lh, rh := n.left.height(), n.right.height()
	if lh > rh {
		return lh + 1
	}
	return rh + 1
}

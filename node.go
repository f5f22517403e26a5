package rdfxml

// Node is the canonical, store-owned representation of one RDF term. It is
// the payload the ordered tree carries, and the only thing subject records
// and property lists ever hold a reference to — callers never compare or
// store a bare *Term once it has been interned.
type Node struct {
	Term *Term

	// RefCount counts live structural references: one per subject record
	// pointing at this node as its subject term, one per property-list or
	// list-item slot, one per type_term use. A node with RefCount == 0 is
	// unreachable from any subject and is only kept alive by the tree.
	RefCount int

	// CountAsSubject is the number of Subject records whose term is this
	// node.
	CountAsSubject int

	// CountAsObject is the number of property-list object positions plus
	// filled list-item slots plus type_term uses pointing at this node.
	CountAsObject int
}

func newNode(t *Term) *Node { return &Node{Term: t} }

// isSingleUseBlank reports whether n is a blank node used exactly once as a
// subject and exactly once as an object — the condition under which the
// emission planner elides its top-level appearance and inlines it instead.
func (n *Node) isSingleUseBlank() bool {
	return n.Term.Kind == KindBlank && n.CountAsSubject == 1 && n.CountAsObject == 1
}

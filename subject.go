package rdfxml

// Subject aggregates one subject term with its type shortcut, its ordered
// property list, and its sparse rdf:_n list-item slots. Grounded on
// raptor_new_abbrev_subject / raptor_abbrev_subject_add_property /
// raptor_abbrev_subject_add_list_element in raptor_abbrev.c.
type Subject struct {
	Term *Node

	// TypeTerm records the first rdf:type object observed for this
	// subject, used for the type-shortcut at emission time. Nil when no
	// shortcut applies.
	TypeTerm *Node

	// Properties is an ordered sequence of alternating (predicate, object)
	// node references; len is always even.
	Properties []*Node

	// ListItems is a sparse, 1-indexed array of rdf:_n list items; index 0
	// is unused (ordinals start at 1). A nil entry means the slot is
	// empty.
	ListItems []*Node

	// elided marks a blank subject whose single use-site has already
	// inlined it; the body stage skips these without needing a parallel
	// "deleted" sequence the way the source nulls out a sequence slot.
	elided bool
}

// newSubject constructs a Subject for a term already validated as a legal
// subject kind, bumping its RefCount and CountAsSubject exactly once.
func newSubject(term *Node) *Subject {
	term.RefCount++
	term.CountAsSubject++
	return &Subject{Term: term}
}

// addProperty appends a (predicate, object) pair, bumping both nodes'
// RefCount. CountAsObject is not touched here: intake.go bumps it exactly
// once per statement, right after interning the object, regardless of
// whether the object ends up in properties or list_items.
func (s *Subject) addProperty(pred, obj *Node) {
	s.Properties = append(s.Properties, pred, obj)
	pred.RefCount++
	obj.RefCount++
}

// setListItem places obj into list_items[n] if empty, returning false if
// the slot was already occupied (caller must fall back to addProperty in
// that case, re-interning the predicate as an ordinal term). The source
// increments count_as_subject rather than count_as_object in this path
// (raptor_abbrev_subject_add_list_element); this is treated as a latent
// quirk of the original and corrected here per invariant 3's definition —
// see SPEC_FULL.md's decided open questions.
func (s *Subject) setListItem(n int, obj *Node) bool {
	for len(s.ListItems) <= n {
		s.ListItems = append(s.ListItems, nil)
	}
	if s.ListItems[n] != nil {
		return false
	}
	s.ListItems[n] = obj
	obj.RefCount++
	return true
}

// setTypeTerm records the first rdf:type shortcut for this subject.
// CountAsObject was already bumped by intake.go's generic Iri/Blank
// increment before the type-shortcut branch runs.
func (s *Subject) setTypeTerm(obj *Node) {
	s.TypeTerm = obj
	obj.RefCount++
}

// hasPropertyWithPredicate reports whether any existing (predicate, object)
// pair already uses pred, compared by pointer identity since predicates are
// always interned through the same store. Used by the XMP dedup rule
// before a property is appended (see intake.go).
func (s *Subject) hasPropertyWithPredicate(pred *Node) bool {
	for i := 0; i < len(s.Properties); i += 2 {
		if s.Properties[i] == pred {
			return true
		}
	}
	return false
}

package rdfxml

import (
	"strconv"

	"github.com/pkg/errors"
)

// termStore is the façade over the ordered tree (component D): it exposes
// intern and find-or-create-subject with the ref-count and occurrence
// bookkeeping the rest of the core depends on. Grounded on
// raptor_abbrev_node_lookup / raptor_abbrev_subject_lookup in
// raptor_abbrev.c.
type termStore struct {
	tree avlTree

	// namedSubjects and blankSubjects are the two top-level sequences
	// invariant 6 requires: IRI/ordinal subjects and blank subjects, each
	// in insertion order.
	namedSubjects []*Subject
	blankSubjects []*Subject

	// subjectIndex maps a subject's matching key to its Subject record.
	// The source performs this lookup with a linear scan over the
	// sequence above and calls it out as a performance wart a faithful
	// reimplementation may replace with a hash index without changing
	// observable behavior (see DESIGN.md's store.go entry); this is that
	// hash index.
	subjectIndex map[string]*Subject
}

func newTermStore() *termStore {
	return &termStore{subjectIndex: make(map[string]*Subject)}
}

// intern builds t into the canonical stored term: if an equal term already
// exists in the tree, the new one is discarded and the stored one
// returned; otherwise t is inserted and returned. The store never
// increments RefCount here — callers do that when they take ownership.
//
// compareTerms collapses KindPredicate into KindIri for ordering purposes
// (effectiveKind), so the same IRI interned once as a predicate and once
// as a resource/subject must resolve to one canonical node either way.
// Matching alone isn't enough: the first insert still has to store
// something, and if that something kept Kind == KindPredicate, every
// later consumer that switches on Term.Kind (emitObject, emitSubject)
// would hit an unreachable default for an IRI that happens to have been
// seen as a predicate first. Kind is normalized to KindIri before a new
// node is ever created, so no interned node carries KindPredicate.
func (s *termStore) intern(t *Term) *Node {
	if existing := s.tree.search(t); existing != nil {
		return existing
	}
	if t.Kind == KindPredicate {
		normalized := *t
		normalized.Kind = KindIri
		t = &normalized
	}
	n := newNode(t)
	s.tree.insert(n)
	return n
}

// subjectKey is the matching key for a subject lookup, keyed on the
// matching subject-term's own content (kind and value) rather than its
// pointer identity, matching raptor_abbrev_node_matches's subject-lookup
// semantics.
func subjectKey(kind Kind, value string) string {
	return kind.String() + "\x00" + value
}

// findOrCreateSubject resolves or creates the Subject record for the given
// subject-position kind and value, validating the kind is legal for a
// subject position (Iri, Blank or Ordinal; literal subjects are rejected).
func (s *termStore) findOrCreateSubject(kind Kind, value string) (*Subject, error) {
	switch kind {
	case KindIri, KindBlank, KindOrdinal:
	default:
		return nil, errors.Errorf("subject must be a resource, blank or ordinal, got %s", kind)
	}

	key := subjectKey(kind, value)
	if subj, ok := s.subjectIndex[key]; ok {
		return subj, nil
	}

	var term *Term
	switch kind {
	case KindIri:
		term = NewIRI(value)
	case KindBlank:
		term = NewBlank(value)
	case KindOrdinal:
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, errors.Wrap(err, "ordinal subject value must be numeric")
		}
		term = NewOrdinal(n)
	}

	node := s.intern(term)
	subj := newSubject(node)
	s.subjectIndex[key] = subj
	if kind == KindBlank {
		s.blankSubjects = append(s.blankSubjects, subj)
	} else {
		s.namedSubjects = append(s.namedSubjects, subj)
	}
	return subj, nil
}

// findSubjectByNode looks up the Subject record whose term is node, used
// when a property object turns out to be a blank node that may itself be
// a recorded subject (inline-blank emission, XMP dedup cleanup).
func (s *termStore) findSubjectByNode(node *Node) *Subject {
	return s.subjectIndex[subjectKey(node.Term.Kind, node.Term.Value)]
}

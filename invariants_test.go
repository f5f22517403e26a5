package rdfxml

import "testing"

// TestCountingInvariant exercises the counting property from the testable
// properties list: after intake, count_as_subject/count_as_object match
// the number of structural references actually recorded.
func TestCountingInvariant(t *testing.T) {
	s := NewSerializer("rdfxml-abbrev")

	mustStatement(t, s, NewIRI("http://example.org/a"), NewPredicate("http://example.org/p"), NewBlank("b"))
	mustStatement(t, s, NewIRI("http://example.org/c"), NewPredicate("http://example.org/p"), NewBlank("b"))
	mustStatement(t, s, NewBlank("b"), NewPredicate("http://example.org/q"), NewLiteral("x"))

	bSubj, err := s.store.findOrCreateSubject(KindBlank, "b")
	if err != nil {
		t.Fatal(err)
	}
	if bSubj.Term.CountAsSubject != 1 {
		t.Errorf("expected CountAsSubject == 1, got %d", bSubj.Term.CountAsSubject)
	}
	if bSubj.Term.CountAsObject != 2 {
		t.Errorf("expected CountAsObject == 2 (referenced from two subjects), got %d", bSubj.Term.CountAsObject)
	}
}

// TestTypeShortcutDoesNotAppendToProperties verifies that the first
// rdf:type triple on a subject is absorbed into type_term rather than
// appended to properties, and that a second rdf:type falls through to an
// ordinary property.
func TestTypeShortcutDoesNotAppendToProperties(t *testing.T) {
	s := NewSerializer("rdfxml-abbrev")
	mustStatement(t, s, NewIRI("http://example.org/a"), NewPredicate(rdfTypeIRI), NewIRI("http://example.org/ns#T"))
	mustStatement(t, s, NewIRI("http://example.org/a"), NewPredicate(rdfTypeIRI), NewIRI("http://example.org/ns#U"))

	subj, err := s.store.findOrCreateSubject(KindIri, "http://example.org/a")
	if err != nil {
		t.Fatal(err)
	}
	if subj.TypeTerm == nil || subj.TypeTerm.Term.Value != "http://example.org/ns#T" {
		t.Fatalf("expected type_term to be the first rdf:type object, got %v", subj.TypeTerm)
	}
	if len(subj.Properties) != 2 {
		t.Fatalf("expected the second rdf:type to fall through to properties, got %d entries", len(subj.Properties))
	}
}

func mustStatement(t *testing.T, s *Serializer, subj, pred, obj *Term) {
	t.Helper()
	if err := s.intake(Statement{Subject: subj, Predicate: pred, Object: obj}); err != nil {
		t.Fatalf("unexpected intake error: %v", err)
	}
}

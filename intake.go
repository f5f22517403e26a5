package rdfxml

import "fmt"

// subjectValue extracts the raw matching value findOrCreateSubject needs
// from a subject-position term.
func subjectValue(t *Term) string {
	switch t.Kind {
	case KindOrdinal:
		return fmt.Sprintf("%d", t.N)
	default:
		return t.Value
	}
}

// intake is the per-triple routing logic (component F): resolves subject,
// predicate and object into interned terms, recognizes the type-shortcut
// and ordinal-predicate cases, and appends to the subject record.
// Grounded on raptor_rdfxmla_serialize_statement in
// raptor_serialize_rdfxmla.c.
func (s *Serializer) intake(st Statement) error {
	if s.terminated {
		return &RejectedStatementError{Reason: "serializer has been terminated"}
	}
	if st.Subject == nil || st.Predicate == nil || st.Object == nil {
		return &RejectedStatementError{Reason: "subject, predicate and object must all be set"}
	}

	// 1-2: reject literal/unknown subjects, resolve the Subject record.
	subject, err := s.store.findOrCreateSubject(st.Subject.Kind, subjectValue(st.Subject))
	if err != nil {
		return &RejectedStatementError{Reason: err.Error()}
	}

	// 3: normalize object kind (literal datatype == rdf:XMLLiteral -> XML sub-tag).
	objTerm := *st.Object
	if objTerm.Kind == KindLiteral && objTerm.Datatype == rdfXMLLiteralIRI {
		objTerm.XML = true
	}

	// 4: reject unsupported object kinds. Ordinal objects and raw
	// predicate-position objects never occur in a well-formed object
	// position.
	switch objTerm.Kind {
	case KindIri, KindBlank, KindLiteral:
	default:
		return &RejectedStatementError{Reason: fmt.Sprintf("object kind %s is not valid in object position", objTerm.Kind)}
	}

	// 5: intern the object; Iri/Blank objects bump count_as_object exactly
	// once here, regardless of whether they end up in properties or
	// list_items.
	objNode := s.store.intern(&objTerm)
	if objTerm.Kind == KindIri || objTerm.Kind == KindBlank {
		objNode.CountAsObject++
	}

	// 6: handle predicate.
	switch st.Predicate.Kind {
	case KindIri, KindPredicate:
		predNode := s.store.intern(NewPredicate(st.Predicate.Value))

		if subject.TypeTerm == nil && predNode == s.rdfTypeNode && objTerm.Kind == KindIri {
			subject.setTypeTerm(objNode)
			return nil
		}

		if s.xmp && predNode.RefCount > 1 && subject.hasPropertyWithPredicate(predNode) {
			if objTerm.Kind == KindBlank {
				if dup := s.store.findSubjectByNode(objNode); dup != nil {
					dup.elided = true
				}
			}
			return nil
		}

		subject.addProperty(predNode, objNode)
		return nil

	case KindOrdinal:
		if subject.setListItem(st.Predicate.N, objNode) {
			return nil
		}
		// Slot already occupied: fall back to an ordinary property,
		// re-interning the predicate as a fresh Ordinal term (shared with
		// any other rdf:_n predicate of the same n via the store's
		// dedup), per the duplicate-ordinal-fallback supplement.
		predNode := s.store.intern(NewOrdinal(st.Predicate.N))
		subject.addProperty(predNode, objNode)
		return nil

	default:
		return &RejectedStatementError{Reason: fmt.Sprintf("predicate kind %s is not valid in predicate position", st.Predicate.Kind)}
	}
}

package rdfxml

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// ensureHeaderWritten fires exactly once: it runs a namespace-discovery
// pass over every subject so every prefix the body stage will need is
// already registered, then opens the root element and declares them.
// Grounded on raptor_rdfxmla_ensure_writen_header.
func (s *Serializer) ensureHeaderWritten() error {
	if s.headerWritten {
		return nil
	}
	s.discoverNamespaces()

	if s.xmp {
		s.xw.Raw(xmpBeginPacket)
	} else if s.WriteXMLDeclaration {
		s.xw.Decl(s.XMLVersion)
	}

	s.xw.StartElement(qnameRDFRoot)
	s.xw.Attr("xmlns:rdf", rdfNS)
	for _, ns := range s.ns.All()[1:] {
		s.xw.Attr("xmlns:"+ns.Prefix, ns.IRI)
	}
	if s.BaseIRI != "" {
		s.xw.Attr(qnameXMLBase, s.BaseIRI)
	}
	s.headerWritten = true
	return nil
}

// discoverNamespaces pre-populates the namespace stack by manufacturing a
// QName for every element name the body stage will need (subject type
// terms and non-ordinal predicates), without writing any bytes. The core
// is inherently buffering (spec Non-goals): this is the concrete reason
// why — namespace declarations on the root element must be known before
// its start tag can be closed, and a predicate's namespace may only be
// discovered arbitrarily deep into the body walk otherwise.
func (s *Serializer) discoverNamespaces() {
	discover := func(subj *Subject) {
		if subj.TypeTerm != nil {
			s.qn.manufacture(subj.TypeTerm.Term.Value) //nolint:errcheck // failures surface again, identically, at emit time
		}
		for i := 0; i < len(subj.Properties); i += 2 {
			pred := subj.Properties[i]
			if pred.Term.Kind != KindOrdinal {
				s.qn.manufacture(pred.Term.Value) //nolint:errcheck
			}
		}
	}
	for _, subj := range s.store.namedSubjects {
		discover(subj)
	}
	for _, subj := range s.store.blankSubjects {
		discover(subj)
	}
}

// emitBody is the body-stage driver (§4.6): named subjects first, then
// blank subjects, each in insertion order.
func (s *Serializer) emitBody() {
	for _, subj := range s.store.namedSubjects {
		s.emitSubject(subj, 0)
	}
	for _, subj := range s.store.blankSubjects {
		s.emitSubject(subj, 0)
	}
}

// emitSubject decides the element name and subject-identifying attribute,
// then emits the element with its properties. Grounded on
// raptor_rdfxmla_emit_subject.
func (s *Serializer) emitSubject(subj *Subject, depth int) {
	if subj.elided {
		return
	}
	if depth == 0 && subj.Term.isSingleUseBlank() {
		return
	}

	qn := QName{Prefix: "rdf", Local: "Description"}
	if subj.TypeTerm != nil {
		if resolved, err := s.qn.manufacture(subj.TypeTerm.Term.Value); err == nil {
			qn = resolved
		}
	}
	s.xw.StartElement(qn.String())

	switch subj.Term.Term.Kind {
	case KindIri:
		switch {
		case s.xmp:
			s.xw.Attr(qnameRDFAbout, "")
		case s.RelativeURIs:
			s.xw.Attr(qnameRDFAbout, relativize(s.BaseIRI, subj.Term.Term.Value))
		default:
			s.xw.Attr(qnameRDFAbout, subj.Term.Term.Value)
		}
	case KindBlank:
		node := subj.Term
		referenced := node.CountAsSubject > 0 && node.CountAsObject > 0 &&
			!(node.CountAsSubject == 1 && node.CountAsObject == 1)
		if referenced {
			s.xw.Attr(qnameRDFNodeID, node.Term.Value)
		}
	case KindOrdinal:
		s.xw.Attr(qnameRDFAbout, fmt.Sprintf("%s_%d", rdfNS, subj.Term.Term.N))
	default:
		panic(&InvariantError{Msg: fmt.Sprintf("subject term has unexpected kind %s", subj.Term.Term.Kind)})
	}

	s.emitProperties(subj, depth)
	s.xw.EndElement()
}

// emitProperties emits list_items in ascending ordinal order, then
// properties in insertion order. Grounded on
// raptor_rdfxmla_emit_subject_list_items / _properties.
func (s *Serializer) emitProperties(subj *Subject, depth int) {
	for n := 1; n < len(subj.ListItems); n++ {
		obj := subj.ListItems[n]
		if obj == nil {
			continue
		}
		s.xw.StartElement(qnameRDFLi)
		s.emitObject(obj, depth+1)
		s.xw.EndElement()
	}

	for i := 0; i < len(subj.Properties); i += 2 {
		pred, obj := subj.Properties[i], subj.Properties[i+1]

		var name string
		if pred.Term.Kind == KindOrdinal {
			name = fmt.Sprintf("rdf:_%d", pred.Term.N)
		} else {
			qn, err := s.qn.manufacture(pred.Term.Value)
			if err != nil {
				logrus.WithError(err).WithField("predicate", pred.Term.Value).
					Warn("rdfxml: dropping property, cannot split predicate IRI into a qname")
				continue
			}
			name = qn.String()
		}

		s.xw.StartElement(name)
		s.emitObject(obj, depth+1)
		s.xw.EndElement()
	}
}

// emitObject dispatches on the object's kind. Grounded on
// raptor_rdfxmla_emit_resource / _emit_literal / _emit_xml_literal /
// _emit_blank.
func (s *Serializer) emitObject(obj *Node, depth int) {
	switch obj.Term.Kind {
	case KindIri:
		val := obj.Term.Value
		if s.RelativeURIs {
			val = relativize(s.BaseIRI, val)
		}
		s.xw.Attr(qnameRDFResource, val)
	case KindLiteral:
		if obj.Term.XML {
			s.xw.Attr(qnameRDFParseType, "Literal")
			s.xw.Raw(obj.Term.Value)
			return
		}
		if obj.Term.Language != "" {
			s.xw.Attr(qnameXMLLang, obj.Term.Language)
		}
		if obj.Term.Datatype != "" {
			s.xw.Attr(qnameRDFDatatype, obj.Term.Datatype)
		}
		s.xw.CData(obj.Term.Value)
	case KindBlank:
		if obj.isSingleUseBlank() {
			if blankSubj := s.store.findSubjectByNode(obj); blankSubj != nil && !blankSubj.elided {
				s.emitSubject(blankSubj, depth+1)
				blankSubj.elided = true
				return
			}
		}
		s.xw.Attr(qnameRDFNodeID, obj.Term.Value)
	default:
		panic(&InvariantError{Msg: fmt.Sprintf("object term has unexpected kind %s", obj.Term.Kind)})
	}
}

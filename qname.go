package rdfxml

import (
	"regexp"

	"github.com/abbrevrdf/rdfxml/internal/nsstack"
)

// QName is an XML qualified name: a namespace/local-name pair, rendered as
// prefix:local when the namespace has a non-empty prefix.
type QName struct {
	Prefix       string
	Local        string
	NamespaceIRI string
}

func (q QName) String() string {
	if q.Prefix == "" {
		return q.Local
	}
	return q.Prefix + ":" + q.Local
}

// ncNamePattern approximates the legal-XML-NCName check the source runs
// byte-by-byte (raptor_xml_name_check), grounded on knakk/rdf's own
// rgxpNCName in rdfxml.go.
var ncNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.-]*$`)

func isNCName(s string) bool {
	return s != "" && ncNamePattern.MatchString(s)
}

// qnameManufacturer splits IRIs into (namespace, local name) pairs,
// minting ns<k> prefixes on demand. Grounded on
// raptor_new_qname_from_resource in raptor_abbrev.c.
type qnameManufacturer struct {
	ns *nsstack.Stack
}

func newQNameManufacturer(ns *nsstack.Stack) *qnameManufacturer {
	return &qnameManufacturer{ns: ns}
}

// manufacture returns a QName for iri, registering a new namespace if
// necessary. Fails when no legal split point exists.
func (m *qnameManufacturer) manufacture(iri string) (QName, error) {
	if ns, suffix, ok := m.ns.FindLongestPrefixOf(iri); ok && isNCName(suffix) {
		return QName{Prefix: ns.Prefix, Local: suffix, NamespaceIRI: ns.IRI}, nil
	}

	split := -1
	for i := 1; i < len(iri); i++ {
		if isNCName(iri[i:]) {
			split = i
			break
		}
	}
	if split <= 0 {
		return QName{}, &QNameError{IRI: iri}
	}

	nsIRI := iri[:split]
	local := iri[split:]

	if existing, ok := m.ns.FindByIRI(nsIRI); ok {
		return QName{Prefix: existing.Prefix, Local: local, NamespaceIRI: existing.IRI}, nil
	}
	minted := m.ns.Mint(nsIRI)
	return QName{Prefix: minted.Prefix, Local: local, NamespaceIRI: minted.IRI}, nil
}

// Package nsstack is the namespace-stack primitive: a prefix/IRI bijection
// that the QName manufacturer consults before minting a new prefix, and
// that the header stage walks to declare every namespace it accumulated.
// Out of scope per the core's contract, but no such primitive exists
// anywhere in the retrieval pack to reuse, so it is implemented here
// directly against raptor_namespace_stack's usage in
// raptor_serialize_rdfxmla.c: entries are appended, never popped, and
// index 0 is reserved for the serializer's own rdf: binding.
package nsstack

import "strconv"

// Namespace is one registered prefix/IRI pair.
type Namespace struct {
	Prefix string
	IRI    string
}

// Stack holds every namespace declared so far, in declaration order.
type Stack struct {
	entries  []Namespace
	byPrefix map[string]int
	byIRI    map[string]int
	counter  int
}

// New returns an empty stack.
func New() *Stack {
	return &Stack{byPrefix: make(map[string]int), byIRI: make(map[string]int)}
}

// Declare registers prefix -> iri, returning the existing entry's index
// and alreadyDeclared=true when either the prefix or the IRI already
// matches a prior declaration (both are treated as success, per
// raptor_rdfxmla_serialize_declare_namespace_from_namespace's three-way
// check on empty/equal prefix and equal IRI). Otherwise it appends a new
// entry and returns its fresh index with alreadyDeclared=false.
func (s *Stack) Declare(prefix, iri string) (idx int, alreadyDeclared bool) {
	if i, ok := s.byIRI[iri]; ok {
		return i, true
	}
	if i, ok := s.byPrefix[prefix]; ok {
		return i, true
	}
	idx = len(s.entries)
	s.entries = append(s.entries, Namespace{Prefix: prefix, IRI: iri})
	s.byIRI[iri] = idx
	s.byPrefix[prefix] = idx
	return idx, false
}

// Mint registers iri under a freshly allocated "ns<k>" prefix and returns
// the new entry. Callers must already know iri isn't registered.
func (s *Stack) Mint(iri string) Namespace {
	var prefix string
	for {
		s.counter++
		prefix = "ns" + strconv.Itoa(s.counter)
		if _, taken := s.byPrefix[prefix]; !taken {
			break
		}
	}
	idx, _ := s.Declare(prefix, iri)
	return s.entries[idx]
}

// FindByIRI returns the namespace registered under iri, if any.
func (s *Stack) FindByIRI(iri string) (Namespace, bool) {
	idx, ok := s.byIRI[iri]
	if !ok {
		return Namespace{}, false
	}
	return s.entries[idx], true
}

// FindLongestPrefixOf returns the registered namespace whose IRI is the
// longest prefix of uri, if any — step 1 of the QName manufacture
// algorithm (prefer a namespace the caller or a prior split already
// registered over minting a fresh one).
func (s *Stack) FindLongestPrefixOf(uri string) (Namespace, string, bool) {
	best := -1
	bestLen := -1
	for i, ns := range s.entries {
		if len(ns.IRI) <= bestLen {
			continue
		}
		if len(uri) > len(ns.IRI) && uri[:len(ns.IRI)] == ns.IRI {
			best = i
			bestLen = len(ns.IRI)
		}
	}
	if best < 0 {
		return Namespace{}, "", false
	}
	return s.entries[best], uri[bestLen:], true
}

// All returns every declared namespace in declaration order.
func (s *Stack) All() []Namespace { return s.entries }

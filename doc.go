// Package rdfxml implements the in-memory abbreviation model behind an
// abbreviating RDF/XML serializer: a canonicalizing term store backed by a
// height-balanced tree, a subject index grouping statements by subject, and
// a two-phase emission planner that decides between inlining, referencing
// and eliding blank nodes while manufacturing XML qualified names on demand.
//
// The package does not parse RDF, read or write bytes at the lowest level,
// or resolve IRIs against the wider web; those concerns live in the small
// internal/xmlw and internal/nsstack helpers and in the unexported
// relativize helper in iri.go, kept deliberately minimal.
package rdfxml

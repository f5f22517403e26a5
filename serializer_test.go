package rdfxml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func runSerializer(t *testing.T, profile string, configure func(*Serializer), sts []Statement) string {
	t.Helper()
	s := NewSerializer(profile)
	if configure != nil {
		configure(s)
	}
	var buf strings.Builder
	require.NoError(t, s.Start(&buf))
	for _, st := range sts {
		require.NoError(t, s.Statement(st))
	}
	require.NoError(t, s.End())
	require.NoError(t, s.Terminate())
	return buf.String()
}

// Seed scenario 1: single typed resource.
func TestSeedSingleTypedResource(t *testing.T) {
	out := runSerializer(t, "rdfxml-abbrev", nil, []Statement{
		{Subject: NewIRI("http://example.org/a"), Predicate: NewPredicate(rdfTypeIRI), Object: NewIRI("http://example.org/ns#T")},
		{Subject: NewIRI("http://example.org/a"), Predicate: NewPredicate("http://example.org/ns#p"), Object: NewLiteral("v")},
	})
	require.Contains(t, out, `rdf:about="http://example.org/a"`)
	require.Contains(t, out, ">v<")
	require.NotContains(t, out, "rdf:Description")
}

// Seed scenario 2: inlined blank (counts subject=1, object=1).
func TestSeedInlinedBlank(t *testing.T) {
	out := runSerializer(t, "rdfxml-abbrev", nil, []Statement{
		{Subject: NewIRI("http://example.org/a"), Predicate: NewPredicate("http://example.org/ns#p"), Object: NewBlank("b")},
		{Subject: NewBlank("b"), Predicate: NewPredicate("http://example.org/ns#q"), Object: NewLiteral("x")},
	})
	require.NotContains(t, out, "rdf:nodeID")
	require.Contains(t, out, ">x<")
}

// Seed scenario 3: referenced blank (counts subject=1, object=2).
func TestSeedReferencedBlank(t *testing.T) {
	out := runSerializer(t, "rdfxml-abbrev", nil, []Statement{
		{Subject: NewIRI("http://example.org/a"), Predicate: NewPredicate("http://example.org/ns#p"), Object: NewBlank("b")},
		{Subject: NewIRI("http://example.org/c"), Predicate: NewPredicate("http://example.org/ns#p"), Object: NewBlank("b")},
		{Subject: NewBlank("b"), Predicate: NewPredicate("http://example.org/ns#q"), Object: NewLiteral("x")},
	})
	require.Contains(t, out, `rdf:nodeID="b"`)
}

// Seed scenario 4: list items, emitted in ascending ordinal order
// regardless of intake order.
func TestSeedListItemsAscendingOrder(t *testing.T) {
	out := runSerializer(t, "rdfxml-abbrev", nil, []Statement{
		{Subject: NewIRI("http://example.org/a"), Predicate: NewOrdinal(2), Object: NewIRI("http://example.org/x")},
		{Subject: NewIRI("http://example.org/a"), Predicate: NewOrdinal(1), Object: NewIRI("http://example.org/y")},
	})
	yIdx := strings.Index(out, "http://example.org/y")
	xIdx := strings.Index(out, "http://example.org/x")
	require.Greater(t, yIdx, 0)
	require.Greater(t, xIdx, 0)
	require.Less(t, yIdx, xIdx, "rdf:_1's object must appear before rdf:_2's")
	require.Contains(t, out, "rdf:li")
}

// Seed scenario 5: duplicate ordinal falls back to an ordinary property.
func TestSeedDuplicateOrdinalFallback(t *testing.T) {
	out := runSerializer(t, "rdfxml-abbrev", nil, []Statement{
		{Subject: NewIRI("http://example.org/a"), Predicate: NewOrdinal(1), Object: NewIRI("http://example.org/x")},
		{Subject: NewIRI("http://example.org/a"), Predicate: NewOrdinal(1), Object: NewIRI("http://example.org/y")},
	})
	require.Contains(t, out, "rdf:li")
	require.Contains(t, out, "rdf:_1")
}

// Seed scenario 6: typed and language-tagged literals with the same
// lexical form are distinct terms and both emitted.
func TestSeedDistinctLiteralsBothEmitted(t *testing.T) {
	out := runSerializer(t, "rdfxml-abbrev", nil, []Statement{
		{Subject: NewIRI("http://example.org/a"), Predicate: NewPredicate("http://example.org/ns#p"), Object: NewLangLiteral("v", "en")},
		{Subject: NewIRI("http://example.org/a"), Predicate: NewPredicate("http://example.org/ns#p"), Object: NewTypedLiteral("v", "http://example.org/ns#D")},
	})
	require.Contains(t, out, `xml:lang="en"`)
	require.Contains(t, out, `rdf:datatype="http://example.org/ns#D"`)
}

// XMP idempotence: the same (subject, predicate, object) intook twice
// under a predicate shared across subjects results in at most one
// emitted property element in XMP mode.
func TestXMPDedupOnDuplicateProperty(t *testing.T) {
	sts := []Statement{
		{Subject: NewIRI("http://example.org/a"), Predicate: NewPredicate("http://example.org/ns#p"), Object: NewLiteral("v")},
		{Subject: NewIRI("http://example.org/other"), Predicate: NewPredicate("http://example.org/ns#p"), Object: NewLiteral("w")},
		{Subject: NewIRI("http://example.org/a"), Predicate: NewPredicate("http://example.org/ns#p"), Object: NewLiteral("v")},
	}
	out := runSerializer(t, "rdfxml-xmp", nil, sts)
	require.Equal(t, 1, strings.Count(out, ">v<"))
}

func TestXMPModeSuppressesXMLDeclarationAndEmitsWrapper(t *testing.T) {
	out := runSerializer(t, "rdfxml-xmp", nil, []Statement{
		{Subject: NewIRI("http://example.org/a"), Predicate: NewPredicate("http://example.org/ns#p"), Object: NewLiteral("v")},
	})
	require.NotContains(t, out, "<?xml")
	require.Contains(t, out, "xpacket begin=")
	require.Contains(t, out, "xpacket end='r'?>")
	require.Contains(t, out, `rdf:about=""`)
}

func TestXMLDeclarationEmittedInPlainMode(t *testing.T) {
	out := runSerializer(t, "rdfxml-abbrev", func(s *Serializer) { s.XMLVersion = "1.0" }, []Statement{
		{Subject: NewIRI("http://example.org/a"), Predicate: NewPredicate("http://example.org/ns#p"), Object: NewLiteral("v")},
	})
	require.Contains(t, out, "<?xml version='1.0'")
}

func TestDeclareNamespaceFailsAfterHeaderWritten(t *testing.T) {
	s := NewSerializer("rdfxml-abbrev")
	var buf strings.Builder
	require.NoError(t, s.Start(&buf))
	require.NoError(t, s.Statement(Statement{
		Subject: NewIRI("http://example.org/a"), Predicate: NewPredicate("http://example.org/p"), Object: NewLiteral("v"),
	}))
	require.NoError(t, s.End())
	require.Error(t, s.DeclareNamespace("http://example.org/new#", "n"))
}

func TestDeclareNamespaceDuplicateIsSilentSuccess(t *testing.T) {
	s := NewSerializer("rdfxml-abbrev")
	require.NoError(t, s.DeclareNamespace("http://example.org/ns#", "ex"))
	require.NoError(t, s.DeclareNamespace("http://example.org/ns#", "ex2"))
	require.NoError(t, s.DeclareNamespace("http://example.org/other#", "ex"))
}

func TestRejectedLiteralSubjectDoesNotAbortStream(t *testing.T) {
	s := NewSerializer("rdfxml-abbrev")
	var buf strings.Builder
	require.NoError(t, s.Start(&buf))

	err := s.Statement(Statement{Subject: NewLiteral("bad"), Predicate: NewPredicate("http://example.org/p"), Object: NewLiteral("v")})
	require.Error(t, err)

	require.NoError(t, s.Statement(Statement{
		Subject: NewIRI("http://example.org/a"), Predicate: NewPredicate("http://example.org/p"), Object: NewLiteral("good"),
	}))
	require.NoError(t, s.End())
	require.Contains(t, buf.String(), ">good<")
}

func TestStatementsAllAggregatesErrors(t *testing.T) {
	s := NewSerializer("rdfxml-abbrev")
	var buf strings.Builder
	require.NoError(t, s.Start(&buf))

	err := s.StatementsAll([]Statement{
		{Subject: NewLiteral("bad"), Predicate: NewPredicate("http://example.org/p"), Object: NewLiteral("v")},
		{Subject: NewIRI("http://example.org/a"), Predicate: NewPredicate("http://example.org/p"), Object: NewLiteral("good")},
	})
	require.Error(t, err)
	require.NoError(t, s.End())
	require.Contains(t, buf.String(), ">good<")
}

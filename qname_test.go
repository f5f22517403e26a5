package rdfxml

import (
	"testing"

	"github.com/abbrevrdf/rdfxml/internal/nsstack"
)

func TestManufactureSplitsOnHash(t *testing.T) {
	m := newQNameManufacturer(nsstack.New())
	qn, err := m.manufacture("http://example.org/ns#local")
	if err != nil {
		t.Fatal(err)
	}
	if qn.Local != "local" {
		t.Errorf("expected local name %q, got %q", "local", qn.Local)
	}
	if qn.NamespaceIRI != "http://example.org/ns#" {
		t.Errorf("expected namespace %q, got %q", "http://example.org/ns#", qn.NamespaceIRI)
	}
}

func TestManufactureMintsPrefixOnce(t *testing.T) {
	m := newQNameManufacturer(nsstack.New())
	a, err := m.manufacture("http://example.org/ns#one")
	if err != nil {
		t.Fatal(err)
	}
	b, err := m.manufacture("http://example.org/ns#two")
	if err != nil {
		t.Fatal(err)
	}
	if a.Prefix != b.Prefix {
		t.Errorf("expected the same namespace to reuse its minted prefix, got %q and %q", a.Prefix, b.Prefix)
	}
}

func TestManufactureReusesPreDeclaredNamespace(t *testing.T) {
	ns := nsstack.New()
	ns.Declare("ex", "http://example.org/ns#")
	m := newQNameManufacturer(ns)
	qn, err := m.manufacture("http://example.org/ns#thing")
	if err != nil {
		t.Fatal(err)
	}
	if qn.Prefix != "ex" {
		t.Errorf("expected the pre-declared prefix %q, got %q", "ex", qn.Prefix)
	}
}

func TestManufactureFailsWithNoLegalSplit(t *testing.T) {
	m := newQNameManufacturer(nsstack.New())
	if _, err := m.manufacture("http://example.org/1"); err == nil {
		t.Error("expected failure when no suffix starting past position 0 is a legal NCName")
	}
}

func TestManufactureSplitsIRIWithoutHashOrSlash(t *testing.T) {
	m := newQNameManufacturer(nsstack.New())
	if _, err := m.manufacture("mailto:x"); err != nil {
		// "x" alone is a legal NCName, split after the colon is fine; this
		// documents that a split exists even without a '#' or '/'.
		t.Fatalf("unexpected error: %v", err)
	}
}

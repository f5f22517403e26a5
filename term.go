package rdfxml

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Kind tags the inhabitant a Term holds.
type Kind uint8

const (
	KindIri Kind = iota
	KindBlank
	KindLiteral
	KindOrdinal
	// KindPredicate is a predicate-position IRI. It compares and matches as
	// KindIri (see effectiveKind) but is kept distinct so intake can tell
	// predicates from resources without a second lookup.
	KindPredicate
)

func (k Kind) String() string {
	switch k {
	case KindIri:
		return "Iri"
	case KindBlank:
		return "Blank"
	case KindLiteral:
		return "Literal"
	case KindOrdinal:
		return "Ordinal"
	case KindPredicate:
		return "Predicate"
	default:
		return "Unknown"
	}
}

// effectiveKind collapses Predicate into Iri for ordering and lookup, per
// spec: a predicate-position IRI is equal to Iri(u) for those purposes.
func effectiveKind(k Kind) Kind {
	if k == KindPredicate {
		return KindIri
	}
	return k
}

// Term is a tagged union over the RDF term shapes this core cares about.
// Exactly one payload combination per Kind is meaningful; callers should
// use the New* constructors rather than building Term literals directly.
type Term struct {
	Kind Kind

	// Value holds the IRI string (KindIri/KindPredicate), the blank label
	// (KindBlank) or the literal's lexical form (KindLiteral).
	Value string

	// Datatype is the literal's datatype IRI, empty when absent.
	Datatype string
	// Language is the literal's language tag, empty when absent.
	Language string
	// XML marks a Literal whose Datatype equals the well-known XML-literal
	// datatype IRI. Set at intake time (see intake.go) for every such
	// literal; NewTypedLiteral also sets it at construction.
	XML bool

	// N holds the ordinal value for KindOrdinal.
	N int
}

// NewIRI builds a resource-position IRI term.
func NewIRI(iri string) *Term { return &Term{Kind: KindIri, Value: iri} }

// NewPredicate builds a predicate-position IRI term.
func NewPredicate(iri string) *Term { return &Term{Kind: KindPredicate, Value: iri} }

// NewBlank builds a blank-node term from its label.
func NewBlank(label string) *Term { return &Term{Kind: KindBlank, Value: label} }

// NewOrdinal builds an rdf:_n ordinal term. n must be positive.
func NewOrdinal(n int) *Term { return &Term{Kind: KindOrdinal, N: n} }

// NewLiteral builds a plain literal with no language or datatype.
func NewLiteral(lexical string) *Term { return &Term{Kind: KindLiteral, Value: lexical} }

// NewLangLiteral builds a language-tagged literal.
func NewLangLiteral(lexical, lang string) *Term {
	return &Term{Kind: KindLiteral, Value: lexical, Language: lang}
}

// NewTypedLiteral builds a datatyped literal. If datatype equals the
// well-known XML-literal datatype IRI the XML sub-tag is set immediately;
// intake.go applies the same check against the same constant, so literals
// built without this constructor are tagged too.
func NewTypedLiteral(lexical, datatype string) *Term {
	t := &Term{Kind: KindLiteral, Value: lexical, Datatype: datatype}
	if datatype == rdfXMLLiteralIRI {
		t.XML = true
	}
	return t
}

func (t *Term) String() string {
	switch t.Kind {
	case KindIri, KindPredicate:
		return fmt.Sprintf("<%s>", t.Value)
	case KindBlank:
		return "_:" + t.Value
	case KindOrdinal:
		return fmt.Sprintf("rdf:_%d", t.N)
	case KindLiteral:
		switch {
		case t.Language != "":
			return fmt.Sprintf("%q@%s", t.Value, t.Language)
		case t.Datatype != "":
			return fmt.Sprintf("%q^^<%s>", t.Value, t.Datatype)
		default:
			return fmt.Sprintf("%q", t.Value)
		}
	}
	return "<invalid term>"
}

// compareOptString orders an absent string before any present one, per the
// literal tie-break rules in the ordering and matching sections.
func compareOptString(a, b string) int {
	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return -1
	case b == "":
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// checkLiteralInvariant fires the internal-consistency diagnostic required
// when a literal's lexical form is absent; this must never happen for a
// term that has passed through intake and indicates a bug upstream, not
// malformed caller input.
func checkLiteralInvariant(t *Term) {
	if t.Kind == KindLiteral && t.Value == "" {
		logrus.WithFields(logrus.Fields{
			"component": "term",
			"kind":      t.Kind.String(),
		}).Error("literal term has no lexical form")
		panic(&InvariantError{Msg: "string must be non-empty for literal or xml literal"})
	}
}

// compareTerms implements the strict total order from the ordering rules:
// tag first (Predicate collapsed into Iri), then by payload, with absent
// language/datatype sorting before present ones.
func compareTerms(a, b *Term) int {
	if a == b {
		return 0
	}
	ka, kb := effectiveKind(a.Kind), effectiveKind(b.Kind)
	if ka != kb {
		if ka < kb {
			return -1
		}
		return 1
	}
	switch ka {
	case KindIri:
		return strings.Compare(a.Value, b.Value)
	case KindBlank:
		return strings.Compare(a.Value, b.Value)
	case KindLiteral:
		checkLiteralInvariant(a)
		checkLiteralInvariant(b)
		if c := strings.Compare(a.Value, b.Value); c != 0 {
			return c
		}
		if c := compareOptString(a.Language, b.Language); c != 0 {
			return c
		}
		return compareOptString(a.Datatype, b.Datatype)
	case KindOrdinal:
		switch {
		case a.N < b.N:
			return -1
		case a.N > b.N:
			return 1
		default:
			return 0
		}
	default:
		return 0
	}
}

// termMatches answers the distinct matching question used by subject
// lookup: does t correspond to this raw (kind, value, datatype, language)
// combination? Tags must match exactly here; Predicate/Iri collapsing does
// not apply because subject terms are never predicates.
func termMatches(t *Term, kind Kind, value, datatype, language string) bool {
	if t.Kind != kind {
		return false
	}
	switch kind {
	case KindIri, KindPredicate, KindBlank:
		return t.Value == value
	case KindOrdinal:
		return fmt.Sprintf("%d", t.N) == value
	case KindLiteral:
		checkLiteralInvariant(t)
		if t.Value != value {
			return false
		}
		if (t.Language == "") != (language == "") {
			return false
		}
		if t.Language != language {
			return false
		}
		if (t.Datatype == "") != (datatype == "") {
			return false
		}
		return t.Datatype == datatype
	}
	return false
}

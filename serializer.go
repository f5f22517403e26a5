package rdfxml

import (
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/abbrevrdf/rdfxml/internal/nsstack"
	"github.com/abbrevrdf/rdfxml/internal/xmlw"
)

// Statement is one incoming RDF triple, addressed to Serializer.Statement.
// Subject, Predicate and Object are built with the Term constructors and
// are not required to be interned already — intake does that.
type Statement struct {
	Subject   *Term
	Predicate *Term
	Object    *Term
}

// Serializer is the abbreviating RDF/XML serializer core: the public
// caller surface over the term store, subject index and emission planner.
// Grounded on raptor_rdfxmla_context and its serialize_init / _start /
// _statement / _end / _terminate functions in raptor_serialize_rdfxmla.c.
type Serializer struct {
	// RelativeURIs, when true, writes IRI objects and rdf:about values
	// relative to BaseIRI.
	RelativeURIs bool
	// WriteXMLDeclaration controls whether the header stage (run from End)
	// emits an <?xml ...?> declaration; forced off in XMP mode.
	WriteXMLDeclaration bool
	// XMLVersion is written into the declaration when one is emitted.
	XMLVersion string
	// BaseIRI, when non-empty, is attached as xml:base on the root
	// element and used for relativization.
	BaseIRI string

	store *termStore
	ns    *nsstack.Stack
	qn    *qnameManufacturer

	xw *xmlw.Writer

	xmp           bool
	headerWritten bool
	started       bool
	terminated    bool

	rdfTypeNode *Node
}

// NewSerializer builds a Serializer for the named profile. Any name with
// the "rdfxml-xmp" prefix enables XMP mode; anything else, including
// "rdfxml-abbrev", runs the plain profile — both names are registered
// against the very same implementation in the source, distinguished only
// by this prefix check in raptor_rdfxmla_serialize_init.
func NewSerializer(name string) *Serializer {
	s := &Serializer{
		store:      newTermStore(),
		ns:         nsstack.New(),
		XMLVersion: "1.0",
	}
	if len(name) >= len("rdfxml-xmp") && name[:len("rdfxml-xmp")] == "rdfxml-xmp" {
		s.xmp = true
		s.WriteXMLDeclaration = false
	} else {
		s.WriteXMLDeclaration = true
	}
	s.ns.Declare("rdf", rdfNS) // index 0, declared implicitly on the root element
	s.qn = newQNameManufacturer(s.ns)
	s.rdfTypeNode = s.store.intern(canonicalRDFType())
	return s
}

// DeclareNamespace registers a user namespace with the given prefix. It
// fails once the header has already been written; a prefix or IRI that's
// already registered is silently treated as success, matching
// raptor_rdfxmla_serialize_declare_namespace_from_namespace's three-way
// dedup check — these are two distinct outcomes the source conflates into
// one raw return value, kept distinct here.
func (s *Serializer) DeclareNamespace(iri, prefix string) error {
	if s.headerWritten {
		return errors.New("rdfxml: cannot declare namespace after header has been written")
	}
	s.ns.Declare(prefix, iri)
	return nil
}

// Start binds the writer to out with auto-indent on, auto-empty-elements
// on and indent width 2. XMLVersion is read later, when the header stage
// writes the declaration.
func (s *Serializer) Start(out io.Writer) error {
	if s.started {
		return errors.New("rdfxml: already started")
	}
	s.xw = xmlw.New(out)
	s.xw.AutoIndent = true
	s.xw.AutoEmpty = true
	s.xw.IndentWidth = 2
	s.started = true
	return nil
}

// Statement intakes one triple (§4.5); see intake.go.
func (s *Serializer) Statement(st Statement) error {
	return s.intake(st)
}

// StatementsAll intakes every statement, continuing past per-statement
// semantic rejections and returning every error
// collected along the way as one *multierror.Error — the batch rendering
// of the "local recovery for per-statement problems" recovery principle.
func (s *Serializer) StatementsAll(sts []Statement) error {
	var result *multierror.Error
	for _, st := range sts {
		if err := s.intake(st); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

// End ensures the header has been written, runs the body stage, closes
// the root element, and in XMP mode writes the trailing packet bytes.
func (s *Serializer) End() error {
	if !s.started {
		return errors.New("rdfxml: End called before Start")
	}
	if err := s.ensureHeaderWritten(); err != nil {
		return err
	}
	s.emitBody()
	s.xw.EndElement() // rdf:RDF
	s.xw.Raw("\n")
	if s.xmp {
		s.xw.Raw(xmpEndPacket)
	}
	if err := s.xw.Flush(); err != nil {
		return err
	}
	if s.xw.Err() != nil {
		return errors.Wrap(s.xw.Err(), "rdfxml: write")
	}
	return nil
}

// Terminate releases the resources the serializer holds. The Go runtime's
// GC makes this a formality compared to raptor_rdfxmla_serialize_terminate's
// manual free sequence, but it is kept as an explicit, idempotent call so
// callers following the external interface contract have one, and so a
// Serializer can't accidentally be reused after teardown.
func (s *Serializer) Terminate() error {
	if s.terminated {
		return nil
	}
	s.terminated = true
	s.store = nil
	s.ns = nil
	s.qn = nil
	s.xw = nil
	logrus.Debug("rdfxml: serializer terminated")
	return nil
}

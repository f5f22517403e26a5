package rdfxml

// Well-known IRIs the core must match bit-exact, grounded on the constants
// knakk/rdf's rdfxml.go keeps for the same namespace (rdfNS, rdfType, ...).
const (
	rdfNS   = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	adobeNS = "adobe:ns:meta/"

	rdfTypeIRI       = rdfNS + "type"
	rdfXMLLiteralIRI = rdfNS + "XMLLiteral"
)

// The rdf: and xml: qnames the emission planner writes literally rather
// than routing through the qname manufacturer: rdf: is the binding
// declared at index 0 of every namespace stack, and xml: is built into XML.
const (
	qnameRDFRoot      = "rdf:RDF"
	qnameRDFAbout     = "rdf:about"
	qnameRDFNodeID    = "rdf:nodeID"
	qnameRDFResource  = "rdf:resource"
	qnameRDFDatatype  = "rdf:datatype"
	qnameRDFParseType = "rdf:parseType"
	qnameRDFLi        = "rdf:li"
	qnameXMLLang      = "xml:lang"
	qnameXMLBase      = "xml:base"
)

// xmpBeginPacket and xmpEndPacket must be emitted verbatim in XMP mode.
// The begin packet's begin attribute holds a literal UTF-8 BOM (the raw
// bytes EF BB BF), preserved bit-exact from the original wrapper bytes.
var (
	xmpBeginPacket = "<?xpacket begin='﻿' id='W5M0MpCehiHzreSzNTczkc9d'?>\n<x:xmpmeta xmlns:x='" + adobeNS + "'>"
	xmpEndPacket   = "</x:xmpmeta>\n<?xpacket end='r'?>\n"
)

// canonicalRDFType is the single shared rdf:type predicate term used for
// the type-shortcut comparison in intake; interned once per store.
func canonicalRDFType() *Term { return NewPredicate(rdfTypeIRI) }

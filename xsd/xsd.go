// Package xsd exports the IRIs of XSD datatypes as plain strings, for use
// as the Datatype field of a rdfxml.Term built with NewTypedLiteral.
package xsd

// The XML schema built-in datatypes (xsd):
// https://dvcs.w3.org/hg/rdf/raw-file/default/rdf-concepts/index.html#xsd-datatypes
const (
	// Core types:

	String  = "http://www.w3.org/2001/XMLSchema#string"
	Boolean = "http://www.w3.org/2001/XMLSchema#boolean"
	Decimal = "http://www.w3.org/2001/XMLSchema#decimal"
	Integer = "http://www.w3.org/2001/XMLSchema#integer"

	// IEEE floating-point numbers:

	Double = "http://www.w3.org/2001/XMLSchema#double"
	Float  = "http://www.w3.org/2001/XMLSchema#float"

	// Time and date:

	Date          = "http://www.w3.org/2001/XMLSchema#date"
	Time          = "http://www.w3.org/2001/XMLSchema#time"
	DateTime      = "http://www.w3.org/2001/XMLSchema#dateTime"
	DateTimeStamp = "http://www.w3.org/2001/XMLSchema#dateTimeStamp"

	// Recurring and partial dates:

	Year              = "http://www.w3.org/2001/XMLSchema#gYear"
	Month             = "http://www.w3.org/2001/XMLSchema#gMonth"
	Day               = "http://www.w3.org/2001/XMLSchema#gDay"
	YearMonth         = "http://www.w3.org/2001/XMLSchema#gYearMonth"
	Duration          = "http://www.w3.org/2001/XMLSchema#Duration"
	YearMonthDuration = "http://www.w3.org/2001/XMLSchema#yearMonthDuration"
	DayTimeDuration   = "http://www.w3.org/2001/XMLSchema#dayTimeDuration"

	// Limited-range integer numbers:

	Byte = "http://www.w3.org/2001/XMLSchema#byte"
)

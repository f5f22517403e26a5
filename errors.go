package rdfxml

import "fmt"

// InvariantError marks an internal invariant violation: an unreachable
// switch case or a literal with no lexical form. These indicate a bug in
// the emission planner or intake, not malformed caller input, and are
// surfaced as a fatal diagnostic rather than recovered from — per the
// error taxonomy, there is no recovery path for these.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string { return "rdfxml: internal invariant violation: " + e.Msg }

// RejectedStatementError marks the semantic rejection of one statement:
// a literal subject, an unknown subject/object/predicate kind. The
// stream is not aborted; subsequent statements are still accepted.
type RejectedStatementError struct {
	Reason string
}

func (e *RejectedStatementError) Error() string {
	return fmt.Sprintf("rdfxml: statement rejected: %s", e.Reason)
}

// QNameError marks a failed QName split; the offending property is
// dropped but its subject's other properties continue to emit.
type QNameError struct {
	IRI string
}

func (e *QNameError) Error() string {
	return fmt.Sprintf("rdfxml: cannot split URI %q into an XML qname", e.IRI)
}

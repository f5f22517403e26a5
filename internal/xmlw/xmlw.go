// Package xmlw is the XML writer primitive: start/end element, attribute,
// escaped character data and raw bytes, with auto-indent and
// auto-empty-element behavior. Declared out of scope by the core's
// contract (an external collaborator), but no ecosystem library in the
// retrieval pack offers an auto-indenting, auto-empty-element XML writer
// of this shape (a grep across every go.mod in the pack for "xml" turns up
// nothing), so it is hand-rolled here against stdlib strings/bufio,
// grounded on the teacher's own bufio-backed errWriter in encoder.go and
// on the feature flags raptor_xml_writer exposes
// (RAPTOR_FEATURE_WRITER_AUTO_INDENT, _AUTO_EMPTY, _INDENT_WIDTH).
package xmlw

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Writer streams XML elements to an underlying io.Writer.
type Writer struct {
	w *bufio.Writer

	AutoIndent  bool
	AutoEmpty   bool
	IndentWidth int

	stack        []string
	pendingOpen  bool // a start tag's '>' has not been written yet
	pendingAttrs []attr
	hasChild     []bool // per depth, whether a child *element* was opened since open
	err          error
}

type attr struct{ name, value string }

// New wraps w, with IndentWidth set to 2 and AutoIndent and AutoEmpty off.
func New(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w), IndentWidth: 2}
}

// Err returns the first write error encountered, if any.
func (x *Writer) Err() error { return x.err }

func (x *Writer) write(s string) {
	if x.err != nil {
		return
	}
	if _, err := x.w.WriteString(s); err != nil {
		x.err = errors.Wrap(err, "xmlw: write")
	}
}

// Flush flushes the underlying buffered writer.
func (x *Writer) Flush() error {
	if x.err != nil {
		return x.err
	}
	if err := x.w.Flush(); err != nil {
		return errors.Wrap(err, "xmlw: flush")
	}
	return nil
}

// Decl writes an XML declaration.
func (x *Writer) Decl(version string) {
	x.write("<?xml version='" + version + "' encoding='utf-8'?>\n")
}

func (x *Writer) indent() {
	if !x.AutoIndent {
		return
	}
	if len(x.stack) == 0 {
		return
	}
	x.write("\n" + strings.Repeat(" ", len(x.stack)*x.IndentWidth))
}

// closeStartTag writes a still-open start tag's pending attributes and its
// closing '>'. It never self-closes; EndElement handles the empty case.
func (x *Writer) closeStartTag() {
	if !x.pendingOpen {
		return
	}
	for _, a := range x.pendingAttrs {
		x.write(" " + a.name + "=\"" + EscapeAttr(a.value) + "\"")
	}
	x.pendingAttrs = nil
	x.write(">")
	x.pendingOpen = false
}

// StartElement opens qname as a child of the current element, deferring
// the closing '>' so Attr can still be called.
func (x *Writer) StartElement(qname string) {
	x.closeStartTag()
	if len(x.hasChild) > 0 {
		x.hasChild[len(x.hasChild)-1] = true
	}
	x.indent()
	x.write("<" + qname)
	x.stack = append(x.stack, qname)
	x.hasChild = append(x.hasChild, false)
	x.pendingOpen = true
}

// Attr adds an attribute to the most recently started element. Must be
// called before any other Write*/StartElement/EndElement call on that
// element.
func (x *Writer) Attr(name, value string) {
	x.pendingAttrs = append(x.pendingAttrs, attr{name, value})
}

// EndElement closes the innermost open element, self-closing it if
// AutoEmpty is set and no content was written since it opened. The
// pre-close indent only fires when a child *element* was opened — text or
// raw content written directly into this element is never preceded by
// inserted whitespace, since that whitespace would become part of the
// content itself.
func (x *Writer) EndElement() {
	if len(x.stack) == 0 {
		return
	}
	qname := x.stack[len(x.stack)-1]
	empty := x.AutoEmpty && x.pendingOpen
	if x.pendingOpen {
		for _, a := range x.pendingAttrs {
			x.write(" " + a.name + "=\"" + EscapeAttr(a.value) + "\"")
		}
		x.pendingAttrs = nil
		x.pendingOpen = false
		if empty {
			x.write("/>")
			x.stack = x.stack[:len(x.stack)-1]
			x.hasChild = x.hasChild[:len(x.hasChild)-1]
			return
		}
		x.write(">")
	}
	hadChild := x.hasChild[len(x.hasChild)-1]
	x.stack = x.stack[:len(x.stack)-1]
	x.hasChild = x.hasChild[:len(x.hasChild)-1]
	if hadChild {
		x.indent()
	}
	x.write("</" + qname + ">")
}

// CData writes escaped character data as the current element's content.
// This never marks the element as having a child, so EndElement will not
// inject indentation whitespace between this text and the closing tag.
func (x *Writer) CData(text string) {
	x.closeStartTag()
	x.write(EscapeText(text))
}

// Raw writes text verbatim, with no escaping — used for XML-literal
// bodies and the XMP wrapper bytes. Like CData, this does not mark the
// element as having a child element.
func (x *Writer) Raw(text string) {
	x.closeStartTag()
	x.write(text)
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
var attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "\"", "&quot;", "\n", "&#10;")

// EscapeText escapes &, < and > for use as element character data.
func EscapeText(s string) string { return textEscaper.Replace(s) }

// EscapeAttr escapes &, <, >, " and newlines for use inside a
// double-quoted attribute value.
func EscapeAttr(s string) string { return attrEscaper.Replace(s) }

// Package xslt lowers an XSLT 2.0 stylesheet, read as a stream of XML
// events, into the token stream of the expression grammar.
package xslt

import (
	"strings"

	"github.com/jbowtie/xqlex/token"
	"github.com/jbowtie/xqlex/xmlsource"
)

const XSLT_NAMESPACE = "http://www.w3.org/1999/XSL/Transform"

// Returns true if the name is local in the XSLT namespace
func IsXsltName(name xmlsource.Name, local string) bool {
	return name.Local == local && name.Space == XSLT_NAMESPACE
}

// Returns true if the text is empty or whitespace only
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}

// element is a start tag captured before the reader moves on.
type element struct {
	name  xmlsource.Name
	attrs []xmlsource.Attr
	nss   []xmlsource.Namespace
	loc   token.Location
}

func (e *element) isXSLT() bool {
	return e.name.Space == XSLT_NAMESPACE
}

func (e *element) is(local string) bool {
	return IsXsltName(e.name, local)
}

// attrNS returns the value of the attribute space:local.
func (e *element) attrNS(space, local string) (string, bool) {
	for _, a := range e.attrs {
		if a.Name.Is(space, local) {
			return a.Value, true
		}
	}
	return "", false
}

// attr returns the value of the unqualified attribute local.
func (e *element) attr(local string) (string, bool) {
	return e.attrNS("", local)
}

func (e *element) has(local string) bool {
	_, ok := e.attr(local)
	return ok
}

func (e *element) value(local string) string {
	v, _ := e.attr(local)
	return v
}

// display names the element the way diagnostics quote it.
func (e *element) display() string {
	if e.isXSLT() {
		return "xsl:" + e.name.Local
	}
	return e.name.QName()
}

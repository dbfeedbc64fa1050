// Package diag carries the static errors and warnings found while a
// stylesheet is turned into tokens.
package diag

import (
	"fmt"

	"github.com/jbowtie/xqlex/token"
)

// Severity represents the severity level of a diagnostic
type Severity int

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	default:
		return "unknown"
	}
}

// Code is an XSLT 2.0 static error code.
type Code string

const (
	// element has content, attributes or a position it may not have
	XTSE0010 Code = "XTSE0010"
	// attribute value is not one of the permitted values
	XTSE0020 Code = "XTSE0020"
	// attribute not allowed on this element
	XTSE0090 Code = "XTSE0090"
	// malformed version attribute
	XTSE0110 Code = "XTSE0110"
	// text at the top level of a stylesheet module
	XTSE0120 Code = "XTSE0120"
	// top-level element in no namespace
	XTSE0130 Code = "XTSE0130"
	XTSE0170 Code = "XTSE0170"
	XTSE0190 Code = "XTSE0190"
	// template with neither match nor name
	XTSE0500 Code = "XTSE0500"
	// priority is not a decimal
	XTSE0530 Code = "XTSE0530"
	XTSE0620 Code = "XTSE0620"
	// function parameter with a default value
	XTSE0760 Code = "XTSE0760"
	// XSLT attribute on a literal result element
	XTSE0805 Code = "XTSE0805"
	XTSE0840 Code = "XTSE0840"
	XTSE0870 Code = "XTSE0870"
	XTSE0880 Code = "XTSE0880"
	// namespace constructor without a value
	XTSE0910 Code = "XTSE0910"
	XTSE0940 Code = "XTSE0940"
	XTSE1015 Code = "XTSE1015"
	// perform-sort without a sort key
	XTSE1040 Code = "XTSE1040"
	// both type and validation given
	XTSE1505 Code = "XTSE1505"
	// schema import without schema awareness
	XTSE1660 Code = "XTSE1660"
)

// Diagnostic is one error or warning attached to a source location.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Loc      token.Location
}

// Errorf creates a new error diagnostic
func Errorf(code Code, loc token.Location, format string, args ...interface{}) Diagnostic {
	return Diagnostic{Severity: Error, Code: code, Message: fmt.Sprintf(format, args...), Loc: loc}
}

// Warnf creates a new warning diagnostic
func Warnf(loc token.Location, format string, args ...interface{}) Diagnostic {
	return Diagnostic{Severity: Warning, Message: fmt.Sprintf(format, args...), Loc: loc}
}

func (d Diagnostic) Error() string {
	if d.Code == "" {
		return fmt.Sprintf("%v: %v: %s", d.Loc, d.Severity, d.Message)
	}
	return fmt.Sprintf("%v: [%s] %s", d.Loc, d.Code, d.Message)
}

// Reporter receives diagnostics as they are found.
type Reporter interface {
	Report(d Diagnostic)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(d Diagnostic)

func (f ReporterFunc) Report(d Diagnostic) { f(d) }

// Discard drops every diagnostic.
var Discard Reporter = ReporterFunc(func(Diagnostic) {})

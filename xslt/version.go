package xslt

import (
	"math/big"
	"strings"

	"github.com/jbowtie/xqlex/diag"
	"github.com/jbowtie/xqlex/token"
	"github.com/jbowtie/xqlex/xmlsource"
)

// ProcessingMode is how an element's version compares to 2.0.
type ProcessingMode int

const (
	Normal ProcessingMode = iota
	BackwardsCompatible
	ForwardsCompatible
)

func (m ProcessingMode) String() string {
	switch m {
	case BackwardsCompatible:
		return "BackwardsCompatible"
	case ForwardsCompatible:
		return "ForwardsCompatible"
	}
	return "Normal"
}

var (
	xslt10 = big.NewRat(1, 1)
	xslt20 = big.NewRat(2, 1)
)

// parseDecimal accepts the xs:decimal lexical space: an optional sign,
// digits with at most one period, at least one digit.
func parseDecimal(s string) (*big.Rat, bool) {
	s = strings.TrimSpace(s)
	body := strings.TrimLeft(s, "+-")
	if len(s)-len(body) > 1 {
		return nil, false
	}
	digits, dots := 0, 0
	for _, c := range body {
		switch {
		case c >= '0' && c <= '9':
			digits++
		case c == '.':
			dots++
		default:
			return nil, false
		}
	}
	if digits == 0 || dots > 1 {
		return nil, false
	}
	if strings.HasSuffix(body, ".") {
		s += "0"
	}
	if strings.HasPrefix(body, ".") {
		s = strings.Replace(s, ".", "0.", 1)
	}
	r, ok := new(big.Rat).SetString(s)
	return r, ok
}

// modeFor maps a version number to the processing mode it selects.
func modeFor(v *big.Rat) ProcessingMode {
	switch v.Cmp(xslt20) {
	case -1:
		return BackwardsCompatible
	case 1:
		return ForwardsCompatible
	}
	return Normal
}

// version handles the version attribute in namespace space. The mode it
// selects holds until the element ends. It returns the version when
// valid, for openVersion.
func (t *Tokenizer) version(el *element, space string) (string, bool) {
	v, ok := el.attrNS(space, "version")
	if !ok {
		return "", false
	}
	r, ok := parseDecimal(v)
	if !ok {
		t.errorf(diag.XTSE0110, "The value of the version attribute must be a decimal, not %q.", v)
		return "", false
	}
	if r.Cmp(xslt10) == 0 {
		t.warnf("Running an XSLT 1.0 stylesheet with a 2.0 processor.")
	}
	t.pushMode(modeFor(r))
	return strings.TrimSpace(v), true
}

// openVersion wraps what follows in xslt-version "v" { }.
func (t *Tokenizer) openVersion(to *queue, ex *exits, v string) {
	t.emit(to, token.XSLT_VERSION)
	t.emitValue(to, token.STRING_LITERAL, v)
	t.emit(to, token.LBRACE)
	ex.push(token.RBRACE)
}

// baseURI handles xml:base. On instructions the content is wrapped in
// base-uri "u" { }; on the stylesheet it becomes a prolog declaration.
func (t *Tokenizer) baseURI(el *element, to *queue, ex *exits, instruction bool) {
	base, ok := el.attrNS(xmlsource.XML_NAMESPACE, "base")
	if !ok {
		return
	}
	if instruction {
		t.emit(to, token.BASE_URI)
		t.emitValue(to, token.STRING_LITERAL, base)
		t.emit(to, token.LBRACE)
		ex.push(token.RBRACE)
		return
	}
	t.emit(to, token.DECLARE, token.BASE_URI, token.INTERNAL)
	t.emitValue(to, token.STRING_LITERAL, base)
	t.emit(to, token.SEMICOLON)
}

package xslt

import (
	"strings"

	"github.com/jbowtie/xqlex/diag"
	"github.com/jbowtie/xqlex/token"
	"github.com/jbowtie/xqlex/xmlsource"
)

// varKind is the role an xsl:variable, xsl:param or xsl:with-param
// plays, which decides how it is lowered.
type varKind int

const (
	variableInstruction varKind = iota
	variableDeclaration
	globalParameter
	templateParameter
	functionParameter
	withParam
)

// outsideDocumentElement reads up to the document element and lowers
// either the stylesheet prolog or a whole simplified stylesheet.
func (t *Tokenizer) outsideDocumentElement() {
	for {
		switch t.advance() {
		case xmlsource.StartElement:
			el := t.current()
			t.builtInTemplates()
			switch {
			case el.is("stylesheet") || el.is("transform"):
				t.stylesheet(el)
			case el.isXSLT():
				t.errorf(diag.XTSE0010, "The document element must be xsl:stylesheet, xsl:transform or a literal result element, not %s.", el.display())
				t.skipSubTree()
			default:
				t.simplifiedStylesheet(el)
			}
			return
		case xmlsource.EndDocument, xmlsource.Invalid:
			return
		}
	}
}

// builtInTemplates declares the templates every stylesheet starts with.
func (t *Tokenizer) builtInTemplates() {
	to := &t.sources
	// text and attributes copy their string value
	t.emit(to, token.DECLARE, token.TEMPLATE, token.MATCHES, token.LPAREN,
		token.TEXT, token.LPAREN, token.RPAREN, token.BAR, token.AT_SIGN, token.STAR,
		token.RPAREN, token.MODE)
	t.emitValue(to, token.NCNAME, "#all")
	t.emit(to, token.LBRACE, token.TEXT, token.LBRACE, token.DOT, token.RBRACE, token.RBRACE, token.SEMICOLON)

	// documents and elements recurse into their children
	t.emit(to, token.DECLARE, token.TEMPLATE, token.MATCHES, token.LPAREN,
		token.DOCUMENT_NODE, token.LPAREN, token.RPAREN, token.BAR, token.ELEMENT, token.LPAREN, token.RPAREN,
		token.RPAREN, token.MODE)
	t.emitValue(to, token.NCNAME, "#all")
	t.emit(to, token.LBRACE, token.CHILD, token.COLONCOLON, token.NODE, token.LPAREN, token.RPAREN,
		token.FOR_APPLY_TEMPLATE, token.APPLY_TEMPLATE, token.MODE)
	t.emitValue(to, token.NCNAME, "#current")
	t.emit(to, token.LPAREN, token.RPAREN, token.RBRACE, token.SEMICOLON)
}

func (t *Tokenizer) stylesheet(el *element) {
	to := &t.sources
	t.standardAttributes(el, true)
	t.baseURI(el, to, nil, false)
	t.version(el, "")
	t.validate(el)
	for _, ns := range el.nss {
		t.emit(to, token.DECLARE, token.NAMESPACE)
		t.emitValue(to, token.NCNAME, ns.Prefix)
		t.emit(to, token.G_EQ)
		t.emitValue(to, token.STRING_LITERAL, ns.URI)
		t.emit(to, token.INTERNAL, token.SEMICOLON)
	}
	t.pushState(InsideStylesheetModule)
}

// simplifiedStylesheet lowers a literal result element used as the
// whole stylesheet into a template matching the document node.
func (t *Tokenizer) simplifiedStylesheet(el *element) {
	to := &t.sources
	if _, ok := el.attrNS(XSLT_NAMESPACE, "version"); !ok {
		t.errorf(diag.XTSE0010, "A simplified stylesheet module must have an xsl:version attribute.")
	}
	t.emit(to, token.DECLARE, token.TEMPLATE, token.MATCHES, token.LPAREN, token.SLASH, token.RPAREN, token.LBRACE)
	var ex exits
	if v, ok := t.version(el, XSLT_NAMESPACE); ok {
		t.openVersion(to, &ex, v)
	}
	t.emit(to, token.CURRENT, token.LBRACE)
	t.pushState(InsideSequenceConstructor)
	var scopes exits
	t.literal(el, to, &scopes)
	t.flush(&scopes, to)
	t.popState()
	t.emit(to, token.RBRACE)
	t.flush(&ex, to)
	t.emit(to, token.RBRACE, token.SEMICOLON, token.APPLY_TEMPLATE, token.LPAREN, token.RPAREN)
}

// insideStylesheetModule lowers the next top-level declaration, or
// closes the module with the query body when the stylesheet ends.
func (t *Tokenizer) insideStylesheetModule() {
	to := &t.sources
	for {
		switch ev := t.advance(); ev {
		case xmlsource.StartElement:
			el := t.current()
			switch {
			case el.isXSLT():
				t.declaration(el, to)
			case el.name.Space == "":
				t.errorf(diag.XTSE0130, "Top-level element %s must be in a namespace.", el.display())
				t.skipSubTree()
			default:
				// user data
				t.skipSubTree()
			}
			return
		case xmlsource.Characters:
			if IsBlank(t.r.Text()) {
				continue
			}
			t.errorf(diag.XTSE0120, "Text nodes are not allowed at the top level of a stylesheet.")
		case xmlsource.EndElement:
			t.popState()
			t.emit(to, token.APPLY_TEMPLATE, token.LPAREN, token.RPAREN)
			return
		case xmlsource.EndDocument, xmlsource.Invalid:
			return
		}
	}
}

func (t *Tokenizer) declaration(el *element, to *queue) {
	t.standardAttributes(el, true)
	v, hasVersion := t.version(el, "")
	t.validate(el)

	switch el.name.Local {
	case "template":
		t.template(el, to, v, hasVersion)
	case "function":
		t.function(el, to, v, hasVersion)
	case "variable":
		t.variable(el, to, variableDeclaration)
	case "param":
		t.variable(el, to, globalParameter)
	case "import-schema":
		t.errorf(diag.XTSE1660, "Schema import is not supported by a basic XSLT processor.")
		t.skipSubTree()
	case "strip-space", "preserve-space", "include", "import":
		if t.skipSubTree() {
			t.errorf(diag.XTSE0010, "Element %s must be empty.", el.display())
		}
	case "output", "key", "attribute-set", "character-map", "decimal-format", "namespace-alias":
		t.skipSubTree()
	default:
		if t.mode() != ForwardsCompatible {
			t.errorf(diag.XTSE0010, "Element %s is not allowed at the top level of a stylesheet.", el.display())
		}
		t.skipSubTree()
	}
}

// modeName queues a mode, which is a QName or one of the #-tokens.
func (t *Tokenizer) modeName(to *queue, mode string) {
	if strings.Contains(mode, ":") {
		t.emitValue(to, token.QNAME, mode)
		return
	}
	t.emitValue(to, token.NCNAME, mode)
}

func (t *Tokenizer) template(el *element, to *queue, v string, hasVersion bool) {
	match, hasMatch := el.attr("match")
	name, hasName := el.attr("name")
	if !hasMatch && !hasName {
		t.errorf(diag.XTSE0500, "A template must have a match or a name attribute.")
	}
	if !hasMatch && (el.has("mode") || el.has("priority")) {
		t.errorf(diag.XTSE0500, "A template without a match attribute cannot have mode or priority.")
	}

	t.emit(to, token.DECLARE, token.TEMPLATE)
	if hasName {
		t.emit(to, token.NAME)
		t.qname(to, strings.TrimSpace(name))
	}
	if hasMatch {
		t.emit(to, token.MATCHES)
		t.expr(to, el, match)
	}
	if mode, ok := el.attr("mode"); ok {
		modes := strings.Fields(mode)
		if len(modes) == 0 {
			t.errorf(diag.XTSE0500, "The mode attribute must list at least one mode.")
		} else {
			t.emit(to, token.MODE)
			for i, m := range modes {
				if i > 0 {
					t.emit(to, token.COMMA)
				}
				t.modeName(to, m)
			}
		}
	}
	if priority, ok := el.attr("priority"); ok {
		if _, ok := parseDecimal(priority); ok {
			t.emit(to, token.PRIORITY)
			t.emitValue(to, token.STRING_LITERAL, strings.TrimSpace(priority))
		} else {
			t.errorf(diag.XTSE0530, "The priority of a template must be a decimal, not %q.", priority)
		}
	}

	t.emit(to, token.LPAREN)
	t.params(to, templateParameter)
	t.emit(to, token.RPAREN)
	if as, ok := el.attr("as"); ok {
		t.emit(to, token.AS)
		t.seqType(to, el, as)
	}

	t.emit(to, token.LBRACE)
	var ex exits
	t.baseURI(el, to, &ex, true)
	if hasVersion {
		t.openVersion(to, &ex, v)
	}
	t.emit(to, token.CURRENT, token.LBRACE)
	t.sequenceConstructor(to, true)
	t.emit(to, token.RBRACE)
	t.flush(&ex, to)
	t.emit(to, token.RBRACE, token.SEMICOLON)
}

func (t *Tokenizer) function(el *element, to *queue, v string, hasVersion bool) {
	t.emit(to, token.DECLARE, token.FUNCTION, token.INTERNAL)
	t.qname(to, strings.TrimSpace(el.value("name")))
	t.yesNo(el, "override")

	t.emit(to, token.LPAREN)
	t.params(to, functionParameter)
	t.emit(to, token.RPAREN)
	if as, ok := el.attr("as"); ok {
		t.emit(to, token.AS)
		t.seqType(to, el, as)
	}

	t.emit(to, token.LBRACE)
	var ex exits
	t.baseURI(el, to, &ex, true)
	if hasVersion {
		t.openVersion(to, &ex, v)
	}
	t.sequenceConstructor(to, true)
	t.flush(&ex, to)
	t.emit(to, token.RBRACE, token.SEMICOLON)
}

// params lowers the leading xsl:param children of a template or
// function and stops at the first other child.
func (t *Tokenizer) params(to *queue, kind varKind) {
	queued := false
	for {
		switch ev := t.advance(); ev {
		case xmlsource.StartElement:
			el := t.current()
			if !el.is("param") {
				t.unread()
				return
			}
			t.validate(el)
			if queued {
				t.emit(to, token.COMMA)
			}
			queued = true
			if kind == functionParameter {
				if el.has("select") {
					t.errorf(diag.XTSE0760, "A function parameter cannot have a default value.")
				}
				if el.has("required") {
					t.errorf(diag.XTSE0010, "A function parameter cannot have a required attribute.")
				}
				if el.has("tunnel") {
					t.errorf(diag.XTSE0010, "A function parameter cannot be a tunnel parameter.")
				}
			} else if t.yesNo(el, "tunnel") {
				t.emit(to, token.TUNNEL)
			}
			t.variable(el, to, kind)
		case xmlsource.Characters:
			if t.skipWhitespace(t.r.Text()) {
				continue
			}
			t.unread()
			return
		case xmlsource.EndElement:
			t.unread()
			return
		case xmlsource.EndDocument, xmlsource.Invalid:
			return
		}
	}
}

// variable lowers a variable binding or parameter, consuming its
// content.
func (t *Tokenizer) variable(el *element, to *queue, kind varKind) {
	switch kind {
	case variableInstruction:
		t.emit(to, token.LET, token.INTERNAL)
	case variableDeclaration, globalParameter:
		t.emit(to, token.DECLARE, token.VARIABLE, token.INTERNAL)
	}
	t.emit(to, token.DOLLAR)
	t.qname(to, strings.TrimSpace(el.value("name")))
	as, hasAs := el.attr("as")
	if hasAs {
		t.emit(to, token.AS)
		t.seqType(to, el, as)
	}

	if kind == functionParameter {
		if t.skipSubTree() {
			t.errorf(diag.XTSE0760, "A function parameter cannot have a default value.")
		}
		return
	}

	hasSelect := el.has("select")
	required := (kind == globalParameter || kind == templateParameter) && t.yesNo(el, "required")
	var content queue
	t.selectOrBody(el, diag.XTSE0620, true, &content, false)

	if kind == globalParameter {
		t.emit(to, token.EXTERNAL)
	}
	switch {
	case required:
		if len(content) > 0 {
			t.errorf(diag.XTSE0010, "A required parameter cannot have a default value.")
		}
	case len(content) > 0:
		t.emit(to, token.ASSIGN)
		if hasAs || hasSelect {
			t.emit(to, token.LPAREN)
			*to = append(*to, content...)
			t.emit(to, token.RPAREN)
		} else {
			t.emit(to, token.DOCUMENT, token.INTERNAL, token.LBRACE)
			*to = append(*to, content...)
			t.emit(to, token.RBRACE)
		}
	case !hasAs:
		t.emit(to, token.ASSIGN)
		t.emitValue(to, token.STRING_LITERAL, "")
	case kind == variableInstruction || kind == variableDeclaration:
		t.emit(to, token.ASSIGN, token.LPAREN, token.RPAREN)
	}

	switch kind {
	case variableInstruction:
		t.emit(to, token.RETURN)
	case variableDeclaration, globalParameter:
		t.emit(to, token.SEMICOLON)
	}
}

// selectOrBody lowers the select attribute of el or, without one, its
// sequence constructor. Having both, or neither when emptyAllowed is
// false, is reported with code.
func (t *Tokenizer) selectOrBody(el *element, code diag.Code, emptyAllowed bool, to *queue, emptyOnEmpty bool) {
	if sel, ok := el.attr("select"); ok {
		t.expr(to, el, sel)
		if t.skipSubTree() {
			t.errorf(code, "Element %s cannot have both a select attribute and content.", el.display())
		}
		return
	}
	if !t.sequenceConstructor(to, emptyOnEmpty) && !emptyAllowed {
		t.errorf(code, "Element %s must have either a select attribute or content.", el.display())
	}
}

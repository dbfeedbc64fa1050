package xslt

import (
	"strings"

	"github.com/jbowtie/xqlex/diag"
	"github.com/jbowtie/xqlex/token"
	"github.com/jbowtie/xqlex/xmlsource"
)

// sequenceConstructor lowers the children of the current element up to
// its end tag as a comma separated sequence. It reports whether any item
// was written; an empty constructor is written as ( ) if emptyOnEmpty.
func (t *Tokenizer) sequenceConstructor(to *queue, emptyOnEmpty bool) bool {
	t.pushState(InsideSequenceConstructor)
	defer t.popState()

	var (
		text    strings.Builder
		written bool // an item needs a comma before the next one
		wrote   bool
		pending exits // closers owed by xsl:variable, after the last sibling
	)
	// whitespace is judged on the merged text node, so CDATA sections
	// and text split by comments count as one
	flushText := func() {
		if text.Len() == 0 {
			return
		}
		if t.skipWhitespace(text.String()) {
			text.Reset()
			return
		}
		if written {
			t.emit(to, token.COMMA)
		}
		written, wrote = true, true
		t.emit(to, token.TEXT, token.LBRACE)
		t.emitValue(to, token.STRING_LITERAL, text.String())
		t.emit(to, token.RBRACE)
		text.Reset()
	}

	for {
		switch t.advance() {
		case xmlsource.Characters:
			text.WriteString(t.r.Text())
		case xmlsource.StartElement:
			flushText()
			el := t.current()
			if el.is("fallback") {
				t.skipSubTree()
				continue
			}
			if written {
				t.emit(to, token.COMMA)
			}
			written, wrote = true, true

			var ex exits
			t.baseURI(el, to, &ex, true)
			if !el.isXSLT() {
				if v, ok := t.version(el, XSLT_NAMESPACE); ok {
					t.openVersion(to, &ex, v)
				}
				t.literal(el, to, &ex)
				t.flush(&ex, to)
				continue
			}

			if v, ok := t.version(el, ""); ok {
				t.openVersion(to, &ex, v)
			}
			t.standardAttributes(el, true)
			t.validate(el)
			t.namespaces(el, to, &ex)
			if el.is("variable") {
				// the following siblings are the scope of the binding
				t.variable(el, to, variableInstruction)
				t.emit(to, token.LPAREN)
				pending = append(pending, ex...)
				pending.push(token.RPAREN)
				written = false
				continue
			}
			t.instruction(el, to)
			t.flush(&ex, to)
		case xmlsource.EndElement:
			flushText()
			if !written && emptyOnEmpty {
				t.emptySequence(to)
			}
			t.flush(&pending, to)
			return wrote
		case xmlsource.EndDocument, xmlsource.Invalid:
			return wrote
		}
	}
}

// namespaces opens a scope for each namespace declared on el.
func (t *Tokenizer) namespaces(el *element, to *queue, ex *exits) {
	for _, ns := range el.nss {
		t.emit(to, token.DECLARE, token.NAMESPACE)
		t.emitValue(to, token.NCNAME, ns.Prefix)
		t.emit(to, token.G_EQ)
		t.emitValue(to, token.STRING_LITERAL, ns.URI)
		t.emit(to, token.LBRACE)
		ex.push(token.RBRACE)
	}
}

// literal lowers a literal result element to a computed element
// constructor.
func (t *Tokenizer) literal(el *element, to *queue, ex *exits) {
	t.standardAttributes(el, false)
	t.validationAttributes(el, true)
	t.namespaces(el, to, ex)

	t.emit(to, token.ELEMENT, token.INTERNAL)
	t.qname(to, el.name.QName())
	t.emit(to, token.LBRACE)
	for _, a := range el.attrs {
		if a.Name.Space == XSLT_NAMESPACE {
			continue
		}
		t.emit(to, token.ATTRIBUTE, token.INTERNAL)
		t.qname(to, a.Name.QName())
		t.emit(to, token.LBRACE)
		t.avt(to, el, a.Value)
		t.emit(to, token.RBRACE, token.COMMA)
	}
	t.sequenceConstructor(to, true)
	t.emit(to, token.RBRACE)
}

// instruction lowers an XSLT instruction other than xsl:variable.
func (t *Tokenizer) instruction(el *element, to *queue) {
	switch el.name.Local {
	case "if":
		t.emit(to, token.IF, token.LPAREN)
		t.expr(to, el, el.value("test"))
		t.emit(to, token.RPAREN, token.THEN, token.LPAREN)
		t.sequenceConstructor(to, true)
		t.emit(to, token.RPAREN, token.ELSE, token.LPAREN, token.RPAREN)
	case "choose":
		t.choose(to)
	case "value-of":
		t.yesNo(el, "disable-output-escaping")
		t.emit(to, token.TEXT, token.LBRACE)
		t.simpleContent(el, diag.XTSE0870, to, !el.has("separator") && t.mode() == BackwardsCompatible)
		t.emit(to, token.RBRACE)
	case "sequence":
		t.expr(to, el, el.value("select"))
		t.fallbackOnly()
	case "text":
		t.yesNo(el, "disable-output-escaping")
		t.text(to)
	case "call-template":
		t.emit(to, token.CALL_TEMPLATE)
		t.qname(to, strings.TrimSpace(el.value("name")))
		t.emit(to, token.LPAREN)
		t.withParams(to)
		t.emit(to, token.RPAREN)
	case "for-each":
		t.expr(to, el, el.value("select"))
		t.emit(to, token.MAP)
		var sorts queue
		t.sorting(&sorts, false)
		if len(sorts) > 0 {
			t.emit(to, token.SORT)
			*to = append(*to, sorts...)
			t.emit(to, token.RETURN)
		}
		t.emit(to, token.CURRENT, token.LBRACE)
		t.sequenceConstructor(to, true)
		t.emit(to, token.RBRACE)
		if len(sorts) > 0 {
			t.emit(to, token.END_SORT)
		}
	case "apply-templates":
		t.applyTemplates(el, to)
	case "comment":
		t.emit(to, token.COMMENT, token.INTERNAL, token.LBRACE)
		t.selectOrBody(el, diag.XTSE0940, true, to, true)
		t.emit(to, token.RBRACE)
	case "copy-of":
		t.validationAttributes(el, false)
		t.expr(to, el, el.value("select"))
		t.fallbackOnly()
	case "copy":
		t.validationAttributes(el, false)
		t.copy(to)
	case "processing-instruction":
		t.emit(to, token.PROCESSING_INSTRUCTION, token.LBRACE)
		t.avt(to, el, el.value("name"))
		t.emit(to, token.RBRACE, token.LBRACE)
		t.selectOrBody(el, diag.XTSE0880, true, to, true)
		t.emit(to, token.RBRACE)
	case "document":
		t.validationAttributes(el, false)
		t.emit(to, token.DOCUMENT, token.INTERNAL, token.LBRACE)
		t.sequenceConstructor(to, true)
		t.emit(to, token.RBRACE)
	case "element":
		t.validationAttributes(el, false)
		t.emit(to, token.ELEMENT, token.INTERNAL, token.LBRACE)
		t.computedName(el, to)
		t.emit(to, token.RBRACE, token.LBRACE)
		t.sequenceConstructor(to, true)
		t.emit(to, token.RBRACE)
	case "attribute":
		t.validationAttributes(el, false)
		t.emit(to, token.ATTRIBUTE, token.INTERNAL, token.LBRACE)
		t.computedName(el, to)
		t.emit(to, token.RBRACE, token.LBRACE)
		t.simpleContent(el, diag.XTSE0840, to, false)
		t.emit(to, token.RBRACE)
	case "namespace":
		t.emit(to, token.NAMESPACE, token.LBRACE)
		t.avt(to, el, el.value("name"))
		t.emit(to, token.RBRACE, token.LBRACE)
		t.selectOrBody(el, diag.XTSE0910, false, to, true)
		t.emit(to, token.RBRACE)
	case "perform-sort":
		t.performSort(el, to)
	case "message":
		t.yesNo(el, "terminate")
		t.skipSubTree()
		t.emptySequence(to)
	case "analyze-string", "number", "next-match", "apply-imports", "for-each-group":
		t.warnf("Instruction %s is not supported; it yields the empty sequence.", el.display())
		t.skipSubTree()
		t.emptySequence(to)
	case "result-document":
		t.validationAttributes(el, false)
		t.sequenceConstructor(to, true)
	default:
		if _, known := descriptions[el.name.Local]; known || t.mode() != ForwardsCompatible {
			t.errorf(diag.XTSE0010, "Element %s is not allowed at this location.", el.display())
			t.skipSubTree()
			t.emptySequence(to)
			return
		}
		t.fallbacks(to)
	}
}

// text lowers the content of xsl:text, which is kept as written.
func (t *Tokenizer) text(to *queue) {
	var text strings.Builder
	for {
		switch ev := t.advance(); ev {
		case xmlsource.Characters:
			text.WriteString(t.r.Text())
		case xmlsource.StartElement:
			t.unexpected(ev)
		case xmlsource.Comment, xmlsource.ProcessingInstruction:
		default:
			t.emit(to, token.TEXT, token.LBRACE)
			t.emitValue(to, token.STRING_LITERAL, text.String())
			t.emit(to, token.RBRACE)
			return
		}
	}
}

// simpleContent lowers the value of xsl:value-of or xsl:attribute: the
// items joined into one string.
func (t *Tokenizer) simpleContent(el *element, code diag.Code, to *queue, firstOnly bool) {
	t.emit(to, token.INTERNAL_NAME)
	t.emitValue(to, token.NCNAME, "generic-string-join")
	t.emit(to, token.LPAREN, token.LPAREN)
	t.selectOrBody(el, code, true, to, true)
	t.emit(to, token.RPAREN)
	if firstOnly {
		t.emit(to, token.LBRACKET)
		t.emitValue(to, token.INTEGER, "1")
		t.emit(to, token.RBRACKET)
	}
	t.emit(to, token.COMMA)
	switch sep, ok := el.attr("separator"); {
	case ok:
		t.avt(to, el, sep)
	case el.has("select"):
		t.emitValue(to, token.STRING_LITERAL, " ")
	default:
		t.emitValue(to, token.STRING_LITERAL, "")
	}
	t.emit(to, token.RPAREN)
}

// computedName queues the name of xsl:element or xsl:attribute.
func (t *Tokenizer) computedName(el *element, to *queue) {
	ns, ok := el.attr("namespace")
	if !ok {
		t.avt(to, el, el.value("name"))
		return
	}
	t.emitValue(to, token.NCNAME, "QName")
	t.emit(to, token.LPAREN)
	t.avt(to, el, ns)
	t.emit(to, token.COMMA)
	t.avt(to, el, el.value("name"))
	t.emit(to, token.RPAREN)
}

// copy lowers xsl:copy as a shallow copy of the context item wrapped
// around the lowered body.
func (t *Tokenizer) copy(to *queue) {
	t.emit(to, token.LET, token.INTERNAL, token.DOLLAR)
	t.emitValue(to, token.NCNAME, "copy-content")
	t.emit(to, token.ASSIGN, token.LPAREN)
	t.sequenceConstructor(to, false)
	t.emit(to, token.RPAREN, token.RETURN)

	t.emit(to, token.IF, token.LPAREN, token.SELF, token.COLONCOLON, token.ELEMENT, token.LPAREN, token.RPAREN, token.RPAREN,
		token.THEN, token.LPAREN, token.ELEMENT, token.INTERNAL, token.LBRACE)
	t.emitValue(to, token.NCNAME, "node-name")
	t.emit(to, token.LPAREN, token.DOT, token.RPAREN, token.RBRACE, token.LBRACE, token.DOLLAR)
	t.emitValue(to, token.NCNAME, "copy-content")
	t.emit(to, token.RBRACE, token.RPAREN)

	t.emit(to, token.ELSE, token.IF, token.LPAREN, token.SELF, token.COLONCOLON, token.DOCUMENT_NODE, token.LPAREN, token.RPAREN, token.RPAREN,
		token.THEN, token.LPAREN, token.DOCUMENT, token.INTERNAL, token.LBRACE, token.DOLLAR)
	t.emitValue(to, token.NCNAME, "copy-content")
	t.emit(to, token.RBRACE, token.RPAREN)

	t.emit(to, token.ELSE, token.LPAREN, token.DOT, token.RPAREN)
}

// choose lowers xsl:choose to a chain of conditionals.
func (t *Tokenizer) choose(to *queue) {
	hasWhen, hasOtherwise := false, false
	for {
		switch ev := t.advance(); ev {
		case xmlsource.StartElement:
			el := t.current()
			switch {
			case hasOtherwise && (el.is("when") || el.is("otherwise")):
				t.errorf(diag.XTSE0010, "xsl:otherwise must be the last child of xsl:choose.")
				t.skipSubTree()
			case el.is("when"):
				t.standardAttributes(el, true)
				t.validate(el)
				t.emit(to, token.IF, token.LPAREN)
				t.expr(to, el, el.value("test"))
				t.emit(to, token.RPAREN, token.THEN, token.LPAREN)
				t.sequenceConstructor(to, true)
				t.emit(to, token.RPAREN, token.ELSE)
				hasWhen = true
			case el.is("otherwise"):
				if !hasWhen {
					t.errorf(diag.XTSE0010, "xsl:choose must have an xsl:when before xsl:otherwise.")
				}
				t.standardAttributes(el, true)
				t.validate(el)
				t.emit(to, token.LPAREN)
				t.sequenceConstructor(to, true)
				t.emit(to, token.RPAREN)
				hasOtherwise = true
			default:
				t.unexpected(ev)
			}
		case xmlsource.Characters:
			// whitespace here is never significant
			if !IsBlank(t.r.Text()) {
				t.unexpected(ev)
			}
		case xmlsource.EndElement:
			if !hasWhen && !hasOtherwise {
				t.errorf(diag.XTSE0010, "xsl:choose must have at least one xsl:when.")
			}
			if !hasOtherwise {
				t.emptySequence(to)
			}
			return
		case xmlsource.EndDocument, xmlsource.Invalid:
			return
		}
	}
}

func (t *Tokenizer) applyTemplates(el *element, to *queue) {
	if sel, ok := el.attr("select"); ok {
		t.expr(to, el, sel)
	} else {
		t.emit(to, token.CHILD, token.COLONCOLON, token.NODE, token.LPAREN, token.RPAREN)
	}
	t.emit(to, token.FOR_APPLY_TEMPLATE)
	var sorts queue
	t.sorting(&sorts, true)
	if len(sorts) > 0 {
		t.emit(to, token.SORT)
		*to = append(*to, sorts...)
		t.emit(to, token.RETURN)
	}
	t.emit(to, token.APPLY_TEMPLATE)
	if mode, ok := el.attr("mode"); ok {
		t.emit(to, token.MODE)
		t.modeName(to, strings.TrimSpace(mode))
	}
	t.emit(to, token.LPAREN)
	t.withParams(to)
	t.emit(to, token.RPAREN)
	if len(sorts) > 0 {
		t.emit(to, token.END_SORT)
	}
}

// withParams lowers the xsl:with-param children up to the end of the
// current element.
func (t *Tokenizer) withParams(to *queue) {
	queued := false
	for {
		switch ev := t.advance(); ev {
		case xmlsource.StartElement:
			el := t.current()
			if !el.is("with-param") {
				t.unexpected(ev)
				continue
			}
			t.validate(el)
			if queued {
				t.emit(to, token.COMMA)
			}
			queued = true
			if t.yesNo(el, "tunnel") {
				t.emit(to, token.TUNNEL)
			}
			t.variable(el, to, withParam)
		case xmlsource.Characters:
			if !t.skipWhitespace(t.r.Text()) {
				t.unexpected(ev)
			}
		case xmlsource.EndElement, xmlsource.EndDocument, xmlsource.Invalid:
			return
		}
	}
}

// fallbackOnly consumes the content of an element that may only hold
// xsl:fallback, which is never needed.
func (t *Tokenizer) fallbackOnly() {
	for {
		switch ev := t.advance(); ev {
		case xmlsource.StartElement:
			if IsXsltName(t.r.Name(), "fallback") {
				t.skipSubTree()
			} else {
				t.unexpected(ev)
			}
		case xmlsource.Characters:
			if !t.skipWhitespace(t.r.Text()) {
				t.unexpected(ev)
			}
		case xmlsource.EndElement, xmlsource.EndDocument, xmlsource.Invalid:
			return
		}
	}
}

// fallbacks lowers an instruction this processor does not know to the
// bodies of its xsl:fallback children.
func (t *Tokenizer) fallbacks(to *queue) {
	t.emit(to, token.LPAREN)
	written := false
	for {
		switch t.advance() {
		case xmlsource.StartElement:
			if !IsXsltName(t.r.Name(), "fallback") {
				t.skipSubTree()
				continue
			}
			if written {
				t.emit(to, token.COMMA)
			}
			written = true
			t.sequenceConstructor(to, true)
		case xmlsource.EndElement, xmlsource.EndDocument, xmlsource.Invalid:
			t.emit(to, token.RPAREN)
			return
		}
	}
}

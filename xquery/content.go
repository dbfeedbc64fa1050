package xquery

import (
	"strings"

	"github.com/jbowtie/xqlex/token"
)

// Direct XML constructors: tags, attribute values, element content,
// comments, processing instructions and pragmas.

func (l *Tokenizer) scanStartTag() token.Token {
	if l.peek(-1) == '<' {
		if isSpace(l.cur()) {
			return l.errorAt(l.pos)
		}
	} else if l.skipRawWhitespace() {
		return l.unexpectedEOF()
	}
	if l.atEnd() {
		return l.unexpectedEOF()
	}
	l.start = l.pos

	switch l.cur() {
	case '/':
		if l.peek(1) != '>' {
			return l.errorAt(l.pos)
		}
		l.pos += 2
		if l.scanOnly {
			return l.tok(token.POSITION_SET)
		}
		l.popState()
		return l.tok(token.QUICK_TAG_END)
	case '>':
		if l.scanOnly {
			return l.changeState(token.POSITION_SET, StartTag, 1)
		}
		return l.changeState(token.G_GT, ElementContent, 1)
	case '=':
		return l.advance(token.G_EQ, 1)
	case '\'':
		return l.changeState(token.APOS, AposAttributeContent, 1)
	case '"':
		return l.changeState(token.QUOTE, QuotAttributeContent, 1)
	}
	return l.scanNameOrQName()
}

func (l *Tokenizer) scanAttributeContent() token.Token {
	sep, closing := '\'', token.APOS
	if l.state == QuotAttributeContent {
		sep, closing = '"', token.QUOTE
	}
	if l.scanOnly {
		return l.skipAttribute(sep, closing)
	}

	var b strings.Builder
	for {
		if l.atEnd() {
			if b.Len() == 0 {
				return l.unexpectedEOF()
			}
			return l.value(token.STRING_LITERAL, b.String())
		}

		switch c := l.cur(); c {
		case sep:
			if l.pos+1 == len(l.data) {
				return l.unexpectedEOF()
			}
			if l.peek(1) == sep {
				b.WriteRune(sep)
				l.pos += 2
				continue
			}
			if next := l.peek(1); !isSpace(next) && next != '/' && next != '>' {
				// attributes must be separated by whitespace
				return l.errorAt(l.pos + 1)
			}
			if b.Len() == 0 {
				return l.changeState(closing, StartTag, 1)
			}
			return l.value(token.STRING_LITERAL, b.String())
		case '{':
			if l.pos+1 == len(l.data) {
				return l.unexpectedEOF()
			}
			if l.peek(1) != '{' {
				if b.Len() > 0 {
					return l.value(token.STRING_LITERAL, b.String())
				}
				l.pushState()
				return l.changeState(token.LBRACE, Default, 1)
			}
			l.pos++
			b.WriteByte('{')
		case '}':
			if l.pos+1 == len(l.data) {
				return l.unexpectedEOF()
			}
			if l.peek(1) != '}' {
				return l.errorAt(l.pos)
			}
			l.pos++
			b.WriteByte('}')
		case '&':
			amp := l.pos
			r, ok := l.charRef()
			if !ok {
				return l.errorAt(amp)
			}
			b.WriteRune(r)
		case '<':
			if b.Len() == 0 {
				return l.errorAt(l.pos)
			}
			return l.value(token.STRING_LITERAL, b.String())
		case '\r':
			// attribute-value normalization on top of line-end normalization
			if l.peek(1) == '\n' {
				l.pos++
			}
			b.WriteByte(' ')
		case '\n', '\t':
			b.WriteByte(' ')
		default:
			b.WriteRune(c)
		}
		l.pos++
	}
}

// skipAttribute passes over an attribute value without interpreting
// it, keeping track of enclosed expressions and the string literals
// inside them so that a quote there does not end the value.
func (l *Tokenizer) skipAttribute(sep rune, closing token.Kind) token.Token {
	other := '"'
	if sep == '"' {
		other = '\''
	}
	start := l.pos
	depth := 0
	inLiteral := true
	var outer []bool

	var b strings.Builder
	for {
		if l.atEnd() {
			return l.unexpectedEOF()
		}
		switch c := l.cur(); c {
		case sep:
			inLiteral = !inLiteral
			if l.peek(1) == sep {
				b.WriteRune(c)
				l.pos += 2
				continue
			}
			if l.pos == start {
				return l.changeState(closing, StartTag, 1)
			}
			if depth == 0 {
				return l.value(token.STRING_LITERAL, b.String())
			}
			b.WriteRune(c)
			l.pos++
		case other:
			b.WriteRune(c)
			l.pos++
			if l.cur() == other {
				l.pos++
			}
			inLiteral = !inLiteral
		case '&':
			amp := l.pos
			r, ok := l.charRef()
			if !ok {
				return l.errorAt(amp)
			}
			b.WriteRune(r)
			l.pos++
		case '{':
			b.WriteRune(c)
			if l.peek(1) == '{' {
				l.pos += 2
				continue
			}
			l.pos++
			depth++
			outer = append(outer, inLiteral)
			inLiteral = false
		case '}':
			if inLiteral && l.peek(1) == '}' {
				b.WriteRune(c)
				l.pos += 2
				continue
			}
			if depth == 0 {
				return l.errorAt(l.pos)
			}
			b.WriteRune(c)
			l.pos++
			depth--
			inLiteral = outer[len(outer)-1]
			outer = outer[:len(outer)-1]
		default:
			b.WriteRune(c)
			l.pos++
		}
	}
}

func (l *Tokenizer) scanElementContent() token.Token {
	var b strings.Builder
	// character references and CDATA sections make the text significant
	// even when it is all whitespace
	mayBeWS := true
	text := func() token.Token {
		if mayBeWS {
			return l.value(token.STRING_LITERAL, b.String())
		}
		return l.value(token.NON_BOUNDARY_WS, b.String())
	}

	for {
		if l.atEnd() {
			return l.unexpectedEOF()
		}

		switch c := l.cur(); c {
		case '<':
			if b.Len() > 0 && l.peek(2) != '[' {
				return text()
			}
			l.pos++
			if l.atEnd() {
				return l.unexpectedEOF()
			}
			ahead := l.cur()
			switch {
			case isSpace(ahead):
				return l.errorAt(l.pos)
			case ahead == '/':
				if l.pos+1 == len(l.data) {
					return l.unexpectedEOF()
				}
				if isSpace(l.peek(1)) {
					return l.errorAt(l.pos + 1)
				}
				return l.changeState(token.BEGIN_END_TAG, EndTag, 1)
			case isNameStartChar(ahead):
				l.pushState()
				return l.changeState(token.G_LT, StartTag, 0)
			case l.ahead("!--"):
				l.pushState()
				return l.changeState(token.COMMENT_START, XMLComment, 3)
			case l.ahead("![CDATA["):
				mayBeWS = false
				l.pos += 8
				end := l.indexOf("]]>")
				if end < 0 {
					return l.unexpectedEOF()
				}
				b.WriteString(normalizeEOL(string(l.data[l.pos:end])))
				l.pos = end + 2
			case ahead == '?':
				l.pushState()
				return l.changeState(token.PI_START, ProcessingInstructionName, 1)
			default:
				return l.tok(token.G_LT)
			}
		case '&':
			amp := l.pos
			r, ok := l.charRef()
			if !ok {
				return l.errorAt(amp)
			}
			b.WriteRune(r)
			mayBeWS = false
		case '{':
			if l.pos+1 == len(l.data) {
				return l.unexpectedEOF()
			}
			if l.peek(1) != '{' {
				if b.Len() > 0 {
					return text()
				}
				l.pushState()
				return l.changeState(token.LBRACE, Default, 1)
			}
			l.pos++
			b.WriteByte('{')
		case '}':
			if l.pos+1 == len(l.data) {
				return l.unexpectedEOF()
			}
			if l.peek(1) != '}' {
				return l.errorAt(l.pos)
			}
			l.pos++
			b.WriteByte('}')
		case '\r':
			if l.peek(1) == '\n' {
				l.pos++
			}
			b.WriteByte('\n')
		default:
			b.WriteRune(c)
		}
		l.pos++
	}
}

func (l *Tokenizer) scanPITarget() token.Token {
	if l.atEnd() {
		return l.unexpectedEOF()
	}
	start := l.pos
	for {
		l.pos++
		if l.atEnd() {
			return l.unexpectedEOF()
		}
		if isSpace(l.cur()) || l.cur() == '?' {
			l.state = ProcessingInstructionContent
			return l.value(token.PI_TARGET, string(l.data[start:l.pos]))
		}
	}
}

func (l *Tokenizer) scanPIContent() token.Token {
	if l.skipRawWhitespace() {
		return l.unexpectedEOF()
	}
	l.start = l.pos
	end := l.indexOf("?>")
	if end < 0 {
		return l.unexpectedEOF()
	}
	content := string(l.data[l.pos:end])
	l.pos = end + 2
	l.popState()
	return l.value(token.PI_CONTENT, normalizeEOL(content))
}

func (l *Tokenizer) scanXMLComment() token.Token {
	end := l.indexOf("--")
	if end < 0 {
		return l.unexpectedEOF()
	}
	content := string(l.data[l.pos:end])
	l.pos = end + 2
	l.popState()
	if l.cur() != '>' {
		// "--" may only close a comment
		return l.errorAt(end)
	}
	l.pos++
	return l.value(token.COMMENT_CONTENT, normalizeEOL(content))
}

func (l *Tokenizer) scanPragmaContent() token.Token {
	hasWS := !l.atEnd() && isSpace(l.cur())
	if l.skipRawWhitespace() {
		return l.unexpectedEOF()
	}
	l.start = l.pos
	if l.ahead("#)") {
		return l.changeState(token.PRAGMA_END, Default, 2)
	}
	if !hasWS {
		// pragma content must be separated from the name
		return l.errorAt(l.pos)
	}
	end := l.indexOf("#)")
	if end < 0 {
		return l.unexpectedEOF()
	}
	content := string(l.data[l.pos:end])
	l.pos = end
	return l.value(token.STRING_LITERAL, normalizeEOL(content))
}

// scanTemplateText reads the literal parts of an attribute value
// template and opens its {expr} islands.
func (l *Tokenizer) scanTemplateText() token.Token {
	var b strings.Builder
	for !l.atEnd() {
		switch c := l.cur(); c {
		case '{':
			if l.peek(1) == '{' {
				b.WriteByte('{')
				l.pos += 2
				continue
			}
			if b.Len() > 0 {
				return l.value(token.STRING_LITERAL, b.String())
			}
			l.pushState()
			return l.changeState(token.LBRACE, Default, 1)
		case '}':
			if l.peek(1) == '}' {
				b.WriteByte('}')
				l.pos += 2
				continue
			}
			return l.errorAt(l.pos)
		default:
			b.WriteRune(c)
			l.pos++
		}
	}
	if b.Len() > 0 {
		return l.value(token.STRING_LITERAL, b.String())
	}
	return l.end()
}

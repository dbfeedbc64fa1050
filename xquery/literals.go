package xquery

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jbowtie/xqlex/token"
)

const digits = "0123456789"

var entities = map[string]rune{
	"lt":   '<',
	"gt":   '>',
	"amp":  '&',
	"quot": '"',
	"apos": '\'',
}

// scanString reads a quoted literal. A doubled delimiter stands for
// itself, character references are decoded and line ends normalized.
func (l *Tokenizer) scanString() token.Token {
	open := l.pos
	delim := l.cur()
	l.pos++

	var b strings.Builder
	for ; !l.atEnd(); l.pos++ {
		switch c := l.cur(); c {
		case '&':
			amp := l.pos
			r, ok := l.charRef()
			if !ok {
				return l.errorAt(amp)
			}
			b.WriteRune(r)
		case delim:
			if l.peek(1) != delim {
				l.pos++
				return l.value(token.STRING_LITERAL, b.String())
			}
			b.WriteRune(delim)
			l.pos++
		case '\r':
			if l.peek(1) == '\n' {
				l.pos++
			}
			b.WriteByte('\n')
		default:
			b.WriteRune(c)
		}
	}
	return l.errorAt(open)
}

// charRef decodes the reference starting at the current '&' and leaves
// the position on its ';'.
func (l *Tokenizer) charRef() (rune, bool) {
	end := -1
	for i := l.pos + 1; i < len(l.data); i++ {
		if l.data[i] == ';' {
			end = i
			break
		}
	}
	if end < 0 {
		return 0, false
	}
	ref := string(l.data[l.pos+1 : end])
	l.pos = end

	if r, ok := entities[ref]; ok {
		return r, true
	}
	if !strings.HasPrefix(ref, "#") {
		return 0, false
	}
	base := 10
	num := ref[1:]
	if strings.HasPrefix(num, "x") {
		base = 16
		num = num[1:]
	}
	n, err := strconv.ParseUint(num, base, 32)
	if err != nil {
		return 0, false
	}
	r := rune(n)
	if r == 0 || !utf8.ValidRune(r) {
		return 0, false
	}
	return r, true
}

// scanNumber reads an integer, decimal or double literal.
func (l *Tokenizer) scanNumber() token.Token {
	l.state = Operator
	start := l.pos
	kind := token.INTEGER
	l.acceptRun(digits)
	if l.accept(".") {
		l.acceptRun(digits)
		kind = token.DECIMAL
	}
	if l.accept("eE") {
		l.accept("+-")
		if l.acceptRun(digits) == 0 {
			return l.errorAt(start)
		}
		kind = token.DOUBLE
	}
	if isNameStartChar(l.cur()) {
		return l.errorAt(start)
	}
	return l.value(kind, string(l.data[start:l.pos]))
}

// normalizeEOL maps CRLF and lone CR to LF.
func normalizeEOL(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	return strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(s)
}

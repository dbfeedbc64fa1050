package xquery

import (
	"sort"
	"strings"

	"github.com/jbowtie/xqlex/token"
)

const eof = -1

// Tokenizer scans XQuery and XPath 2.0 text. Which token a run of
// characters forms depends on the lexical state, so the tokenizer keeps
// a current state, a stack of states to return to after nested
// constructs, and a queue of tokens already decided by lookahead.
type Tokenizer struct {
	data     []rune
	pos      int
	start    int // offset of the token being scanned
	state    State
	states   []State
	pending  []token.Token
	scanOnly bool
	lines    []int // offsets at which each line starts
	base     token.Location
}

// Option configures a Tokenizer.
type Option func(*Tokenizer)

// WithLocation offsets every reported location. The line applies to all
// lines of the text, the column only to its first line.
func WithLocation(loc token.Location) Option {
	return func(l *Tokenizer) {
		if !loc.IsZero() {
			l.base = loc
		}
	}
}

// WithState sets the state scanning starts in.
func WithState(s State) Option {
	return func(l *Tokenizer) {
		l.state = s
	}
}

// New returns a Tokenizer over text.
func New(text string, opts ...Option) *Tokenizer {
	l := &Tokenizer{
		data: []rune(text),
		base: token.Location{Line: 1, Column: 1},
	}
	for _, opt := range opts {
		opt(l)
	}
	l.lines = lineStarts(l.data)
	return l
}

// Tokens scans text to the end, or to the first ERROR, and returns
// every token including the terminating one.
func Tokens(text string, opts ...Option) []token.Token {
	return token.Drain(New(text, opts...))
}

// lineStarts indexes the line breaks of data; CRLF and a lone CR each
// count as a single break.
func lineStarts(data []rune) []int {
	lines := []int{0}
	for i, r := range data {
		switch r {
		case '\n':
			lines = append(lines, i+1)
		case '\r':
			if i+1 < len(data) && data[i+1] == '\n' {
				continue
			}
			lines = append(lines, i+1)
		}
	}
	return lines
}

func (l *Tokenizer) locate(off int) token.Location {
	i := sort.Search(len(l.lines), func(i int) bool { return l.lines[i] > off }) - 1
	col := off - l.lines[i] + 1
	if i == 0 {
		col += l.base.Column - 1
	}
	return token.Location{Line: l.base.Line + i, Column: col}
}

// State returns the current lexical state.
func (l *Tokenizer) State() State {
	return l.state
}

// Depth returns the number of states waiting on the stack.
func (l *Tokenizer) Depth() int {
	return len(l.states)
}

// Next returns the next token. Queued lookahead tokens are handed out
// before any more text is scanned.
func (l *Tokenizer) Next() token.Token {
	if len(l.pending) > 0 {
		t := l.pending[0]
		l.pending = l.pending[1:]
		switch t.Kind {
		case token.MODULE, token.SCHEMA, token.COPY_NAMESPACES:
			l.state = NamespaceKeyword
		case token.VERSION:
			l.state = VersionDecl
		case token.AS, token.OF:
			l.state = ItemType
		default:
			if isOperatorKeyword(t.Kind) {
				l.state = Default
			}
		}
		return t
	}
	l.start = l.pos
	t := l.scan()
	if t.Loc.IsZero() {
		t.Loc = l.locate(l.start)
	}
	return t
}

// BeginRawScan switches to scan-only mode, in which attribute values
// are skipped unparsed and the end of a start tag yields POSITION_SET.
func (l *Tokenizer) BeginRawScan() token.Position {
	l.scanOnly = true
	return token.Position(l.pos)
}

// ResumeFrom leaves scan-only mode and continues scanning at pos.
func (l *Tokenizer) ResumeFrom(pos token.Position) {
	l.scanOnly = false
	l.pos = int(pos)
}

// queue appends a lookahead token located at off.
func (l *Tokenizer) queue(t token.Token, off int) {
	t.Loc = l.locate(off)
	l.pending = append(l.pending, t)
}

func (l *Tokenizer) pushState() {
	l.states = append(l.states, l.state)
}

func (l *Tokenizer) pushStateOf(s State) {
	l.states = append(l.states, s)
}

// popState restores the last pushed state. An unbalanced pop is ignored.
func (l *Tokenizer) popState() {
	if n := len(l.states); n > 0 {
		l.state = l.states[n-1]
		l.states = l.states[:n-1]
	}
}

func (l *Tokenizer) atEnd() bool {
	return l.pos >= len(l.data)
}

func (l *Tokenizer) cur() rune {
	return l.peek(0)
}

// peek returns the rune n places ahead without consuming anything.
func (l *Tokenizer) peek(n int) rune {
	if i := l.pos + n; i >= 0 && i < len(l.data) {
		return l.data[i]
	}
	return eof
}

// ahead reports whether s follows the current position.
func (l *Tokenizer) ahead(s string) bool {
	i := l.pos
	for _, r := range s {
		if i >= len(l.data) || l.data[i] != r {
			return false
		}
		i++
	}
	return true
}

// indexOf returns the offset of the next occurrence of s, or -1.
func (l *Tokenizer) indexOf(s string) int {
	pat := []rune(s)
outer:
	for i := l.pos; i+len(pat) <= len(l.data); i++ {
		for j, r := range pat {
			if l.data[i+j] != r {
				continue outer
			}
		}
		return i
	}
	return -1
}

// accept consumes the next rune if it's from the valid set.
func (l *Tokenizer) accept(valid string) bool {
	if !l.atEnd() && strings.ContainsRune(valid, l.cur()) {
		l.pos++
		return true
	}
	return false
}

// acceptRun consumes a run of runes from the valid set.
func (l *Tokenizer) acceptRun(valid string) int {
	n := 0
	for l.accept(valid) {
		n++
	}
	return n
}

func (l *Tokenizer) tok(k token.Kind) token.Token {
	return token.Token{Kind: k}
}

func (l *Tokenizer) value(k token.Kind, v string) token.Token {
	return token.Token{Kind: k, Value: v}
}

func (l *Tokenizer) advance(k token.Kind, n int) token.Token {
	l.pos += n
	return l.tok(k)
}

func (l *Tokenizer) changeState(k token.Kind, s State, n int) token.Token {
	l.pos += n
	l.state = s
	return l.tok(k)
}

func (l *Tokenizer) errorAt(off int) token.Token {
	return token.Token{Kind: token.ERROR, Loc: l.locate(off)}
}

// end marks the end of the text; it is only clean when no nested
// construct is still open.
func (l *Tokenizer) end() token.Token {
	if len(l.states) > 0 {
		return l.unexpectedEOF()
	}
	return token.Token{Kind: token.EOF, Loc: l.locate(l.pos)}
}

func (l *Tokenizer) unexpectedEOF() token.Token {
	return token.Token{Kind: token.UNEXPECTED_EOF, Loc: l.locate(l.pos)}
}

// nameError reports a name that could not be scanned.
func (l *Tokenizer) nameError() token.Token {
	if l.atEnd() {
		return l.end()
	}
	return l.errorAt(l.pos)
}

// skipWhitespace consumes whitespace and (: comments :). ok is false
// when the text ended or a comment was left open; t then holds the
// token to hand out instead.
func (l *Tokenizer) skipWhitespace() (t token.Token, ok bool) {
	for !l.atEnd() {
		switch l.cur() {
		case ' ', '\t', '\n', '\r':
			l.pos++
		case '(':
			if l.peek(1) != ':' {
				return t, true
			}
			open := l.pos
			l.pos += 2
			if !l.skipComment() {
				return l.errorAt(open), false
			}
		default:
			return t, true
		}
	}
	return l.end(), false
}

// skipComment consumes the body of a comment whose "(:" has been read,
// nested comments included.
func (l *Tokenizer) skipComment() bool {
	for !l.atEnd() {
		switch {
		case l.ahead(":)"):
			l.pos += 2
			return true
		case l.ahead("(:"):
			l.pos += 2
			if !l.skipComment() {
				return false
			}
		default:
			l.pos++
		}
	}
	return false
}

// skipRawWhitespace consumes whitespace only and reports whether the
// text ended.
func (l *Tokenizer) skipRawWhitespace() bool {
	for !l.atEnd() && isSpace(l.cur()) {
		l.pos++
	}
	return l.atEnd()
}

// colonColonAhead returns the length of the whitespace before a "::",
// or -1 if no "::" follows.
func (l *Tokenizer) colonColonAhead() int {
	for i := l.pos; i < len(l.data); i++ {
		switch l.data[i] {
		case ' ', '\t', '\n', '\r':
		case ':':
			if i+1 < len(l.data) && l.data[i+1] == ':' {
				return i - l.pos
			}
			return -1
		default:
			return -1
		}
	}
	return -1
}

func (l *Tokenizer) scan() token.Token {
	if l.state.skipsWhitespace() {
		if t, ok := l.skipWhitespace(); !ok {
			return t
		}
		l.start = l.pos
	}

	switch l.state {
	case NamespaceKeyword, WhitespaceDecl:
		return l.scanNamespaceKeyword()
	case NamespaceDecl:
		return l.scanNamespaceDecl()
	case Axis, AfterAxisSeparator, Default, Operator:
		return l.scanExpression()
	case VarName:
		if l.cur() == '$' {
			return l.advance(token.DOLLAR, 1)
		}
		l.state = Operator
		return l.scanNameOrQName()
	case ItemType:
		return l.scanItemType()
	case KindTest:
		return l.scanKindTest()
	case KindTestForPI:
		switch l.cur() {
		case ')':
			l.popState()
			return l.advance(token.RPAREN, 1)
		case '\'', '"':
			return l.scanString()
		}
		name, ok := l.scanNCName()
		if !ok {
			return l.nameError()
		}
		return l.value(token.NCNAME, name)
	case OccurrenceIndicator:
		switch l.cur() {
		case '?':
			return l.changeState(token.QUESTION, Operator, 1)
		case '*':
			return l.changeState(token.STAR, Operator, 1)
		case '+':
			return l.changeState(token.PLUS, Operator, 1)
		}
		l.state = Operator
		return l.scan()
	case VersionDecl:
		return l.scanVersionDecl()
	case StartTag:
		return l.scanStartTag()
	case AposAttributeContent, QuotAttributeContent:
		return l.scanAttributeContent()
	case ElementContent:
		return l.scanElementContent()
	case ProcessingInstructionName:
		return l.scanPITarget()
	case ProcessingInstructionContent:
		return l.scanPIContent()
	case EndTag:
		if l.skipRawWhitespace() {
			return l.unexpectedEOF()
		}
		l.start = l.pos
		if l.cur() == '>' {
			l.popState()
			return l.advance(token.G_GT, 1)
		}
		return l.scanNameOrQName()
	case XMLComment:
		return l.scanXMLComment()
	case Pragma:
		if l.skipRawWhitespace() {
			return l.unexpectedEOF()
		}
		l.start = l.pos
		l.state = PragmaContent
		return l.scanNameOrQName()
	case PragmaContent:
		return l.scanPragmaContent()
	case AttributeValueTemplate:
		return l.scanTemplateText()
	}
	return l.errorAt(l.pos)
}

// scanExpression handles the states in which operands and operators
// are read. They share most punctuation and differ in how names are
// classified.
func (l *Tokenizer) scanExpression() token.Token {
	if l.state == Axis && l.ahead("::") {
		return l.changeState(token.COLONCOLON, AfterAxisSeparator, 2)
	}
	if l.atEnd() {
		return l.end()
	}

	switch l.cur() {
	case '=':
		return l.changeState(token.G_EQ, Default, 1)
	case '-':
		return l.changeState(token.MINUS, Default, 1)
	case '+':
		return l.changeState(token.PLUS, Default, 1)
	case '[':
		return l.changeState(token.LBRACKET, Default, 1)
	case ']':
		return l.changeState(token.RBRACKET, Operator, 1)
	case ',':
		return l.changeState(token.COMMA, Default, 1)
	case ';':
		return l.changeState(token.SEMICOLON, Default, 1)
	case '$':
		return l.changeState(token.DOLLAR, VarName, 1)
	case '|':
		return l.changeState(token.BAR, Default, 1)
	case '?':
		return l.changeState(token.QUESTION, Operator, 1)
	case ')':
		return l.changeState(token.RPAREN, Operator, 1)
	case '@':
		return l.changeState(token.AT_SIGN, Default, 1)
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return l.scanNumber()
	case '.':
		switch {
		case l.peek(1) == '.':
			return l.changeState(token.DOTDOT, Operator, 2)
		case isDigit(l.peek(1)):
			return l.scanNumber()
		}
		return l.changeState(token.DOT, Operator, 1)
	case '\'', '"':
		l.state = Operator
		return l.scanString()
	case '(':
		if l.peek(1) == '#' {
			return l.changeState(token.PRAGMA_START, Pragma, 2)
		}
		return l.changeState(token.LPAREN, Default, 1)
	case '*':
		if l.peek(1) == ':' {
			l.pos += 2
			local, ok := l.scanNCName()
			if !ok {
				return l.errorAt(l.start)
			}
			l.state = Operator
			return l.value(token.ANY_PREFIX, local)
		}
		// a wildcard is a complete operand
		if l.state == Operator {
			return l.changeState(token.STAR, Default, 1)
		}
		return l.changeState(token.STAR, Operator, 1)
	case ':':
		switch l.peek(1) {
		case '=':
			return l.changeState(token.ASSIGN, Default, 2)
		case ':':
			return l.changeState(token.COLONCOLON, Default, 2)
		}
		return l.errorAt(l.pos)
	case '!':
		if l.peek(1) == '=' {
			return l.changeState(token.G_NE, Default, 2)
		}
		return l.errorAt(l.pos)
	case '<':
		return l.scanLess()
	case '>':
		switch l.peek(1) {
		case '=':
			return l.changeState(token.G_GE, Default, 2)
		case '>':
			return l.changeState(token.FOLLOWS, Default, 2)
		}
		return l.changeState(token.G_GT, Default, 1)
	case '/':
		if l.peek(1) == '/' {
			return l.changeState(token.SLASHSLASH, Default, 2)
		}
		return l.changeState(token.SLASH, Default, 1)
	case '{':
		l.pushStateOf(Operator)
		return l.changeState(token.LBRACE, Default, 1)
	case '}':
		l.popState()
		return l.advance(token.RBRACE, 1)
	}

	name, ok := l.scanNCName()
	if !ok {
		return l.nameError()
	}
	kw, isKw := lookupKeyword(name)
	if l.state == Operator {
		if !isKw {
			return l.value(token.NCNAME, name)
		}
		return l.operatorKeyword(kw)
	}
	return l.operand(name, kw, isKw)
}

// scanLess separates comparisons from direct constructors.
func (l *Tokenizer) scanLess() token.Token {
	switch {
	case l.peek(1) == '=':
		return l.changeState(token.G_LE, Default, 2)
	case l.peek(1) == '<':
		return l.changeState(token.PRECEDES, Default, 2)
	case l.peek(1) == '?':
		l.pushStateOf(Operator)
		return l.changeState(token.PI_START, ProcessingInstructionName, 2)
	case l.ahead("<!--"):
		l.pushStateOf(Operator)
		return l.changeState(token.COMMENT_START, XMLComment, 4)
	case l.state == Operator:
		return l.changeState(token.G_LT, Default, 1)
	}
	if isNameStartChar(l.peek(1)) {
		// a direct element constructor
		l.pushStateOf(Operator)
	}
	return l.changeState(token.G_LT, StartTag, 1)
}

// operatorKeyword classifies a keyword read where an operator is
// expected.
func (l *Tokenizer) operatorKeyword(kw token.Kind) token.Token {
	switch {
	case kw == token.DEFAULT || kw == token.ASCENDING || kw == token.DESCENDING:
		l.state = Operator
	case kw == token.RETURN:
		l.state = Default
	case isPhraseKeyword(kw):
		return l.phrase(kw)
	case kw != token.EMPTY:
		// "empty" stays in Operator so "greatest" or "least" follows
		l.state = Default
	}
	if kw == token.AS || kw == token.CASE {
		l.state = ItemType
	}
	return l.tok(kw)
}

// phrase reads the second word of a phrase keyword such as "cast as"
// or "order by" and queues it.
func (l *Tokenizer) phrase(kw token.Kind) token.Token {
	save := l.pos
	if t, ok := l.skipWhitespace(); !ok {
		if t.Kind == token.ERROR {
			return t
		}
		l.pos = save
		return l.tok(kw)
	}
	start := l.pos
	name, ok := l.scanNCName()
	kw2, isKw2 := lookupKeyword(name)
	if !ok || !isKw2 {
		l.pos = start
		return l.tok(kw)
	}
	switch {
	case kw == token.TREAT && kw2 == token.AS:
		l.state = ItemType
	case kw == token.CAST, kw == token.CASTABLE && kw2 == token.AS, kw2 == token.BY:
		l.state = Default
	}
	l.queue(l.tok(kw2), start)
	return l.tok(kw)
}

// operand classifies a name read where an operand is expected: a path
// step, a function name, an axis, or the keyword opening a declaration,
// a constructor or a binding.
func (l *Tokenizer) operand(name string, kw token.Kind, isKw bool) token.Token {
	if n := l.colonColonAhead(); n >= 0 {
		l.pos += n
	}

	if l.cur() == ':' {
		switch l.peek(1) {
		case '=':
			return l.value(token.NCNAME, name)
		case '*':
			l.pos += 2
			l.state = Operator
			return l.value(token.ANY_LOCAL_NAME, name)
		case ':':
			l.state = Axis
			if isKw {
				return l.tok(kw)
			}
			return l.value(token.NCNAME, name)
		}
		l.pos++
		local, ok := l.scanNCName()
		if !ok {
			l.pos--
			return l.value(token.NCNAME, name)
		}
		l.state = Operator
		return l.value(token.QNAME, name+":"+local)
	}

	if !isKw || isOperatorKeyword(kw) {
		l.state = Operator
		return l.value(token.NCNAME, name)
	}

	if t, ok := l.skipWhitespace(); !ok {
		if t.Kind == token.ERROR {
			return t
		}
		l.state = Operator
		return l.value(token.NCNAME, name)
	}

	if isTypeToken(kw) || kw == token.TYPESWITCH || kw == token.ORDERED ||
		kw == token.UNORDERED || kw == token.IF {
		switch l.cur() {
		case '(':
			switch {
			case isTypeToken(kw) && kw != token.DOCUMENT:
				l.queue(l.tok(token.LPAREN), l.pos)
				l.pos++
				l.pushStateOf(Operator)
				if kw == token.PROCESSING_INSTRUCTION {
					l.state = KindTestForPI
				} else {
					l.state = KindTest
				}
				return l.tok(kw)
			case kw == token.TYPESWITCH || kw == token.IF:
				return l.tok(kw)
			}
			// a function call
			return l.value(token.NCNAME, name)
		case '{':
			l.queue(l.tok(token.LBRACE), l.pos)
			l.pos++
			l.pushStateOf(Operator)
			return l.tok(kw)
		default:
			if isNameStartChar(l.cur()) {
				// "element return" is a name test followed by return,
				// "element return {" a computed constructor
				save := l.pos
				name2 := l.scanNameOrQName()
				if name2.Kind == token.ERROR {
					return name2
				}
				t, ok := l.skipWhitespace()
				if ok && l.cur() == '{' {
					l.queue(name2, save)
					return l.tok(kw)
				}
				if !ok && t.Kind == token.ERROR {
					return t
				}
				l.pos = save
				l.state = Operator
				return l.value(token.NCNAME, name)
			}
		}
	}

	switch {
	case l.cur() == '$':
		l.state = VarName
		return l.tok(kw)
	case l.cur() == '(':
		return l.value(token.NCNAME, name)
	case l.cur() == '{' && kw == token.VALIDATE:
		return l.tok(kw)
	case !isNameStartChar(l.cur()):
		l.state = Operator
		return l.value(token.NCNAME, name)
	}

	start := l.pos
	name2, _ := l.scanNCName()
	kw2, isKw2 := lookupKeyword(name2)
	if !isKw2 {
		// two names in a row are only valid as keywords
		l.pos = start
		l.state = Operator
		return l.value(token.NCNAME, name)
	}

	switch kw {
	case token.DECLARE:
		return l.declaration(kw2, start)
	case token.XQUERY:
		l.queue(l.tok(kw2), start)
		if kw2 == token.VERSION {
			l.state = NamespaceDecl
			return l.tok(kw)
		}
	case token.IMPORT:
		l.queue(l.tok(kw2), start)
		if kw2 == token.SCHEMA || kw2 == token.MODULE {
			l.state = NamespaceKeyword
			return l.tok(kw)
		}
	case token.VALIDATE:
		l.queue(l.tok(kw2), start)
		if kw2 == token.LAX || kw2 == token.STRICT {
			return l.tok(kw)
		}
	default:
		l.queue(l.tok(kw2), start)
	}
	l.state = Operator
	return l.value(token.NCNAME, name)
}

// declaration handles "declare" followed by the keyword kw2 at start.
func (l *Tokenizer) declaration(kw2 token.Kind, start int) token.Token {
	l.queue(l.tok(kw2), start)
	switch kw2 {
	case token.VARIABLE, token.FUNCTION, token.OPTION:
		l.state = Default
	case token.COPY_NAMESPACES, token.ORDERING:
		l.state = NamespaceKeyword
	case token.CONSTRUCTION:
		l.state = Operator
	case token.NAMESPACE, token.BASE_URI:
		l.state = NamespaceDecl
	case token.BOUNDARY_SPACE:
		l.state = WhitespaceDecl
	case token.DEFAULT:
		t, ok := l.skipWhitespace()
		if !ok {
			l.pending = append(l.pending, t)
			return l.tok(token.DECLARE)
		}
		at := l.pos
		name3, ok := l.scanNCName()
		if !ok {
			l.pending = append(l.pending, l.nameError())
			return l.tok(token.DECLARE)
		}
		kw3, isKw3 := lookupKeyword(name3)
		if !isKw3 {
			l.queue(l.value(token.NCNAME, name3), at)
			return l.tok(token.DECLARE)
		}
		l.queue(l.tok(kw3), at)
		if kw3 == token.ORDER {
			l.state = Operator
		} else {
			l.state = NamespaceDecl
		}
	default:
		l.state = Default
		return l.value(token.NCNAME, token.DECLARE.String())
	}
	return l.tok(token.DECLARE)
}

func (l *Tokenizer) scanItemType() token.Token {
	switch l.cur() {
	case '(':
		return l.changeState(token.LPAREN, KindTest, 1)
	case '$':
		return l.changeState(token.DOLLAR, VarName, 1)
	}
	t := l.scanNameOrQName()
	switch t.Kind {
	case token.QNAME:
		l.state = OccurrenceIndicator
		return t
	case token.NCNAME:
		if kw, ok := lookupKeyword(t.Value); ok {
			l.pushStateOf(OccurrenceIndicator)
			return l.tok(kw)
		}
		l.state = OccurrenceIndicator
		return t
	}
	return t
}

func (l *Tokenizer) scanKindTest() token.Token {
	switch l.cur() {
	case ')':
		l.popState()
		return l.advance(token.RPAREN, 1)
	case '(':
		return l.advance(token.LPAREN, 1)
	case ',':
		return l.advance(token.COMMA, 1)
	case '*':
		return l.advance(token.STAR, 1)
	case '?':
		return l.advance(token.QUESTION, 1)
	case '\'', '"':
		return l.scanString()
	}
	t := l.scanNameOrQName()
	if t.Kind != token.NCNAME && t.Kind != token.QNAME {
		return t
	}
	if ws, ok := l.skipWhitespace(); !ok && ws.Kind == token.ERROR {
		return ws
	}
	if l.cur() == '(' {
		if kw, ok := lookupKeyword(t.Value); ok {
			l.pushStateOf(KindTest)
			return l.tok(kw)
		}
	}
	return t
}

func (l *Tokenizer) scanVersionDecl() token.Token {
	switch l.cur() {
	case '\'', '"':
		return l.scanString()
	case ';':
		return l.changeState(token.SEMICOLON, Default, 1)
	}
	name, ok := l.scanNCName()
	if !ok {
		return l.nameError()
	}
	if kw, ok := lookupKeyword(name); ok {
		l.state = Default
		return l.tok(kw)
	}
	return l.value(token.NCNAME, name)
}

func (l *Tokenizer) scanNamespaceKeyword() token.Token {
	switch l.cur() {
	case ',':
		return l.advance(token.COMMA, 1)
	case '\'', '"':
		l.state = NamespaceDecl
		return l.scanString()
	}
	name, ok := l.scanNCName()
	if !ok {
		return l.nameError()
	}
	kw, ok := lookupKeyword(name)
	if !ok {
		return l.value(token.NCNAME, name)
	}
	switch kw {
	case token.INHERIT, token.NO_INHERIT, token.ORDERED, token.UNORDERED, token.STRIP:
		l.state = Default
	case token.NAMESPACE:
		l.state = NamespaceDecl
	case token.PRESERVE:
		if l.state != NamespaceKeyword {
			l.state = Default
		}
	}
	return l.tok(kw)
}

func (l *Tokenizer) scanNamespaceDecl() token.Token {
	switch l.cur() {
	case '=':
		return l.advance(token.G_EQ, 1)
	case ';':
		return l.changeState(token.SEMICOLON, Default, 1)
	case '\'', '"':
		return l.scanString()
	}
	name, ok := l.scanNCName()
	if !ok {
		return l.nameError()
	}
	if t, ok := l.skipWhitespace(); !ok && t.Kind == token.ERROR {
		return t
	}
	if kw, ok := lookupKeyword(name); ok && (l.cur() == '\'' || l.cur() == '"') {
		l.state = Default
		return l.tok(kw)
	}
	return l.value(token.NCNAME, name)
}

// scanNCName consumes a name without a prefix.
func (l *Tokenizer) scanNCName() (string, bool) {
	start := l.pos
	if !isNameStartChar(l.cur()) {
		return "", false
	}
	l.pos++
	for !l.atEnd() && isNameChar(l.cur()) {
		l.pos++
	}
	return string(l.data[start:l.pos]), true
}

// scanNameOrQName consumes a name with an optional prefix.
func (l *Tokenizer) scanNameOrQName() token.Token {
	start := l.pos
	prefix, ok := l.scanNCName()
	if !ok {
		return l.nameError()
	}
	if l.cur() != ':' || l.peek(1) == '=' {
		return l.value(token.NCNAME, prefix)
	}
	l.pos++
	if _, ok := l.scanNCName(); !ok {
		return l.nameError()
	}
	return l.value(token.QNAME, string(l.data[start:l.pos]))
}

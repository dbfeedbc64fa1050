package xslt

import (
	"github.com/jbowtie/xqlex/diag"
	"github.com/jbowtie/xqlex/namepool"
	"github.com/jbowtie/xqlex/token"
	"github.com/jbowtie/xqlex/xmlsource"
)

// ProcessingState is where in the stylesheet the tokenizer is reading.
type ProcessingState int

const (
	OutsideDocumentElement ProcessingState = iota
	InsideStylesheetModule
	InsideSequenceConstructor
)

func (s ProcessingState) String() string {
	switch s {
	case InsideStylesheetModule:
		return "InsideStylesheetModule"
	case InsideSequenceConstructor:
		return "InsideSequenceConstructor"
	}
	return "OutsideDocumentElement"
}

type modeFrame struct {
	depth int
	mode  ProcessingMode
}

type spaceFrame struct {
	depth    int
	preserve bool
}

// Tokenizer walks a stylesheet and produces the tokens of the
// equivalent query. Tokens are produced lazily: each time the queue of
// sources runs dry, one more piece of the stylesheet is lowered.
type Tokenizer struct {
	r        xmlsource.Reader
	sources  queue
	states   []ProcessingState
	modes    []modeFrame
	spaces   []spaceFrame
	depth    int
	held     bool
	done     bool
	pool     *namepool.Pool
	reporter diag.Reporter
	base     token.Location
}

// Option configures a Tokenizer.
type Option func(*Tokenizer)

// WithLocation offsets every reported location, as for an embedded
// stylesheet. The column applies to the first line only.
func WithLocation(loc token.Location) Option {
	return func(t *Tokenizer) {
		if !loc.IsZero() {
			t.base = loc
		}
	}
}

// WithNamePool interns element and attribute names in pool.
func WithNamePool(pool *namepool.Pool) Option {
	return func(t *Tokenizer) {
		t.pool = pool
	}
}

// WithReporter sends diagnostics to rep instead of discarding them.
func WithReporter(rep diag.Reporter) Option {
	return func(t *Tokenizer) {
		t.reporter = rep
	}
}

// New returns a Tokenizer reading the stylesheet from r.
func New(r xmlsource.Reader, opts ...Option) *Tokenizer {
	t := &Tokenizer{
		r:        r,
		states:   []ProcessingState{OutsideDocumentElement},
		pool:     namepool.New(),
		reporter: diag.Discard,
		base:     token.Location{Line: 1, Column: 1},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Next returns the next token. EOF is returned once the whole document
// has been lowered, UNEXPECTED_EOF if it ended early.
func (t *Tokenizer) Next() token.Token {
	for {
		for len(t.sources) > 0 {
			tok := t.sources[0].Next()
			switch {
			case tok.Kind.IsEnd():
				t.sources = t.sources[1:]
				if tok.Kind == token.EOF {
					continue
				}
			case tok.Kind == token.ERROR:
				t.sources = t.sources[1:]
			}
			return tok
		}
		if t.done || t.r.AtEnd() {
			return t.end()
		}
		t.pull()
	}
}

func (t *Tokenizer) end() token.Token {
	t.done = true
	if t.r.Event() == xmlsource.EndDocument && t.state() == OutsideDocumentElement {
		return token.New(token.EOF, t.loc())
	}
	return token.New(token.UNEXPECTED_EOF, t.loc())
}

// pull lowers the next piece of the stylesheet into the queue.
func (t *Tokenizer) pull() {
	switch t.state() {
	case OutsideDocumentElement:
		t.outsideDocumentElement()
	case InsideStylesheetModule:
		t.insideStylesheetModule()
	default:
		// sequence constructors are lowered whole; getting here means
		// the reader stopped inside one
		t.done = true
	}
}

// BeginRawScan has nothing to skip in a stylesheet.
func (t *Tokenizer) BeginRawScan() token.Position {
	return 0
}

func (t *Tokenizer) ResumeFrom(pos token.Position) {}

// State returns the current processing state.
func (t *Tokenizer) State() ProcessingState {
	return t.state()
}

func (t *Tokenizer) state() ProcessingState {
	return t.states[len(t.states)-1]
}

func (t *Tokenizer) pushState(s ProcessingState) {
	t.states = append(t.states, s)
}

func (t *Tokenizer) popState() {
	if len(t.states) > 1 {
		t.states = t.states[:len(t.states)-1]
	}
}

// advance moves the reader to the next event, keeping the element depth
// and the scoped frames in step. An event given back by unread is
// returned again first.
func (t *Tokenizer) advance() xmlsource.Event {
	if t.held {
		t.held = false
		return t.r.Event()
	}
	if t.r.AtEnd() {
		return t.r.Event()
	}
	if t.r.Event() == xmlsource.EndElement {
		t.leaveElement()
	}
	ev := t.r.Next()
	switch ev {
	case xmlsource.StartElement:
		t.depth++
		name := t.r.Name()
		t.pool.Allocate(name.Space, name.Local)
		for _, a := range t.r.Attrs() {
			t.pool.Allocate(a.Name.Space, a.Name.Local)
		}
	case xmlsource.Invalid:
		msg := "The document is not well-formed."
		if err := t.r.Err(); err != nil {
			msg = err.Error()
		}
		t.errorf(diag.XTSE0010, "%s", msg)
	}
	return ev
}

// unread makes the next advance return the current event again.
func (t *Tokenizer) unread() {
	t.held = true
}

func (t *Tokenizer) leaveElement() {
	for len(t.modes) > 0 && t.modes[len(t.modes)-1].depth >= t.depth {
		t.modes = t.modes[:len(t.modes)-1]
	}
	for len(t.spaces) > 0 && t.spaces[len(t.spaces)-1].depth >= t.depth {
		t.spaces = t.spaces[:len(t.spaces)-1]
	}
	t.depth--
}

// current captures the start tag the reader is positioned on.
func (t *Tokenizer) current() *element {
	return &element{
		name:  t.r.Name(),
		attrs: t.r.Attrs(),
		nss:   t.r.Namespaces(),
		loc:   t.loc(),
	}
}

// skipSubTree consumes the rest of the current element and reports
// whether it had content other than comments, processing instructions
// and whitespace that is stripped.
func (t *Tokenizer) skipSubTree() bool {
	content := false
	level := 1
	for {
		switch t.advance() {
		case xmlsource.StartElement:
			content = true
			level++
		case xmlsource.EndElement:
			level--
			if level == 0 {
				return content
			}
		case xmlsource.Characters:
			if !t.skipWhitespace(t.r.Text()) {
				content = true
			}
		case xmlsource.EndDocument, xmlsource.Invalid:
			return content
		}
	}
}

func (t *Tokenizer) mode() ProcessingMode {
	if len(t.modes) == 0 {
		return Normal
	}
	return t.modes[len(t.modes)-1].mode
}

func (t *Tokenizer) pushMode(m ProcessingMode) {
	t.modes = append(t.modes, modeFrame{depth: t.depth, mode: m})
}

func (t *Tokenizer) pushSpace(preserve bool) {
	t.spaces = append(t.spaces, spaceFrame{depth: t.depth, preserve: preserve})
}

// skipWhitespace reports whether text is whitespace that xml:space lets
// the tokenizer drop.
func (t *Tokenizer) skipWhitespace(text string) bool {
	if len(t.spaces) > 0 && t.spaces[len(t.spaces)-1].preserve {
		return false
	}
	return IsBlank(text)
}

func (t *Tokenizer) loc() token.Location {
	l := t.r.Location()
	if l.IsZero() {
		return t.base
	}
	if l.Line == 1 {
		l.Column += t.base.Column - 1
	}
	l.Line += t.base.Line - 1
	return l
}

func (t *Tokenizer) errorf(code diag.Code, format string, args ...interface{}) {
	t.reporter.Report(diag.Errorf(code, t.loc(), format, args...))
}

func (t *Tokenizer) warnf(format string, args ...interface{}) {
	t.reporter.Report(diag.Warnf(t.loc(), format, args...))
}

// unexpected reports the element or text the reader is positioned on as
// misplaced, and skips an element's content.
func (t *Tokenizer) unexpected(ev xmlsource.Event) {
	switch ev {
	case xmlsource.StartElement:
		el := t.current()
		t.errorf(diag.XTSE0010, "Element %s is not allowed at this location.", el.display())
		t.skipSubTree()
	case xmlsource.Characters:
		t.errorf(diag.XTSE0010, "Text nodes are not allowed at this location.")
	default:
		t.errorf(diag.XTSE0010, "%v is not allowed at this location.", ev)
	}
}

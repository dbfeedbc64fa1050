package token

import "fmt"

// Location is a 1-based line and column in the source text.
type Location struct {
	Line   int
	Column int
}

func (l Location) String() string {
	return fmt.Sprint(l.Line, ":", l.Column)
}

// IsZero reports whether no location was recorded.
func (l Location) IsZero() bool {
	return l.Line == 0 && l.Column == 0
}

// Position is an offset into the scanned text, handed out by
// BeginRawScan and accepted by ResumeFrom.
type Position int

// Token is an immutable lexical unit. Value is only meaningful for
// literal kinds (names, literals, raw text); keywords and operators
// leave it empty and are spelled by their Kind.
type Token struct {
	Kind  Kind
	Value string
	Loc   Location
}

// New returns a token without a value.
func New(k Kind, loc Location) Token {
	return Token{Kind: k, Loc: loc}
}

// AsValue returns the text the token stands for. It satisfies the
// token interface of the kowhai grammar.
func (t Token) AsValue() string {
	if t.Kind.IsLiteral() {
		return t.Value
	}
	return t.Kind.String()
}

// TokenType returns the numeric kind for grammar terminals.
func (t Token) TokenType() int {
	return int(t.Kind)
}

func (t Token) String() string {
	if t.Kind.IsLiteral() {
		return fmt.Sprintf("%v %v %q", t.Loc, t.Kind, t.Value)
	}
	return fmt.Sprintf("%v %v", t.Loc, t.Kind)
}

// Source produces tokens until it returns an end marker (EOF or
// UNEXPECTED_EOF).
type Source interface {
	Next() Token
}

// Tokenizer is the contract both tokenizers expose to the grammar.
// Errors are delivered as ERROR tokens, never as panics.
type Tokenizer interface {
	Source
	// BeginRawScan enters scan-only mode and returns where scanning
	// can later resume from.
	BeginRawScan() Position
	// ResumeFrom leaves scan-only mode and continues at pos.
	ResumeFrom(pos Position)
}

// single delivers one token, then EOF forever.
type single struct {
	tok  Token
	done bool
}

// Single returns a Source that yields tok exactly once.
func Single(tok Token) Source {
	return &single{tok: tok}
}

func (s *single) Next() Token {
	if s.done {
		return Token{Kind: EOF, Loc: s.tok.Loc}
	}
	s.done = true
	return s.tok
}

// Drain pulls tokens from src until an end marker or an ERROR and
// returns them, the terminating token included.
func Drain(src Source) []Token {
	var toks []Token
	for {
		t := src.Next()
		toks = append(toks, t)
		if t.Kind.IsEnd() || t.Kind == ERROR {
			return toks
		}
	}
}

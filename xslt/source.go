package xslt

import (
	"github.com/jbowtie/xqlex/token"
	"github.com/jbowtie/xqlex/xquery"
)

// queue holds the token sources still to be drained, in order.
type queue []token.Source

func (q *queue) add(src token.Source) {
	*q = append(*q, src)
}

// exits holds the closing tokens owed by wrappers opened on an element.
type exits []token.Kind

func (e *exits) push(k token.Kind) {
	*e = append(*e, k)
}

// flush writes the pending closers, last opened first.
func (t *Tokenizer) flush(ex *exits, to *queue) {
	for i := len(*ex) - 1; i >= 0; i-- {
		t.emit(to, (*ex)[i])
	}
	*ex = (*ex)[:0]
}

func (t *Tokenizer) emit(to *queue, kinds ...token.Kind) {
	loc := t.loc()
	for _, k := range kinds {
		to.add(token.Single(token.New(k, loc)))
	}
}

func (t *Tokenizer) emitValue(to *queue, k token.Kind, value string) {
	to.add(token.Single(token.Token{Kind: k, Value: value, Loc: t.loc()}))
}

func (t *Tokenizer) emptySequence(to *queue) {
	t.emit(to, token.LPAREN, token.RPAREN)
}

// expr queues a tokenizer over an expression attribute, in parentheses.
func (t *Tokenizer) expr(to *queue, el *element, text string) {
	t.emit(to, token.LPAREN)
	to.add(xquery.New(text, xquery.WithLocation(el.loc)))
	t.emit(to, token.RPAREN)
}

// seqType queues a tokenizer over a sequence type attribute.
func (t *Tokenizer) seqType(to *queue, el *element, text string) {
	to.add(xquery.New(text, xquery.WithLocation(el.loc), xquery.WithState(xquery.ItemType)))
}

// avt queues an attribute value template as avt ( … ).
func (t *Tokenizer) avt(to *queue, el *element, text string) {
	t.emit(to, token.AVT, token.LPAREN)
	to.add(xquery.New(text, xquery.WithLocation(el.loc), xquery.WithState(xquery.AttributeValueTemplate)))
	t.emit(to, token.RPAREN)
}

// qname queues a name written in an attribute, as QNAME or NCNAME.
func (t *Tokenizer) qname(to *queue, name string) {
	if xquery.IsNCName(name) {
		t.emitValue(to, token.NCNAME, name)
		return
	}
	t.emitValue(to, token.QNAME, name)
}

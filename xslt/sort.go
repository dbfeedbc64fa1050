package xslt

import (
	"strings"

	"github.com/jbowtie/xqlex/diag"
	"github.com/jbowtie/xqlex/token"
	"github.com/jbowtie/xqlex/xmlsource"
)

// sorting lowers the leading xsl:sort children of the current element
// into an order by clause and stops at the first other child. Inside
// xsl:apply-templates all whitespace between the sorts is ignored.
func (t *Tokenizer) sorting(to *queue, applyTemplates bool) {
	queued := false
	for {
		switch t.advance() {
		case xmlsource.StartElement:
			el := t.current()
			if !el.is("sort") {
				t.unread()
				return
			}
			t.validate(el)
			t.sortKey(el, to, queued)
			queued = true
		case xmlsource.Characters:
			text := t.r.Text()
			if t.skipWhitespace(text) || applyTemplates && IsBlank(text) {
				continue
			}
			t.unread()
			return
		case xmlsource.Comment, xmlsource.ProcessingInstruction:
		case xmlsource.EndElement:
			t.unread()
			return
		default:
			return
		}
	}
}

func (t *Tokenizer) sortKey(el *element, to *queue, later bool) {
	stable := t.yesNo(el, "stable")
	if later {
		t.emit(to, token.COMMA)
		if el.has("stable") {
			t.errorf(diag.XTSE0020, "Only the first xsl:sort may have a stable attribute.")
		}
	} else {
		if stable {
			t.emit(to, token.STABLE)
		}
		t.emit(to, token.ORDER, token.BY)
	}

	if dt, ok := el.attr("data-type"); ok {
		switch strings.TrimSpace(dt) {
		case "text":
			t.emitValue(to, token.NCNAME, "string")
		case "number":
			t.emitValue(to, token.NCNAME, "number")
		default:
			t.errorf(diag.XTSE0020, "The value of data-type must be text or number, not %q.", dt)
		}
	}

	t.emit(to, token.LPAREN)
	before := len(*to)
	t.selectOrBody(el, diag.XTSE1015, true, to, false)
	if len(*to) == before {
		t.emit(to, token.DOT)
	}
	t.emit(to, token.RPAREN)

	if t.toggle(el, "order", "descending", "ascending") {
		t.emit(to, token.DESCENDING)
	} else {
		t.emit(to, token.ASCENDING)
	}
	if c, ok := el.attr("collation"); ok {
		t.emit(to, token.INTERNAL, token.COLLATION)
		t.avt(to, el, c)
	}
}

// performSort lowers xsl:perform-sort: the sorts come first, then the
// sequence to sort.
func (t *Tokenizer) performSort(el *element, to *queue) {
	var sorts queue
	t.sorting(&sorts, false)
	if len(sorts) == 0 {
		t.errorf(diag.XTSE1040, "xsl:perform-sort must have at least one xsl:sort.")
	}
	t.emit(to, token.LPAREN)
	t.selectOrBody(el, diag.XTSE1040, true, to, true)
	t.emit(to, token.RPAREN, token.MAP)
	if len(sorts) > 0 {
		t.emit(to, token.SORT)
		*to = append(*to, sorts...)
		t.emit(to, token.RETURN)
	}
	t.emit(to, token.DOT)
	if len(sorts) > 0 {
		t.emit(to, token.END_SORT)
	}
}

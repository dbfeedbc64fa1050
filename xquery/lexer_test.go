package xquery

import (
	"fmt"
	"testing"

	"github.com/jbowtie/kowhai"
	"github.com/jbowtie/xqlex/token"
	. "github.com/smartystreets/goconvey/convey"
)

func kinds(tokens []token.Token) (ks []token.Kind) {
	for _, t := range tokens {
		ks = append(ks, t.Kind)
	}
	return ks
}

func compareToken(t *testing.T, value string, typ token.Kind, actual token.Token) {
	Convey("Comparing token", t, func() {
		eval := fmt.Sprint("Expect value: \"", value, "\"")
		etype := fmt.Sprint("Expect token type: ", typ)
		Convey(eval, func() {
			So(actual.AsValue(), ShouldEqual, value)
		})
		Convey(etype, func() {
			So(actual.Kind, ShouldEqual, typ)
		})
	})
}

func TestIntLiteral(t *testing.T) {
	tokens := Tokens("12 34 -001")
	compareToken(t, "12", token.INTEGER, tokens[0])
	compareToken(t, "34", token.INTEGER, tokens[1])
	compareToken(t, "-", token.MINUS, tokens[2])
	compareToken(t, "001", token.INTEGER, tokens[3])
}

func TestDecimalLiteral(t *testing.T) {
	tokens := Tokens("0.5 .5 1.")
	compareToken(t, "0.5", token.DECIMAL, tokens[0])
	compareToken(t, ".5", token.DECIMAL, tokens[1])
	compareToken(t, "1.", token.DECIMAL, tokens[2])
}

func TestDoubleLiteral(t *testing.T) {
	tokens := Tokens("1.2e3 .5e1 2.e0 3E-2")
	compareToken(t, "1.2e3", token.DOUBLE, tokens[0])
	compareToken(t, ".5e1", token.DOUBLE, tokens[1])
	compareToken(t, "2.e0", token.DOUBLE, tokens[2])
	compareToken(t, "3E-2", token.DOUBLE, tokens[3])
}

func TestMalformedNumbers(t *testing.T) {
	Convey("A name directly after a number is an error", t, func() {
		So(kinds(Tokens("12abc")), ShouldResemble, []token.Kind{token.ERROR})
	})
	Convey("An exponent needs digits", t, func() {
		So(kinds(Tokens("1e")), ShouldResemble, []token.Kind{token.ERROR})
	})
}

func TestCommentSyntax(t *testing.T) {
	tokens := Tokens("(:comment:)12(:(:nestedcomment:):)0.5")
	compareToken(t, "12", token.INTEGER, tokens[0])
	compareToken(t, "0.5", token.DECIMAL, tokens[1])

	Convey("Unterminated comments", t, func() {
		Convey("are an error at the comment start", func() {
			toks := Tokens("1 (: open")
			So(kinds(toks), ShouldResemble, []token.Kind{token.INTEGER, token.ERROR})
			So(toks[1].Loc, ShouldResemble, token.Location{Line: 1, Column: 3})
		})
		Convey("including nested ones", func() {
			So(kinds(Tokens("(: a (: b :) c")), ShouldResemble, []token.Kind{token.ERROR})
		})
	})
}

func TestLeftAngleBracketOperators(t *testing.T) {
	tokens := Tokens("a<b c<<d e<=f")
	compareToken(t, "a", token.NCNAME, tokens[0])
	compareToken(t, "<", token.G_LT, tokens[1])
	compareToken(t, "b", token.NCNAME, tokens[2])
	compareToken(t, "c", token.NCNAME, tokens[3])
	compareToken(t, "<<", token.PRECEDES, tokens[4])
	compareToken(t, "d", token.NCNAME, tokens[5])
	compareToken(t, "e", token.NCNAME, tokens[6])
	compareToken(t, "<=", token.G_LE, tokens[7])
	compareToken(t, "f", token.NCNAME, tokens[8])
	Convey("The text ends cleanly", t, func() {
		So(tokens[9].Kind, ShouldEqual, token.EOF)
	})
}

func TestRightAngleBracketOperators(t *testing.T) {
	tokens := Tokens("a>b c>>d e>=f")
	compareToken(t, "a", token.NCNAME, tokens[0])
	compareToken(t, ">", token.G_GT, tokens[1])
	compareToken(t, "b", token.NCNAME, tokens[2])
	compareToken(t, "c", token.NCNAME, tokens[3])
	compareToken(t, ">>", token.FOLLOWS, tokens[4])
	compareToken(t, "d", token.NCNAME, tokens[5])
	compareToken(t, "e", token.NCNAME, tokens[6])
	compareToken(t, ">=", token.G_GE, tokens[7])
	compareToken(t, "f", token.NCNAME, tokens[8])
}

func TestPathWithQname(t *testing.T) {
	tokens := Tokens("c/xy//z/foo:bar[self::test:name='bar']")
	compareToken(t, "c", token.NCNAME, tokens[0])
	compareToken(t, "/", token.SLASH, tokens[1])
	compareToken(t, "xy", token.NCNAME, tokens[2])
	compareToken(t, "//", token.SLASHSLASH, tokens[3])
	compareToken(t, "z", token.NCNAME, tokens[4])
	compareToken(t, "/", token.SLASH, tokens[5])
	compareToken(t, "foo:bar", token.QNAME, tokens[6])
	compareToken(t, "[", token.LBRACKET, tokens[7])
	compareToken(t, "self", token.SELF, tokens[8])
	compareToken(t, "::", token.COLONCOLON, tokens[9])
	compareToken(t, "test:name", token.QNAME, tokens[10])
	compareToken(t, "=", token.G_EQ, tokens[11])
	compareToken(t, "bar", token.STRING_LITERAL, tokens[12])
	compareToken(t, "]", token.RBRACKET, tokens[13])
}

func TestFunctionCall(t *testing.T) {
	tokens := Tokens("normalize-string(../@test)")
	compareToken(t, "normalize-string", token.NCNAME, tokens[0])
	compareToken(t, "(", token.LPAREN, tokens[1])
	compareToken(t, "..", token.DOTDOT, tokens[2])
	compareToken(t, "/", token.SLASH, tokens[3])
	compareToken(t, "@", token.AT_SIGN, tokens[4])
	compareToken(t, "test", token.NCNAME, tokens[5])
	compareToken(t, ")", token.RPAREN, tokens[6])
}

func TestDashSyntax(t *testing.T) {
	//trailing dash is part of ncname
	tokens := Tokens("foo- bar")
	compareToken(t, "foo-", token.NCNAME, tokens[0])
	compareToken(t, "bar", token.NCNAME, tokens[1])
	//dash in middle is part of ncname
	tokens = Tokens("foo-foo")
	compareToken(t, "foo-foo", token.NCNAME, tokens[0])
	//delimited by spaces, treat as terminal
	tokens = Tokens("a - b")
	compareToken(t, "a", token.NCNAME, tokens[0])
	compareToken(t, "-", token.MINUS, tokens[1])
	compareToken(t, "b", token.NCNAME, tokens[2])
	//is delimiter, so become terminal before ncname
	tokens = Tokens("foo -bar")
	compareToken(t, "foo", token.NCNAME, tokens[0])
	compareToken(t, "-", token.MINUS, tokens[1])
	compareToken(t, "bar", token.NCNAME, tokens[2])
}

func TestNameTests(t *testing.T) {
	Convey("Wildcards are single tokens", t, func() {
		toks := Tokens("p:* | *:l")
		So(kinds(toks), ShouldResemble, []token.Kind{token.ANY_LOCAL_NAME, token.BAR, token.ANY_PREFIX, token.EOF})
		So(toks[0].Value, ShouldEqual, "p")
		So(toks[2].Value, ShouldEqual, "l")
	})
	Convey("Whitespace may precede the axis separator", t, func() {
		So(kinds(Tokens("child ::foo")), ShouldResemble,
			[]token.Kind{token.CHILD, token.COLONCOLON, token.NCNAME, token.EOF})
	})
	Convey("A wildcard step is followed by an operator", t, func() {
		So(kinds(Tokens("child::* div 2")), ShouldResemble,
			[]token.Kind{token.CHILD, token.COLONCOLON, token.STAR, token.DIV, token.INTEGER, token.EOF})
	})
	Convey("A lone colon is an error", t, func() {
		So(kinds(Tokens("a : b")), ShouldResemble, []token.Kind{token.NCNAME, token.ERROR})
	})
	Convey("Keywords are plain names where a step is expected", t, func() {
		toks := Tokens("a/if/return")
		So(kinds(toks), ShouldResemble, []token.Kind{token.NCNAME, token.SLASH, token.NCNAME, token.SLASH, token.NCNAME, token.EOF})
		So(toks[2].Value, ShouldEqual, "if")
		So(toks[4].Value, ShouldEqual, "return")
	})
}

func TestStringLiterals(t *testing.T) {
	Convey("Doubled delimiters escape themselves", t, func() {
		toks := Tokens(`"a""b" 'it''s'`)
		So(toks[0].Value, ShouldEqual, `a"b`)
		So(toks[1].Value, ShouldEqual, "it's")
	})
	Convey("Character references are decoded", t, func() {
		toks := Tokens(`"&lt;&#65;&#x42;&amp;&quot;&apos;&gt;"`)
		So(toks[0].Kind, ShouldEqual, token.STRING_LITERAL)
		So(toks[0].Value, ShouldEqual, `<AB&"'>`)
	})
	Convey("References beyond the BMP form one character", t, func() {
		So(Tokens(`"&#x1F600;"`)[0].Value, ShouldEqual, "\U0001F600")
	})
	Convey("Bad references are errors located at the ampersand", t, func() {
		for _, text := range []string{`"x&bogus;"`, `"x&#0;"`, `"x&#xD800;"`, `"x&#x110000;"`, `"x&#;"`, `"x&amp"`} {
			toks := Tokens(text)
			So(kinds(toks), ShouldResemble, []token.Kind{token.ERROR})
			So(toks[0].Loc.Column, ShouldEqual, 3)
		}
	})
	Convey("Line ends are normalized but references are kept", t, func() {
		So(Tokens("'a\r\nb\rc'")[0].Value, ShouldEqual, "a\nb\nc")
		So(Tokens("'a&#xD;b'")[0].Value, ShouldEqual, "a\rb")
	})
	Convey("An unterminated literal is an error", t, func() {
		So(kinds(Tokens(`"abc`)), ShouldResemble, []token.Kind{token.ERROR})
	})
}

func TestExpressions(t *testing.T) {
	Convey("Conditional", t, func() {
		So(kinds(Tokens("if (1) then 2 else 3")), ShouldResemble, []token.Kind{
			token.IF, token.LPAREN, token.INTEGER, token.RPAREN, token.THEN, token.INTEGER,
			token.ELSE, token.INTEGER, token.EOF})
	})
	Convey("FLWOR", t, func() {
		So(kinds(Tokens("for $i at $p in 1 to 3 return $i")), ShouldResemble, []token.Kind{
			token.FOR, token.DOLLAR, token.NCNAME, token.AT, token.DOLLAR, token.NCNAME, token.IN,
			token.INTEGER, token.TO, token.INTEGER, token.RETURN, token.DOLLAR, token.NCNAME, token.EOF})
	})
	Convey("Order by", t, func() {
		So(kinds(Tokens("for $x in y order by $x descending empty greatest return $x")), ShouldResemble, []token.Kind{
			token.FOR, token.DOLLAR, token.NCNAME, token.IN, token.NCNAME, token.ORDER, token.BY,
			token.DOLLAR, token.NCNAME, token.DESCENDING, token.EMPTY, token.GREATEST,
			token.RETURN, token.DOLLAR, token.NCNAME, token.EOF})
	})
	Convey("Cast", t, func() {
		So(kinds(Tokens("x cast as xs:int?")), ShouldResemble, []token.Kind{
			token.NCNAME, token.CAST, token.AS, token.QNAME, token.QUESTION, token.EOF})
	})
	Convey("Instance of a kind test", t, func() {
		l := New("$a instance of element(foo)*")
		So(kinds(token.Drain(l)), ShouldResemble, []token.Kind{
			token.DOLLAR, token.NCNAME, token.INSTANCE, token.OF, token.ELEMENT, token.LPAREN,
			token.NCNAME, token.RPAREN, token.STAR, token.EOF})
		So(l.Depth(), ShouldEqual, 0)
	})
	Convey("Treat as", t, func() {
		So(kinds(Tokens("$a treat as item()+")), ShouldResemble, []token.Kind{
			token.DOLLAR, token.NCNAME, token.TREAT, token.AS, token.ITEM, token.LPAREN,
			token.RPAREN, token.PLUS, token.EOF})
	})
	Convey("Node tests", t, func() {
		So(kinds(Tokens("document-node(element(a, xs:int))")), ShouldResemble, []token.Kind{
			token.DOCUMENT_NODE, token.LPAREN, token.ELEMENT, token.LPAREN, token.NCNAME, token.COMMA,
			token.QNAME, token.RPAREN, token.RPAREN, token.EOF})
		So(kinds(Tokens("processing-instruction(foo)")), ShouldResemble, []token.Kind{
			token.PROCESSING_INSTRUCTION, token.LPAREN, token.NCNAME, token.RPAREN, token.EOF})
	})
	Convey("Typeswitch", t, func() {
		So(kinds(Tokens("typeswitch ($a) case $b as xs:int return 1 default return 2")), ShouldResemble, []token.Kind{
			token.TYPESWITCH, token.LPAREN, token.DOLLAR, token.NCNAME, token.RPAREN,
			token.CASE, token.DOLLAR, token.NCNAME, token.AS, token.QNAME, token.RETURN, token.INTEGER,
			token.DEFAULT, token.RETURN, token.INTEGER, token.EOF})
	})
	Convey("Validate", t, func() {
		So(kinds(Tokens("validate lax { 1 }")), ShouldResemble, []token.Kind{
			token.VALIDATE, token.LAX, token.LBRACE, token.INTEGER, token.RBRACE, token.EOF})
	})
}

func TestComputedConstructors(t *testing.T) {
	Convey("A name followed by a brace is a constructor", t, func() {
		toks := Tokens("element foo { 1 }")
		So(kinds(toks), ShouldResemble, []token.Kind{
			token.ELEMENT, token.NCNAME, token.LBRACE, token.INTEGER, token.RBRACE, token.EOF})
		So(toks[1].Value, ShouldEqual, "foo")
		So(toks[1].Loc, ShouldResemble, token.Location{Line: 1, Column: 9})
	})
	Convey("A brace after the keyword opens the name expression", t, func() {
		So(kinds(Tokens("attribute {'a'} {2}")), ShouldResemble, []token.Kind{
			token.ATTRIBUTE, token.LBRACE, token.STRING_LITERAL, token.RBRACE,
			token.LBRACE, token.INTEGER, token.RBRACE, token.EOF})
	})
	Convey("Without a brace the keyword is a name test", t, func() {
		toks := Tokens("element return")
		So(kinds(toks), ShouldResemble, []token.Kind{token.NCNAME, token.RETURN, token.EOF})
		So(toks[0].Value, ShouldEqual, "element")
	})
	Convey("A parenthesis after a type keyword opens a kind test", t, func() {
		So(kinds(Tokens("text()")), ShouldResemble, []token.Kind{token.TEXT, token.LPAREN, token.RPAREN, token.EOF})
	})
}

func TestProlog(t *testing.T) {
	Convey("Version declaration", t, func() {
		So(kinds(Tokens("xquery version '1.0' encoding 'utf-8';")), ShouldResemble, []token.Kind{
			token.XQUERY, token.VERSION, token.STRING_LITERAL, token.ENCODING, token.STRING_LITERAL,
			token.SEMICOLON, token.EOF})
	})
	Convey("Variable declaration", t, func() {
		So(kinds(Tokens("declare variable $x := 1;")), ShouldResemble, []token.Kind{
			token.DECLARE, token.VARIABLE, token.DOLLAR, token.NCNAME, token.ASSIGN, token.INTEGER,
			token.SEMICOLON, token.EOF})
	})
	Convey("Function declaration", t, func() {
		So(kinds(Tokens("declare function local:f($a as xs:int) as xs:int { $a };")), ShouldResemble, []token.Kind{
			token.DECLARE, token.FUNCTION, token.QNAME, token.LPAREN, token.DOLLAR, token.NCNAME,
			token.AS, token.QNAME, token.RPAREN, token.AS, token.QNAME, token.LBRACE, token.DOLLAR,
			token.NCNAME, token.RBRACE, token.SEMICOLON, token.EOF})
	})
	Convey("Namespace declarations", t, func() {
		So(kinds(Tokens("declare namespace p = 'urn:p';")), ShouldResemble, []token.Kind{
			token.DECLARE, token.NAMESPACE, token.NCNAME, token.G_EQ, token.STRING_LITERAL,
			token.SEMICOLON, token.EOF})
		So(kinds(Tokens("declare default element namespace 'urn:x';")), ShouldResemble, []token.Kind{
			token.DECLARE, token.DEFAULT, token.ELEMENT, token.NAMESPACE, token.STRING_LITERAL,
			token.SEMICOLON, token.EOF})
	})
	Convey("Setters", t, func() {
		So(kinds(Tokens("declare boundary-space preserve;")), ShouldResemble, []token.Kind{
			token.DECLARE, token.BOUNDARY_SPACE, token.PRESERVE, token.SEMICOLON, token.EOF})
		So(kinds(Tokens("declare default order empty least;")), ShouldResemble, []token.Kind{
			token.DECLARE, token.DEFAULT, token.ORDER, token.EMPTY, token.LEAST, token.SEMICOLON, token.EOF})
		So(kinds(Tokens("declare copy-namespaces preserve, inherit;")), ShouldResemble, []token.Kind{
			token.DECLARE, token.COPY_NAMESPACES, token.PRESERVE, token.COMMA, token.INHERIT,
			token.SEMICOLON, token.EOF})
	})
	Convey("Imports", t, func() {
		So(kinds(Tokens("import schema namespace x = 'urn:x' at 'loc';")), ShouldResemble, []token.Kind{
			token.IMPORT, token.SCHEMA, token.NAMESPACE, token.NCNAME, token.G_EQ, token.STRING_LITERAL,
			token.AT, token.STRING_LITERAL, token.SEMICOLON, token.EOF})
	})
	Convey("A declaration cut short", t, func() {
		So(kinds(Tokens("declare default")), ShouldResemble, []token.Kind{token.DECLARE, token.DEFAULT, token.EOF})
	})
}

func TestDirectConstructors(t *testing.T) {
	Convey("Element with an attribute value template", t, func() {
		toks := Tokens(`<a b="x{1}y">t</a>`)
		So(kinds(toks), ShouldResemble, []token.Kind{
			token.G_LT, token.NCNAME, token.NCNAME, token.G_EQ, token.QUOTE, token.STRING_LITERAL,
			token.LBRACE, token.INTEGER, token.RBRACE, token.STRING_LITERAL, token.QUOTE, token.G_GT,
			token.STRING_LITERAL, token.BEGIN_END_TAG, token.NCNAME, token.G_GT, token.EOF})
		So(toks[5].Value, ShouldEqual, "x")
		So(toks[9].Value, ShouldEqual, "y")
		So(toks[12].Value, ShouldEqual, "t")
	})
	Convey("Empty element", t, func() {
		So(kinds(Tokens("<a/>")), ShouldResemble, []token.Kind{token.G_LT, token.NCNAME, token.QUICK_TAG_END, token.EOF})
	})
	Convey("Attribute values are normalized", t, func() {
		toks := Tokens("<a b='x\ty&amp;''z'/>")
		So(toks[5].Kind, ShouldEqual, token.STRING_LITERAL)
		So(toks[5].Value, ShouldEqual, "x y&'z")
	})
	Convey("A character after the closing quote must be a separator", t, func() {
		So(kinds(Tokens(`<a b="x"c="y"/>`)), ShouldResemble, []token.Kind{
			token.G_LT, token.NCNAME, token.NCNAME, token.G_EQ, token.QUOTE, token.ERROR})
	})
	Convey("Element content", t, func() {
		Convey("CDATA sections and references are significant text", func() {
			toks := Tokens("<a><![CDATA[<x>]]></a>")
			So(toks[3].Kind, ShouldEqual, token.NON_BOUNDARY_WS)
			So(toks[3].Value, ShouldEqual, "<x>")
			toks = Tokens("<a>&amp;</a>")
			So(toks[3].Kind, ShouldEqual, token.NON_BOUNDARY_WS)
			So(toks[3].Value, ShouldEqual, "&")
		})
		Convey("doubled braces escape", func() {
			So(Tokens("<a>{{x}}</a>")[3].Value, ShouldEqual, "{x}")
		})
		Convey("a lone closing brace is an error", func() {
			So(kinds(Tokens("<a>}</a>")), ShouldResemble, []token.Kind{token.G_LT, token.NCNAME, token.G_GT, token.ERROR})
		})
		Convey("nested elements return to the content", func() {
			So(kinds(Tokens("<a><b/>x</a>")), ShouldResemble, []token.Kind{
				token.G_LT, token.NCNAME, token.G_GT, token.G_LT, token.NCNAME, token.QUICK_TAG_END,
				token.STRING_LITERAL, token.BEGIN_END_TAG, token.NCNAME, token.G_GT, token.EOF})
		})
		Convey("running out of text is unexpected", func() {
			So(kinds(Tokens("<a>text")), ShouldResemble, []token.Kind{
				token.G_LT, token.NCNAME, token.G_GT, token.UNEXPECTED_EOF})
		})
	})
	Convey("Comments", t, func() {
		toks := Tokens("<!-- hi\r\nthere -->")
		So(kinds(toks), ShouldResemble, []token.Kind{token.COMMENT_START, token.COMMENT_CONTENT, token.EOF})
		So(toks[1].Value, ShouldEqual, " hi\nthere ")
		So(kinds(Tokens("<!-- a -- b -->")), ShouldResemble, []token.Kind{token.COMMENT_START, token.ERROR})
	})
	Convey("Processing instructions", t, func() {
		toks := Tokens("<?target some data?>")
		So(kinds(toks), ShouldResemble, []token.Kind{token.PI_START, token.PI_TARGET, token.PI_CONTENT, token.EOF})
		So(toks[1].Value, ShouldEqual, "target")
		So(toks[2].Value, ShouldEqual, "some data")
	})
	Convey("Pragmas", t, func() {
		toks := Tokens("(# ext:p content #) { 1 }")
		So(kinds(toks), ShouldResemble, []token.Kind{
			token.PRAGMA_START, token.QNAME, token.STRING_LITERAL, token.PRAGMA_END,
			token.LBRACE, token.INTEGER, token.RBRACE, token.EOF})
		So(toks[2].Value, ShouldEqual, "content ")
	})
}

func TestEndOfInput(t *testing.T) {
	Convey("Open braces make the end unexpected", t, func() {
		So(kinds(Tokens("{ 1")), ShouldResemble, []token.Kind{token.LBRACE, token.INTEGER, token.UNEXPECTED_EOF})
	})
	Convey("An unbalanced closing brace is tolerated", t, func() {
		So(kinds(Tokens("1 }")), ShouldResemble, []token.Kind{token.INTEGER, token.RBRACE, token.EOF})
	})
	Convey("Empty text ends cleanly", t, func() {
		So(kinds(Tokens("  (: nothing :) ")), ShouldResemble, []token.Kind{token.EOF})
	})
}

func TestLocations(t *testing.T) {
	Convey("CRLF counts as one line break", t, func() {
		toks := Tokens("a\r\n  b\rc")
		So(toks[0].Loc, ShouldResemble, token.Location{Line: 1, Column: 1})
		So(toks[1].Loc, ShouldResemble, token.Location{Line: 2, Column: 3})
		So(toks[2].Loc, ShouldResemble, token.Location{Line: 3, Column: 1})
	})
	Convey("Lines inside comments are counted", t, func() {
		toks := Tokens("(: a\n b :)\nc")
		So(toks[0].Loc, ShouldResemble, token.Location{Line: 3, Column: 1})
	})
	Convey("A base location shifts the first line only by column", t, func() {
		toks := Tokens("x y\nz", WithLocation(token.Location{Line: 10, Column: 5}))
		So(toks[0].Loc, ShouldResemble, token.Location{Line: 10, Column: 5})
		So(toks[1].Loc, ShouldResemble, token.Location{Line: 10, Column: 7})
		So(toks[2].Loc, ShouldResemble, token.Location{Line: 11, Column: 1})
	})
}

func TestRawScan(t *testing.T) {
	Convey("Attributes can be skipped and scanned again", t, func() {
		l := New(`<a b="x{'"'}">`)
		So(l.Next().Kind, ShouldEqual, token.G_LT)
		So(l.Next().Kind, ShouldEqual, token.NCNAME)

		pos := l.BeginRawScan()
		var raw []token.Kind
		for {
			tok := l.Next()
			raw = append(raw, tok.Kind)
			if tok.Kind == token.POSITION_SET || tok.Kind.IsEnd() || tok.Kind == token.ERROR {
				break
			}
		}
		So(raw, ShouldResemble, []token.Kind{
			token.NCNAME, token.G_EQ, token.QUOTE, token.STRING_LITERAL, token.QUOTE, token.POSITION_SET})

		l.ResumeFrom(pos)
		So(kinds(token.Drain(l)), ShouldResemble, []token.Kind{
			token.NCNAME, token.G_EQ, token.QUOTE, token.STRING_LITERAL, token.LBRACE, token.STRING_LITERAL, token.RBRACE,
			token.QUOTE, token.G_GT, token.UNEXPECTED_EOF})
	})
}

func TestAttributeValueTemplate(t *testing.T) {
	Convey("Literal text and enclosed expressions alternate", t, func() {
		toks := Tokens("a{$x}b{{c}}", WithState(AttributeValueTemplate))
		So(kinds(toks), ShouldResemble, []token.Kind{
			token.STRING_LITERAL, token.LBRACE, token.DOLLAR, token.NCNAME, token.RBRACE,
			token.STRING_LITERAL, token.EOF})
		So(toks[0].Value, ShouldEqual, "a")
		So(toks[5].Value, ShouldEqual, "b{c}")
	})
	Convey("A lone closing brace is an error", t, func() {
		So(kinds(Tokens("a}b", WithState(AttributeValueTemplate))), ShouldResemble, []token.Kind{token.ERROR})
	})
	Convey("An open expression makes the end unexpected", t, func() {
		So(kinds(Tokens("a{1", WithState(AttributeValueTemplate))), ShouldResemble, []token.Kind{
			token.STRING_LITERAL, token.LBRACE, token.INTEGER, token.UNEXPECTED_EOF})
	})
	Convey("Empty text ends cleanly", t, func() {
		So(kinds(Tokens("", WithState(AttributeValueTemplate))), ShouldResemble, []token.Kind{token.EOF})
	})
}

func TestNames(t *testing.T) {
	Convey("Name checks", t, func() {
		So(IsNCName("foo-bar.1"), ShouldBeTrue)
		So(IsNCName("1foo"), ShouldBeFalse)
		So(IsNCName(""), ShouldBeFalse)
		So(IsQName("xsl:template"), ShouldBeTrue)
		So(IsQName("a:b:c"), ShouldBeFalse)
		So(IsQName(":a"), ShouldBeFalse)
	})
}

func TestParseState(t *testing.T) {
	Convey("States are found by name", t, func() {
		s, ok := ParseState("ItemType")
		So(ok, ShouldBeTrue)
		So(s, ShouldEqual, ItemType)
		So(s.String(), ShouldEqual, "ItemType")
		_, ok = ParseState("Nowhere")
		So(ok, ShouldBeFalse)
	})
}

func TestGrammar(t *testing.T) {
	Convey("The grammar can be built", t, func() {
		So(Grammar(), ShouldNotBeNil)
	})
	Convey("Prolog declarations may come in any order", t, func() {
		machine := Grammar().BuildStateMachine()
		for _, text := range []string{
			`declare namespace p = "u"; declare variable $x := 1; $x`,
			`declare variable $x := 1; declare namespace p = "u"; $x`,
		} {
			parser := kowhai.CreateParser(machine)
			for _, tok := range Tokens(text) {
				if tok.Kind.IsEnd() {
					break
				}
				So(parser.ScanToken(tok), ShouldBeNil)
			}
		}
	})
}

package xslt

import (
	"strconv"
	"strings"
	"testing"

	"github.com/jbowtie/xqlex/diag"
	"github.com/jbowtie/xqlex/namepool"
	"github.com/jbowtie/xqlex/token"
	"github.com/jbowtie/xqlex/xmlsource"
	. "github.com/smartystreets/goconvey/convey"
)

const xslDecl = `xmlns:xsl="http://www.w3.org/1999/XSL/Transform"`

const builtIns = `declare template matches ( text ( ) | @ * ) mode #all { text { . } } ; ` +
	`declare template matches ( document-node ( ) | element ( ) ) mode #all ` +
	`{ child :: node ( ) for-apply-template apply-template mode #current ( ) } ;`

const prolog = builtIns + ` declare namespace xsl = "http://www.w3.org/1999/XSL/Transform" internal ;`

// spell renders tokens as they would be written, end marker excluded.
func spell(toks []token.Token) string {
	var parts []string
	for _, tok := range toks {
		switch {
		case tok.Kind.IsEnd():
		case tok.Kind == token.STRING_LITERAL:
			parts = append(parts, strconv.Quote(tok.Value))
		default:
			parts = append(parts, tok.AsValue())
		}
	}
	return strings.Join(parts, " ")
}

func lower(doc string) ([]token.Token, *diag.Bag) {
	bag := diag.NewBag()
	tz := New(xmlsource.NewStreamReader(strings.NewReader(doc)), WithReporter(bag))
	return token.Drain(tz), bag
}

func stylesheet(decls string) string {
	return `<xsl:stylesheet ` + xslDecl + ` version="2.0">` + decls + `</xsl:stylesheet>`
}

// declarations lowers a stylesheet holding decls and returns what sits
// between the prolog and the query body.
func declarations(decls string) (string, *diag.Bag) {
	toks, bag := lower(stylesheet(decls))
	s := spell(toks)
	So(s, ShouldStartWith, prolog)
	So(s, ShouldEndWith, "apply-template ( )")
	So(toks[len(toks)-1].Kind, ShouldEqual, token.EOF)
	s = strings.TrimPrefix(s, prolog)
	s = strings.TrimSuffix(s, "apply-template ( )")
	return strings.TrimSpace(s), bag
}

// body lowers a template matching a whose content is content, and
// returns the lowered content.
func body(content string) (string, *diag.Bag) {
	s, bag := declarations(`<xsl:template match="a">` + content + `</xsl:template>`)
	const open, close = "declare template matches ( a ) ( ) { current {", "} } ;"
	So(s, ShouldStartWith, open)
	So(s, ShouldEndWith, close)
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(s, open), close)), bag
}

func TestStylesheetModule(t *testing.T) {
	Convey("An empty stylesheet is the built-ins and the query body", t, func() {
		toks, bag := lower(`<xsl:stylesheet ` + xslDecl + ` version="2.0"/>`)
		So(spell(toks), ShouldEqual, prolog+" apply-template ( )")
		So(toks[len(toks)-1].Kind, ShouldEqual, token.EOF)
		So(bag.HasErrors(), ShouldBeFalse)
	})

	Convey("Templates", t, func() {
		s, bag := declarations(`<xsl:template match="a">hello</xsl:template>`)
		So(s, ShouldEqual, `declare template matches ( a ) ( ) { current { text { "hello" } } } ;`)
		So(bag.HasErrors(), ShouldBeFalse)

		s, _ = declarations(`<xsl:template name="t"/>`)
		So(s, ShouldEqual, `declare template name t ( ) { current { ( ) } } ;`)

		s, _ = declarations(`<xsl:template match="a" mode="m p:q" priority="2" xmlns:p="urn:p"/>`)
		So(s, ShouldEqual, `declare template matches ( a ) mode m , p:q priority "2" ( ) { current { ( ) } } ;`)
	})

	Convey("Template parameters come first", t, func() {
		s, _ := declarations(`<xsl:template name="t"><xsl:param name="a"/>` +
			`<xsl:param name="b" tunnel="yes" select="1"/>x</xsl:template>`)
		So(s, ShouldEqual, `declare template name t ( $ a := "" , tunnel $ b := ( ( 1 ) ) ) { current { text { "x" } } } ;`)
	})

	Convey("Version and base wrap the template body", t, func() {
		s, bag := declarations(`<xsl:template match="a" version="1.0" xml:base="u">x</xsl:template>`)
		So(s, ShouldEqual, `declare template matches ( a ) ( ) { base-uri "u" { xslt-version "1.0" { current { text { "x" } } } } } ;`)
		So(bag.WarningCount(), ShouldEqual, 1)
	})

	Convey("Functions", t, func() {
		s, bag := declarations(`<xsl:function name="f:g" xmlns:f="urn:f"><xsl:param name="a"/>` +
			`<xsl:sequence select="$a"/></xsl:function>`)
		So(s, ShouldEqual, `declare function internal f:g ( $ a ) { ( $ a ) } ;`)
		So(bag.HasErrors(), ShouldBeFalse)
	})

	Convey("Global variables and parameters", t, func() {
		s, _ := declarations(`<xsl:variable name="g" select="1"/>`)
		So(s, ShouldEqual, `declare variable internal $ g := ( ( 1 ) ) ;`)

		s, _ = declarations(`<xsl:param name="p"/>`)
		So(s, ShouldEqual, `declare variable internal $ p external := "" ;`)

		s, _ = declarations(`<xsl:param name="p" as="xs:int"/>`)
		So(s, ShouldEqual, `declare variable internal $ p as xs:int external ;`)

		s, bag := declarations(`<xsl:param name="p" required="yes"/>`)
		So(s, ShouldEqual, `declare variable internal $ p external ;`)
		So(bag.HasErrors(), ShouldBeFalse)

		s, bag = declarations(`<xsl:param name="p" required="yes" select="1"/>`)
		So(s, ShouldEqual, `declare variable internal $ p external ;`)
		So(bag.Codes(), ShouldResemble, []diag.Code{diag.XTSE0010})
	})

	Convey("Skipped declarations produce nothing", t, func() {
		s, bag := declarations(`<xsl:output method="xml"/><xsl:key name="k" match="a" use="b"/>` +
			`<xsl:strip-space elements="*"/><my:data xmlns:my="urn:my"><x/></my:data>`)
		So(s, ShouldEqual, "")
		So(bag.HasErrors(), ShouldBeFalse)
	})
}

func TestVariableInstruction(t *testing.T) {
	Convey("The siblings after a variable are its scope", t, func() {
		s, _ := body(`<xsl:variable name="v" select="1"/>`)
		So(s, ShouldEqual, `let internal $ v := ( ( 1 ) ) return ( ( ) )`)

		s, _ = body(`<xsl:variable name="v" select="1"/><xsl:sequence select="$v"/>`)
		So(s, ShouldEqual, `let internal $ v := ( ( 1 ) ) return ( ( $ v ) )`)

		s, _ = body(`x<xsl:variable name="v" select="1"/>y`)
		So(s, ShouldEqual, `text { "x" } , let internal $ v := ( ( 1 ) ) return ( text { "y" } )`)
	})

	Convey("Without content", t, func() {
		s, _ := body(`<xsl:variable name="v"/>`)
		So(s, ShouldEqual, `let internal $ v := "" return ( ( ) )`)

		s, _ = body(`<xsl:variable name="v" as="xs:int"/>`)
		So(s, ShouldEqual, `let internal $ v as xs:int := ( ) return ( ( ) )`)
	})

	Convey("With a sequence constructor", t, func() {
		s, _ := body(`<xsl:variable name="v">x</xsl:variable>`)
		So(s, ShouldEqual, `let internal $ v := document internal { text { "x" } } return ( ( ) )`)

		s, _ = body(`<xsl:variable name="v" as="xs:string">x</xsl:variable>`)
		So(s, ShouldEqual, `let internal $ v as xs:string := ( text { "x" } ) return ( ( ) )`)
	})

	Convey("Select and content together are reported", t, func() {
		s, bag := body(`<xsl:variable name="v" select="1">x</xsl:variable>`)
		So(s, ShouldEqual, `let internal $ v := ( ( 1 ) ) return ( ( ) )`)
		So(bag.Codes(), ShouldResemble, []diag.Code{diag.XTSE0620})
	})

	Convey("Wrappers on a variable close after its scope", t, func() {
		s, _ := body(`<xsl:variable name="v" select="1" xml:base="u"/>x`)
		So(s, ShouldEqual, `base-uri "u" { let internal $ v := ( ( 1 ) ) return ( text { "x" } ) }`)
	})
}

func TestInstructions(t *testing.T) {
	Convey("Conditionals", t, func() {
		s, _ := body(`<xsl:if test="$x">y</xsl:if>`)
		So(s, ShouldEqual, `if ( ( $ x ) ) then ( text { "y" } ) else ( )`)

		s, _ = body(`<xsl:choose><xsl:when test="1">a</xsl:when><xsl:otherwise>b</xsl:otherwise></xsl:choose>`)
		So(s, ShouldEqual, `if ( ( 1 ) ) then ( text { "a" } ) else ( text { "b" } )`)

		s, _ = body(`<xsl:choose> <xsl:when test="1">a</xsl:when> <xsl:when test="2">b</xsl:when> </xsl:choose>`)
		So(s, ShouldEqual, `if ( ( 1 ) ) then ( text { "a" } ) else if ( ( 2 ) ) then ( text { "b" } ) else ( )`)
	})

	Convey("Choose needs a when", t, func() {
		s, bag := body(`<xsl:choose/>`)
		So(s, ShouldEqual, `( )`)
		So(bag.Codes(), ShouldResemble, []diag.Code{diag.XTSE0010})

		s, bag = body(`<xsl:choose><xsl:when test="1">a</xsl:when><xsl:otherwise>b</xsl:otherwise><xsl:when test="2"/></xsl:choose>`)
		So(s, ShouldEqual, `if ( ( 1 ) ) then ( text { "a" } ) else ( text { "b" } )`)
		So(bag.Codes(), ShouldResemble, []diag.Code{diag.XTSE0010})
	})

	Convey("Value-of joins its items", t, func() {
		s, _ := body(`<xsl:value-of select="a"/>`)
		So(s, ShouldEqual, `text { internal-name generic-string-join ( ( ( a ) ) , " " ) }`)

		s, _ = body(`<xsl:value-of>x</xsl:value-of>`)
		So(s, ShouldEqual, `text { internal-name generic-string-join ( ( text { "x" } ) , "" ) }`)

		s, _ = body(`<xsl:value-of select="a" separator="-"/>`)
		So(s, ShouldEqual, `text { internal-name generic-string-join ( ( ( a ) ) , avt ( "-" ) ) }`)
	})

	Convey("Backwards compatible value-of takes the first item", t, func() {
		s, bag := body(`<xsl:value-of select="a" version="1.0"/>`)
		So(s, ShouldEqual, `xslt-version "1.0" { text { internal-name generic-string-join ( ( ( a ) ) [ 1 ] , " " ) } }`)
		So(bag.WarningCount(), ShouldEqual, 1)
	})

	Convey("Text", t, func() {
		s, _ := body(`<xsl:text> a </xsl:text>`)
		So(s, ShouldEqual, `text { " a " }`)
	})

	Convey("Templates are applied to the children by default", t, func() {
		s, _ := body(`<xsl:apply-templates/>`)
		So(s, ShouldEqual, `child :: node ( ) for-apply-template apply-template ( )`)

		s, _ = body(`<xsl:apply-templates select="b" mode="m"><xsl:with-param name="p" select="1"/></xsl:apply-templates>`)
		So(s, ShouldEqual, `( b ) for-apply-template apply-template mode m ( $ p := ( ( 1 ) ) )`)

		s, _ = body(`<xsl:apply-templates mode="#current"> <xsl:sort select="k"/> </xsl:apply-templates>`)
		So(s, ShouldEqual, `child :: node ( ) for-apply-template sort order by ( ( k ) ) ascending return apply-template mode #current ( ) end_sort`)
	})

	Convey("Call-template", t, func() {
		s, _ := body(`<xsl:call-template name="t"><xsl:with-param name="p" tunnel="yes">x</xsl:with-param></xsl:call-template>`)
		So(s, ShouldEqual, `call-template t ( tunnel $ p := document internal { text { "x" } } )`)
	})

	Convey("For-each", t, func() {
		s, _ := body(`<xsl:for-each select="a">x</xsl:for-each>`)
		So(s, ShouldEqual, `( a ) map current { text { "x" } }`)

		s, _ = body(`<xsl:for-each select="a"><xsl:sort select="@k" order="descending"/><xsl:sort data-type="number"/>x</xsl:for-each>`)
		So(s, ShouldEqual, `( a ) map sort order by ( ( @ k ) ) descending , number ( . ) ascending return current { text { "x" } } end_sort`)
	})

	Convey("Sort keys", t, func() {
		s, bag := body(`<xsl:for-each select="a"><xsl:sort stable="yes" collation="c"/><xsl:sort stable="no"/></xsl:for-each>`)
		So(s, ShouldEqual, `( a ) map sort stable order by ( . ) ascending internal collation avt ( "c" ) , ( . ) ascending return current { ( ) } end_sort`)
		So(bag.Codes(), ShouldResemble, []diag.Code{diag.XTSE0020})
	})

	Convey("Perform-sort", t, func() {
		s, bag := body(`<xsl:perform-sort select="a"><xsl:sort select="k"/></xsl:perform-sort>`)
		So(s, ShouldEqual, `( ( a ) ) map sort order by ( ( k ) ) ascending return . end_sort`)
		So(bag.HasErrors(), ShouldBeFalse)

		s, bag = body(`<xsl:perform-sort select="a"/>`)
		So(s, ShouldEqual, `( ( a ) ) map .`)
		So(bag.Codes(), ShouldResemble, []diag.Code{diag.XTSE1040})
	})

	Convey("Copy", t, func() {
		s, _ := body(`<xsl:copy>x</xsl:copy>`)
		So(s, ShouldEqual, `let internal $ copy-content := ( text { "x" } ) return `+
			`if ( self :: element ( ) ) then ( element internal { node-name ( . ) } { $ copy-content } ) `+
			`else if ( self :: document-node ( ) ) then ( document internal { $ copy-content } ) else ( . )`)
	})

	Convey("Node constructors", t, func() {
		s, _ := body(`<xsl:copy-of select="a"/>`)
		So(s, ShouldEqual, `( a )`)

		s, _ = body(`<xsl:comment select="a"/>`)
		So(s, ShouldEqual, `comment internal { ( a ) }`)

		s, _ = body(`<xsl:processing-instruction name="p">x</xsl:processing-instruction>`)
		So(s, ShouldEqual, `processing-instruction { avt ( "p" ) } { text { "x" } }`)

		s, _ = body(`<xsl:document>x</xsl:document>`)
		So(s, ShouldEqual, `document internal { text { "x" } }`)

		s, _ = body(`<xsl:element name="e"/>`)
		So(s, ShouldEqual, `element internal { avt ( "e" ) } { ( ) }`)

		s, _ = body(`<xsl:element name="e" namespace="urn:e"/>`)
		So(s, ShouldEqual, `element internal { QName ( avt ( "urn:e" ) , avt ( "e" ) ) } { ( ) }`)

		s, _ = body(`<xsl:attribute name="a" select="1"/>`)
		So(s, ShouldEqual, `attribute internal { avt ( "a" ) } { internal-name generic-string-join ( ( ( 1 ) ) , " " ) }`)

		s, _ = body(`<xsl:namespace name="p" select="'urn:p'"/>`)
		So(s, ShouldEqual, `namespace { avt ( "p" ) } { ( "urn:p" ) }`)
	})

	Convey("Namespace nodes need a value", t, func() {
		s, bag := body(`<xsl:namespace name="p"/>`)
		So(s, ShouldEqual, `namespace { avt ( "p" ) } { ( ) }`)
		So(bag.Codes(), ShouldResemble, []diag.Code{diag.XTSE0910})
	})

	Convey("Unsupported instructions yield the empty sequence", t, func() {
		s, bag := body(`<xsl:number/>`)
		So(s, ShouldEqual, `( )`)
		So(bag.WarningCount(), ShouldEqual, 1)
		So(bag.HasErrors(), ShouldBeFalse)

		s, bag = body(`<xsl:message terminate="maybe">m</xsl:message>`)
		So(s, ShouldEqual, `( )`)
		So(bag.Codes(), ShouldResemble, []diag.Code{diag.XTSE0020})
	})

	Convey("Fallback", t, func() {
		s, _ := body(`<xsl:sequence select="1"><xsl:fallback>f</xsl:fallback></xsl:sequence>`)
		So(s, ShouldEqual, `( 1 )`)

		s, bag := body(`<xsl:frobnicate version="3.0"><xsl:fallback>f</xsl:fallback><xsl:fallback>g</xsl:fallback></xsl:frobnicate>`)
		So(s, ShouldEqual, `xslt-version "3.0" { ( text { "f" } , text { "g" } ) }`)
		So(bag.HasErrors(), ShouldBeFalse)

		s, bag = body(`<xsl:frobnicate><xsl:fallback>f</xsl:fallback></xsl:frobnicate>`)
		So(s, ShouldEqual, `( )`)
		So(bag.Codes(), ShouldResemble, []diag.Code{diag.XTSE0010})
	})

	Convey("Result documents are written inline", t, func() {
		s, _ := body(`<xsl:result-document href="x">a</xsl:result-document>`)
		So(s, ShouldEqual, `text { "a" }`)
	})
}

func TestSequenceConstructor(t *testing.T) {
	Convey("Items are comma separated", t, func() {
		s, _ := body(`<a/><b/>`)
		So(s, ShouldEqual, `element internal a { ( ) } , element internal b { ( ) }`)
	})

	Convey("Text is coalesced across comments", t, func() {
		s, _ := body(`a<!--c-->b<?pi x?>c`)
		So(s, ShouldEqual, `text { "abc" }`)
	})

	Convey("Whitespace in CDATA belongs to the surrounding text", t, func() {
		s, _ := body(`a<![CDATA[ ]]>b`)
		So(s, ShouldEqual, `text { "a b" }`)

		s, _ = body(`<xsl:if test="1"><![CDATA[ ]]> <!--c--> </xsl:if>`)
		So(s, ShouldEqual, `if ( ( 1 ) ) then ( ( ) ) else ( )`)
	})

	Convey("Whitespace is stripped unless preserved", t, func() {
		s, _ := body(`<xsl:if test="1"> </xsl:if>`)
		So(s, ShouldEqual, `if ( ( 1 ) ) then ( ( ) ) else ( )`)

		s, _ = body(`<xsl:if test="1" xml:space="preserve"> </xsl:if>`)
		So(s, ShouldEqual, `if ( ( 1 ) ) then ( text { " " } ) else ( )`)
	})

	Convey("Literal result elements", t, func() {
		s, _ := body(`<out a="1{$x}">t</out>`)
		So(s, ShouldEqual, `element internal out { attribute internal a { avt ( "1" { $ x } ) } , text { "t" } }`)

		s, _ = body(`<p:out xmlns:p="urn:p"/>`)
		So(s, ShouldEqual, `declare namespace p = "urn:p" { element internal p:out { ( ) } }`)
	})

	Convey("Base and version on instructions", t, func() {
		s, _ := body(`<xsl:sequence select="1" xml:base="u"/>`)
		So(s, ShouldEqual, `base-uri "u" { ( 1 ) }`)

		s, _ = body(`<out xsl:version="2.0"/>`)
		So(s, ShouldEqual, `xslt-version "2.0" { element internal out { ( ) } }`)
	})
}

func TestSimplifiedStylesheet(t *testing.T) {
	Convey("A literal document element is a template for the root", t, func() {
		toks, bag := lower(`<out ` + xslDecl + ` xsl:version="2.0">x</out>`)
		So(spell(toks), ShouldEqual, builtIns+
			` declare template matches ( / ) { xslt-version "2.0" { current { `+
			`declare namespace xsl = "http://www.w3.org/1999/XSL/Transform" { `+
			`element internal out { text { "x" } } } } } } ; apply-template ( )`)
		So(toks[len(toks)-1].Kind, ShouldEqual, token.EOF)
		So(bag.HasErrors(), ShouldBeFalse)
	})

	Convey("It must carry xsl:version", t, func() {
		_, bag := lower(`<out/>`)
		So(bag.Codes(), ShouldResemble, []diag.Code{diag.XTSE0010})
	})
}

func TestDiagnostics(t *testing.T) {
	cases := []struct {
		name  string
		decls string
		code  diag.Code
	}{
		{"template without match or name", `<xsl:template/>`, diag.XTSE0500},
		{"unknown attribute", `<xsl:template match="a" foo="1"/>`, diag.XTSE0090},
		{"malformed version", `<xsl:template match="a" version="two"/>`, diag.XTSE0110},
		{"malformed priority", `<xsl:template match="a" priority="high"/>`, diag.XTSE0530},
		{"top-level text", `text`, diag.XTSE0120},
		{"unprefixed top-level element", `<data/>`, diag.XTSE0130},
		{"type with validation", `<xsl:template match="a"><xsl:element name="e" type="t" validation="strict"/></xsl:template>`, diag.XTSE1505},
		{"bad validation", `<xsl:template match="a"><xsl:document validation="loose"/></xsl:template>`, diag.XTSE0020},
		{"schema import", `<xsl:import-schema namespace="urn:s"/>`, diag.XTSE1660},
		{"XSLT attribute on a literal element", `<xsl:template match="a"><out xsl:select="1"/></xsl:template>`, diag.XTSE0805},
		{"function parameter default", `<xsl:function name="f:f" xmlns:f="urn:f"><xsl:param name="a" select="1"/></xsl:function>`, diag.XTSE0760},
		{"missing required attribute", `<xsl:template match="a"><xsl:if/></xsl:template>`, diag.XTSE0010},
		{"bad xml:space", `<xsl:template match="a" xml:space="keep"/>`, diag.XTSE0020},
		{"include with content", `<xsl:include href="x"><a/></xsl:include>`, diag.XTSE0010},
		{"misplaced param", `<xsl:template match="a">x<xsl:param name="p"/></xsl:template>`, diag.XTSE0010},
		{"unknown declaration", `<xsl:frobnicate/>`, diag.XTSE0010},
	}
	for _, c := range cases {
		Convey("Reports "+c.name, t, func() {
			_, bag := lower(stylesheet(c.decls))
			So(bag.Codes(), ShouldContain, c.code)
		})
	}

	Convey("Unknown declarations are allowed forwards-compatibly", t, func() {
		_, bag := lower(`<xsl:stylesheet ` + xslDecl + ` version="3.0"><xsl:frobnicate/></xsl:stylesheet>`)
		So(bag.HasErrors(), ShouldBeFalse)
	})
}

func TestEndOfInput(t *testing.T) {
	Convey("A document that is not well-formed ends unexpectedly", t, func() {
		toks, bag := lower(stylesheet(`<xsl:template match="a"><xsl:if test="1">`))
		So(toks[len(toks)-1].Kind, ShouldEqual, token.UNEXPECTED_EOF)
		So(bag.Codes(), ShouldContain, diag.XTSE0010)
	})

	Convey("The end is sticky and leaves the tokenizer outside", t, func() {
		tz := New(xmlsource.NewStreamReader(strings.NewReader(stylesheet(""))))
		token.Drain(tz)
		So(tz.Next().Kind, ShouldEqual, token.EOF)
		So(tz.State(), ShouldEqual, OutsideDocumentElement)
	})

	Convey("Raw scanning has nothing to skip", t, func() {
		tz := New(xmlsource.NewStreamReader(strings.NewReader(stylesheet(""))))
		So(tz.BeginRawScan(), ShouldEqual, token.Position(0))
		tz.ResumeFrom(0)
		So(tz.Next().Kind, ShouldEqual, token.DECLARE)
	})
}

func TestBalance(t *testing.T) {
	Convey("Every lowering balances its brackets", t, func() {
		toks, bag := lower(stylesheet(`
			<xsl:param name="p" select="1"/>
			<xsl:template match="a" xml:base="b" version="2.0">
				<xsl:param name="q"/>
				<xsl:variable name="v"><x/></xsl:variable>
				<xsl:for-each select="$v"><xsl:sort select="."/><y a="{$q}"/></xsl:for-each>
				<xsl:choose><xsl:when test="1"><xsl:copy><xsl:apply-templates/></xsl:copy></xsl:when></xsl:choose>
				<xsl:variable name="w" as="xs:int" select="2"/>
				<xsl:call-template name="t"><xsl:with-param name="z" select="$w"/></xsl:call-template>
			</xsl:template>
			<xsl:template name="t"><xsl:perform-sort select="1"><xsl:sort/></xsl:perform-sort></xsl:template>`))
		So(bag.HasErrors(), ShouldBeFalse)
		depth := map[token.Kind]int{}
		for _, tok := range toks {
			switch tok.Kind {
			case token.LPAREN, token.LBRACE, token.LBRACKET:
				depth[tok.Kind]++
			case token.RPAREN:
				depth[token.LPAREN]--
			case token.RBRACE:
				depth[token.LBRACE]--
			case token.RBRACKET:
				depth[token.LBRACKET]--
			}
			for _, d := range depth {
				So(d, ShouldBeGreaterThanOrEqualTo, 0)
			}
		}
		So(depth[token.LPAREN], ShouldEqual, 0)
		So(depth[token.LBRACE], ShouldEqual, 0)
		So(depth[token.LBRACKET], ShouldEqual, 0)
	})
}

func TestReaders(t *testing.T) {
	Convey("Both readers lower a stylesheet the same way", t, func() {
		src := stylesheet(`<xsl:template match="a" xml:space="preserve"><out b="1">t<!--c--></out></xsl:template>`)
		stream, _ := lower(src)

		doc, err := xmlsource.Parse([]byte(src))
		So(err, ShouldBeNil)
		defer doc.Free()
		dom := token.Drain(New(xmlsource.NewDocumentReader(doc)))
		So(spell(dom), ShouldEqual, spell(stream))
		So(dom[len(dom)-1].Kind, ShouldEqual, token.EOF)
	})
}

func TestOptions(t *testing.T) {
	Convey("Names are interned in the pool", t, func() {
		pool := namepool.New()
		tz := New(xmlsource.NewStreamReader(strings.NewReader(stylesheet(`<xsl:template match="a"/>`))), WithNamePool(pool))
		token.Drain(tz)
		n := pool.Len()
		So(n, ShouldBeGreaterThan, 0)
		pool.Allocate(XSLT_NAMESPACE, "template")
		pool.Allocate("", "match")
		So(pool.Len(), ShouldEqual, n)
	})

	Convey("Locations are offset", t, func() {
		tz := New(xmlsource.NewStreamReader(strings.NewReader(stylesheet(""))), WithLocation(token.Location{Line: 10, Column: 5}))
		So(tz.Next().Loc, ShouldResemble, token.Location{Line: 10, Column: 5})
	})
}

func TestNames(t *testing.T) {
	Convey("Name helpers", t, func() {
		So(IsXsltName(xmlsource.Name{Space: XSLT_NAMESPACE, Local: "if"}, "if"), ShouldBeTrue)
		So(IsXsltName(xmlsource.Name{Local: "if"}, "if"), ShouldBeFalse)
		So(IsBlank(" \n\t"), ShouldBeTrue)
		So(IsBlank(" x "), ShouldBeFalse)
	})

	Convey("Versions", t, func() {
		for _, v := range []string{"2.0", "2", " 2.00 ", "+2.0"} {
			r, ok := parseDecimal(v)
			So(ok, ShouldBeTrue)
			So(modeFor(r), ShouldEqual, Normal)
		}
		r, _ := parseDecimal("1.0")
		So(modeFor(r), ShouldEqual, BackwardsCompatible)
		r, _ = parseDecimal("3.")
		So(modeFor(r), ShouldEqual, ForwardsCompatible)
		r, _ = parseDecimal(".5")
		So(modeFor(r), ShouldEqual, BackwardsCompatible)
		for _, v := range []string{"", "two", "1.0.0", "1e3", "--1", "."} {
			_, ok := parseDecimal(v)
			So(ok, ShouldBeFalse)
		}
	})
}

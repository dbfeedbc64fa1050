package xquery

import (
	"github.com/jbowtie/kowhai"
	"github.com/jbowtie/xqlex/token"
)

// Grammar returns the grammar of the token stream produced by Tokenizer
// and by the stylesheet tokenizer: XQuery 1.0 with the internal forms
// the stylesheet tokenizer synthesizes. Terminals match on token kind.
func Grammar() (g *kowhai.Grammar) {
	g = kowhai.CreateGrammar()

	// Common symbols
	LPAREN := g.Type(int(token.LPAREN))
	RPAREN := g.Type(int(token.RPAREN))
	LBRACE := g.Type(int(token.LBRACE))
	RBRACE := g.Type(int(token.RBRACE))
	COMMA := g.Type(int(token.COMMA))
	SEMI := g.Type(int(token.SEMICOLON))
	DOLLAR := g.Type(int(token.DOLLAR))
	ASSIGN := g.Type(int(token.ASSIGN))
	DCOLON := g.Type(int(token.COLONCOLON))
	EQUALS := g.Type(int(token.G_EQ))
	NCNAME := g.Type(int(token.NCNAME))
	STRING := g.Type(int(token.STRING_LITERAL))
	INTERNAL := g.Type(int(token.INTERNAL))
	DECLARE := g.Type(int(token.DECLARE))
	RETURN := g.Type(int(token.RETURN))

	// QNAME matches both a QNAME and an NCNAME
	g.UnionSingleTerms("QNAME", g.Type(int(token.QNAME)), NCNAME)

	//[1] Module ::= VersionDecl? (LibraryModule | MainModule)
	g.CreateRule("Module", g.Optional(g.Lookup("VersionDecl")), g.Or(g.Lookup("LibraryModule"), g.Lookup("MainModule")))
	//[2] VersionDecl ::= "xquery" "version" StringLiteral ("encoding" StringLiteral)? Separator
	g.CreateRule("VersionDecl", g.Type(int(token.XQUERY)), g.Type(int(token.VERSION)), STRING,
		g.Optional(g.Type(int(token.ENCODING)), STRING), SEMI)
	//[3] MainModule ::= Prolog QueryBody
	g.CreateRule("MainModule", g.Lookup("Prolog"), g.Lookup("Expr"))
	//[4] LibraryModule ::= ModuleDecl Prolog
	g.CreateRule("LibraryModule", g.Lookup("ModuleDecl"), g.Lookup("Prolog"))
	//[5] ModuleDecl ::= "module" "namespace" NCName "=" URILiteral Separator
	g.CreateRule("ModuleDecl", g.Type(int(token.MODULE)), g.Type(int(token.NAMESPACE)), NCNAME, EQUALS, STRING, SEMI)
	//[6] Prolog ::= ((DefaultNamespaceDecl | Setter | NamespaceDecl | Import | VarDecl | FunctionDecl | OptionDecl | TemplateDecl) Separator)*
	//a lowered stylesheet declares its built-in templates before its namespaces,
	//so the two groups of declarations may interleave
	g.CreateRule("Prolog",
		g.Star(g.Or(g.Lookup("DefaultNamespaceDecl"), g.Lookup("Setter"), g.Lookup("NamespaceDecl"), g.Lookup("Import"),
			g.Lookup("VarDecl"), g.Lookup("FunctionDecl"), g.Lookup("OptionDecl"), g.Lookup("TemplateDecl")), SEMI))
	//[7] Setter ::= BoundarySpaceDecl | DefaultCollationDecl | BaseURIDecl | ConstructionDecl | OrderingModeDecl | EmptyOrderDecl | CopyNamespacesDecl
	g.UnionSingleTerms("Setter", g.Lookup("BoundarySpaceDecl"), g.Lookup("DefaultCollationDecl"), g.Lookup("BaseURIDecl"),
		g.Lookup("ConstructionDecl"), g.Lookup("OrderingModeDecl"), g.Lookup("EmptyOrderDecl"), g.Lookup("CopyNamespacesDecl"))
	//[8] BoundarySpaceDecl ::= "declare" "boundary-space" ("preserve" | "strip")
	g.CreateRule("BoundarySpaceDecl", DECLARE, g.Type(int(token.BOUNDARY_SPACE)), g.Lookup("StripOrPreserve"))
	g.UnionSingleTerms("StripOrPreserve", g.Type(int(token.PRESERVE)), g.Type(int(token.STRIP)))
	//[9] DefaultCollationDecl ::= "declare" "default" "collation" URILiteral
	g.CreateRule("DefaultCollationDecl", DECLARE, g.Type(int(token.DEFAULT)), g.Type(int(token.COLLATION)), STRING)
	//[10] BaseURIDecl ::= "declare" "base-uri" "internal"? URILiteral
	g.CreateRule("BaseURIDecl", DECLARE, g.Type(int(token.BASE_URI)), g.Optional(INTERNAL), STRING)
	//[11] ConstructionDecl ::= "declare" "construction" ("strip" | "preserve")
	g.CreateRule("ConstructionDecl", DECLARE, g.Type(int(token.CONSTRUCTION)), g.Lookup("StripOrPreserve"))
	//[12] OrderingModeDecl ::= "declare" "ordering" ("ordered" | "unordered")
	g.CreateRule("OrderingModeDecl", DECLARE, g.Type(int(token.ORDERING)), g.Or(g.Type(int(token.ORDERED)), g.Type(int(token.UNORDERED))))
	//[13] EmptyOrderDecl ::= "declare" "default" "order" "empty" ("greatest" | "least")
	g.CreateRule("EmptyOrderDecl", DECLARE, g.Type(int(token.DEFAULT)), g.Type(int(token.ORDER)), g.Lookup("EmptyOrder"))
	g.CreateRule("EmptyOrder", g.Type(int(token.EMPTY)), g.Or(g.Type(int(token.GREATEST)), g.Type(int(token.LEAST))))
	//[14] CopyNamespacesDecl ::= "declare" "copy-namespaces" PreserveMode "," InheritMode
	g.CreateRule("CopyNamespacesDecl", DECLARE, g.Type(int(token.COPY_NAMESPACES)),
		g.Or(g.Type(int(token.PRESERVE)), g.Type(int(token.NO_PRESERVE))), COMMA,
		g.Or(g.Type(int(token.INHERIT)), g.Type(int(token.NO_INHERIT))))
	//[15] Import ::= SchemaImport | ModuleImport
	g.CreateRule("Import", g.Type(int(token.IMPORT)), g.Type(int(token.SCHEMA)), g.Optional(g.Lookup("SchemaPrefix")), STRING, g.Optional(g.Lookup("LocationHints")))
	g.CreateRule("Import", g.Type(int(token.IMPORT)), g.Type(int(token.MODULE)),
		g.Optional(g.Type(int(token.NAMESPACE)), NCNAME, EQUALS), STRING, g.Optional(g.Lookup("LocationHints")))
	//[16] SchemaPrefix ::= ("namespace" NCName "=") | ("default" "element" "namespace")
	g.CreateRule("SchemaPrefix", g.Type(int(token.NAMESPACE)), NCNAME, EQUALS)
	g.CreateRule("SchemaPrefix", g.Type(int(token.DEFAULT)), g.Type(int(token.ELEMENT)), g.Type(int(token.NAMESPACE)))
	g.CreateRule("LocationHints", g.Type(int(token.AT)), STRING, g.Star(COMMA, STRING))
	//[17] NamespaceDecl ::= "declare" "namespace" NCName "=" URILiteral "internal"?
	g.CreateRule("NamespaceDecl", DECLARE, g.Type(int(token.NAMESPACE)), NCNAME, EQUALS, STRING, g.Optional(INTERNAL))
	//[18] DefaultNamespaceDecl ::= "declare" "default" ("element" | "function") "namespace" URILiteral
	g.CreateRule("DefaultNamespaceDecl", DECLARE, g.Type(int(token.DEFAULT)),
		g.Or(g.Type(int(token.ELEMENT)), g.Type(int(token.FUNCTION))), g.Type(int(token.NAMESPACE)), STRING)
	//[19] VarDecl ::= "declare" "variable" "internal"? "$" QName TypeDeclaration? "external"? (":=" ExprSingle)?
	// a stylesheet parameter is external with a default
	g.CreateRule("VarDecl", DECLARE, g.Type(int(token.VARIABLE)), g.Optional(INTERNAL), DOLLAR, g.Lookup("QNAME"),
		g.Optional(g.Lookup("TypeDeclaration")), g.Optional(g.Type(int(token.EXTERNAL))), g.Optional(g.Lookup("Initializer")))
	g.CreateRule("Initializer", ASSIGN, g.Lookup("ExprSingle"))
	//[20] OptionDecl ::= "declare" "option" QName StringLiteral
	g.CreateRule("OptionDecl", DECLARE, g.Type(int(token.OPTION)), g.Lookup("QNAME"), STRING)
	//[21] FunctionDecl ::= "declare" "function" "internal"? QName "(" ParamList? ")" ("as" SequenceType)? (EnclosedExpr | "external")
	g.CreateRule("FunctionDecl", DECLARE, g.Type(int(token.FUNCTION)), g.Optional(INTERNAL), g.Lookup("QNAME"),
		LPAREN, g.Optional(g.Lookup("ParamList")), RPAREN, g.Optional(g.Lookup("TypeDeclaration")),
		g.Or(g.Lookup("EnclosedExpr"), g.Type(int(token.EXTERNAL))))
	//[22] ParamList ::= Param ("," Param)*
	g.CreateRule("ParamList", g.Lookup("Param"), g.Star(COMMA, g.Lookup("Param")))
	//[23] Param ::= "tunnel"? "$" QName TypeDeclaration? (":=" ExprSingle)?
	g.CreateRule("Param", g.Optional(g.Type(int(token.TUNNEL))), DOLLAR, g.Lookup("QNAME"),
		g.Optional(g.Lookup("TypeDeclaration")), g.Optional(g.Lookup("Initializer")))
	// TemplateDecl ::= "declare" "template" ("name" QName)? ("matches" "(" Expr ")")? ("mode" ModeList)? ("priority" StringLiteral)? "(" ParamList? ")" TypeDeclaration? EnclosedExpr
	g.CreateRule("TemplateDecl", DECLARE, g.Type(int(token.TEMPLATE)),
		g.Optional(g.Type(int(token.NAME)), g.Lookup("QNAME")),
		g.Optional(g.Type(int(token.MATCHES)), LPAREN, g.Lookup("Expr"), RPAREN),
		g.Optional(g.Type(int(token.MODE)), g.Lookup("QNAME"), g.Star(COMMA, g.Lookup("QNAME"))),
		g.Optional(g.Type(int(token.PRIORITY)), STRING),
		g.Optional(LPAREN, g.Optional(g.Lookup("ParamList")), RPAREN),
		g.Optional(g.Lookup("TypeDeclaration")), g.Lookup("EnclosedExpr"))
	//[29] EnclosedExpr ::= "{" Expr "}"
	g.CreateRule("EnclosedExpr", LBRACE, g.Lookup("Expr"), RBRACE)

	//[31] Expr ::= ExprSingle ("," ExprSingle)*
	g.CreateRule("Expr", g.Lookup("ExprSingle"), g.Star(COMMA, g.Lookup("ExprSingle")))
	//[32] ExprSingle ::= FLWORExpr | QuantifiedExpr | TypeswitchExpr | IfExpr | OrExpr
	g.CreateRule("ExprSingle", g.Lookup("FLWORExpr"))
	g.CreateRule("ExprSingle", g.Lookup("QuantifiedExpr"))
	g.CreateRule("ExprSingle", g.Lookup("TypeswitchExpr"))
	g.CreateRule("ExprSingle", g.Lookup("IfExpr"))
	g.CreateRule("ExprSingle", g.Lookup("MapExpr"))
	g.CreateRule("ExprSingle", g.Lookup("OrExpr"))
	//[33] FLWORExpr ::= (ForClause | LetClause)+ WhereClause? OrderByClause? "return" ExprSingle
	g.CreateRule("FLWORExpr", g.Or(g.Lookup("ForClause"), g.Lookup("LetClause")), g.Star(g.Or(g.Lookup("ForClause"), g.Lookup("LetClause"))),
		g.Optional(g.Type(int(token.WHERE)), g.Lookup("ExprSingle")), g.Optional(g.Lookup("OrderByClause")), RETURN, g.Lookup("ExprSingle"))
	//[34] ForClause ::= "for" "$" VarName TypeDeclaration? PositionalVar? "in" ExprSingle ("," "$" VarName TypeDeclaration? PositionalVar? "in" ExprSingle)*
	g.CreateRule("ForClause", g.Type(int(token.FOR)), g.Lookup("ForBinding"), g.Star(COMMA, g.Lookup("ForBinding")))
	g.CreateRule("ForBinding", DOLLAR, g.Lookup("QNAME"), g.Optional(g.Lookup("TypeDeclaration")),
		g.Optional(g.Type(int(token.AT)), DOLLAR, g.Lookup("QNAME")), g.Type(int(token.IN)), g.Lookup("ExprSingle"))
	//[36] LetClause ::= "let" "internal"? "$" VarName TypeDeclaration? ":=" ExprSingle ("," "$" VarName TypeDeclaration? ":=" ExprSingle)*
	g.CreateRule("LetClause", g.Type(int(token.LET)), g.Optional(INTERNAL), g.Lookup("LetBinding"), g.Star(COMMA, g.Lookup("LetBinding")))
	g.CreateRule("LetBinding", DOLLAR, g.Lookup("QNAME"), g.Optional(g.Lookup("TypeDeclaration")), g.Lookup("Initializer"))
	//[38] OrderByClause ::= (("order" "by") | ("stable" "order" "by")) OrderSpecList
	g.CreateRule("OrderByClause", g.Optional(g.Type(int(token.STABLE))), g.Type(int(token.ORDER)), g.Type(int(token.BY)),
		g.Lookup("OrderSpec"), g.Star(COMMA, g.Lookup("OrderSpec")))
	//[40] OrderSpec ::= ExprSingle OrderModifier
	g.CreateRule("OrderSpec", g.Lookup("ExprSingle"), g.Lookup("OrderModifier"))
	//[41] OrderModifier ::= ("ascending" | "descending")? ("empty" ("greatest" | "least"))? ("collation" URILiteral)?
	g.CreateRule("OrderModifier", g.Optional(g.Or(g.Type(int(token.ASCENDING)), g.Type(int(token.DESCENDING)))),
		g.Optional(g.Lookup("EmptyOrder")),
		g.Optional(g.Optional(INTERNAL), g.Type(int(token.COLLATION)), g.Or(STRING, g.Lookup("AttributeValueTemplate"))))
	//[42] QuantifiedExpr ::= ("some" | "every") "$" VarName TypeDeclaration? "in" ExprSingle ("," "$" VarName TypeDeclaration? "in" ExprSingle)* "satisfies" ExprSingle
	g.CreateRule("QuantifiedExpr", g.Or(g.Type(int(token.SOME)), g.Type(int(token.EVERY))), g.Lookup("InBinding"),
		g.Star(COMMA, g.Lookup("InBinding")), g.Type(int(token.SATISFIES)), g.Lookup("ExprSingle"))
	g.CreateRule("InBinding", DOLLAR, g.Lookup("QNAME"), g.Optional(g.Lookup("TypeDeclaration")), g.Type(int(token.IN)), g.Lookup("ExprSingle"))
	//[43] TypeswitchExpr ::= "typeswitch" "(" Expr ")" CaseClause+ "default" ("$" VarName)? "return" ExprSingle
	g.CreateRule("TypeswitchExpr", g.Type(int(token.TYPESWITCH)), LPAREN, g.Lookup("Expr"), RPAREN,
		g.Lookup("CaseClause"), g.Star(g.Lookup("CaseClause")),
		g.Type(int(token.DEFAULT)), g.Optional(DOLLAR, g.Lookup("QNAME")), RETURN, g.Lookup("ExprSingle"))
	//[44] CaseClause ::= "case" ("$" VarName "as")? SequenceType "return" ExprSingle
	g.CreateRule("CaseClause", g.Type(int(token.CASE)), g.Optional(DOLLAR, g.Lookup("QNAME"), g.Type(int(token.AS))),
		g.Lookup("SequenceType"), RETURN, g.Lookup("ExprSingle"))
	//[45] IfExpr ::= "if" "(" Expr ")" "then" ExprSingle "else" ExprSingle
	g.CreateRule("IfExpr", g.Type(int(token.IF)), LPAREN, g.Lookup("Expr"), RPAREN, g.Type(int(token.THEN)), g.Lookup("ExprSingle"),
		g.Type(int(token.ELSE)), g.Lookup("ExprSingle"))
	// MapExpr ::= ParenthesizedExpr "map" SortClause? ExprSingle "end_sort"?
	g.CreateRule("MapExpr", g.Lookup("ParenthesizedExpr"), g.Type(int(token.MAP)), g.Optional(g.Lookup("SortClause")),
		g.Lookup("ExprSingle"), g.Optional(g.Type(int(token.END_SORT))))
	// SortClause ::= "sort" OrderByClause "return"
	g.CreateRule("SortClause", g.Type(int(token.SORT)), g.Lookup("OrderByClause"), RETURN)
	//[46] OrExpr ::= AndExpr ( "or" AndExpr )*
	g.CreateRule("OrExpr", g.Lookup("AndExpr"), g.Star(g.Type(int(token.OR)), g.Lookup("AndExpr")))
	//[47] AndExpr ::= ComparisonExpr ( "and" ComparisonExpr )*
	g.CreateRule("AndExpr", g.Lookup("ComparisonExpr"), g.Star(g.Type(int(token.AND)), g.Lookup("ComparisonExpr")))
	//[48] ComparisonExpr ::= RangeExpr ( (ValueComp | GeneralComp | NodeComp) RangeExpr )?
	g.CreateRule("ComparisonExpr", g.Lookup("RangeExpr"), g.Optional(g.Or(g.Lookup("ValueComp"), g.Lookup("GeneralComp"), g.Lookup("NodeComp")), g.Lookup("RangeExpr")))
	//[49] RangeExpr ::= AdditiveExpr ( "to" AdditiveExpr )?
	g.CreateRule("RangeExpr", g.Lookup("AdditiveExpr"), g.Optional(g.Type(int(token.TO)), g.Lookup("AdditiveExpr")))
	//[50] AdditiveExpr ::= MultiplicativeExpr ( ("+" | "-") MultiplicativeExpr )*
	g.CreateRule("AdditiveExpr", g.Lookup("MultiplicativeExpr"), g.Star(g.Or(g.Type(int(token.PLUS)), g.Type(int(token.MINUS))), g.Lookup("MultiplicativeExpr")))
	//[51] MultiplicativeExpr ::= UnionExpr ( ("*" | "div" | "idiv" | "mod") UnionExpr )*
	g.CreateRule("MultiplicativeExpr", g.Lookup("UnionExpr"), g.Star(g.Or(g.Type(int(token.STAR)), g.Type(int(token.DIV)), g.Type(int(token.IDIV)), g.Type(int(token.MOD))), g.Lookup("UnionExpr")))
	//[52] UnionExpr ::= IntersectExceptExpr ( ("union" | "|") IntersectExceptExpr )*
	g.CreateRule("UnionExpr", g.Lookup("IntersectExceptExpr"), g.Star(g.Or(g.Type(int(token.UNION)), g.Type(int(token.BAR))), g.Lookup("IntersectExceptExpr")))
	//[53] IntersectExceptExpr ::= InstanceofExpr ( ("intersect" | "except") InstanceofExpr )*
	g.CreateRule("IntersectExceptExpr", g.Lookup("InstanceofExpr"), g.Star(g.Or(g.Type(int(token.INTERSECT)), g.Type(int(token.EXCEPT))), g.Lookup("InstanceofExpr")))
	//[54] InstanceofExpr ::= TreatExpr ( "instance" "of" SequenceType )?
	g.CreateRule("InstanceofExpr", g.Lookup("TreatExpr"), g.Optional(g.Type(int(token.INSTANCE)), g.Type(int(token.OF)), g.Lookup("SequenceType")))
	//[55] TreatExpr ::= CastableExpr ( "treat" "as" SequenceType )?
	g.CreateRule("TreatExpr", g.Lookup("CastableExpr"), g.Optional(g.Type(int(token.TREAT)), g.Type(int(token.AS)), g.Lookup("SequenceType")))
	//[56] CastableExpr ::= CastExpr ( "castable" "as" SingleType )?
	g.CreateRule("CastableExpr", g.Lookup("CastExpr"), g.Optional(g.Type(int(token.CASTABLE)), g.Type(int(token.AS)), g.Lookup("SingleType")))
	//[57] CastExpr ::= UnaryExpr ( "cast" "as" SingleType )?
	g.CreateRule("CastExpr", g.Lookup("UnaryExpr"), g.Optional(g.Type(int(token.CAST)), g.Type(int(token.AS)), g.Lookup("SingleType")))
	//[58] UnaryExpr ::= ("-" | "+")* ValueExpr
	g.CreateRule("UnaryExpr", g.Star(g.Or(g.Type(int(token.MINUS)), g.Type(int(token.PLUS)))), g.Lookup("ValueExpr"))
	//[59] ValueExpr ::= ValidateExpr | PathExpr | ExtensionExpr
	g.CreateRule("ValueExpr", g.Lookup("ValidateExpr"))
	g.CreateRule("ValueExpr", g.Lookup("PathExpr"))
	g.CreateRule("ValueExpr", g.Lookup("ExtensionExpr"))
	g.CreateRule("ValueExpr", g.Lookup("ApplyTemplatesExpr"))
	//[60] GeneralComp ::= "=" | "!=" | "<" | "<=" | ">" | ">="
	g.UnionSingleTerms("GeneralComp", EQUALS, g.Type(int(token.G_NE)), g.Type(int(token.G_LT)), g.Type(int(token.G_LE)), g.Type(int(token.G_GT)), g.Type(int(token.G_GE)))
	//[61] ValueComp ::= "eq" | "ne" | "lt" | "le" | "gt" | "ge"
	g.UnionSingleTerms("ValueComp", g.Type(int(token.EQ)), g.Type(int(token.NE)), g.Type(int(token.LT)), g.Type(int(token.LE)), g.Type(int(token.GT)), g.Type(int(token.GE)))
	//[62] NodeComp ::= "is" | "<<" | ">>"
	g.UnionSingleTerms("NodeComp", g.Type(int(token.IS)), g.Type(int(token.PRECEDES)), g.Type(int(token.FOLLOWS)))
	//[63] ValidateExpr ::= "validate" ValidationMode? "{" Expr "}"
	g.CreateRule("ValidateExpr", g.Type(int(token.VALIDATE)), g.Optional(g.Or(g.Type(int(token.LAX)), g.Type(int(token.STRICT)))), g.Lookup("EnclosedExpr"))
	//[65] ExtensionExpr ::= Pragma+ "{" Expr? "}"
	g.CreateRule("ExtensionExpr", g.Lookup("Pragma"), g.Star(g.Lookup("Pragma")), LBRACE, g.Optional(g.Lookup("Expr")), RBRACE)
	//[66] Pragma ::= "(#" S? QName (S PragmaContents)? "#)"
	g.CreateRule("Pragma", g.Type(int(token.PRAGMA_START)), g.Lookup("QNAME"), g.Optional(STRING), g.Type(int(token.PRAGMA_END)))
	// ApplyTemplatesExpr ::= (ParenthesizedExpr | AxisStep) "for-apply-template" SortClause? ApplyTemplateCall "end_sort"?
	g.CreateRule("ApplyTemplatesExpr", g.Or(g.Lookup("ParenthesizedExpr"), g.Lookup("AxisStep")), g.Type(int(token.FOR_APPLY_TEMPLATE)),
		g.Optional(g.Lookup("SortClause")), g.Lookup("ApplyTemplateCall"), g.Optional(g.Type(int(token.END_SORT))))
	// ApplyTemplateCall ::= "apply-template" ("mode" QName)? "(" WithParamList? ")"
	g.CreateRule("ApplyTemplateCall", g.Type(int(token.APPLY_TEMPLATE)), g.Optional(g.Type(int(token.MODE)), g.Lookup("QNAME")),
		LPAREN, g.Optional(g.Lookup("ParamList")), RPAREN)
	// CallTemplateExpr ::= "call-template" QName "(" WithParamList? ")"
	g.CreateRule("CallTemplateExpr", g.Type(int(token.CALL_TEMPLATE)), g.Lookup("QNAME"), LPAREN, g.Optional(g.Lookup("ParamList")), RPAREN)

	//[68] PathExpr ::= ("/" RelativePathExpr?) | ("//" RelativePathExpr) | RelativePathExpr 	// xgs: leading-lone-slash
	g.CreateRule("PathExpr", g.Type(int(token.SLASH)), g.Optional(g.Lookup("RelativePathExpr")))
	g.CreateRule("PathExpr", g.Type(int(token.SLASHSLASH)), g.Lookup("RelativePathExpr"))
	g.CreateRule("PathExpr", g.Lookup("RelativePathExpr"))
	//[69] RelativePathExpr ::= StepExpr (("/" | "//") StepExpr)*
	g.CreateRule("RelativePathExpr", g.Lookup("StepExpr"), g.Star(g.Or(g.Type(int(token.SLASH)), g.Type(int(token.SLASHSLASH))), g.Lookup("StepExpr")))
	//[70] StepExpr ::= FilterExpr | AxisStep
	g.CreateRule("StepExpr", g.Lookup("FilterExpr"))
	g.CreateRule("StepExpr", g.Lookup("AxisStep"))
	//[71] AxisStep ::= (ReverseStep | ForwardStep) PredicateList
	g.CreateRule("AxisStep", g.Or(g.Lookup("ReverseStep"), g.Lookup("ForwardStep")), g.Lookup("PredicateList"))
	//[72] ForwardStep ::= (ForwardAxis NodeTest) | AbbrevForwardStep
	g.CreateRule("ForwardStep", g.Lookup("AbbrevForwardStep"))
	g.CreateRule("ForwardStep", g.Lookup("ForwardAxis"), g.Lookup("NodeTest"))
	//[73] ForwardAxis ::= ("child" "::") | ("descendant" "::") | ("attribute" "::") | ("self" "::") | ("descendant-or-self" "::") | ("following-sibling" "::") | ("following" "::")
	for _, axis := range []token.Kind{token.CHILD, token.DESCENDANT, token.ATTRIBUTE, token.SELF,
		token.DESCENDANT_OR_SELF, token.FOLLOWING_SIBLING, token.FOLLOWING, token.NAMESPACE} {
		g.CreateRule("ForwardAxis", g.Type(int(axis)), DCOLON)
	}
	//[74] AbbrevForwardStep ::= "@"? NodeTest
	g.CreateRule("AbbrevForwardStep", g.Optional(g.Type(int(token.AT_SIGN))), g.Lookup("NodeTest"))
	//[75] ReverseStep ::= (ReverseAxis NodeTest) | AbbrevReverseStep
	g.CreateRule("ReverseStep", g.Type(int(token.DOTDOT)))
	g.CreateRule("ReverseStep", g.Lookup("ReverseAxis"), g.Lookup("NodeTest"))
	//[76] ReverseAxis ::= ("parent" "::") | ("ancestor" "::") | ("preceding-sibling" "::") | ("preceding" "::") | ("ancestor-or-self" "::")
	for _, axis := range []token.Kind{token.PARENT, token.ANCESTOR, token.PRECEDING_SIBLING, token.PRECEDING, token.ANCESTOR_OR_SELF} {
		g.CreateRule("ReverseAxis", g.Type(int(axis)), DCOLON)
	}
	//[78] NodeTest ::= KindTest | NameTest
	g.UnionSingleTerms("NodeTest", g.Lookup("KindTest"), g.Lookup("NameTest"))
	//[79] NameTest ::= QName | Wildcard
	g.UnionSingleTerms("NameTest", g.Lookup("QNAME"), g.Lookup("Wildcard"))
	//[80] Wildcard ::= "*" | (NCName ":" "*") | ("*" ":" NCName) 	// ws: explicit
	g.UnionSingleTerms("Wildcard", g.Type(int(token.STAR)), g.Type(int(token.ANY_LOCAL_NAME)), g.Type(int(token.ANY_PREFIX)))
	//[81] FilterExpr ::= PrimaryExpr PredicateList
	g.CreateRule("FilterExpr", g.Lookup("PrimaryExpr"), g.Lookup("PredicateList"))
	//[82] PredicateList ::= Predicate*
	g.CreateRule("PredicateList", g.Star(g.Type(int(token.LBRACKET)), g.Lookup("Expr"), g.Type(int(token.RBRACKET))))
	//[84] PrimaryExpr ::= Literal | VarRef | ParenthesizedExpr | ContextItemExpr | FunctionCall | OrderedExpr | UnorderedExpr | Constructor
	g.UnionSingleTerms("PrimaryExpr", g.Lookup("Literal"), g.Lookup("VarRef"), g.Lookup("ParenthesizedExpr"),
		g.Type(int(token.DOT)), g.Lookup("FunctionCall"), g.Lookup("OrderedExpr"), g.Lookup("Constructor"),
		g.Lookup("ApplyTemplateCall"), g.Lookup("CallTemplateExpr"), g.Lookup("ScopedExpr"))
	//[85] Literal ::= NumericLiteral | StringLiteral
	g.UnionSingleTerms("Literal", g.Type(int(token.INTEGER)), g.Type(int(token.DECIMAL)), g.Type(int(token.DOUBLE)), STRING)
	//[87] VarRef ::= "$" VarName
	g.CreateRule("VarRef", DOLLAR, g.Lookup("QNAME"))
	//[89] ParenthesizedExpr ::= "(" Expr? ")"
	g.CreateRule("ParenthesizedExpr", LPAREN, g.Optional(g.Lookup("Expr")), RPAREN)
	//[91] OrderedExpr ::= "ordered" "{" Expr "}"
	g.CreateRule("OrderedExpr", g.Or(g.Type(int(token.ORDERED)), g.Type(int(token.UNORDERED))), g.Lookup("EnclosedExpr"))
	//[93] FunctionCall ::= QName "(" (ExprSingle ("," ExprSingle)*)? ")"
	g.CreateRule("FunctionCall", g.Optional(g.Type(int(token.INTERNAL_NAME))), g.Lookup("QNAME"), LPAREN,
		g.Optional(g.Lookup("ExprSingle"), g.Star(COMMA, g.Lookup("ExprSingle"))), RPAREN)
	// ScopedExpr ::= ("current" | "base-uri" StringLiteral | "xslt-version" StringLiteral | "declare" "namespace" NCName "=" StringLiteral) EnclosedExpr
	g.CreateRule("ScopedExpr", g.Type(int(token.CURRENT)), g.Lookup("EnclosedExpr"))
	g.CreateRule("ScopedExpr", g.Type(int(token.BASE_URI)), STRING, g.Lookup("EnclosedExpr"))
	g.CreateRule("ScopedExpr", g.Type(int(token.XSLT_VERSION)), STRING, g.Lookup("EnclosedExpr"))
	g.CreateRule("ScopedExpr", DECLARE, g.Type(int(token.NAMESPACE)), NCNAME, EQUALS, STRING, g.Lookup("EnclosedExpr"))
	// AttributeValueTemplate ::= "avt" "(" (StringLiteral | EnclosedExpr)* ")"
	g.CreateRule("AttributeValueTemplate", g.Type(int(token.AVT)), LPAREN, g.Star(g.Or(STRING, g.Lookup("EnclosedExpr"))), RPAREN)

	//[94] Constructor ::= DirectConstructor | ComputedConstructor
	g.UnionSingleTerms("Constructor", g.Lookup("DirElemConstructor"), g.Lookup("DirCommentConstructor"), g.Lookup("DirPIConstructor"),
		g.Lookup("CompDocConstructor"), g.Lookup("CompElemConstructor"), g.Lookup("CompAttrConstructor"),
		g.Lookup("CompNamespaceConstructor"), g.Lookup("CompTextConstructor"), g.Lookup("CompCommentConstructor"), g.Lookup("CompPIConstructor"))
	//[96] DirElemConstructor ::= "<" QName DirAttributeList ("/>" | (">" DirElemContent* "</" QName S? ">"))
	g.CreateRule("DirElemConstructor", g.Type(int(token.G_LT)), g.Lookup("QNAME"), g.Star(g.Lookup("DirAttribute")), g.Type(int(token.QUICK_TAG_END)))
	g.CreateRule("DirElemConstructor", g.Type(int(token.G_LT)), g.Lookup("QNAME"), g.Star(g.Lookup("DirAttribute")), g.Type(int(token.G_GT)),
		g.Star(g.Lookup("DirElemContent")), g.Type(int(token.BEGIN_END_TAG)), g.Lookup("QNAME"), g.Type(int(token.G_GT)))
	//[97] DirAttributeList ::= (S (QName S? "=" S? DirAttributeValue)?)*
	g.CreateRule("DirAttribute", g.Lookup("QNAME"), EQUALS, g.Lookup("DirAttributeValue"))
	//[98] DirAttributeValue ::= ('"' (EscapeQuot | QuotAttrValueContent)* '"') | ("'" (EscapeApos | AposAttrValueContent)* "'")
	g.CreateRule("DirAttributeValue", g.Type(int(token.QUOTE)), g.Star(g.Or(STRING, g.Lookup("EnclosedExpr"))), g.Type(int(token.QUOTE)))
	g.CreateRule("DirAttributeValue", g.Type(int(token.APOS)), g.Star(g.Or(STRING, g.Lookup("EnclosedExpr"))), g.Type(int(token.APOS)))
	//[101] DirElemContent ::= DirectConstructor | CDataSection | CommonContent | ElementContentChar
	g.UnionSingleTerms("DirElemContent", g.Lookup("DirElemConstructor"), g.Lookup("DirCommentConstructor"), g.Lookup("DirPIConstructor"),
		STRING, g.Type(int(token.NON_BOUNDARY_WS)), g.Lookup("EnclosedExpr"))
	//[103] DirCommentConstructor ::= "<!--" DirCommentContents "-->"
	g.CreateRule("DirCommentConstructor", g.Type(int(token.COMMENT_START)), g.Type(int(token.COMMENT_CONTENT)))
	//[105] DirPIConstructor ::= "<?" PITarget (S DirPIContents)? "?>"
	g.CreateRule("DirPIConstructor", g.Type(int(token.PI_START)), g.Type(int(token.PI_TARGET)), g.Type(int(token.PI_CONTENT)))
	//[110] CompDocConstructor ::= "document" "{" Expr "}"
	g.CreateRule("CompDocConstructor", g.Type(int(token.DOCUMENT)), g.Optional(INTERNAL), g.Lookup("EnclosedExpr"))
	//[111] CompElemConstructor ::= "element" (QName | ("{" Expr "}")) "{" ContentExpr? "}"
	g.CreateRule("CompElemConstructor", g.Type(int(token.ELEMENT)), g.Optional(INTERNAL), g.Lookup("ComputedName"), LBRACE, g.Optional(g.Lookup("Expr")), RBRACE)
	//[113] CompAttrConstructor ::= "attribute" (QName | ("{" Expr "}")) "{" Expr? "}"
	g.CreateRule("CompAttrConstructor", g.Type(int(token.ATTRIBUTE)), g.Optional(INTERNAL), g.Lookup("ComputedName"), LBRACE, g.Optional(g.Lookup("Expr")), RBRACE)
	g.CreateRule("ComputedName", g.Lookup("QNAME"))
	g.CreateRule("ComputedName", g.Lookup("EnclosedExpr"))
	g.CreateRule("CompNamespaceConstructor", g.Type(int(token.NAMESPACE)), g.Lookup("ComputedName"), LBRACE, g.Optional(g.Lookup("Expr")), RBRACE)
	//[114] CompTextConstructor ::= "text" "{" Expr "}"
	g.CreateRule("CompTextConstructor", g.Type(int(token.TEXT)), g.Lookup("EnclosedExpr"))
	//[115] CompCommentConstructor ::= "comment" "{" Expr "}"
	g.CreateRule("CompCommentConstructor", g.Type(int(token.COMMENT)), g.Optional(INTERNAL), g.Lookup("EnclosedExpr"))
	//[116] CompPIConstructor ::= "processing-instruction" (NCName | ("{" Expr "}")) "{" Expr? "}"
	g.CreateRule("CompPIConstructor", g.Type(int(token.PROCESSING_INSTRUCTION)), g.Lookup("ComputedName"), LBRACE, g.Optional(g.Lookup("Expr")), RBRACE)

	//[117] SingleType ::= AtomicType "?"?
	g.CreateRule("SingleType", g.Lookup("QNAME"), g.Optional(g.Type(int(token.QUESTION))))
	//[118] TypeDeclaration ::= "as" SequenceType
	g.CreateRule("TypeDeclaration", g.Type(int(token.AS)), g.Lookup("SequenceType"))
	//[119] SequenceType ::= ("empty-sequence" "(" ")") | (ItemType OccurrenceIndicator?)
	g.CreateRule("SequenceType", g.Type(int(token.EMPTY_SEQUENCE)), LPAREN, RPAREN)
	g.CreateRule("SequenceType", g.Lookup("ItemType"), g.Optional(g.Lookup("OccurrenceIndicator")))
	//[120] OccurrenceIndicator ::= "?" | "*" | "+" 	// xgs: occurrence-indicators
	g.UnionSingleTerms("OccurrenceIndicator", g.Type(int(token.QUESTION)), g.Type(int(token.STAR)), g.Type(int(token.PLUS)))
	//[121] ItemType ::= KindTest | ("item" "(" ")") | AtomicType
	g.CreateRule("ItemType", g.Lookup("KindTest"))
	g.CreateRule("ItemType", g.Type(int(token.ITEM)), LPAREN, RPAREN)
	g.CreateRule("ItemType", g.Lookup("QNAME"))
	//[123] KindTest ::= DocumentTest | ElementTest | AttributeTest | SchemaElementTest | SchemaAttributeTest | PITest | CommentTest | TextTest | AnyKindTest
	g.UnionSingleTerms("KindTest", g.Lookup("DocumentTest"), g.Lookup("ElementTest"), g.Lookup("AttributeTest"),
		g.Lookup("SchemaElementTest"), g.Lookup("SchemaAttributeTest"), g.Lookup("PITest"), g.Lookup("CommentTest"), g.Lookup("TextTest"), g.Lookup("AnyKindTest"))
	//[124] AnyKindTest ::= "node" "(" ")"
	g.CreateRule("AnyKindTest", g.Type(int(token.NODE)), LPAREN, RPAREN)
	//[125] DocumentTest ::= "document-node" "(" (ElementTest | SchemaElementTest)? ")"
	g.CreateRule("DocumentTest", g.Type(int(token.DOCUMENT_NODE)), LPAREN, g.Optional(g.Or(g.Lookup("ElementTest"), g.Lookup("SchemaElementTest"))), RPAREN)
	//[126] TextTest ::= "text" "(" ")"
	g.CreateRule("TextTest", g.Type(int(token.TEXT)), LPAREN, RPAREN)
	//[127] CommentTest ::= "comment" "(" ")"
	g.CreateRule("CommentTest", g.Type(int(token.COMMENT)), LPAREN, RPAREN)
	//[128] PITest ::= "processing-instruction" "(" (NCName | StringLiteral)? ")"
	g.CreateRule("PITest", g.Type(int(token.PROCESSING_INSTRUCTION)), LPAREN, g.Optional(g.Or(NCNAME, STRING)), RPAREN)
	//[129] AttributeTest ::= "attribute" "(" (AttribNameOrWildcard ("," TypeName)?)? ")"
	g.CreateRule("AttributeTest", g.Type(int(token.ATTRIBUTE)), LPAREN, g.Optional(g.Lookup("NameOrWildcard"), g.Optional(COMMA, g.Lookup("QNAME"))), RPAREN)
	//[130] AttribNameOrWildcard ::= AttributeName | "*"
	g.UnionSingleTerms("NameOrWildcard", g.Lookup("QNAME"), g.Type(int(token.STAR)))
	//[131] SchemaAttributeTest ::= "schema-attribute" "(" AttributeDeclaration ")"
	g.CreateRule("SchemaAttributeTest", g.Type(int(token.SCHEMA_ATTRIBUTE)), LPAREN, g.Lookup("QNAME"), RPAREN)
	//[133] ElementTest ::= "element" "(" (ElementNameOrWildcard ("," TypeName "?"?)?)? ")"
	g.CreateRule("ElementTest", g.Type(int(token.ELEMENT)), LPAREN, g.Optional(g.Lookup("NameOrWildcard"), g.Optional(COMMA, g.Lookup("QNAME"), g.Optional(g.Type(int(token.QUESTION))))), RPAREN)
	//[135] SchemaElementTest ::= "schema-element" "(" ElementDeclaration ")"
	g.CreateRule("SchemaElementTest", g.Type(int(token.SCHEMA_ELEMENT)), LPAREN, g.Lookup("QNAME"), RPAREN)

	g.SetStart("Module")
	return g
}

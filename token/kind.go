package token

import "strconv"

// Kind identifies the lexical class of a Token.
type Kind int

const (
	EOF           Kind = iota // clean end of input
	UNEXPECTED_EOF            // input ran out inside a construct
	ERROR                     // lexical malformation, carries no value

	literalBeg
	STRING_LITERAL  // "abc" or 'abc', value holds the decoded text
	NON_BOUNDARY_WS // element content that must survive boundary-space stripping
	INTEGER         // 12
	DECIMAL         // 1.5 .5 1.
	DOUBLE          // 1e10 1.5E-3
	NCNAME          // name without a prefix
	QNAME           // prefix:local
	ANY_LOCAL_NAME  // prefix:*, value holds the prefix
	ANY_PREFIX      // *:local, value holds the local name
	PI_TARGET
	PI_CONTENT
	COMMENT_CONTENT
	POSITION_SET // end of a tag reached in scan-only mode
	literalEnd

	operatorBeg
	LPAREN
	RPAREN
	LBRACKET
	RBRACKET
	LBRACE
	RBRACE
	COMMA
	SEMICOLON
	DOLLAR
	AT_SIGN
	BAR
	QUESTION
	STAR
	PLUS
	MINUS
	SLASH
	SLASHSLASH
	DOT
	DOTDOT
	COLONCOLON
	ASSIGN
	G_EQ
	G_NE
	G_LT
	G_LE
	G_GT
	G_GE
	PRECEDES
	FOLLOWS
	PRAGMA_START
	PRAGMA_END
	PI_START
	COMMENT_START
	BEGIN_END_TAG
	QUICK_TAG_END
	QUOTE
	APOS
	operatorEnd

	keywordBeg
	ANCESTOR
	ANCESTOR_OR_SELF
	AND
	AS
	ASCENDING
	AT
	ATTRIBUTE
	BASE_URI
	BOUNDARY_SPACE
	BY
	CASE
	CAST
	CASTABLE
	CHILD
	COLLATION
	COMMENT
	CONSTRUCTION
	COPY_NAMESPACES
	DECLARE
	DEFAULT
	DESCENDANT
	DESCENDANT_OR_SELF
	DESCENDING
	DIV
	DOCUMENT
	DOCUMENT_NODE
	ELEMENT
	ELSE
	EMPTY
	EMPTY_SEQUENCE
	ENCODING
	EQ
	EVERY
	EXCEPT
	EXTERNAL
	FOLLOWING
	FOLLOWING_SIBLING
	FOR
	FUNCTION
	GE
	GREATEST
	GT
	IDIV
	IF
	IMPORT
	IN
	INHERIT
	INSTANCE
	INTERSECT
	IS
	ITEM
	LAX
	LE
	LEAST
	LET
	LT
	MOD
	MODULE
	NAMESPACE
	NE
	NO_INHERIT
	NO_PRESERVE
	NODE
	OF
	OPTION
	OR
	ORDER
	ORDERED
	ORDERING
	PARENT
	PRECEDING
	PRECEDING_SIBLING
	PRESERVE
	PROCESSING_INSTRUCTION
	RETURN
	SATISFIES
	SCHEMA
	SCHEMA_ATTRIBUTE
	SCHEMA_ELEMENT
	SELF
	SOME
	STABLE
	STRICT
	STRIP
	TEXT
	THEN
	TO
	TREAT
	TYPESWITCH
	UNION
	UNORDERED
	VALIDATE
	VARIABLE
	VERSION
	WHERE
	XQUERY
	keywordEnd

	// synthesized by the stylesheet tokenizer only, never scanned from text
	internalBeg
	APPLY_TEMPLATE
	AVT
	CALL_TEMPLATE
	CURRENT
	END_SORT
	FOR_APPLY_TEMPLATE
	INTERNAL
	INTERNAL_NAME
	MAP
	MATCHES
	MODE
	NAME
	PRIORITY
	SORT
	TEMPLATE
	TUNNEL
	XSLT_VERSION
	internalEnd
)

var kinds = [...]string{
	EOF:            "EOF",
	UNEXPECTED_EOF: "UNEXPECTED_EOF",
	ERROR:          "ERROR",

	STRING_LITERAL:  "STRING_LITERAL",
	NON_BOUNDARY_WS: "NON_BOUNDARY_WS",
	INTEGER:         "INTEGER",
	DECIMAL:         "DECIMAL",
	DOUBLE:          "DOUBLE",
	NCNAME:          "NCNAME",
	QNAME:           "QNAME",
	ANY_LOCAL_NAME:  "ANY_LOCAL_NAME",
	ANY_PREFIX:      "ANY_PREFIX",
	PI_TARGET:       "PI_TARGET",
	PI_CONTENT:      "PI_CONTENT",
	COMMENT_CONTENT: "COMMENT_CONTENT",
	POSITION_SET:    "POSITION_SET",

	LPAREN:        "(",
	RPAREN:        ")",
	LBRACKET:      "[",
	RBRACKET:      "]",
	LBRACE:        "{",
	RBRACE:        "}",
	COMMA:         ",",
	SEMICOLON:     ";",
	DOLLAR:        "$",
	AT_SIGN:       "@",
	BAR:           "|",
	QUESTION:      "?",
	STAR:          "*",
	PLUS:          "+",
	MINUS:         "-",
	SLASH:         "/",
	SLASHSLASH:    "//",
	DOT:           ".",
	DOTDOT:        "..",
	COLONCOLON:    "::",
	ASSIGN:        ":=",
	G_EQ:          "=",
	G_NE:          "!=",
	G_LT:          "<",
	G_LE:          "<=",
	G_GT:          ">",
	G_GE:          ">=",
	PRECEDES:      "<<",
	FOLLOWS:       ">>",
	PRAGMA_START:  "(#",
	PRAGMA_END:    "#)",
	PI_START:      "<?",
	COMMENT_START: "<!--",
	BEGIN_END_TAG: "</",
	QUICK_TAG_END: "/>",
	QUOTE:         "\"",
	APOS:          "'",

	ANCESTOR:               "ancestor",
	ANCESTOR_OR_SELF:       "ancestor-or-self",
	AND:                    "and",
	AS:                     "as",
	ASCENDING:              "ascending",
	AT:                     "at",
	ATTRIBUTE:              "attribute",
	BASE_URI:               "base-uri",
	BOUNDARY_SPACE:         "boundary-space",
	BY:                     "by",
	CASE:                   "case",
	CAST:                   "cast",
	CASTABLE:               "castable",
	CHILD:                  "child",
	COLLATION:              "collation",
	COMMENT:                "comment",
	CONSTRUCTION:           "construction",
	COPY_NAMESPACES:        "copy-namespaces",
	DECLARE:                "declare",
	DEFAULT:                "default",
	DESCENDANT:             "descendant",
	DESCENDANT_OR_SELF:     "descendant-or-self",
	DESCENDING:             "descending",
	DIV:                    "div",
	DOCUMENT:               "document",
	DOCUMENT_NODE:          "document-node",
	ELEMENT:                "element",
	ELSE:                   "else",
	EMPTY:                  "empty",
	EMPTY_SEQUENCE:         "empty-sequence",
	ENCODING:               "encoding",
	EQ:                     "eq",
	EVERY:                  "every",
	EXCEPT:                 "except",
	EXTERNAL:               "external",
	FOLLOWING:              "following",
	FOLLOWING_SIBLING:      "following-sibling",
	FOR:                    "for",
	FUNCTION:               "function",
	GE:                     "ge",
	GREATEST:               "greatest",
	GT:                     "gt",
	IDIV:                   "idiv",
	IF:                     "if",
	IMPORT:                 "import",
	IN:                     "in",
	INHERIT:                "inherit",
	INSTANCE:               "instance",
	INTERSECT:              "intersect",
	IS:                     "is",
	ITEM:                   "item",
	LAX:                    "lax",
	LE:                     "le",
	LEAST:                  "least",
	LET:                    "let",
	LT:                     "lt",
	MOD:                    "mod",
	MODULE:                 "module",
	NAMESPACE:              "namespace",
	NE:                     "ne",
	NO_INHERIT:             "no-inherit",
	NO_PRESERVE:            "no-preserve",
	NODE:                   "node",
	OF:                     "of",
	OPTION:                 "option",
	OR:                     "or",
	ORDER:                  "order",
	ORDERED:                "ordered",
	ORDERING:               "ordering",
	PARENT:                 "parent",
	PRECEDING:              "preceding",
	PRECEDING_SIBLING:      "preceding-sibling",
	PRESERVE:               "preserve",
	PROCESSING_INSTRUCTION: "processing-instruction",
	RETURN:                 "return",
	SATISFIES:              "satisfies",
	SCHEMA:                 "schema",
	SCHEMA_ATTRIBUTE:       "schema-attribute",
	SCHEMA_ELEMENT:         "schema-element",
	SELF:                   "self",
	SOME:                   "some",
	STABLE:                 "stable",
	STRICT:                 "strict",
	STRIP:                  "strip",
	TEXT:                   "text",
	THEN:                   "then",
	TO:                     "to",
	TREAT:                  "treat",
	TYPESWITCH:             "typeswitch",
	UNION:                  "union",
	UNORDERED:              "unordered",
	VALIDATE:               "validate",
	VARIABLE:               "variable",
	VERSION:                "version",
	WHERE:                  "where",
	XQUERY:                 "xquery",

	APPLY_TEMPLATE:     "apply-template",
	AVT:                "avt",
	CALL_TEMPLATE:      "call-template",
	CURRENT:            "current",
	END_SORT:           "end_sort",
	FOR_APPLY_TEMPLATE: "for-apply-template",
	INTERNAL:           "internal",
	INTERNAL_NAME:      "internal-name",
	MAP:                "map",
	MATCHES:            "matches",
	MODE:               "mode",
	NAME:               "name",
	PRIORITY:           "priority",
	SORT:               "sort",
	TEMPLATE:           "template",
	TUNNEL:             "tunnel",
	XSLT_VERSION:       "xslt-version",
}

// String returns the source spelling of operators and keywords,
// and the constant name for every other kind.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kinds) && kinds[k] != "" {
		return kinds[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// IsLiteral reports whether tokens of this kind carry a value.
func (k Kind) IsLiteral() bool { return literalBeg < k && k < literalEnd }

// IsOperator reports whether k is punctuation or an operator symbol.
func (k Kind) IsOperator() bool { return operatorBeg < k && k < operatorEnd }

// IsKeyword reports whether k is a reserved word that can be scanned from text.
func (k Kind) IsKeyword() bool { return keywordBeg < k && k < keywordEnd }

// IsInternal reports whether k is only ever synthesized by the stylesheet tokenizer.
func (k Kind) IsInternal() bool { return internalBeg < k && k < internalEnd }

// IsEnd reports whether k terminates a token stream.
func (k Kind) IsEnd() bool { return k == EOF || k == UNEXPECTED_EOF }

// Keywords calls fn for every keyword that can be scanned from text.
func Keywords(fn func(spelling string, k Kind)) {
	for k := keywordBeg + 1; k < keywordEnd; k++ {
		fn(kinds[k], k)
	}
}

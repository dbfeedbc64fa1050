package xquery

import "github.com/jbowtie/xqlex/token"

var keywords = map[string]token.Kind{}

func init() {
	token.Keywords(func(spelling string, k token.Kind) {
		keywords[spelling] = k
	})
}

func lookupKeyword(name string) (token.Kind, bool) {
	k, ok := keywords[name]
	return k, ok
}

// phrase keywords start two-word constructs such as "cast as" or "order by"
func isPhraseKeyword(k token.Kind) bool {
	switch k {
	case token.CASTABLE, token.CAST, token.COPY_NAMESPACES, token.DECLARE,
		token.EMPTY, token.MODULE, token.IMPORT, token.INSTANCE, token.ORDER,
		token.ORDERING, token.XQUERY, token.STABLE, token.TREAT:
		return true
	}
	return false
}

// operator keywords are plain names when an operand is expected
func isOperatorKeyword(k token.Kind) bool {
	switch k {
	case token.AS, token.ASCENDING, token.AT, token.CASE, token.CAST,
		token.CASTABLE, token.EQ, token.EXTERNAL, token.GE, token.G_EQ,
		token.G_GT, token.G_LT, token.G_NE, token.GT, token.IN, token.INHERIT,
		token.INSTANCE, token.IS, token.ITEM, token.LE, token.LT, token.NE,
		token.NO_INHERIT, token.NO_PRESERVE, token.OF, token.PRESERVE,
		token.RETURN, token.STABLE, token.TO, token.TREAT:
		return true
	}
	return false
}

func isTypeToken(k token.Kind) bool {
	switch k {
	case token.ATTRIBUTE, token.COMMENT, token.DOCUMENT, token.DOCUMENT_NODE,
		token.ELEMENT, token.ITEM, token.NODE, token.PROCESSING_INSTRUCTION,
		token.SCHEMA_ATTRIBUTE, token.SCHEMA_ELEMENT, token.TEXT:
		return true
	}
	return false
}

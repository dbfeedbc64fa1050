package xquery

// State selects how the next characters are classified.
type State int

const (
	Default State = iota
	Operator
	Axis
	AfterAxisSeparator
	VarName
	ItemType
	KindTest
	KindTestForPI
	OccurrenceIndicator
	VersionDecl
	StartTag
	EndTag
	ElementContent
	AposAttributeContent
	QuotAttributeContent
	XMLComment
	ProcessingInstructionName
	ProcessingInstructionContent
	Pragma
	PragmaContent
	NamespaceKeyword
	NamespaceDecl
	WhitespaceDecl
	// AttributeValueTemplate scans already decoded attribute text where
	// only {expr} islands are expressions.
	AttributeValueTemplate
)

var stateNames = [...]string{
	Default:                      "Default",
	Operator:                     "Operator",
	Axis:                         "Axis",
	AfterAxisSeparator:           "AfterAxisSeparator",
	VarName:                      "VarName",
	ItemType:                     "ItemType",
	KindTest:                     "KindTest",
	KindTestForPI:                "KindTestForPI",
	OccurrenceIndicator:          "OccurrenceIndicator",
	VersionDecl:                  "VersionDecl",
	StartTag:                     "StartTag",
	EndTag:                       "EndTag",
	ElementContent:               "ElementContent",
	AposAttributeContent:         "AposAttributeContent",
	QuotAttributeContent:         "QuotAttributeContent",
	XMLComment:                   "XMLComment",
	ProcessingInstructionName:    "ProcessingInstructionName",
	ProcessingInstructionContent: "ProcessingInstructionContent",
	Pragma:                       "Pragma",
	PragmaContent:                "PragmaContent",
	NamespaceKeyword:             "NamespaceKeyword",
	NamespaceDecl:                "NamespaceDecl",
	WhitespaceDecl:               "WhitespaceDecl",
	AttributeValueTemplate:       "AttributeValueTemplate",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "State(?)"
}

// ParseState returns the state with the given name.
func ParseState(name string) (State, bool) {
	for s, n := range stateNames {
		if n == name {
			return State(s), true
		}
	}
	return Default, false
}

// skipsWhitespace reports whether whitespace and comments are dropped
// before a token is scanned in state s.
func (s State) skipsWhitespace() bool {
	switch s {
	case AposAttributeContent, QuotAttributeContent, Axis, ElementContent,
		EndTag, Pragma, PragmaContent, ProcessingInstructionName,
		ProcessingInstructionContent, StartTag, XMLComment, AttributeValueTemplate:
		return false
	}
	return true
}

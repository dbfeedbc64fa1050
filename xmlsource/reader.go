// Package xmlsource adapts XML parsers to the small pull interface the
// stylesheet tokenizer walks.
package xmlsource

import (
	"sort"

	"github.com/jbowtie/xqlex/token"
)

// XML_NAMESPACE is bound to the xml prefix in every document.
const XML_NAMESPACE = "http://www.w3.org/XML/1998/namespace"

// Event is the kind of item a Reader is positioned on.
type Event int

const (
	NoEvent Event = iota
	StartDocument
	StartElement
	EndElement
	Characters
	Comment
	ProcessingInstruction
	EndDocument
	// Invalid means the document is not well-formed; Err has the reason.
	Invalid
)

var eventNames = [...]string{
	NoEvent:               "NoEvent",
	StartDocument:         "StartDocument",
	StartElement:          "StartElement",
	EndElement:            "EndElement",
	Characters:            "Characters",
	Comment:               "Comment",
	ProcessingInstruction: "ProcessingInstruction",
	EndDocument:           "EndDocument",
	Invalid:               "Invalid",
}

func (e Event) String() string {
	if e >= 0 && int(e) < len(eventNames) {
		return eventNames[e]
	}
	return "Event(?)"
}

// Name is an expanded name together with the prefix it was written with.
type Name struct {
	Space  string
	Local  string
	Prefix string
}

// QName returns the name as written.
func (n Name) QName() string {
	if n.Prefix == "" {
		return n.Local
	}
	return n.Prefix + ":" + n.Local
}

// Is reports whether n has the given namespace and local name.
func (n Name) Is(space, local string) bool {
	return n.Space == space && n.Local == local
}

type Attr struct {
	Name  Name
	Value string
}

// Namespace is a namespace declaration; the default namespace has an
// empty Prefix.
type Namespace struct {
	Prefix string
	URI    string
}

// Reader is a forward-only cursor over the items of an XML document.
//
// Name is valid on StartElement and EndElement, and holds the target
// on ProcessingInstruction. Text is valid on Characters, Comment and
// ProcessingInstruction. Attrs and Namespaces are valid on
// StartElement only.
type Reader interface {
	Next() Event
	Event() Event
	Name() Name
	Attrs() []Attr
	Namespaces() []Namespace
	Text() string
	Location() token.Location
	Err() error
	AtEnd() bool
}

func sortAttrs(attrs []Attr) {
	sort.Slice(attrs, func(i, j int) bool {
		if attrs[i].Name.Space != attrs[j].Name.Space {
			return attrs[i].Name.Space < attrs[j].Name.Space
		}
		return attrs[i].Name.Local < attrs[j].Name.Local
	})
}

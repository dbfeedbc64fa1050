package xmlsource

import (
	"fmt"
	"os"

	"github.com/jbowtie/gokogiri/xml"
	"github.com/jbowtie/xqlex/token"
)

// Parse builds a libxml2 document from data, failing on the first
// well-formedness error.
func Parse(data []byte) (*xml.XmlDocument, error) {
	return xml.Parse(data, xml.DefaultEncodingBytes, nil, xml.StrictParseOption, xml.DefaultEncodingBytes)
}

// ReadFile parses the named file.
func ReadFile(filename string) (*xml.XmlDocument, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}
	return doc, nil
}

// DocumentReader walks a parsed document in document order.
type DocumentReader struct {
	doc   *xml.XmlDocument
	node  xml.Node
	event Event
}

// NewDocumentReader returns a Reader over doc. The document must stay
// alive while the reader is in use.
func NewDocumentReader(doc *xml.XmlDocument) *DocumentReader {
	return &DocumentReader{doc: doc}
}

func (r *DocumentReader) Next() Event {
	switch r.event {
	case NoEvent:
		r.event = StartDocument
	case StartDocument:
		r.enter(r.doc.FirstChild())
	case StartElement:
		if child := r.node.FirstChild(); child != nil {
			r.enter(child)
		} else {
			r.event = EndElement
		}
	case EndDocument, Invalid:
	default:
		r.leave()
	}
	return r.event
}

// enter positions the reader on node, or on the first sibling after it
// that produces an event.
func (r *DocumentReader) enter(node xml.Node) {
	for ; node != nil; node = node.NextSibling() {
		r.node = node
		switch node.NodeType() {
		case xml.XML_ELEMENT_NODE:
			r.event = StartElement
		case xml.XML_TEXT_NODE, xml.XML_CDATA_SECTION_NODE:
			r.event = Characters
		case xml.XML_COMMENT_NODE:
			r.event = Comment
		case xml.XML_PI_NODE:
			r.event = ProcessingInstruction
		default:
			continue
		}
		return
	}
	r.up()
}

// leave moves past the current node.
func (r *DocumentReader) leave() {
	if next := r.node.NextSibling(); next != nil {
		r.enter(next)
		return
	}
	r.up()
}

// up closes the parent of the current node.
func (r *DocumentReader) up() {
	var parent xml.Node
	if r.node != nil {
		parent = r.node.Parent()
	}
	if parent == nil || parent.NodeType() != xml.XML_ELEMENT_NODE {
		r.node = nil
		r.event = EndDocument
		return
	}
	r.node = parent
	r.event = EndElement
}

func (r *DocumentReader) Event() Event {
	return r.event
}

func (r *DocumentReader) Name() Name {
	switch r.event {
	case StartElement, EndElement:
		return Name{Space: r.node.Namespace(), Local: r.node.Name(), Prefix: prefixOf(r.node, r.node.Namespace(), false)}
	case ProcessingInstruction:
		return Name{Local: r.node.Name()}
	}
	return Name{}
}

func (r *DocumentReader) Attrs() []Attr {
	if r.event != StartElement {
		return nil
	}
	var attrs []Attr
	for _, attr := range r.node.Attributes() {
		ns := attr.Namespace()
		attrs = append(attrs, Attr{
			Name:  Name{Space: ns, Local: attr.Name(), Prefix: prefixOf(r.node, ns, true)},
			Value: attr.Content(),
		})
	}
	sortAttrs(attrs)
	return attrs
}

func (r *DocumentReader) Namespaces() []Namespace {
	if r.event != StartElement {
		return nil
	}
	var decls []Namespace
	for _, decl := range r.node.DeclaredNamespaces() {
		decls = append(decls, Namespace{Prefix: decl.Prefix, URI: decl.Uri})
	}
	return decls
}

func (r *DocumentReader) Text() string {
	switch r.event {
	case Characters, Comment, ProcessingInstruction:
		return r.node.Content()
	}
	return ""
}

func (r *DocumentReader) Location() token.Location {
	if r.node == nil {
		return token.Location{}
	}
	return token.Location{Line: r.node.LineNumber(), Column: 1}
}

// Err is always nil; documents that are not well-formed fail in Parse.
func (r *DocumentReader) Err() error {
	return nil
}

func (r *DocumentReader) AtEnd() bool {
	return r.event == EndDocument || r.event == Invalid
}

// prefixOf finds the nearest prefix bound to ns in scope at node.
// Attributes never take the default namespace.
func prefixOf(node xml.Node, ns string, attr bool) string {
	switch ns {
	case "":
		return ""
	case XML_NAMESPACE:
		return "xml"
	}
	for cur := node; cur != nil && cur.NodeType() == xml.XML_ELEMENT_NODE; cur = cur.Parent() {
		for _, decl := range cur.DeclaredNamespaces() {
			if decl.Uri == ns && (decl.Prefix != "" || !attr) {
				return decl.Prefix
			}
		}
	}
	return ""
}

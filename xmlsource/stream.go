package xmlsource

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jbowtie/xqlex/token"
	"golang.org/x/text/encoding/ianaindex"
)

// StreamReader reads a document incrementally with encoding/xml. It
// resolves prefixes itself so that the names it reports keep the prefix
// they were written with.
type StreamReader struct {
	dec   *xml.Decoder
	event Event
	name  Name
	attrs []Attr
	decls []Namespace
	text  string
	loc   token.Location
	err   error

	scopes   []map[string]string
	open     []Name
	popNext  bool
	seenRoot bool
}

// NewStreamReader returns a Reader over the document read from in.
func NewStreamReader(in io.Reader) *StreamReader {
	dec := xml.NewDecoder(in)
	dec.Strict = true
	dec.CharsetReader = charsetReader
	return &StreamReader{
		dec:    dec,
		scopes: []map[string]string{{"xml": XML_NAMESPACE}},
	}
}

func (r *StreamReader) Next() Event {
	switch r.event {
	case EndDocument, Invalid:
		return r.event
	case NoEvent:
		r.event = StartDocument
		return r.event
	}
	if r.popNext {
		r.scopes = r.scopes[:len(r.scopes)-1]
		r.popNext = false
	}
	r.name, r.attrs, r.decls, r.text = Name{}, nil, nil, ""

	for {
		line, col := r.dec.InputPos()
		r.loc = token.Location{Line: line, Column: col}

		tok, err := r.dec.RawToken()
		if err == io.EOF {
			if len(r.open) > 0 {
				return r.fail(fmt.Errorf("element <%s> is not closed", r.open[len(r.open)-1].QName()))
			}
			if !r.seenRoot {
				return r.fail(errors.New("document has no element"))
			}
			r.event = EndDocument
			return r.event
		}
		if err != nil {
			return r.fail(err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if len(r.open) == 0 && r.seenRoot {
				return r.fail(errors.New("content after the document element"))
			}
			r.seenRoot = true
			if err := r.start(t); err != nil {
				return r.fail(err)
			}
			r.event = StartElement
			return r.event
		case xml.EndElement:
			if err := r.end(t); err != nil {
				return r.fail(err)
			}
			r.event = EndElement
			return r.event
		case xml.CharData:
			if len(r.open) == 0 {
				if len(bytes.TrimSpace(t)) > 0 {
					return r.fail(errors.New("text outside the document element"))
				}
				continue
			}
			r.text = string(t)
			r.event = Characters
			return r.event
		case xml.Comment:
			r.text = string(t)
			r.event = Comment
			return r.event
		case xml.ProcInst:
			if t.Target == "xml" {
				continue
			}
			r.name = Name{Local: t.Target}
			r.text = strings.TrimLeft(string(t.Inst), " \t\r\n")
			r.event = ProcessingInstruction
			return r.event
		case xml.Directive:
			// DOCTYPE declarations carry no items
		}
	}
}

func (r *StreamReader) start(t xml.StartElement) error {
	scope := make(map[string]string)
	for _, a := range t.Attr {
		switch {
		case a.Name.Space == "xmlns":
			scope[a.Name.Local] = a.Value
			r.decls = append(r.decls, Namespace{Prefix: a.Name.Local, URI: a.Value})
		case a.Name.Space == "" && a.Name.Local == "xmlns":
			scope[""] = a.Value
			r.decls = append(r.decls, Namespace{URI: a.Value})
		}
	}
	r.scopes = append(r.scopes, scope)

	name, err := r.resolve(t.Name, false)
	if err != nil {
		return err
	}
	for _, a := range t.Attr {
		if a.Name.Space == "xmlns" || a.Name.Space == "" && a.Name.Local == "xmlns" {
			continue
		}
		an, err := r.resolve(a.Name, true)
		if err != nil {
			return err
		}
		for _, seen := range r.attrs {
			if seen.Name.Is(an.Space, an.Local) {
				return fmt.Errorf("attribute %s repeated on <%s>", an.QName(), name.QName())
			}
		}
		r.attrs = append(r.attrs, Attr{Name: an, Value: normalizeAttr(a.Value)})
	}
	sortAttrs(r.attrs)
	r.name = name
	r.open = append(r.open, name)
	return nil
}

// normalizeAttr maps tab, newline and carriage return in an attribute
// value to a space. encoding/xml has already expanded character
// references, so a written &#10; is normalized too.
func normalizeAttr(v string) string {
	return attrSpace.Replace(v)
}

var attrSpace = strings.NewReplacer("\t", " ", "\n", " ", "\r", " ")

func (r *StreamReader) end(t xml.EndElement) error {
	if len(r.open) == 0 {
		return fmt.Errorf("unexpected end tag </%s>", qualified(t.Name))
	}
	top := r.open[len(r.open)-1]
	if top.Prefix != t.Name.Space || top.Local != t.Name.Local {
		return fmt.Errorf("end tag </%s> does not match <%s>", qualified(t.Name), top.QName())
	}
	r.open = r.open[:len(r.open)-1]
	r.name = top
	r.popNext = true
	return nil
}

// resolve maps a raw prefix:local name to an expanded name using the
// declarations in scope.
func (r *StreamReader) resolve(n xml.Name, attr bool) (Name, error) {
	if n.Space == "" && attr {
		return Name{Local: n.Local}, nil
	}
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if uri, ok := r.scopes[i][n.Space]; ok {
			return Name{Space: uri, Local: n.Local, Prefix: n.Space}, nil
		}
	}
	if n.Space == "" {
		return Name{Local: n.Local}, nil
	}
	return Name{}, fmt.Errorf("prefix %q is not bound", n.Space)
}

// charsetReader decodes documents whose XML declaration names an
// encoding other than UTF-8.
func charsetReader(label string, in io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return nil, fmt.Errorf("encoding %q is not supported", label)
	}
	return enc.NewDecoder().Reader(in), nil
}

func qualified(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

func (r *StreamReader) fail(err error) Event {
	r.err = err
	r.event = Invalid
	return r.event
}

func (r *StreamReader) Event() Event {
	return r.event
}

func (r *StreamReader) Name() Name {
	return r.name
}

func (r *StreamReader) Attrs() []Attr {
	if r.event != StartElement {
		return nil
	}
	return r.attrs
}

func (r *StreamReader) Namespaces() []Namespace {
	if r.event != StartElement {
		return nil
	}
	return r.decls
}

func (r *StreamReader) Text() string {
	return r.text
}

func (r *StreamReader) Location() token.Location {
	return r.loc
}

// Err returns the first error met; once set the reader stays Invalid.
func (r *StreamReader) Err() error {
	return r.err
}

func (r *StreamReader) AtEnd() bool {
	return r.event == EndDocument || r.event == Invalid
}

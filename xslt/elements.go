package xslt

import (
	"strings"

	"github.com/jbowtie/xqlex/diag"
	"github.com/jbowtie/xqlex/xmlsource"
)

// description lists the unqualified attributes an XSLT element accepts.
type description struct {
	required []string
	optional []string
}

func (d description) allows(local string) bool {
	for _, a := range d.required {
		if a == local {
			return true
		}
	}
	for _, a := range d.optional {
		if a == local {
			return true
		}
	}
	return false
}

var standardAttributes = []string{
	"default-collation",
	"exclude-result-prefixes",
	"extension-element-prefixes",
	"use-when",
	"version",
	"xpath-default-namespace",
}

func isStandardAttribute(local string) bool {
	for _, a := range standardAttributes {
		if a == local {
			return true
		}
	}
	return false
}

func fields(s string) []string {
	return strings.Fields(s)
}

var outputAttributes = fields(`byte-order-mark cdata-section-elements doctype-public doctype-system
	encoding escape-uri-attributes include-content-type indent media-type normalization-form
	omit-xml-declaration standalone undeclare-prefixes use-character-maps`)

var stylesheetDescription = description{
	required: fields("version"),
	optional: fields(`id extension-element-prefixes exclude-result-prefixes xpath-default-namespace
		default-validation default-collation input-type-annotations`),
}

var descriptions = map[string]description{
	"apply-templates":        {optional: fields("select mode")},
	"template":               {optional: fields("match name mode priority as")},
	"text":                   {optional: fields("disable-output-escaping")},
	"choose":                 {},
	"otherwise":              {},
	"stylesheet":             stylesheetDescription,
	"transform":              stylesheetDescription,
	"value-of":               {optional: fields("separator select disable-output-escaping")},
	"variable":               {required: fields("name"), optional: fields("select as")},
	"when":                   {required: fields("test")},
	"if":                     {required: fields("test")},
	"sequence":               {required: fields("select")},
	"for-each":               {required: fields("select")},
	"comment":                {optional: fields("select")},
	"processing-instruction": {required: fields("name"), optional: fields("select")},
	"document":               {optional: fields("validation type")},
	"element":                {required: fields("name"), optional: fields("namespace inherit-namespaces use-attribute-sets validation type")},
	"attribute":              {required: fields("name"), optional: fields("namespace select separator validation type")},
	"function":               {required: fields("name"), optional: fields("as override")},
	"param":                  {required: fields("name"), optional: fields("select as required tunnel")},
	"namespace":              {required: fields("name"), optional: fields("select")},
	"call-template":          {required: fields("name")},
	"perform-sort":           {optional: fields("select")},
	"sort":                   {optional: fields("select lang order collation stable case-order data-type")},
	"import-schema":          {optional: fields("namespace schema-location")},
	"message":                {optional: fields("select terminate")},
	"copy-of":                {required: fields("select"), optional: fields("copy-namespaces type validation")},
	"copy":                   {optional: fields("copy-namespaces inherit-namespaces use-attribute-sets type validation")},
	"output":                 {optional: append(fields("name method version"), outputAttributes...)},
	"attribute-set":          {required: fields("name"), optional: fields("use-attribute-sets")},
	"include":                {required: fields("href")},
	"import":                 {required: fields("href")},
	"with-param":             {required: fields("name"), optional: fields("select as tunnel")},
	"strip-space":            {required: fields("elements")},
	"preserve-space":         {required: fields("elements")},
	"result-document":        {optional: append(fields("format href method output-version type validation"), outputAttributes...)},
	"key":                    {required: fields("name match"), optional: fields("use collation")},
	"analyze-string":         {required: fields("select regex"), optional: fields("flags")},
	"matching-substring":     {},
	"non-matching-substring": {},
}

// validate checks the attributes of an XSLT element against its
// description. Elements without one are not checked.
func (t *Tokenizer) validate(el *element) {
	d, ok := descriptions[el.name.Local]
	if !ok || !el.isXSLT() {
		return
	}
	for _, req := range d.required {
		if !el.has(req) {
			t.errorf(diag.XTSE0010, "Element %s must have attribute %s.", el.display(), req)
		}
	}
	if t.mode() == ForwardsCompatible {
		return
	}
	for _, a := range el.attrs {
		if a.Name.Space != "" {
			continue
		}
		if !d.allows(a.Name.Local) && !isStandardAttribute(a.Name.Local) {
			t.errorf(diag.XTSE0090, "Attribute %s cannot appear on element %s.", a.Name.Local, el.display())
		}
	}
}

// standardAttributes checks xml:space, and on a literal result element
// the attributes it carries in the XSLT namespace. A valid xml:space
// opens a whitespace frame scoped to the element.
func (t *Tokenizer) standardAttributes(el *element, isXSLT bool) {
	if space, ok := el.attrNS(xmlsource.XML_NAMESPACE, "space"); ok {
		switch strings.TrimSpace(space) {
		case "default":
			t.pushSpace(false)
		case "preserve":
			t.pushSpace(true)
		default:
			t.errorf(diag.XTSE0020, "The value of xml:space must be default or preserve, not %q.", space)
		}
	}
	if isXSLT {
		return
	}
	for _, a := range el.attrs {
		if a.Name.Space != XSLT_NAMESPACE {
			continue
		}
		switch a.Name.Local {
		case "type", "validation", "use-attribute-sets", "version":
			continue
		}
		if !isStandardAttribute(a.Name.Local) {
			t.errorf(diag.XTSE0805, "Attribute %s is not allowed on a literal result element.", a.Name.QName())
		}
	}
}

// validationAttributes checks type and validation, which live in the
// XSLT namespace on literal result elements.
func (t *Tokenizer) validationAttributes(el *element, isLRE bool) {
	ns := ""
	if isLRE {
		ns = XSLT_NAMESPACE
	}
	_, hasType := el.attrNS(ns, "type")
	validation, hasValidation := el.attrNS(ns, "validation")
	if hasType && hasValidation {
		t.errorf(diag.XTSE1505, "The attributes type and validation are mutually exclusive on %s.", el.display())
	}
	if !hasValidation {
		return
	}
	switch strings.TrimSpace(validation) {
	case "preserve", "strip", "strict", "lax":
	default:
		t.errorf(diag.XTSE0020, "The value of validation must be preserve, strip, strict or lax, not %q.", validation)
	}
}

// toggle reads a two-valued attribute. It reports XTSE0020 for any
// other value and returns false for it.
func (t *Tokenizer) toggle(el *element, local, yes, no string) bool {
	v, ok := el.attr(local)
	if !ok {
		return false
	}
	switch strings.TrimSpace(v) {
	case yes:
		return true
	case no:
		return false
	}
	t.errorf(diag.XTSE0020, "The value of %s on %s must be %s or %s, not %q.", local, el.display(), yes, no, v)
	return false
}

func (t *Tokenizer) yesNo(el *element, local string) bool {
	return t.toggle(el, local, "yes", "no")
}

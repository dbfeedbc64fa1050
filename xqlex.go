package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/jbowtie/xqlex/diag"
	"github.com/jbowtie/xqlex/token"
	"github.com/jbowtie/xqlex/xmlsource"
	"github.com/jbowtie/xqlex/xquery"
	"github.com/jbowtie/xqlex/xslt"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	stylesheet = flag.Bool("xslt", false, "treat INPUT as an XSLT stylesheet and print the equivalent query tokens")
	pure       = flag.Bool("pure", false, "read stylesheets with encoding/xml instead of libxml2")
	showLoc    = flag.Bool("loc", false, "print the location of each token")
	startState = flag.String("state", "", "initial lexical state of the expression tokenizer (Default, Operator, ItemType, AttributeValueTemplate, ...)")
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [options] INPUT\n", os.Args[0])
	flag.PrintDefaults()
}

// readExpression reads an expression file, honouring a byte order mark.
func readExpression(filename string) (string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()
	dec := unicode.UTF8.NewDecoder()
	data, err := ioutil.ReadAll(transform.NewReader(f, unicode.BOMOverride(dec)))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", filename, err)
	}
	return string(data), nil
}

func stylesheetSource(filename string, rep diag.Reporter) (token.Source, func(), error) {
	if *pure {
		f, err := os.Open(filename)
		if err != nil {
			return nil, nil, err
		}
		r := xmlsource.NewStreamReader(bufio.NewReader(f))
		return xslt.New(r, xslt.WithReporter(rep)), func() { f.Close() }, nil
	}
	doc, err := xmlsource.ReadFile(filename)
	if err != nil {
		return nil, nil, err
	}
	return xslt.New(xmlsource.NewDocumentReader(doc), xslt.WithReporter(rep)), doc.Free, nil
}

func expressionSource(filename string) (token.Source, error) {
	text, err := readExpression(filename)
	if err != nil {
		return nil, err
	}
	var opts []xquery.Option
	if *startState != "" {
		s, ok := xquery.ParseState(*startState)
		if !ok {
			return nil, fmt.Errorf("unknown lexical state %q", *startState)
		}
		opts = append(opts, xquery.WithState(s))
	}
	return xquery.New(text, opts...), nil
}

// dump prints tokens up to the end marker or the first ERROR, which the
// expression tokenizer repeats without advancing, and returns its kind.
func dump(w io.Writer, src token.Source, withLoc bool) token.Kind {
	for {
		tok := src.Next()
		switch {
		case withLoc:
			fmt.Fprintln(w, tok)
		case tok.Kind.IsLiteral():
			fmt.Fprintf(w, "%v %q\n", tok.Kind, tok.Value)
		default:
			fmt.Fprintln(w, tok.Kind)
		}
		if tok.Kind.IsEnd() || tok.Kind == token.ERROR {
			return tok.Kind
		}
	}
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}
	input := flag.Arg(0)
	bag := diag.NewBag()

	var (
		src     token.Source
		cleanup = func() {}
		err     error
	)
	if *stylesheet {
		src, cleanup, err = stylesheetSource(input, bag)
	} else {
		src, err = expressionSource(input)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer cleanup()

	out := bufio.NewWriter(os.Stdout)
	end := dump(out, src, *showLoc)
	out.Flush()

	bag.WriteTo(os.Stderr)
	if end != token.EOF || bag.HasErrors() {
		cleanup()
		os.Exit(1)
	}
}

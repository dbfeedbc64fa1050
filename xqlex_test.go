package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jbowtie/xqlex/token"
	"github.com/jbowtie/xqlex/xquery"
	"github.com/stretchr/testify/assert"
)

func TestDumpStopsAtError(t *testing.T) {
	var out bytes.Buffer
	end := dump(&out, xquery.New("a ! b"), false)
	assert.Equal(t, token.ERROR, end)
	assert.Equal(t, []string{`NCNAME "a"`, "ERROR"}, strings.Split(strings.TrimSpace(out.String()), "\n"))
}

func TestDumpEndMarker(t *testing.T) {
	var out bytes.Buffer
	end := dump(&out, xquery.New("1"), true)
	assert.Equal(t, token.EOF, end)
	assert.Equal(t, []string{`1:1 INTEGER "1"`, "1:2 EOF"}, strings.Split(strings.TrimSpace(out.String()), "\n"))
}

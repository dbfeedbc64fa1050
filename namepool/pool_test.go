package namepool

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const xslNS = "http://www.w3.org/1999/XSL/Transform"

func TestAllocateIsStable(t *testing.T) {
	p := New()
	a := p.Allocate(xslNS, "template")
	b := p.Allocate("", "template")
	assert.NotEqual(t, a, b)
	assert.NotZero(t, a)
	assert.Equal(t, a, p.Allocate(xslNS, "template"))
	assert.Equal(t, 2, p.Len())

	n, ok := p.Lookup(a)
	require.True(t, ok)
	assert.Equal(t, Name{Namespace: xslNS, Local: "template"}, n)
	assert.Equal(t, "{"+xslNS+"}template", n.String())

	n, ok = p.Lookup(b)
	require.True(t, ok)
	assert.Equal(t, "template", n.String())
}

func TestLookupUnknown(t *testing.T) {
	p := New()
	_, ok := p.Lookup(0)
	assert.False(t, ok)
	_, ok = p.Lookup(42)
	assert.False(t, ok)
}

func TestConcurrentAllocate(t *testing.T) {
	p := New()
	var wg sync.WaitGroup
	ids := make([][]ID, 4)
	for w := range ids {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				ids[w] = append(ids[w], p.Allocate("urn:test", fmt.Sprint("n", i)))
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, 50, p.Len())
	for w := 1; w < len(ids); w++ {
		assert.Equal(t, ids[0], ids[w])
	}
}

package diag

import (
	"fmt"
	"io"
	"sync"
)

// Bag collects diagnostics. It is safe for concurrent use.
type Bag struct {
	mu          sync.Mutex
	diagnostics []Diagnostic
	errorCount  int
	warnCount   int
}

// NewBag creates an empty bag.
func NewBag() *Bag {
	return &Bag{}
}

// Report adds a diagnostic to the bag
func (b *Bag) Report(d Diagnostic) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.diagnostics = append(b.diagnostics, d)
	switch d.Severity {
	case Error:
		b.errorCount++
	case Warning:
		b.warnCount++
	}
}

// HasErrors returns true if there are any errors
func (b *Bag) HasErrors() bool {
	return b.ErrorCount() > 0
}

// ErrorCount returns the number of errors
func (b *Bag) ErrorCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.errorCount
}

// WarningCount returns the number of warnings
func (b *Bag) WarningCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.warnCount
}

// Diagnostics returns a copy of everything reported so far, in order.
func (b *Bag) Diagnostics() []Diagnostic {
	b.mu.Lock()
	defer b.mu.Unlock()
	ds := make([]Diagnostic, len(b.diagnostics))
	copy(ds, b.diagnostics)
	return ds
}

// Codes returns the codes of the reported errors, in order.
func (b *Bag) Codes() []Code {
	var codes []Code
	for _, d := range b.Diagnostics() {
		if d.Severity == Error {
			codes = append(codes, d.Code)
		}
	}
	return codes
}

// Err returns the bag as an error if it holds any errors, nil otherwise.
func (b *Bag) Err() error {
	if !b.HasErrors() {
		return nil
	}
	return b
}

// Error summarizes the bag by its first error.
func (b *Bag) Error() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	var first *Diagnostic
	for i := range b.diagnostics {
		if b.diagnostics[i].Severity == Error {
			first = &b.diagnostics[i]
			break
		}
	}
	switch {
	case first == nil:
		return "no errors"
	case b.errorCount == 1:
		return first.Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", first.Error(), b.errorCount-1)
}

// WriteTo writes every diagnostic on its own line followed by a summary.
func (b *Bag) WriteTo(w io.Writer) (int64, error) {
	b.mu.Lock()
	diagnostics := make([]Diagnostic, len(b.diagnostics))
	copy(diagnostics, b.diagnostics)
	errorCount, warnCount := b.errorCount, b.warnCount
	b.mu.Unlock()

	var written int64
	emit := func(format string, args ...interface{}) error {
		n, err := fmt.Fprintf(w, format, args...)
		written += int64(n)
		return err
	}
	for _, d := range diagnostics {
		if err := emit("%s\n", d.Error()); err != nil {
			return written, err
		}
	}

	var err error
	switch {
	case errorCount > 0 && warnCount > 0:
		err = emit("%d error(s) and %d warning(s)\n", errorCount, warnCount)
	case errorCount > 0:
		err = emit("%d error(s)\n", errorCount)
	case warnCount > 0:
		err = emit("%d warning(s)\n", warnCount)
	}
	return written, err
}

// Clear removes all diagnostics
func (b *Bag) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.diagnostics = nil
	b.errorCount = 0
	b.warnCount = 0
}

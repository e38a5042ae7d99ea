// Package output carries the stdout printer for jetson-hook commands.
// Stdout holds data a user may pipe or copy (settings, layer tables, the
// source hint); hook progress and diagnostics go to stderr via package log.
package output

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

type ctxKey struct{}

// Printer writes primary output.
type Printer struct {
	w io.Writer
}

// New creates a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// WithPrinter attaches a Printer writing to w to the context.
func WithPrinter(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, ctxKey{}, New(w))
}

// FromContext retrieves the Printer from context.
// Falls back to os.Stdout if none is attached.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout)
}

// Printf writes formatted output.
func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

// Println writes a line of output.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

// Text writes s, adding a final newline if s lacks one. Empty s writes nothing.
func (p *Printer) Text(s string) {
	if s == "" {
		return
	}
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	fmt.Fprint(p.w, s)
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}

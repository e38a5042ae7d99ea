// Package log provides context-aware logging for jetson-hook.
package log

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"
)

// Prefix tags every hook message so it stands out in the sync output.
const Prefix = "[Jetson Hook] "

type ctxKey struct{}

// Logger writes hook diagnostics and, in verbose mode, the external commands being run.
type Logger struct {
	out     io.Writer
	verbose bool
	quiet   bool
}

// New creates a new logger.
// quiet suppresses everything, including verbose output.
func New(out io.Writer, verbose, quiet bool) *Logger {
	return &Logger{out: out, verbose: verbose, quiet: quiet}
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a no-op logger if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return &Logger{out: io.Discard}
}

// Printf writes formatted output.
func (l *Logger) Printf(format string, args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintf(l.out, format, args...)
}

// Println writes a line of output.
func (l *Logger) Println(args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintln(l.out, args...)
}

// Hookf writes a prefixed hook message terminated by a newline.
func (l *Logger) Hookf(format string, args ...any) {
	l.Printf(Prefix+format+"\n", args...)
}

// Banner writes a "--- [Jetson Hook] msg ---" line.
func (l *Logger) Banner(msg string) {
	l.Printf("--- %s%s ---\n", Prefix, msg)
}

// Debug writes a message with key=value pairs in verbose mode.
// A trailing key without a value is dropped.
func (l *Logger) Debug(msg string, keyvals ...any) {
	if !l.IsVerbose() {
		return
	}
	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i+1 < len(keyvals); i += 2 {
		fmt.Fprintf(&b, " %v=%v", keyvals[i], keyvals[i+1])
	}
	fmt.Fprintln(l.out, b.String())
}

// Command logs an external command execution and returns a callback
// that reports its duration. Only prints in verbose mode.
func (l *Logger) Command(dir, name string, args ...string) func(time.Duration) {
	if !l.IsVerbose() {
		return func(time.Duration) {}
	}
	line := "$ " + strings.TrimSpace(name+" "+strings.Join(args, " "))
	if dir != "" {
		line = "[" + dir + "] " + line
	}
	fmt.Fprintln(l.out, line)
	return func(d time.Duration) {
		fmt.Fprintf(l.out, "  (%s)\n", d.Round(time.Millisecond))
	}
}

// IsVerbose returns true if verbose output is enabled and not silenced by quiet.
func (l *Logger) IsVerbose() bool {
	return l.verbose && !l.quiet
}

// Writer returns the underlying writer.
func (l *Logger) Writer() io.Writer {
	return l.out
}

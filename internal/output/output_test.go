package output

import (
	"bytes"
	"context"
	"os"
	"testing"
)

func TestText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"machine = \"x\"\n", "machine = \"x\"\n"},
		{"no newline", "no newline\n"},
		{"", ""},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		New(&buf).Text(tt.in)
		if got := buf.String(); got != tt.want {
			t.Errorf("Text(%q) wrote %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPrintf(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	New(&buf).Printf("%d layers", 6)
	if got := buf.String(); got != "6 layers" {
		t.Errorf("Printf wrote %q", got)
	}
}

func TestWithPrinter_FromContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := WithPrinter(context.Background(), &buf)
	FromContext(ctx).Println("hello")
	if got := buf.String(); got != "hello\n" {
		t.Errorf("printer from context wrote %q", got)
	}

	if w := FromContext(context.Background()).Writer(); w != os.Stdout {
		t.Error("fallback printer should write to os.Stdout")
	}
}

package log

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"
)

func TestPrintf(t *testing.T) {
	t.Parallel()

	t.Run("writes formatted output", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, false, false)
		l.Printf("add-layer %s (%d/%d)", "meta-tegra", 5, 6)
		if got := buf.String(); got != "add-layer meta-tegra (5/6)" {
			t.Errorf("Printf output = %q, want %q", got, "add-layer meta-tegra (5/6)")
		}
	})

	t.Run("suppressed when quiet", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, false, true)
		l.Printf("should not appear")
		if buf.Len() != 0 {
			t.Errorf("Printf wrote %q when quiet", buf.String())
		}
	})
}

func TestPrintln(t *testing.T) {
	t.Parallel()

	t.Run("writes line output", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, false, false)
		l.Println("Your build directory is", "'build-jetson'.")
		if got := buf.String(); got != "Your build directory is 'build-jetson'.\n" {
			t.Errorf("Println output = %q, want %q", got, "Your build directory is 'build-jetson'.\n")
		}
	})

	t.Run("suppressed when quiet", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, false, true)
		l.Println("should not appear")
		if buf.Len() != 0 {
			t.Errorf("Println wrote %q when quiet", buf.String())
		}
	})
}

func TestCommand(t *testing.T) {
	t.Parallel()

	t.Run("verbose with dir", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, true, false)
		done := l.Command("/work/jetson", "/bin/bash", "-c", "bitbake-layers add-layer sources/meta-tegra")
		done(100 * time.Millisecond)
		got := buf.String()
		want := "[/work/jetson] $ /bin/bash -c bitbake-layers add-layer sources/meta-tegra"
		if !strings.Contains(got, want) {
			t.Errorf("Command output = %q, want to contain %q", got, want)
		}
		if !strings.Contains(got, "100ms") {
			t.Errorf("Command output = %q, want to contain duration", got)
		}
	})

	t.Run("verbose without dir", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, true, false)
		done := l.Command("", "bash", "-c", "true")
		done(50 * time.Millisecond)
		got := buf.String()
		if !strings.HasPrefix(got, "$ bash -c true") {
			t.Errorf("Command output = %q, want prefix %q", got, "$ bash -c true")
		}
	})

	t.Run("not verbose is no-op", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, false, false)
		done := l.Command("/work/jetson", "bash", "-c", "bitbake-layers add-layer sources/meta-oe")
		done(100 * time.Millisecond)
		if buf.Len() != 0 {
			t.Errorf("Command wrote %q when not verbose", buf.String())
		}
	})

	t.Run("quiet overrides verbose", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, true, true)
		done := l.Command("/work/jetson", "bash", "-c", "bitbake-layers add-layer sources/meta-oe")
		done(100 * time.Millisecond)
		if buf.Len() != 0 {
			t.Errorf("Command wrote %q when quiet", buf.String())
		}
	})
}

func TestDebug(t *testing.T) {
	t.Parallel()

	t.Run("verbose key-val format", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, true, false)
		l.Debug("adding layer", "layer", "meta-tegra", "buildDir", "build-jetson")
		got := buf.String()
		if !strings.Contains(got, "adding layer") {
			t.Errorf("Debug output = %q, want to contain message", got)
		}
		for _, kv := range []string{"layer=meta-tegra", "buildDir=build-jetson"} {
			if !strings.Contains(got, kv) {
				t.Errorf("Debug output = %q, want to contain %s", got, kv)
			}
		}
	})

	t.Run("odd keyvals drops last", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, true, false)
		l.Debug("fetching", "image", "core-image-weston", "orphan")
		got := buf.String()
		if !strings.Contains(got, "image=core-image-weston") {
			t.Errorf("Debug output = %q, want to contain image=core-image-weston", got)
		}
		if strings.Contains(got, "orphan") {
			t.Errorf("Debug output = %q, should not contain orphan key", got)
		}
	})

	t.Run("not verbose is silent", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, false, false)
		l.Debug("should not appear", "layer", "meta-oe")
		if buf.Len() != 0 {
			t.Errorf("Debug wrote %q when not verbose", buf.String())
		}
	})

	t.Run("quiet overrides verbose", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, true, true)
		l.Debug("should not appear")
		if buf.Len() != 0 {
			t.Errorf("Debug wrote %q when quiet", buf.String())
		}
	})
}

func TestIsVerbose(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		verbose bool
		quiet   bool
		want    bool
	}{
		{"verbose only", true, false, true},
		{"quiet only", false, true, false},
		{"both", true, true, false},
		{"neither", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			l := New(io.Discard, tt.verbose, tt.quiet)
			if got := l.IsVerbose(); got != tt.want {
				t.Errorf("IsVerbose() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWriter(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := New(&buf, false, false)
	if l.Writer() != &buf {
		t.Error("Writer() did not return the underlying writer")
	}
}

func TestWithLogger_FromContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, true, false)
		ctx := WithLogger(context.Background(), l)
		got := FromContext(ctx)
		if got != l {
			t.Error("FromContext did not return the stored logger")
		}
	})

	t.Run("fallback discard logger", func(t *testing.T) {
		t.Parallel()
		l := FromContext(context.Background())
		if l == nil {
			t.Fatal("FromContext returned nil for empty context")
		}
		l.Printf("should not appear anywhere")
		l.Debug("should not appear anywhere", "layer", "meta-oe")
		if l.Writer() != io.Discard {
			t.Error("fallback logger should write to io.Discard")
		}
	})
}

func TestHookf(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(&buf, false, false)
	l.Hookf("Running command: %s", "echo hi")
	want := "[Jetson Hook] Running command: echo hi\n"
	if got := buf.String(); got != want {
		t.Errorf("Hookf output = %q, want %q", got, want)
	}
}

func TestBanner(t *testing.T) {
	t.Parallel()

	t.Run("framed with prefix", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, false, false)
		l.Banner("Yocto environment setup is complete!")
		want := "--- [Jetson Hook] Yocto environment setup is complete! ---\n"
		if got := buf.String(); got != want {
			t.Errorf("Banner output = %q, want %q", got, want)
		}
	})

	t.Run("suppressed when quiet", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, false, true)
		l.Banner("nothing")
		if buf.Len() != 0 {
			t.Errorf("Banner wrote %q when quiet", buf.String())
		}
	})
}

// Package localconf appends the hook's settings block to a BitBake local.conf.
//
// The block is framed by a start and end marker comment. The start marker is
// the idempotence key: if it already appears anywhere in the file, nothing is
// written. Existing content is never truncated or reordered.
package localconf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrNotFound is returned when local.conf does not exist.
var ErrNotFound = errors.New("local.conf not found")

// Block is the marker-framed text appended to local.conf.
type Block struct {
	StartMarker string
	EndMarker   string
	Lines       []string
}

// String renders the block exactly as written to disk: a leading blank line,
// the start marker, each line, the end marker, and a trailing newline.
func (b Block) String() string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(b.StartMarker + "\n")
	for _, line := range b.Lines {
		sb.WriteString(line + "\n")
	}
	sb.WriteString(b.EndMarker + "\n")
	return sb.String()
}

// Result reports what Ensure did.
type Result int

const (
	// Appended means the block was written.
	Appended Result = iota
	// AlreadyPresent means the start marker was found and the file was left alone.
	AlreadyPresent
)

func (r Result) String() string {
	switch r {
	case Appended:
		return "appended"
	case AlreadyPresent:
		return "already present"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// Ensure appends b to the file at path unless the file already contains b.StartMarker.
// Returns an error wrapping ErrNotFound if the file does not exist; the file is never created.
func Ensure(path string, b Block) (Result, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, fmt.Errorf("%w at %s", ErrNotFound, path)
		}
		return 0, fmt.Errorf("open %s: %w", path, err)
	}

	content, err := io.ReadAll(f)
	if err != nil {
		f.Close()
		return 0, fmt.Errorf("read %s: %w", path, err)
	}

	if containsMarker(content, b.StartMarker) {
		return AlreadyPresent, f.Close()
	}

	// The read left the offset at EOF, so this write appends.
	if _, err := f.WriteString(b.String()); err != nil {
		f.Close()
		return 0, fmt.Errorf("append to %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("close %s: %w", path, err)
	}
	return Appended, nil
}

func containsMarker(content []byte, marker string) bool {
	return bytes.Contains(content, []byte(marker))
}

// HasMarker reports whether the file at path contains marker.
// A missing file yields an error wrapping ErrNotFound.
func HasMarker(path, marker string) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, fmt.Errorf("%w at %s", ErrNotFound, path)
		}
		return false, err
	}
	return containsMarker(content, marker), nil
}

package hook

import (
	"slices"
	"testing"
)

func TestLineWriter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		writes []string
		want   []string
	}{
		{
			name:   "one line per write",
			writes: []string{"NOTE: Executing Tasks\n", "NOTE: Running task 1 of 12\n"},
			want:   []string{"NOTE: Executing Tasks", "NOTE: Running task 1 of 12"},
		},
		{
			name:   "line split across writes",
			writes: []string{"NOTE: Running ", "task 3 of 12", "\n"},
			want:   []string{"NOTE: Running task 3 of 12"},
		},
		{
			name:   "carriage return redraws",
			writes: []string{"Fetching 10%\rFetching 50%\r\n"},
			want:   []string{"Fetching 10%", "Fetching 50%"},
		},
		{
			name:   "blank lines skipped",
			writes: []string{"\n  \n\tNOTE: done  \n"},
			want:   []string{"NOTE: done"},
		},
		{
			name:   "unterminated tail held back",
			writes: []string{"NOTE: complete\nWARNING: partial"},
			want:   []string{"NOTE: complete"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got []string
			w := &lineWriter{fn: func(line string) { got = append(got, line) }}
			for _, s := range tt.writes {
				n, err := w.Write([]byte(s))
				if err != nil || n != len(s) {
					t.Fatalf("Write(%q) = %d, %v", s, n, err)
				}
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("lines = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"meta-tegra", 20, "meta-tegra"},
		{"meta-tegra", 10, "meta-tegra"},
		{"meta-tegra", 8, "meta-..."},
		{"größenänderung", 6, "grö..."},
		{"abcdef", 2, "ab"},
	}

	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

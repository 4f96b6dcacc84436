package components

import (
	"strings"
	"testing"

	"github.com/vvka-141/fmgr/internal/files/filesystem"
)

func newTree(t *testing.T, dirs []string, files []string) *filesystem.MemoryGateway {
	t.Helper()
	gw := filesystem.NewMemoryGateway(nil)
	for _, d := range dirs {
		if err := gw.AddDir(d); err != nil {
			t.Fatalf("AddDir(%s): %v", d, err)
		}
	}
	for _, f := range files {
		if err := gw.AddFile(f, "data"); err != nil {
			t.Fatalf("AddFile(%s): %v", f, err)
		}
	}
	return gw
}

func TestPathCompleter_SingleMatch(t *testing.T) {
	gw := newTree(t, []string{"/work/photos", "/work/scripts"}, nil)

	c := NewPathCompleter(gw, "/", true)
	result := c.Next("/work/pho")

	if result != "/work/photos/" {
		t.Errorf("expected '/work/photos/', got: %s", result)
	}
}

func TestPathCompleter_NoMatchKeepsInput(t *testing.T) {
	gw := newTree(t, []string{"/work/photos", "/work/scripts"}, nil)

	c := NewPathCompleter(gw, "/", true)
	result := c.Next("/work/mig")

	if result != "/work/mig" {
		t.Errorf("expected input unchanged, got: %s", result)
	}
}

func TestPathCompleter_RelativeToBase(t *testing.T) {
	gw := newTree(t, []string{"/work/photos", "/work/scripts"}, nil)

	c := NewPathCompleter(gw, "/work", true)
	result := c.Next("scr")

	if result != "scripts/" {
		t.Errorf("expected 'scripts/', got: %s", result)
	}
}

func TestPathCompleter_CommonPrefixFirst(t *testing.T) {
	gw := newTree(t, []string{"/work/backup-2024", "/work/backup-2025"}, nil)

	c := NewPathCompleter(gw, "/", true)
	result := c.Next("/work/b")

	if result != "/work/backup-202" {
		t.Errorf("expected common prefix '/work/backup-202', got: %s", result)
	}
}

func TestPathCompleter_CyclesThroughMatches(t *testing.T) {
	gw := newTree(t, []string{"/work/alpha", "/work/beta", "/work/gamma"}, nil)

	c := NewPathCompleter(gw, "/", true)

	// First Tab: gets first match
	r1 := c.Next("/work/")
	// Second Tab: cycles to next
	r2 := c.Next("/work/")
	// Third Tab: cycles to next
	r3 := c.Next("/work/")
	// Fourth Tab: wraps around
	r4 := c.Next("/work/")

	want := []string{"/work/alpha/", "/work/beta/", "/work/gamma/", "/work/alpha/"}
	got := []string{r1, r2, r3, r4}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tab %d: expected %s, got %s", i+1, want[i], got[i])
		}
	}
}

func TestPathCompleter_ResetStopsCycling(t *testing.T) {
	gw := newTree(t, []string{"/work/alpha", "/work/beta"}, nil)

	c := NewPathCompleter(gw, "/", true)

	r1 := c.Next("/work/")
	c.Reset()
	r2 := c.Next("/work/")

	// After reset, should start from the beginning again
	if r1 != r2 {
		t.Errorf("expected same result after reset, got: %s vs %s", r1, r2)
	}
}

func TestPathCompleter_DirsOnly(t *testing.T) {
	gw := newTree(t, []string{"/work/subdir"}, []string{"/work/file.txt"})

	c := NewPathCompleter(gw, "/", true)
	result := c.Next("/work/")

	if !strings.Contains(result, "subdir") {
		t.Errorf("expected dir match 'subdir', got: %s", result)
	}
}

func TestPathCompleter_FilesIncluded(t *testing.T) {
	gw := newTree(t, []string{"/work"}, []string{"/work/file.txt"})

	c := NewPathCompleter(gw, "/", false)
	result := c.Next("/work/fi")

	if result != "/work/file.txt" {
		t.Errorf("expected '/work/file.txt' without separator, got: %s", result)
	}
}

func TestPathCompleter_EmptyDir(t *testing.T) {
	gw := newTree(t, []string{"/work"}, nil)

	c := NewPathCompleter(gw, "/", true)
	result := c.Next("/work/")

	// No subdirs: should return input unchanged
	if result != "/work/" {
		t.Errorf("expected unchanged input for empty dir, got: %s", result)
	}
}

func TestPathCompleter_MissingParent(t *testing.T) {
	gw := newTree(t, []string{"/work"}, nil)

	c := NewPathCompleter(gw, "/", true)
	if result := c.Next("/nowhere/x"); result != "/nowhere/x" {
		t.Errorf("expected unchanged input, got: %s", result)
	}
}

func TestSplitPath(t *testing.T) {
	tests := []struct {
		input          string
		expectedParent string
		expectedPrefix string
	}{
		{"", ".", ""},
		{".", ".", ""},
		{"my", ".", "my"},
		{"/", "/", ""},
		{"/ho", "/", "ho"},
		{"/home/op/", "/home/op", ""},
		{"docs/rep", "docs", "rep"},
	}

	for _, tt := range tests {
		parent, prefix := splitPath(tt.input)
		if parent != tt.expectedParent || prefix != tt.expectedPrefix {
			t.Errorf("splitPath(%q) = (%q, %q), want (%q, %q)",
				tt.input, parent, prefix, tt.expectedParent, tt.expectedPrefix)
		}
	}
}

func TestLongestCommonPrefix(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{nil, ""},
		{[]string{"alone"}, "alone"},
		{[]string{"Backup", "backend"}, "Back"},
		{[]string{"alpha", "beta"}, ""},
	}

	for _, tt := range tests {
		if got := longestCommonPrefix(tt.in); got != tt.want {
			t.Errorf("longestCommonPrefix(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

package pathx

import "testing"

// TestNormalizeAbsolute tests that a rooted path resets the accumulator.
func TestNormalizeAbsolute(t *testing.T) {
	got := Normalize("/working/dir", "/etc/passwd")
	if got != "/etc/passwd" {
		t.Errorf("Normalize = %q, want /etc/passwd", got)
	}
}

// TestNormalizeRelative tests appending plain components.
func TestNormalizeRelative(t *testing.T) {
	got := Normalize("/a/b", "c/d")
	if got != "/a/b/c/d" {
		t.Errorf("Normalize = %q, want /a/b/c/d", got)
	}
}

// TestNormalizeParentDir tests that ".." pops one component.
func TestNormalizeParentDir(t *testing.T) {
	tests := []struct {
		wd, path, want string
	}{
		{"/a/b", "../c", "/a/c"},
		{"/a/b", "../../c", "/c"},
		{"/a/b", "../../../../c", "/c"},
		{"/", "..", "/"},
		{"a", "../x", "x"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.wd, tt.path); got != tt.want {
			t.Errorf("Normalize(%q, %q) = %q, want %q", tt.wd, tt.path, got, tt.want)
		}
	}
}

// TestNormalizeCurDir tests that "." components are ignored.
func TestNormalizeCurDir(t *testing.T) {
	got := Normalize("/a", "././b/./c")
	if got != "/a/b/c" {
		t.Errorf("Normalize = %q, want /a/b/c", got)
	}
}

// TestNormalizePure tests that equal inputs give equal outputs (no state,
// no filesystem access).
func TestNormalizePure(t *testing.T) {
	a := Normalize("/no/such/dir", "../neither/does/this")
	b := Normalize("/no/such/dir", "../neither/does/this")
	if a != b {
		t.Errorf("Normalize not pure: %q != %q", a, b)
	}
}

// TestHasPrefixComponents tests component-wise prefix matching.
func TestHasPrefixComponents(t *testing.T) {
	tests := []struct {
		path, prefix string
		want         bool
	}{
		{"/a/b/c", "/a/b", true},
		{"/a/b", "/a/b", true},
		{"/a/bc", "/a/b", false},
		{"/a", "/a/b", false},
		{"/a/b", "/", true},
		{"x/y", "x", true},
		{"xy", "x", false},
	}
	for _, tt := range tests {
		if got := HasPrefix(tt.path, tt.prefix); got != tt.want {
			t.Errorf("HasPrefix(%q, %q) = %v, want %v", tt.path, tt.prefix, got, tt.want)
		}
	}
}

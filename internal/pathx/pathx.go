// Package pathx provides lexical path manipulation that never touches the
// filesystem.
package pathx

import (
	"path/filepath"
	"strings"
)

// Normalize resolves path against workingDir without any filesystem
// access. It walks path's components: a leading root resets the
// accumulator, a name appends, ".." pops one element, "." is ignored.
// Volume prefixes (a Windows concept) are ignored. Unlike
// filepath.EvalSymlinks this works on paths that do not exist, which is
// what resolving a possibly-dangling symlink target requires.
func Normalize(workingDir, path string) string {
	normalized := workingDir
	rest := path

	if vol := filepath.VolumeName(rest); vol != "" {
		rest = rest[len(vol):]
	}
	if strings.HasPrefix(rest, "/") {
		normalized = "/"
		rest = strings.TrimLeft(rest, "/")
	}

	for _, comp := range strings.Split(rest, "/") {
		switch comp {
		case "", ".":
		case "..":
			normalized = pop(normalized)
		default:
			normalized = filepath.Join(normalized, comp)
		}
	}
	return normalized
}

// pop removes the last component, stopping at "/" and at an empty
// accumulator. Mirrors PathBuf::pop rather than filepath.Dir: popping ""
// stays "" instead of becoming ".".
func pop(p string) string {
	switch p {
	case "", "/":
		return p
	}
	parent := filepath.Dir(p)
	if parent == "." && !strings.HasPrefix(p, "./") {
		return ""
	}
	return parent
}

// HasPrefix reports whether prefix is a component-wise prefix of path:
// "/a/b" is a prefix of "/a/b/c" but not of "/a/bc". Both paths are
// compared as given, without cleaning.
func HasPrefix(path, prefix string) bool {
	if path == prefix {
		return true
	}
	if prefix == "/" {
		return strings.HasPrefix(path, "/")
	}
	return strings.HasPrefix(path, strings.TrimSuffix(prefix, "/")+"/")
}

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/rjulien/fsdig/internal/types"
)

// recordSep picks the record separator: linefeed by default, NUL with -Z.
func recordSep(null bool) byte {
	if null {
		return 0
	}
	return '\n'
}

// writeRecord writes one path followed by the separator, quote-escaping
// the path when requested.
func writeRecord(w io.Writer, path string, sep byte, quote bool) {
	if quote {
		path = strconv.Quote(path)
	}
	fmt.Fprintf(w, "%s%c", path, sep)
}

// writeGroups writes each group one path per line, with an empty record
// (a blank line, or a second NUL) closing every group.
func writeGroups(w io.Writer, groups types.GroupList, sep byte, quote bool) {
	for _, group := range groups {
		for _, m := range group {
			writeRecord(w, m.Path, sep, quote)
		}
		fmt.Fprintf(w, "%c", sep)
	}
}

package main

import (
	"bytes"
	"testing"

	"github.com/rjulien/fsdig/internal/sizes"
	"github.com/rjulien/fsdig/internal/types"
)

// TestWriteGroupsNewline tests the default group rendering: one path per
// line, blank line after each group.
func TestWriteGroupsNewline(t *testing.T) {
	groups := types.GroupList{
		{&types.Meta{Path: "a/foo_1"}, &types.Meta{Path: "a/foo_2"}},
		{&types.Meta{Path: "bar_1"}, &types.Meta{Path: "bar_2"}},
	}

	var buf bytes.Buffer
	writeGroups(&buf, groups, recordSep(false), false)

	want := "a/foo_1\na/foo_2\n\nbar_1\nbar_2\n\n"
	if buf.String() != want {
		t.Errorf("writeGroups = %q, want %q", buf.String(), want)
	}
}

// TestWriteGroupsNull tests NUL record separation: one NUL per record, a
// second NUL closing each group.
func TestWriteGroupsNull(t *testing.T) {
	groups := types.GroupList{
		{&types.Meta{Path: "x"}, &types.Meta{Path: "y"}},
	}

	var buf bytes.Buffer
	writeGroups(&buf, groups, recordSep(true), false)

	want := "x\x00y\x00\x00"
	if buf.String() != want {
		t.Errorf("writeGroups = %q, want %q", buf.String(), want)
	}
}

// TestWriteRecordQuoted tests quote-escaping of awkward paths.
func TestWriteRecordQuoted(t *testing.T) {
	var buf bytes.Buffer
	writeRecord(&buf, "with space\nand newline", '\n', true)

	want := "\"with space\\nand newline\"\n"
	if buf.String() != want {
		t.Errorf("writeRecord = %q, want %q", buf.String(), want)
	}
}

// TestRenderTablePlain tests the SIZE/PATH table layout and row order.
func TestRenderTablePlain(t *testing.T) {
	var buf bytes.Buffer
	renderTable(&buf, []sizes.Entry{
		{Path: "/r/big", Size: 3000},
		{Path: "/r", Size: 3010},
	}, false)

	out := buf.String()
	lines := bytes.Split(bytes.TrimRight([]byte(out), "\n"), []byte("\n"))
	if len(lines) != 3 {
		t.Fatalf("table has %d lines, want 3: %q", len(lines), out)
	}
	if !bytes.Contains(lines[0], []byte("SIZE")) || !bytes.Contains(lines[0], []byte("PATH")) {
		t.Errorf("header = %q", lines[0])
	}
	if !bytes.Contains(lines[1], []byte("3000")) || !bytes.Contains(lines[1], []byte("/r/big")) {
		t.Errorf("row 1 = %q", lines[1])
	}
	if !bytes.Contains(lines[2], []byte("3010")) {
		t.Errorf("row 2 = %q", lines[2])
	}
}

// TestRenderTableHuman tests humanized sizes.
func TestRenderTableHuman(t *testing.T) {
	var buf bytes.Buffer
	renderTable(&buf, []sizes.Entry{{Path: "/r", Size: 3072}}, true)

	if !bytes.Contains(buf.Bytes(), []byte("KiB")) {
		t.Errorf("expected humanized size in %q", buf.String())
	}
}

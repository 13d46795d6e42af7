package filestore

import (
	"bytes"
	"io/fs"
	"strings"
	"time"
)

// Document is a loaded file.
type Document struct {
	// Path is the path the file was loaded from.
	Path string

	// Lines holds the file content split on '\n'. It has at least one
	// element.
	Lines []string

	// TrailingNewline reports whether the file ended with '\n'.
	TrailingNewline bool

	// Mode is the file's permission bits, reused on save.
	Mode fs.FileMode

	// ModTime is the file's modification time when loaded.
	ModTime time.Time
}

// Split splits content into lines. A trailing '\n' is reported instead of
// producing an empty last line. Empty content is a single empty line.
func Split(content []byte) (lines []string, trailingNewline bool) {
	if len(content) == 0 {
		return []string{""}, false
	}
	if content[len(content)-1] == '\n' {
		trailingNewline = true
		content = content[:len(content)-1]
	}
	return strings.Split(string(content), "\n"), trailingNewline
}

// Join is the inverse of Split.
func Join(lines []string, trailingNewline bool) []byte {
	var buf bytes.Buffer
	for i, l := range lines {
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(l)
	}
	if trailingNewline {
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Package source holds the named, file-backed (or REPL-backed) text a
// parser runs over, plus enough of it — split lines, a display path — to
// render a caret-pointing diagnostic after the fact.
package source

import (
	"path/filepath"
	"strings"

	"parsec/pkg/stream"
)

// File is a named chunk of source text: a display name, an optional
// on-disk path, and the content itself.
type File struct {
	Name    string
	Path    string
	Content string
	lines   []string
}

// New creates a File with an explicit display name.
func New(name, path, content string) *File {
	return &File{Name: name, Path: path, Content: content}
}

// FromFile creates a File whose display name is the base name of path.
func FromFile(path, content string) *File {
	return New(filepath.Base(path), path, content)
}

// FromREPL creates a path-less File for input typed at an interactive
// prompt rather than read from disk.
func FromREPL(content string) *File {
	return New("<repl>", "", content)
}

// Lines returns the source split into lines, computed once and cached.
func (f *File) Lines() []string {
	if f.lines == nil {
		f.lines = strings.Split(f.Content, "\n")
	}
	return f.lines
}

// DisplayPath returns Path if set, else Name.
func (f *File) DisplayPath() string {
	if f.Path != "" {
		return f.Path
	}
	return f.Name
}

// IsFile reports whether this File backs an actual on-disk path.
func (f *File) IsFile() bool {
	return f.Path != ""
}

// Stream returns a Stream over f's content, ready to hand to parsec.Run
// alongside f.Name as the source name threaded into every Position.
func (f *File) Stream() stream.RuneStream {
	return stream.FromString(f.Content)
}

/*
Package tagio implements tag container access for audio files.

The packages script, runs and tags are pure text processing; this
package touches files. It provides the Container implementations the
tag mapper operates on: ID3v2 frames for MP3 files and the Vorbis
comment block for FLAC files, opened read-write. OGG, M4A and WMA files
are recognized but have no write backend; opening them yields an error
the batch driver records per file.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package tagio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/npillmayer/rtlfix/tags"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// ErrNoBackend flags a file whose tags this build cannot write.
var ErrNoBackend = errors.New("tagio: no tag backend for this format")

// A Handle couples an open tag container with its format and its
// persistence. Nothing is written to the file before Save.
type Handle interface {
	tags.Container
	Format() tags.Format // the container format behind this handle
	Path() string        // the file the handle was opened for
	Save() error         // write the container back to the file
	Close() error        // release the file without saving
}

// Open opens the tag container of an audio file, dispatching on the
// file extension. Files of recognized formats without a write backend
// come back with an error wrapping ErrNoBackend.
func Open(path string) (Handle, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".mp3":
		return openID3(path)
	case ".flac":
		return openFLAC(path)
	case ".ogg", ".m4a", ".wma":
		if f, err := Sniff(path); err == nil {
			return nil, fmt.Errorf("tagio: %s tags in %s: %w", f, filepath.Base(path), ErrNoBackend)
		}
		return nil, fmt.Errorf("tagio: %s: %w", filepath.Base(path), ErrNoBackend)
	case ".wav":
		return nil, fmt.Errorf("tagio: %s carries no supported tag schema: %w", filepath.Base(path), ErrNoBackend)
	}
	return nil, fmt.Errorf("tagio: unrecognized file type %q: %w", ext, ErrNoBackend)
}

// A BackendStatus describes what this build can do for one container
// format.
type BackendStatus struct {
	Format tags.Format
	Ext    string // primary file extension
	Read   bool
	Write  bool
	Note   string
}

// Doctor reports the per-format capabilities of this build. The command
// line tool prints the list for its check mode.
func Doctor() []BackendStatus {
	return []BackendStatus{
		{Format: tags.MP3, Ext: ".mp3", Read: true, Write: true, Note: "ID3v2 frames"},
		{Format: tags.FLAC, Ext: ".flac", Read: true, Write: true, Note: "Vorbis comment block"},
		{Format: tags.OGG, Ext: ".ogg", Read: false, Write: false, Note: "recognized, no backend"},
		{Format: tags.M4A, Ext: ".m4a", Read: false, Write: false, Note: "recognized, no backend"},
		{Format: tags.WMA, Ext: ".wma", Read: false, Write: false, Note: "recognized, no backend"},
	}
}

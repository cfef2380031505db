package tagio

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-flac/flacvorbis"
	"github.com/go-flac/go-flac"
	"github.com/npillmayer/rtlfix/tags"
)

// flacHandle wraps the Vorbis comment block of a FLAC file. The whole
// stream is parsed into memory on open; Save re-assembles it.
type flacHandle struct {
	path  string
	file  *flac.File
	cmts  *flacvorbis.MetaDataBlockVorbisComment
	index int // position of the comment block in file.Meta, -1 if absent
}

func openFLAC(path string) (*flacHandle, error) {
	file, err := flac.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("tagio: cannot parse FLAC stream of %s: %w", filepath.Base(path), err)
	}
	h := &flacHandle{path: path, file: file, index: -1}
	for i, meta := range file.Meta {
		if meta.Type != flac.VorbisComment {
			continue
		}
		cmts, err := flacvorbis.ParseFromMetaDataBlock(*meta)
		if err != nil {
			return nil, fmt.Errorf("tagio: malformed Vorbis comments in %s: %w", filepath.Base(path), err)
		}
		h.cmts, h.index = cmts, i
		break
	}
	if h.cmts == nil {
		h.cmts = flacvorbis.New()
	}
	T().Debugf("opened FLAC file with %d comment(s)", len(h.cmts.Comments))
	return h, nil
}

func (h *flacHandle) Format() tags.Format { return tags.FLAC }
func (h *flacHandle) Path() string        { return h.path }

func (h *flacHandle) Get(key string) []string {
	values, err := h.cmts.Get(key)
	if err != nil {
		T().Errorf("Vorbis comment scan: %v", err)
		return nil
	}
	return values
}

// Set replaces all comments for a field name. Field names compare
// case-insensitively, as the Vorbis comment specification demands.
func (h *flacHandle) Set(key string, values []string) error {
	filtered := make([]string, 0, len(h.cmts.Comments))
	for _, cmt := range h.cmts.Comments {
		p := strings.SplitN(cmt, "=", 2)
		if len(p) == 2 && strings.EqualFold(p[0], key) {
			continue
		}
		filtered = append(filtered, cmt)
	}
	h.cmts.Comments = filtered
	for _, v := range values {
		if err := h.cmts.Add(key, v); err != nil {
			return fmt.Errorf("tagio: cannot store Vorbis comment %s: %w", key, err)
		}
	}
	return nil
}

func (h *flacHandle) Save() error {
	block := h.cmts.Marshal()
	if h.index >= 0 {
		h.file.Meta[h.index] = &block
	} else {
		h.file.Meta = append(h.file.Meta, &block)
	}
	if err := h.file.Save(h.path); err != nil {
		return fmt.Errorf("tagio: cannot save %s: %w", filepath.Base(h.path), err)
	}
	return nil
}

func (h *flacHandle) Close() error {
	return nil // nothing held open
}

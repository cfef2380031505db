package tagio

import (
	"fmt"
	"path/filepath"

	"github.com/bogem/id3v2/v2"
	"github.com/npillmayer/rtlfix/tags"
)

// id3Handle wraps an ID3v2 tag of an MP3 file. The underlying library
// keeps the file open until Save or Close.
type id3Handle struct {
	path string
	tag  *id3v2.Tag
}

func openID3(path string) (*id3Handle, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, fmt.Errorf("tagio: cannot open ID3 tag of %s: %w", filepath.Base(path), err)
	}
	T().Debugf("opened ID3v2.%d tag with %d frame(s)", tag.Version(), tag.Count())
	return &id3Handle{path: path, tag: tag}, nil
}

func (h *id3Handle) Format() tags.Format { return tags.MP3 }
func (h *id3Handle) Path() string        { return h.path }

// Get returns the values of an ID3 frame. Text frames hold a single
// value, comment and lyrics frames may occur in sequence.
func (h *id3Handle) Get(key string) []string {
	switch key {
	case "COMM":
		var values []string
		for _, f := range h.tag.GetFrames(key) {
			if cf, ok := f.(id3v2.CommentFrame); ok {
				values = append(values, cf.Text)
			}
		}
		return values
	case "USLT":
		var values []string
		for _, f := range h.tag.GetFrames(key) {
			if lf, ok := f.(id3v2.UnsynchronisedLyricsFrame); ok {
				values = append(values, lf.Lyrics)
			}
		}
		return values
	case "SYLT":
		// synchronised lyrics carry timestamped binary content which
		// the frame library does not expose as text
		return nil
	}
	tf := h.tag.GetTextFrame(key)
	if tf.Text == "" {
		return nil
	}
	return []string{tf.Text}
}

// Set replaces the values of an ID3 frame. Comment and lyrics frames
// keep their language and descriptor, only the payload text changes.
// Frames are written with UTF-8 encoding.
func (h *id3Handle) Set(key string, values []string) error {
	switch key {
	case "COMM":
		old := h.tag.GetFrames(key)
		h.tag.DeleteFrames(key)
		for i, v := range values {
			cf := id3v2.CommentFrame{Encoding: id3v2.EncodingUTF8, Language: "eng", Text: v}
			if i < len(old) {
				if prev, ok := old[i].(id3v2.CommentFrame); ok {
					cf.Language = prev.Language
					cf.Description = prev.Description
				}
			}
			h.tag.AddCommentFrame(cf)
		}
	case "USLT":
		old := h.tag.GetFrames(key)
		h.tag.DeleteFrames(key)
		for i, v := range values {
			lf := id3v2.UnsynchronisedLyricsFrame{Encoding: id3v2.EncodingUTF8, Language: "eng", Lyrics: v}
			if i < len(old) {
				if prev, ok := old[i].(id3v2.UnsynchronisedLyricsFrame); ok {
					lf.Language = prev.Language
					lf.ContentDescriptor = prev.ContentDescriptor
				}
			}
			h.tag.AddUnsynchronisedLyricsFrame(lf)
		}
	case "SYLT":
		return nil
	default:
		if len(values) == 0 {
			h.tag.DeleteFrames(key)
			return nil
		}
		h.tag.AddTextFrame(key, id3v2.EncodingUTF8, values[0])
	}
	return nil
}

func (h *id3Handle) Save() error {
	if err := h.tag.Save(); err != nil {
		return fmt.Errorf("tagio: cannot save %s: %w", filepath.Base(h.path), err)
	}
	return h.tag.Close()
}

func (h *id3Handle) Close() error {
	return h.tag.Close()
}

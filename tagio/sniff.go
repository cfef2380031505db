package tagio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dhowden/tag"
	"github.com/npillmayer/rtlfix/tags"
)

// Sniff identifies the container format of an audio file from its
// content, independently of the file extension.
func Sniff(path string) (tags.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	_, fileType, err := tag.Identify(f)
	if err != nil {
		return 0, fmt.Errorf("tagio: cannot identify %s: %w", filepath.Base(path), err)
	}
	switch fileType {
	case tag.MP3:
		return tags.MP3, nil
	case tag.FLAC:
		return tags.FLAC, nil
	case tag.OGG:
		return tags.OGG, nil
	case tag.M4A, tag.M4B, tag.M4P, tag.ALAC:
		return tags.M4A, nil
	}
	return 0, fmt.Errorf("tagio: no supported container in %s", filepath.Base(path))
}

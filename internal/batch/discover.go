package batch

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Audio file extensions the batch picks up (lowercase, with leading
// dot). WAV files carry no supported tag schema and participate in
// file name fixing only.
var audioExtensions = map[string]bool{
	".mp3":  true,
	".ogg":  true,
	".flac": true,
	".m4a":  true,
	".wav":  true,
	".wma":  true,
}

// Discover walks a folder recursively, collects files with audio
// extensions and returns the paths sorted lexicographically for
// deterministic processing order.
func Discover(folder string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(folder, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if audioExtensions[ext] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

/* Package backup saves audio files away before the batch driver touches them.

All backups of one batch run share a timestamp directory under the backup
root, and every copied file gets a JSON sidecar recording where it came
from. A restore reads the sidecars, so it works even after the music
folder has been renamed around the backed-up files.
*/
package backup

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// StampLayout is the directory name pattern of one backup run.
const StampLayout = "20060102_150405"

const metaSuffix = ".meta"

// Sidecar metadata, one JSON file per backed-up audio file.
type meta struct {
	OriginalPath string `json:"original_path"`
	BackupTime   string `json:"backup_time"`
	FileSize     int64  `json:"file_size"`
}

// A Manager writes the backups of one batch run. All files of the run
// end up under the same timestamp directory.
type Manager struct {
	dir   string // backup root
	root  string // scan root, used to relativize file paths
	stamp string
}

// NewManager creates the backup root if necessary and reserves a
// timestamp directory name for the run. root is the folder the batch is
// working on; backed-up files keep their position relative to it.
func NewManager(dir, root string) (*Manager, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("backup: cannot create backup root: %w", err)
	}
	absroot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("backup: cannot resolve scan root: %w", err)
	}
	return &Manager{
		dir:   dir,
		root:  absroot,
		stamp: time.Now().Format(StampLayout),
	}, nil
}

// Stamp returns the timestamp directory name of the run.
func (m *Manager) Stamp() string {
	return m.stamp
}

// Backup copies a file into the run's timestamp directory and writes its
// metadata sidecar. Modification time and permissions of the copy match
// the original.
func (m *Manager) Backup(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("backup: cannot resolve %s: %w", path, err)
	}
	rel, err := filepath.Rel(m.root, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		rel = filepath.Base(abs) // outside the scan root, keep the name only
	}
	target := filepath.Join(m.dir, m.stamp, rel)
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("backup: cannot create %s: %w", filepath.Dir(target), err)
	}
	size, err := copyFile(abs, target)
	if err != nil {
		return fmt.Errorf("backup: cannot copy %s: %w", path, err)
	}
	sidecar := meta{
		OriginalPath: abs,
		BackupTime:   m.stamp,
		FileSize:     size,
	}
	data, err := json.MarshalIndent(sidecar, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(target+metaSuffix, data, 0644); err != nil {
		return fmt.Errorf("backup: cannot write sidecar of %s: %w", path, err)
	}
	return nil
}

// List returns the timestamp directories under a backup root, oldest
// first. A missing root yields an empty list.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("backup: cannot read backup root: %w", err)
	}
	var stamps []string
	for _, e := range entries {
		if e.IsDir() {
			stamps = append(stamps, e.Name())
		}
	}
	sort.Strings(stamps)
	return stamps, nil
}

// Restore copies the files of one backup run back to where they came
// from. An empty stamp selects the most recent run. Returns the number
// of files restored.
func Restore(dir, stamp string) (int, error) {
	stamps, err := List(dir)
	if err != nil {
		return 0, err
	}
	if len(stamps) == 0 {
		return 0, fmt.Errorf("backup: no backups found in %s", dir)
	}
	if stamp == "" {
		stamp = stamps[len(stamps)-1]
	} else if !contains(stamps, stamp) {
		return 0, fmt.Errorf("backup: backup %s not found", stamp)
	}
	restored := 0
	rundir := filepath.Join(dir, stamp)
	err = filepath.WalkDir(rundir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, metaSuffix) {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var sidecar meta
		if err := json.Unmarshal(data, &sidecar); err != nil {
			return fmt.Errorf("backup: malformed sidecar %s: %w", filepath.Base(path), err)
		}
		source := strings.TrimSuffix(path, metaSuffix)
		if _, err := os.Stat(source); err != nil {
			return nil // sidecar without payload
		}
		if err := os.MkdirAll(filepath.Dir(sidecar.OriginalPath), 0755); err != nil {
			return err
		}
		if _, err := copyFile(source, sidecar.OriginalPath); err != nil {
			return fmt.Errorf("backup: cannot restore %s: %w", sidecar.OriginalPath, err)
		}
		restored++
		return nil
	})
	return restored, err
}

func contains(list []string, s string) bool {
	for _, l := range list {
		if l == s {
			return true
		}
	}
	return false
}

func copyFile(from, to string) (int64, error) {
	in, err := os.Open(from)
	if err != nil {
		return 0, err
	}
	defer in.Close()
	info, err := in.Stat()
	if err != nil {
		return 0, err
	}
	out, err := os.OpenFile(to, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return 0, err
	}
	n, err := io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, err
	}
	return n, os.Chtimes(to, time.Now(), info.ModTime())
}

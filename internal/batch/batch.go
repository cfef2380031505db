/* Package batch orchestrates folder traversal, per-file processing and
progress reporting.

One file is one unit of work: its backup, its rename and all of its tag
rewrites happen on the same worker goroutine. Files fan out over a
bounded worker pool, statistics flow into a shared collector. A failure
of one file is recorded and never stops the batch.
*/
package batch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/npillmayer/rtlfix/internal/backup"
	"github.com/npillmayer/rtlfix/runs"
	"github.com/npillmayer/rtlfix/stats"
	"github.com/npillmayer/rtlfix/tagio"
	"github.com/npillmayer/rtlfix/tags"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/schollz/progressbar/v3"
)

// T traces to a global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// ErrNoOperation flags a run request without any operation selected.
var ErrNoOperation = errors.New("batch: no operation selected")

// Options select the operations of a batch run.
type Options struct {
	Remove       string // substring to delete from file names
	ReverseNames bool   // fix RTL segments in file names
	ReverseTags  bool   // fix RTL segments in tag values
	DryRun       bool   // report changes without touching any file
	BackupDir    string // when set, back up files before changing them
	Jobs         int    // worker count, minimum 1
	Progress     bool   // render a progress bar on stderr
}

func (opts Options) active() bool {
	return opts.Remove != "" || opts.ReverseNames || opts.ReverseTags
}

type runner struct {
	opts    Options
	stats   *stats.Collector
	backups *backup.Manager
	bar     *progressbar.ProgressBar
}

// Run processes all audio files under a folder according to the
// options. The returned collector holds the counters and errors of the
// run; it is non-nil whenever the setup succeeded, even if every single
// file failed.
func Run(folder string, opts Options) (*stats.Collector, error) {
	info, err := os.Stat(folder)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("batch: folder not found: %s", folder)
	}
	if !opts.active() {
		return nil, ErrNoOperation
	}
	files, err := Discover(folder)
	if err != nil {
		return nil, fmt.Errorf("batch: cannot scan %s: %w", folder, err)
	}
	T().Debugf("discovered %d audio file(s) under %s", len(files), folder)
	r := &runner{opts: opts, stats: stats.NewCollector()}
	if len(files) == 0 {
		return r.stats, nil
	}
	if opts.BackupDir != "" && !opts.DryRun {
		r.backups, err = backup.NewManager(opts.BackupDir, folder)
		if err != nil {
			return r.stats, err
		}
	}
	if opts.Progress {
		r.bar = progressbar.NewOptions(len(files),
			progressbar.OptionSetDescription("Processing files"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionSetPredictTime(false),
		)
	}
	jobs := opts.Jobs
	if jobs < 1 {
		jobs = 1
	}
	if jobs > len(files) {
		jobs = len(files)
	}
	paths := make(chan string, jobs*2) // bounded, gives natural backpressure
	var wg sync.WaitGroup
	wg.Add(jobs)
	for i := 0; i < jobs; i++ {
		go func() {
			defer wg.Done()
			for path := range paths {
				r.processFile(path)
			}
		}()
	}
	for _, path := range files {
		paths <- path
	}
	close(paths)
	wg.Wait()
	if r.bar != nil {
		_ = r.bar.Finish()
		fmt.Fprintln(os.Stderr)
	}
	return r.stats, nil
}

// processFile handles one audio file: backup, then name operations,
// then tag operations. Order matters, the backup must capture the
// untouched file.
func (r *runner) processFile(path string) {
	r.stats.FileProcessed()
	if r.bar != nil {
		r.bar.Describe("Processing: " + filepath.Base(path))
		defer func() { _ = r.bar.Add(1) }()
	}
	if r.backups != nil {
		if err := r.backups.Backup(path); err != nil {
			r.stats.RecordError(filepath.Base(path), err)
			return // leave files alone that could not be backed up
		}
	}
	changed := false
	if r.opts.Remove != "" || r.opts.ReverseNames {
		newpath, renamed := r.fixName(path)
		path = newpath
		changed = changed || renamed
	}
	if r.opts.ReverseTags {
		changed = r.fixTags(path) || changed
	}
	if changed {
		r.stats.FileModified()
	}
}

// fixName applies the name-level operations and renames the file. It
// returns the possibly changed path and whether the name changed, or
// would change under dry-run.
func (r *runner) fixName(path string) (string, bool) {
	name := filepath.Base(path)
	fixed := name
	if r.opts.Remove != "" {
		fixed = strings.ReplaceAll(fixed, r.opts.Remove, "")
	}
	if r.opts.ReverseNames {
		r.stats.CountText(fixed)
		rr := runs.Segment(fixed)
		for _, run := range rr {
			if run.IsRTL() {
				r.stats.ScriptFound("filename", run.Cat)
			}
		}
		fixed = runs.Reverse(rr)
	}
	if fixed == name {
		return path, false
	}
	if fixed == "" {
		r.stats.RecordError(name, errors.New("removal would leave an empty file name"))
		return path, false
	}
	if r.opts.DryRun {
		T().Infof("would rename: %s -> %s", name, fixed)
		return path, true
	}
	target := filepath.Join(filepath.Dir(path), fixed)
	if _, err := os.Stat(target); err == nil {
		r.stats.RecordError(name, fmt.Errorf("rename target %s already exists", fixed))
		return path, false
	}
	if err := os.Rename(path, target); err != nil {
		r.stats.RecordError(name, fmt.Errorf("cannot rename: %w", err))
		return path, false
	}
	T().Infof("renamed: %s -> %s", name, fixed)
	return target, true
}

// fixTags rewrites the RTL segments of all tag values of a file.
// Reports whether anything changed, or would change under dry-run.
func (r *runner) fixTags(path string) bool {
	h, err := tagio.Open(path)
	if err != nil {
		r.stats.RecordError(filepath.Base(path), err)
		return false
	}
	r.observe(h)
	changes, err := tags.Apply(h, h.Format(), runs.SegmentAndReverse)
	if err != nil {
		r.stats.RecordError(filepath.Base(path), err)
		h.Close()
		return false
	}
	if len(changes) == 0 {
		h.Close()
		return false
	}
	for _, ch := range changes {
		r.stats.TagModified(ch.Field.String())
		if r.opts.DryRun {
			T().Infof("would update %s", ch)
		} else {
			T().Infof("updated %s", ch)
		}
	}
	if r.opts.DryRun {
		h.Close()
		return true
	}
	if err := h.Save(); err != nil {
		r.stats.RecordError(filepath.Base(path), err)
		return false
	}
	return true
}

// observe feeds the statistics collector before any rewrite: character
// distribution and per-field script occurrences of all tag values.
func (r *runner) observe(h tagio.Handle) {
	err := tags.Walk(h, h.Format(), func(fld tags.Field, key string, values []string) {
		for _, v := range values {
			r.stats.CountText(v)
			for _, run := range runs.Segment(v) {
				if run.IsRTL() {
					r.stats.ScriptFound(fld.String(), run.Cat)
				}
			}
		}
	})
	if err != nil {
		r.stats.RecordError("tag scan", err)
	}
}

/*
Package stats collects processing statistics and renders reports.

The collector mirrors what the batch driver does: files walked, files
changed, which tag fields were rewritten, which scripts occurred where,
and a per-script character tally for the distribution chart. Collectors
are safe for concurrent use; the batch driver feeds one collector from
all of its workers.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package stats

import (
	"fmt"
	"sync"

	"github.com/npillmayer/rtlfix/runs"
	"github.com/npillmayer/rtlfix/script"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// A Collector accumulates statistics over a processing batch. The zero
// value is not ready for use; create collectors with NewCollector.
type Collector struct {
	mu             sync.Mutex
	filesProcessed int
	filesModified  int
	tagsModified   map[string]int                     // rewrites per field name
	scriptsFound   map[script.Category]int            // right-to-left runs per script
	scriptByField  map[string]map[script.Category]int // the same, split by field
	chars          map[script.Category]int            // character tally per script
	nonRTL         int                                // character tally, neutral rest
	unlisted       int                                // right-to-left characters outside the supported scripts
	errors         []string
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{
		tagsModified:  make(map[string]int),
		scriptsFound:  make(map[script.Category]int),
		scriptByField: make(map[string]map[script.Category]int),
		chars:         make(map[script.Category]int),
	}
}

// FileProcessed counts a file the batch driver has looked at.
func (st *Collector) FileProcessed() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.filesProcessed++
}

// FileModified counts a file with at least one change, planned or
// written.
func (st *Collector) FileModified() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.filesModified++
}

// TagModified counts a rewritten tag field.
func (st *Collector) TagModified(field string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.tagsModified[field]++
}

// ScriptFound counts one right-to-left run of category cat, found in
// the named field. Use a pseudo field name like "filename" for text
// outside of tags.
func (st *Collector) ScriptFound(field string, cat script.Category) {
	if !cat.IsRTL() {
		return
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	st.scriptsFound[cat]++
	perField := st.scriptByField[field]
	if perField == nil {
		perField = make(map[script.Category]int)
		st.scriptByField[field] = perField
	}
	perField[cat]++
}

// CountText tallies the characters of text by script category. Neutral
// characters count into the Non-RTL bucket. Right-to-left characters
// outside the supported scripts additionally count into a diagnostic
// tally which the report prints when it is non-zero.
func (st *Collector) CountText(text string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	for _, r := range text {
		cat := script.ClassForRune(r)
		if cat == script.Neutral {
			st.nonRTL++
			if script.UnlistedRTL(r) {
				st.unlisted++
			}
			continue
		}
		st.chars[cat]++
	}
}

// Merge folds the character counts of processing results into the
// tally, as an alternative to CountText when results are already at
// hand. Results carry category counts only, so the diagnostic tally of
// unlisted right-to-left characters stays untouched.
func (st *Collector) Merge(results ...runs.Result) {
	st.mu.Lock()
	defer st.mu.Unlock()
	for _, res := range results {
		for cat, n := range res.Counts {
			if cat == script.Neutral {
				st.nonRTL += n
				continue
			}
			st.chars[cat] += n
		}
	}
}

// RecordError records a per-file failure. The batch driver continues
// after failures; the report lists them at the end.
func (st *Collector) RecordError(context string, err error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.errors = append(st.errors, fmt.Sprintf("%s: %v", context, err))
	tracer().Errorf("%s: %v", context, err)
}

// FilesProcessed returns the number of files counted so far.
func (st *Collector) FilesProcessed() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.filesProcessed
}

// FilesModified returns the number of modified files counted so far.
func (st *Collector) FilesModified() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.filesModified
}

// ErrorCount returns the number of recorded failures.
func (st *Collector) ErrorCount() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.errors)
}

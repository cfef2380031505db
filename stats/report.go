package stats

import (
	"sort"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const maxBarLength = 40

// Report renders the collected statistics as a multi-line text block:
// file counts, rewritten fields, scripts found, the character
// distribution chart, and the recorded failures.
func (st *Collector) Report() string {
	st.mu.Lock()
	defer st.mu.Unlock()
	var sb strings.Builder
	sb.WriteString("=== Processing Report ===\n")
	p := message.NewPrinter(language.English)
	p.Fprintf(&sb, "Files processed: %d\n", st.filesProcessed)
	p.Fprintf(&sb, "Files modified: %d\n", st.filesModified)
	if len(st.tagsModified) > 0 {
		sb.WriteString("\nModified Tags Count:\n")
		m := treemap.NewWithStringComparator()
		for field, count := range st.tagsModified {
			m.Put(field, count)
		}
		for _, key := range m.Keys() {
			count, _ := m.Get(key)
			p.Fprintf(&sb, "  %s: %d\n", key, count)
		}
	}
	if len(st.scriptsFound) > 0 {
		sb.WriteString("\nRTL Scripts Found:\n")
		m := treemap.NewWithStringComparator()
		for cat, count := range st.scriptsFound {
			m.Put(cat.String(), count)
		}
		for _, key := range m.Keys() {
			count, _ := m.Get(key)
			p.Fprintf(&sb, "  %s: %d occurrences\n", key, count)
		}
		sb.WriteString("\nScripts by Field:\n")
		fields := treemap.NewWithStringComparator()
		for field, perField := range st.scriptByField {
			inner := treemap.NewWithStringComparator()
			for cat, count := range perField {
				inner.Put(cat.String(), count)
			}
			fields.Put(field, inner)
		}
		for _, field := range fields.Keys() {
			inner, _ := fields.Get(field)
			p.Fprintf(&sb, "\n  %s:\n", field)
			m := inner.(*treemap.Map)
			for _, key := range m.Keys() {
				count, _ := m.Get(key)
				p.Fprintf(&sb, "    %s: %d\n", key, count)
			}
		}
	}
	if st.unlisted > 0 {
		p.Fprintf(&sb, "\nUnsupported RTL code-points: %d\n", st.unlisted)
	}
	sb.WriteString("\n")
	sb.WriteString(st.distribution())
	if len(st.errors) > 0 {
		sb.WriteString("\n\nErrors Encountered:\n")
		for _, e := range st.errors {
			sb.WriteString("  - ")
			sb.WriteString(e)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// Distribution renders a text chart of the character tally, one bar per
// script, ordered by count with the Non-RTL bucket last.
func (st *Collector) Distribution() string {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.distribution()
}

func (st *Collector) distribution() string {
	total := st.nonRTL
	for _, count := range st.chars {
		total += count
	}
	if total == 0 {
		return "No text analysis available."
	}
	type entry struct {
		name  string
		count int
	}
	entries := make([]entry, 0, len(st.chars)+1)
	for cat, count := range st.chars {
		if count > 0 {
			entries = append(entries, entry{cat.String(), count})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].name < entries[j].name
	})
	if st.nonRTL > 0 {
		entries = append(entries, entry{"Non-RTL", st.nonRTL})
	}
	var sb strings.Builder
	sb.WriteString("Character Distribution (by script):\n")
	sb.WriteString(strings.Repeat("-", 60))
	p := message.NewPrinter(language.English)
	for _, e := range entries {
		percentage := float64(e.count) / float64(total) * 100
		bar := strings.Repeat("█", e.count*maxBarLength/total)
		p.Fprintf(&sb, "\n%-15s %s %5.1f%% (%d chars)", e.name, bar, percentage, e.count)
	}
	return sb.String()
}

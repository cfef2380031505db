package runs

import (
	"strings"

	"github.com/npillmayer/rtlfix"
)

// Reverse assembles the output string for a run list. Right-to-left runs
// emit their character units in reverse order, neutral runs pass through
// unchanged, and the runs themselves keep their order. A unit is a whole
// code-point or a single ill-formed byte, thus reversal never breaks up
// or repairs byte sequences.
func Reverse(rr []Run) string {
	if len(rr) == 0 {
		return ""
	}
	var sb strings.Builder
	size := 0
	for _, run := range rr {
		size += len(run.Text)
	}
	sb.Grow(size)
	ub := rtlfix.BorrowUnitBuffer()
	defer ub.Release()
	for _, run := range rr {
		if !run.IsRTL() {
			sb.WriteString(run.Text)
			continue
		}
		ub.Split(run.Text)
		for i := ub.Units() - 1; i >= 0; i-- {
			start, end := ub.Unit(i)
			sb.WriteString(run.Text[start:end])
		}
	}
	return sb.String()
}

// SegmentAndReverse is the whole pipeline for a single string: segment
// into script runs, reverse the right-to-left ones, re-assemble.
// Strings without right-to-left content come back unchanged.
func SegmentAndReverse(text string) string {
	return Reverse(Segment(text))
}

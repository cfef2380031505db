package runs

import (
	"github.com/npillmayer/rtlfix/script"
)

// A Result describes the processing of a single string: the input, the
// output, whether anything changed, and how many code-points of each
// script category the input contained. Processing of valid input cannot
// fail, so a Result carries no error.
type Result struct {
	Original    string                  // the input string
	Transformed string                  // the output string
	Counts      map[script.Category]int // code-points seen, per category
	Changed     bool                    // is Transformed different from Original?
}

// Process runs a single string through the pipeline and reports the
// outcome. Counts are tallied per code-point, not per run: a neutral
// character inside a right-to-left run still counts as Neutral.
func Process(text string) Result {
	res := Result{
		Original: text,
		Counts:   make(map[script.Category]int),
	}
	for _, r := range text {
		res.Counts[script.ClassForRune(r)]++
	}
	res.Transformed = Reverse(Segment(text))
	res.Changed = res.Transformed != res.Original
	return res
}

// HasRTL reports whether the input contained at least one code-point of
// a right-to-left script.
func (res Result) HasRTL() bool {
	for cat, n := range res.Counts {
		if cat.IsRTL() && n > 0 {
			return true
		}
	}
	return false
}

// RuneCount returns the total number of code-points counted.
func (res Result) RuneCount() int {
	total := 0
	for _, n := range res.Counts {
		total += n
	}
	return total
}

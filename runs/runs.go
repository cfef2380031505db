/*
Package runs segments text into script runs and reverses the
right-to-left ones.

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.


Typical Usage

Segment partitions a string into runs of uniform script. Reverse takes
the run list and produces the output string, with every right-to-left
run reversed character by character and every neutral run left alone.
SegmentAndReverse combines both steps:

  fixed := runs.SegmentAndReverse("שלום world")
  // fixed is now "םולש world"

How it works

The segmenter walks the code-points from left to right and keeps one run
open at a time. A neutral stretch following a right-to-left run is not
committed immediately: when the next strong code-point continues the
same script, the stretch is absorbed into the open run; when it switches
to a different right-to-left script, the stretch still joins the
preceding run, and a new run opens after it; at the end of the input the
stretch becomes a trailing neutral run of its own. Two adjacent runs of
different right-to-left scripts are never merged.

Reversal is not idempotent with respect to segmentation: reversing moves
absorbed neutral stretches to the other end of their run, so segmenting
the output again may find different run boundaries. Reversing twice over
one and the same run list restores the input. */
package runs

import (
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/rtlfix/script"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// A Run is a maximal stretch of text attributed to a single script
// category. Start and End are byte offsets into the segmented string,
// End is exclusive. Text is the original byte span, ill-formed bytes
// included.
//
// The runs of a string form an exact partition: they are non-empty, in
// order, and concatenating their Text fields reconstructs the string
// byte for byte.
type Run struct {
	Cat   script.Category // script category of this run
	Start int             // byte position of the first unit
	End   int             // byte position after the last unit
	Text  string          // the original byte span
}

// IsRTL reports whether the run is a right-to-left run.
func (run Run) IsRTL() bool {
	return run.Cat.IsRTL()
}

// Simple stringer for debugging purposes.
func (run Run) String() string {
	return fmt.Sprintf("[%d-%s-%d]", run.Start, run.Cat, run.End)
}

// Segment partitions text into script runs. Empty input yields nil.
//
// Ill-formed UTF-8 bytes classify as Neutral and stay in place, so
// segmenting never loses or repairs bytes.
func Segment(text string) []Run {
	if len(text) == 0 {
		return nil
	}
	var out []Run
	cur := script.Neutral // category of the open run
	curStart := 0         // byte position where the open run began
	open := false         // is a run open at all?
	pend := -1            // byte position of a pending neutral stretch, -1 if none
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		cat := script.ClassForRune(r)
		switch {
		case !open:
			cur, curStart, open = cat, i, true
		case cat == script.Neutral:
			if cur != script.Neutral && pend < 0 {
				pend = i // hold the stretch until we know who gets it
			}
		case cur == script.Neutral:
			out = append(out, makeRun(text, script.Neutral, curStart, i))
			cur, curStart = cat, i
		case cat != cur:
			// pending neutrals, if any, stay with the run we close here
			out = append(out, makeRun(text, cur, curStart, i))
			cur, curStart, pend = cat, i, -1
		default: // cat == cur
			pend = -1 // same script resumed, absorb the stretch
		}
		i += size
	}
	if open {
		if cur != script.Neutral && pend >= 0 {
			// a trailing neutral stretch becomes a run of its own
			out = append(out, makeRun(text, cur, curStart, pend))
			out = append(out, makeRun(text, script.Neutral, pend, len(text)))
		} else {
			out = append(out, makeRun(text, cur, curStart, len(text)))
		}
	}
	T().Debugf("segmented %d bytes into %d runs", len(text), len(out))
	return out
}

func makeRun(text string, cat script.Category, start int, end int) Run {
	return Run{Cat: cat, Start: start, End: end, Text: text[start:end]}
}

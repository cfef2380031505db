package runs

import (
	"fmt"
	"testing"

	"github.com/npillmayer/rtlfix/script"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSegmentEmpty(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rr := Segment("")
	if len(rr) != 0 {
		t.Errorf("expected no runs for empty input, have %d", len(rr))
	}
}

func TestSegmentPartition(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	inputs := []string{
		"שלום world",
		"track01 - مرحبا",
		"שלוםمرحبا",
		"אבג مرحبا",
		"hello 123",
		"a\xffb\xfe",
		"ש",
	}
	for _, input := range inputs {
		rr := Segment(input)
		recon := ""
		pos := 0
		for i, run := range rr {
			if run.Start != pos {
				t.Errorf("run %d of %q starts at %d, expected %d", i, input, run.Start, pos)
			}
			if run.End <= run.Start {
				t.Errorf("run %d of %q is empty: %v", i, input, run)
			}
			if run.Text != input[run.Start:run.End] {
				t.Errorf("run %d of %q does not match its span", i, input)
			}
			recon += run.Text
			pos = run.End
		}
		if recon != input {
			t.Errorf("expected runs of %q to re-assemble the input, have %q", input, recon)
		}
	}
}

func TestSegmentTrailingNeutral(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rr := Segment("שלום world")
	if len(rr) != 2 {
		t.Fatalf("expected 2 runs, have %d: %v", len(rr), rr)
	}
	if rr[0].Cat != script.Hebrew || rr[0].Text != "שלום" {
		t.Errorf("expected leading Hebrew run 'שלום', is %v %q", rr[0], rr[0].Text)
	}
	if rr[1].Cat != script.Neutral || rr[1].Text != " world" {
		t.Errorf("expected trailing Neutral run ' world', is %v %q", rr[1], rr[1].Text)
	}
}

func TestSegmentLeadingNeutral(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rr := Segment("track01 - مرحبا")
	if len(rr) != 2 {
		t.Fatalf("expected 2 runs, have %d: %v", len(rr), rr)
	}
	if rr[0].Cat != script.Neutral || rr[0].Text != "track01 - " {
		t.Errorf("expected leading Neutral run 'track01 - ', is %v %q", rr[0], rr[0].Text)
	}
	if rr[1].Cat != script.Arabic || rr[1].Text != "مرحبا" {
		t.Errorf("expected trailing Arabic run, is %v %q", rr[1], rr[1].Text)
	}
}

func TestSegmentAdjacentScripts(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rr := Segment("שלוםمرحبا")
	if len(rr) != 2 {
		t.Fatalf("expected 2 runs for adjacent scripts, have %d: %v", len(rr), rr)
	}
	if rr[0].Cat != script.Hebrew || rr[1].Cat != script.Arabic {
		t.Errorf("expected a Hebrew and an Arabic run, have %v and %v", rr[0], rr[1])
	}
}

// A neutral stretch sandwiched between two different right-to-left
// scripts joins the preceding run.
func TestSegmentSandwich(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rr := Segment("אבג مرحبا")
	if len(rr) != 2 {
		t.Fatalf("expected 2 runs, have %d: %v", len(rr), rr)
	}
	if rr[0].Cat != script.Hebrew || rr[0].Text != "אבג " {
		t.Errorf("expected space to join the Hebrew run, is %v %q", rr[0], rr[0].Text)
	}
	if rr[1].Cat != script.Arabic || rr[1].Text != "مرحبا" {
		t.Errorf("expected Arabic run after the sandwich, is %v %q", rr[1], rr[1].Text)
	}
}

// A neutral stretch with the same script on both sides is absorbed into
// a single run.
func TestSegmentInteriorNeutral(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rr := Segment("אב גד")
	if len(rr) != 1 {
		t.Fatalf("expected a single run, have %d: %v", len(rr), rr)
	}
	if rr[0].Cat != script.Hebrew || rr[0].Text != "אב גד" {
		t.Errorf("expected one Hebrew run covering everything, is %v %q", rr[0], rr[0].Text)
	}
}

func TestReverseHebrew(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	fixed := SegmentAndReverse("שלום world")
	if fixed != "םולש world" {
		t.Errorf("expected 'םולש world', have %q", fixed)
	}
}

func TestReverseArabic(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	fixed := SegmentAndReverse("track01 - مرحبا")
	if fixed != "track01 - ابحرم" {
		t.Errorf("expected 'track01 - ابحرم', have %q", fixed)
	}
}

// Adjacent runs of different scripts reverse independently and never
// blend.
func TestReverseAdjacentScripts(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	fixed := SegmentAndReverse("שלוםمرحبا")
	if fixed != "םולש"+"ابحرم" {
		t.Errorf("expected runs to reverse independently, have %q", fixed)
	}
}

func TestReverseNeutralPassThrough(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	inputs := []string{"", "hello 123", "track 01 (remix)", "a\xffb"}
	for _, input := range inputs {
		if fixed := SegmentAndReverse(input); fixed != input {
			t.Errorf("expected %q to pass through unchanged, have %q", input, fixed)
		}
	}
}

// Reversal is an involution over a fixed run list: applying it twice
// with the boundaries of the original segmentation restores the input,
// even where re-segmenting the output would move boundaries.
func TestReverseInvolution(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	inputs := []string{
		"שלום world",
		"אבג مرحبا",
		"שא\xffבש",
	}
	for _, input := range inputs {
		rr := Segment(input)
		out := Reverse(rr)
		back := make([]Run, len(rr))
		for i, run := range rr {
			back[i] = Run{Cat: run.Cat, Start: run.Start, End: run.End,
				Text: out[run.Start:run.End]}
		}
		if restored := Reverse(back); restored != input {
			t.Errorf("expected reversal over original boundaries to restore %q, have %q",
				input, restored)
		}
	}
}

// Digits and Latin letters inside a right-to-left phrase travel with the
// enclosing run and get reversed with it. Only standalone neutral runs
// are guaranteed to pass through unchanged.
func TestReverseInteriorDigits(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	fixed := SegmentAndReverse("אלבום 123 שיר")
	if fixed != "ריש 321 םובלא" {
		t.Errorf("expected interior digits to reverse with the run, have %q", fixed)
	}
}

func TestDoubleReversal(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	inputs := []string{
		"שלום",
		"שלום world",
		"track01 - مرحبا",
		"אב גד",
		"שא\xffבש",
	}
	for _, input := range inputs {
		twice := SegmentAndReverse(SegmentAndReverse(input))
		if twice != input {
			t.Errorf("expected double reversal of %q to restore it, have %q", input, twice)
		}
	}
}

// Reversing moves an absorbed neutral stretch to the other end of its
// run. Segmenting the output again then finds different run boundaries,
// so reversal is not idempotent with respect to segmentation.
func TestDoubleReversalMovesBoundaries(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	once := SegmentAndReverse("אבג مرحبا")
	if once != " גבא"+"ابحرم" {
		t.Errorf("expected the joined space to move to the front, have %q", once)
	}
	twice := SegmentAndReverse(once)
	if twice != " אבג"+"مرحبا" {
		t.Errorf("expected twice-reversed sandwich to be ' אבגمرحبا', have %q", twice)
	}
}

func TestReverseIllFormed(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	input := "שא\xffבש" // stray byte inside a Hebrew run
	fixed := SegmentAndReverse(input)
	if len(fixed) != len(input) {
		t.Fatalf("expected reversal to keep all %d bytes, have %d", len(input), len(fixed))
	}
	if fixed != "שב\xffאש" {
		t.Errorf("expected stray byte to travel as a unit, have %q", fixed)
	}
}

func TestProcess(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	res := Process("שלום world")
	if !res.Changed {
		t.Errorf("expected result to be flagged as changed")
	}
	if !res.HasRTL() {
		t.Errorf("expected result to report right-to-left content")
	}
	if res.Counts[script.Hebrew] != 4 {
		t.Errorf("expected 4 Hebrew code-points, have %d", res.Counts[script.Hebrew])
	}
	if res.Counts[script.Neutral] != 6 {
		t.Errorf("expected 6 Neutral code-points, have %d", res.Counts[script.Neutral])
	}
	if res.RuneCount() != 10 {
		t.Errorf("expected 10 code-points in total, have %d", res.RuneCount())
	}
	res = Process("hello")
	if res.Changed || res.HasRTL() {
		t.Errorf("expected plain ASCII to be unchanged, have %+v", res)
	}
}

func ExampleSegmentAndReverse() {
	fmt.Println(SegmentAndReverse("track01 - مرحبا"))
	// Output: track01 - ابحرم
}

package script

import (
	"strconv"
	"sync"
	"unicode"

	"golang.org/x/text/unicode/bidi"
	"golang.org/x/text/unicode/rangetable"
)

// Category is the script category of a code-point. The zero value is
// Neutral.
type Category int8

// Script categories. Neutral is every code-point not covered by one of
// the right-to-left scripts.
const (
	Neutral Category = iota
	Hebrew
	Arabic
	Syriac
	Thaana
	NKo
	Mandaic
	Samaritan
	ImperialAramaic
	Phoenician
	Nabataean
	Lydian
	Meroitic
)

const catname = "NeutralHebrewArabicSyriacThaanaNKoMandaicSamaritanImperial AramaicPhoenicianNabataeanLydianMeroitic"

var catindex = [...]uint8{0, 7, 13, 19, 25, 31, 34, 41, 50, 66, 76, 85, 91, 99}

// String returns the script name of a category.
func (c Category) String() string {
	if c < 0 || c >= Category(len(catindex)-1) {
		return "Category(" + strconv.FormatInt(int64(c), 10) + ")"
	}
	return catname[catindex[c]:catindex[c+1]]
}

// IsRTL reports whether the category is one of the right-to-left scripts,
// i.e. not Neutral.
func (c Category) IsRTL() bool {
	return c > Neutral && c <= Meroitic
}

// ClassForRune gets the script category for a Unicode code-point.
//
// The lookup consults the static block ranges of the supported scripts.
// All code points, assigned or unassigned, that are not listed in one of
// the tables are given the value Neutral. This includes the replacement
// character U+FFFD, so ill-formed input degrades to Neutral instead of
// producing an error.
func ClassForRune(r rune) Category {
	for cat, table := range RangeTables {
		if table != nil && unicode.Is(table, r) {
			return Category(cat)
		}
	}
	return Neutral
}

// anyRTL is the union of all script tables, built on demand.
var anyRTL *unicode.RangeTable

var setupOnce sync.Once

// SetupClasses initializes the merged range table used by IsRTL. The
// per-script tables are static and need no initialization. Clients
// normally do not call this, as IsRTL will do it on first use.
func SetupClasses() {
	setupOnce.Do(setupClasses)
}

func setupClasses() {
	tables := make([]*unicode.RangeTable, 0, len(RangeTables)-1)
	for _, table := range RangeTables {
		if table != nil {
			tables = append(tables, table)
		}
	}
	anyRTL = rangetable.Merge(tables...)
	T().Infof("merged %d script range tables", len(tables))
}

// IsRTL reports whether r belongs to one of the supported right-to-left
// scripts.
func IsRTL(r rune) bool {
	SetupClasses()
	return unicode.Is(anyRTL, r)
}

// UnlistedRTL reports whether r is a right-to-left code-point outside of
// the supported script blocks, e.g. from Adlam or Hanifi Rohingya. The
// pipeline treats such code-points as Neutral and leaves them alone;
// callers may tally them for reporting. Classification itself never
// consults this.
func UnlistedRTL(r rune) bool {
	if IsRTL(r) {
		return false
	}
	props, _ := bidi.LookupRune(r)
	switch props.Class() {
	case bidi.R, bidi.AL:
		return true
	}
	return false
}

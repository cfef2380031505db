package tags

import (
	"errors"
	"testing"

	"github.com/npillmayer/rtlfix/runs"
	"github.com/npillmayer/schuko/testconfig"
)

func TestResolveTitle(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	keys := map[Format]string{
		MP3:  "TIT2",
		FLAC: "TITLE",
		OGG:  "TITLE",
		M4A:  "©nam",
		WMA:  "Title",
	}
	for f, expected := range keys {
		key, ok, err := Resolve(f, Title)
		if err != nil {
			t.Errorf("resolving Title against %s failed: %v", f, err)
		}
		if !ok || key != expected {
			t.Errorf("expected Title key of %s to be %q, is %q", f, expected, key)
		}
	}
}

func TestResolveAbsent(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	absent := []struct {
		f   Format
		fld Field
	}{
		{MP3, Description},
		{M4A, Lyricist},
		{M4A, SyncedLyrics},
		{WMA, Author},
		{WMA, Description},
	}
	for _, a := range absent {
		key, ok, err := Resolve(a.f, a.fld)
		if err != nil {
			t.Errorf("expected %s/%s to be absent without error, have %v", a.f, a.fld, err)
		}
		if ok {
			t.Errorf("expected %s to be absent in %s, resolved to %q", a.fld, a.f, key)
		}
	}
}

func TestResolveUnsupported(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	_, _, err := Resolve(Format(7), Title)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat for format 7, have %v", err)
	}
}

// Every native key of a format must name exactly one logical field.
func TestKeyInversion(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	for f := MP3; f <= WMA; f++ {
		seen := map[string]Field{}
		for fld := Title; fld < numFields; fld++ {
			key, ok, err := Resolve(f, fld)
			if err != nil || !ok {
				continue
			}
			if other, dup := seen[key]; dup {
				t.Errorf("key %q of %s names both %s and %s", key, f, other, fld)
			}
			seen[key] = fld
			back, ok := FieldForKey(f, key)
			if !ok || back != fld {
				t.Errorf("expected key %q of %s to resolve back to %s, is %s", key, f, fld, back)
			}
		}
	}
	if fld, ok := FieldForKey(FLAC, "UNSYNCEDLYRICS"); !ok || fld != Lyrics {
		t.Errorf("expected UNSYNCEDLYRICS alias to name Lyrics, is %s", fld)
	}
	if _, ok := FieldForKey(MP3, "TXXX"); ok {
		t.Errorf("expected unknown frame TXXX not to resolve")
	}
}

func TestFieldNames(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	if AlbumArtist.String() != "Album Artist" {
		t.Errorf("expected name of AlbumArtist to be 'Album Artist', is '%s'", AlbumArtist)
	}
	if SyncedLyrics.String() != "Synced Lyrics" {
		t.Errorf("expected name of SyncedLyrics to be 'Synced Lyrics', is '%s'", SyncedLyrics)
	}
	if WMA.String() != "WMA" {
		t.Errorf("expected name of WMA to be 'WMA', is '%s'", WMA)
	}
	if Format(9).String() != "Format(9)" {
		t.Errorf("expected fallback name for illegal format, is '%s'", Format(9))
	}
}

// --- ad hoc container for testing purposes -----------------------------

type fakeContainer struct {
	fields map[string][]string
	sets   int
}

func (fc *fakeContainer) Get(key string) []string {
	return fc.fields[key]
}

func (fc *fakeContainer) Set(key string, values []string) error {
	fc.fields[key] = values
	fc.sets++
	return nil
}

type failingContainer struct {
	fakeContainer
}

func (fc *failingContainer) Set(key string, values []string) error {
	return errors.New("write refused")
}

// -----------------------------------------------------------------------

func TestApply(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	fc := &fakeContainer{fields: map[string][]string{
		"TIT2": {"שלום world"},
		"TPE1": {"hello"},
	}}
	changes, err := Apply(fc, MP3, runs.SegmentAndReverse)
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if len(changes) != 1 {
		t.Fatalf("expected 1 change, have %d: %v", len(changes), changes)
	}
	ch := changes[0]
	if ch.Field != Title || ch.Key != "TIT2" || ch.New != "םולש world" {
		t.Errorf("unexpected change record: %v", ch)
	}
	if fc.fields["TIT2"][0] != "םולש world" {
		t.Errorf("expected title to be rewritten, is %q", fc.fields["TIT2"][0])
	}
	if fc.sets != 1 {
		t.Errorf("expected exactly 1 write, unchanged fields must not be written; have %d", fc.sets)
	}
}

func TestApplyMultiValue(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	fc := &fakeContainer{fields: map[string][]string{
		"LYRICS": {"שיר", "plain"},
	}}
	changes, err := Apply(fc, FLAC, runs.SegmentAndReverse)
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if len(changes) != 1 {
		t.Fatalf("expected 1 change, have %d", len(changes))
	}
	if changes[0].Index != 0 {
		t.Errorf("expected change at value position 0, is %d", changes[0].Index)
	}
	got := fc.fields["LYRICS"]
	if len(got) != 2 || got[0] != "ריש" || got[1] != "plain" {
		t.Errorf("expected values to keep their order, have %v", got)
	}
}

func TestApplyAlias(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	fc := &fakeContainer{fields: map[string][]string{
		"UNSYNCEDLYRICS": {"שורה"},
	}}
	changes, err := Apply(fc, FLAC, runs.SegmentAndReverse)
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if len(changes) != 1 || changes[0].Field != Lyrics || changes[0].Key != "UNSYNCEDLYRICS" {
		t.Fatalf("expected the alias key to be processed as Lyrics, have %v", changes)
	}
	if got := fc.fields["UNSYNCEDLYRICS"]; len(got) != 1 || got[0] != "הרוש" {
		t.Errorf("expected the value to stay under its alias key, have %v", got)
	}
	if len(fc.fields["LYRICS"]) != 0 {
		t.Errorf("expected no value under the primary key, have %v", fc.fields["LYRICS"])
	}
}

func TestWalk(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	fc := &fakeContainer{fields: map[string][]string{
		"TIT2": {"a"},
		"TALB": {"b"},
		"TXXX": {"ignored"},
	}}
	var visited []Field
	err := Walk(fc, MP3, func(fld Field, key string, values []string) {
		visited = append(visited, fld)
	})
	if err != nil {
		t.Fatalf("walk failed: %v", err)
	}
	if len(visited) != 2 || visited[0] != Title || visited[1] != Album {
		t.Errorf("expected walk to visit Title and Album in order, have %v", visited)
	}
	if fc.sets != 0 {
		t.Errorf("expected walk not to write, have %d writes", fc.sets)
	}
}

func TestApplyUnsupported(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	fc := &fakeContainer{fields: map[string][]string{}}
	_, err := Apply(fc, Format(9), runs.SegmentAndReverse)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, have %v", err)
	}
}

func TestApplySetError(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	fc := &failingContainer{fakeContainer{fields: map[string][]string{
		"TIT2": {"שלום"},
	}}}
	changes, err := Apply(fc, MP3, runs.SegmentAndReverse)
	if err == nil {
		t.Fatalf("expected write refusal to surface")
	}
	if len(changes) != 1 {
		t.Errorf("expected the change collected before the failure, have %d", len(changes))
	}
}

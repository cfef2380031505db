package tags

import (
	"errors"
	"sync"
)

// ErrUnsupportedFormat flags a resolution request for a container format
// outside of the five supported ones. It is surfaced to the caller and
// not retried.
var ErrUnsupportedFormat = errors.New("tag mapper: unsupported container format")

// vorbisKeys is shared by FLAC and OGG. Vorbis comments are free-form,
// so every logical field has a key.
var vorbisKeys = [numFields]string{
	Title:        "TITLE",
	Artist:       "ARTIST",
	Album:        "ALBUM",
	AlbumArtist:  "ALBUMARTIST",
	Composer:     "COMPOSER",
	Genre:        "GENRE",
	Copyright:    "COPYRIGHT",
	Publisher:    "PUBLISHER",
	Lyricist:     "LYRICIST",
	Conductor:    "CONDUCTOR",
	Remixer:      "REMIXER",
	Author:       "AUTHOR",
	ISRC:         "ISRC",
	Language:     "LANGUAGE",
	DiscSubtitle: "DISCSUBTITLE",
	Mood:         "MOOD",
	Version:      "VERSION",
	Comment:      "COMMENT",
	Description:  "DESCRIPTION",
	Lyrics:       "LYRICS",
	SyncedLyrics: "SYNCEDLYRICS",
}

// keyFromField maps a logical field onto the native key of every format.
// An empty entry means the field is absent in that format.
var keyFromField = [numFormats][numFields]string{
	MP3: { // ID3v2.4 frame identifiers
		Title:        "TIT2",
		Artist:       "TPE1",
		Album:        "TALB",
		AlbumArtist:  "TPE2",
		Composer:     "TCOM",
		Genre:        "TCON",
		Copyright:    "TCOP",
		Publisher:    "TPUB",
		Lyricist:     "TEXT",
		Conductor:    "TPE3",
		Remixer:      "TPE4",
		Author:       "TOLY",
		ISRC:         "TSRC",
		Language:     "TLAN",
		DiscSubtitle: "TSST",
		Mood:         "TMOO",
		Version:      "TIT3",
		Comment:      "COMM",
		Lyrics:       "USLT",
		SyncedLyrics: "SYLT",
		// Description has no own frame; TIT3 is taken by Version
	},
	FLAC: vorbisKeys,
	OGG:  vorbisKeys,
	M4A: { // Apple atom names
		Title:        "©nam",
		Artist:       "©ART",
		Album:        "©alb",
		AlbumArtist:  "aART",
		Composer:     "©wrt",
		Genre:        "©gen",
		Copyright:    "©cpy",
		Publisher:    "©pub",
		Conductor:    "©con",
		Remixer:      "remix",
		Author:       "©aut",
		ISRC:         "xid",
		Language:     "©lnd",
		DiscSubtitle: "subt",
		Mood:         "mood",
		Version:      "vers",
		Comment:      "©cmt",
		Description:  "desc",
		Lyrics:       "©lyr",
		// Lyricist would collide with the ©lyr lyrics atom, synced
		// lyrics have no atom at all
	},
	WMA: { // ASF attribute names
		Title:        "Title",
		Artist:       "Author",
		Album:        "WM/AlbumTitle",
		AlbumArtist:  "WM/AlbumArtist",
		Composer:     "WM/Composer",
		Genre:        "WM/Genre",
		Copyright:    "Copyright",
		Publisher:    "WM/Publisher",
		Lyricist:     "WM/Writer",
		Conductor:    "WM/Conductor",
		Remixer:      "WM/ModifiedBy",
		ISRC:         "WM/ISRC",
		Language:     "WM/Language",
		DiscSubtitle: "WM/SetSubTitle",
		Mood:         "WM/Mood",
		Version:      "WM/SubTitle",
		Comment:      "Description",
		Lyrics:       "WM/Lyrics",
		SyncedLyrics: "WM/Lyrics_Synchronised",
		// the ASF Author attribute names the performer, so the logical
		// Author field is absent; Description is taken by Comment
	},
}

// Alternative keys some taggers write. They resolve to a logical field
// like the primary keys do. Resolve always yields the primary key, but
// Apply and Walk visit alias keys as well and write values back under
// the spelling they were found under.
var vorbisAliases = map[string]Field{
	"UNSYNCEDLYRICS": Lyrics,
	"SUBTITLE":       Version,
}

// keysForField lists every native key a format may store a logical
// field under, primary key first. Iteration over the alias map is fine
// here since no field has more than one alias.
func keysForField(f Format, fld Field) (keys []string, err error) {
	key, ok, err := Resolve(f, fld)
	if err != nil {
		return nil, err
	}
	if ok {
		keys = append(keys, key)
	}
	if f == FLAC || f == OGG {
		for alias, afld := range vorbisAliases {
			if afld == fld {
				keys = append(keys, alias)
			}
		}
	}
	return keys, nil
}

// Resolve translates a logical field into the native key of a container
// format. ok is false when the format has no key for the field; callers
// treat that as a no-op, not as an error. Resolution against an
// unsupported format returns ErrUnsupportedFormat.
func Resolve(f Format, fld Field) (key string, ok bool, err error) {
	if !f.Supported() {
		return "", false, ErrUnsupportedFormat
	}
	if fld < Title || fld >= numFields {
		return "", false, nil
	}
	key = keyFromField[f][fld]
	return key, key != "", nil
}

// fieldFromKey inverts keyFromField, including the alias keys.
var fieldFromKey [numFormats]map[string]Field

var setupOnce sync.Once

func setupReverseMapping() {
	for f := MP3; f <= WMA; f++ {
		m := make(map[string]Field, numFields)
		for fld := Title; fld < numFields; fld++ {
			if key := keyFromField[f][fld]; key != "" {
				m[key] = fld
			}
		}
		fieldFromKey[f] = m
	}
	for key, fld := range vorbisAliases {
		fieldFromKey[FLAC][key] = fld
		fieldFromKey[OGG][key] = fld
	}
	T().Debugf("tag key mapping inverted for %d formats", numFormats)
}

// FieldForKey finds the logical field a native key belongs to. Every
// native key of a format resolves to exactly one field.
func FieldForKey(f Format, key string) (Field, bool) {
	if !f.Supported() {
		return 0, false
	}
	setupOnce.Do(setupReverseMapping)
	fld, ok := fieldFromKey[f][key]
	return fld, ok
}

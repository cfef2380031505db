/*
Package tags maps logical tag fields onto the native keys of audio
container formats.

Content

Audio containers disagree about metadata. ID3v2 stores the song title in
a TIT2 frame, Vorbis comments in a TITLE field, Apple containers in a
©nam atom, ASF in a Title attribute. To apply one and the same text
transform across all of them, this package normalizes the field names:
a LogicalField such as Title or Artist resolves to the native key of any
supported container format, and Apply runs a transform over every
logical field a container carries.

Resolution is a static lookup table, not a type hierarchy. Keys map
many-to-one onto logical fields: several native keys of one format may
name the same field, but no native key names two. A field with no key in
some format is absent there, which is a no-op for processing, not an
error.

Typical Usage

  key, ok, err := tags.Resolve(tags.FLAC, tags.Title) // "TITLE", true, nil

  changes, err := tags.Apply(container, tags.MP3, runs.SegmentAndReverse)

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package tags

import (
	"strconv"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// A Field is a normalized, format-independent tag field identifier.
type Field int8

// The logical fields. The set is the union of what the supported
// formats can express; not every field has a key in every format.
const (
	Title Field = iota
	Artist
	Album
	AlbumArtist
	Composer
	Genre
	Copyright
	Publisher
	Lyricist
	Conductor
	Remixer
	Author
	ISRC
	Language
	DiscSubtitle
	Mood
	Version
	Comment
	Description
	Lyrics
	SyncedLyrics
)

const numFields = 21

const fieldname = "TitleArtistAlbumAlbum ArtistComposerGenreCopyrightPublisherLyricistConductorRemixerAuthorISRCLanguageDisc SubtitleMoodVersionCommentDescriptionLyricsSynced Lyrics"

var fieldindex = [...]uint8{0, 5, 11, 16, 28, 36, 41, 50, 59, 67, 76, 83,
	89, 93, 101, 114, 118, 125, 132, 143, 149, 162}

// String returns the display name of a field.
func (fld Field) String() string {
	if fld < 0 || fld >= Field(len(fieldindex)-1) {
		return "Field(" + strconv.FormatInt(int64(fld), 10) + ")"
	}
	return fieldname[fieldindex[fld]:fieldindex[fld+1]]
}

// A Format identifies a supported audio container format.
type Format int8

// The supported container formats. FLAC and OGG share the Vorbis
// comment key table but remain distinct formats.
const (
	MP3 Format = iota // ID3v2 frames
	FLAC              // Vorbis comments in FLAC metadata
	OGG               // Vorbis comments in an Ogg stream
	M4A               // Apple atoms
	WMA               // ASF attributes
)

const numFormats = 5

const formatname = "MP3FLACOGGM4AWMA"

var formatindex = [...]uint8{0, 3, 7, 10, 13, 16}

// String returns the name of a format.
func (f Format) String() string {
	if f < 0 || f >= Format(len(formatindex)-1) {
		return "Format(" + strconv.FormatInt(int64(f), 10) + ")"
	}
	return formatname[formatindex[f]:formatindex[f+1]]
}

// Supported reports whether f is one of the five container formats.
func (f Format) Supported() bool {
	return f >= MP3 && f <= WMA
}

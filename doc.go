/*
Package rtlfix fixes the display of right-to-left text on devices which
render code-points strictly left-to-right.

Description

Car head units, portable audio players and some TV sets lack a
bidirectional rendering engine. Hebrew or Arabic song titles then show up
mirrored: the device draws the code-points in storage order, left to
right, which for a right-to-left script is exactly backwards. A cheap
remedy is to reverse every right-to-left stretch of the text beforehand
and to leave everything else alone. The reversed storage order and the
device's left-to-right drawing then cancel out.

This module implements the reversal as a small processing pipeline.

Contents

▪︎ Package script classifies code-points into right-to-left scripts
(Hebrew, Arabic, Syriac, Thaana, NKo and a group of historical scripts)
or Neutral.

▪︎ Package runs splits a string into runs of uniform script and reverses
the right-to-left runs, keeping neutral runs and run order intact.

▪︎ Package tags maps logical tag fields (Title, Artist, Album, …) onto
the native keys of the supported container formats and applies a text
transform to tag values.

▪︎ Package stats collects distribution numbers over processed texts and
renders a report.

▪︎ Package tagio implements tag container access for MP3 (ID3v2) and
FLAC (Vorbis comment) files.

The command line tool in cmd/rtlfix drives the pipeline over a folder of
audio files, with timestamped backups and a dry-run mode.

The base package provides shared machinery for the sub-packages, notably
pooled scratch buffers for splitting text into character units.

Caveats

Reversal is a work-around, not bidi. The Unicode Bidirectional Algorithm
(UAX#9) is deliberately not implemented here: the target devices do not
run one, which is the whole point. Reversing changes the stored text, so
players with a working bidi engine will display treated files wrongly.
Keep backups.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package rtlfix

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

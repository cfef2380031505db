/*
Package script classifies Unicode code-points into right-to-left scripts.

Content

Classification is the first stage of the reversal pipeline: every
code-point of a text is assigned a script category, and stretches of
uniform category then form the runs which the reverser operates on.

The categories are the right-to-left scripts a code-point may belong to:
Hebrew, Arabic, Syriac, Thaana, NKo, and a group of historical scripts
(Mandaic, Samaritan, Imperial Aramaic, Phoenician, Nabataean, Lydian,
Meroitic). Each category covers a fixed set of Unicode blocks, including
presentation forms and supplements. Every code-point outside of these
blocks is Neutral, without exception: digits, Latin letters, punctuation,
unassigned code-points and the replacement character all classify as
Neutral. Classification is therefore total and never fails.

The block ranges are static data. They deliberately do not track the
Unicode Character Database: target devices ship with fixed fonts and
firmware, and a stable classification is worth more there than an
up-to-date one.

Typical Usage

Classification of single code-points:

  cat := script.ClassForRune(r)
  if cat != script.Neutral ...

A quick direction test over all supported scripts:

  if script.IsRTL(r) ...

IsRTL consults a merged range table which is built lazily on first use.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package script

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}

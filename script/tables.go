package script

import "unicode"

// RangeTables is an array of Unicode range tables, one for each script
// category. The entry for Neutral is nil: Neutral is the complement of
// all other tables.
var RangeTables = [...]*unicode.RangeTable{
	nil, _Hebrew, _Arabic, _Syriac, _Thaana, _NKo, _Mandaic,
	_Samaritan, _ImperialAramaic, _Phoenician, _Nabataean, _Lydian,
	_Meroitic,
}

// Hebrew block plus Alphabetic Presentation Forms (the Hebrew part).
var _Hebrew = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x0590, 0x05ff, 1},
		{0xfb1d, 0xfb4f, 1},
	},
}

// Arabic block, Arabic Supplement, Arabic Extended-A and both
// Presentation Forms blocks.
var _Arabic = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x0600, 0x06ff, 1},
		{0x0750, 0x077f, 1},
		{0x08a0, 0x08ff, 1},
		{0xfb50, 0xfdff, 1},
		{0xfe70, 0xfeff, 1},
	},
}

// Syriac block plus Syriac Supplement.
var _Syriac = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x0700, 0x074f, 1},
		{0x0860, 0x086f, 1},
	},
}

var _Thaana = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x0780, 0x07bf, 1},
	},
}

var _NKo = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x07c0, 0x07ff, 1},
	},
}

var _Mandaic = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x0840, 0x085f, 1},
	},
}

var _Samaritan = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x0800, 0x083f, 1},
	},
}

var _ImperialAramaic = &unicode.RangeTable{
	R32: []unicode.Range32{
		{0x10840, 0x1085f, 1},
	},
}

var _Phoenician = &unicode.RangeTable{
	R32: []unicode.Range32{
		{0x10900, 0x1091f, 1},
	},
}

var _Nabataean = &unicode.RangeTable{
	R32: []unicode.Range32{
		{0x10880, 0x108af, 1},
	},
}

var _Lydian = &unicode.RangeTable{
	R32: []unicode.Range32{
		{0x10920, 0x1093f, 1},
	},
}

// Meroitic Hieroglyphs and Meroitic Cursive.
var _Meroitic = &unicode.RangeTable{
	R32: []unicode.Range32{
		{0x10980, 0x1099f, 1},
		{0x109a0, 0x109ff, 1},
	},
}

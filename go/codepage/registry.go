/*
Copyright 2026 The Vitess Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package codepage

import (
	"slices"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

type largeTable struct {
	name string
	enc  encoding.Encoding
}

// largeTables maps Windows code page identifiers to the encodings provided
// by golang.org/x/text.
var largeTables = map[uint16]largeTable{
	437: {"IBM437", charmap.CodePage437},
	850: {"IBM850", charmap.CodePage850},
	852: {"IBM852", charmap.CodePage852},
	855: {"IBM855", charmap.CodePage855},
	858: {"IBM00858", charmap.CodePage858},
	860: {"IBM860", charmap.CodePage860},
	862: {"IBM862", charmap.CodePage862},
	863: {"IBM863", charmap.CodePage863},
	865: {"IBM865", charmap.CodePage865},
	866: {"IBM866", charmap.CodePage866},
	874: {"windows-874", charmap.Windows874},

	1250: {"windows-1250", charmap.Windows1250},
	1251: {"windows-1251", charmap.Windows1251},
	1252: {"windows-1252", charmap.Windows1252},
	1253: {"windows-1253", charmap.Windows1253},
	1254: {"windows-1254", charmap.Windows1254},
	1255: {"windows-1255", charmap.Windows1255},
	1256: {"windows-1256", charmap.Windows1256},
	1257: {"windows-1257", charmap.Windows1257},
	1258: {"windows-1258", charmap.Windows1258},

	10000: {"macintosh", charmap.Macintosh},
	10007: {"x-mac-cyrillic", charmap.MacintoshCyrillic},
	20866: {"KOI8-R", charmap.KOI8R},
	21866: {"KOI8-U", charmap.KOI8U},

	28591: {"ISO-8859-1", charmap.ISO8859_1},
	28592: {"ISO-8859-2", charmap.ISO8859_2},
	28593: {"ISO-8859-3", charmap.ISO8859_3},
	28594: {"ISO-8859-4", charmap.ISO8859_4},
	28595: {"ISO-8859-5", charmap.ISO8859_5},
	28596: {"ISO-8859-6", charmap.ISO8859_6},
	28597: {"ISO-8859-7", charmap.ISO8859_7},
	28598: {"ISO-8859-8", charmap.ISO8859_8},
	28599: {"ISO-8859-9", charmap.ISO8859_9},
	28600: {"ISO-8859-10", charmap.ISO8859_10},
	28603: {"ISO-8859-13", charmap.ISO8859_13},
	28604: {"ISO-8859-14", charmap.ISO8859_14},
	28605: {"ISO-8859-15", charmap.ISO8859_15},
	28606: {"ISO-8859-16", charmap.ISO8859_16},
	38598: {"ISO-8859-8-I", charmap.ISO8859_8I},

	932:   {"Shift_JIS", japanese.ShiftJIS},
	20932: {"EUC-JP", japanese.EUCJP},
	51932: {"EUC-JP", japanese.EUCJP},
	50220: {"ISO-2022-JP", japanese.ISO2022JP},
	50221: {"ISO-2022-JP", japanese.ISO2022JP},
	50222: {"ISO-2022-JP", japanese.ISO2022JP},
	949:   {"EUC-KR", korean.EUCKR},
	51949: {"EUC-KR", korean.EUCKR},
	936:   {"GBK", simplifiedchinese.GBK},
	52936: {"HZ-GB-2312", simplifiedchinese.HZGB2312},
	54936: {"GB18030", simplifiedchinese.GB18030},
	950:   {"Big5", traditionalchinese.Big5},
}

// unsupported lists code pages that are recognized but deliberately not
// transcoded.
var unsupported = map[uint16]string{
	12000: "UTF-32LE",
	12001: "UTF-32BE",
	65000: "UTF-7",

	// EBCDIC
	37:    "IBM037",
	273:   "IBM273",
	277:   "IBM277",
	278:   "IBM278",
	280:   "IBM280",
	284:   "IBM284",
	285:   "IBM285",
	290:   "IBM290",
	297:   "IBM297",
	420:   "IBM420",
	423:   "IBM423",
	424:   "IBM424",
	500:   "IBM500",
	870:   "IBM870",
	871:   "IBM871",
	875:   "cp875",
	880:   "cp880",
	905:   "IBM905",
	1025:  "cp1025",
	1026:  "IBM1026",
	1047:  "IBM01047",
	1140:  "IBM01140",
	1141:  "IBM01141",
	1142:  "IBM01142",
	1143:  "IBM01143",
	1144:  "IBM01144",
	1145:  "IBM01145",
	1146:  "IBM01146",
	1147:  "IBM01147",
	1148:  "IBM01148",
	1149:  "IBM01149",
	20273: "IBM273",
	20277: "IBM277",
	20278: "IBM278",
	20280: "IBM280",
	20284: "IBM284",
	20285: "IBM285",
	20290: "IBM290",
	20297: "IBM297",
	20420: "IBM420",
	20423: "IBM423",
	20424: "IBM424",
	20833: "x-EBCDIC-KoreanExtended",
	20838: "IBM-Thai",
	20871: "IBM871",
	20880: "IBM880",
	20905: "IBM905",
	20924: "IBM00924",
	21025: "cp1025",
}

// Codepages returns every code page number New resolves successfully, in
// ascending order.
func Codepages() []uint16 {
	all := []uint16{65001, 1200, 1201}
	for cp := range largeTables {
		all = append(all, cp)
	}
	for cp := range oemPages {
		all = append(all, cp)
	}
	slices.Sort(all)
	return all
}

// Unsupported returns every code page number that New recognizes but
// declines with ErrUnsupportedCodepage, in ascending order.
func Unsupported() []uint16 {
	all := make([]uint16, 0, len(unsupported))
	for cp := range unsupported {
		all = append(all, cp)
	}
	slices.Sort(all)
	return all
}

// UnsupportedName returns the conventional name of a declined code page,
// or "" if cp is not one.
func UnsupportedName(cp uint16) string {
	return unsupported[cp]
}

// seehuhn.de/go/svm - a library for reading StarView metafiles
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package textenc maps the numeric text encoding identifiers stored in
// metafiles to character set decoders.
package textenc

import (
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// CharSet identifies a text encoding.
type CharSet uint16

// These are the text encodings which can be recognised.
const (
	DontKnow   CharSet = 0
	MS1252     CharSet = 1
	AppleRoman CharSet = 2
	IBM437     CharSet = 3
	IBM850     CharSet = 4
	IBM860     CharSet = 5
	IBM861     CharSet = 6
	IBM863     CharSet = 7
	IBM865     CharSet = 8
	Symbol     CharSet = 10
	ASCII      CharSet = 11
	ISO8859_1  CharSet = 12
	ISO8859_2  CharSet = 13
	ISO8859_3  CharSet = 14
	ISO8859_4  CharSet = 15
	ISO8859_5  CharSet = 16
	ISO8859_6  CharSet = 17
	ISO8859_7  CharSet = 18
	ISO8859_8  CharSet = 19
	ISO8859_9  CharSet = 20
	ISO8859_14 CharSet = 21
	ISO8859_15 CharSet = 22
	IBM852     CharSet = 25
	IBM855     CharSet = 26
	IBM862     CharSet = 28
	IBM866     CharSet = 30
	MS874      CharSet = 32
	MS1250     CharSet = 33
	MS1251     CharSet = 34
	MS1253     CharSet = 35
	MS1254     CharSet = 36
	MS1255     CharSet = 37
	MS1256     CharSet = 38
	MS1257     CharSet = 39
	MS1258     CharSet = 40
	AppleCyr   CharSet = 47
	MS932      CharSet = 60
	MS936      CharSet = 61
	MS949      CharSet = 62
	MS950      CharSet = 63
	ShiftJIS   CharSet = 64
	GB2312     CharSet = 65
	GBK        CharSet = 67
	Big5       CharSet = 68
	EUCJP      CharSet = 69
	EUCCN      CharSet = 70
	ISO2022JP  CharSet = 72
	KOI8R      CharSet = 74
	UTF8       CharSet = 76
	ISO8859_10 CharSet = 77
	ISO8859_13 CharSet = 78
	EUCKR      CharSet = 79
	KOI8U      CharSet = 88
	ISO8859_16 CharSet = 89
	Unicode    CharSet = 0xFFFF
)

const symbolFirst = 0xF000

type info struct {
	name string
	enc  encoding.Encoding
}

var charSets = map[CharSet]info{
	MS1252:     {"windows-1252", charmap.Windows1252},
	AppleRoman: {"macintosh", charmap.Macintosh},
	IBM437:     {"ibm437", charmap.CodePage437},
	IBM850:     {"ibm850", charmap.CodePage850},
	IBM860:     {"ibm860", charmap.CodePage860},
	IBM863:     {"ibm863", charmap.CodePage863},
	IBM865:     {"ibm865", charmap.CodePage865},
	ASCII:      {"us-ascii", charmap.Windows1252},
	ISO8859_1:  {"iso-8859-1", charmap.ISO8859_1},
	ISO8859_2:  {"iso-8859-2", charmap.ISO8859_2},
	ISO8859_3:  {"iso-8859-3", charmap.ISO8859_3},
	ISO8859_4:  {"iso-8859-4", charmap.ISO8859_4},
	ISO8859_5:  {"iso-8859-5", charmap.ISO8859_5},
	ISO8859_6:  {"iso-8859-6", charmap.ISO8859_6},
	ISO8859_7:  {"iso-8859-7", charmap.ISO8859_7},
	ISO8859_8:  {"iso-8859-8", charmap.ISO8859_8},
	ISO8859_9:  {"iso-8859-9", charmap.ISO8859_9},
	ISO8859_10: {"iso-8859-10", charmap.ISO8859_10},
	ISO8859_13: {"iso-8859-13", charmap.ISO8859_13},
	ISO8859_14: {"iso-8859-14", charmap.ISO8859_14},
	ISO8859_15: {"iso-8859-15", charmap.ISO8859_15},
	ISO8859_16: {"iso-8859-16", charmap.ISO8859_16},
	IBM852:     {"ibm852", charmap.CodePage852},
	IBM855:     {"ibm855", charmap.CodePage855},
	IBM862:     {"ibm862", charmap.CodePage862},
	IBM866:     {"ibm866", charmap.CodePage866},
	MS874:      {"windows-874", charmap.Windows874},
	MS1250:     {"windows-1250", charmap.Windows1250},
	MS1251:     {"windows-1251", charmap.Windows1251},
	MS1253:     {"windows-1253", charmap.Windows1253},
	MS1254:     {"windows-1254", charmap.Windows1254},
	MS1255:     {"windows-1255", charmap.Windows1255},
	MS1256:     {"windows-1256", charmap.Windows1256},
	MS1257:     {"windows-1257", charmap.Windows1257},
	MS1258:     {"windows-1258", charmap.Windows1258},
	AppleCyr:   {"x-mac-cyrillic", charmap.MacintoshCyrillic},
	KOI8R:      {"koi8-r", charmap.KOI8R},
	KOI8U:      {"koi8-u", charmap.KOI8U},
	MS932:      {"windows-31j", japanese.ShiftJIS},
	ShiftJIS:   {"shift_jis", japanese.ShiftJIS},
	EUCJP:      {"euc-jp", japanese.EUCJP},
	ISO2022JP:  {"iso-2022-jp", japanese.ISO2022JP},
	MS936:      {"windows-936", simplifiedchinese.GBK},
	GB2312:     {"gb2312", simplifiedchinese.GBK},
	EUCCN:      {"euc-cn", simplifiedchinese.GBK},
	GBK:        {"gbk", simplifiedchinese.GBK},
	MS950:      {"windows-950", traditionalchinese.Big5},
	Big5:       {"big5", traditionalchinese.Big5},
	MS949:      {"windows-949", korean.EUCKR},
	EUCKR:      {"euc-kr", korean.EUCKR},
	UTF8:       {"utf-8", unicode.UTF8},
	Unicode:    {"utf-16le", unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)},
}

// Fallback is the encoding used for identifiers which are not known.
var Fallback encoding.Encoding = charmap.Windows1252

// Encoding returns the character set decoder for c.  If c is not known,
// or is Symbol or DontKnow, the fallback encoding is returned and ok is
// false.
func (c CharSet) Encoding() (enc encoding.Encoding, ok bool) {
	i, ok := charSets[c]
	if !ok {
		return Fallback, false
	}
	return i.enc, true
}

// Known reports whether strings in the encoding c can be decoded exactly.
func (c CharSet) Known() bool {
	if c == Symbol {
		return true
	}
	_, ok := charSets[c]
	return ok
}

// DecodeString converts a byte string in the encoding c to UTF-8.
//
// Symbol font code points are mapped into the Unicode private use area
// starting at U+F000.  Invalid byte sequences are replaced with U+FFFD.
func (c CharSet) DecodeString(b []byte) string {
	if c == Symbol {
		var sb strings.Builder
		for _, x := range b {
			sb.WriteRune(symbolFirst + rune(x))
		}
		return sb.String()
	}

	enc, _ := c.Encoding()
	res, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		// Single-byte code pages map every byte, so this cannot fail.
		res, err = Fallback.NewDecoder().Bytes(b)
		if err != nil {
			return string(b)
		}
	}
	return string(res)
}

func (c CharSet) String() string {
	switch c {
	case DontKnow:
		return "unknown"
	case Symbol:
		return "symbol"
	}
	if i, ok := charSets[c]; ok {
		return i.name
	}
	return "CharSet(" + strconv.Itoa(int(c)) + ")"
}

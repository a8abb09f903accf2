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

package gdi

import (
	"fmt"

	"golang.org/x/text/language"
)

// LanguageType is a Windows language identifier (LCID).
type LanguageType uint16

// Special language identifiers.
const (
	LangDontKnow LanguageType = 0x03FF
	LangSystem   LanguageType = 0x0000
	LangNone     LanguageType = 0x00FF
)

// lcidTags maps full LCIDs to BCP 47 tags.
var lcidTags = map[LanguageType]string{
	0x0401: "ar-SA",
	0x0402: "bg-BG",
	0x0403: "ca-ES",
	0x0404: "zh-TW",
	0x0405: "cs-CZ",
	0x0406: "da-DK",
	0x0407: "de-DE",
	0x0408: "el-GR",
	0x0409: "en-US",
	0x040A: "es-ES",
	0x040B: "fi-FI",
	0x040C: "fr-FR",
	0x040D: "he-IL",
	0x040E: "hu-HU",
	0x040F: "is-IS",
	0x0410: "it-IT",
	0x0411: "ja-JP",
	0x0412: "ko-KR",
	0x0413: "nl-NL",
	0x0414: "nb-NO",
	0x0415: "pl-PL",
	0x0416: "pt-BR",
	0x0418: "ro-RO",
	0x0419: "ru-RU",
	0x041A: "hr-HR",
	0x041B: "sk-SK",
	0x041D: "sv-SE",
	0x041E: "th-TH",
	0x041F: "tr-TR",
	0x0422: "uk-UA",
	0x0424: "sl-SI",
	0x0425: "et-EE",
	0x0426: "lv-LV",
	0x0427: "lt-LT",
	0x042A: "vi-VN",
	0x0439: "hi-IN",
	0x0804: "zh-CN",
	0x0807: "de-CH",
	0x0809: "en-GB",
	0x080A: "es-MX",
	0x080C: "fr-BE",
	0x0810: "it-CH",
	0x0813: "nl-BE",
	0x0814: "nn-NO",
	0x0816: "pt-PT",
	0x0C04: "zh-HK",
	0x0C07: "de-AT",
	0x0C09: "en-AU",
	0x0C0A: "es-ES",
	0x0C0C: "fr-CA",
	0x1004: "zh-SG",
	0x1009: "en-CA",
	0x100C: "fr-CH",
	0x1409: "en-NZ",
	0x1809: "en-IE",
}

// primaryTags maps primary language identifiers (the low ten bits of an
// LCID) to base languages.
var primaryTags = map[LanguageType]string{
	0x01: "ar", 0x02: "bg", 0x03: "ca", 0x04: "zh", 0x05: "cs", 0x06: "da",
	0x07: "de", 0x08: "el", 0x09: "en", 0x0A: "es", 0x0B: "fi", 0x0C: "fr",
	0x0D: "he", 0x0E: "hu", 0x0F: "is", 0x10: "it", 0x11: "ja", 0x12: "ko",
	0x13: "nl", 0x14: "no", 0x15: "pl", 0x16: "pt", 0x18: "ro", 0x19: "ru",
	0x1A: "hr", 0x1B: "sk", 0x1C: "sq", 0x1D: "sv", 0x1E: "th", 0x1F: "tr",
	0x20: "ur", 0x21: "id", 0x22: "uk", 0x23: "be", 0x24: "sl", 0x25: "et",
	0x26: "lv", 0x27: "lt", 0x29: "fa", 0x2A: "vi", 0x2B: "hy", 0x2D: "eu",
	0x2F: "mk", 0x36: "af", 0x37: "ka", 0x38: "fo", 0x39: "hi", 0x3E: "ms",
	0x41: "sw", 0x45: "bn", 0x49: "ta", 0x56: "gl",
}

// Tag returns the language tag corresponding to the identifier.  Unknown
// and special identifiers give [language.Und].
func (l LanguageType) Tag() language.Tag {
	if l == LangDontKnow || l == LangSystem || l == LangNone {
		return language.Und
	}
	if s, ok := lcidTags[l]; ok {
		return language.Make(s)
	}
	if s, ok := primaryTags[l&0x03FF]; ok {
		return language.Make(s)
	}
	return language.Und
}

func (l LanguageType) String() string {
	tag := l.Tag()
	if tag == language.Und {
		return fmt.Sprintf("0x%04X", uint16(l))
	}
	return tag.String()
}

// ReadLanguage reads a uint16 language identifier.
func (r *Reader) ReadLanguage() (LanguageType, error) {
	x, err := r.ReadUInt16()
	return LanguageType(x), err
}

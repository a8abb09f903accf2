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

package svm

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/svm/gdi"
	"seehuhn.de/go/svm/internal/svmtest"
)

func TestTextArray(t *testing.T) {
	cases := []struct {
		name         string
		version      uint16
		body         func(b *svmtest.Builder)
		want         *TextArray
		inconsistent bool
	}{
		{
			name:    "no advances",
			version: 1,
			body: func(b *svmtest.Builder) {
				b.Pt(1, 2).ByteString("abc").U16(0).U16(3).I32(0)
			},
			want: &TextArray{Pos: gdi.Point{X: 1, Y: 2}, Text: "abc", Len: 3},
		},
		{
			name:    "exact",
			version: 1,
			body: func(b *svmtest.Builder) {
				b.Pt(0, 0).ByteString("abc").U16(0).U16(3).I32(3).I32(10).I32(20).I32(30)
			},
			want: &TextArray{Text: "abc", Len: 3, Advances: []int32{10, 20, 30}},
		},
		{
			name:    "excess values discarded",
			version: 2,
			body: func(b *svmtest.Builder) {
				b.Pt(0, 0).ByteString("ab").U16(0).U16(2)
				b.I32(4).I32(1).I32(2).I32(3).I32(4)
				b.UTF16("xy")
			},
			want: &TextArray{Text: "xy", Len: 2, Advances: []int32{1, 2}},
		},
		{
			name:    "too few values",
			version: 2,
			body: func(b *svmtest.Builder) {
				b.Pt(0, 0).ByteString("abc").U16(0).U16(3)
				b.I32(2).I32(5).I32(6)
				b.UTF16("zzz")
			},
			want:         &TextArray{Text: "abc", Len: 3},
			inconsistent: true,
		},
		{
			name:    "values missing at end of data",
			version: 1,
			body: func(b *svmtest.Builder) {
				b.Pt(0, 0).ByteString("ab").U16(0).U16(2).I32(1000).I32(7)
			},
			want:         &TextArray{Text: "ab", Len: 2, Advances: []int32{7, 0}},
			inconsistent: true,
		},
		{
			name:    "range invalid for unicode text",
			version: 2,
			body: func(b *svmtest.Builder) {
				b.Pt(0, 0).ByteString("abcdef").U16(2).U16(3)
				b.I32(3).I32(1).I32(2).I32(3)
				b.UTF16("ab")
			},
			want:         &TextArray{Text: "ab", Len: 2},
			inconsistent: true,
		},
		{
			name:    "too few values with invalid range",
			version: 1,
			body: func(b *svmtest.Builder) {
				b.Pt(0, 0).ByteString("ab").U16(0).U16(5)
				b.I32(3).I32(1).I32(2).I32(3)
			},
			want:         &TextArray{Text: "ab", Len: 2},
			inconsistent: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := oneAction(TypeTextArray, tc.version, tc.body)
			mtf, _, err := decodeBuilder(t, b, quiet)
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff([]Action{tc.want}, mtf.Actions); d != "" {
				t.Errorf("unexpected actions (-want +got):\n%s", d)
			}

			_, _, err = decodeBuilder(t, b, strict())
			if tc.inconsistent != errors.Is(err, ErrInconsistent) {
				t.Errorf("strict mode: unexpected error %v", err)
			}
		})
	}
}

func TestTextRange(t *testing.T) {
	cases := []struct {
		name     string
		body     func(b *svmtest.Builder)
		index, n int
		clamped  bool
	}{
		{
			name:  "inside",
			body:  func(b *svmtest.Builder) { b.ByteString("").U16(1).U16(2).UTF16("abc") },
			index: 1,
			n:     2,
		},
		{
			name:  "empty at end",
			body:  func(b *svmtest.Builder) { b.ByteString("").U16(3).U16(0).UTF16("abc") },
			index: 3,
			n:     0,
		},
		{
			name:    "too long",
			body:    func(b *svmtest.Builder) { b.ByteString("").U16(2).U16(5).UTF16("abc") },
			index:   0,
			n:       3,
			clamped: true,
		},
		{
			// the emoji takes two UTF-16 code units
			name:  "surrogate pair",
			body:  func(b *svmtest.Builder) { b.ByteString("").U16(1).U16(2).UTF16("a\U0001F600") },
			index: 1,
			n:     2,
		},
		{
			name:    "surrogate pair too long",
			body:    func(b *svmtest.Builder) { b.ByteString("").U16(1).U16(3).UTF16("a\U0001F600") },
			index:   0,
			n:       3,
			clamped: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := oneAction(TypeText, 2, func(b *svmtest.Builder) {
				b.Pt(0, 0)
				tc.body(b)
			})
			mtf, _, err := decodeBuilder(t, b, quiet)
			if err != nil {
				t.Fatal(err)
			}
			a := mtf.Actions[0].(*Text)
			if a.Index != tc.index || a.Len != tc.n {
				t.Errorf("got index=%d len=%d, expected index=%d len=%d",
					a.Index, a.Len, tc.index, tc.n)
			}

			_, _, err = decodeBuilder(t, b, strict())
			if tc.clamped != errors.Is(err, ErrInconsistent) {
				t.Errorf("strict mode: unexpected error %v", err)
			}
		})
	}
}

func TestStretchTextClamp(t *testing.T) {
	b := oneAction(TypeStretchText, 1, func(b *svmtest.Builder) {
		b.Pt(0, 0).ByteString("abcd").U32(100).U16(4).U16(1)
	})
	mtf, _, err := decodeBuilder(t, b, quiet)
	if err != nil {
		t.Fatal(err)
	}
	want := &StretchText{Text: "abcd", Width: 100, Len: 4}
	if d := cmp.Diff([]Action{want}, mtf.Actions); d != "" {
		t.Errorf("unexpected actions (-want +got):\n%s", d)
	}
}

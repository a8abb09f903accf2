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

package main

import "testing"

func TestSubstring(t *testing.T) {
	cases := []struct {
		s        string
		index, n int
		want     string
	}{
		{"hello", 1, 3, "ell"},
		{"hello", 0, 5, "hello"},
		{"hello", 5, 0, ""},
		{"a\U0001F600b", 1, 2, "\U0001F600"},
		{"a\U0001F600b", 3, 1, "b"},
		{"äöü", 1, 1, "ö"},
	}
	for _, tc := range cases {
		got := substring(tc.s, tc.index, tc.n)
		if got != tc.want {
			t.Errorf("substring(%q, %d, %d) = %q, want %q", tc.s, tc.index, tc.n, got, tc.want)
		}
	}
}

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

// Package svm reads StarView metafiles.
//
// A metafile is a sequence of drawing actions, preceded by a header which
// gives the preferred size of the drawing.  [Read] decodes a complete file
// into a [Metafile]:
//
//	mtf, err := svm.Read(fd, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, a := range mtf.Actions {
//		fmt.Println(a.Type())
//	}
//
// Each action is represented by a pointer to one of the action types in
// this package, for example [*Line] or [*TextArray].  Use a type switch to
// access the action data.
//
// Decoding is tolerant of the errors found in files written by real
// programs: records which end early are skipped, counts which exceed the
// available data are reduced, and unknown actions are ignored.  Such
// corrections are reported to the configured [slog.Logger].  Setting
// [Options.Strict] turns them into errors.
package svm

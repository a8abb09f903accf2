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

// Package gdi reads the primitive values which make up metafile records:
// points, rectangles, colours, polygons, line styles, map modes, regions,
// gradients, hatches, fonts and embedded graphics.
//
// All readers operate on a [Reader], which wraps a
// [seehuhn.de/go/svm/stream.Stream] and carries the default character set
// of the stream.  Errors returned by
// the readers are either I/O errors from the underlying stream, or errors
// returned by the OnInconsistency callback.  Data which is malformed but
// can be corrected locally is corrected, and the correction is reported
// via the callback.
package gdi

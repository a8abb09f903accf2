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
	"strconv"
)

var (
	// ErrRecursion indicates that metafiles were nested too deeply.
	ErrRecursion = errors.New("metafiles nested too deeply")

	// ErrLegacyFormat is returned for files in the pre-versioned format,
	// if no converter is configured.
	ErrLegacyFormat = errors.New("legacy metafile format not supported")

	// ErrInconsistent is wrapped by the errors reported for locally
	// correctable data inconsistencies, when strict decoding is enabled.
	ErrInconsistent = errors.New("inconsistent data")
)

// MalformedFileError indicates that a metafile could not be decoded.
type MalformedFileError struct {
	Pos int64
	Err error
}

func (err *MalformedFileError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	tail := ""
	if err.Pos > 0 {
		tail = " (at byte " + strconv.FormatInt(err.Pos, 10) + ")"
	}
	return "not a valid metafile" + middle + tail
}

func (err *MalformedFileError) Unwrap() error {
	return err.Err
}

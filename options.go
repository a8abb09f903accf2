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
	"log/slog"

	"seehuhn.de/go/svm/stream"
	"seehuhn.de/go/svm/textenc"
)

// DefaultMaxDepth is the default limit for the nesting of metafiles.
const DefaultMaxDepth = 1024

// A LegacyConverter decodes a metafile in the pre-versioned format.
// The stream is positioned at the start of the file.
type LegacyConverter func(s *stream.Stream, mtf *Metafile) error

// Options can be used to control the decoding of metafiles.
type Options struct {
	// CharSet is the default text encoding of the stream.  This is used
	// for font names, and for text until the first font action sets
	// a different encoding.  The default is UTF-8.
	CharSet textenc.CharSet

	// Legacy, if set, is used to decode files which do not start with the
	// signature of the current format.
	Legacy LegacyConverter

	// Logger receives diagnostic messages.  The default is
	// [slog.Default].
	Logger *slog.Logger

	// Strict makes all data inconsistencies fatal.  By default, malformed
	// data is corrected where possible and decoding continues.
	Strict bool

	// MaxDepth limits the nesting of embedded metafiles.  The default is
	// DefaultMaxDepth.
	MaxDepth int
}

var defaultOptions = &Options{
	CharSet:  textenc.UTF8,
	MaxDepth: DefaultMaxDepth,
}

// MergeOptions fills the unset fields of opt from defaultValues.  A field
// counts as unset if it has its zero value; Strict is enabled if either
// struct enables it.  If opt is nil, defaultValues is returned unchanged.
// The result never aliases opt, and defaultValues must not be nil.
func MergeOptions(opt, defaultValues *Options) *Options {
	if opt == nil {
		return defaultValues
	}

	res := &Options{}
	if opt.CharSet != textenc.DontKnow {
		res.CharSet = opt.CharSet
	} else {
		res.CharSet = defaultValues.CharSet
	}
	if opt.Legacy != nil {
		res.Legacy = opt.Legacy
	} else {
		res.Legacy = defaultValues.Legacy
	}
	if opt.Logger != nil {
		res.Logger = opt.Logger
	} else {
		res.Logger = defaultValues.Logger
	}
	res.Strict = opt.Strict || defaultValues.Strict
	if opt.MaxDepth > 0 {
		res.MaxDepth = opt.MaxDepth
	} else {
		res.MaxDepth = defaultValues.MaxDepth
	}
	return res
}

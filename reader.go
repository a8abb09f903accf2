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
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"seehuhn.de/go/svm/gdi"
	"seehuhn.de/go/svm/stream"
	"seehuhn.de/go/svm/textenc"
)

// signature identifies metafiles in the current format.
const signature = "VCLMTF"

// ReadContext holds the state which is carried from one action to the
// next while a metafile is decoded.  A ReadContext must not be shared
// between concurrent decodes.
type ReadContext struct {
	// CharSet is the text encoding used for byte strings in text actions.
	// It is changed by font actions.
	CharSet textenc.CharSet

	// Depth is the number of metafile decodes in progress, including
	// the decodes of embedded metafiles.
	Depth int
}

// Reader decodes metafiles.  A Reader holds no per-file state and can be
// used for several decodes, also concurrently.
type Reader struct {
	opt *Options
	log *slog.Logger
}

// NewReader returns a Reader which uses the given options.
// If opt is nil, default options are used.
func NewReader(opt *Options) *Reader {
	opt = MergeOptions(opt, defaultOptions)
	logger := opt.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Reader{opt: opt, log: logger}
}

// Read decodes a metafile from r.
func Read(r io.ReadSeeker, opt *Options) (*Metafile, error) {
	s, err := stream.New(r)
	if err != nil {
		return nil, err
	}
	mtf := &Metafile{}
	err = Decode(s, mtf, opt)
	if err != nil {
		return nil, err
	}
	return mtf, nil
}

// Decode decodes a metafile, starting at the current position of s, and
// appends the actions to mtf.
//
// See [Reader.Decode] for details.
func Decode(s *stream.Stream, mtf *Metafile, opt *Options) error {
	return NewReader(opt).Decode(s, mtf, nil)
}

// Decode decodes a metafile, starting at the current position of s, and
// appends the actions to mtf.  If ctx is nil, a new read context is used.
//
// If s is already in an error state, the error is returned and nothing
// else happens.  Otherwise, on success s is positioned after the last
// action read.  Records which are cut short by the end of the data end
// decoding without an error.  On failure mtf is cleared, s is moved back
// to the starting position, and the error state of s is set to the
// returned *MalformedFileError.  In all cases, the byte order of s is
// restored before Decode returns.
func (r *Reader) Decode(s *stream.Stream, mtf *Metafile, ctx *ReadContext) (err error) {
	if prev := s.Err(); prev != nil {
		r.log.Warn("stream already in error state", "err", prev)
		return prev
	}

	start := s.Pos()
	order := s.Order()
	s.SetOrder(binary.LittleEndian)
	defer s.SetOrder(order)

	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic while decoding: %v", p)
		}
		if err != nil {
			err = r.fail(s, mtf, start, err)
		}
	}()

	sig, err := s.ReadBytes(len(signature))
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return err
	}
	if string(sig) != signature {
		return r.decodeLegacy(s, mtf, start)
	}

	if ctx == nil {
		ctx = &ReadContext{}
	}
	return r.decodeCurrent(s, mtf, ctx)
}

// fail rolls back a failed decode.
func (r *Reader) fail(s *stream.Stream, mtf *Metafile, start int64, cause error) error {
	res, ok := cause.(*MalformedFileError)
	if !ok {
		res = &MalformedFileError{Pos: s.Pos(), Err: cause}
	}
	r.log.Error("cannot decode metafile", "offset", start, "err", cause)

	mtf.Clear()
	s.ResetErr()
	s.Seek(start)
	s.SetErr(res)
	return res
}

func (r *Reader) decodeLegacy(s *stream.Stream, mtf *Metafile, start int64) error {
	err := s.Seek(start)
	if err != nil {
		return err
	}
	if r.opt.Legacy == nil {
		return ErrLegacyFormat
	}

	r.log.Debug("using legacy converter", "offset", start)
	err = r.opt.Legacy(s, mtf)
	if err != nil {
		return fmt.Errorf("legacy converter: %w", err)
	}
	return s.Err()
}

func (r *Reader) decodeCurrent(s *stream.Stream, mtf *Metafile, ctx *ReadContext) error {
	gr := gdi.NewReader(s)
	gr.CharSet = r.opt.CharSet

	compat, err := s.ReadCompat()
	if err != nil {
		return err
	}
	mtf.CompressMode, err = s.ReadUInt32()
	if err != nil {
		return err
	}
	mtf.PrefMapMode, err = gr.ReadMapMode()
	if err != nil {
		return err
	}
	mtf.PrefSize, err = gr.ReadSize()
	if err != nil {
		return err
	}
	count, err := s.ReadUInt32()
	if err != nil {
		return err
	}
	err = compat.Close()
	if err != nil {
		return err
	}

	ctx.Depth++
	prevCharSet := ctx.CharSet
	ctx.CharSet = r.opt.CharSet
	defer func() {
		ctx.Depth--
		ctx.CharSet = prevCharSet
	}()
	if ctx.Depth > r.opt.MaxDepth {
		return ErrRecursion
	}

	d := &decoder{r: r, s: s, gr: gr, ctx: ctx}
	gr.OnInconsistency = d.inconsistency

	for i := uint32(0); i < count && !s.EOF(); i++ {
		a, err := d.next()
		if isTruncation(err) {
			r.log.Warn("record cut short by end of data",
				"action", d.tag.String(), "offset", d.pos,
				"read", i, "declared", count)
			break
		} else if err != nil {
			return err
		}

		if a == nil {
			continue
		}
		if c, ok := a.(*Comment); ok && c.Comment == "EMF_PLUS" {
			mtf.UseCanvas = true
		}
		mtf.Add(a)
	}
	return nil
}

// isTruncation reports whether err indicates that a record was cut short
// by the end of the data.
func isTruncation(err error) bool {
	if err == nil {
		return false
	}
	var mErr *MalformedFileError
	if errors.As(err, &mErr) {
		return false
	}
	return errors.Is(err, io.ErrUnexpectedEOF)
}

// decoder holds the state for decoding the actions of one metafile.
type decoder struct {
	r   *Reader
	s   *stream.Stream
	gr  *gdi.Reader
	ctx *ReadContext

	// tag and pos describe the action currently being decoded.
	tag ActionType
	pos int64
}

func (d *decoder) inconsistency(msg string, args ...any) error {
	if d.r.opt.Strict {
		return fmt.Errorf("%s at byte %d: %w: %s", d.tag, d.pos, ErrInconsistent, msg)
	}
	attrs := append([]any{"action", d.tag.String(), "offset", d.pos}, args...)
	d.r.log.Warn(msg, attrs...)
	return nil
}

// next decodes one action.  For unknown action types, the record is
// skipped and nil is returned.
func (d *decoder) next() (Action, error) {
	d.pos = d.s.Pos()
	tag, err := d.s.ReadUInt16()
	if err != nil {
		return nil, err
	}
	d.tag = ActionType(tag)

	if d.tag == TypeNone {
		return None{}, nil
	}

	compat, err := d.s.ReadCompat()
	if err != nil {
		return nil, err
	}
	a, err := d.decodeAction(compat.Version)
	if err != nil {
		return nil, err
	}
	err = compat.Close()
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (d *decoder) decodeAction(v uint16) (Action, error) {
	switch d.tag {
	case TypePixel:
		return d.pixel()
	case TypePoint:
		return d.point()
	case TypeLine:
		return d.line(v)
	case TypeRect:
		return d.rect()
	case TypeRoundRect:
		return d.roundRect()
	case TypeEllipse:
		return d.ellipse()
	case TypeArc, TypePie, TypeChord:
		return d.arc()
	case TypePolyLine:
		return d.polyLine(v)
	case TypePolygon:
		return d.polygon(v)
	case TypePolyPolygon:
		return d.polyPolygon(v)
	case TypeText:
		return d.text(v)
	case TypeTextArray:
		return d.textArray(v)
	case TypeStretchText:
		return d.stretchText(v)
	case TypeTextRect:
		return d.textRect(v)
	case TypeTextLine:
		return d.textLine(v)
	case TypeBmp:
		return d.bmp()
	case TypeBmpScale:
		return d.bmpScale()
	case TypeBmpScalePart:
		return d.bmpScalePart()
	case TypeBmpEx:
		return d.bmpEx()
	case TypeBmpExScale:
		return d.bmpExScale()
	case TypeBmpExScalePart:
		return d.bmpExScalePart()
	case TypeMask:
		return d.mask()
	case TypeMaskScale:
		return d.maskScale()
	case TypeMaskScalePart:
		return d.maskScalePart()
	case TypeGradient:
		return d.gradient()
	case TypeGradientEx:
		return d.gradientEx()
	case TypeHatch:
		return d.hatch()
	case TypeTransparent:
		return d.transparent()
	case TypeFloatTransparent:
		return d.floatTransparent()
	case TypeWallpaper:
		return d.wallpaper()
	case TypeClipRegion:
		return d.clipRegion()
	case TypeISectRectClipRegion:
		return d.iSectRectClipRegion()
	case TypeISectRegionClipRegion:
		return d.iSectRegionClipRegion()
	case TypeMoveClipRegion:
		return d.moveClipRegion()
	case TypeLineColor, TypeFillColor, TypeTextFillColor, TypeTextLineColor, TypeOverlineColor:
		return d.optionalColor()
	case TypeTextColor:
		return d.textColor()
	case TypeTextAlign:
		return d.textAlign()
	case TypeMapMode:
		return d.mapMode()
	case TypeFont:
		return d.font()
	case TypePush:
		return d.push()
	case TypePop:
		return Pop{}, nil
	case TypeRasterOp:
		return d.rasterOp()
	case TypeEPS:
		return d.eps()
	case TypeRefPoint:
		return d.refPoint()
	case TypeLayoutMode:
		return d.layoutMode()
	case TypeTextLanguage:
		return d.textLanguage()
	case TypeComment:
		return d.comment()
	default:
		d.r.log.Debug("skipping unknown action",
			"action", d.tag.String(), "offset", d.pos)
		return nil, nil
	}
}

// nested decodes an embedded metafile, using the read context of the
// enclosing metafile.
func (d *decoder) nested() (*Metafile, error) {
	mtf := &Metafile{}
	err := d.r.Decode(d.s, mtf, d.ctx)
	if err != nil {
		return nil, err
	}
	return mtf, nil
}

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
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/text/language"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/svm/internal/svmtest"
	"seehuhn.de/go/svm/textenc"
)

func newReader(b *svmtest.Builder) *Reader {
	return NewReader(b.Stream())
}

// strictReader returns a reader which fails on the first inconsistency.
func strictReader(b *svmtest.Builder) *Reader {
	r := newReader(b)
	r.OnInconsistency = func(msg string, args ...any) error {
		return errors.New(msg)
	}
	return r
}

func TestReadLineInfo(t *testing.T) {
	type testCase struct {
		version uint16
		body    func(b *svmtest.Builder)
		want    LineInfo
	}
	cases := []testCase{
		{
			version: 1,
			body: func(b *svmtest.Builder) {
				b.U16(uint16(LineDash)).I32(7)
			},
			want: LineInfo{Style: LineDash, Width: 7, Join: JoinRound},
		},
		{
			version: 2,
			body: func(b *svmtest.Builder) {
				b.U16(uint16(LineDash)).I32(7)
				b.U16(2).I32(30).U16(3).I32(5).I32(10)
			},
			want: LineInfo{
				Style: LineDash, Width: 7,
				DashCount: 2, DashLen: 30, DotCount: 3, DotLen: 5, Distance: 10,
				Join: JoinRound,
			},
		},
		{
			version: 4,
			body: func(b *svmtest.Builder) {
				b.U16(uint16(LineSolid)).I32(1)
				b.U16(0).I32(0).U16(0).I32(0).I32(0)
				b.U16(uint16(JoinMiter))
				b.U16(uint16(CapSquare))
			},
			want: LineInfo{Style: LineSolid, Width: 1, Join: JoinMiter, Cap: CapSquare},
		},
		{
			// future versions may append fields, which are skipped
			version: 9,
			body: func(b *svmtest.Builder) {
				b.U16(uint16(LineSolid)).I32(1)
				b.U16(0).I32(0).U16(0).I32(0).I32(0)
				b.U16(uint16(JoinBevel))
				b.U16(uint16(CapRound))
				b.U32(0xDEADBEEF)
			},
			want: LineInfo{Style: LineSolid, Width: 1, Join: JoinBevel, Cap: CapRound},
		},
	}
	for i, c := range cases {
		t.Run(fmt.Sprintf("%02d", i), func(t *testing.T) {
			b := svmtest.New().Compat(c.version, c.body).U16(0x1234)
			r := newReader(b)
			got, err := r.ReadLineInfo()
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(c.want, got); d != "" {
				t.Errorf("unexpected line info (-want +got):\n%s", d)
			}
			marker, err := r.ReadUInt16()
			if err != nil || marker != 0x1234 {
				t.Errorf("record end not found: %04x %v", marker, err)
			}
		})
	}
}

func TestReadNamedColor(t *testing.T) {
	cases := []struct {
		data []uint16
		want Color
	}{
		{[]uint16{0}, Black},
		{[]uint16{4}, Red},
		{[]uint16{15}, White},
		{[]uint16{99}, Black},
		{[]uint16{0x8000, 0x12FF, 0x3400, 0x56AB}, RGB(0x12, 0x34, 0x56)},
	}
	for _, c := range cases {
		b := svmtest.New()
		for _, x := range c.data {
			b.U16(x)
		}
		got, err := newReader(b).ReadNamedColor()
		if err != nil {
			t.Fatal(err)
		}
		if got != c.want {
			t.Errorf("%v: got %s, want %s", c.data, got, c.want)
		}
	}
}

func TestColor(t *testing.T) {
	c := Color(0x80FF8040)
	if c.R() != 0xFF || c.G() != 0x80 || c.B() != 0x40 || c.Transparency() != 0x80 {
		t.Errorf("wrong components for %s", c)
	}
	_, _, _, a := c.RGBA()
	if a != 0x7F7F {
		t.Errorf("wrong alpha %04x", a)
	}
	if s := RGB(1, 2, 3).String(); s != "#010203" {
		t.Errorf("wrong string %q", s)
	}
}

func TestReadPolygon(t *testing.T) {
	b := svmtest.New().Poly(1, 2, 3, 4)
	got, err := newReader(b).ReadPolygon()
	if err != nil {
		t.Fatal(err)
	}
	want := Polygon{Points: []Point{{1, 2}, {3, 4}}}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected polygon (-want +got):\n%s", d)
	}
}

// TestReadPolygonClamp checks that a lying point count does not cause
// large allocations.
func TestReadPolygonClamp(t *testing.T) {
	b := svmtest.New().U16(60000).Pt(1, 1).Pt(2, 2).U32(7)

	got, err := newReader(b).ReadPolygon()
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Points) != 2 {
		t.Errorf("expected 2 points, got %d", len(got.Points))
	}

	_, err = strictReader(b).ReadPolygon()
	if err == nil {
		t.Error("strict reader accepted a lying point count")
	}
}

func TestReadPolygonWithFlags(t *testing.T) {
	b := svmtest.New().Compat(1, func(b *svmtest.Builder) {
		b.Poly(0, 0, 10, 0, 10, 10)
		b.Bool(true).Raw(0, 2, 1)
	})
	got, err := newReader(b).ReadPolygonWithFlags()
	if err != nil {
		t.Fatal(err)
	}
	want := Polygon{
		Points: []Point{{0, 0}, {10, 0}, {10, 10}},
		Flags:  []PolyFlag{FlagNormal, FlagControl, FlagSmooth},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected polygon (-want +got):\n%s", d)
	}
}

func TestReadPolygonWithShortFlags(t *testing.T) {
	b := svmtest.New().CompatSize(1, 100)
	b.Poly(0, 0, 10, 0, 10, 10)
	b.Bool(true).Raw(2)

	got, err := newReader(b).ReadPolygonWithFlags()
	if err != nil {
		t.Fatal(err)
	}
	want := []PolyFlag{FlagControl, FlagNormal, FlagNormal}
	if d := cmp.Diff(want, got.Flags); d != "" {
		t.Errorf("unexpected flags (-want +got):\n%s", d)
	}

	_, err = strictReader(b).ReadPolygonWithFlags()
	if err == nil {
		t.Error("strict reader accepted short flag data")
	}
}

func TestReadPolyPolygon(t *testing.T) {
	b := svmtest.New().U16(2).Poly(1, 1).Poly(2, 2, 3, 3)
	got, err := newReader(b).ReadPolyPolygon()
	if err != nil {
		t.Fatal(err)
	}
	want := PolyPolygon{
		{Points: []Point{{1, 1}}},
		{Points: []Point{{2, 2}, {3, 3}}},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected polypolygon (-want +got):\n%s", d)
	}
}

func TestMapMode(t *testing.T) {
	b := svmtest.New().Compat(1, func(b *svmtest.Builder) {
		b.U16(uint16(MapInch)).Pt(10, 20).I32(1).I32(2).I32(3).I32(1).Bool(false)
	})
	mm, err := newReader(b).ReadMapMode()
	if err != nil {
		t.Fatal(err)
	}
	want := MapMode{
		Unit:   MapInch,
		Origin: Point{10, 20},
		ScaleX: Fraction{1, 2},
		ScaleY: Fraction{3, 1},
	}
	if d := cmp.Diff(want, mm); d != "" {
		t.Errorf("unexpected map mode (-want +got):\n%s", d)
	}

	// The origin is added in logical units.  One unit in x is half an
	// inch, one unit in y is three inches.
	got := mm.Apply(Point{2, 1})
	wantX, wantY := (2+10)*36.0, (1+20)*216.0
	if math.Abs(got.X-wantX) > 1e-9 || math.Abs(got.Y-wantY) > 1e-9 {
		t.Errorf("wrong mapped point %v, want (%g,%g)", got, wantX, wantY)
	}
}

func TestPointsPerUnit(t *testing.T) {
	cases := []struct {
		unit MapUnit
		n    float64 // number of units per inch
	}{
		{Map100thMM, 2540},
		{Map10thMM, 254},
		{MapMM, 25.4},
		{MapCM, 2.54},
		{Map1000thInch, 1000},
		{Map100thInch, 100},
		{Map10thInch, 10},
		{MapInch, 1},
		{MapPoint, 72},
		{MapTwip, 1440},
		{MapPixel, PixelsPerInch},
	}
	for _, c := range cases {
		got := c.unit.PointsPerUnit() * c.n
		if math.Abs(got-72) > 1e-9 {
			t.Errorf("%s: %g units per inch give %g points", c.unit, c.n, got)
		}
	}
}

func TestMapModeBox(t *testing.T) {
	mm := DefaultMapMode
	mm.Unit = MapTwip
	box := mm.Box(Size{Width: 1440, Height: -720})
	want := rect.Rect{LLx: 0, LLy: -36, URx: 72, URy: 0}
	if d := cmp.Diff(want, box, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Errorf("unexpected box (-want +got):\n%s", d)
	}
}

func TestReadRegion(t *testing.T) {
	b := svmtest.New().Compat(2, func(b *svmtest.Builder) {
		b.U16(1).U16(uint16(RegionComplex))
		b.U16(bandHeader).I32(0).I32(10)
		b.U16(bandSeparation).I32(0).I32(5)
		b.U16(bandSeparation).I32(7).I32(9)
		b.U16(bandHeader).I32(11).I32(20)
		b.U16(bandSeparation).I32(1).I32(2)
		b.U16(bandEnd)
		b.Bool(true).U16(1).Poly(1, 2, 3, 4)
	})
	got, err := newReader(b).ReadRegion()
	if err != nil {
		t.Fatal(err)
	}
	want := &Region{
		Type: RegionComplex,
		Bands: []Band{
			{Top: 0, Bottom: 10, Separations: []int32{0, 5, 7, 9}},
			{Top: 11, Bottom: 20, Separations: []int32{1, 2}},
		},
		Poly: PolyPolygon{{Points: []Point{{1, 2}, {3, 4}}}},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected region (-want +got):\n%s", d)
	}
}

func TestReadRegionMalformed(t *testing.T) {
	cases := []func(b *svmtest.Builder){
		func(b *svmtest.Builder) { // wrong stream version
			b.U16(7).U16(uint16(RegionRectangle))
		},
		func(b *svmtest.Builder) { // separation before band header
			b.U16(1).U16(uint16(RegionRectangle))
			b.U16(bandSeparation).I32(0).I32(5)
		},
		func(b *svmtest.Builder) { // bottom above top
			b.U16(1).U16(uint16(RegionRectangle))
			b.U16(bandHeader).I32(10).I32(0)
		},
		func(b *svmtest.Builder) { // invalid entry
			b.U16(1).U16(uint16(RegionRectangle))
			b.U16(17)
		},
		func(b *svmtest.Builder) { // invalid type
			b.U16(1).U16(42)
		},
	}
	for i, body := range cases {
		b := svmtest.New().Compat(2, body).U16(0x1234)
		r := newReader(b)
		got, err := r.ReadRegion()
		if err != nil {
			t.Errorf("%d: %v", i, err)
			continue
		}
		if !got.IsNull() || got.Bands != nil {
			t.Errorf("%d: expected null region, got %v", i, got)
		}
		marker, _ := r.ReadUInt16()
		if marker != 0x1234 {
			t.Errorf("%d: record end not found", i)
		}

		_, err = strictReader(b).ReadRegion()
		if err == nil {
			t.Errorf("%d: strict reader accepted malformed region", i)
		}
	}
}

func TestReadGradient(t *testing.T) {
	b := svmtest.New().Compat(1, func(b *svmtest.Builder) {
		b.U16(uint16(GradientRadial))
		b.U16(1)
		b.U16(0x8000).U16(0xFF00).U16(0x8000).U16(0)
		for _, x := range []uint16{450, 10, 50, 60, 100, 80, 16} {
			b.U16(x)
		}
	})
	got, err := newReader(b).ReadGradient()
	if err != nil {
		t.Fatal(err)
	}
	want := Gradient{
		Style:          GradientRadial,
		StartColor:     Blue,
		EndColor:       RGB(0xFF, 0x80, 0),
		Angle:          450,
		Border:         10,
		OffsetX:        50,
		OffsetY:        60,
		StartIntensity: 100,
		EndIntensity:   80,
		Steps:          16,
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected gradient (-want +got):\n%s", d)
	}
}

func TestReadHatch(t *testing.T) {
	b := svmtest.New().Compat(1, func(b *svmtest.Builder) {
		b.U16(uint16(HatchTriple)).U16(2).I32(25).U16(900)
	})
	got, err := newReader(b).ReadHatch()
	if err != nil {
		t.Fatal(err)
	}
	want := Hatch{Style: HatchTriple, Color: Green, Distance: 25, Angle: 900}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func writeFont(b *svmtest.Builder, version uint16, family string, cs textenc.CharSet) {
	b.Compat(version, func(b *svmtest.Builder) {
		b.ByteString(family).ByteString("Bold")
		b.I32(0).I32(240)
		b.U16(uint16(cs)).U16(2).U16(1).U16(uint16(WeightBold))
		b.U16(1).U16(0).U16(uint16(ItalicNormal)).U16(0x0407).U16(5)
		b.I16(900).Bool(false).Bool(true).Bool(false).U8(1)
		if version >= 2 {
			b.U8(2).U16(0x0411).Bool(true).U16(3)
		}
		if version >= 3 {
			b.U16(4)
		}
	})
}

func TestReadFont(t *testing.T) {
	b := svmtest.New()
	writeFont(b, 3, "Gr\xfcn", textenc.MS1252)
	r := newReader(b)
	r.CharSet = textenc.ISO8859_1
	got, err := r.ReadFont()
	if err != nil {
		t.Fatal(err)
	}
	want := &Font{
		FamilyName:  "Grün",
		StyleName:   "Bold",
		Size:        Size{0, 240},
		CharSet:     textenc.MS1252,
		Family:      2,
		Pitch:       1,
		Weight:      WeightBold,
		Underline:   1,
		Italic:      ItalicNormal,
		Language:    0x0407,
		WidthType:   5,
		Orientation: 900,
		Outline:     true,
		Kerning:     1,
		Relief:      2,
		CJKLanguage: 0x0411,
		Vertical:    true,
		Emphasis:    3,
		Overline:    4,
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected font (-want +got):\n%s", d)
	}
}

func TestReadFontV1(t *testing.T) {
	b := svmtest.New()
	writeFont(b, 1, "Sans", textenc.UTF8)
	got, err := newReader(b).ReadFont()
	if err != nil {
		t.Fatal(err)
	}
	if got.FamilyName != "Sans" || got.CharSet != textenc.UTF8 {
		t.Errorf("wrong font %v", got)
	}
	if got.Vertical || got.Overline != 0 || got.CJKLanguage != 0 {
		t.Errorf("version 2 fields set for version 1 font")
	}
}

func TestReadGfxLink(t *testing.T) {
	b := svmtest.New().Compat(2, func(b *svmtest.Builder) {
		b.U16(uint16(LinkEPS)).U32(4).U32(77)
		b.I32(100).I32(200)
		b.MapMode(uint16(MapPoint), 0, 0)
	})
	b.Raw('%', '!', 'P', 'S')
	got, err := newReader(b).ReadGfxLink()
	if err != nil {
		t.Fatal(err)
	}
	if got.Type != LinkEPS || got.UserID != 77 || string(got.Data) != "%!PS" {
		t.Errorf("wrong gfx link %v", got)
	}
	if got.PrefSize != (Size{100, 200}) || got.PrefMapMode.Unit != MapPoint {
		t.Errorf("wrong preferred size or map mode")
	}
}

func TestReadGfxLinkClamp(t *testing.T) {
	b := svmtest.New().Compat(1, func(b *svmtest.Builder) {
		b.U16(uint16(LinkPNG)).U32(0xFFFFFFFF).U32(0)
	})
	b.Raw(1, 2, 3)
	got, err := newReader(b).ReadGfxLink()
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Data) != 3 {
		t.Errorf("expected 3 bytes of data, got %d", len(got.Data))
	}

	_, err = strictReader(b).ReadGfxLink()
	if err == nil {
		t.Error("strict reader accepted a lying data size")
	}
}

func TestLanguageTag(t *testing.T) {
	cases := []struct {
		lang LanguageType
		want language.Tag
	}{
		{0x0409, language.AmericanEnglish},
		{0x0809, language.BritishEnglish},
		{0x0407, language.MustParse("de-DE")},
		{0x0411, language.MustParse("ja-JP")},
		{0x0C07, language.MustParse("de-AT")},
		{0x4407, language.German}, // unknown sub-language
		{LangDontKnow, language.Und},
		{LangNone, language.Und},
		{LangSystem, language.Und},
		{0x03FE, language.Und},
	}
	for _, c := range cases {
		got := c.lang.Tag()
		if got != c.want {
			t.Errorf("%04x: got %s, want %s", uint16(c.lang), got, c.want)
		}
	}
}

func TestReadStrings(t *testing.T) {
	b := svmtest.New()
	b.ByteString("caf\xe9")
	b.U32(2).U16('h').U16(0x00E9)
	b.UTF16("a\U0001F600b")

	r := newReader(b)
	s1, err := r.ReadUniOrByteString(textenc.MS1252)
	if err != nil {
		t.Fatal(err)
	}
	s2, err := r.ReadUniOrByteString(textenc.Unicode)
	if err != nil {
		t.Fatal(err)
	}
	s3, err := r.ReadUnicodeString()
	if err != nil {
		t.Fatal(err)
	}
	got := []string{s1, s2, s3}
	want := []string{"café", "hé", "a\U0001F600b"}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected strings (-want +got):\n%s", d)
	}
	if n := UTF16Len(s3); n != 4 {
		t.Errorf("wrong UTF-16 length %d", n)
	}
}

func TestReadUnicodeStringShort(t *testing.T) {
	b := svmtest.New().U32(1000).U16('x')
	_, err := newReader(b).ReadUniOrByteString(textenc.Unicode)
	if err == nil {
		t.Error("missing error for truncated string")
	}
}

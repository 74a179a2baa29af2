// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package textatlas

import (
	"bytes"
	"fmt"
	"image"

	"github.com/go-text/typesetting/di"
	shapingfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/cuosd/command"
	"github.com/gogpu/cuosd/internal/cache"
)

const defaultAtlasWidth = 1024

// glyphEntry is one rasterized glyph's placement inside the atlas.
type glyphEntry struct {
	atlasX, atlasY int32
	w, h           int32
	advance        float32
}

// Builder shapes runs of text with HarfBuzz (via go-text/typesetting) and
// packs each distinct rasterized glyph into a growable shelf-packed atlas,
// caching rasterizations by rune so repeated glyphs (spaces, common
// letters) are rasterized once.
//
// Builder is not safe for concurrent use; callers needing concurrent text
// layout should use one Builder per goroutine.
type Builder struct {
	xface  xfont.Face
	shaper shaping.HarfbuzzShaper
	sface  *shapingfont.Face

	size float64

	glyphs *cache.Cache[rune, *glyphEntry]

	atlasWidth       int32
	data             []byte
	rowHeight        int32
	cursorX, cursorY int32
}

// New parses fontBytes (OpenType/TrueType) and returns a Builder that
// rasterizes glyphs at the given pixel size.
func New(fontBytes []byte, size float64) (*Builder, error) {
	parsed, err := opentype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("textatlas: parse font: %w", err)
	}
	xface, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("textatlas: create face: %w", err)
	}

	parsedShapingFace, err := shapingfont.ParseTTF(bytes.NewReader(fontBytes))
	if err != nil {
		return nil, fmt.Errorf("textatlas: parse shaping font: %w", err)
	}
	sface := shapingfont.NewFace(parsedShapingFace.Font)

	return &Builder{
		xface:      xface,
		sface:      sface,
		size:       size,
		glyphs:     cache.New[rune, *glyphEntry](2048),
		atlasWidth: defaultAtlasWidth,
		data:       make([]byte, defaultAtlasWidth), // one empty row to start
	}, nil
}

// Close releases the underlying rasterization face.
func (b *Builder) Close() error {
	return b.xface.Close()
}

// Atlas returns the current packed glyph bitmap, suitable for
// [github.com/gogpu/cuosd/command.Stream.Glyphs].
func (b *Builder) Atlas() command.Atlas {
	return command.Atlas{Data: b.data, AtlasRowWidth: b.atlasWidth}
}

// Shape lays out text with the pen starting at (0, 0) and returns one
// [command.TextLocation] per shaped glyph, packing any not-yet-seen glyph
// into the atlas as a side effect. ImageX is the pen's x offset for each
// glyph and ImageY is 0 for every glyph: bitmaps are top-aligned, not
// placed on a baseline.
func (b *Builder) Shape(text string) ([]command.TextLocation, error) {
	text = norm.NFC.String(text)
	runes := []rune(text)
	if len(runes) == 0 {
		return nil, nil
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      b.sface,
		Size:      fixed.I(int(b.size)),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	out := b.shaper.Shape(input)

	locs := make([]command.TextLocation, 0, len(out.Glyphs))
	var penX int32
	for _, g := range out.Glyphs {
		r := runes[g.TextIndex()]
		entry, err := b.glyphEntry(r)
		if err != nil {
			return nil, err
		}
		if entry.w > 0 && entry.h > 0 {
			locs = append(locs, command.TextLocation{
				ImageX: penX,
				ImageY: 0,
				TextX:  entry.atlasX,
				TextW:  entry.w,
				TextH:  entry.h,
			})
		}
		penX += int32(fixedToFloat(g.Advance))
	}
	return locs, nil
}

func (b *Builder) glyphEntry(r rune) (*glyphEntry, error) {
	if e, ok := b.glyphs.Get(r); ok {
		return e, nil
	}

	bounds, adv, ok := b.xface.GlyphBounds(r)
	if !ok || bounds.Min.X >= bounds.Max.X || bounds.Min.Y >= bounds.Max.Y {
		e := &glyphEntry{advance: float32(fixedToFloat(adv))}
		b.glyphs.Set(r, e)
		return e, nil
	}

	minX, minY := int(bounds.Min.X)>>6, int(bounds.Min.Y)>>6
	maxX, maxY := int(bounds.Max.X+63)>>6, int(bounds.Max.Y+63)>>6
	rect := image.Rect(0, 0, maxX-minX, maxY-minY)
	mask := image.NewAlpha(rect)

	drawer := &xfont.Drawer{
		Dst:  mask,
		Src:  image.White,
		Face: b.xface,
		Dot:  fixed.Point26_6{X: fixed.I(-minX), Y: fixed.I(-minY)},
	}
	drawer.DrawString(string(r))

	ax, ay := b.pack(rect.Dx(), rect.Dy())
	b.blit(mask, ax, ay)

	e := &glyphEntry{
		atlasX: ax, atlasY: ay,
		w: int32(rect.Dx()), h: int32(rect.Dy()),
		advance: float32(fixedToFloat(adv)),
	}
	b.glyphs.Set(r, e)
	return e, nil
}

// pack reserves a w x h cell in the shelf packer, growing the atlas
// vertically (never horizontally) as needed.
func (b *Builder) pack(w, h int) (x, y int32) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	if b.cursorX+int32(w) > b.atlasWidth {
		b.cursorX = 0
		b.cursorY += b.rowHeight
		b.rowHeight = 0
	}
	needRows := b.cursorY + int32(h)
	b.growTo(needRows)

	x, y = b.cursorX, b.cursorY
	b.cursorX += int32(w)
	if int32(h) > b.rowHeight {
		b.rowHeight = int32(h)
	}
	return x, y
}

func (b *Builder) growTo(rows int32) {
	have := int32(len(b.data)) / b.atlasWidth
	if rows <= have {
		return
	}
	grown := make([]byte, rows*b.atlasWidth)
	copy(grown, b.data)
	b.data = grown
}

func (b *Builder) blit(mask *image.Alpha, ax, ay int32) {
	bounds := mask.Bounds()
	for row := 0; row < bounds.Dy(); row++ {
		srcOff := mask.PixOffset(bounds.Min.X, bounds.Min.Y+row)
		dstOff := (ay+int32(row))*b.atlasWidth + ax
		copy(b.data[dstOff:dstOff+int32(bounds.Dx())], mask.Pix[srcOff:srcOff+bounds.Dx()])
	}
}

func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

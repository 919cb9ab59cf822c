package glyph

import (
	"github.com/nyan233/karte/pkg/container"
)

type Color struct {
	R, G, B, A uint8
}

// Glyph is one renderable cell: a codepage index, a pixel position and
// its two colours. Drawing it is someone else's job.
type Glyph struct {
	Index int32
	X, Y  float64
	FG    Color
	BG    Color
}

// Buffer holds the glyphs of a panel or canvas in insertion order.
type Buffer struct {
	glyphs *container.Vector[*Glyph]
}

func NewBuffer() *Buffer {
	return &Buffer{
		glyphs: container.NewVector[*Glyph](),
	}
}

func (b *Buffer) Add(g *Glyph) {
	b.glyphs.Push(g)
}

func (b *Buffer) At(index int) *Glyph {
	return b.glyphs.At(index)
}

func (b *Buffer) Len() int {
	return b.glyphs.Len()
}

// Remove drops the glyph at index, later glyphs keep their relative
// order.
func (b *Buffer) Remove(index int) bool {
	return b.glyphs.Delete(index)
}

func (b *Buffer) Clear() {
	b.glyphs.Reset()
}

func (b *Buffer) Range(fn func(g *Glyph) (next bool)) {
	b.glyphs.Range(func(_ int, g *Glyph) bool {
		return fn(g)
	})
}

//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// GridPainter keeps a single RGBA image of a bordered grid up to date.
type GridPainter struct {
	w, h    int
	palette Palette
	img     *ebiten.Image
	buf     []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int, p Palette) *GridPainter {
	fw, fh := FrameSize(w, h)
	return &GridPainter{w: w, h: h, palette: p, img: ebiten.NewImage(fw, fh), buf: make([]byte, 4*fw*fh)}
}

// Blit uploads cells into the painter image and draws it scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillFrameRGBA(gp.buf, cells, gp.w, gp.h, gp.palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the pixel dimensions of the framed image.
func (gp *GridPainter) Size() (int, int) { return FrameSize(gp.w, gp.h) }

// Package render rasterises a bordered grid into RGBA pixels for the GUI
// front-end.
package render

import "image/color"

// Palette holds the three cell-class colours.
type Palette struct {
	Border color.Color
	Alive  color.Color
	Dead   color.Color
}

// DefaultPalette mirrors the terminal colours: grey border, blue live cells,
// cyan dead cells.
func DefaultPalette() Palette {
	return Palette{
		Border: color.RGBA{R: 128, G: 128, B: 128, A: 255},
		Alive:  color.RGBA{R: 0, G: 0, B: 170, A: 255},
		Dead:   color.RGBA{R: 0, G: 170, B: 170, A: 255},
	}
}

// FrameSize returns the pixel dimensions of a w*h grid with a one-pixel
// border on every side.
func FrameSize(w, h int) (int, int) { return w + 2, h + 2 }

// fillFrameRGBA converts binary cell data (0/1) of a w*h grid into RGBA
// pixels in buf, framed by a border. buf must hold 4*(w+2)*(h+2) bytes.
func fillFrameRGBA(buf []byte, cells []uint8, w, h int, p Palette) {
	fw, fh := FrameSize(w, h)
	border := rgba(p.Border)
	alive := rgba(p.Alive)
	dead := rgba(p.Dead)
	for y := 0; y < fh; y++ {
		for x := 0; x < fw; x++ {
			px := border
			if x > 0 && x <= w && y > 0 && y <= h {
				px = dead
				if cells[(y-1)*w+(x-1)] != 0 {
					px = alive
				}
			}
			copy(buf[(y*fw+x)*4:], px[:])
		}
	}
}

func rgba(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// Package render turns display codes into pixels.
package render

import (
	"image"
	"image/color"
)

// FillPalette converts cell codes into RGBA pixels in buf using a palette.
// Codes past the end of the palette take its last color. When the palette is
// empty the buffer is cleared to transparent black.
func FillPalette(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Image paints a w*h grid of codes into a new RGBA image, each cell drawn as
// a scale*scale block.
func Image(cells []uint8, palette []color.RGBA, w, h, scale int) *image.RGBA {
	if scale <= 0 {
		scale = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	if len(cells) != w*h {
		return img
	}
	if scale == 1 {
		FillPalette(img.Pix, cells, palette)
		return img
	}
	row := make([]byte, 4*w)
	scaled := make([]byte, 4*w*scale)
	for y := 0; y < h; y++ {
		FillPalette(row, cells[y*w:(y+1)*w], palette)
		for x := 0; x < w; x++ {
			px := row[4*x : 4*x+4]
			for k := 0; k < scale; k++ {
				copy(scaled[4*(x*scale+k):], px)
			}
		}
		for k := 0; k < scale; k++ {
			start := (y*scale + k) * img.Stride
			copy(img.Pix[start:start+len(scaled)], scaled)
		}
	}
	return img
}

// Grayscale returns a palette of n evenly spaced grays for sims that do not
// supply their own colors.
func Grayscale(n int) []color.RGBA {
	if n < 2 {
		n = 2
	}
	out := make([]color.RGBA, n)
	for i := range out {
		v := uint8(i * 255 / (n - 1))
		out[i] = color.RGBA{R: v, G: v, B: v, A: 255}
	}
	return out
}

package tui

import "image"

// renderFrame converts a presented frame into braille lines. Every pixel
// with non-zero opacity becomes a raised dot.
func renderFrame(frame *image.RGBA) []string {
	if frame == nil {
		return nil
	}
	w, h := frame.Rect.Dx(), frame.Rect.Dy()
	if w <= 0 || h <= 0 {
		return nil
	}
	br := newBrailleBuf((w+1)/2, (h+3)/4)
	for y := 0; y < h; y++ {
		row := frame.Pix[y*frame.Stride : y*frame.Stride+w*4]
		for x := 0; x < w; x++ {
			if row[x*4+3] != 0 {
				br.setPixel(x, y)
			}
		}
	}
	return br.toLines()
}

// microArea returns the braille micro-pixel area of a cell region.
func microArea(cols, rows int) (int, int) {
	return max(0, cols) * 2, max(0, rows) * 4
}

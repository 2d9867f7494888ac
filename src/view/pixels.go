package view

import "image/color"

//Palette of the pixel renderer
var (
	GridColor  = color.RGBA{0xCC, 0xCC, 0xCC, 0xFF}
	DeadColor  = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	AliveColor = color.RGBA{0x00, 0x00, 0x00, 0xFF}
)

//CellSize is the side of one cell in pixels, cells are separated by 1px grid lines
const CellSize = 5

//FrameSize returns the pixel size of a frame for a width x height field
func FrameSize(width int, height int) (int, int) {
	return (CellSize+1)*width + 1, (CellSize+1)*height + 1
}

//fillFrame converts the cell buffer into RGBA pixels in buf
//buf must hold 4 bytes for every pixel of FrameSize(width, height)
func fillFrame(buf []byte, cells []byte, width int, height int) {
	fw, _ := FrameSize(width, height)
	for i := 0; i < len(buf); i += 4 {
		putRGBA(buf[i:], GridColor)
	}
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			c := DeadColor
			if cells[row*width+col] != 0 {
				c = AliveColor
			}
			x0 := col*(CellSize+1) + 1
			y0 := row*(CellSize+1) + 1
			for y := y0; y < y0+CellSize; y++ {
				base := (y*fw + x0) * 4
				for x := 0; x < CellSize; x++ {
					putRGBA(buf[base+x*4:], c)
				}
			}
		}
	}
}

func putRGBA(p []byte, c color.RGBA) {
	p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
}

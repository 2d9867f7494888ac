package universe

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDimension = errors.New("invalid dimension")
	ErrInvalidPattern   = errors.New("invalid pattern")
)

//Grid is the flat row-major cell storage of one generation
type Grid struct {
	width  int
	height int
	cells  []byte
}

//NewGrid allocates an all-dead grid
//height and width must both be positive
func NewGrid(height int, width int) (*Grid, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: height %d, width %d", ErrInvalidDimension, height, width)
	}
	return &Grid{width: width, height: height, cells: make([]byte, width*height)}, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

//Index returns the position of (row, col) inside the cell buffer
func (g *Grid) Index(row int, col int) int {
	return row*g.width + col
}

//At returns the cell state at (row, col)
func (g *Grid) At(row int, col int) Cell {
	return Cell(g.cells[g.Index(row, col)])
}

func (g *Grid) set(row int, col int, c Cell) {
	g.cells[g.Index(row, col)] = byte(c)
}

//NeighborCount counts the live cells among the 8 positions around (row, col)
//the field is a torus: the row above row 0 is the last row, the column left of column 0 is the last column
func (g *Grid) NeighborCount(row int, col int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		nr := (row + dr + g.height) % g.height
		base := nr * g.width
		for dc := -1; dc <= 1; dc++ {
			//skip my position
			if dr == 0 && dc == 0 {
				continue
			}
			nc := (col + dc + g.width) % g.width
			count += int(g.cells[base+nc])
		}
	}
	return count
}

//LiveCells calculates the count of live cells
func (g *Grid) LiveCells() int {
	n := 0
	for _, c := range g.cells {
		n += int(c)
	}
	return n
}

//Bytes exposes the backing buffer, one byte per cell
func (g *Grid) Bytes() []byte { return g.cells }

package universe

import (
	"strings"
)

/*
	Universe is the Life field with two equally sized buffers.
	Tick calculates the next generation into the spare buffer and then swaps the buffers,
	so the current generation is always complete and nothing is copied.
*/
type Universe struct {
	cur        *Grid
	next       *Grid
	engine     TransitionEngine
	generation int
	liveCells  int
	changed    bool
}

//New creates the universe with the deterministic initial generation
//described by opts (DefaultSeed when no option selects a pattern)
func New(height int, width int, opts ...Option) (*Universe, error) {
	cur, err := NewGrid(height, width)
	if err != nil {
		return nil, err
	}
	o := options{seed: DefaultSeed}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.populate(cur); err != nil {
		return nil, err
	}
	next, _ := NewGrid(height, width)
	return &Universe{
		cur:       cur,
		next:      next,
		liveCells: cur.LiveCells(),
	}, nil
}

//Tick advances the universe by exactly one generation
func (u *Universe) Tick() {
	u.liveCells, u.changed = u.engine.Next(u.cur, u.next)
	u.cur, u.next = u.next, u.cur
	u.generation++
}

//Cells returns the current generation without copying: one byte per cell, row-major,
//0 is a dead cell and 1 is an alive one.
//The slice is borrowed. It is valid only until the next Tick, which reuses
//its memory for the generation after; callers must fetch it again after every Tick
//and must not modify it.
func (u *Universe) Cells() []byte {
	return u.cur.cells
}

func (u *Universe) Width() int  { return u.cur.width }
func (u *Universe) Height() int { return u.cur.height }

//Cell returns the state of the cell at (row, col) in the current generation
func (u *Universe) Cell(row int, col int) Cell {
	return u.cur.At(row, col)
}

//Generation returns the number of ticks done
func (u *Universe) Generation() int { return u.generation }

//LiveCells returns the count of live cells in the current generation
func (u *Universe) LiveCells() int { return u.liveCells }

//Changed reports whether the last Tick changed any cell
//it is true before the first Tick
func (u *Universe) Changed() bool { return u.generation == 0 || u.changed }

//String renders the current generation, one line per row
func (u *Universe) String() string {
	var b strings.Builder
	b.Grow((u.cur.width*len("◼") + 1) * u.cur.height)
	for row := 0; row < u.cur.height; row++ {
		for col := 0; col < u.cur.width; col++ {
			b.WriteString(u.cur.At(row, col).String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

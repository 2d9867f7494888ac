package universe

import (
	"fmt"
	"math/rand/v2"
)

//SeedFunc decides the initial state of the cell with the given buffer index
//the result must depend only on its arguments
type SeedFunc func(index int, height int, width int) Cell

//DefaultSeed makes alive every cell whose index is divisible by 2 or 7
func DefaultSeed(index int, _ int, _ int) Cell {
	if index%2 == 0 || index%7 == 0 {
		return Alive
	}
	return Dead
}

//EmptySeed leaves the field dead
func EmptySeed(int, int, int) Cell { return Dead }

//RandomSeed fills the field with pseudo-random data
//the same seed always produces the same field for the same dimensions
func RandomSeed(seed int64) SeedFunc {
	return func(index int, _ int, _ int) Cell {
		return Cell(rand.NewPCG(uint64(seed), uint64(index)).Uint64() >> 63)
	}
}

type options struct {
	seed      SeedFunc
	templates []Template
	cells     []byte
}

//Option configures the initial generation of a Universe
type Option func(o *options)

//WithSeed selects the seeding function, DefaultSeed is used otherwise
func WithSeed(f SeedFunc) Option {
	return func(o *options) {
		if f != nil {
			o.seed = f
		}
	}
}

//WithTemplate settles the template's cells on top of the seeded field
func WithTemplate(t Template) Option {
	return func(o *options) {
		o.templates = append(o.templates, t)
	}
}

//WithCells uses a copy of cells as the initial generation instead of a seed
//any non-zero byte is an alive cell
func WithCells(cells []byte) Option {
	return func(o *options) {
		o.cells = cells
	}
}

//populate fills g according to the options
func (o *options) populate(g *Grid) error {
	if o.cells != nil {
		if len(o.cells) != len(g.cells) {
			return fmt.Errorf("%w: %d cells for a %dx%d field", ErrInvalidPattern, len(o.cells), g.height, g.width)
		}
		for i, c := range o.cells {
			if c != 0 {
				g.cells[i] = byte(Alive)
			}
		}
	} else {
		for i := range g.cells {
			g.cells[i] = byte(o.seed(i, g.height, g.width))
		}
	}
	for _, t := range o.templates {
		t.settle(g)
	}
	return nil
}

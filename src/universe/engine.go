package universe

//TransitionEngine calculates the next generation of a grid
//it never writes to the grid it reads from, so every cell of the new generation
//depends only on the settled previous one
type TransitionEngine struct{}

//Next writes the generation following cur into dst
//dst must have the same dimensions as cur and must not share its buffer
//returns the count of live cells in dst and whether any cell differs from cur
func (TransitionEngine) Next(cur *Grid, dst *Grid) (liveCells int, changed bool) {
	for row := 0; row < cur.height; row++ {
		for col := 0; col < cur.width; col++ {
			idx := cur.Index(row, col)
			state := Cell(cur.cells[idx])
			next := NextState(state, cur.NeighborCount(row, col))
			dst.cells[idx] = byte(next)
			if next == Alive {
				liveCells++
			}
			changed = changed || next != state
		}
	}
	return
}

//NextState applies the Life rule to one cell
func NextState(c Cell, liveNeighbours int) Cell {
	switch {
	case c == Alive && liveNeighbours < 2:
		//underpopulation
		return Dead
	case c == Alive && (liveNeighbours == 2 || liveNeighbours == 3):
		return Alive
	case c == Alive && liveNeighbours > 3:
		//overcrowding
		return Dead
	case c == Dead && liveNeighbours == 3:
		return Alive
	}
	return c
}

package universe

import "testing"

func TestNextState(t *testing.T) {
	cases := []struct {
		name       string
		cell       Cell
		neighbours int
		expected   Cell
	}{
		{"underpopulation 0", Alive, 0, Dead},
		{"underpopulation 1", Alive, 1, Dead},
		{"stable 2", Alive, 2, Alive},
		{"stable 3", Alive, 3, Alive},
		{"overcrowding 4", Alive, 4, Dead},
		{"overcrowding 8", Alive, 8, Dead},
		{"birth", Dead, 3, Alive},
		{"dead 2", Dead, 2, Dead},
		{"dead 4", Dead, 4, Dead},
		{"dead 0", Dead, 0, Dead},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := NextState(c.cell, c.neighbours); got != c.expected {
				t.Fatalf("NextState(%v, %d) = %v, expected %v", c.cell, c.neighbours, got, c.expected)
			}
		})
	}
}

func TestEngineReadsOnlyPreviousGeneration(t *testing.T) {
	cur, _ := NewGrid(5, 5)
	dst, _ := NewGrid(5, 5)
	// horizontal blinker: processed in place the middle row would die out
	cur.set(2, 1, Alive)
	cur.set(2, 2, Alive)
	cur.set(2, 3, Alive)

	live, changed := TransitionEngine{}.Next(cur, dst)
	if live != 3 || !changed {
		t.Fatalf("Next() = (%d, %v), expected (3, true)", live, changed)
	}
	for _, p := range [][2]int{{1, 2}, {2, 2}, {3, 2}} {
		if dst.At(p[0], p[1]) != Alive {
			t.Fatalf("cell %v expected alive", p)
		}
	}
	if cur.LiveCells() != 3 || cur.At(2, 1) != Alive {
		t.Fatalf("source grid was modified")
	}
}

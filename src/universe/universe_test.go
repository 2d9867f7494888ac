package universe

import (
	"bytes"
	"errors"
	"testing"
)

func newUniverse(t *testing.T, height int, width int, alive ...[2]int) *Universe {
	t.Helper()
	u, err := New(height, width, WithSeed(EmptySeed), WithTemplate(Template{Name: "test", Coordinates: alive}))
	if err != nil {
		t.Fatalf("New(%d, %d): %v", height, width, err)
	}
	return u
}

func expectAlive(t *testing.T, u *Universe, alive ...[2]int) {
	t.Helper()
	expects := make(map[[2]int]bool, len(alive))
	for _, p := range alive {
		expects[p] = true
	}
	for row := 0; row < u.Height(); row++ {
		for col := 0; col < u.Width(); col++ {
			isAlive := u.Cell(row, col) == Alive
			if isAlive != expects[[2]int{row, col}] {
				t.Fatalf("generation %d: cell (%d,%d) alive=%v, expected %v\n%s",
					u.Generation(), row, col, isAlive, expects[[2]int{row, col}], u)
			}
		}
	}
}

func TestNewInvalidDimension(t *testing.T) {
	for _, d := range [][2]int{{0, 10}, {10, 0}, {-2, 10}, {10, -1}} {
		u, err := New(d[0], d[1])
		if !errors.Is(err, ErrInvalidDimension) {
			t.Fatalf("New(%d, %d) error = %v, expected ErrInvalidDimension", d[0], d[1], err)
		}
		if u != nil {
			t.Fatalf("New(%d, %d) returned a universe", d[0], d[1])
		}
	}
}

func TestTickPreservesDimensions(t *testing.T) {
	u, err := New(13, 21)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 50; i++ {
		u.Tick()
		if u.Height() != 13 || u.Width() != 21 || len(u.Cells()) != 13*21 {
			t.Fatalf("tick %d: dimensions %dx%d, %d cells", i, u.Height(), u.Width(), len(u.Cells()))
		}
	}
	if u.Generation() != 50 {
		t.Fatalf("Generation() = %d, expected 50", u.Generation())
	}
}

func TestDeadUniverseStaysDead(t *testing.T) {
	u := newUniverse(t, 8, 8)
	for i := 0; i < 10; i++ {
		u.Tick()
		expectAlive(t, u)
	}
	if u.LiveCells() != 0 || u.Changed() {
		t.Fatalf("LiveCells() = %d, Changed() = %v", u.LiveCells(), u.Changed())
	}
}

func TestIsolatedCellDies(t *testing.T) {
	u := newUniverse(t, 6, 6, [2]int{3, 3})
	u.Tick()
	expectAlive(t, u)
}

func TestBlockIsStillLife(t *testing.T) {
	block := [][2]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}}
	for _, size := range []int{4, 6} {
		u := newUniverse(t, size, size, block...)
		for i := 0; i < 5; i++ {
			u.Tick()
			expectAlive(t, u, block...)
		}
		if u.Changed() {
			t.Fatalf("%dx%d: block reported a change", size, size)
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	tmpl, err := TemplateByName("blinker")
	if err != nil {
		t.Fatal(err)
	}
	u, err := New(5, 5, WithSeed(EmptySeed), WithTemplate(tmpl))
	if err != nil {
		t.Fatal(err)
	}
	u.Tick()
	expectAlive(t, u, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
	u.Tick()
	expectAlive(t, u, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})
}

func TestGliderCrossesEdges(t *testing.T) {
	tmpl, err := TemplateByName("glider")
	if err != nil {
		t.Fatal(err)
	}
	const size = 8
	u, err := New(size, size, WithSeed(EmptySeed), WithTemplate(tmpl))
	if err != nil {
		t.Fatal(err)
	}
	// after size*4 generations the glider is back where it started
	for shift := 1; shift <= size; shift++ {
		for i := 0; i < 4; i++ {
			u.Tick()
		}
		moved := make([][2]int, 0, len(tmpl.Coordinates))
		for _, p := range tmpl.Coordinates {
			moved = append(moved, [2]int{(p[0] + shift) % size, (p[1] + shift) % size})
		}
		expectAlive(t, u, moved...)
	}
}

func TestWraparoundNeighbour(t *testing.T) {
	// (0,0) with a single neighbour across the corner dies of underpopulation,
	// but a third cell across the edge makes (0,0) survive and births a neighbour
	u := newUniverse(t, 6, 6, [2]int{0, 0}, [2]int{5, 5})
	if n := u.cur.NeighborCount(0, 0); n != 1 {
		t.Fatalf("NeighborCount(0, 0) = %d, expected 1", n)
	}
	u = newUniverse(t, 6, 6, [2]int{0, 0}, [2]int{5, 5}, [2]int{0, 5})
	u.Tick()
	if u.Cell(0, 0) != Alive {
		t.Fatalf("cell (0,0) expected to survive with wrapped neighbours\n%s", u)
	}
	if u.Cell(5, 0) != Alive {
		t.Fatalf("cell (5,0) expected to be born from wrapped neighbours\n%s", u)
	}
}

func TestCellsStableBetweenTicks(t *testing.T) {
	u, err := New(10, 12)
	if err != nil {
		t.Fatal(err)
	}
	a := append([]byte(nil), u.Cells()...)
	b := u.Cells()
	if !bytes.Equal(a, b) {
		t.Fatalf("Cells() changed without a tick")
	}
	if &u.Cells()[0] != &b[0] {
		t.Fatalf("Cells() returned a copy")
	}
	u.Tick()
	if &u.Cells()[0] == &b[0] {
		t.Fatalf("Cells() after Tick still points to the previous generation")
	}
}

func TestDefaultSeedDeterministic(t *testing.T) {
	a, _ := New(9, 14)
	b, _ := New(9, 14)
	if !bytes.Equal(a.Cells(), b.Cells()) {
		t.Fatalf("two universes with the same dimensions differ")
	}
	for i, c := range a.Cells() {
		expected := byte(0)
		if i%2 == 0 || i%7 == 0 {
			expected = 1
		}
		if c != expected {
			t.Fatalf("cell %d = %d, expected %d", i, c, expected)
		}
	}
}

func TestRandomSeedDeterministic(t *testing.T) {
	a, _ := New(10, 10, WithSeed(RandomSeed(42)))
	b, _ := New(10, 10, WithSeed(RandomSeed(42)))
	c, _ := New(10, 10, WithSeed(RandomSeed(43)))
	if !bytes.Equal(a.Cells(), b.Cells()) {
		t.Fatalf("same seed produced different fields")
	}
	if bytes.Equal(a.Cells(), c.Cells()) {
		t.Fatalf("different seeds produced the same field")
	}
	for i, v := range a.Cells() {
		if v > 1 {
			t.Fatalf("cell %d = %d", i, v)
		}
	}
}

func TestWithCells(t *testing.T) {
	u, err := New(2, 2, WithCells([]byte{1, 0, 0, 7}))
	if err != nil {
		t.Fatal(err)
	}
	if got := u.String(); got != "◼◻\n◻◼\n" {
		t.Fatalf("String() = %q", got)
	}
	if u.LiveCells() != 2 {
		t.Fatalf("LiveCells() = %d, expected 2", u.LiveCells())
	}

	_, err = New(2, 2, WithCells([]byte{1, 0, 0}))
	if !errors.Is(err, ErrInvalidPattern) {
		t.Fatalf("error = %v, expected ErrInvalidPattern", err)
	}
}

func TestTemplateOutsideFieldIgnored(t *testing.T) {
	u := newUniverse(t, 3, 3, [2]int{1, 1}, [2]int{3, 0}, [2]int{0, 9}, [2]int{-1, 0})
	expectAlive(t, u, [2]int{1, 1})
}

func TestTemplateByName(t *testing.T) {
	for _, name := range TemplateNames() {
		if _, err := TemplateByName(name); err != nil {
			t.Fatalf("TemplateByName(%q): %v", name, err)
		}
	}
	if _, err := TemplateByName("nope"); !errors.Is(err, ErrUnknownTemplate) {
		t.Fatalf("error = %v, expected ErrUnknownTemplate", err)
	}
}

package universe

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownTemplate = errors.New("unknown template")

//Template represent the seeding template which can used to settle the universe with predefined data
type Template struct {
	Name        string   //template name
	Descr       string   //template descr
	Coordinates [][2]int //array of {row, col} coordinates
}

var templates = map[string]Template{
	"block": {"block", "2x2 still life", [][2]int{
		{1, 1}, {1, 2},
		{2, 1}, {2, 2},
	}},
	"blinker": {"blinker", "period 2 oscillator", [][2]int{
		{2, 1}, {2, 2}, {2, 3},
	}},
	"glider": {"glider", "moves one cell diagonally every 4 steps", [][2]int{
		{0, 1},
		{1, 2},
		{2, 0}, {2, 1}, {2, 2},
	}},
	"sample": {"sample", "the test sample with 3 stable patterns", [][2]int{
		{1, 1}, {2, 1},
		{1, 2}, {2, 2},
		{3, 3},
		{2, 4},
		{3, 4},
		{3, 5},
	}},
}

//TemplateByName looks up one of the built-in templates
func TemplateByName(name string) (Template, error) {
	t, ok := templates[name]
	if !ok {
		return Template{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}
	return t, nil
}

//TemplateNames returns the sorted names of the built-in templates
func TemplateNames() []string {
	names := make([]string, 0, len(templates))
	for k := range templates {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

//settle places alive cells at the template's coordinates
//coordinates outside the field are skipped
func (t Template) settle(g *Grid) {
	for _, v := range t.Coordinates {
		row, col := v[0], v[1]
		if row < 0 || col < 0 || row >= g.height || col >= g.width {
			continue
		}
		g.set(row, col, Alive)
	}
}

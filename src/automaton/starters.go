package automaton

import (
	"math/rand"
	"sort"

	"github.com/pkg/errors"
)

//Template represents a seeding pattern which can be used to settle a grid
//with predefined data
type Template struct {
	Name        string
	Descr       string
	Coordinates [][2]int //array of [row,col] coordinates
}

var templates = map[string]Template{
	"blinker": {
		Name:        "blinker",
		Descr:       "period-2 oscillator",
		Coordinates: [][2]int{{0, 0}, {0, 1}, {0, 2}},
	},
	"glider": {
		Name:        "glider",
		Descr:       "the classic diagonal traveller",
		Coordinates: [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}},
	},
	"pulsar": {
		Name:  "pulsar",
		Descr: "period-3 oscillator in a 13x13 box",
		Coordinates: [][2]int{
			{0, 2}, {0, 3}, {0, 4}, {0, 8}, {0, 9}, {0, 10},
			{2, 0}, {2, 5}, {2, 7}, {2, 12},
			{3, 0}, {3, 5}, {3, 7}, {3, 12},
			{4, 0}, {4, 5}, {4, 7}, {4, 12},
			{5, 2}, {5, 3}, {5, 4}, {5, 8}, {5, 9}, {5, 10},
			{7, 2}, {7, 3}, {7, 4}, {7, 8}, {7, 9}, {7, 10},
			{8, 0}, {8, 5}, {8, 7}, {8, 12},
			{9, 0}, {9, 5}, {9, 7}, {9, 12},
			{10, 0}, {10, 5}, {10, 7}, {10, 12},
			{12, 2}, {12, 3}, {12, 4}, {12, 8}, {12, 9}, {12, 10},
		},
	},
}

//TemplateNames lists the built-in seeding templates
func TemplateNames() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

//RandomGrid creates a grid where each cell is alive with probability pLife
func RandomGrid(height int, width int, pLife float64, rng *rand.Rand) (*Grid, error) {
	if height < 1 || width < 1 {
		return nil, errors.Wrapf(ErrInvalidGrid, "dimensions %dx%d", height, width)
	}
	if pLife < 0 || pLife > 1 {
		return nil, errors.Wrapf(ErrInvalidArgument, "life probability %v outside [0,1]", pLife)
	}
	g := newEmptyGrid(height, width)
	for i := range g.cells {
		g.cells[i] = Cell(rng.Float64() < pLife)
	}
	return g, nil
}

//GridFromCoordinates creates a grid of the given dimensions with the listed
//[row,col] cells alive and everything else dead
func GridFromCoordinates(height int, width int, coords [][2]int) (*Grid, error) {
	if height < 1 || width < 1 {
		return nil, errors.Wrapf(ErrInvalidGrid, "dimensions %dx%d", height, width)
	}
	g := newEmptyGrid(height, width)
	for _, rc := range coords {
		if rc[0] < 0 || rc[0] >= height || rc[1] < 0 || rc[1] >= width {
			return nil, errors.Wrapf(ErrInvalidGrid, "coordinate (%d,%d) outside %dx%d", rc[0], rc[1], height, width)
		}
		g.cells[rc[0]*width+rc[1]] = true
	}
	return g, nil
}

//TemplateGrid settles the named template into a grid of the given dimensions,
//with the template's top-left corner placed at row, col
func TemplateGrid(height int, width int, name string, row int, col int) (*Grid, error) {
	tmpl, ok := templates[name]
	if !ok {
		return nil, errors.Wrapf(ErrInvalidArgument, "unknown template %q", name)
	}
	coords := make([][2]int, len(tmpl.Coordinates))
	for i, rc := range tmpl.Coordinates {
		coords[i] = [2]int{rc[0] + row, rc[1] + col}
	}
	return GridFromCoordinates(height, width, coords)
}

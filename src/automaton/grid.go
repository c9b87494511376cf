package automaton

import (
	"bytes"
	"strconv"

	"github.com/pkg/errors"
)

type Cell bool

//ErrInvalidGrid is returned when initial cells do not form a usable grid
var ErrInvalidGrid = errors.New("invalid grid")

//Grid is one generation of cell states
//it is never mutated after creation: the engine builds a fresh Grid per
//generation, so sinks may keep references to earlier generations safely
type Grid struct {
	height int
	width  int
	cells  []Cell //row-major, single backing buffer
}

//NewGrid creates a Grid from user-supplied rows
//all rows must have the same non-zero length and there must be at least one row
func NewGrid(rows [][]bool) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.Wrap(ErrInvalidGrid, "grid must have at least one row and one column")
	}
	width := len(rows[0])
	g := newEmptyGrid(len(rows), width)
	for r, row := range rows {
		if len(row) != width {
			return nil, errors.Wrapf(ErrInvalidGrid, "row %d has %d cells, want %d", r, len(row), width)
		}
		for c, alive := range row {
			g.cells[r*width+c] = Cell(alive)
		}
	}
	return g, nil
}

//newEmptyGrid allocates an all-dead grid with the given dimensions
func newEmptyGrid(height int, width int) *Grid {
	return &Grid{
		height: height,
		width:  width,
		cells:  make([]Cell, height*width),
	}
}

//Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

//Width returns the number of columns
func (g *Grid) Width() int {
	return g.width
}

//At returns the state of the cell at row, col
//coordinates must be inside [0,height)x[0,width); anything else is a
//programming error and panics on the bounds check
func (g *Grid) At(row int, col int) bool {
	if col < 0 || col >= g.width {
		panic("automaton: grid column index out of range")
	}
	return bool(g.cells[row*g.width+col])
}

//Map builds a new Grid of the same dimensions where each cell is f(row, col)
//f sees only the receiver, so the transform is simultaneous across the grid
func (g *Grid) Map(f func(row int, col int) bool) *Grid {
	next := newEmptyGrid(g.height, g.width)
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			next.cells[r*g.width+c] = Cell(f(r, c))
		}
	}
	return next
}

//LiveCells calculates the count of live cells
func (g *Grid) LiveCells() int {
	live := 0
	for _, e := range g.cells {
		if bool(e) {
			live++
		}
	}
	return live
}

//Equal reports whether both grids have identical dimensions and cells
func (g *Grid) Equal(o *Grid) bool {
	if g.height != o.height || g.width != o.width {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

//String renders the grid as rows of space-separated 0/1 values
func (g *Grid) String() string {
	var b bytes.Buffer
	for r := 0; r < g.height; r++ {
		if r != 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < g.width; c++ {
			if c != 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(boolToInt(g.At(r, c))))
		}
	}
	return b.String()
}

func boolToInt(alive bool) int {
	if alive {
		return 1
	}
	return 0
}

package automaton

import (
	"github.com/pkg/errors"
)

//ErrInvalidArgument is returned for malformed run parameters,
//like an unknown boundary token or a negative step count
var ErrInvalidArgument = errors.New("invalid argument")

//Boundary selects the topology used when counting a cell's neighbours
type Boundary int

const (
	//Periodic wraps both axes, so every cell has exactly 8 logical neighbours
	Periodic Boundary = iota
	//Solid treats everything outside the grid as permanently dead
	Solid
)

const (
	boundaryPeriodicToken = "periodic"
	boundarySolidToken    = "solid"
)

//ParseBoundary maps a configuration token to a Boundary
func ParseBoundary(token string) (Boundary, error) {
	switch token {
	case boundaryPeriodicToken:
		return Periodic, nil
	case boundarySolidToken:
		return Solid, nil
	}
	return 0, errors.Wrapf(ErrInvalidArgument, "unknown boundary %q, want %q or %q",
		token, boundaryPeriodicToken, boundarySolidToken)
}

func (b Boundary) String() string {
	if b == Solid {
		return boundarySolidToken
	}
	return boundaryPeriodicToken
}

//Neighbours counts the live cells around row, col under the boundary topology
//the result is always in [0,8]; row and col must be inside the grid
func (b Boundary) Neighbours(g *Grid, row int, col int) int {
	live := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			//skip my position
			if dr == 0 && dc == 0 {
				continue
			}
			nr := row + dr
			nc := col + dc
			if b == Periodic {
				nr = (nr + g.height) % g.height
				nc = (nc + g.width) % g.width
			} else if nr < 0 || nc < 0 || nr >= g.height || nc >= g.width {
				//outside a solid boundary there is nothing alive
				continue
			}
			if g.At(nr, nc) {
				live++
			}
		}
	}
	return live
}

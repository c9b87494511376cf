package automaton

import (
	"runtime"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

//Status represents the engine's state after the most recent advance
type Status struct {
	Generation int
	LiveCells  int
	StepTime   time.Duration
}

//Engine drives the generation loop
//it owns the current grid, the rule and the boundary; Advance is the only
//state transition, and every generation it produces is a fresh Grid
type Engine struct {
	grid     *Grid
	rule     Rule
	boundary Boundary
	status   Status
	workers  int
}

//NewEngine creates an Engine at generation 0 over an already-validated grid
func NewEngine(initial *Grid, rule Rule, boundary Boundary) *Engine {
	return &Engine{
		grid:     initial,
		rule:     rule,
		boundary: boundary,
		status:   Status{LiveCells: initial.LiveCells()},
		workers:  runtime.NumCPU(),
	}
}

//Grid returns the current generation's grid
func (e *Engine) Grid() *Grid {
	return e.grid
}

//Generation returns the index of the current generation, starting at 0
func (e *Engine) Generation() int {
	return e.status.Generation
}

//Status returns the engine status after the most recent advance
func (e *Engine) Status() Status {
	return e.status
}

//Advance computes the next generation and makes it current
//every cell's next state is evaluated against the previous grid only, so the
//update is simultaneous across the whole grid no matter how the rows are
//split between workers
func (e *Engine) Advance() *Grid {
	start := time.Now()
	cur := e.grid
	next := newEmptyGrid(cur.height, cur.width)

	var (
		eg            errgroup.Group
		rowsPerWorker = (cur.height + e.workers - 1) / e.workers
	)
	for i := 0; i < e.workers; i++ {
		startRow := i * rowsPerWorker
		if startRow >= cur.height {
			break
		}
		endRow := startRow + rowsPerWorker
		if endRow > cur.height {
			endRow = cur.height
		}
		eg.Go(func() error {
			for r := startRow; r < endRow; r++ {
				for c := 0; c < cur.width; c++ {
					alive := cur.At(r, c)
					n := e.boundary.Neighbours(cur, r, c)
					next.cells[r*cur.width+c] = Cell(e.rule.NextState(alive, n))
				}
			}
			return nil
		})
	}
	//the workers never fail, Wait only joins them
	_ = eg.Wait()

	e.grid = next
	e.status = Status{
		Generation: e.status.Generation + 1,
		LiveCells:  next.LiveCells(),
		StepTime:   time.Since(start),
	}
	return next
}

//Run advances the engine exactly nsteps times, delivering each new grid to
//every sink in order before the next advance begins
//a sink error aborts the remaining steps and is propagated with the
//generation index; after a completed run every sink's Finish is called and
//the first failure is propagated. A zero-step run touches neither the grid
//nor the sinks
func (e *Engine) Run(nsteps int, sinks []Sink) error {
	if nsteps < 0 {
		return errors.Wrapf(ErrInvalidArgument, "negative step count %d", nsteps)
	}
	if nsteps == 0 {
		//nothing advanced, nothing delivered, nothing to flush
		return nil
	}
	for i := 0; i < nsteps; i++ {
		g := e.Advance()
		for _, s := range sinks {
			if err := s.Receive(e.status.Generation, g); err != nil {
				return errors.Wrapf(err, "sink %s failed at generation %d", s.Name(), e.status.Generation)
			}
		}
	}
	var firstErr error
	for _, s := range sinks {
		if err := s.Finish(); err != nil && firstErr == nil {
			firstErr = errors.Wrapf(err, "sink %s failed to finish", s.Name())
		}
	}
	return firstErr
}

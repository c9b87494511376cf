package sink

import (
	"os"

	"github.com/pkg/errors"

	"automata/src/automaton"
)

//Recorder appends every generation's snapshot to a file:
//one line of space-separated 0/1 values per grid row,
//one blank line between snapshots
//write failures are fatal and abort the run
type Recorder struct {
	path string
	f    *os.File
}

//NewRecorder creates the output file, truncating any previous content
func NewRecorder(path string) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create data output %s", path)
	}
	return &Recorder{path: path, f: f}, nil
}

func (r *Recorder) Name() string {
	return "recorder"
}

//Receive appends one snapshot to the file
func (r *Recorder) Receive(generation int, g *automaton.Grid) error {
	if _, err := r.f.WriteString(g.String() + "\n\n"); err != nil {
		return errors.Wrapf(err, "failed to write snapshot to %s", r.path)
	}
	return nil
}

//Finish flushes and closes the output file
func (r *Recorder) Finish() error {
	if err := r.f.Sync(); err != nil {
		return errors.Wrapf(err, "failed to sync %s", r.path)
	}
	return errors.Wrapf(r.f.Close(), "failed to close %s", r.path)
}

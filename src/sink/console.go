package sink

import (
	"bytes"
	"fmt"
	"io"
	"log"

	"github.com/logrusorgru/aurora"

	"automata/src/automaton"
)

//Reporter prints a textual snapshot of each generation
//a failed write is non-fatal: it is logged and the run continues
type Reporter struct {
	out        io.Writer
	liveFiller string
	deadFiller string
}

//NewReporter creates a console reporter writing to out
//with color enabled the live cells are rendered as green blocks
func NewReporter(out io.Writer, color bool) *Reporter {
	r := &Reporter{
		out:        out,
		liveFiller: "█",
		deadFiller: "░",
	}
	if color {
		r.liveFiller = aurora.Green("█").String()
	}
	return r
}

func (r *Reporter) Name() string {
	return "console"
}

//Receive renders the generation header and the grid
func (r *Reporter) Receive(generation int, g *automaton.Grid) error {
	var b bytes.Buffer
	fmt.Fprintf(&b, "Step %d (live cells: %d)\n", generation, g.LiveCells())
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			if g.At(row, col) {
				b.WriteString(r.liveFiller)
			} else {
				b.WriteString(r.deadFiller)
			}
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	if _, err := r.out.Write(b.Bytes()); err != nil {
		log.Printf("console reporter: dropping snapshot of generation %d: %v", generation, err)
	}
	return nil
}

func (r *Reporter) Finish() error {
	return nil
}

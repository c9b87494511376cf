package view

import (
	"bytes"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"automata/src/automaton"
)

const (
	fieldView  = "field"
	statusView = "status"

	quitWait = time.Second
)

//LiveView displays each generation in the terminal while the run progresses
//it implements the engine's sink contract; the engine loop stalls for the
//configured interval on every snapshot, which keeps the evolution watchable
//
//a terminal that cannot host the view makes the constructor fail; the caller
//treats that as non-fatal and runs without the viewer. The user closing the
//view mid-run (Ctrl+C) is non-fatal too: remaining snapshots are dropped.
type LiveView struct {
	g        *gocui.Gui
	interval time.Duration

	liveFiller string
	deadFiller string

	mu         sync.Mutex
	generation int
	liveCells  int
	grid       *automaton.Grid

	quit     int32
	loopDone chan struct{}
}

//NewLiveView opens the terminal UI and starts its event loop
func NewLiveView(interval time.Duration) (*LiveView, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, errors.Wrap(err, "terminal display unavailable")
	}

	t := &LiveView{
		g:          g,
		interval:   interval,
		liveFiller: aurora.Green("█").BgBrightGreen().String(),
		deadFiller: "░",
		loopDone:   make(chan struct{}),
	}
	g.SetManagerFunc(t.layout)
	if err = g.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, t.cmdQuit); err != nil {
		g.Close()
		return nil, errors.Wrap(err, "failed to bind keys")
	}

	go func() {
		defer close(t.loopDone)
		if err := g.MainLoop(); err != nil && err != gocui.ErrQuit {
			log.Printf("live view: %v", err)
		}
		atomic.StoreInt32(&t.quit, 1)
	}()
	return t, nil
}

func (t *LiveView) Name() string {
	return "liveview"
}

//Receive shows the new generation and stalls for the configured interval
func (t *LiveView) Receive(generation int, g *automaton.Grid) error {
	if atomic.LoadInt32(&t.quit) != 0 {
		//the view was closed by the user, keep the run going
		return nil
	}

	t.mu.Lock()
	t.generation = generation
	t.liveCells = g.LiveCells()
	t.grid = g
	t.mu.Unlock()

	t.g.Update(func(gui *gocui.Gui) error {
		t.renderField(gui)
		t.renderStatus(gui)
		return nil
	})
	if t.interval > 0 {
		time.Sleep(t.interval)
	}
	return nil
}

//Finish stops the event loop and releases the terminal
func (t *LiveView) Finish() error {
	if atomic.LoadInt32(&t.quit) == 0 {
		t.g.Update(func(gui *gocui.Gui) error {
			return gocui.ErrQuit
		})
	}
	select {
	case <-t.loopDone:
	case <-time.After(quitWait):
	}
	t.g.Close()
	return nil
}

func (t *LiveView) cmdQuit(g *gocui.Gui, v *gocui.View) error {
	return gocui.ErrQuit
}

func (t *LiveView) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	if v, err := g.SetView(statusView, 0, 0, maxX-1, 2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = true
		v.Title = "Status"
	}
	if v, err := g.SetView(fieldView, 0, 3, maxX-1, maxY-1); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = true
		v.Title = "Cells"
	}
	t.renderField(g)
	t.renderStatus(g)
	return nil
}

func (t *LiveView) renderField(g *gocui.Gui) {
	t.mu.Lock()
	grid := t.grid
	t.mu.Unlock()

	v, err := g.View(fieldView)
	if err != nil || grid == nil {
		return
	}
	v.Clear()

	maxW, maxH := v.Size()
	crop := grid.Width() > maxW || grid.Height() > maxH

	var b bytes.Buffer
	for row := 0; row < grid.Height() && row < maxH; row++ {
		if row != 0 {
			b.WriteByte('\n')
		}
		if crop && row == maxH-1 {
			b.WriteString(aurora.Red("The grid is larger than the viewing area").String())
			break
		}
		for col := 0; col < grid.Width() && col < maxW; col++ {
			if grid.At(row, col) {
				b.WriteString(t.liveFiller)
			} else {
				b.WriteString(t.deadFiller)
			}
		}
	}
	_, _ = fmt.Fprint(v, b.String())
}

func (t *LiveView) renderStatus(g *gocui.Gui) {
	t.mu.Lock()
	generation, liveCells := t.generation, t.liveCells
	t.mu.Unlock()

	if v, err := g.View(statusView); err == nil {
		v.Clear()
		_, _ = fmt.Fprintf(v, " %s: %d   %s: %d   %s to quit",
			aurora.Colorize("Step", aurora.GreenFg).String(), generation,
			aurora.Colorize("Live cells", aurora.GreenFg).String(), liveCells,
			aurora.Colorize("^C", aurora.CyanFg).String())
	}
}

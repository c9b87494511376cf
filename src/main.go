package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/integrii/flaggy"

	"automata/src/automaton"
	"automata/src/sink"
	"automata/src/view"
)

type options struct {
	width    int
	height   int
	steps    int
	seed     int64
	density  float64
	template string
	ruleName string
	ruleFile string
	boundary string
	interval time.Duration

	printSteps bool
	live       bool
	dataOut    string
	animOut    string
	scale      int
	fps        int
}

func main() {
	o := initOptions()

	rule, err := loadRule(o)
	if err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}
	boundary, err := automaton.ParseBoundary(o.boundary)
	if err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}
	grid, err := startGrid(o)
	if err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}
	if o.steps < 0 {
		flaggy.ShowHelpAndExit(fmt.Sprintf("negative step count %d", o.steps))
	}

	sinks, err := buildSinks(o)
	if err != nil {
		log.Fatalf("cannot start: %v", err)
	}

	fmt.Printf("Running configuration:\n")
	fmt.Printf("  Dimension: %v x %v\n", o.height, o.width)
	fmt.Printf("  Rule: %v\n", rule)
	fmt.Printf("  Boundary: %v\n", boundary)
	fmt.Printf("  Iterations: %v steps\n", o.steps)

	engine := automaton.NewEngine(grid, rule, boundary)
	startTime := time.Now()
	if err = engine.Run(o.steps, sinks); err != nil {
		log.Fatalf("simulation aborted: %v", err)
	}

	st := engine.Status()
	totalTime := time.Since(startTime).Round(time.Millisecond)
	fmt.Printf("Finished, iteration is: %v, live cells: %v, total running time: %v\n",
		st.Generation, st.LiveCells, totalTime)
	if o.dataOut != "" {
		fmt.Printf("Data saved to %v\n", o.dataOut)
	}
	if o.animOut != "" {
		fmt.Printf("Animation saved to %v\n", o.animOut)
	}
}

//loadRule resolves the rule from a YAML file when given, otherwise from the
//predefined rule tables
func loadRule(o *options) (automaton.Rule, error) {
	if o.ruleFile != "" {
		return automaton.LoadRuleFile(o.ruleFile)
	}
	return automaton.LookupRule(o.ruleName)
}

//startGrid builds the initial generation from a named template or random data
func startGrid(o *options) (*automaton.Grid, error) {
	if o.template != "" {
		return automaton.TemplateGrid(o.height, o.width, o.template, o.height/3, o.width/3)
	}
	seed := o.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return automaton.RandomGrid(o.height, o.width, o.density, rand.New(rand.NewSource(seed)))
}

//buildSinks composes the snapshot consumers requested on the command line
//an unavailable live display is reported and skipped; a data file that cannot
//be opened stops the run before it starts
func buildSinks(o *options) ([]automaton.Sink, error) {
	var sinks []automaton.Sink

	if o.printSteps {
		sinks = append(sinks, sink.NewReporter(os.Stdout, true))
	}
	if o.live {
		v, err := view.NewLiveView(o.interval)
		if err != nil {
			log.Printf("live view disabled: %v", err)
		} else {
			sinks = append(sinks, v)
		}
	}
	if o.dataOut != "" {
		r, err := sink.NewRecorder(o.dataOut)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, r)
	}
	if o.animOut != "" {
		w, err := sink.NewAnimationWriter(o.animOut, o.scale, o.fps)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, w)
	}
	return sinks, nil
}

func initOptions() *options {
	o := &options{
		width:    40,
		height:   15,
		steps:    100,
		density:  0.5,
		ruleName: "Conway's Life",
		boundary: "periodic",
		interval: 100 * time.Millisecond,
		scale:    4,
		fps:      10,
	}

	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&o.width, "x", "width", "Width of the simulation grid")
	flaggy.Int(&o.height, "y", "height", "Height of the simulation grid")
	flaggy.Int(&o.steps, "s", "steps", "Number of generations to simulate")
	flaggy.Int64(&o.seed, "", "seed", "Random seed for the initial grid (0 picks one)")
	flaggy.Float64(&o.density, "p", "density", "Probability that a random starting cell is alive")
	flaggy.String(&o.template, "t", "template", "Seed with a named template instead of random data ["+strings.Join(automaton.TemplateNames(), "|")+"]")
	flaggy.String(&o.ruleName, "r", "rule", "Predefined rule name, for example \"Conway's Life\" or \"Seeds\"")
	flaggy.String(&o.ruleFile, "f", "rule-file", "YAML file with S and B neighbour-count lists (overrides --rule)")
	flaggy.String(&o.boundary, "b", "boundary", "Boundary topology [periodic|solid]")
	flaggy.Duration(&o.interval, "i", "interval", "Delay between live view frames, for example 150ms")
	flaggy.Bool(&o.printSteps, "c", "print", "Print every generation to the console")
	flaggy.Bool(&o.live, "n", "live", "Show the evolution in a terminal view while running")
	flaggy.String(&o.dataOut, "d", "data", "Append every generation's snapshot to this file")
	flaggy.String(&o.animOut, "a", "anim", "Encode the run as an animated GIF at this path")
	flaggy.Int(&o.scale, "", "scale", "Animation resolution in pixels per cell")
	flaggy.Int(&o.fps, "", "fps", "Animation frame rate")

	flaggy.Parse()
	return o
}

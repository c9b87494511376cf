package automaton

//Sink consumes the snapshots produced by the engine,
//one per generation: printing, live display, persistence, frame accumulation
//
//Receive is called synchronously after each advance with the new generation
//index and grid; the grid is immutable and may be retained. An error from
//Receive is fatal: the engine aborts the remaining steps. Non-fatal trouble
//(an optional display gone away, a console write hiccup) is the sink's own
//business to report, and Receive returns nil.
//
//Finish is called once after a completed run, so sinks that accumulate
//(animation encoders, open files) can flush; its error is fatal too, but
//only surfaces at the end of the run.
type Sink interface {
	Name() string
	Receive(generation int, g *Grid) error
	Finish() error
}

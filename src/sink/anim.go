package sink

import (
	"image"
	"image/color"
	"image/gif"
	"os"

	"github.com/pkg/errors"

	"automata/src/automaton"
)

//AnimationWriter accumulates one frame per generation and encodes them into
//an animated GIF when the run completes
//encoding and I/O failures are fatal, but surface only at Finish
type AnimationWriter struct {
	path   string
	scale  int //pixels per cell
	delay  int //per-frame delay in 100ths of a second
	frames []*image.Paletted
}

var framePalette = color.Palette{
	color.RGBA{0x10, 0x0a, 0x20, 0xff}, //dead
	color.RGBA{0xfc, 0xa5, 0x0a, 0xff}, //alive
}

//NewAnimationWriter creates a GIF writer targeting path,
//rendering each cell as a scale x scale pixel block at the given frame rate
func NewAnimationWriter(path string, scale int, fps int) (*AnimationWriter, error) {
	if scale < 1 {
		return nil, errors.Wrapf(automaton.ErrInvalidArgument, "animation scale %d, want >= 1", scale)
	}
	if fps < 1 {
		return nil, errors.Wrapf(automaton.ErrInvalidArgument, "animation fps %d, want >= 1", fps)
	}
	delay := 100 / fps
	if delay < 1 {
		delay = 1
	}
	return &AnimationWriter{path: path, scale: scale, delay: delay}, nil
}

func (w *AnimationWriter) Name() string {
	return "animation"
}

//Receive renders the grid into a paletted frame and keeps it for encoding
func (w *AnimationWriter) Receive(generation int, g *automaton.Grid) error {
	frame := image.NewPaletted(image.Rect(0, 0, g.Width()*w.scale, g.Height()*w.scale), framePalette)
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			if !g.At(row, col) {
				continue //frames start out dead (palette index 0)
			}
			for py := row * w.scale; py < (row+1)*w.scale; py++ {
				for px := col * w.scale; px < (col+1)*w.scale; px++ {
					frame.SetColorIndex(px, py, 1)
				}
			}
		}
	}
	w.frames = append(w.frames, frame)
	return nil
}

//Finish encodes the accumulated frames and writes the GIF
func (w *AnimationWriter) Finish() error {
	if len(w.frames) == 0 {
		return nil
	}
	out := &gif.GIF{
		Image: w.frames,
		Delay: make([]int, len(w.frames)),
	}
	for i := range out.Delay {
		out.Delay[i] = w.delay
	}
	f, err := os.Create(w.path)
	if err != nil {
		return errors.Wrapf(err, "failed to create animation output %s", w.path)
	}
	if err = gif.EncodeAll(f, out); err != nil {
		f.Close()
		return errors.Wrapf(err, "failed to encode animation %s", w.path)
	}
	return errors.Wrapf(f.Close(), "failed to close %s", w.path)
}

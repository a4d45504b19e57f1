// Package record writes a running simulation to an MJPEG AVI file.
package record

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"

	"github.com/icza/mjpeg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"forest-ca/internal/core"
	"forest-ca/internal/render"
)

// Source is a sim that can be recorded.
type Source interface {
	core.Sim
	Palette() []color.RGBA
}

type quiescer interface {
	Quiescent() bool
}

type ticker interface {
	Tick() int
}

// Options controls video output.
type Options struct {
	Frames        int
	FPS           int
	Scale         int
	Quality       int
	StepsPerFrame int
	// StopWhenQuiet ends the recording once no cell is burning.
	StopWhenQuiet bool
	// Caption draws the tick counter in the top-left corner.
	Caption bool
}

// DefaultOptions returns 20 seconds of video at 30 fps.
func DefaultOptions() Options {
	return Options{Frames: 600, FPS: 30, Scale: 4, Quality: 85, StepsPerFrame: 1, Caption: true}
}

func (o Options) normalized() Options {
	if o.FPS <= 0 {
		o.FPS = 30
	}
	if o.Scale <= 0 {
		o.Scale = 1
	}
	if o.Quality <= 0 || o.Quality > 100 {
		o.Quality = jpeg.DefaultQuality
	}
	if o.StepsPerFrame <= 0 {
		o.StepsPerFrame = 1
	}
	return o
}

// Recorder encodes frames into an AVI container.
type Recorder struct {
	aw      mjpeg.AviWriter
	w, h    int
	opts    Options
	buf     bytes.Buffer
	frames  int
	palette []color.RGBA
}

// New opens path for writing a w*h grid.
func New(path string, size core.Size, palette []color.RGBA, opts Options) (*Recorder, error) {
	opts = opts.normalized()
	aw, err := mjpeg.New(path, int32(size.W*opts.Scale), int32(size.H*opts.Scale), int32(opts.FPS))
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return &Recorder{aw: aw, w: size.W, h: size.H, opts: opts, palette: palette}, nil
}

// AddFrame encodes one frame of display codes.
func (r *Recorder) AddFrame(cells []uint8, caption string) error {
	img := render.Image(cells, r.palette, r.w, r.h, r.opts.Scale)
	if r.opts.Caption && caption != "" {
		drawCaption(img, caption)
	}
	r.buf.Reset()
	if err := jpeg.Encode(&r.buf, img, &jpeg.Options{Quality: r.opts.Quality}); err != nil {
		return fmt.Errorf("encoding frame %d: %w", r.frames, err)
	}
	if err := r.aw.AddFrame(r.buf.Bytes()); err != nil {
		return fmt.Errorf("writing frame %d: %w", r.frames, err)
	}
	r.frames++
	return nil
}

// Frames reports how many frames have been written.
func (r *Recorder) Frames() int { return r.frames }

// Close finalises the AVI index.
func (r *Recorder) Close() error {
	if err := r.aw.Close(); err != nil {
		return fmt.Errorf("closing video: %w", err)
	}
	return nil
}

// Record steps sim and writes up to opts.Frames frames to path. The initial
// state is the first frame. It returns the number of frames written.
func Record(ctx context.Context, sim Source, path string, opts Options) (int, error) {
	opts = opts.normalized()
	rec, err := New(path, sim.Size(), sim.Palette(), opts)
	if err != nil {
		return 0, err
	}
	err = run(ctx, sim, rec, opts)
	if cerr := rec.Close(); err == nil {
		err = cerr
	}
	return rec.Frames(), err
}

func run(ctx context.Context, sim Source, rec *Recorder, opts Options) error {
	q, canQuiesce := sim.(quiescer)
	for rec.Frames() < opts.Frames {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := rec.AddFrame(sim.Cells(), caption(sim)); err != nil {
			return err
		}
		if opts.StopWhenQuiet && canQuiesce && q.Quiescent() {
			return nil
		}
		for i := 0; i < opts.StepsPerFrame; i++ {
			sim.Step()
		}
	}
	return nil
}

func caption(sim core.Sim) string {
	if t, ok := sim.(ticker); ok {
		return fmt.Sprintf("%s  tick %d", sim.Name(), t.Tick())
	}
	return sim.Name()
}

func drawCaption(img *image.RGBA, s string) {
	face := basicfont.Face7x13
	width := font.MeasureString(face, s).Ceil()
	bg := image.Rect(0, 0, width+8, face.Height+6).Intersect(img.Bounds())
	for y := bg.Min.Y; y < bg.Max.Y; y++ {
		for x := bg.Min.X; x < bg.Max.X; x++ {
			img.SetRGBA(x, y, color.RGBA{A: 255})
		}
	}
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 255}),
		Face: face,
		Dot:  fixed.P(4, face.Ascent+3),
	}
	d.DrawString(s)
}

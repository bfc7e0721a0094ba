package widgets

import (
	"errors"
	"time"

	"github.com/Miuzarte/FpsDisplay/fps"
	"github.com/rs/zerolog"
)

// ErrInactive is returned when querying a display that is not running.
var ErrInactive = errors.New("fps display is not active, activate it before querying the rate")

// Component is something that can be attached to and detached from a frame loop.
type Component interface {
	Activate()
	Deactivate()
	Active() bool
}

var _ Component = (*FpsDisplay)(nil)

// FpsDisplay writes the frame rate into a TextSurface every sample window while active.
type FpsDisplay struct {
	scheduler  FrameScheduler
	surface    TextSurface
	sampleSize int
	log        zerolog.Logger

	estimator  *fps.Estimator
	cancel     func()
	generation uint64
}

type Option func(*FpsDisplay)

func WithSampleSize(n int) Option {
	return func(d *FpsDisplay) {
		d.sampleSize = n
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(d *FpsDisplay) {
		d.log = log
	}
}

func NewFpsDisplay(scheduler FrameScheduler, surface TextSurface, opts ...Option) *FpsDisplay {
	d := &FpsDisplay{
		scheduler:  scheduler,
		surface:    surface,
		sampleSize: fps.DefaultSampleSize,
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *FpsDisplay) Active() bool {
	return d.estimator != nil
}

func (d *FpsDisplay) Activate() {
	if d.Active() {
		d.log.Debug().Msg("fps display already active")
		return
	}

	e := fps.NewEstimator(d.sampleSize)
	d.estimator = &e
	d.generation++
	d.log.Debug().Int("sample_size", e.SampleSize).Msg("fps display activated")

	if d.scheduler == nil {
		d.log.Warn().Msg("no frame scheduler, fps display will not update")
		return
	}
	d.arm()
}

// Deactivate stops the display and drops its estimator,
// a frame already requested will not reach it.
func (d *FpsDisplay) Deactivate() {
	if !d.Active() {
		return
	}
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.estimator = nil
	d.generation++
	d.log.Debug().Msg("fps display deactivated")
}

func (d *FpsDisplay) arm() {
	gen := d.generation
	d.cancel = d.scheduler.RequestFrame(func(now time.Duration) {
		d.onFrame(gen, now)
	})
}

func (d *FpsDisplay) onFrame(gen uint64, now time.Duration) {
	if gen != d.generation || d.estimator == nil {
		return
	}

	next := d.estimator.Observe(now)
	*d.estimator = next
	if next.Boundary() && d.surface != nil {
		d.surface.SetText(next.String())
		d.log.Trace().Float64("fps", next.Rate).Dur("frametime", next.Frametime).Send()
	}

	d.arm()
}

// Rate returns the last averaged frame rate, fps.Unavailable before the first full window.
func (d *FpsDisplay) Rate() (float64, error) {
	if !d.Active() {
		return 0, ErrInactive
	}
	return d.estimator.Value(), nil
}

// Frametime returns the time between the last two frames.
func (d *FpsDisplay) Frametime() (time.Duration, error) {
	if !d.Active() {
		return 0, ErrInactive
	}
	return d.estimator.Frametime, nil
}

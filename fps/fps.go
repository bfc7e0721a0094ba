package fps

import (
	"math"
	"strconv"
	"time"
)

const (
	// DefaultSampleSize is the number of frames per reported rate.
	DefaultSampleSize = 10

	// Unavailable is the rate before the first full sample window.
	Unavailable = -1.0
)

// Estimator averages the frame rate over fixed windows of SampleSize frames.
// It is a plain value: Observe returns the next state and leaves the receiver untouched.
type Estimator struct {
	SampleSize int
	Frames     int

	// LastSample is the timestamp of the last boundary frame.
	// It starts at zero, so the first window is measured from the clock origin.
	LastSample time.Duration
	Rate       float64

	LastFrame time.Duration
	Frametime time.Duration
}

func NewEstimator(sampleSize int) Estimator {
	if sampleSize <= 0 {
		sampleSize = DefaultSampleSize
	}
	return Estimator{SampleSize: sampleSize, Rate: Unavailable}
}

// Observe feeds the timestamp of one frame, now must not go backwards.
func (e Estimator) Observe(now time.Duration) Estimator {
	e.Frames++
	e.Frametime = now - e.LastFrame
	e.LastFrame = now

	if e.Boundary() {
		elapsed := now - e.LastSample
		// zero elapsed gives +Inf
		e.Rate = math.Round(float64(e.SampleSize) * float64(time.Second) / float64(elapsed))
		e.LastSample = now
	}
	return e
}

// Boundary reports whether the last Observe closed a sample window.
func (e Estimator) Boundary() bool {
	return e.SampleSize > 0 && e.Frames > 0 && e.Frames%e.SampleSize == 0
}

func (e Estimator) Value() float64 {
	return e.Rate
}

func (e Estimator) String() string {
	switch {
	case e.Rate == Unavailable:
		return "-"
	case math.IsInf(e.Rate, 0), math.IsNaN(e.Rate):
		return strconv.FormatFloat(e.Rate, 'f', -1, 64)
	default:
		return strconv.FormatInt(int64(e.Rate), 10)
	}
}

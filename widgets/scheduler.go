package widgets

import (
	"time"

	"gioui.org/layout"
	"gioui.org/op"
)

// FrameScheduler requests a single callback on the next animation frame.
// The callback receives a monotonic timestamp. cancel drops the request if it has not fired yet
// and may be called any number of times.
type FrameScheduler interface {
	RequestFrame(func(now time.Duration)) (cancel func())
}

type frameRequest struct {
	f         func(now time.Duration)
	cancelled bool
}

// GioScheduler fires frame requests from a gioui window loop.
// It is not safe for concurrent use: request, cancel and fire from the window goroutine.
type GioScheduler struct {
	origin  time.Time
	pending []*frameRequest
}

func (s *GioScheduler) RequestFrame(f func(now time.Duration)) (cancel func()) {
	req := &frameRequest{f: f}
	s.pending = append(s.pending, req)
	return func() {
		req.cancelled = true
	}
}

// Pending returns the number of live requests waiting for a frame.
func (s *GioScheduler) Pending() (n int) {
	for _, req := range s.pending {
		if !req.cancelled {
			n++
		}
	}
	return
}

// Fire runs the requests queued before the call with t relative to the first fired frame.
// Requests made by the callbacks wait for the next frame, rearmed reports whether there are any.
func (s *GioScheduler) Fire(t time.Time) (rearmed bool) {
	if s.origin.IsZero() {
		s.origin = t
	}
	now := t.Sub(s.origin)

	due := s.pending
	s.pending = nil
	for _, req := range due {
		if req.cancelled {
			continue
		}
		req.cancelled = true
		req.f(now)
	}
	return s.Pending() > 0
}

// Frame is called once per app.FrameEvent, it asks the window for another frame
// as long as someone is waiting on one.
func (s *GioScheduler) Frame(gtx layout.Context) {
	if s.Fire(gtx.Now) {
		gtx.Execute(op.InvalidateCmd{})
	}
}

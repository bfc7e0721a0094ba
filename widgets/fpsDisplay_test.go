package widgets

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/Miuzarte/FpsDisplay/fps"
)

type recordingSurface struct {
	texts []string
}

func (r *recordingSurface) SetText(txt string) {
	r.texts = append(r.texts, txt)
}

// leakyScheduler never honours cancel, so stale callbacks still fire.
type leakyScheduler struct {
	callbacks []func(time.Duration)
}

func (l *leakyScheduler) RequestFrame(f func(time.Duration)) func() {
	l.callbacks = append(l.callbacks, f)
	return func() {}
}

func (l *leakyScheduler) fireAll(now time.Duration) {
	due := l.callbacks
	l.callbacks = nil
	for _, f := range due {
		f(now)
	}
}

func TestFpsDisplay(t *testing.T) {
	t.Parallel()

	Convey("FpsDisplay", t, func() {
		base := time.Unix(1700000000, 0)
		sched := &GioScheduler{}
		surface := &recordingSurface{}
		d := NewFpsDisplay(sched, surface)

		frames := func(from, to, step int) {
			for i := from; i <= to; i += step {
				sched.Fire(base.Add(time.Duration(i) * time.Millisecond))
			}
		}

		Convey("starts inactive", func() {
			So(d.Active(), ShouldBeFalse)
			_, err := d.Rate()
			So(errors.Is(err, ErrInactive), ShouldBeTrue)
			_, err = d.Frametime()
			So(errors.Is(err, ErrInactive), ShouldBeTrue)
		})

		Convey("activate requests one frame", func() {
			d.Activate()
			So(d.Active(), ShouldBeTrue)
			So(sched.Pending(), ShouldEqual, 1)

			rate, err := d.Rate()
			So(err, ShouldBeNil)
			So(rate, ShouldEqual, fps.Unavailable)

			Convey("activating again does not double arm", func() {
				d.Activate()
				So(sched.Pending(), ShouldEqual, 1)
			})
		})

		Convey("ten frames 100ms apart", func() {
			d.Activate()
			frames(0, 800, 100)
			So(surface.texts, ShouldBeEmpty)
			So(sched.Pending(), ShouldEqual, 1)

			frames(900, 900, 100)
			So(cmp.Diff([]string{"11"}, surface.texts), ShouldBeEmpty)
			rate, err := d.Rate()
			So(err, ShouldBeNil)
			So(rate, ShouldEqual, 11.0)

			Convey("text is only written on window boundaries", func() {
				frames(950, 1400, 50)
				So(cmp.Diff([]string{"11", "20"}, surface.texts), ShouldBeEmpty)
				ft, err := d.Frametime()
				So(err, ShouldBeNil)
				So(ft, ShouldEqual, 50*time.Millisecond)
			})
		})

		Convey("deactivate before the first frame", func() {
			d.Activate()
			d.Deactivate()
			So(d.Active(), ShouldBeFalse)
			So(sched.Pending(), ShouldEqual, 0)

			So(func() { frames(0, 2000, 100) }, ShouldNotPanic)
			So(surface.texts, ShouldBeEmpty)
			_, err := d.Rate()
			So(errors.Is(err, ErrInactive), ShouldBeTrue)
		})

		Convey("deactivate is idempotent", func() {
			d.Activate()
			frames(0, 300, 100)
			d.Deactivate()
			So(func() { d.Deactivate() }, ShouldNotPanic)
			So(d.Active(), ShouldBeFalse)
			So(sched.Pending(), ShouldEqual, 0)

			Convey("and a never activated display can be deactivated", func() {
				other := NewFpsDisplay(sched, surface)
				So(func() { other.Deactivate(); other.Deactivate() }, ShouldNotPanic)
			})
		})

		Convey("reactivation starts a fresh estimator", func() {
			d.Activate()
			frames(0, 900, 100)
			d.Deactivate()
			d.Activate()

			rate, err := d.Rate()
			So(err, ShouldBeNil)
			So(rate, ShouldEqual, fps.Unavailable)
		})

		Convey("custom sample size", func() {
			d = NewFpsDisplay(sched, surface, WithSampleSize(2))
			d.Activate()
			frames(0, 100, 100)
			So(cmp.Diff([]string{"20"}, surface.texts), ShouldBeEmpty)
		})

		Convey("stale callbacks are ignored", func() {
			leaky := &leakyScheduler{}
			d = NewFpsDisplay(leaky, surface, WithSampleSize(1))
			d.Activate()
			d.Deactivate()
			So(func() { leaky.fireAll(100 * time.Millisecond) }, ShouldNotPanic)
			So(surface.texts, ShouldBeEmpty)

			d.Activate()
			stale := leaky.callbacks
			d.Deactivate()
			d.Activate()
			for _, f := range stale {
				f(time.Second)
			}
			So(surface.texts, ShouldBeEmpty)
			rate, _ := d.Rate()
			So(rate, ShouldEqual, fps.Unavailable)
		})

		Convey("without a scheduler the display stays idle", func() {
			d = NewFpsDisplay(nil, surface)
			So(func() { d.Activate() }, ShouldNotPanic)
			rate, err := d.Rate()
			So(err, ShouldBeNil)
			So(rate, ShouldEqual, fps.Unavailable)
			d.Deactivate()
			So(d.Active(), ShouldBeFalse)
		})
	})
}

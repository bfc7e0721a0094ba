package widgets

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGioScheduler(t *testing.T) {
	t.Parallel()

	Convey("GioScheduler", t, func() {
		base := time.Unix(1700000000, 0)
		s := &GioScheduler{}
		var got []time.Duration
		record := func(now time.Duration) {
			got = append(got, now)
		}

		Convey("timestamps are relative to the first frame", func() {
			s.RequestFrame(record)
			So(s.Fire(base), ShouldBeFalse)
			s.RequestFrame(record)
			s.Fire(base.Add(16 * time.Millisecond))
			So(cmp.Diff([]time.Duration{0, 16 * time.Millisecond}, got), ShouldBeEmpty)
		})

		Convey("a request fires once", func() {
			s.RequestFrame(record)
			s.Fire(base)
			s.Fire(base.Add(time.Second))
			So(got, ShouldHaveLength, 1)
			So(s.Pending(), ShouldEqual, 0)
		})

		Convey("cancelled requests are skipped", func() {
			cancel := s.RequestFrame(record)
			So(s.Pending(), ShouldEqual, 1)
			cancel()
			cancel()
			So(s.Pending(), ShouldEqual, 0)
			So(s.Fire(base), ShouldBeFalse)
			So(got, ShouldBeEmpty)
		})

		Convey("requests made while firing wait for the next frame", func() {
			var rearm func(time.Duration)
			rearm = func(now time.Duration) {
				record(now)
				s.RequestFrame(rearm)
			}
			s.RequestFrame(rearm)

			So(s.Fire(base), ShouldBeTrue)
			So(got, ShouldHaveLength, 1)
			So(s.Fire(base.Add(10*time.Millisecond)), ShouldBeTrue)
			So(got, ShouldHaveLength, 2)
			So(s.Pending(), ShouldEqual, 1)
		})

		Convey("cancelling after firing is harmless", func() {
			cancel := s.RequestFrame(record)
			s.Fire(base)
			So(func() { cancel() }, ShouldNotPanic)
			So(got, ShouldHaveLength, 1)
		})
	})
}

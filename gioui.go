package main

import (
	"image"
	"time"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"github.com/rs/zerolog"

	"github.com/Miuzarte/FpsDisplay/config"
	"github.com/Miuzarte/FpsDisplay/widgets"
)

const sweepPeriod = 2 * time.Second

var (
	scheduler  widgets.GioScheduler
	fpsReadout *widgets.Readout
	cpuReadout *widgets.Readout
	fpsDisplay *widgets.FpsDisplay

	cfg       = config.Default()
	direction = layout.NE
)

// applyConfig must run on the window goroutine, or before it starts.
// The display is rebuilt only when the sample size changes, keeping its on/off state.
func applyConfig(c *config.Config) {
	dir, err := c.Direction()
	if err != nil {
		log.Warn().Err(err).Msg("keeping previous position")
		dir = direction
	}
	direction = dir
	if lvl, err := c.Level(); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	size, pad := unit.Sp(c.TextSize), unit.Dp(c.Padding)
	if fpsReadout == nil {
		fpsReadout = widgets.NewReadout("FPS: ", size, dir, pad)
		cpuReadout = widgets.NewReadout("CPU: ", size, dir, pad)
	}
	for _, r := range []*widgets.Readout{fpsReadout, cpuReadout} {
		r.TextSize = size
		r.Direction = dir
		r.Box.Padding = pad
	}

	if fpsDisplay == nil || c.SampleSize != cfg.SampleSize {
		active := true
		if fpsDisplay != nil {
			active = fpsDisplay.Active()
			fpsDisplay.Deactivate()
		}
		fpsDisplay = widgets.NewFpsDisplay(&scheduler, fpsReadout,
			widgets.WithSampleSize(c.SampleSize),
			widgets.WithLogger(log.With().Str("widget", "fps").Logger()),
		)
		if active {
			fpsDisplay.Activate()
			fpsReadout.SetText("-")
		}
		log.Debug().Int("sample_size", c.SampleSize).Bool("active", active).Msg("fps display rebuilt")
	}

	cfg = c
}

func layoutFrame(gtx layout.Context) {
	paint.Fill(gtx.Ops, widgets.Theme.Bg)
	layoutSweep(gtx)

	direction.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		children := []layout.FlexChild{layout.Rigid(fpsReadout.Panel)}
		if cfg.ShowCPU {
			children = append(children, layout.Rigid(cpuReadout.Panel))
		}
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
	})
}

// layoutSweep moves a bar across the window so there is something to animate.
func layoutSweep(gtx layout.Context) {
	size := gtx.Constraints.Max
	phase := float64(gtx.Now.UnixNano()%int64(sweepPeriod)) / float64(sweepPeriod)
	x := int(phase * float64(size.X))
	bar := clip.Rect{Min: image.Pt(x, 0), Max: image.Pt(x+gtx.Dp(16), size.Y)}

	c := widgets.Theme.Fg
	c.A = 0x40
	paint.FillShape(gtx.Ops, c, bar.Op())
}

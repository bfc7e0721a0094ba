package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/op"
	"gioui.org/unit"
	"github.com/fsnotify/fsnotify"
	"github.com/shirou/gopsutil/v4/process"

	"github.com/Miuzarte/FpsDisplay/config"
	"github.com/Miuzarte/FpsDisplay/contextWaitGroup"
	"github.com/Miuzarte/FpsDisplay/widgets"
)

var configPath = flag.String("config", "fpsdisplay.yaml", "path to the YAML config file")

var (
	window       app.Window
	windowClosed atomic.Bool
)

var (
	configUpdates = make(chan *config.Config, 1)
	cpuUpdates    = make(chan float64, 1)
)

var shortcuts = widgets.NewShortcuts(&window,
	widgets.Shortcut{
		Key: widgets.NewShortcut(0, 0, "F"),
		F:   shortcutToggleFps,
	},
	widgets.Shortcut{
		Key: widgets.NewShortcut(0, 0, "P"),
		F:   shortcutPrintRate,
	},
	widgets.Shortcut{
		Key: widgets.NewShortcut(0, 0, "Q", key.NameEscape),
		F:   shortcutQuit,
	},
)

func main() {
	flag.Parse()

	c, err := config.Load(*configPath)
	panicIf(err)
	applyConfig(c)
	log.Info().Str("config", *configPath).Int("sample_size", c.SampleSize).Msg("starting")

	window.Option(
		app.Title(c.WindowTitle),
		app.Size(unit.Dp(c.Width), unit.Dp(c.Height)),
	)

	cwg := contextWaitGroup.New(context.Background())
	cwg.Log = log
	stop := cwg.WithSignal(os.Interrupt, syscall.SIGTERM)

	if c.ShowCPU {
		cwg.Go("cpu", func(ctx context.Context) {
			cpuMeasureLoop(ctx, c.CPUInterval)
		})
	}
	cwg.Go("config", configWatchLoop)
	cwg.Go("signal", func(ctx context.Context) {
		<-ctx.Done()
		if !windowClosed.Load() {
			// ctrl c in the console, let the window close itself
			window.Perform(system.ActionClose)
		}
	})

	go func() {
		defer stop()
		windowLoop(cwg.Cancel)
		cwg.Wait()
		log.Info().Msg("bye")
		os.Exit(0)
	}()

	app.Main()
}

func windowLoop(cancel context.CancelFunc) {
	defer cancel()
	defer windowClosed.Store(true)
	var ops op.Ops
	for {
		switch e := window.Event().(type) {
		case app.DestroyEvent:
			if e.Err != nil {
				log.Error().Err(e.Err).Msg("window error")
			} else {
				log.Debug().Msg("window closed normally")
			}
			return

		case app.FrameEvent:
			drainUpdates()

			gtx := app.NewContext(&ops, e)
			err := shortcuts.Match(gtx)
			if err != nil {
				log.Warn().Err(err).Msg("shortcuts match error")
			}

			scheduler.Frame(gtx)
			layoutFrame(gtx)

			e.Frame(gtx.Ops)

		default:
			log.Trace().Msgf("event[%T]: %v", e, e)
		}
	}
}

// drainUpdates applies what the background loops produced since the last frame.
func drainUpdates() {
	for {
		select {
		case c := <-configUpdates:
			applyConfig(c)
			log.Info().Msg("config reloaded")
		case pct := <-cpuUpdates:
			cpuReadout.SetText(formatPercent(pct))
		default:
			return
		}
	}
}

func cpuMeasureLoop(ctx context.Context, interval time.Duration) {
	self, err := process.NewProcessWithContext(ctx, int32(os.Getpid()))
	if err != nil {
		log.Warn().Err(err).Msg("cpu usage unavailable")
		return
	}

	for {
		pct, err := self.PercentWithContext(ctx, interval)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			log.Warn().Err(err).Msg("failed to measure cpu usage")
			continue
		}
		select {
		case cpuUpdates <- pct:
		default:
			// window has not consumed the last one yet
		}
		window.Invalidate()
	}
}

func configWatchLoop(ctx context.Context) {
	path, err := filepath.Abs(*configPath)
	panicIf(err)

	watcher, err := fsnotify.NewWatcher()
	panicIf(err)
	defer watcher.Close()

	// editors often replace the file, so watch its directory
	err = watcher.Add(filepath.Dir(path))
	if err != nil {
		log.Warn().Err(err).Msg("config hot reload disabled")
		return
	}

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				continue
			}
			log.Debug().Stringer("event", event).Msg("config changed")

			time.Sleep(time.Millisecond * 100) // simply wait for the end of writing
			c, err := config.Load(path)
			if err != nil {
				log.Warn().Err(err).Msg("ignoring invalid config")
				continue
			}
			select {
			case configUpdates <- c:
			case <-ctx.Done():
				return
			}
			window.Invalidate()

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Error().Err(err).Msg("fsnotify error")
		}
	}
}

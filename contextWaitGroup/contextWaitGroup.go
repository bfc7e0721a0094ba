package contextWaitGroup

import (
	"context"
	"os"
	"os/signal"
	"sync"

	"github.com/rs/zerolog"
)

// CWG runs loops that share one cancellation.
type CWG struct {
	wg     sync.WaitGroup
	Ctx    context.Context
	Cancel context.CancelFunc
	Log    zerolog.Logger
}

func New(parent context.Context) *CWG {
	ctx, cancel := context.WithCancel(parent)
	return &CWG{Ctx: ctx, Cancel: cancel, Log: zerolog.Nop()}
}

// WithSignal also cancels on any of signals.
func (c *CWG) WithSignal(signals ...os.Signal) (stop context.CancelFunc) {
	c.Ctx, stop = signal.NotifyContext(c.Ctx, signals...)
	return
}

// Go runs f until it returns, f should return soon after its context is done.
func (c *CWG) Go(name string, f func(context.Context)) {
	c.wg.Go(func() {
		c.Log.Debug().Str("loop", name).Msg("started")
		defer c.Log.Debug().Str("loop", name).Msg("stopped")
		f(c.Ctx)
	})
}

func (c *CWG) Wait() {
	c.wg.Wait()
}

// Shutdown cancels every loop and waits for them.
func (c *CWG) Shutdown() {
	c.Cancel()
	c.wg.Wait()
}

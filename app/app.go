// Package app is the interactive terminal front-end: menu, one session per Start, keyboard and
// sensor input, optional audio cues
package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gesture-lane/audio"
	"github.com/lixenwraith/gesture-lane/config"
	"github.com/lixenwraith/gesture-lane/core"
	"github.com/lixenwraith/gesture-lane/engine"
	"github.com/lixenwraith/gesture-lane/input"
	"github.com/lixenwraith/gesture-lane/network"
	"github.com/lixenwraith/gesture-lane/render"
	"github.com/lixenwraith/gesture-lane/status"
)

type mode uint8

const (
	modeMenu mode = iota
	modePlay
	modeGameOver
)

// Options carries optional collaborators; zero values pick defaults
type Options struct {
	Logger   *log.Logger
	Registry *status.Registry
	Keys     *input.KeyTable
	Clock    engine.TimeProvider

	// Sound plays judgment cues, nil runs silent
	Sound *audio.SoundManager

	// Sensor overrides the server settings derived from config
	Sensor *network.Config

	// NewTicker builds the tick source for each session, default is a ClockTicker
	NewTicker func(period time.Duration) engine.Ticker
}

// App owns the screen and the session lifecycle
// Run's goroutine handles events and menu drawing; each session's loop renders from its own goroutine
type App struct {
	screen   tcell.Screen
	cfg      config.Config
	alphabet core.Alphabet

	logger    *log.Logger
	registry  *status.Registry
	keys      *input.KeyTable
	clock     engine.TimeProvider
	sound     *audio.SoundManager
	newTicker func(time.Duration) engine.Ticker

	renderer   *render.TerminalRenderer
	input      *engine.InputChannel
	keySampler *input.KeySampler
	server     *network.Server

	mode         mode
	current      atomic.Pointer[engine.GameLoop]
	stopSampling context.CancelFunc
	last         *engine.Result
}

// New validates cfg and prepares the front-end; the screen must already be initialized
func New(screen tcell.Screen, cfg config.Config, opts Options) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	alphabet, err := cfg.Alphabet()
	if err != nil {
		return nil, err
	}

	a := &App{
		screen:    screen,
		cfg:       cfg,
		alphabet:  alphabet,
		logger:    opts.Logger,
		registry:  opts.Registry,
		keys:      opts.Keys,
		clock:     opts.Clock,
		sound:     opts.Sound,
		newTicker: opts.NewTicker,
		renderer:  render.NewTerminalRenderer(screen, alphabet),
		input:     engine.NewInputChannel(),
	}
	if a.logger == nil {
		a.logger = log.New(io.Discard, "", 0)
	}
	if a.registry == nil {
		a.registry = status.NewRegistry()
	}
	if a.keys == nil {
		a.keys = input.DefaultKeyTable()
	}
	if len(cfg.Keys.Menu) > 0 || len(cfg.Keys.Play) > 0 {
		override, err := input.LoadKeyConfig(cfg.Keys.Menu, cfg.Keys.Play)
		if err != nil {
			return nil, fmt.Errorf("keys: %w", err)
		}
		a.keys = input.MergeKeyTable(a.keys, override)
	}
	if a.clock == nil {
		a.clock = engine.NewMonotonicTimeProvider()
	}
	if a.newTicker == nil {
		a.newTicker = func(period time.Duration) engine.Ticker {
			return engine.NewClockTicker(period)
		}
	}
	a.keySampler = input.NewKeySampler(a.clock, cfg.InputHold)

	if cfg.Sensor.Enabled {
		netCfg := opts.Sensor
		if netCfg == nil {
			netCfg = network.DebugConfig(cfg.Sensor.Address)
		}
		sensorLog := log.New(a.logger.Writer(), "[sensor] ", a.logger.Flags())
		a.server = network.NewServer(netCfg, a.input, alphabet, network.SnapshotFunc(a.CurrentFrame), a.registry, sensorLog)
	}

	return a, nil
}

// CurrentFrame returns the last frame of the session in play
func (a *App) CurrentFrame() (engine.Frame, bool) {
	if gl := a.current.Load(); gl != nil {
		return gl.Session().Snapshot(), true
	}
	return engine.Frame{}, false
}

// SensorAddr is the bound sensor address once Run has started the server
func (a *App) SensorAddr() string {
	if a.server == nil || a.server.Addr() == nil {
		return ""
	}
	return a.server.Addr().String()
}

// Run shows the menu and handles events until the user quits or ctx is done
func (a *App) Run(ctx context.Context) error {
	if a.server != nil {
		if err := a.server.Start(); err != nil {
			return err
		}
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), network.DefaultConfig().ShutdownTimeout)
			defer cancel()
			_ = a.server.Shutdown(sctx)
		}()
	}

	quit := make(chan struct{})
	defer close(quit)
	events := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	})

	a.showMenu()
	defer a.endSession()

	for {
		var loopDone <-chan struct{}
		if gl := a.current.Load(); gl != nil {
			loopDone = gl.Done()
		}

		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if a.handleEvent(ctx, ev) {
				return nil
			}
		case <-loopDone:
			a.finishSession()
		}
	}
}

// handleEvent returns true when the user asked to quit
func (a *App) handleEvent(ctx context.Context, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		if a.mode == modeMenu {
			a.showMenu()
		}

	case *tcell.EventKey:
		switch a.mode {
		case modeGameOver:
			a.showMenu()

		case modeMenu:
			entry, ok := a.keys.Lookup(input.ContextMenu, ev)
			if !ok {
				return false
			}
			switch entry.Intent {
			case input.IntentStart:
				if err := a.startSession(ctx); err != nil {
					a.logger.Printf("start session: %v", err)
				}
			case input.IntentQuit:
				return true
			case input.IntentToggleMute:
				a.toggleMute()
			}

		case modePlay:
			entry, ok := a.keys.Lookup(input.ContextPlay, ev)
			if !ok {
				return false
			}
			switch entry.Intent {
			case input.IntentSymbol:
				a.keySampler.Press(entry.Symbol)
			case input.IntentQuit:
				// Back to the menu once the loop reaches its next tick boundary
				if gl := a.current.Load(); gl != nil {
					gl.Stop()
				}
			case input.IntentToggleMute:
				a.toggleMute()
			}
		}
	}
	return false
}

func (a *App) startSession(ctx context.Context) error {
	a.input.Store(core.Neutral)
	a.keySampler.Press(core.Neutral)

	session, err := engine.NewSession(a.cfg, a.input, nil, engine.WithRegistry(a.registry))
	if err != nil {
		return err
	}

	sinks := engine.MultiSink{a.renderer}
	if a.sound != nil {
		sinks = append(sinks, audio.NewFeedbackSink(a.sound))
	}

	// The sensor, when enabled, is the symbol source; keys then only drive the menu
	if a.server == nil {
		sctx, cancel := context.WithCancel(ctx)
		a.stopSampling = cancel
		sampler := engine.NewSampler(a.keySampler, a.input, a.alphabet, a.cfg.SamplePeriod)
		core.Go(func() {
			sampler.Run(sctx)
		})
	}

	loop := engine.NewGameLoop(session, a.newTicker(a.cfg.TickPeriod), sinks, engine.WithLogger(a.logger))
	a.current.Store(loop)
	a.mode = modePlay
	return loop.Start(ctx)
}

// finishSession collects a finished loop and moves to game over or the menu
func (a *App) finishSession() {
	gl := a.current.Swap(nil)
	if gl == nil {
		return
	}
	if a.stopSampling != nil {
		a.stopSampling()
		a.stopSampling = nil
	}

	res, _ := gl.Result()
	a.last = &res

	if res.Reason == engine.EndGameOver {
		a.mode = modeGameOver
		a.renderer.DrawGameOver(res)
		return
	}
	a.showMenu()
}

// endSession stops any running session and waits for its loop
func (a *App) endSession() {
	if gl := a.current.Load(); gl != nil {
		gl.Stop()
		<-gl.Done()
	}
	a.finishSession()
}

func (a *App) showMenu() {
	a.mode = modeMenu
	a.renderer.DrawMenu(a.last)
}

func (a *App) toggleMute() {
	if a.sound == nil {
		return
	}
	if a.sound.ToggleMute() {
		a.logger.Printf("audio muted")
	} else {
		a.logger.Printf("audio unmuted")
	}
}

package client

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"survivor/pkg/client/systems"
	"survivor/pkg/shared/config"
	"survivor/pkg/shared/logging"
	"survivor/pkg/sim"
)

type Game struct {
	cfg  config.Config
	root zerolog.Logger
	log  zerolog.Logger

	// set by the retry button, consumed on the next Update
	retry bool

	World *sim.World

	// Systems
	UISystem     *systems.UISystem
	InputSystem  *systems.InputSystem
	RenderSystem *systems.RenderSystem
}

func NewGame(cfg config.Config, logger zerolog.Logger) (*Game, error) {
	input, err := systems.NewInputSystem(cfg.Keybindings)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:          cfg,
		root:         logger,
		log:          logging.For(logger, "client"),
		InputSystem:  input,
		RenderSystem: systems.NewRenderSystem(),
		UISystem:     systems.NewUISystem(cfg.Window.Width, cfg.Window.Height),
	}
	g.UISystem.OnPick = g.pick
	g.UISystem.OnRetry = func() { g.retry = true }

	if err := g.Restart(); err != nil {
		return nil, err
	}
	return g, nil
}

// Restart throws the current run away and starts a fresh one.
func (g *Game) Restart() error {
	simLog := logging.For(g.root, "sim")
	opts := sim.Options{
		Width:  float64(g.cfg.Window.Width),
		Height: float64(g.cfg.Window.Height),
		Seed:   g.cfg.Seed,
		Logger: &simLog,
	}
	if g.World != nil {
		opts.Width, opts.Height = g.World.Bounds()
	}

	world, err := sim.NewWorld(opts)
	if err != nil {
		return errors.Wrap(err, "new run")
	}
	world.OnLevelUp(g.UISystem.ShowOffer)

	g.World = world
	g.UISystem.HideOffer()
	g.UISystem.Sync(world.HUD())
	return nil
}

func (g *Game) pick(i int) {
	if err := g.World.Choose(i); err != nil {
		g.log.Warn().Err(err).Msg("Choice rejected")
		return
	}
	if _, ok := g.World.PendingOffer(); !ok {
		g.UISystem.HideOffer()
	}
}

func (g *Game) Update() error {
	if err := g.UISystem.Update(); err != nil {
		return err
	}

	if g.InputSystem.JustPressed(config.ActionDebug) {
		g.UISystem.ShowDebug = !g.UISystem.ShowDebug
	}

	switch {
	case g.World.Over():
		if g.retry || g.InputSystem.JustPressed(config.ActionRetry) {
			g.retry = false
			if err := g.Restart(); err != nil {
				return err
			}
		}
		return nil
	case g.World.Paused():
		if i := g.InputSystem.PickedCard(); i >= 0 {
			g.pick(i)
		}
	}

	g.World.SetInput(g.InputSystem.Movement())
	g.World.Step()
	g.UISystem.Sync(g.World.HUD())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.RenderSystem.Draw(screen, g.World)
	g.UISystem.Draw(screen, g.World)
}

// Layout follows the window size so the arena grows with it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.World.SetBounds(float64(outsideWidth), float64(outsideHeight))
	g.UISystem.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

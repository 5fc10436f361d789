// Package golddigger provides the Gold Digger mining game for the terminal.
//
// The simulation lives in the core subpackage; this package adapts it to
// the platform: input frames, screen rendering, dialogs and run history.
package golddigger

import (
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	platformcore "github.com/vovakirdan/golddigger/internal/core"
	"github.com/vovakirdan/golddigger/internal/games/golddigger/core"
	"github.com/vovakirdan/golddigger/internal/registry"
	"github.com/vovakirdan/golddigger/internal/storage"
)

// flashDuration is how long a HUD notice stays visible.
const flashDuration = 1500 * time.Millisecond

// Game implements the Gold Digger game.
type Game struct {
	id     string
	title  string
	params core.Params

	session *core.Session
	tex     *texture
	log     *log.Logger
	rec     registry.RunRecorder

	paused   bool
	recorded bool // Current run already written to history

	flash     string
	flashLeft time.Duration
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for session events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithRecorder sets where finished runs are recorded.
func WithRecorder(r registry.RunRecorder) Option {
	return func(g *Game) {
		g.rec = r
	}
}

// WithMode sets the mode identifier and display title.
func WithMode(id, title string) Option {
	return func(g *Game) {
		g.id = id
		g.title = title
	}
}

// New creates a new Gold Digger game.
func New(params core.Params, opts ...Option) *Game {
	g := &Game{
		id:     "normal",
		title:  "Gold Digger",
		params: params,
		log:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Reset starts a new session on the welcome dialog.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.session = core.NewSession(g.params, cfg.Seed)
	g.tex = newTexture(g.session.World().Seed())
	g.paused = false
	g.recorded = false
	g.flash = ""
	g.flashLeft = 0

	g.log.Info("session started",
		"mode", g.id,
		"seed", cfg.Seed,
		"world", g.session.World().Seed(),
		"blocks", g.session.World().Len())
}

// Step advances the game by dt of wall-clock time.
func (g *Game) Step(in platformcore.InputFrame, dt time.Duration) platformcore.StepResult {
	if g.session == nil {
		return platformcore.StepResult{State: g.State()}
	}

	if g.flashLeft > 0 {
		g.flashLeft -= dt
	}

	if g.session.Modal() == core.ModalNone {
		if in.Has(platformcore.ActionPause) {
			g.paused = !g.paused
		}
		if in.Has(platformcore.ActionNewGame) {
			g.NewGame()
			return platformcore.StepResult{State: g.State()}
		}
	}

	if g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	if in.AnyReleased() {
		g.session.Release()
	}

	dir := core.PickDirection(
		in.IsHeld(platformcore.ActionRight),
		in.IsHeld(platformcore.ActionLeft),
		in.IsHeld(platformcore.ActionDown),
		in.IsHeld(platformcore.ActionUp),
	)

	res := g.session.Tick(dir, dt.Seconds())
	events := g.handleEvents(res)

	return platformcore.StepResult{State: g.State(), Events: events}
}

// handleEvents logs tick events and updates HUD notices.
func (g *Game) handleEvents(res core.TickResult) []string {
	if len(res.Events) == 0 {
		return nil
	}

	names := make([]string, 0, len(res.Events))
	for _, e := range res.Events {
		names = append(names, e.Kind.String())

		switch e.Kind {
		case core.EventBlockDug:
			g.log.Debug("block dug", "x", e.At.X, "y", e.At.Y)
		case core.EventGoldFound:
			g.log.Debug("gold found", "x", e.At.X, "y", e.At.Y, "amount", e.Amount)
			g.notify("+$" + strconv.Itoa(e.Amount))
		case core.EventArtifactFound:
			g.log.Info("artifact found", "x", e.At.X, "y", e.At.Y, "clock", g.session.Clock())
			g.record(storage.EndArtifact)
		case core.EventDepleted:
			g.log.Info("drill bit depleted", "x", e.At.X, "y", e.At.Y)
		case core.EventPurchaseOffered:
			g.log.Debug("purchase offered", "currency", g.session.Avatar().Currency)
		case core.EventResurfaced:
			g.log.Info("resurfaced", "durability", e.Amount)
			g.notify("New drill bit!")
		}
	}
	return names
}

func (g *Game) notify(msg string) {
	g.flash = msg
	g.flashLeft = flashDuration
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	if g.session == nil {
		return platformcore.GameState{}
	}
	st := platformcore.GameState{
		Score:  g.session.Avatar().Currency,
		Paused: g.paused,
	}
	if m := g.session.Modal(); m != core.ModalNone {
		st.Modal = m.String()
	}
	return st
}

// Dialog returns the dialog the player must answer, if any.
func (g *Game) Dialog() (platformcore.Dialog, bool) {
	if g.session == nil {
		return platformcore.Dialog{}, false
	}
	switch g.session.Modal() {
	case core.ModalWelcome:
		return welcomeDialog(), true
	case core.ModalArtifactFound:
		return artifactDialog(), true
	case core.ModalPurchase:
		return purchaseDialog(g.session.Avatar().Currency, g.params.PricePerSecond), true
	default:
		return platformcore.Dialog{}, false
	}
}

// Submit answers the open dialog. The purchase dialog parses text as gold;
// other dialogs ignore it.
func (g *Game) Submit(text string) error {
	if g.session == nil {
		return nil
	}
	switch g.session.Modal() {
	case core.ModalPurchase:
		p, err := g.session.SubmitPurchase(text)
		if err != nil {
			g.log.Debug("purchase rejected", "input", text, "err", err)
			return err
		}
		g.log.Info("purchase",
			"offered", p.Offered,
			"spent", p.Spent,
			"seconds", p.Seconds,
			"bonus", g.session.Avatar().Bonus)
		if p.Seconds > 0 {
			g.notify("+" + strconv.Itoa(p.Seconds) + "% durability")
		}
	case core.ModalArtifactFound:
		g.session.Confirm()
		g.startRun()
	default:
		g.session.Confirm()
	}
	return nil
}

// Dismiss cancels the purchase dialog. Other dialogs must be confirmed.
func (g *Game) Dismiss() {
	if g.session != nil && g.session.Modal() == core.ModalPurchase {
		g.session.CancelPurchase()
		g.log.Debug("purchase cancelled")
	}
}

// NewGame records the current run and generates a new world.
func (g *Game) NewGame() {
	if g.session == nil {
		return
	}
	g.record(storage.EndNewGame)
	g.session.Reset()
	g.startRun()
}

// startRun resets per-run adapter state after the session made a new world.
func (g *Game) startRun() {
	g.tex = newTexture(g.session.World().Seed())
	g.recorded = false
	g.paused = false
	g.log.Info("new run", "run", g.session.Runs(), "world", g.session.World().Seed())
}

// Finish records the current run with the given end reason.
func (g *Game) Finish(reason string) {
	g.record(reason)
}

// record writes the current run to history once. Runs that never
// advanced are not recorded.
func (g *Game) record(reason string) {
	if g.session == nil || g.recorded || g.session.Ticks() == 0 {
		return
	}
	g.recorded = true

	if g.rec == nil {
		return
	}

	av := g.session.Avatar()
	run := storage.Run{
		Seed:       g.session.World().Seed(),
		Difficulty: g.id,
		GoldMined:  av.GoldMined,
		GoldHeld:   av.Currency,
		BlocksDug:  av.BlocksDug,
		Bonus:      av.Bonus,
		Artifact:   reason == storage.EndArtifact,
		EndReason:  reason,
		Duration:   time.Duration(g.session.Clock() * float64(time.Second)),
	}
	saved, err := g.rec.SaveRun(run)
	if err != nil {
		g.log.Error("cannot record run", "err", err)
		return
	}
	g.log.Info("run recorded", "id", saved.ID, "reason", reason, "gold", run.GoldMined)
}

// Session exposes the simulation, mainly for tests and snapshots.
func (g *Game) Session() *core.Session {
	return g.session
}

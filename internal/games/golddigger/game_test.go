package golddigger

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/golddigger/internal/config"
	platformcore "github.com/vovakirdan/golddigger/internal/core"
	"github.com/vovakirdan/golddigger/internal/games/golddigger/core"
	"github.com/vovakirdan/golddigger/internal/registry"
	"github.com/vovakirdan/golddigger/internal/storage"
)

const frame = 50 * time.Millisecond

type fakeRecorder struct {
	runs []storage.Run
}

func (f *fakeRecorder) SaveRun(r storage.Run) (storage.Run, error) {
	r.ID = "run-" + string(rune('a'+len(f.runs)))
	f.runs = append(f.runs, r)
	return r, nil
}

func newTestGame(t *testing.T, rec registry.RunRecorder) *Game {
	t.Helper()
	g := New(ParamsFromConfig(config.DefaultConfig()), WithRecorder(rec))
	g.Reset(platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 7})
	if err := g.Submit(""); err != nil {
		t.Fatalf("welcome Submit() failed: %v", err)
	}
	return g
}

func holding(actions ...platformcore.Action) platformcore.InputFrame {
	in := platformcore.NewInputFrame()
	for _, a := range actions {
		in.Hold(a)
	}
	return in
}

func TestGameWelcomeDialog(t *testing.T) {
	g := New(ParamsFromConfig(config.DefaultConfig()))
	g.Reset(platformcore.RuntimeConfig{Seed: 1})

	d, ok := g.Dialog()
	if !ok || d.Kind != "welcome" {
		t.Fatalf("expected welcome dialog, got %+v (ok=%v)", d, ok)
	}
	if d.HasInput() {
		t.Error("welcome dialog should not take input")
	}
	if g.State().Modal != "welcome" {
		t.Errorf("State().Modal = %q", g.State().Modal)
	}

	// Steps do nothing until the dialog is answered
	g.Step(holding(platformcore.ActionDown), frame)
	if g.Session().Ticks() != 0 {
		t.Error("session should not tick behind a dialog")
	}

	if err := g.Submit(""); err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	if _, ok := g.Dialog(); ok {
		t.Error("dialog should be closed after Submit")
	}
}

func TestGameHoldDigsDown(t *testing.T) {
	g := newTestGame(t, nil)
	start := g.Session().Avatar().Pos

	for i := 0; i < 200 && g.Session().Avatar().BlocksDug == 0; i++ {
		g.Step(holding(platformcore.ActionDown), frame)
	}

	av := g.Session().Avatar()
	if av.BlocksDug != 1 {
		t.Fatalf("expected one dug block, got %d", av.BlocksDug)
	}
	if want := start.Step(core.DirDown); av.Pos != want {
		t.Errorf("finished dig should step into the cell: expected %v, got %v", want, av.Pos)
	}
	if av.Durability >= 10 {
		t.Errorf("digging should wear the bit, durability %.2f", av.Durability)
	}
}

func TestGameReleaseStopsMining(t *testing.T) {
	g := newTestGame(t, nil)

	g.Step(holding(platformcore.ActionDown), frame)
	g.Step(holding(platformcore.ActionDown), frame)
	av := g.Session().Avatar()
	if _, ok := av.MiningTarget(); !ok {
		t.Fatal("expected a mining target while holding down")
	}

	in := platformcore.NewInputFrame()
	in.Release(platformcore.ActionDown)
	g.Step(in, frame)

	av = g.Session().Avatar()
	if _, ok := av.MiningTarget(); ok {
		t.Error("release should stop mining")
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, nil)

	pause := platformcore.NewInputFrame()
	pause.Set(platformcore.ActionPause)

	g.Step(pause, frame)
	if !g.State().Paused {
		t.Fatal("expected paused state")
	}

	ticks := g.Session().Ticks()
	g.Step(holding(platformcore.ActionDown), frame)
	if g.Session().Ticks() != ticks {
		t.Error("paused game should not tick")
	}

	g.Step(pause, frame)
	if g.State().Paused {
		t.Error("expected unpaused state")
	}
}

func TestGameNewGameRecordsRun(t *testing.T) {
	rec := &fakeRecorder{}
	g := newTestGame(t, rec)

	newGame := platformcore.NewInputFrame()
	newGame.Set(platformcore.ActionNewGame)

	// A run that never advanced is not recorded
	g.Step(newGame, frame)
	if len(rec.runs) != 0 {
		t.Fatalf("expected no recorded runs, got %d", len(rec.runs))
	}

	for i := 0; i < 5; i++ {
		g.Step(holding(platformcore.ActionDown), frame)
	}
	seed := g.Session().World().Seed()
	g.Step(newGame, frame)

	if len(rec.runs) != 1 {
		t.Fatalf("expected one recorded run, got %d", len(rec.runs))
	}
	r := rec.runs[0]
	if r.EndReason != storage.EndNewGame || r.Seed != seed || r.Difficulty != "normal" {
		t.Errorf("unexpected run: %+v", r)
	}
	if r.Artifact {
		t.Error("run should not be marked as artifact")
	}
	if g.Session().World().Seed() == seed {
		t.Error("new game should generate a new world")
	}
}

func TestGameFinishRecordsOnce(t *testing.T) {
	rec := &fakeRecorder{}
	g := newTestGame(t, rec)

	g.Step(holding(platformcore.ActionRight), frame)
	g.Finish(storage.EndQuit)
	g.Finish(storage.EndQuit)

	if len(rec.runs) != 1 {
		t.Fatalf("expected one recorded run, got %d", len(rec.runs))
	}
	if rec.runs[0].EndReason != storage.EndQuit {
		t.Errorf("EndReason = %q", rec.runs[0].EndReason)
	}
}

func TestGameSubmitWithoutSession(t *testing.T) {
	g := New(core.DefaultParams())
	if err := g.Submit("10"); err != nil {
		t.Errorf("Submit() before Reset = %v", err)
	}
	if _, ok := g.Dialog(); ok {
		t.Error("no dialog expected before Reset")
	}
	g.Dismiss()
	g.Finish(storage.EndQuit)
}

func TestGamePurchaseDialog(t *testing.T) {
	g := newTestGame(t, nil)
	s := g.Session()

	// Wear the bit out by digging until the purchase dialog appears
	dirs := []platformcore.Action{platformcore.ActionDown, platformcore.ActionRight, platformcore.ActionLeft}
	for i := 0; i < 5000 && s.Modal() != core.ModalPurchase; i++ {
		g.Step(holding(dirs[(i/40)%len(dirs)]), frame)
	}
	if s.Modal() != core.ModalPurchase {
		t.Fatal("expected purchase dialog after wearing out the bit")
	}

	d, ok := g.Dialog()
	if !ok || !d.HasInput() || d.Kind != "purchase" {
		t.Fatalf("unexpected dialog: %+v", d)
	}
	if !strings.Contains(d.Lines[1], "$100 Gold = +1% Durability") {
		t.Errorf("unexpected price line %q", d.Lines[1])
	}

	if err := g.Submit("abc"); err == nil {
		t.Error("expected error for non-numeric input")
	}
	if err := g.Submit("-5"); !errors.Is(err, core.ErrInvalidAmount) {
		t.Errorf("expected ErrInvalidAmount, got %v", err)
	}
	if err := g.Submit("999999"); !errors.Is(err, core.ErrInsufficientGold) {
		t.Errorf("expected ErrInsufficientGold, got %v", err)
	}
	if s.Modal() != core.ModalPurchase {
		t.Fatal("rejected input should keep the dialog open")
	}

	g.Dismiss()
	if s.Modal() != core.ModalNone {
		t.Error("Dismiss should close the purchase dialog")
	}
}

func TestBlockColor(t *testing.T) {
	tests := []struct {
		name  string
		block core.Block
		y     int
		want  platformcore.Color
	}{
		{"artifact", core.Block{Artifact: true, Gold: true}, 48, platformcore.ColorBrightGreen},
		{"gold", core.Block{Gold: true}, 10, platformcore.ColorGold},
		{"shallow dirt", core.Block{Material: core.Dirt}, 10, platformcore.ColorTan},
		{"dirt at threshold", core.Block{Material: core.Dirt}, 20, platformcore.ColorTan},
		{"deep dirt", core.Block{Material: core.Dirt}, 21, platformcore.ColorGray},
		{"stone", core.Block{Material: core.Stone}, 5, platformcore.ColorBrown},
		{"hard stone", core.Block{Material: core.HardStone}, 25, platformcore.ColorGray},
		{"very hard stone", core.Block{Material: core.VeryHardStone}, 40, platformcore.ColorDarkGray},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := tc.block
			if got := blockColor(&b, tc.y, 20); got != tc.want {
				t.Errorf("blockColor() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestProgressGlyph(t *testing.T) {
	tests := []struct {
		progress float64
		want     rune
	}{
		{0.01, '▇'},
		{0.25, '▆'},
		{0.5, '▄'},
		{0.75, '▂'},
		{0.99, '▁'},
		{1.5, '▁'},
	}

	for _, tc := range tests {
		if got := progressGlyph(tc.progress); got != tc.want {
			t.Errorf("progressGlyph(%v) = %q, expected %q", tc.progress, got, tc.want)
		}
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, nil)
	screen := platformcore.NewScreen(80, 24)

	g.Render(screen)

	hud := screen.Row(0) + screen.Row(1) + screen.Row(2)
	for _, want := range []string{"Gold: $0", "Drill bit condition: 10.0%", "Bonus Durability: 0%"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD missing %q:\n%s", want, hud)
		}
	}

	// Avatar sits in the middle of the view
	found := false
	for y := hudHeight; y < screen.Height(); y++ {
		if strings.ContainsRune(screen.Row(y), '█') {
			found = true
			break
		}
	}
	if !found {
		t.Error("avatar not drawn")
	}

	// Sky above the surface
	if c := screen.GetCell(0, hudHeight); c.Bg != platformcore.ColorSky {
		t.Errorf("expected sky background at top of view, got %v", c.Bg)
	}
}

func TestGameRenderTooSmall(t *testing.T) {
	g := newTestGame(t, nil)
	screen := platformcore.NewScreen(30, 8)

	g.Render(screen)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected resize notice")
	}
}

func TestModesRegistered(t *testing.T) {
	modes := registry.List()
	want := []string{"normal", "easy", "hard"}
	if len(modes) < len(want) {
		t.Fatalf("expected %d modes, got %d", len(want), len(modes))
	}
	for i, id := range want {
		if modes[i].ID != id {
			t.Errorf("modes[%d] = %q, expected %q", i, modes[i].ID, id)
		}
	}

	game, err := registry.Create("hard", registry.Env{Config: config.DefaultConfig()})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if game.ID() != "hard" || game.Title() != "Hard" {
		t.Errorf("unexpected game %q %q", game.ID(), game.Title())
	}

	gd := game.(*Game)
	if gd.params.BaseDigTime >= config.DefaultConfig().Player.BaseDigTime {
		t.Error("hard mode should shorten the drill bit")
	}
}

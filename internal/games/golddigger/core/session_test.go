package core

import (
	"errors"
	"testing"
)

const frameDT = 1.0 / 60

// playing returns a session past the welcome dialog.
func playing(t *testing.T, seed int64) *Session {
	t.Helper()
	s := NewSession(DefaultParams(), seed)
	if !s.Confirm() {
		t.Fatal("expected welcome dialog to confirm")
	}
	return s
}

func TestNewSessionOpensWelcome(t *testing.T) {
	s := NewSession(DefaultParams(), 1)

	if s.Modal() != ModalWelcome {
		t.Fatalf("expected welcome modal, got %v", s.Modal())
	}

	res := s.Tick(DirDown, frameDT)
	if s.Ticks() != 0 || res.Modal != ModalWelcome {
		t.Errorf("tick should be suspended behind welcome: ticks=%d modal=%v", s.Ticks(), res.Modal)
	}

	av := s.Avatar()
	if av.Pos != C(25, 3) {
		t.Errorf("start = %v, expected (25,3)", av.Pos)
	}
	if av.Durability != 10 || av.Currency != 0 || av.Bonus != 0 {
		t.Errorf("unexpected fresh avatar: %+v", av)
	}
}

func TestPurchaseExchange(t *testing.T) {
	tests := []struct {
		name         string
		currency     int
		offer        int
		err          error
		wantBonus    int
		wantCurrency int
		wantModal    Modal
	}{
		{"two seconds with remainder", 250, 240, nil, 2, 50, ModalNone},
		{"exact", 300, 300, nil, 3, 0, ModalNone},
		{"below price", 250, 99, nil, 0, 250, ModalNone},
		{"zero", 250, 0, nil, 0, 250, ModalNone},
		{"more than held", 250, 260, ErrInsufficientGold, 0, 250, ModalPurchase},
		{"negative", 250, -100, ErrInvalidAmount, 0, 250, ModalPurchase},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := playing(t, 1)
			s.avatar.Currency = tc.currency
			s.modal = ModalPurchase

			_, err := s.Purchase(tc.offer)
			if !errors.Is(err, tc.err) {
				t.Fatalf("error = %v, expected %v", err, tc.err)
			}
			if s.avatar.Bonus != tc.wantBonus {
				t.Errorf("bonus = %d, expected %d", s.avatar.Bonus, tc.wantBonus)
			}
			if s.avatar.Currency != tc.wantCurrency {
				t.Errorf("currency = %d, expected %d", s.avatar.Currency, tc.wantCurrency)
			}
			if s.modal != tc.wantModal {
				t.Errorf("modal = %v, expected %v", s.modal, tc.wantModal)
			}
		})
	}
}

func TestSubmitPurchase(t *testing.T) {
	tests := []struct {
		raw       string
		err       error
		wantBonus int
	}{
		{"240", nil, 2},
		{"  100 ", nil, 1},
		{"", nil, 0},
		{"abc", ErrInvalidAmount, 0},
		{"12.5", ErrInvalidAmount, 0},
		{"-5", ErrInvalidAmount, 0},
	}

	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			s := playing(t, 1)
			s.avatar.Currency = 250
			s.modal = ModalPurchase

			_, err := s.SubmitPurchase(tc.raw)
			if !errors.Is(err, tc.err) {
				t.Fatalf("error = %v, expected %v", err, tc.err)
			}
			if s.avatar.Bonus != tc.wantBonus {
				t.Errorf("bonus = %d, expected %d", s.avatar.Bonus, tc.wantBonus)
			}
		})
	}
}

func TestPurchaseRequiresDialog(t *testing.T) {
	s := playing(t, 1)
	s.avatar.Currency = 500

	if _, err := s.Purchase(100); !errors.Is(err, ErrNoPurchaseOffered) {
		t.Errorf("expected ErrNoPurchaseOffered, got %v", err)
	}
	if s.avatar.Currency != 500 {
		t.Errorf("currency changed to %d", s.avatar.Currency)
	}
}

func TestDepletionWarningOpensPurchase(t *testing.T) {
	s := playing(t, 1)
	s.avatar.Pos = C(25, 10)
	s.avatar.Durability = 0

	res := s.Tick(DirNone, frameDT)
	if res.From != StateMining || res.To != StateDepletionWarning {
		t.Fatalf("expected Mining -> DepletionWarning, got %v -> %v", res.From, res.To)
	}
	if s.WarningAlpha() != 5 {
		t.Errorf("alpha = %d, expected 5", s.WarningAlpha())
	}

	for i := 0; i < 49; i++ {
		s.Tick(DirNone, frameDT)
	}
	if s.State() != StateDepletionWarning || s.WarningAlpha() != 250 {
		t.Fatalf("after 50 ticks: state=%v alpha=%d", s.State(), s.WarningAlpha())
	}

	res = s.Tick(DirNone, frameDT)
	if res.Modal != ModalPurchase {
		t.Fatalf("expected purchase dialog at full intensity, got %v", res.Modal)
	}
	if s.State() != StateMining {
		t.Errorf("state = %v, expected mining while dialog is open", s.State())
	}

	// Suspended while the dialog is open.
	clock := s.Clock()
	s.Tick(DirDown, frameDT)
	if s.Clock() != clock {
		t.Error("clock advanced behind a modal")
	}

	s.CancelPurchase()
	for i := 0; i < 100; i++ {
		s.Tick(DirNone, frameDT)
	}
	if s.State() != StateMining || s.Modal() != ModalNone {
		t.Errorf("warning should not repeat before resurfacing: state=%v modal=%v", s.State(), s.Modal())
	}
}

func TestResurfaceRestoresDurability(t *testing.T) {
	s := playing(t, 1)
	s.avatar.Pos = C(25, 10)
	s.avatar.Durability = 0
	s.avatar.Currency = 350

	for s.Modal() != ModalPurchase {
		s.Tick(DirNone, frameDT)
	}
	if _, err := s.Purchase(300); err != nil {
		t.Fatalf("purchase: %v", err)
	}

	s.avatar.Pos = C(25, 3)
	res := s.Tick(DirNone, frameDT)
	if res.To != StateResurfaced {
		t.Fatalf("expected resurfaced, got %v", res.To)
	}
	if s.avatar.Durability != 13 {
		t.Errorf("durability = %v, expected 13", s.avatar.Durability)
	}
	if s.avatar.Currency != 50 {
		t.Errorf("currency = %d, expected 50", s.avatar.Currency)
	}

	res = s.Tick(DirNone, frameDT)
	if res.From != StateMining || res.To != StateMining {
		t.Errorf("resurfaced should return to mining: %v -> %v", res.From, res.To)
	}
}

func TestResurfaceDuringWarning(t *testing.T) {
	s := playing(t, 1)
	s.avatar.Durability = 0

	res := s.Tick(DirNone, frameDT)
	if res.To != StateResurfaced {
		t.Fatalf("expected resurfaced at the surface, got %v", res.To)
	}
	if s.avatar.Durability != 10 || s.WarningAlpha() != 0 {
		t.Errorf("durability=%v alpha=%d", s.avatar.Durability, s.WarningAlpha())
	}

	var kinds []EventKind
	for _, e := range res.Events {
		kinds = append(kinds, e.Kind)
	}
	if len(kinds) != 2 || kinds[0] != EventDepleted || kinds[1] != EventResurfaced {
		t.Errorf("events = %v, expected [depleted resurfaced]", kinds)
	}
}

func TestArtifactEndsRun(t *testing.T) {
	s := playing(t, 3)
	art := s.params.Gen.ArtifactCoord()
	s.avatar.Pos = art.Add(0, -1)
	s.avatar.Currency = 700
	s.avatar.Bonus = 4
	oldSeed := s.world.Seed()

	found := 0
	for i := 0; i < 10; i++ {
		res := s.Tick(DirDown, frameDT)
		for _, e := range res.Events {
			if e.Kind == EventArtifactFound {
				found++
			}
		}
	}
	if found != 1 {
		t.Fatalf("artifact found %d times, expected 1", found)
	}
	if s.Modal() != ModalArtifactFound {
		t.Fatalf("modal = %v, expected artifact_found", s.Modal())
	}

	if !s.Confirm() {
		t.Fatal("confirm should accept the artifact dialog")
	}

	av := s.Avatar()
	if av.Pos != s.params.Start() || av.Currency != 0 || av.Bonus != 0 || av.Durability != 10 {
		t.Errorf("expected a fresh avatar, got %+v", av)
	}
	if s.Runs() != 1 {
		t.Errorf("runs = %d, expected 1", s.Runs())
	}
	if s.world.Seed() == oldSeed {
		t.Error("expected a new world")
	}
	if s.Modal() != ModalNone {
		t.Errorf("modal = %v, expected none", s.Modal())
	}
}

func TestConfirmWithoutDialog(t *testing.T) {
	s := playing(t, 1)
	if s.Confirm() {
		t.Error("confirm should be a no-op with no dialog open")
	}
}

func TestNegativeDeltaIgnored(t *testing.T) {
	s := playing(t, 1)
	s.Tick(DirNone, -1)
	if s.Ticks() != 0 || s.Clock() != 0 {
		t.Errorf("negative dt advanced the session: ticks=%d clock=%v", s.Ticks(), s.Clock())
	}
}

func TestSessionDeterminism(t *testing.T) {
	script := []Dir{DirDown, DirDown, DirDown, DirLeft, DirLeft, DirNone, DirDown, DirRight, DirUp}

	run := func() Snapshot {
		s := playing(t, 99)
		for i := 0; i < 600; i++ {
			d := script[(i/20)%len(script)]
			if d == DirNone {
				s.Release()
			}
			s.Tick(d, frameDT)
			if s.Modal() == ModalPurchase {
				s.CancelPurchase()
			}
		}
		return s.Snapshot()
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("snapshots differ:\n%+v\n%+v", a, b)
	}
	if a.Tick == 0 {
		t.Error("expected the session to advance")
	}
}

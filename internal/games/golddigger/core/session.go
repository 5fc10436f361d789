package core

import (
	"errors"
	"math/rand"
)

// ErrNoPurchaseOffered is returned when gold is spent outside the purchase dialog.
var ErrNoPurchaseOffered = errors.New("no purchase offered")

// ResourceState tracks the drill bit lifecycle.
type ResourceState uint8

const (
	StateMining           ResourceState = iota // Normal play
	StateDepletionWarning                      // Bit is spent, warning ramping up
	StateResurfaced                            // Bit restored this tick; back to Mining next tick
)

// String returns the state name.
func (s ResourceState) String() string {
	switch s {
	case StateMining:
		return "mining"
	case StateDepletionWarning:
		return "depletion_warning"
	case StateResurfaced:
		return "resurfaced"
	default:
		return "unknown"
	}
}

// Modal is an interaction the host must resolve before ticking resumes.
type Modal uint8

const (
	ModalNone Modal = iota
	ModalWelcome
	ModalArtifactFound
	ModalPurchase
)

// String returns the modal name.
func (m Modal) String() string {
	switch m {
	case ModalNone:
		return "none"
	case ModalWelcome:
		return "welcome"
	case ModalArtifactFound:
		return "artifact_found"
	case ModalPurchase:
		return "purchase"
	default:
		return "unknown"
	}
}

// EventKind identifies a notable simulation event.
type EventKind uint8

const (
	EventBlockDug EventKind = iota
	EventGoldFound
	EventArtifactFound
	EventDepleted
	EventPurchaseOffered
	EventResurfaced
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventBlockDug:
		return "block_dug"
	case EventGoldFound:
		return "gold_found"
	case EventArtifactFound:
		return "artifact_found"
	case EventDepleted:
		return "depleted"
	case EventPurchaseOffered:
		return "purchase_offered"
	case EventResurfaced:
		return "resurfaced"
	default:
		return "unknown"
	}
}

// Event records something that happened during a tick.
type Event struct {
	Kind   EventKind
	At     Coord
	Amount int // Gold awarded or seconds restored, depending on Kind
}

// TickResult contains everything that happened during one Session tick.
type TickResult struct {
	Mine   MineResult
	From   ResourceState
	To     ResourceState
	Modal  Modal
	Events []Event
}

// Params bundles every tunable of a session.
type Params struct {
	Gen            GenParams
	Rules          Rules
	BaseDigTime    float64 // Durability restored on resurfacing, before bonus
	WarningStep    int     // Warning intensity added per tick
	WarningMax     int     // Intensity at which the purchase dialog opens
	PricePerSecond int     // Gold per second of bonus durability
}

// DefaultParams returns the stock game tuning.
func DefaultParams() Params {
	return Params{
		Gen:            DefaultGenParams(),
		Rules:          DefaultRules(),
		BaseDigTime:    10,
		WarningStep:    5,
		WarningMax:     255,
		PricePerSecond: 100,
	}
}

// Start returns the avatar spawn cell.
func (p Params) Start() Coord {
	return C(p.Gen.GridSize/2, p.Gen.SurfaceRows)
}

// Session owns the world and avatar of the current run and drives the
// drill bit state machine on top of the arbiter.
type Session struct {
	params  Params
	rng     *rand.Rand
	arbiter *Arbiter

	world  *World
	avatar *Avatar

	state ResourceState
	modal Modal
	alpha int
	// offered is set once the purchase dialog has been shown for the
	// current depletion; it is cleared only by resurfacing.
	offered bool

	clock float64 // Seconds of simulated time in this run
	tick  uint64
	runs  int
}

// NewSession creates a session and opens on the welcome dialog.
func NewSession(p Params, seed int64) *Session {
	s := &Session{
		params:  p,
		rng:     rand.New(rand.NewSource(seed)),
		arbiter: NewArbiter(p.Rules),
	}
	s.newRun()
	s.modal = ModalWelcome
	return s
}

// newRun builds a fresh world and avatar and clears all resource state.
func (s *Session) newRun() {
	s.world = NewWorld(s.params.Gen, s.rng.Int63())
	s.avatar = NewAvatar(s.params.Start(), s.params.BaseDigTime, s.params.Rules.MovementDelay)
	s.state = StateMining
	s.modal = ModalNone
	s.alpha = 0
	s.offered = false
	s.clock = 0
	s.tick = 0
}

// Reset discards the current run and starts a new world.
// Bonus durability is not carried over.
func (s *Session) Reset() {
	s.newRun()
	s.runs++
}

// Tick advances the simulation by dt seconds with the given held direction.
// Nothing changes while a modal is open.
func (s *Session) Tick(dir Dir, dt float64) TickResult {
	if s.state == StateResurfaced {
		s.state = StateMining
	}
	res := TickResult{From: s.state}

	if s.modal != ModalNone || dt < 0 {
		res.To = s.state
		res.Modal = s.modal
		return res
	}

	s.tick++
	s.clock += dt
	res.Mine = s.arbiter.Step(s.world, s.avatar, dir, s.clock, dt)

	switch res.Mine.Outcome {
	case OutcomeDug:
		res.Events = append(res.Events, Event{Kind: EventBlockDug, At: res.Mine.Target})
		if res.Mine.GoldAwarded > 0 {
			res.Events = append(res.Events, Event{
				Kind:   EventGoldFound,
				At:     res.Mine.Target,
				Amount: res.Mine.GoldAwarded,
			})
		}
	case OutcomeArtifact:
		res.Events = append(res.Events, Event{Kind: EventArtifactFound, At: res.Mine.Target})
		s.modal = ModalArtifactFound
		res.To = s.state
		res.Modal = s.modal
		return res
	}

	s.updateResources(&res)

	res.To = s.state
	res.Modal = s.modal
	return res
}

// updateResources applies the Mining -> DepletionWarning -> Resurfaced transitions.
func (s *Session) updateResources(res *TickResult) {
	if s.state == StateMining && !s.offered && s.avatar.Durability <= 0 {
		s.state = StateDepletionWarning
		s.alpha = 0
		res.Events = append(res.Events, Event{Kind: EventDepleted, At: s.avatar.Pos})
	}

	if s.state == StateDepletionWarning {
		s.alpha = min(s.alpha+s.params.WarningStep, s.params.WarningMax)
		if s.alpha >= s.params.WarningMax {
			s.offered = true
			s.modal = ModalPurchase
			s.state = StateMining
			res.Events = append(res.Events, Event{Kind: EventPurchaseOffered, At: s.avatar.Pos})
			// Resurfacing waits until the dialog is closed so a purchase
			// made now counts toward the restored durability.
			return
		}
	}

	if s.avatar.Pos.Y == s.world.Surface() && (s.state == StateDepletionWarning || s.offered) {
		restored := s.resurface()
		res.Events = append(res.Events, Event{
			Kind:   EventResurfaced,
			At:     s.avatar.Pos,
			Amount: int(restored),
		})
	}
}

// resurface refills the drill bit and returns the new durability.
func (s *Session) resurface() float64 {
	s.arbiter.Release(s.world, s.avatar)
	s.avatar.Durability = s.MaxDurability()
	s.alpha = 0
	s.offered = false
	s.state = StateResurfaced
	return s.avatar.Durability
}

// Release tells the session the player let go of a direction.
func (s *Session) Release() {
	if s.modal != ModalNone {
		return
	}
	s.arbiter.Release(s.world, s.avatar)
}

// Confirm acknowledges the welcome or artifact dialog.
// Acknowledging the artifact starts a new run. Returns false if there was
// nothing to confirm.
func (s *Session) Confirm() bool {
	switch s.modal {
	case ModalWelcome:
		s.modal = ModalNone
		return true
	case ModalArtifactFound:
		s.Reset()
		return true
	default:
		return false
	}
}

// Purchase spends gold on bonus durability and closes the purchase dialog.
// On error nothing changes and the dialog stays open.
func (s *Session) Purchase(gold int) (Purchase, error) {
	if s.modal != ModalPurchase {
		return Purchase{}, ErrNoPurchaseOffered
	}
	p, err := Exchange(s.avatar.Currency, gold, s.params.PricePerSecond)
	if err != nil {
		return Purchase{}, err
	}
	s.avatar.Bonus += p.Seconds
	s.avatar.Currency -= p.Spent
	s.modal = ModalNone
	return p, nil
}

// SubmitPurchase parses typed input and applies it as a purchase.
func (s *Session) SubmitPurchase(raw string) (Purchase, error) {
	if s.modal != ModalPurchase {
		return Purchase{}, ErrNoPurchaseOffered
	}
	gold, err := ParseGold(raw)
	if err != nil {
		return Purchase{}, err
	}
	return s.Purchase(gold)
}

// CancelPurchase closes the purchase dialog without spending.
func (s *Session) CancelPurchase() {
	if s.modal == ModalPurchase {
		s.modal = ModalNone
	}
}

// MaxDurability is what resurfacing restores the drill bit to.
func (s *Session) MaxDurability() float64 {
	return s.params.BaseDigTime + float64(s.avatar.Bonus)
}

// World returns the current world.
func (s *Session) World() *World {
	return s.world
}

// Avatar returns a copy of the avatar state.
func (s *Session) Avatar() Avatar {
	return *s.avatar
}

// State returns the current resource state.
func (s *Session) State() ResourceState {
	return s.state
}

// Modal returns the interaction the host must resolve, if any.
func (s *Session) Modal() Modal {
	return s.modal
}

// WarningAlpha returns the depletion warning intensity in [0, WarningMax].
func (s *Session) WarningAlpha() int {
	return s.alpha
}

// Clock returns simulated seconds since the run started.
func (s *Session) Clock() float64 {
	return s.clock
}

// Ticks returns the number of simulated ticks in this run.
func (s *Session) Ticks() uint64 {
	return s.tick
}

// Runs returns how many times the session has been reset.
func (s *Session) Runs() int {
	return s.runs
}

// Params returns the session tuning.
func (s *Session) Params() Params {
	return s.params
}

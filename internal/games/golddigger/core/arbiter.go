package core

import "math"

// Outcome is what a directional input resolved to on one tick.
type Outcome uint8

const (
	OutcomeIdle      Outcome = iota // No direction held
	OutcomeBlocked                  // Target outside the world
	OutcomeCooldown                 // Free cell, but the move delay has not elapsed
	OutcomeMoved                    // Walked into a free cell
	OutcomeExhausted                // Undug target, drill bit is spent
	OutcomeMining                   // Drilling continues
	OutcomeDug                      // Block finished and avatar stepped in
	OutcomeArtifact                 // Artifact uncovered
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeIdle:
		return "idle"
	case OutcomeBlocked:
		return "blocked"
	case OutcomeCooldown:
		return "cooldown"
	case OutcomeMoved:
		return "moved"
	case OutcomeExhausted:
		return "exhausted"
	case OutcomeMining:
		return "mining"
	case OutcomeDug:
		return "dug"
	case OutcomeArtifact:
		return "artifact"
	default:
		return "unknown"
	}
}

// MineResult describes the effect of one arbiter step.
type MineResult struct {
	Outcome         Outcome
	Target          Coord
	Progress        float64 // Progress of Target after the step
	DurabilitySpent float64
	GoldAwarded     int
}

// Rules are the constants the arbiter applies.
type Rules struct {
	MineTimes     MineTimes
	MovementDelay float64 // Seconds between free moves
	GoldValue     int     // Currency per gold block
}

// DefaultRules returns the stock mining rules.
func DefaultRules() Rules {
	return Rules{
		MineTimes:     DefaultMineTimes(),
		MovementDelay: 0.05,
		GoldValue:     100,
	}
}

// Arbiter decides whether an input moves the avatar or drills.
// It holds no references to game state; world and avatar are lent per call.
type Arbiter struct {
	rules Rules
}

// NewArbiter creates an arbiter for the given rules.
func NewArbiter(r Rules) *Arbiter {
	return &Arbiter{rules: r}
}

// Step resolves one tick of directional input.
//
// Resolution order:
//  1. No direction: nothing happens.
//  2. Target outside the world: nothing happens.
//  3. Target empty or already dug: move once the cooldown has elapsed.
//  4. Drill bit spent: undug targets are off limits.
//  5. Artifact: dug on contact, no durability used.
//  6. Otherwise drill, spending dt of durability, and step in when done.
func (a *Arbiter) Step(w *World, av *Avatar, dir Dir, now, dt float64) MineResult {
	av.Moving = dir
	if dir == DirNone {
		return MineResult{Outcome: OutcomeIdle}
	}

	target := av.Pos.Step(dir)
	res := MineResult{Target: target}

	if !w.InBounds(target) {
		res.Outcome = OutcomeBlocked
		return res
	}

	b, ok := w.Block(target)
	if !ok || !b.Solid() {
		if !av.canMove(now, a.rules.MovementDelay) {
			res.Outcome = OutcomeCooldown
			return res
		}
		av.Pos = target
		av.LastMove = now
		av.stopMining()
		res.Outcome = OutcomeMoved
		if ok {
			res.Progress = b.Progress
		}
		return res
	}

	if av.Durability <= 0 {
		res.Outcome = OutcomeExhausted
		res.Progress = b.Progress
		return res
	}

	if b.Artifact {
		b.Dug = true
		av.stopMining()
		res.Outcome = OutcomeArtifact
		res.Progress = b.Progress
		return res
	}

	mineTime := a.rules.MineTimes.For(b.Material)
	if cur, mining := av.MiningTarget(); !mining || cur != target {
		av.startMining(target, now, b.Progress, mineTime)
	}

	// Drilling only advances by the durability actually spent.
	res.DurabilitySpent = math.Min(dt, av.Durability)
	av.Durability -= res.DurabilitySpent
	av.MiningElapsed += res.DurabilitySpent
	b.Progress = progressOf(av.MiningElapsed, mineTime)
	res.Progress = b.Progress

	if b.Progress < 1 {
		res.Outcome = OutcomeMining
		return res
	}

	b.Dug = true
	if b.Gold {
		av.Currency += a.rules.GoldValue
		av.GoldMined += a.rules.GoldValue
		res.GoldAwarded = a.rules.GoldValue
	}
	av.BlocksDug++
	av.Pos = target
	av.stopMining()
	res.Outcome = OutcomeDug
	return res
}

// Release handles the player letting go of a direction mid-dig.
// Progress stays on the block so a later visit resumes from it.
func (a *Arbiter) Release(w *World, av *Avatar) {
	if target, mining := av.MiningTarget(); mining {
		if b, ok := w.Block(target); ok && !b.Dug {
			b.Progress = progressOf(av.MiningElapsed, a.rules.MineTimes.For(b.Material))
		}
	}
	av.stopMining()
}

// progressOf converts elapsed drilling time to a block fraction.
func progressOf(elapsed, mineTime float64) float64 {
	if mineTime <= 0 {
		return 1
	}
	return math.Min(elapsed/mineTime, 1)
}

package core

// Avatar is the player-controlled digger.
type Avatar struct {
	Pos        Coord
	Currency   int
	Durability float64 // Seconds of drilling left
	Bonus      int     // Purchased seconds added on every resurfacing

	Moving   Dir
	LastMove float64 // Session clock of the last free move

	target        Coord
	mining        bool
	MiningElapsed float64
	MiningStarted float64

	// Run statistics
	BlocksDug int
	GoldMined int
}

// NewAvatar places a fresh avatar at start with a full drill bit.
// lastMove is set so the first move is never held back by the cooldown.
func NewAvatar(start Coord, durability, movementDelay float64) *Avatar {
	return &Avatar{
		Pos:        start,
		Durability: durability,
		LastMove:   -movementDelay,
	}
}

// MiningTarget returns the block currently being drilled, if any.
func (a *Avatar) MiningTarget() (Coord, bool) {
	return a.target, a.mining
}

// startMining anchors elapsed time to progress already stored on the block.
func (a *Avatar) startMining(c Coord, now, progress, mineTime float64) {
	a.target = c
	a.mining = true
	a.MiningStarted = now
	a.MiningElapsed = progress * mineTime
}

// stopMining clears all active mining state.
func (a *Avatar) stopMining() {
	a.target = Coord{}
	a.mining = false
	a.Moving = DirNone
	a.MiningElapsed = 0
	a.MiningStarted = 0
}

// canMove reports whether the movement cooldown has elapsed.
func (a *Avatar) canMove(now, delay float64) bool {
	return now-a.LastMove >= delay
}

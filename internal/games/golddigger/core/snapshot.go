package core

// Snapshot captures the session state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Runs       int
	WorldSeed  int64
	PosX       int
	PosY       int
	Currency   int
	Durability float64
	Bonus      int
	Mining     bool
	TargetX    int
	TargetY    int
	BlocksDug  int
	State      ResourceState
	Modal      Modal
	Alpha      int
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	target, mining := s.avatar.MiningTarget()
	return Snapshot{
		Tick:       s.tick,
		Runs:       s.runs,
		WorldSeed:  s.world.Seed(),
		PosX:       s.avatar.Pos.X,
		PosY:       s.avatar.Pos.Y,
		Currency:   s.avatar.Currency,
		Durability: s.avatar.Durability,
		Bonus:      s.avatar.Bonus,
		Mining:     mining,
		TargetX:    target.X,
		TargetY:    target.Y,
		BlocksDug:  s.avatar.BlocksDug,
		State:      s.state,
		Modal:      s.modal,
		Alpha:      s.alpha,
	}
}

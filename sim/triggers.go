package sim

// TriggerSystem applies the one-shot effects of the input frame.
type TriggerSystem struct{}

func NewTriggerSystem() *TriggerSystem {
	return &TriggerSystem{}
}

func (t *TriggerSystem) Update(s *State) {
	if s == nil {
		return
	}
	in := s.Input
	if in.Restart {
		s.Restart()
	}
	if in.Jump {
		s.Jump()
	}
	if in.Dash {
		s.Dash()
	}
	if in.Attack {
		s.Attack()
	}
}

// Jump launches the player if an air jump remains. It reports whether it fired.
func (s *State) Jump() bool {
	p := &s.Player
	if p.Jumps <= 0 {
		return false
	}
	p.VY = -s.Profile.JumpSpeed
	p.Jumps--
	return true
}

// Dash boosts VX in the facing direction when the cooldown is ready.
func (s *State) Dash() bool {
	p := &s.Player
	if p.DashCooldown > 0 {
		return false
	}
	p.VX = s.Profile.DashSpeed * p.Facing
	p.DashCooldown = s.Profile.DashFrames
	return true
}

// Attack starts the attack timer unless an attack is already active.
func (s *State) Attack() bool {
	p := &s.Player
	if p.AttackTimer > 0 {
		return false
	}
	p.AttackTimer = s.Profile.AttackFrames
	return true
}

package sim

// CooldownSystem decrements the frame timers. Dash and attack timers keep
// counting below zero and read as ready whenever they are <= 0.
type CooldownSystem struct{}

func NewCooldownSystem() *CooldownSystem {
	return &CooldownSystem{}
}

func (c *CooldownSystem) Update(s *State) {
	if s == nil {
		return
	}
	p := &s.Player
	p.DashCooldown--
	p.AttackTimer--
	if p.Invulnerable > 0 {
		p.Invulnerable--
	}
}

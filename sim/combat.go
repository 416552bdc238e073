package sim

import "math"

// CombatSystem resolves melee damage on enemies and, when the profile
// enables it, contact damage on the player.
type CombatSystem struct{}

func NewCombatSystem() *CombatSystem {
	return &CombatSystem{}
}

func (c *CombatSystem) Update(s *State) {
	if s == nil {
		return
	}
	s.resolveMelee()
	s.resolveContact()
}

func (s *State) resolveMelee() {
	p := s.Player
	if !p.Attacking() {
		return
	}
	dmg := s.Profile.AttackDamage
	if dmg <= 0 {
		dmg = 1
	}
	for i := range s.Enemies {
		e := &s.Enemies[i]
		if math.Abs(p.X-e.X) < s.Profile.AttackRange {
			e.Health -= dmg
		}
	}

	// compact after the scan so removal never disturbs iteration
	alive := s.Enemies[:0]
	for _, e := range s.Enemies {
		if e.Alive() {
			alive = append(alive, e)
			continue
		}
		s.events.Push(Event{Kind: EventEnemyDefeated, Stage: s.StageIndex})
	}
	clear(s.Enemies[len(alive):])
	s.Enemies = alive
}

func (s *State) resolveContact() {
	prof := s.Profile
	p := &s.Player
	if prof.ContactDamage <= 0 || p.Invulnerable > 0 {
		return
	}
	box := p.Rect()
	for _, e := range s.Enemies {
		if !box.Intersects(e.Rect()) {
			continue
		}
		p.Health -= prof.ContactDamage
		p.Invulnerable = prof.InvulnerableFrames
		s.events.Push(Event{Kind: EventPlayerHit, Stage: s.StageIndex})
		if p.Health <= 0 {
			s.events.Push(Event{Kind: EventPlayerDefeated, Stage: s.StageIndex})
			s.Restart()
		}
		return
	}
}

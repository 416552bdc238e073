package sim

// CollisionSystem lands a falling player on platform tops. Platforms are
// one-directional: side and underside overlaps are not resolved. A landing
// band only filters players that were already below the top last frame.
type CollisionSystem struct{}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

func (c *CollisionSystem) Update(s *State) {
	if s == nil {
		return
	}
	p := &s.Player
	band := s.Profile.LandingBand
	for _, plat := range s.Platforms {
		if p.VY <= 0 {
			continue
		}
		box := p.Rect()
		if !box.Intersects(plat) {
			continue
		}
		// a bottom that started the frame at or above the top always lands,
		// however far this frame's fall carried it
		prevBottom := box.Bottom() - p.VY
		if band > 0 && box.Bottom()-plat.Y > band && prevBottom > plat.Y {
			continue
		}
		p.Y = plat.Y - p.H
		p.VY = 0
		p.Jumps = s.Profile.MaxJumps
	}
}

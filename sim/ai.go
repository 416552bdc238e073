package sim

import (
	"log"

	"github.com/milk9111/fragmentrun/common"
)

// EnemyAISystem moves every enemy a constant step toward the player's X.
type EnemyAISystem struct{}

func NewEnemyAISystem() *EnemyAISystem {
	return &EnemyAISystem{}
}

func (a *EnemyAISystem) Update(s *State) {
	if s == nil {
		return
	}
	px := s.Player.X
	speed := s.Profile.EnemySpeed
	for i := range s.Enemies {
		e := &s.Enemies[i]
		e.X += s.chaseStep(e.X, px, speed)
		e.Anim += s.Profile.EnemyAnimStep
	}
}

func (s *State) chaseStep(enemyX, playerX, speed float64) float64 {
	if s.ai != nil {
		dx, err := s.ai.step(enemyX, playerX, speed)
		if err == nil {
			return dx
		}
		log.Printf("ai: script %s failed, using built-in chase: %v", s.ai.name, err)
		s.ai = nil
	}
	return common.Sign(playerX-enemyX) * speed
}

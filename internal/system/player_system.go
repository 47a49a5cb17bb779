// internal/system/player_system.go
package system

import (
	"go-pixel-defense/internal/entity"
)

// PlayerSystem отвечает за здоровье и золото игрока.
type PlayerSystem struct {
	ecs *entity.ECS
}

func NewPlayerSystem(ecs *entity.ECS) *PlayerSystem {
	return &PlayerSystem{ecs: ecs}
}

// Apply subtracts healthLost (clamped at zero) and adds goldGained.
// Returns true when the player's health is exhausted.
func (s *PlayerSystem) Apply(healthLost, goldGained int) bool {
	p := s.ecs.Player
	if healthLost > 0 {
		p.Health -= healthLost
		if p.Health < 0 {
			p.Health = 0
		}
	}
	p.Gold += goldGained
	return p.Health <= 0
}

// Spend deducts amount if the player can afford it.
func (s *PlayerSystem) Spend(amount int) bool {
	if amount < 0 || s.ecs.Player.Gold < amount {
		return false
	}
	s.ecs.Player.Gold -= amount
	return true
}

// internal/defs/ability.go
package defs

import "fmt"

// AbilityKind names one case of the Ability sum type.
type AbilityKind string

const (
	AbilityPoison AbilityKind = "POISON"
	AbilityBurn   AbilityKind = "BURN"
	AbilitySlow   AbilityKind = "SLOW"
	AbilitySplash AbilityKind = "SPLASH"
	AbilityChain  AbilityKind = "CHAIN"
)

// Ability is the closed set of on-hit behaviours a tower can carry.
// Every projectile holds a copy of its tower's ability.
// New kinds are added here and in system.AbilityResolver, never as flags.
type Ability interface {
	Kind() AbilityKind
	Validate() error
	isAbility()
}

// Poison — урон со временем, не стакается с другим Poison.
type Poison struct {
	DPS      float64 `yaml:"dps"`
	Duration float64 `yaml:"duration"` // секунды
}

// Burn — тот же DoT, что и Poison, но отдельного вида: они стакаются между собой.
type Burn struct {
	DPS      float64 `yaml:"dps"`
	Duration float64 `yaml:"duration"`
}

// Slow multiplies movement speed by Factor while active.
type Slow struct {
	Factor   float64 `yaml:"factor"`
	Duration float64 `yaml:"duration"`
}

// Splash hits every other enemy within Radius (grid units) of the primary target.
type Splash struct {
	Radius float64 `yaml:"radius"`
}

// Chain jumps from the primary target to up to MaxTargets further enemies.
type Chain struct {
	MaxTargets    int     `yaml:"max_targets"`
	Range         float64 `yaml:"range"`           // grid units, measured from the previous hop
	FalloffPerHop float64 `yaml:"falloff_per_hop"` // damage multiplier per hop
}

func (Poison) Kind() AbilityKind { return AbilityPoison }
func (Burn) Kind() AbilityKind   { return AbilityBurn }
func (Slow) Kind() AbilityKind   { return AbilitySlow }
func (Splash) Kind() AbilityKind { return AbilitySplash }
func (Chain) Kind() AbilityKind  { return AbilityChain }

func (Poison) isAbility() {}
func (Burn) isAbility()   {}
func (Slow) isAbility()   {}
func (Splash) isAbility() {}
func (Chain) isAbility()  {}

func (a Poison) Validate() error { return validateDoT(AbilityPoison, a.DPS, a.Duration) }
func (a Burn) Validate() error   { return validateDoT(AbilityBurn, a.DPS, a.Duration) }

func (a Slow) Validate() error {
	if a.Factor <= 0 || a.Factor > 1 {
		return fmt.Errorf("%s: factor %.3f is outside (0, 1]", AbilitySlow, a.Factor)
	}
	if a.Duration <= 0 {
		return fmt.Errorf("%s: duration must be positive, got %.3f", AbilitySlow, a.Duration)
	}
	return nil
}

func (a Splash) Validate() error {
	if a.Radius <= 0 {
		return fmt.Errorf("%s: radius must be positive, got %.3f", AbilitySplash, a.Radius)
	}
	return nil
}

func (a Chain) Validate() error {
	if a.MaxTargets <= 0 {
		return fmt.Errorf("%s: max_targets must be positive, got %d", AbilityChain, a.MaxTargets)
	}
	if a.Range <= 0 {
		return fmt.Errorf("%s: range must be positive, got %.3f", AbilityChain, a.Range)
	}
	if a.FalloffPerHop < 0 || a.FalloffPerHop > 1 {
		return fmt.Errorf("%s: falloff_per_hop %.3f is outside [0, 1]", AbilityChain, a.FalloffPerHop)
	}
	return nil
}

func validateDoT(kind AbilityKind, dps, duration float64) error {
	if dps < 0 {
		return fmt.Errorf("%s: dps must not be negative, got %.3f", kind, dps)
	}
	if duration <= 0 {
		return fmt.Errorf("%s: duration must be positive, got %.3f", kind, duration)
	}
	return nil
}

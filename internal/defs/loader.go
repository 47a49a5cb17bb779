// internal/defs/loader.go
package defs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Library bundles every static table the simulation reads. It is built once
// at startup and never mutated afterwards.
type Library struct {
	Towers  map[string]TowerDefinition
	Enemies map[string]EnemyDefinition
	Waves   []WaveDefinition
	Level   LevelDefinition
}

// DefaultLibrary returns the built-in tables.
func DefaultLibrary() *Library {
	return &Library{
		Towers:  defaultTowers(),
		Enemies: defaultEnemies(),
		Waves:   defaultWaves(),
		Level:   defaultLevel(),
	}
}

// Tower looks up a tower definition by ID.
func (l *Library) Tower(id string) (TowerDefinition, bool) {
	def, ok := l.Towers[id]
	return def, ok
}

// Enemy looks up an enemy definition by ID.
func (l *Library) Enemy(id string) (EnemyDefinition, bool) {
	def, ok := l.Enemies[id]
	return def, ok
}

// Validate checks cross references and value ranges of all tables.
func (l *Library) Validate() error {
	var errs []error
	for id, t := range l.Towers {
		if t.ID != id {
			errs = append(errs, fmt.Errorf("tower %q: id field is %q", id, t.ID))
		}
		if t.FireRate <= 0 {
			errs = append(errs, fmt.Errorf("tower %q: fire_rate must be positive", id))
		}
		if t.Range <= 0 || t.ProjectileSpeed <= 0 {
			errs = append(errs, fmt.Errorf("tower %q: range and projectile_speed must be positive", id))
		}
		if t.Ability == nil {
			errs = append(errs, fmt.Errorf("tower %q: no ability", id))
			continue
		}
		if err := t.Ability.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("tower %q: %w", id, err))
		}
	}
	for id, e := range l.Enemies {
		if e.Health <= 0 || e.Speed <= 0 {
			errs = append(errs, fmt.Errorf("enemy %q: health and speed must be positive", id))
		}
	}
	for i, w := range l.Waves {
		if w.TimeLimit <= 0 {
			errs = append(errs, fmt.Errorf("wave %d: time_limit must be positive", i+1))
		}
		for _, g := range w.Groups {
			if _, ok := l.Enemies[g.EnemyID]; !ok {
				errs = append(errs, fmt.Errorf("wave %d: unknown enemy %q", i+1, g.EnemyID))
			}
			if g.Count <= 0 {
				errs = append(errs, fmt.Errorf("wave %d: %s count must be positive, got %d", i+1, g.EnemyID, g.Count))
			}
			if g.SpawnDelay < 0 {
				errs = append(errs, fmt.Errorf("wave %d: %s spawn_delay must not be negative, got %s", i+1, g.EnemyID, g.SpawnDelay))
			}
		}
	}
	if _, err := l.Level.BuildMap(); err != nil {
		errs = append(errs, fmt.Errorf("level: %w", err))
	}
	return errors.Join(errs...)
}

// libraryFile is the on-disk shape of a definitions file. Every section is
// optional; whatever is present replaces the matching default entries.
type libraryFile struct {
	Towers  []towerFile       `yaml:"towers"`
	Enemies []EnemyDefinition `yaml:"enemies"`
	Waves   []WaveDefinition  `yaml:"waves"`
	Level   *LevelDefinition  `yaml:"level"`
}

type towerFile struct {
	TowerDefinition `yaml:",inline"`
	Ability         abilityNode `yaml:"ability"`
}

// abilityNode decodes the Ability tagged union: the "type" key selects the case.
type abilityNode struct {
	Ability
}

func (n *abilityNode) UnmarshalYAML(value *yaml.Node) error {
	var head struct {
		Type string `yaml:"type"`
	}
	if err := value.Decode(&head); err != nil {
		return err
	}

	var (
		a   Ability
		err error
	)
	switch AbilityKind(strings.ToUpper(head.Type)) {
	case AbilityPoison:
		var p Poison
		err = value.Decode(&p)
		a = p
	case AbilityBurn:
		var b Burn
		err = value.Decode(&b)
		a = b
	case AbilitySlow:
		var s Slow
		err = value.Decode(&s)
		a = s
	case AbilitySplash:
		var s Splash
		err = value.Decode(&s)
		a = s
	case AbilityChain:
		var c Chain
		err = value.Decode(&c)
		a = c
	default:
		return fmt.Errorf("line %d: unknown ability type %q", value.Line, head.Type)
	}
	if err != nil {
		return err
	}
	n.Ability = a
	return nil
}

// Load reads YAML overrides from r and merges them onto the default tables.
func Load(r io.Reader) (*Library, error) {
	var file libraryFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode definitions: %w", err)
	}

	lib := DefaultLibrary()
	for _, tf := range file.Towers {
		def := tf.TowerDefinition
		def.Ability = tf.Ability.Ability
		lib.Towers[def.ID] = def
	}
	for _, e := range file.Enemies {
		lib.Enemies[e.ID] = e
	}
	if len(file.Waves) > 0 {
		lib.Waves = file.Waves
	}
	if file.Level != nil {
		lib.Level = *file.Level
	}

	if err := lib.Validate(); err != nil {
		return nil, fmt.Errorf("invalid definitions: %w", err)
	}
	return lib, nil
}

// LoadFile reads the definitions file at path.
func LoadFile(path string) (*Library, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open definitions file: %w", err)
	}
	defer f.Close()

	lib, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lib, nil
}

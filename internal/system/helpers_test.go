package system

import (
	"time"

	"github.com/stretchr/testify/require"

	"go-pixel-defense/internal/component"
	"go-pixel-defense/internal/defs"
	"go-pixel-defense/internal/entity"
	"go-pixel-defense/internal/event"
	"go-pixel-defense/pkg/gridmap"
)

// testLibrary — прямая дорога по строке 1 длиной ровно 10 клеток (400 px).
func testLibrary(waves ...defs.WaveDefinition) *defs.Library {
	lib := defs.DefaultLibrary()
	rows := make([][]int, 3)
	for y := range rows {
		rows[y] = make([]int, 12)
		for x := range rows[y] {
			if y != 1 {
				rows[y][x] = 1
			}
		}
	}
	lib.Level = defs.LevelDefinition{
		Rows: rows,
		Path: []gridmap.Cell{{X: 0, Y: 1}, {X: 10, Y: 1}},
	}
	if len(waves) == 0 {
		slow := defs.WaveDefinition{
			Groups:    []defs.SpawnGroup{{EnemyID: defs.EnemyGoblin, Count: 1, SpawnDelay: 100 * time.Second}},
			TimeLimit: 1000 * time.Second,
		}
		waves = []defs.WaveDefinition{slow, slow}
	}
	lib.Waves = waves
	return lib
}

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

// testingT покрывает и *testing.T, и *rapid.T.
type testingT interface {
	require.TestingT
	Helper()
}

type fixture struct {
	lib *defs.Library
	ecs *entity.ECS
	sim *Simulation
	rec *recorder
}

func newFixture(t testingT, lib *defs.Library) *fixture {
	t.Helper()
	board, err := lib.Level.BuildMap()
	require.NoError(t, err)
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	rec := &recorder{}
	for _, et := range []event.EventType{
		event.EnemySpawned, event.EnemyKilled, event.EnemyLeaked, event.PhaseChanged,
		event.WaveCleared, event.WaveTimedOut, event.GameOver, event.GameWon,
	} {
		d.Subscribe(et, rec)
	}
	return &fixture{lib: lib, ecs: ecs, sim: NewSimulation(ecs, lib, board, d), rec: rec}
}

// startWave запускает волну number и переводит фазу в WAVE_ACTIVE.
func (f *fixture) startWave(t testingT, number int) {
	t.Helper()
	_, err := f.sim.Waves.StartWave(number)
	require.NoError(t, err)
	require.NoError(t, f.sim.State.Fire(EventStartWave))
}

func (f *fixture) addEnemy(defID string, x, y float64) *component.Enemy {
	def, _ := f.lib.Enemy(defID)
	e := &component.Enemy{
		ID:        f.ecs.NewEntity(),
		DefID:     defID,
		Position:  component.Position{X: x, Y: y},
		Health:    def.Health,
		MaxHealth: def.Health,
	}
	f.ecs.Enemies = append(f.ecs.Enemies, e)
	return e
}

func (f *fixture) addTower(defID string, cell gridmap.Cell) *component.Tower {
	t := &component.Tower{
		ID:       f.ecs.NewEntity(),
		DefID:    defID,
		Cell:     cell,
		Position: cell.Center(40),
	}
	f.ecs.Towers = append(f.ecs.Towers, t)
	return t
}

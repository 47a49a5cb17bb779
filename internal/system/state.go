// internal/system/state.go
package system

import (
	"context"
	"errors"
	"fmt"

	"github.com/looplab/fsm"

	"go-pixel-defense/internal/component"
	"go-pixel-defense/internal/entity"
	"go-pixel-defense/internal/event"
)

// События автомата фаз.
const (
	EventStartWave = "start_wave"
	EventClearWave = "clear_wave"
	EventWin       = "win"
	EventLose      = "lose"
	EventReset     = "reset"
)

// PhaseChange — данные события event.PhaseChanged.
type PhaseChange struct {
	From, To component.Phase
	Trigger  string
}

// StateSystem держит фазу игры в конечном автомате и зеркалит её в ECS.
type StateSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	machine         *fsm.FSM
}

func NewStateSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *StateSystem {
	s := &StateSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
	setup := string(component.PhaseSetup)
	active := string(component.PhaseWaveActive)
	over := string(component.PhaseGameOver)
	victory := string(component.PhaseVictory)

	s.machine = fsm.NewFSM(
		string(ecs.Phase),
		fsm.Events{
			{Name: EventStartWave, Src: []string{setup}, Dst: active},
			{Name: EventClearWave, Src: []string{active}, Dst: setup},
			{Name: EventWin, Src: []string{active}, Dst: victory},
			{Name: EventLose, Src: []string{setup, active}, Dst: over},
			{Name: EventReset, Src: []string{setup, active, over, victory}, Dst: setup},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				s.onEnter(e)
			},
		},
	)
	return s
}

func (s *StateSystem) onEnter(e *fsm.Event) {
	s.ecs.Phase = component.Phase(e.Dst)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.PhaseChanged,
		Data: PhaseChange{From: component.Phase(e.Src), To: component.Phase(e.Dst), Trigger: e.Event},
	})
}

// Fire runs a phase transition. Firing an event that keeps the current phase
// (reset from setup) is not an error.
func (s *StateSystem) Fire(name string) error {
	err := s.machine.Event(context.Background(), name)
	if err == nil {
		return nil
	}
	var noTransition fsm.NoTransitionError
	if errors.As(err, &noTransition) {
		return nil
	}
	var invalid fsm.InvalidEventError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%s from %s: %w", name, s.machine.Current(), ErrInvalidPhase)
	}
	return fmt.Errorf("phase transition %s: %w", name, err)
}

// Can reports whether the event is allowed in the current phase.
func (s *StateSystem) Can(name string) bool {
	return s.machine.Can(name)
}

func (s *StateSystem) Current() component.Phase {
	return component.Phase(s.machine.Current())
}

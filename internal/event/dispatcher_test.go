package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatcher(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(WaveStarted, a)
	d.Subscribe(WaveStarted, b)
	d.Subscribe(GameWon, b)

	d.Dispatch(Event{Type: WaveStarted, Data: 1})
	d.Dispatch(Event{Type: GameOver})

	assert.Equal(t, []Event{{Type: WaveStarted, Data: 1}}, a.got)
	assert.Equal(t, []Event{{Type: WaveStarted, Data: 1}}, b.got)

	d.Unsubscribe(WaveStarted, a)
	d.Dispatch(Event{Type: WaveStarted, Data: 2})
	assert.Len(t, a.got, 1)
	assert.Len(t, b.got, 2)

	d.Unsubscribe(TowerPlaced, a) // не подписан, ничего не происходит
	d.Dispatch(Event{Type: GameWon})
	assert.Len(t, b.got, 3)
}

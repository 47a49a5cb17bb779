// internal/event/event.go
package event

// EventType names one kind of lifecycle event; the full set is in types.go.
type EventType string

// Event carries a type and an optional payload whose type depends on Type.
type Event struct {
	Type EventType
	Data any
}

// Listener получает события, на которые подписан.
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher delivers events synchronously, inside the call to Dispatch.
// Симуляция и хост работают в одном потоке, поэтому блокировок нет.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe adds listener for eventType. Listeners are called in subscription order.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe removes the first registration of listener for eventType, if any.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if l == listener {
			d.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
			return
		}
	}
}

// Dispatch вызывает всех подписчиков на тип события до возврата.
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}

package element

// Event is delivered to handlers registered with On. There is no browser
// host; events are raised programmatically with Dispatch, which is mostly
// useful for driving components in tests.
type Event struct {
	Type   string
	Target *Element
	Value  string
}

// Handler receives dispatched events.
type Handler func(Event)

// On registers a handler for the named event type.
func (e *Element) On(event string, fn Handler) {
	if e.handlers == nil {
		e.handlers = make(map[string][]Handler)
	}
	e.handlers[event] = append(e.handlers[event], fn)
}

// OnClick registers a handler for click events.
func (e *Element) OnClick(fn Handler) {
	e.On("click", fn)
}

// Dispatch synchronously invokes every handler registered for ev.Type,
// in registration order. The event's target is set to e.
func (e *Element) Dispatch(ev Event) {
	ev.Target = e
	for _, fn := range e.handlers[ev.Type] {
		fn(ev)
	}
}

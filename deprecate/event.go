package deprecate

import "strings"

// InternalEventPrefix marks event names that are not part of the public
// surface. Renaming an event onto an internal name reports the old name as
// removed rather than renamed.
const InternalEventPrefix = "-"

// Listener handles one emission of an event.
type Listener = func(args ...any) error

// Emitter is the capability Event needs from an event source.
//
// Emit must not hold locks while calling listeners: the forwarder installed
// by Event emits the deprecated name from inside a listener.
type Emitter interface {
	On(event string, listener Listener)
	Emit(event string, args ...any) error
	ListenerCount(event string) int
}

// Event keeps listeners on oldName working after the source switched to
// emitting newName.
//
// Each emission of newName is re-emitted as oldName with the same arguments,
// provided at least one listener is registered on oldName; with none, the
// emission is ignored and nothing is logged. The first forwarded emission
// warns once. A gate error (throw-mode) is returned from the newName
// emission and that emission is not forwarded.
func Event(f *Facility, e Emitter, oldName, newName string) {
	fwd := &eventForwarder{facility: f, emitter: e, oldName: oldName, newName: newName}
	e.On(newName, fwd.forward)
}

type eventForwarder struct {
	gate     Gate
	facility *Facility
	emitter  Emitter
	oldName  string
	newName  string
}

func (w *eventForwarder) forward(args ...any) error {
	if w.emitter.ListenerCount(w.oldName) == 0 {
		return nil
	}
	if err := w.gate.Do(w.facility, w.warn); err != nil {
		return err
	}
	return w.emitter.Emit(w.oldName, args...)
}

func (w *eventForwarder) warn() error {
	if strings.HasPrefix(w.newName, InternalEventPrefix) {
		return w.facility.Log("'" + w.oldName + "' event has been deprecated.")
	}
	return w.facility.Warn("'"+w.oldName+"' event", "'"+w.newName+"' event")
}

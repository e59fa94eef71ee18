package cairn

// Event is a synchronous notification. Which fields are set depends on Type.
type Event struct {
	Type EventType

	// Marker is the marker the event is about. For EventMarkerAdded it is the
	// descendant that was attached.
	Marker *Marker

	// Target is the marker whose dispatcher fired the event. For
	// EventMarkerAdded this is the ancestor being notified.
	Target *Marker

	// Scene is set for scene collection events and for events forwarded
	// to an EntityStore.
	Scene *Scene

	// Entity is the collection member for scene events (a PointCloud,
	// *Volume, *Measurement, ...).
	Entity any
}

// Listener receives events from an EventDispatcher.
type Listener func(Event)

type listenerEntry struct {
	id        uint32
	eventType EventType
	fn        Listener
}

// EventDispatcher is a publish/subscribe channel keyed by EventType.
// Delivery is synchronous and reentrant: a listener may add or remove
// listeners, or mutate the tree, while it is being called. Each dispatch
// works on a snapshot of the listener list taken when it starts.
//
// The zero value is ready to use.
type EventDispatcher struct {
	listeners []listenerEntry
	nextID    uint32
}

// ListenerHandle allows removing a registered listener.
type ListenerHandle struct {
	id uint32
	d  *EventDispatcher
}

// Remove unregisters the listener. Safe to call more than once.
func (h ListenerHandle) Remove() {
	if h.d == nil {
		return
	}
	h.d.removeListener(h.id)
}

// AddEventListener registers fn for events of type t and returns a handle
// that removes it again.
func (d *EventDispatcher) AddEventListener(t EventType, fn Listener) ListenerHandle {
	if fn == nil {
		panic("cairn: cannot add nil listener")
	}
	d.nextID++
	d.listeners = append(d.listeners, listenerEntry{id: d.nextID, eventType: t, fn: fn})
	return ListenerHandle{id: d.nextID, d: d}
}

// HasListeners reports whether at least one listener is registered for t.
func (d *EventDispatcher) HasListeners(t EventType) bool {
	for i := range d.listeners {
		if d.listeners[i].eventType == t {
			return true
		}
	}
	return false
}

// RemoveAllListeners drops every registered listener.
func (d *EventDispatcher) RemoveAllListeners() {
	d.listeners = nil
}

// DispatchEvent delivers e to every listener registered for e.Type, in
// registration order.
func (d *EventDispatcher) DispatchEvent(e Event) {
	// Removal builds a fresh slice and append never rewrites elements below
	// len, so ranging over this header is stable against listener mutation.
	snapshot := d.listeners
	for _, l := range snapshot {
		if l.eventType == e.Type {
			l.fn(e)
		}
	}
}

// removeListener filters the entry out into a new backing array so that any
// in-flight dispatch keeps iterating its own snapshot.
func (d *EventDispatcher) removeListener(id uint32) {
	for i := range d.listeners {
		if d.listeners[i].id == id {
			next := make([]listenerEntry, 0, len(d.listeners)-1)
			next = append(next, d.listeners[:i]...)
			next = append(next, d.listeners[i+1:]...)
			d.listeners = next
			return
		}
	}
}

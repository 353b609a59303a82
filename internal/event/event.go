package event

// SourceID is a monotonically increasing integer stamped by the funnel at
// ingress. It is the sole ordering and provenance token in the system:
// events derived by middlewares inherit their parent's SourceID, and the
// PastEventsDiscard middleware uses a SourceID window to silently drop
// events caused by keystrokes that predate an injection.
type SourceID uint64

// Type is the closed set of event payloads. Only types declared in this
// package may implement it.
type Type interface {
	eventType()
}

// Event is the envelope the funnel produces and the middleware chain
// transforms. SourceID never changes as an Event flows down the chain;
// only Type does.
type Event struct {
	SourceID SourceID
	Type     Type
}

// New wraps a Type in an Event with the given SourceID.
func New(id SourceID, t Type) Event {
	return Event{SourceID: id, Type: t}
}

// Is reports whether the event's Type is exactly T.
func Is[T Type](e Event) bool {
	_, ok := e.Type.(T)
	return ok
}

// As type-asserts the event's Type to T, returning the zero value and false
// on mismatch.
func As[T Type](e Event) (T, bool) {
	t, ok := e.Type.(T)
	return t, ok
}

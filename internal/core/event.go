package core

// EventKind tags the variant of an Event.
type EventKind int

const (
	EventNone    EventKind = iota
	EventQuit            // Window closed, Ctrl+C, q
	EventKeyDown         // Key pressed (or auto-repeated)
	EventKeyUp           // Key released
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "None"
	case EventQuit:
		return "Quit"
	case EventKeyDown:
		return "KeyDown"
	case EventKeyUp:
		return "KeyUp"
	default:
		return "Unknown"
	}
}

// Key identifies the keys the game reacts to. Everything else is KeyOther.
type Key int

const (
	KeyOther Key = iota
	KeyLeft
	KeyRight
	KeyEscape
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyEscape:
		return "Escape"
	default:
		return "Other"
	}
}

// Event is a platform input event.
type Event struct {
	Kind EventKind
	Key  Key // Only meaningful for EventKeyDown and EventKeyUp
}

// QuitEvent returns an EventQuit.
func QuitEvent() Event {
	return Event{Kind: EventQuit}
}

// KeyDown returns an EventKeyDown for k.
func KeyDown(k Key) Event {
	return Event{Kind: EventKeyDown, Key: k}
}

// KeyUp returns an EventKeyUp for k.
func KeyUp(k Key) Event {
	return Event{Kind: EventKeyUp, Key: k}
}

// String formats the event as "Kind" or "Kind(Key)".
func (e Event) String() string {
	if e.Kind == EventKeyDown || e.Kind == EventKeyUp {
		return e.Kind.String() + "(" + e.Key.String() + ")"
	}
	return e.Kind.String()
}

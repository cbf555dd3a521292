package engine

// EventKind identifies a discrete moment other systems may react to.
type EventKind int

const (
	EventFire EventKind = iota
	EventEnemyFire
	EventExplosion
	EventHit
	EventLevelUp
	EventGameOver
	EventRunStarted
	EventPaused
	EventResumed
	EventHighScore
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventFire:
		return "fire"
	case EventEnemyFire:
		return "enemy-fire"
	case EventExplosion:
		return "explosion"
	case EventHit:
		return "hit"
	case EventLevelUp:
		return "level-up"
	case EventGameOver:
		return "game-over"
	case EventRunStarted:
		return "run-started"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventHighScore:
		return "high-score"
	default:
		return "unknown"
	}
}

// Event is emitted during a step.
type Event struct {
	Kind EventKind
	Tick uint64
}

// Listener is notified of events as they happen. Listeners must not call
// back into the engine.
type Listener interface {
	OnEvent(Event)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(Event)

// OnEvent calls f(ev).
func (f ListenerFunc) OnEvent(ev Event) {
	f(ev)
}

package game

type EventType int

const (
	EventShot EventType = iota
	EventExplosion
	EventPickup
	EventAmmoChanged
	EventHealthChanged
	EventScoreChanged
	EventWaveStarted
	EventLevelStarted
	EventLevelComplete
	EventGameComplete
	EventGameOver
)

// SoundKind identifies the audio cue for an event.
type SoundKind int

const (
	SoundNone SoundKind = iota
	SoundShotAP
	SoundShotHE
	SoundShotHostile
	SoundExplosion
	SoundPickup
	SoundLevelUp
	SoundGameOver
)

type Event struct {
	Type  EventType
	X, Y  float64
	Sound SoundKind
	Ammo  AmmoType
	Data  int // Generic payload (wave number, level, new value).
}

type EventHandler func(Event)

// EventBus fans session events out to frontends. Handlers run synchronously
// inside the tick and must not mutate the session.
type EventBus struct {
	handlers map[EventType][]EventHandler
	all      []EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

// SubscribeAll registers fn for every event type.
func (eb *EventBus) SubscribeAll(fn EventHandler) {
	eb.all = append(eb.all, fn)
}

func (eb *EventBus) Emit(e Event) {
	if eb == nil {
		return
	}
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
	for _, fn := range eb.all {
		fn(e)
	}
}

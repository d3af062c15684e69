package core

// Event represents a game event
type Event struct {
	Type    EventType
	Tick    uint64
	Payload any
}

type EventType uint16

const (
	EvtEntitySpawned EventType = iota
	EvtEntityMoved
	EvtEntityDestroyed
	EvtDamageApplied
	EvtAbilityEffect
	EvtHudUpdate
	EvtGameOver
)

func (t EventType) String() string {
	switch t {
	case EvtEntitySpawned:
		return "entity_spawned"
	case EvtEntityMoved:
		return "entity_moved"
	case EvtEntityDestroyed:
		return "entity_destroyed"
	case EvtDamageApplied:
		return "damage_applied"
	case EvtAbilityEffect:
		return "ability_effect"
	case EvtHudUpdate:
		return "hud_update"
	case EvtGameOver:
		return "game_over"
	}
	return "unknown"
}

// ---- Payloads ----

type EntitySpawned struct {
	ID   EntityID
	Kind Kind
	X, Y float64
}

type EntityMoved struct {
	ID       EntityID
	X, Y     float64
	Rotation float64
}

type EntityDestroyed struct {
	ID   EntityID
	Kind Kind
}

type DamageApplied struct {
	TargetID EntityID
	Amount   int
	Source   AbilityKind // AbilityNone for bullets and contact
}

// AbilityKind names a player ability
type AbilityKind uint8

const (
	AbilityNone AbilityKind = iota
	AbilityMelee
	AbilityPush
)

type AbilityEffect struct {
	Kind       AbilityKind
	X, Y       float64
	Facing     float64
	Radius     float64
	DurationMs float64
}

type HudUpdate struct {
	HP    int
	Score int
	Power float64
}

type GameOver struct {
	FinalScore int
}

// EventBus dispatches events to listeners
type EventBus struct {
	listeners map[EventType][]EventHandler
	queue     []Event
}

type EventHandler func(e Event)

func NewEventBus() *EventBus {
	return &EventBus{
		listeners: make(map[EventType][]EventHandler),
	}
}

// On registers a handler for an event type
func (eb *EventBus) On(t EventType, h EventHandler) {
	eb.listeners[t] = append(eb.listeners[t], h)
}

// OnAll registers a handler for every event type
func (eb *EventBus) OnAll(h EventHandler) {
	for t := EvtEntitySpawned; t <= EvtGameOver; t++ {
		eb.On(t, h)
	}
}

// Emit queues an event for dispatch
func (eb *EventBus) Emit(e Event) {
	eb.queue = append(eb.queue, e)
}

// Pending returns the number of queued events
func (eb *EventBus) Pending() int { return len(eb.queue) }

// Dispatch processes all queued events
func (eb *EventBus) Dispatch() {
	for _, e := range eb.queue {
		if handlers, ok := eb.listeners[e.Type]; ok {
			for _, h := range handlers {
				h(e)
			}
		}
	}
	eb.queue = eb.queue[:0]
}

// Drain returns the queued events without dispatching them and empties the queue
func (eb *EventBus) Drain() []Event {
	out := make([]Event, len(eb.queue))
	copy(out, eb.queue)
	eb.queue = eb.queue[:0]
	return out
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// entityMeta is the identity and audit-timestamp pair every persisted
// scheduling entity (Schedule, TimeBlock) carries. It exists only to be
// embedded; callers never construct or hold one directly.
type entityMeta struct {
	id        uuid.UUID
	createdAt time.Time
	updatedAt time.Time
}

func newEntityMeta() entityMeta {
	now := time.Now().UTC()
	return entityMeta{id: uuid.New(), createdAt: now, updatedAt: now}
}

func rehydrateEntityMeta(id uuid.UUID, createdAt, updatedAt time.Time) entityMeta {
	return entityMeta{id: id, createdAt: createdAt, updatedAt: updatedAt}
}

func (e entityMeta) ID() uuid.UUID        { return e.id }
func (e entityMeta) CreatedAt() time.Time { return e.createdAt }
func (e entityMeta) UpdatedAt() time.Time { return e.updatedAt }

// touch stamps updatedAt with the current time. Called whenever a Schedule
// or TimeBlock's persisted state changes.
func (e *entityMeta) touch() { e.updatedAt = time.Now().UTC() }

// DomainEvent is a fact a Schedule records while committing blocks. Runner
// publishes these onto the event bus, keyed by RoutingKey, once the
// schedule carrying them has been durably saved.
type DomainEvent interface {
	AggregateID() uuid.UUID
	RoutingKey() string
}

// eventRecorder accumulates the DomainEvents a Schedule raises during a
// single scheduling run, for Runner to drain and publish after Save
// succeeds. Only Schedule embeds this; TimeBlock never raises events of its
// own.
type eventRecorder struct {
	events []DomainEvent
}

func (r *eventRecorder) AddDomainEvent(event DomainEvent) {
	r.events = append(r.events, event)
}

func (r *eventRecorder) DomainEvents() []DomainEvent {
	return r.events
}

func (r *eventRecorder) ClearDomainEvents() {
	r.events = nil
}

// eventMeta carries the two facts every BlockScheduled/SchedulingCompleted
// needs to be routed onto the event bus: which Schedule raised it, and the
// routing key the publisher should use.
type eventMeta struct {
	aggregateID uuid.UUID
	routingKey  string
}

func newEventMeta(aggregateID uuid.UUID, routingKey string) eventMeta {
	return eventMeta{aggregateID: aggregateID, routingKey: routingKey}
}

func (m eventMeta) AggregateID() uuid.UUID { return m.aggregateID }
func (m eventMeta) RoutingKey() string     { return m.routingKey }

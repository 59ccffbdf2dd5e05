package domain

import (
	"github.com/shopspring/decimal"
)

// LifeExpectancy is the age at which every projection stops (exclusive).
const LifeExpectancy = 85

// LifeEvent is a named interval of a person's life whose spending is scaled by Multiplier.
// The event applies to ages in [Age, Age+Duration).
type LifeEvent struct {
	Age        int             `json:"age" yaml:"age"`
	Name       string          `json:"name" yaml:"name"`
	Multiplier decimal.Decimal `json:"multiplier" yaml:"multiplier"`
	Duration   int             `json:"duration" yaml:"duration"`
}

// EndAge returns the first age no longer covered by the event.
func (e LifeEvent) EndAge() int {
	return e.Age + e.Duration
}

// Covers reports whether the event window contains age.
func (e LifeEvent) Covers(age int) bool {
	return age >= e.Age && age < e.EndAge()
}

// EventCalendar is an ordered, read-only list of life events.
// The zero value is an empty calendar.
type EventCalendar struct {
	events []LifeEvent
}

// NewEventCalendar copies events into a new calendar, preserving declaration order.
func NewEventCalendar(events ...LifeEvent) EventCalendar {
	cp := make([]LifeEvent, len(events))
	copy(cp, events)
	return EventCalendar{events: cp}
}

// Len returns the number of events in the calendar.
func (c EventCalendar) Len() int { return len(c.events) }

// At returns the i-th event in declaration order.
func (c EventCalendar) At(i int) LifeEvent { return c.events[i] }

// Events returns a copy of the calendar's events.
func (c EventCalendar) Events() []LifeEvent {
	cp := make([]LifeEvent, len(c.events))
	copy(cp, c.events)
	return cp
}

// StartAges returns the starting age of every event, in declaration order.
func (c EventCalendar) StartAges() []int {
	ages := make([]int, len(c.events))
	for i, e := range c.events {
		ages[i] = e.Age
	}
	return ages
}

// StartingAt returns the names of events whose window begins at age.
func (c EventCalendar) StartingAt(age int) []string {
	var names []string
	for _, e := range c.events {
		if e.Age == age {
			names = append(names, e.Name)
		}
	}
	return names
}

var defaultCalendar = NewEventCalendar(
	LifeEvent{Age: 22, Name: "College", Multiplier: decimal.NewFromFloat(1.5), Duration: 4},
	LifeEvent{Age: 28, Name: "Marriage", Multiplier: decimal.NewFromInt(2), Duration: 1},
	LifeEvent{Age: 30, Name: "First Child", Multiplier: decimal.NewFromFloat(1.8), Duration: 18},
	LifeEvent{Age: 33, Name: "Second Child", Multiplier: decimal.NewFromFloat(1.5), Duration: 18},
	LifeEvent{Age: 45, Name: "Children College", Multiplier: decimal.NewFromInt(2), Duration: 4},
	LifeEvent{Age: 65, Name: "Retirement", Multiplier: decimal.NewFromFloat(1.3), Duration: 20},
)

// DefaultCalendar returns the fixed life-event calendar shared by every projection.
func DefaultCalendar() EventCalendar {
	return defaultCalendar
}

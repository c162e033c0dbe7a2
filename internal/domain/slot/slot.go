package slot

import (
	"errors"
	"time"
)

var (
	ErrEmptyName       = errors.New("slot name must not be empty")
	ErrInvalidCapacity = errors.New("slot capacity must be positive")
	ErrNoWeekdays      = errors.New("slot must be offered on at least one weekday")
)

// Weekdays is the set of days a slot is offered on.
type Weekdays uint8

func Days(days ...time.Weekday) Weekdays {
	var w Weekdays
	for _, d := range days {
		w |= 1 << uint(d)
	}
	return w
}

func Everyday() Weekdays {
	return Days(
		time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday,
	)
}

func (w Weekdays) Contains(d time.Weekday) bool {
	return w&(1<<uint(d)) != 0
}

func (w Weekdays) IsEmpty() bool {
	return w == 0
}

// Slot is a named, capacity-bounded time window. The name is the token
// persisted on bookings; the label is the human-facing time range.
type Slot struct {
	name     string
	label    string
	capacity int
	days     Weekdays
}

func New(name, label string, capacity int, days Weekdays) (Slot, error) {
	if name == "" {
		return Slot{}, ErrEmptyName
	}
	if capacity <= 0 {
		return Slot{}, ErrInvalidCapacity
	}
	if days.IsEmpty() {
		return Slot{}, ErrNoWeekdays
	}
	if label == "" {
		label = name
	}
	return Slot{name: name, label: label, capacity: capacity, days: days}, nil
}

func (s Slot) Name() string   { return s.name }
func (s Slot) Label() string  { return s.label }
func (s Slot) Capacity() int  { return s.capacity }
func (s Slot) Days() Weekdays { return s.days }

func (s Slot) OfferedOn(d Date) bool {
	return s.days.Contains(d.Weekday())
}

func (s Slot) IsZero() bool {
	return s.name == ""
}

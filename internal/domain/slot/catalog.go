package slot

import (
	"errors"
	"time"
)

var ErrDuplicateSlot = errors.New("duplicate slot name")

// Catalog is the ordered set of slots the service offers. Immutable after
// construction; availability listings preserve catalog order.
type Catalog struct {
	slots []Slot
}

func NewCatalog(slots ...Slot) (Catalog, error) {
	seen := make(map[string]struct{}, len(slots))
	for _, s := range slots {
		if _, dup := seen[s.Name()]; dup {
			return Catalog{}, ErrDuplicateSlot
		}
		seen[s.Name()] = struct{}{}
	}
	out := make([]Slot, len(slots))
	copy(out, slots)
	return Catalog{slots: out}, nil
}

// SlotsFor returns the slots offered on the date's weekday, in catalog order.
func (c Catalog) SlotsFor(d Date) []Slot {
	out := make([]Slot, 0, len(c.slots))
	for _, s := range c.slots {
		if s.OfferedOn(d) {
			out = append(out, s)
		}
	}
	return out
}

// Find returns the named slot if the catalog offers it on the given date.
func (c Catalog) Find(name string, d Date) (Slot, bool) {
	for _, s := range c.slots {
		if s.Name() == name && s.OfferedOn(d) {
			return s, true
		}
	}
	return Slot{}, false
}

func (c Catalog) Slots() []Slot {
	out := make([]Slot, len(c.slots))
	copy(out, c.slots)
	return out
}

func (c Catalog) Len() int {
	return len(c.slots)
}

// DefaultCatalog mirrors the yard's operating hours: four two-hour windows
// Monday through Saturday, mornings only on Sunday.
func DefaultCatalog(capacity int) Catalog {
	if capacity <= 0 {
		capacity = 4
	}
	all := Everyday()
	exceptSunday := Days(
		time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday,
	)
	return Catalog{slots: []Slot{
		{name: "08:00-10:00", label: "08:00 - 10:00", capacity: capacity, days: all},
		{name: "10:00-12:00", label: "10:00 - 12:00", capacity: capacity, days: all},
		{name: "14:00-16:00", label: "14:00 - 16:00", capacity: capacity, days: exceptSunday},
		{name: "16:00-18:00", label: "16:00 - 18:00", capacity: capacity, days: exceptSunday},
	}}
}

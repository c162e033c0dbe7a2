package booking

import "citas-unidades/internal/domain/slot"

// CountActive counts bookings that hold a seat for the given date and slot.
// Callers must pass normalized records; the store adapters strip formatting
// artifacts before bookings reach this point.
func CountActive(bookings []Booking, d slot.Date, slotName string) int {
	n := 0
	for i := range bookings {
		b := &bookings[i]
		if b.date.Equal(d) && b.slotName == slotName && b.CountsAgainstCapacity() {
			n++
		}
	}
	return n
}

// Remaining never reports below zero even if a lost race overfilled the slot.
func Remaining(bookings []Booking, d slot.Date, s slot.Slot) int {
	r := s.Capacity() - CountActive(bookings, d, s.Name())
	if r < 0 {
		r = 0
	}
	return r
}

type SlotAvailability struct {
	Slot      slot.Slot
	Remaining int
}

// AvailableSlots returns the slots still bookable on the date, in catalog
// order, skipping any slot with no seats left.
func AvailableSlots(c slot.Catalog, bookings []Booking, d slot.Date) []SlotAvailability {
	offered := c.SlotsFor(d)
	out := make([]SlotAvailability, 0, len(offered))
	for _, s := range offered {
		if r := Remaining(bookings, d, s); r > 0 {
			out = append(out, SlotAvailability{Slot: s, Remaining: r})
		}
	}
	return out
}

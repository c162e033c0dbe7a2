package booking

import (
	"errors"
	"strings"
	"time"

	"citas-unidades/internal/domain/slot"
)

var (
	ErrMissingTicketID  = errors.New("ticket id is required")
	ErrMissingSlot      = errors.New("slot name is required")
	ErrMissingDate      = errors.New("date is required")
	ErrMissingPlate     = errors.New("primary vehicle plate is required")
	ErrMissingDriver    = errors.New("driver name is required")
	ErrMissingRegistrar = errors.New("registrar name is required")
	ErrInvalidStatus    = errors.New("invalid booking status")
)

// Booking is one appointment request for a yard operation. The status is
// the only field that changes after creation; everything else is written
// once by Create and never touched again.
type Booking struct {
	ticketID       string
	slotName       string
	date           slot.Date
	platePrimary   string
	plateSecondary string
	driverName     string
	registrarName  string
	license        string
	carrier        string
	operationType  string
	note           string
	status         Status
	createdAt      time.Time
}

type NewParams struct {
	TicketID       string
	SlotName       string
	Date           slot.Date
	PlatePrimary   string
	PlateSecondary string
	DriverName     string
	RegistrarName  string
	License        string
	Carrier        string
	OperationType  string
	Note           string
	CreatedAt      time.Time
}

// ValidateRequest checks the caller-supplied fields in isolation, so
// creation can reject bad input before any store access.
func ValidateRequest(p NewParams) error {
	if strings.TrimSpace(p.SlotName) == "" {
		return ErrMissingSlot
	}
	if p.Date.IsZero() {
		return ErrMissingDate
	}
	if strings.TrimSpace(p.PlatePrimary) == "" {
		return ErrMissingPlate
	}
	if strings.TrimSpace(p.DriverName) == "" {
		return ErrMissingDriver
	}
	if strings.TrimSpace(p.RegistrarName) == "" {
		return ErrMissingRegistrar
	}
	return nil
}

func New(p NewParams) (*Booking, error) {
	if strings.TrimSpace(p.TicketID) == "" {
		return nil, ErrMissingTicketID
	}
	if err := ValidateRequest(p); err != nil {
		return nil, err
	}

	return &Booking{
		ticketID:       strings.TrimSpace(p.TicketID),
		slotName:       strings.TrimSpace(p.SlotName),
		date:           p.Date,
		platePrimary:   strings.TrimSpace(p.PlatePrimary),
		plateSecondary: strings.TrimSpace(p.PlateSecondary),
		driverName:     strings.TrimSpace(p.DriverName),
		registrarName:  strings.TrimSpace(p.RegistrarName),
		license:        strings.TrimSpace(p.License),
		carrier:        strings.TrimSpace(p.Carrier),
		operationType:  strings.TrimSpace(p.OperationType),
		note:           strings.TrimSpace(p.Note),
		status:         StatusQueued,
		createdAt:      p.CreatedAt,
	}, nil
}

func Reconstruct(
	ticketID, slotName string,
	date slot.Date,
	platePrimary, plateSecondary, driverName, registrarName string,
	license, carrier, operationType, note string,
	status Status,
	createdAt time.Time,
) *Booking {
	return &Booking{
		ticketID:       ticketID,
		slotName:       slotName,
		date:           date,
		platePrimary:   platePrimary,
		plateSecondary: plateSecondary,
		driverName:     driverName,
		registrarName:  registrarName,
		license:        license,
		carrier:        carrier,
		operationType:  operationType,
		note:           note,
		status:         status,
		createdAt:      createdAt,
	}
}

func (b *Booking) IsCancelled() bool {
	return b.status == StatusCancelled
}

// CountsAgainstCapacity reports whether the booking consumes a seat in its
// slot. Cancelling releases the seat for reuse.
func (b *Booking) CountsAgainstCapacity() bool {
	return b.status != StatusCancelled
}

func (b *Booking) TicketID() string       { return b.ticketID }
func (b *Booking) SlotName() string       { return b.slotName }
func (b *Booking) Date() slot.Date        { return b.date }
func (b *Booking) PlatePrimary() string   { return b.platePrimary }
func (b *Booking) PlateSecondary() string { return b.plateSecondary }
func (b *Booking) DriverName() string     { return b.driverName }
func (b *Booking) RegistrarName() string  { return b.registrarName }
func (b *Booking) License() string        { return b.license }
func (b *Booking) Carrier() string        { return b.carrier }
func (b *Booking) OperationType() string  { return b.operationType }
func (b *Booking) Note() string           { return b.note }
func (b *Booking) Status() Status         { return b.status }
func (b *Booking) CreatedAt() time.Time   { return b.createdAt }

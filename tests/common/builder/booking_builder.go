//go:build unit || e2e

package builder

import (
	"time"

	"citas-unidades/internal/domain/booking"
	"citas-unidades/internal/domain/slot"
	reqdto "citas-unidades/internal/handler/dto/request"
	"citas-unidades/internal/infra/store"
	"citas-unidades/internal/pkg/patch"
	"citas-unidades/internal/usecase/queries"
)

type BookingBuilder struct {
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
	Status         booking.Status
	CreatedAt      time.Time
}

func NewBookingBuilder() *BookingBuilder {
	date := slot.NewDate(2025, time.March, 3) // a Monday; every slot offered
	return &BookingBuilder{
		TicketID:       "TKT-0A1B2C3D",
		SlotName:       "08:00-10:00",
		Date:           date,
		PlatePrimary:   "ABC-123",
		PlateSecondary: "XYZ-789",
		DriverName:     "Juan Perez",
		RegistrarName:  "Maria Lopez",
		License:        "Q12345678",
		Carrier:        "Transportes Andinos",
		OperationType:  "Descarga",
		Note:           "",
		Status:         booking.StatusQueued,
		CreatedAt:      time.Date(2025, time.March, 1, 9, 30, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildParams() booking.NewParams {
	return booking.NewParams{
		TicketID:       b.TicketID,
		SlotName:       b.SlotName,
		Date:           b.Date,
		PlatePrimary:   b.PlatePrimary,
		PlateSecondary: b.PlateSecondary,
		DriverName:     b.DriverName,
		RegistrarName:  b.RegistrarName,
		License:        b.License,
		Carrier:        b.Carrier,
		OperationType:  b.OperationType,
		Note:           b.Note,
		CreatedAt:      b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	return booking.New(b.BuildParams())
}

func (b *BookingBuilder) BuildReconstructed() *booking.Booking {
	return booking.Reconstruct(
		b.TicketID, b.SlotName, b.Date,
		b.PlatePrimary, b.PlateSecondary, b.DriverName, b.RegistrarName,
		b.License, b.Carrier, b.OperationType, b.Note,
		b.Status, b.CreatedAt,
	)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		Date:                  b.Date.String(),
		SlotName:              b.SlotName,
		VehiclePlatePrimary:   b.PlatePrimary,
		VehiclePlateSecondary: optional(b.PlateSecondary),
		DriverName:            b.DriverName,
		RegistrarName:         b.RegistrarName,
		License:               optional(b.License),
		Carrier:               optional(b.Carrier),
		OperationType:         optional(b.OperationType),
		Note:                  optional(b.Note),
	}
}

func (b *BookingBuilder) BuildRecord() store.Record {
	return store.Record{
		store.FieldTicketID:       b.TicketID,
		store.FieldPlatePrimary:   b.PlatePrimary,
		store.FieldPlateSecondary: b.PlateSecondary,
		store.FieldDriverName:     b.DriverName,
		store.FieldRegistrarName:  b.RegistrarName,
		store.FieldLicense:        b.License,
		store.FieldCarrier:        b.Carrier,
		store.FieldOperationType:  b.OperationType,
		store.FieldDate:           b.Date.String(),
		store.FieldSlotName:       b.SlotName,
		store.FieldNote:           b.Note,
		store.FieldStatus:         b.Status.String(),
		store.FieldCreatedAt:      b.CreatedAt.Format(store.TimestampLayout),
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return queries.NewBookingView(b.BuildReconstructed())
}

// Fluent builder methods
func (b *BookingBuilder) WithTicketID(ticketID string) *BookingBuilder {
	b.TicketID = ticketID
	return b
}

func (b *BookingBuilder) WithSlotName(slotName string) *BookingBuilder {
	b.SlotName = slotName
	return b
}

func (b *BookingBuilder) WithDate(date slot.Date) *BookingBuilder {
	b.Date = date
	return b
}

func (b *BookingBuilder) WithPlatePrimary(plate string) *BookingBuilder {
	b.PlatePrimary = plate
	return b
}

func (b *BookingBuilder) WithDriverName(name string) *BookingBuilder {
	b.DriverName = name
	return b
}

func (b *BookingBuilder) WithRegistrarName(name string) *BookingBuilder {
	b.RegistrarName = name
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithCreatedAt(createdAt time.Time) *BookingBuilder {
	b.CreatedAt = createdAt
	return b
}

func (b *BookingBuilder) AsCancelled() *BookingBuilder {
	b.Status = booking.StatusCancelled
	return b
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return patch.Ptr(v)
}

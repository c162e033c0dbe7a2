package queries

import (
	"context"
	"log/slog"
	"time"

	"citas-unidades/internal/domain/booking"
	"citas-unidades/internal/domain/slot"
	"citas-unidades/internal/infra/store"
	"citas-unidades/internal/pkg/errs"
	"citas-unidades/internal/usecase/shared"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrStoreFailure    = errs.New("record store operation failed")
)

// Read models (DTO for read side)
type BookingView struct {
	TicketID       string    `json:"ticket_id"`
	Date           string    `json:"date"`
	SlotName       string    `json:"slot_name"`
	PlatePrimary   string    `json:"plate_primary"`
	PlateSecondary string    `json:"plate_secondary,omitempty"`
	DriverName     string    `json:"driver_name"`
	RegistrarName  string    `json:"registrar_name"`
	License        string    `json:"license,omitempty"`
	Carrier        string    `json:"carrier,omitempty"`
	OperationType  string    `json:"operation_type,omitempty"`
	Note           string    `json:"note,omitempty"`
	Status         string    `json:"status"`
	StatusLabel    string    `json:"status_label"`
	CreatedAt      time.Time `json:"created_at"`
}

type BookingListItem struct {
	TicketID      string    `json:"ticket_id"`
	Date          string    `json:"date"`
	SlotName      string    `json:"slot_name"`
	PlatePrimary  string    `json:"plate_primary"`
	DriverName    string    `json:"driver_name"`
	Carrier       string    `json:"carrier,omitempty"`
	OperationType string    `json:"operation_type,omitempty"`
	Status        string    `json:"status"`
	StatusLabel   string    `json:"status_label"`
	CreatedAt     time.Time `json:"created_at"`
}

type SlotAvailabilityView struct {
	SlotName  string `json:"slot_name"`
	SlotLabel string `json:"slot_label"`
	Capacity  int    `json:"capacity"`
	Remaining int    `json:"remaining"`
}

type ListFilter struct {
	Date   *slot.Date
	Status *booking.Status
}

type BookingQueries interface {
	// Availability is a preview; Create re-checks against a fresh read
	// because other callers may book between preview and submission.
	Availability(ctx context.Context, date slot.Date) ([]SlotAvailabilityView, error)
	GetByTicket(ctx context.Context, ticketID string) (*BookingView, error)
	List(ctx context.Context, filter ListFilter) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	records shared.RecordSource
	codec   *store.Codec
	catalog slot.Catalog
	logger  *slog.Logger
}

func NewBookingQueries(records shared.RecordSource, codec *store.Codec, catalog slot.Catalog, logger *slog.Logger) BookingQueries {
	return &bookingQueriesImpl{
		records: records,
		codec:   codec,
		catalog: catalog,
		logger:  logger,
	}
}

func (q *bookingQueriesImpl) Availability(ctx context.Context, date slot.Date) ([]SlotAvailabilityView, error) {
	bookings, err := shared.LoadBookings(ctx, q.records, q.codec, q.logger)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	available := booking.AvailableSlots(q.catalog, bookings, date)
	views := make([]SlotAvailabilityView, 0, len(available))
	for _, a := range available {
		views = append(views, SlotAvailabilityView{
			SlotName:  a.Slot.Name(),
			SlotLabel: a.Slot.Label(),
			Capacity:  a.Slot.Capacity(),
			Remaining: a.Remaining,
		})
	}
	return views, nil
}

func (q *bookingQueriesImpl) GetByTicket(ctx context.Context, ticketID string) (*BookingView, error) {
	bookings, err := shared.LoadBookings(ctx, q.records, q.codec, q.logger)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	for i := range bookings {
		if bookings[i].TicketID() == ticketID {
			return NewBookingView(&bookings[i]), nil
		}
	}
	return nil, ErrBookingNotFound
}

func (q *bookingQueriesImpl) List(ctx context.Context, filter ListFilter) ([]*BookingListItem, error) {
	bookings, err := shared.LoadBookings(ctx, q.records, q.codec, q.logger)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	items := make([]*BookingListItem, 0, len(bookings))
	for i := range bookings {
		b := &bookings[i]
		if filter.Date != nil && !b.Date().Equal(*filter.Date) {
			continue
		}
		if filter.Status != nil && b.Status() != *filter.Status {
			continue
		}
		items = append(items, newBookingListItem(b))
	}
	return items, nil
}

func NewBookingView(b *booking.Booking) *BookingView {
	return &BookingView{
		TicketID:       b.TicketID(),
		Date:           b.Date().String(),
		SlotName:       b.SlotName(),
		PlatePrimary:   b.PlatePrimary(),
		PlateSecondary: b.PlateSecondary(),
		DriverName:     b.DriverName(),
		RegistrarName:  b.RegistrarName(),
		License:        b.License(),
		Carrier:        b.Carrier(),
		OperationType:  b.OperationType(),
		Note:           b.Note(),
		Status:         b.Status().String(),
		StatusLabel:    b.Status().Label(),
		CreatedAt:      b.CreatedAt(),
	}
}

func newBookingListItem(b *booking.Booking) *BookingListItem {
	return &BookingListItem{
		TicketID:      b.TicketID(),
		Date:          b.Date().String(),
		SlotName:      b.SlotName(),
		PlatePrimary:  b.PlatePrimary(),
		DriverName:    b.DriverName(),
		Carrier:       b.Carrier(),
		OperationType: b.OperationType(),
		Status:        b.Status().String(),
		StatusLabel:   b.Status().Label(),
		CreatedAt:     b.CreatedAt(),
	}
}

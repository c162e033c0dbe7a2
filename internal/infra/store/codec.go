package store

import (
	"strings"
	"time"

	"citas-unidades/internal/domain/booking"
	"citas-unidades/internal/domain/slot"

	"citas-unidades/internal/pkg/errs"
)

// TimestampLayout is how creado_en is written, wall time in the business
// timezone with no zone suffix, as the legacy sheet did.
const TimestampLayout = "2006-01-02 15:04:05"

// NormalizeCell strips the artifacts spreadsheets introduce: surrounding
// whitespace and the leading apostrophe used to force text storage.
func NormalizeCell(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "'")
	return strings.TrimSpace(s)
}

// Codec converts between Booking entities and raw store records.
type Codec struct {
	loc *time.Location
}

func NewCodec(loc *time.Location) *Codec {
	return &Codec{loc: loc}
}

func (c *Codec) Encode(b *booking.Booking) Record {
	return Record{
		FieldTicketID:       b.TicketID(),
		FieldPlatePrimary:   b.PlatePrimary(),
		FieldPlateSecondary: b.PlateSecondary(),
		FieldDriverName:     b.DriverName(),
		FieldLicense:        b.License(),
		FieldCarrier:        b.Carrier(),
		FieldOperationType:  b.OperationType(),
		FieldDate:           b.Date().String(),
		FieldSlotName:       b.SlotName(),
		FieldNote:           b.Note(),
		FieldStatus:         b.Status().String(),
		FieldCreatedAt:      b.CreatedAt().In(c.loc).Format(TimestampLayout),
		FieldRegistrarName:  b.RegistrarName(),
	}
}

func (c *Codec) Decode(rec Record) (*booking.Booking, error) {
	ticketID := NormalizeCell(rec[FieldTicketID])
	if ticketID == "" {
		return nil, errs.New("record has no ticket id")
	}

	date, err := slot.ParseDate(NormalizeCell(rec[FieldDate]))
	if err != nil {
		return nil, errs.Errorf("record %s: bad date %q", ticketID, rec[FieldDate])
	}

	status, err := booking.ParseStoredStatus(rec[FieldStatus])
	if err != nil {
		return nil, errs.Errorf("record %s: bad status %q", ticketID, rec[FieldStatus])
	}

	var createdAt time.Time
	if raw := NormalizeCell(rec[FieldCreatedAt]); raw != "" {
		createdAt, err = time.ParseInLocation(TimestampLayout, raw, c.loc)
		if err != nil {
			return nil, errs.Errorf("record %s: bad created_at %q", ticketID, rec[FieldCreatedAt])
		}
	}

	return booking.Reconstruct(
		ticketID,
		NormalizeCell(rec[FieldSlotName]),
		date,
		NormalizeCell(rec[FieldPlatePrimary]),
		NormalizeCell(rec[FieldPlateSecondary]),
		NormalizeCell(rec[FieldDriverName]),
		NormalizeCell(rec[FieldRegistrarName]),
		NormalizeCell(rec[FieldLicense]),
		NormalizeCell(rec[FieldCarrier]),
		NormalizeCell(rec[FieldOperationType]),
		NormalizeCell(rec[FieldNote]),
		status,
		createdAt,
	), nil
}

// DecodeAll converts a listing into bookings, dropping rows the codec
// cannot parse. Hand-edited sheets accumulate such rows; they must not
// block capacity math for the rest.
func (c *Codec) DecodeAll(recs []Record) (bookings []booking.Booking, skipped int) {
	bookings = make([]booking.Booking, 0, len(recs))
	for _, rec := range recs {
		b, err := c.Decode(rec)
		if err != nil {
			skipped++
			continue
		}
		bookings = append(bookings, *b)
	}
	return bookings, skipped
}

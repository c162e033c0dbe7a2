package commands

import (
	"context"
	"log/slog"
	"sort"

	"citas-unidades/internal/domain/booking"
	"citas-unidades/internal/infra/store"
	"citas-unidades/internal/pkg/errs"
	"citas-unidades/internal/usecase/shared"
)

var (
	ErrBookingNotFound  = errs.New("booking not found")
	ErrTransitionDenied = errs.New("status transition not allowed")
	ErrUnknownStatus    = errs.New("unknown status")
)

type StatusStore interface {
	shared.RecordSource
	FindPosition(ctx context.Context, keyField, keyValue string) (int, error)
	UpdateField(ctx context.Context, position int, field, value string) error
	UpdateFieldBatch(ctx context.Context, updates []store.FieldUpdate) error
}

type BatchStatusResult struct {
	Requested int
	Updated   int
	// Unknown counts updates whose outcome could not be confirmed because
	// the batched write failed. The store applies batches best-effort, so
	// these may or may not have landed.
	Unknown int
	Missing []string
}

type StatusCommands interface {
	SetStatus(ctx context.Context, ticketID string, status booking.Status) error
	// SetStatusBatch applies all changes in one write. Tickets absent from
	// the store are reported in Missing, not treated as fatal. When the
	// write fails the returned result is still populated, with every
	// attempted update counted as Unknown.
	SetStatusBatch(ctx context.Context, changes map[string]booking.Status) (*BatchStatusResult, error)
}

type statusUseCaseImpl struct {
	records StatusStore
	policy  booking.Policy
	logger  *slog.Logger
}

func NewStatusUseCase(records StatusStore, policy booking.Policy, logger *slog.Logger) StatusCommands {
	return &statusUseCaseImpl{
		records: records,
		policy:  policy,
		logger:  logger,
	}
}

func (s *statusUseCaseImpl) SetStatus(ctx context.Context, ticketID string, status booking.Status) error {
	if !status.IsValid() {
		return ErrUnknownStatus
	}

	if s.policy.IsRestrictive() {
		return s.setStatusChecked(ctx, ticketID, status)
	}

	// Positions shift as rows are appended, so the lookup happens fresh
	// on every call and the result is used immediately.
	pos, err := s.records.FindPosition(ctx, store.FieldTicketID, ticketID)
	if err != nil {
		if store.IsKind(err, store.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrStoreFailure)
	}

	if err := s.records.UpdateField(ctx, pos, store.FieldStatus, status.String()); err != nil {
		return errs.Mark(err, ErrStoreFailure)
	}

	s.logger.Info("booking status updated",
		slog.String("ticket_id", ticketID),
		slog.String("status", status.String()),
	)
	return nil
}

// setStatusChecked enforces the transition allowlist. FindPosition cannot
// return the current status, so the ticket is resolved from a full read.
func (s *statusUseCaseImpl) setStatusChecked(ctx context.Context, ticketID string, status booking.Status) error {
	recs, err := s.records.ListAll(ctx)
	if err != nil {
		return errs.Mark(err, ErrStoreFailure)
	}

	rows := resolveTickets(recs, map[string]struct{}{ticketID: {}})
	row, ok := rows[ticketID]
	if !ok {
		return ErrBookingNotFound
	}
	if !row.statusOK || !s.policy.Allows(row.status, status) {
		return ErrTransitionDenied
	}

	if err := s.records.UpdateField(ctx, row.position, store.FieldStatus, status.String()); err != nil {
		return errs.Mark(err, ErrStoreFailure)
	}

	s.logger.Info("booking status updated",
		slog.String("ticket_id", ticketID),
		slog.String("status", status.String()),
	)
	return nil
}

func (s *statusUseCaseImpl) SetStatusBatch(ctx context.Context, changes map[string]booking.Status) (*BatchStatusResult, error) {
	result := &BatchStatusResult{Requested: len(changes)}
	if len(changes) == 0 {
		return result, nil
	}

	for _, st := range changes {
		if !st.IsValid() {
			return nil, ErrUnknownStatus
		}
	}

	// One read resolves every ticket to its current position.
	recs, err := s.records.ListAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	wanted := make(map[string]struct{}, len(changes))
	for id := range changes {
		wanted[id] = struct{}{}
	}
	rows := resolveTickets(recs, wanted)

	updates := make([]store.FieldUpdate, 0, len(changes))
	for id, st := range changes {
		row, ok := rows[id]
		if !ok {
			result.Missing = append(result.Missing, id)
			continue
		}
		if s.policy.IsRestrictive() && (!row.statusOK || !s.policy.Allows(row.status, st)) {
			return nil, errs.Mark(errs.Errorf("ticket %s: %s cannot become %s", id, row.status, st), ErrTransitionDenied)
		}
		updates = append(updates, store.FieldUpdate{
			Position: row.position,
			Field:    store.FieldStatus,
			Value:    st.String(),
		})
	}
	sort.Slice(updates, func(i, j int) bool { return updates[i].Position < updates[j].Position })
	sort.Strings(result.Missing)

	if len(updates) > 0 {
		// A single batched write. If it fails the store gives no way to
		// know which cells landed, so every attempted update is reported
		// as unknown and the caller must re-read to find out.
		if err := s.records.UpdateFieldBatch(ctx, updates); err != nil {
			result.Unknown = len(updates)
			return result, errs.Mark(err, ErrStoreFailure)
		}
	}
	result.Updated = len(updates)

	s.logger.Info("booking statuses updated",
		slog.Int("updated", result.Updated),
		slog.Int("missing", len(result.Missing)),
	)
	return result, nil
}

type ticketRow struct {
	position int
	status   booking.Status
	statusOK bool
}

// resolveTickets scans raw records so row indexes stay aligned with store
// positions; decoding first would drop unparsable rows and shift them.
// The first occurrence of a ticket wins, matching FindPosition.
func resolveTickets(recs []store.Record, wanted map[string]struct{}) map[string]ticketRow {
	found := make(map[string]ticketRow, len(wanted))
	for i, rec := range recs {
		id := store.NormalizeCell(rec[store.FieldTicketID])
		if _, want := wanted[id]; !want {
			continue
		}
		if _, dup := found[id]; dup {
			continue
		}
		row := ticketRow{position: store.PositionOf(i)}
		if st, err := booking.ParseStoredStatus(rec[store.FieldStatus]); err == nil {
			row.status = st
			row.statusOK = true
		}
		found[id] = row
	}
	return found
}

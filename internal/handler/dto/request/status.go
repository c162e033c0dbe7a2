package request

import (
	"citas-unidades/internal/domain/booking"
)

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r *UpdateStatusRequest) ToDomain() (booking.Status, error) {
	return booking.ParseStatus(r.Status)
}

// BatchStatusRequest maps ticket IDs to their target status.
type BatchStatusRequest struct {
	Updates map[string]string `json:"updates" binding:"required,min=1"`
}

func (r *BatchStatusRequest) ToDomain() (map[string]booking.Status, error) {
	changes := make(map[string]booking.Status, len(r.Updates))
	for ticketID, raw := range r.Updates {
		status, err := booking.ParseStatus(raw)
		if err != nil {
			return nil, err
		}
		changes[ticketID] = status
	}
	return changes, nil
}

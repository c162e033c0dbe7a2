package booking

import (
	"errors"
	"strings"
)

type Status string

const (
	StatusQueued     Status = "QUEUED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusServed     Status = "SERVED"
	StatusCancelled  Status = "CANCELLED"
)

var ErrUnknownStatus = errors.New("unknown status")

// AllStatuses lists the canonical tokens in lifecycle order.
var AllStatuses = []Status{StatusQueued, StatusInProgress, StatusServed, StatusCancelled}

// statusLabels maps canonical tokens to the labels shown on the panel and
// written by the legacy registration sheet.
var statusLabels = map[Status]string{
	StatusQueued:     "EN COLA",
	StatusInProgress: "EN PROCESO",
	StatusServed:     "ATENDIDO",
	StatusCancelled:  "CANCELADO",
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusQueued, StatusInProgress, StatusServed, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// ParseStatus accepts only the canonical tokens used on the API surface.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", ErrUnknownStatus
	}
	return st, nil
}

// ParseStoredStatus additionally accepts the legacy Spanish labels so rows
// written by the old registration sheet keep decoding.
func ParseStoredStatus(s string) (Status, error) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	for st, label := range statusLabels {
		if norm == label {
			return st, nil
		}
	}
	return ParseStatus(norm)
}

package response

import (
	"citas-unidades/internal/usecase/commands"
)

type BatchStatusResponse struct {
	Requested int      `json:"requested"`
	Updated   int      `json:"updated"`
	Unknown   int      `json:"unknown,omitempty"`
	Missing   []string `json:"missing,omitempty"`
}

func FromBatchStatusResult(r *commands.BatchStatusResult) *BatchStatusResponse {
	return &BatchStatusResponse{
		Requested: r.Requested,
		Updated:   r.Updated,
		Unknown:   r.Unknown,
		Missing:   r.Missing,
	}
}

package request

import (
	"strings"

	"citas-unidades/internal/domain/booking"
	"citas-unidades/internal/domain/slot"
	"citas-unidades/internal/pkg/patch"
)

type CreateBookingRequest struct {
	Date                  string  `json:"date" binding:"required"`
	SlotName              string  `json:"slot" binding:"required"`
	VehiclePlatePrimary   string  `json:"vehicle_plate_primary" binding:"required"`
	VehiclePlateSecondary *string `json:"vehicle_plate_secondary,omitempty"`
	DriverName            string  `json:"driver_name" binding:"required"`
	RegistrarName         string  `json:"registrar_name" binding:"required"`
	License               *string `json:"license,omitempty"`
	Carrier               *string `json:"carrier,omitempty"`
	OperationType         *string `json:"operation_type,omitempty" binding:"omitempty,oneof=Carga Descarga Importacion Exportacion"`
	Note                  *string `json:"note,omitempty" binding:"omitempty,max=1000"`
}

// ToParams leaves TicketID and CreatedAt zero; the command fills them in.
func (r CreateBookingRequest) ToParams() (booking.NewParams, error) {
	date, err := slot.ParseDate(strings.TrimSpace(r.Date))
	if err != nil {
		return booking.NewParams{}, err
	}
	return booking.NewParams{
		SlotName:       r.SlotName,
		Date:           date,
		PlatePrimary:   r.VehiclePlatePrimary,
		PlateSecondary: patch.Coalesce(r.VehiclePlateSecondary, ""),
		DriverName:     r.DriverName,
		RegistrarName:  r.RegistrarName,
		License:        patch.Coalesce(r.License, ""),
		Carrier:        patch.Coalesce(r.Carrier, ""),
		OperationType:  patch.Coalesce(r.OperationType, ""),
		Note:           patch.Coalesce(r.Note, ""),
	}, nil
}

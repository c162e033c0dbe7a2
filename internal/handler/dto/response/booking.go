package response

import (
	"time"

	"citas-unidades/internal/domain/slot"
	"citas-unidades/internal/usecase/queries"
)

type BookingResponse struct {
	TicketID              string    `json:"ticket_id"`
	Date                  string    `json:"date"`
	SlotName              string    `json:"slot"`
	VehiclePlatePrimary   string    `json:"vehicle_plate_primary"`
	VehiclePlateSecondary string    `json:"vehicle_plate_secondary,omitempty"`
	DriverName            string    `json:"driver_name"`
	RegistrarName         string    `json:"registrar_name"`
	License               string    `json:"license,omitempty"`
	Carrier               string    `json:"carrier,omitempty"`
	OperationType         string    `json:"operation_type,omitempty"`
	Note                  string    `json:"note,omitempty"`
	Status                string    `json:"status"`
	StatusLabel           string    `json:"status_label"`
	CreatedAt             time.Time `json:"created_at"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		TicketID:              v.TicketID,
		Date:                  v.Date,
		SlotName:              v.SlotName,
		VehiclePlatePrimary:   v.PlatePrimary,
		VehiclePlateSecondary: v.PlateSecondary,
		DriverName:            v.DriverName,
		RegistrarName:         v.RegistrarName,
		License:               v.License,
		Carrier:               v.Carrier,
		OperationType:         v.OperationType,
		Note:                  v.Note,
		Status:                v.Status,
		StatusLabel:           v.StatusLabel,
		CreatedAt:             v.CreatedAt,
	}
}

type BookingListItemResponse struct {
	TicketID            string    `json:"ticket_id"`
	Date                string    `json:"date"`
	SlotName            string    `json:"slot"`
	VehiclePlatePrimary string    `json:"vehicle_plate_primary"`
	DriverName          string    `json:"driver_name"`
	Carrier             string    `json:"carrier,omitempty"`
	OperationType       string    `json:"operation_type,omitempty"`
	Status              string    `json:"status"`
	StatusLabel         string    `json:"status_label"`
	CreatedAt           time.Time `json:"created_at"`
}

func FromBookingList(items []*queries.BookingListItem) []*BookingListItemResponse {
	res := make([]*BookingListItemResponse, len(items))
	for i, it := range items {
		res[i] = &BookingListItemResponse{
			TicketID:            it.TicketID,
			Date:                it.Date,
			SlotName:            it.SlotName,
			VehiclePlatePrimary: it.PlatePrimary,
			DriverName:          it.DriverName,
			Carrier:             it.Carrier,
			OperationType:       it.OperationType,
			Status:              it.Status,
			StatusLabel:         it.StatusLabel,
			CreatedAt:           it.CreatedAt,
		}
	}
	return res
}

type SlotAvailabilityResponse struct {
	SlotName  string `json:"slot"`
	SlotLabel string `json:"label"`
	Capacity  int    `json:"capacity"`
	Remaining int    `json:"remaining"`
}

type AvailabilityResponse struct {
	Date  string                     `json:"date"`
	Slots []SlotAvailabilityResponse `json:"slots"`
}

func FromAvailability(date slot.Date, views []queries.SlotAvailabilityView) *AvailabilityResponse {
	slots := make([]SlotAvailabilityResponse, len(views))
	for i, v := range views {
		slots[i] = SlotAvailabilityResponse{
			SlotName:  v.SlotName,
			SlotLabel: v.SlotLabel,
			Capacity:  v.Capacity,
			Remaining: v.Remaining,
		}
	}
	return &AvailabilityResponse{Date: date.String(), Slots: slots}
}

package dto

import (
	"barbershop/internal/domains/slot/model"
	gDto "barbershop/shared/dto"
)

type SlotResponse struct {
	ID             string  `json:"id"`
	AvailabilityID *string `json:"availability_id"`
	Date           string  `json:"date"`
	StartTime      string  `json:"start_time"`
	EndTime        string  `json:"end_time"`
	IsBooked       bool    `json:"is_booked"`
	AppointmentID  *string `json:"appointment_id"`
	CustomerName   *string `json:"customer_name,omitempty"`
	Service        *string `json:"service,omitempty"`
	gDto.Metadata
}

func (r *SlotResponse) FromModel(slot model.Slot) {
	r.ID = slot.ID
	r.AvailabilityID = slot.AvailabilityID
	r.Date = slot.Date.String()
	r.StartTime = slot.StartTime.String()
	r.EndTime = slot.EndTime.String()
	r.IsBooked = slot.IsBooked
	r.AppointmentID = slot.AppointmentID
	r.Metadata.FromModel(slot.Metadata)
}

func (r *SlotResponse) FromDetail(detail model.SlotDetail) {
	r.FromModel(detail.Slot)
	r.CustomerName = detail.CustomerName
	r.Service = detail.Service
}

type GetSlotsResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

func (r *GetSlotsResponse) FromDetails(date string, details []model.SlotDetail) {
	r.Date = date
	r.Slots = make([]SlotResponse, len(details))

	for i, detail := range details {
		r.Slots[i].FromDetail(detail)
	}
}

// OpenTimesResponse lists the distinct unbooked start times of a day.
type OpenTimesResponse struct {
	Date  string   `json:"date"`
	Times []string `json:"times"`
}

package model

import (
	gModel "barbershop/shared/model"
)

const (
	TableName  = "slots"
	EntityName = "slot"

	FieldID             = "id"
	FieldAvailabilityID = "availability_id"
	FieldDate           = "date"
	FieldStartTime      = "start_time"
	FieldEndTime        = "end_time"
	FieldIsBooked       = "is_booked"
	FieldAppointmentID  = "appointment_id"
)

// Slot is one bookable interval. IsBooked is true exactly when AppointmentID is set.
type Slot struct {
	ID             string       `db:"id"`
	AvailabilityID *string      `db:"availability_id"`
	Date           gModel.Date  `db:"date"`
	StartTime      gModel.Clock `db:"start_time"`
	EndTime        gModel.Clock `db:"end_time"`
	IsBooked       bool         `db:"is_booked"`
	AppointmentID  *string      `db:"appointment_id"`
	gModel.Metadata
}

// Consistent reports whether the booked flag agrees with the appointment reference.
func (s Slot) Consistent() bool {
	return s.IsBooked == (s.AppointmentID != nil)
}

// LinkedTo reports whether the slot references the given appointment.
func (s Slot) LinkedTo(appointmentID string) bool {
	return s.AppointmentID != nil && *s.AppointmentID == appointmentID
}

// SlotDetail is a slot joined with the customer of its linked appointment.
type SlotDetail struct {
	Slot
	CustomerName *string `column:"name"    db:"customer_name" table:"appointments"`
	Service      *string `column:"service" db:"service"       table:"appointments"`
}

func (SlotDetail) GetJoinQuery() string {
	return "LEFT JOIN appointments ON appointments.id = slots.appointment_id"
}

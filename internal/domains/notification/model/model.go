package model

import (
	"fmt"
	"time"

	appointmentModel "barbershop/internal/domains/appointment/model"
)

const (
	EventAppointmentBooked    = "appointment.booked"
	EventAppointmentCancelled = "appointment.cancelled"
	EventAppointmentReleased  = "appointment.released"
)

// Event is the payload published for every appointment lifecycle change.
type Event struct {
	Type          string    `json:"type"`
	AppointmentID string    `json:"appointment_id"`
	SlotID        string    `json:"slot_id,omitempty"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Service       string    `json:"service"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func NewEvent(eventType string, appointment appointmentModel.Appointment, slotID string, at time.Time) Event {
	return Event{
		Type:          eventType,
		AppointmentID: appointment.ID,
		SlotID:        slotID,
		Name:          appointment.Name,
		Phone:         appointment.Phone,
		Service:       appointment.Service,
		Date:          appointment.Date.String(),
		Time:          appointment.StartTime.String(),
		OccurredAt:    at,
	}
}

// OwnerText is the message sent to the shop owner chat.
func (e Event) OwnerText() string {
	switch e.Type {
	case EventAppointmentBooked:
		return fmt.Sprintf("New appointment\nName: %s\nPhone: %s\nService: %s\nDate: %s\nTime: %s",
			e.Name, e.Phone, e.Service, e.Date, e.Time)
	case EventAppointmentCancelled, EventAppointmentReleased:
		return fmt.Sprintf("Appointment cancelled\nName: %s\nService: %s\nDate: %s\nTime: %s",
			e.Name, e.Service, e.Date, e.Time)
	default:
		return ""
	}
}

// CustomerText is the SMS confirmation for the customer. Only bookings are confirmed.
func (e Event) CustomerText() string {
	if e.Type != EventAppointmentBooked {
		return ""
	}

	return fmt.Sprintf("Your %s appointment is booked for %s at %s. See you soon!", e.Service, e.Date, e.Time)
}

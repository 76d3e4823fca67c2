package model

import (
	"fmt"

	appointmentModel "barbershop/internal/domains/appointment/model"
	slotModel "barbershop/internal/domains/slot/model"
)

const (
	IssueMissingSlot              = "missing_slot"
	IssueWrongAppointment         = "wrong_appointment"
	IssueSlotNotBooked            = "slot_not_booked"
	IssueBookedWithoutAppointment = "booked_without_appointment"
	IssueFreeWithAppointment      = "free_with_appointment"
)

// Issue is one disagreement between the slot and appointment tables.
type Issue struct {
	Kind          string
	SlotID        string
	AppointmentID string
	Message       string
}

// Audit cross-checks appointments against slots. It never changes either side.
func Audit(appointments []appointmentModel.Appointment, slots []slotModel.Slot) []Issue {
	issues := []Issue{}

	byStart := make(map[string][]slotModel.Slot, len(slots))
	for _, slot := range slots {
		key := startKey(slot.Date.String(), slot.StartTime.String())
		byStart[key] = append(byStart[key], slot)
	}

	for _, appointment := range appointments {
		matches := byStart[startKey(appointment.Date.String(), appointment.StartTime.String())]
		if len(matches) == 0 {
			issues = append(issues, Issue{
				Kind:          IssueMissingSlot,
				AppointmentID: appointment.ID,
				Message:       fmt.Sprintf("appointment %s on %s at %s has no matching slot", appointment.ID, appointment.Date, appointment.StartTime),
			})

			continue
		}

		slot := matches[0]

		for _, candidate := range matches {
			if candidate.LinkedTo(appointment.ID) {
				slot = candidate

				break
			}
		}

		if !slot.LinkedTo(appointment.ID) {
			issues = append(issues, Issue{
				Kind:          IssueWrongAppointment,
				SlotID:        slot.ID,
				AppointmentID: appointment.ID,
				Message:       fmt.Sprintf("slot %s references %s instead of appointment %s", slot.ID, reference(slot), appointment.ID),
			})
		}

		if !slot.IsBooked {
			issues = append(issues, Issue{
				Kind:          IssueSlotNotBooked,
				SlotID:        slot.ID,
				AppointmentID: appointment.ID,
				Message:       fmt.Sprintf("slot %s for appointment %s is not marked booked", slot.ID, appointment.ID),
			})
		}
	}

	for _, slot := range slots {
		switch {
		case slot.IsBooked && slot.AppointmentID == nil:
			issues = append(issues, Issue{
				Kind:    IssueBookedWithoutAppointment,
				SlotID:  slot.ID,
				Message: fmt.Sprintf("slot %s is booked without an appointment", slot.ID),
			})
		case !slot.IsBooked && slot.AppointmentID != nil:
			issues = append(issues, Issue{
				Kind:          IssueFreeWithAppointment,
				SlotID:        slot.ID,
				AppointmentID: *slot.AppointmentID,
				Message:       fmt.Sprintf("slot %s is free but references appointment %s", slot.ID, *slot.AppointmentID),
			})
		}
	}

	return issues
}

func startKey(date, start string) string {
	return date + " " + start
}

func reference(slot slotModel.Slot) string {
	if slot.AppointmentID == nil {
		return "nothing"
	}

	return *slot.AppointmentID
}

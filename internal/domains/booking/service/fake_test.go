package service_test

import (
	"context"
	"sort"
	"sync"

	appointmentModel "barbershop/internal/domains/appointment/model"
	slotModel "barbershop/internal/domains/slot/model"
	gDto "barbershop/shared/dto"
	gModel "barbershop/shared/model"
)

// store is an in-memory stand-in for the slots and appointments tables.
type store struct {
	mu           sync.Mutex
	appointments map[string]appointmentModel.Appointment
	slots        map[string]slotModel.Slot

	reserveErr           error
	releaseErr           error
	deleteAppointmentErr error
	// stealOnReserve lets a competing booking claim the slot right before Reserve runs.
	stealOnReserve bool
}

func newStore() *store {
	return &store{
		appointments: map[string]appointmentModel.Appointment{},
		slots:        map[string]slotModel.Slot{},
	}
}

func (s *store) snapshot() (map[string]appointmentModel.Appointment, map[string]slotModel.Slot) {
	appointments := make(map[string]appointmentModel.Appointment, len(s.appointments))
	for k, v := range s.appointments {
		appointments[k] = v
	}

	slots := make(map[string]slotModel.Slot, len(s.slots))
	for k, v := range s.slots {
		slots[k] = v
	}

	return appointments, slots
}

func (s *store) allSlots() []slotModel.Slot {
	slots := make([]slotModel.Slot, 0, len(s.slots))
	for _, slot := range s.slots {
		slots = append(slots, slot)
	}

	sort.Slice(slots, func(i, j int) bool {
		if slots[i].Date != slots[j].Date {
			return slots[i].Date.Before(slots[j].Date)
		}

		if !slots[i].StartTime.Equal(slots[j].StartTime) {
			return slots[i].StartTime.Before(slots[j].StartTime)
		}

		return slots[i].ID < slots[j].ID
	})

	return slots
}

func (s *store) allAppointments() []appointmentModel.Appointment {
	appointments := make([]appointmentModel.Appointment, 0, len(s.appointments))
	for _, appointment := range s.appointments {
		appointments = append(appointments, appointment)
	}

	sort.Slice(appointments, func(i, j int) bool {
		if appointments[i].Date != appointments[j].Date {
			return appointments[i].Date.Before(appointments[j].Date)
		}

		return appointments[i].StartTime.Before(appointments[j].StartTime)
	})

	return appointments
}

func filterID(filter gDto.FilterGroup) string {
	for _, f := range filter.Filters {
		if fil, ok := f.(gDto.Filter); ok && fil.Field == "id" {
			id, _ := fil.Value.(string)

			return id
		}
	}

	return ""
}

type fakeAppointments struct{ *store }

func (f fakeAppointments) Insert(_ context.Context, appointment appointmentModel.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.appointments[appointment.ID] = appointment

	return nil
}

func (f fakeAppointments) Get(_ context.Context, filter gDto.FilterGroup, _ ...string) (appointmentModel.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.appointments[filterID(filter)], nil
}

func (f fakeAppointments) GetAll(_ context.Context, _ gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]appointmentModel.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.allAppointments(), nil
}

func (f fakeAppointments) ListUpcoming(_ context.Context, from gModel.Date, date *gModel.Date) ([]appointmentModel.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	res := []appointmentModel.Appointment{}

	for _, appointment := range f.allAppointments() {
		if appointment.Date.Before(from) || (date != nil && appointment.Date != *date) {
			continue
		}

		res = append(res, appointment)
	}

	return res, nil
}

func (f fakeAppointments) Count(_ context.Context, _ gDto.FilterGroup) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.appointments), nil
}

func (f fakeAppointments) UpdateCount(_ context.Context, mod map[string]any, filter gDto.FilterGroup) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	appointment, ok := f.appointments[filterID(filter)]
	if !ok {
		return 0, nil
	}

	if v, ok := mod[appointmentModel.FieldName].(string); ok {
		appointment.Name = v
	}

	if v, ok := mod[appointmentModel.FieldPhone].(string); ok {
		appointment.Phone = v
	}

	if v, ok := mod[appointmentModel.FieldService].(string); ok {
		appointment.Service = v
	}

	if v, ok := mod[appointmentModel.FieldDuration].(int); ok {
		appointment.Duration = v
	}

	f.appointments[appointment.ID] = appointment

	return 1, nil
}

func (f fakeAppointments) DeleteCount(_ context.Context, filter gDto.FilterGroup) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.deleteAppointmentErr != nil {
		return 0, f.deleteAppointmentErr
	}

	id := filterID(filter)
	if _, ok := f.appointments[id]; !ok {
		return 0, nil
	}

	delete(f.appointments, id)

	return 1, nil
}

type fakeSlots struct{ *store }

func (f fakeSlots) InsertBulk(_ context.Context, slots []slotModel.Slot) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, slot := range slots {
		f.slots[slot.ID] = slot
	}

	return nil
}

func (f fakeSlots) Get(_ context.Context, filter gDto.FilterGroup, _ ...string) (slotModel.Slot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.slots[filterID(filter)], nil
}

func (f fakeSlots) GetAll(_ context.Context, _ gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]slotModel.Slot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.allSlots(), nil
}

func (f fakeSlots) FindForBooking(_ context.Context, date gModel.Date, start gModel.Clock) (slotModel.Slot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var found slotModel.Slot

	for _, slot := range f.allSlots() {
		if slot.Date != date || !slot.StartTime.Equal(start) {
			continue
		}

		if found.ID == "" || (found.IsBooked && !slot.IsBooked) {
			found = slot
		}
	}

	return found, nil
}

func (f fakeSlots) ListByDate(_ context.Context, date gModel.Date) ([]slotModel.SlotDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	details := []slotModel.SlotDetail{}

	for _, slot := range f.allSlots() {
		if slot.Date != date {
			continue
		}

		detail := slotModel.SlotDetail{Slot: slot}

		if slot.AppointmentID != nil {
			if appointment, ok := f.appointments[*slot.AppointmentID]; ok {
				detail.CustomerName = &appointment.Name
				detail.Service = &appointment.Service
			}
		}

		details = append(details, detail)
	}

	return details, nil
}

func (f fakeSlots) ListOpenTimes(_ context.Context, date gModel.Date) ([]gModel.Clock, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	times := []gModel.Clock{}

	for _, slot := range f.allSlots() {
		if slot.Date != date || slot.IsBooked {
			continue
		}

		if len(times) > 0 && times[len(times)-1].Equal(slot.StartTime) {
			continue
		}

		times = append(times, slot.StartTime)
	}

	return times, nil
}

func (f fakeSlots) Reserve(_ context.Context, id, appointmentID, _ string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.reserveErr != nil {
		return 0, f.reserveErr
	}

	slot, ok := f.slots[id]
	if !ok {
		return 0, nil
	}

	if f.stealOnReserve && !slot.IsBooked {
		winner := appointmentModel.Appointment{
			ID:        "winner-" + id,
			Name:      "Faster Customer",
			Phone:     "000",
			Service:   "hair",
			Date:      slot.Date,
			StartTime: slot.StartTime,
			Duration:  30,
			Status:    appointmentModel.StatusBooked,
		}
		f.appointments[winner.ID] = winner
		slot.IsBooked = true
		slot.AppointmentID = &winner.ID
		f.slots[id] = slot
	}

	if slot.IsBooked {
		return 0, nil
	}

	slot.IsBooked = true
	slot.AppointmentID = &appointmentID
	f.slots[id] = slot

	return 1, nil
}

func (f fakeSlots) ReleaseByAppointment(_ context.Context, appointmentID, _ string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.releaseErr != nil {
		return 0, f.releaseErr
	}

	var released int64

	for id, slot := range f.slots {
		if !slot.LinkedTo(appointmentID) {
			continue
		}

		slot.IsBooked = false
		slot.AppointmentID = nil
		f.slots[id] = slot
		released++
	}

	return released, nil
}

func (f fakeSlots) DetachAvailability(_ context.Context, availabilityID, _ string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var detached int64

	for id, slot := range f.slots {
		if slot.AvailabilityID == nil || *slot.AvailabilityID != availabilityID {
			continue
		}

		slot.AvailabilityID = nil
		f.slots[id] = slot
		detached++
	}

	return detached, nil
}

func (f fakeSlots) DeleteUnbooked(_ context.Context, id string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	slot, ok := f.slots[id]
	if !ok || slot.IsBooked {
		return 0, nil
	}

	delete(f.slots, id)

	return 1, nil
}

func (f fakeSlots) RepairOrphans(_ context.Context, _ string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var repaired int64

	for id, slot := range f.slots {
		if slot.IsBooked && slot.AppointmentID == nil {
			slot.IsBooked = false
			f.slots[id] = slot
			repaired++
		}
	}

	return repaired, nil
}

// fakeTransactor restores the store snapshot when fn fails, like a rolled back transaction.
type fakeTransactor struct {
	store  *store
	atomic bool
}

func (t fakeTransactor) Atomic() bool {
	return t.atomic
}

func (t fakeTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if !t.atomic {
		return fn(ctx)
	}

	t.store.mu.Lock()
	appointments, slots := t.store.snapshot()
	t.store.mu.Unlock()

	if err := fn(ctx); err != nil {
		t.store.mu.Lock()
		t.store.appointments, t.store.slots = appointments, slots
		t.store.mu.Unlock()

		return err
	}

	return nil
}

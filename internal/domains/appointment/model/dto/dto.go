package dto

import (
	"strings"

	"barbershop/internal/domains/appointment/model"
	gDto "barbershop/shared/dto"
	gModel "barbershop/shared/model"
	"barbershop/shared/timezone"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Phone   string `json:"phone"   validate:"required,max=30"`
	Service string `json:"service" validate:"required,service"`
	Date    string `json:"date"    validate:"required,date"`
	Time    string `json:"time"    validate:"required,clock"`
}

// Normalize trims surrounding blanks so whitespace-only values count as missing.
func (c *CreateAppointmentRequest) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Service = strings.TrimSpace(c.Service)
	c.Date = strings.TrimSpace(c.Date)
	c.Time = strings.TrimSpace(c.Time)
}

func (c *CreateAppointmentRequest) ToModel(status, user string) (model.Appointment, error) {
	date, err := gModel.ParseDate(c.Date)
	if err != nil {
		return model.Appointment{}, err
	}

	start, err := gModel.ParseClock(c.Time)
	if err != nil {
		return model.Appointment{}, err
	}

	return model.Appointment{
		ID:        uuid.NewString(),
		Name:      c.Name,
		Phone:     c.Phone,
		Service:   c.Service,
		Date:      date,
		StartTime: start,
		Duration:  model.DurationFor(c.Service),
		Status:    status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

// UpdateAppointmentRequest only carries the editable fields. Date and time are fixed once booked.
type UpdateAppointmentRequest struct {
	Name    *string `json:"name"    validate:"omitempty,max=100"`
	Phone   *string `json:"phone"   validate:"omitempty,max=30"`
	Service *string `json:"service" validate:"omitempty"`
}

func (u *UpdateAppointmentRequest) IsEmpty() bool {
	return u.Name == nil && u.Phone == nil && u.Service == nil
}

// Apply returns the appointment with the edit merged in and the duration derived again from the service.
func (u *UpdateAppointmentRequest) Apply(current model.Appointment) model.Appointment {
	if u.Name != nil {
		current.Name = strings.TrimSpace(*u.Name)
	}

	if u.Phone != nil {
		current.Phone = strings.TrimSpace(*u.Phone)
	}

	if u.Service != nil {
		current.Service = strings.TrimSpace(*u.Service)
	}

	current.Duration = model.DurationFor(current.Service)

	return current
}

type AppointmentResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Service   string `json:"service"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	Duration  int    `json:"duration"`
	Status    string `json:"status"`
	gDto.Metadata
}

func (r *AppointmentResponse) FromModel(model model.Appointment) {
	r.ID = model.ID
	r.Name = model.Name
	r.Phone = model.Phone
	r.Service = model.Service
	r.Date = model.Date.String()
	r.StartTime = model.StartTime.String()
	r.Duration = model.Duration
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetAppointmentsResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetAppointmentsResponse) FromModels(models []model.Appointment) {
	r.TotalData = len(models)
	r.Appointments = make([]AppointmentResponse, len(models))

	for i, mod := range models {
		r.Appointments[i].FromModel(mod)
	}
}

type ServiceResponse struct {
	Name     string `json:"name"`
	Duration int    `json:"duration"`
	PriceCHF int    `json:"price_chf"`
}

func (r *ServiceResponse) FromModel(info model.ServiceInfo) {
	r.Name = info.Name
	r.Duration = info.Duration
	r.PriceCHF = info.PriceCHF
}

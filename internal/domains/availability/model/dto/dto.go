package dto

import (
	"barbershop/internal/domains/availability/model"
	gDto "barbershop/shared/dto"
	gModel "barbershop/shared/model"
	"barbershop/shared/timezone"

	"github.com/google/uuid"
)

type CreateAvailabilityRequest struct {
	Date            string `json:"date"             validate:"required,date"`
	StartTime       string `json:"start_time"       validate:"required,clock"`
	EndTime         string `json:"end_time"         validate:"required,clock"`
	IntervalMinutes int    `json:"interval_minutes" validate:"omitempty,min=1,max=480"`
}

func (c *CreateAvailabilityRequest) ToModel(user string) (model.Availability, error) {
	date, err := gModel.ParseDate(c.Date)
	if err != nil {
		return model.Availability{}, err
	}

	start, err := gModel.ParseClock(c.StartTime)
	if err != nil {
		return model.Availability{}, err
	}

	end, err := gModel.ParseClock(c.EndTime)
	if err != nil {
		return model.Availability{}, err
	}

	return model.Availability{
		ID:        uuid.NewString(),
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type AvailabilityResponse struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	gDto.Metadata
}

func (r *AvailabilityResponse) FromModel(model model.Availability) {
	r.ID = model.ID
	r.Date = model.Date.String()
	r.StartTime = model.StartTime.String()
	r.EndTime = model.EndTime.String()
	r.Metadata.FromModel(model.Metadata)
}

type CreateAvailabilityResponse struct {
	AvailabilityResponse
	SlotsCreated int `json:"slots_created"`
}

type GetAvailabilitiesResponse struct {
	Availabilities []AvailabilityResponse `json:"availabilities"`
	TotalData      int                    `json:"total_data"`
}

func (r *GetAvailabilitiesResponse) FromModels(models []model.Availability) {
	r.TotalData = len(models)
	r.Availabilities = make([]AvailabilityResponse, len(models))

	for i, mod := range models {
		r.Availabilities[i].FromModel(mod)
	}
}

// OpenDatesResponse lists upcoming days that have at least one working window.
type OpenDatesResponse struct {
	Dates []string `json:"dates"`
}

package model

import (
	"barbershop/shared/constant"
	gModel "barbershop/shared/model"
)

const (
	TableName  = "appointments"
	EntityName = "appointment"

	FieldID        = "id"
	FieldName      = "name"
	FieldPhone     = "phone"
	FieldService   = "service"
	FieldDate      = "date"
	FieldStartTime = "start_time"
	FieldDuration  = "duration"
	FieldStatus    = "status"
)

const StatusBooked = "booked"

const (
	DurationShort    = 30
	DurationCombined = 60
)

type Appointment struct {
	ID        string       `db:"id"`
	Name      string       `db:"name"`
	Phone     string       `db:"phone"`
	Service   string       `db:"service"`
	Date      gModel.Date  `db:"date"`
	StartTime gModel.Clock `db:"start_time"`
	Duration  int          `db:"duration"`
	Status    string       `db:"status"`
	gModel.Metadata
}

// DurationFor returns the chair time in minutes for a service.
func DurationFor(service string) int {
	if service == constant.ServiceHairAndBeard {
		return DurationCombined
	}

	return DurationShort
}

type ServiceInfo struct {
	Name     string
	Duration int
	PriceCHF int
}

// Catalog is the fixed list of services the shop offers.
var Catalog = []ServiceInfo{
	{Name: constant.ServiceHair, Duration: DurationFor(constant.ServiceHair), PriceCHF: 30},
	{Name: constant.ServiceBeard, Duration: DurationFor(constant.ServiceBeard), PriceCHF: 20},
	{Name: constant.ServiceHairAndBeard, Duration: DurationFor(constant.ServiceHairAndBeard), PriceCHF: 45},
}

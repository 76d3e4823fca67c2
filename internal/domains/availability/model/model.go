package model

import (
	gModel "barbershop/shared/model"
)

const (
	TableName  = "availability"
	EntityName = "availability"

	FieldID        = "id"
	FieldDate      = "date"
	FieldStartTime = "start_time"
	FieldEndTime   = "end_time"
)

// Availability is a working window on one day. Slots are generated from it once, at creation.
type Availability struct {
	ID        string       `db:"id"`
	Date      gModel.Date  `db:"date"`
	StartTime gModel.Clock `db:"start_time"`
	EndTime   gModel.Clock `db:"end_time"`
	gModel.Metadata
}

package dto

import (
	"barbershop/internal/domains/booking/model"
)

type IssueResponse struct {
	Kind          string `json:"kind"`
	SlotID        string `json:"slot_id,omitempty"`
	AppointmentID string `json:"appointment_id,omitempty"`
	Message       string `json:"message"`
}

type AuditResponse struct {
	Consistent bool            `json:"consistent"`
	Total      int             `json:"total"`
	Issues     []IssueResponse `json:"issues"`
}

func (r *AuditResponse) FromModels(issues []model.Issue) {
	r.Total = len(issues)
	r.Consistent = len(issues) == 0
	r.Issues = make([]IssueResponse, len(issues))

	for i, issue := range issues {
		r.Issues[i] = IssueResponse{
			Kind:          issue.Kind,
			SlotID:        issue.SlotID,
			AppointmentID: issue.AppointmentID,
			Message:       issue.Message,
		}
	}
}

type RepairResponse struct {
	Repaired int64 `json:"repaired"`
}

package dto_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"barbershop/shared/constant"
	"barbershop/shared/dto"
	"barbershop/shared/model"
	"barbershop/shared/timezone"
)

func TestMetadataFromModel(t *testing.T) {
	createdAt := time.Date(2026, 11, 2, 8, 30, 0, 0, time.UTC)
	modifiedAt := createdAt.Add(2 * time.Hour)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  constant.ContextGuest,
		ModifiedBy: "owner@example.com",
	})

	assert.Equal(t, dto.Metadata{
		CreatedAt:  timezone.Format(createdAt, constant.DateFormat),
		ModifiedAt: timezone.Format(modifiedAt, constant.DateFormat),
		CreatedBy:  constant.ContextGuest,
		ModifiedBy: "owner@example.com",
	}, *metadata)
}

func TestQueryParamsFromRequest(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		paginate bool
		expected dto.QueryParams
	}{
		{
			name:     "all parameters",
			query:    "?page=2&limit=20&sort_by=date&sort_dir=desc",
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "date", SortDir: dto.SortDirDesc},
		},
		{
			name:     "unbounded listing",
			query:    "",
			expected: dto.QueryParams{},
		},
		{
			name:     "paginated defaults",
			query:    "",
			paginate: true,
			expected: dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "invalid numbers ignored",
			query:    "?page=-1&limit=abc",
			paginate: true,
			expected: dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "unknown direction ignored",
			query:    "?sort_by=start_time&sort_dir=sideways",
			expected: dto.QueryParams{SortBy: "start_time"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := dto.QueryParams{}
			params.FromRequest(httptest.NewRequest("GET", "/v1/admin/availability/"+tt.query, nil), tt.paginate)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestFilterGetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "equality with table",
			filter:    dto.Filter{Field: "date", Value: "2026-11-02", Operator: dto.FilterOperatorEq, Table: "slots"},
			wantWhere: "slots.date = :date",
			wantArgs:  map[string]any{"date": "2026-11-02"},
		},
		{
			name:      "custom arg name",
			filter:    dto.Filter{ArgName: "from", Field: "date", Value: "2026-11-02", Operator: dto.FilterOperatorGreaterEq},
			wantWhere: "date >= :from",
			wantArgs:  map[string]any{"from": "2026-11-02"},
		},
		{
			name:      "in list",
			filter:    dto.Filter{Field: "id", Value: []string{"a", "b"}, Operator: dto.FilterOperatorIn},
			wantWhere: "id IN (:id_0, :id_1)",
			wantArgs:  map[string]any{"id_0": "a", "id_1": "b"},
		},
		{
			name:      "empty in list matches nothing",
			filter:    dto.Filter{Field: "id", Value: []string{}, Operator: dto.FilterOperatorIn},
			wantWhere: "FALSE",
			wantArgs:  map[string]any{},
		},
		{
			name:      "is null",
			filter:    dto.Filter{Field: "appointment_id", Operator: dto.FilterIsNull, Table: "slots"},
			wantWhere: "slots.appointment_id IS NULL",
			wantArgs:  map[string]any{},
		},
		{
			name:      "unknown operator",
			filter:    dto.Filter{Field: "id", Value: "x", Operator: "like"},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroupGetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "is_booked", Value: true, Operator: dto.FilterOperatorEq},
			dto.Filter{Field: "appointment_id", Operator: dto.FilterIsNull},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{ArgName: "d1", Field: "date", Value: "2026-11-02", Operator: dto.FilterOperatorEq},
					dto.Filter{ArgName: "d2", Field: "date", Value: "2026-11-03", Operator: dto.FilterOperatorEq},
				},
			},
			"ignored",
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(is_booked = :is_booked AND appointment_id IS NULL AND (date = :d1 OR date = :d2))", where)
	assert.Equal(t, map[string]any{"is_booked": true, "d1": "2026-11-02", "d2": "2026-11-03"}, args)

	empty := dto.FilterGroup{}
	where, args = empty.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}

package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"barbershop/shared/model"
)

func TestDate_Scan(t *testing.T) {
	tests := []struct {
		name    string
		src     any
		want    model.Date
		wantErr bool
	}{
		{name: "time from driver", src: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), want: model.NewDate(2025, time.March, 14)},
		{name: "bytes", src: []byte("2025-03-14"), want: model.NewDate(2025, time.March, 14)},
		{name: "timestamp string", src: "2025-03-14T00:00:00Z", want: model.NewDate(2025, time.March, 14)},
		{name: "nil", src: nil, want: model.Date{}},
		{name: "garbage", src: "14.03.2025", wantErr: true},
		{name: "unsupported", src: 42, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got model.Date

			err := got.Scan(tt.src)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDate_ValueAndJSON(t *testing.T) {
	d := model.NewDate(2025, time.January, 5)

	value, err := d.Value()
	assert.NoError(t, err)
	assert.Equal(t, "2025-01-05", value)

	raw, err := json.Marshal(d)
	assert.NoError(t, err)
	assert.JSONEq(t, `"2025-01-05"`, string(raw))

	var decoded model.Date
	assert.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, d, decoded)

	assert.True(t, d.Before(model.NewDate(2025, time.January, 6)))
	assert.True(t, model.NewDate(2025, time.February, 1).After(d))
}

func TestClock_Scan(t *testing.T) {
	tests := []struct {
		name    string
		src     any
		want    model.Clock
		wantErr bool
	}{
		{name: "postgres time text", src: []byte("09:45:00"), want: model.NewClock(9, 45)},
		{name: "with fraction", src: "17:30:00.000000", want: model.NewClock(17, 30)},
		{name: "short form", src: "08:15", want: model.NewClock(8, 15)},
		{name: "time value", src: time.Date(0, 1, 1, 13, 5, 0, 0, time.UTC), want: model.NewClock(13, 5)},
		{name: "invalid", src: "9h", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got model.Clock

			err := got.Scan(tt.src)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestClock_Arithmetic(t *testing.T) {
	start := model.NewClock(9, 0)

	next, ok := start.AddMinutes(45)
	assert.True(t, ok)
	assert.Equal(t, "09:45", next.String())
	assert.True(t, start.Before(next))
	assert.Equal(t, 585, next.Minutes())

	_, ok = model.NewClock(23, 30).AddMinutes(45)
	assert.False(t, ok)

	value, err := next.Value()
	assert.NoError(t, err)
	assert.Equal(t, "09:45:00", value)
}

func TestParseClock(t *testing.T) {
	c, err := model.ParseClock(" 10:30 ")
	assert.NoError(t, err)
	assert.Equal(t, "10:30", c.String())

	_, err = model.ParseClock("10.30")
	assert.ErrorIs(t, err, model.ErrInvalidClock)

	_, err = model.ParseDate("2025-13-01")
	assert.ErrorIs(t, err, model.ErrInvalidDate)
}

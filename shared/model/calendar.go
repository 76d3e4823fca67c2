package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

const (
	dayLayout      = "2006-01-02"
	clockLayout    = "15:04"
	clockSQLLayout = "15:04:05"
	minutesPerDay  = 24 * 60
)

var (
	ErrInvalidDate  = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidClock = errors.New("invalid time, expected HH:MM")
)

// Date is a calendar day without a time zone, stored as a postgres DATE.
type Date struct {
	civil.Date
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{civil.Date{Year: year, Month: month, Day: day}}
}

func DateOf(t time.Time) Date {
	return Date{civil.DateOf(t)}
}

func ParseDate(value string) (Date, error) {
	d, err := civil.ParseDate(strings.TrimSpace(value))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}

	return Date{d}, nil
}

func (d Date) IsZero() bool {
	return d.Date == civil.Date{}
}

func (d Date) Before(other Date) bool {
	return d.Date.Before(other.Date)
}

func (d Date) After(other Date) bool {
	return d.Date.After(other.Date)
}

func (d Date) String() string {
	return d.Date.String()
}

// Scan implements sql.Scanner.
func (d *Date) Scan(src any) error {
	switch value := src.(type) {
	case nil:
		*d = Date{}

		return nil
	case time.Time:
		*d = DateOf(value)

		return nil
	case []byte:
		return d.scanString(string(value))
	case string:
		return d.scanString(value)
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

func (d *Date) scanString(value string) error {
	if len(value) > len(dayLayout) {
		value = value[:len(dayLayout)]
	}

	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}

	return d.String(), nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDate, err)
	}

	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

// Clock is a wall clock time of day with minute precision, stored as a postgres TIME.
type Clock struct {
	civil.Time
}

func NewClock(hour, minute int) Clock {
	return Clock{civil.Time{Hour: hour, Minute: minute}}
}

// ParseClock accepts both HH:MM and HH:MM:SS.
func ParseClock(value string) (Clock, error) {
	value = strings.TrimSpace(value)

	layout := clockLayout
	if strings.Count(value, ":") == 2 {
		layout = clockSQLLayout
	}

	t, err := time.Parse(layout, value)
	if err != nil {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidClock, value)
	}

	return Clock{civil.TimeOf(t)}, nil
}

func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

func (c Clock) Before(other Clock) bool {
	return c.Minutes() < other.Minutes()
}

func (c Clock) Equal(other Clock) bool {
	return c.Minutes() == other.Minutes()
}

// AddMinutes returns the clock shifted by the given minutes and reports false
// when the result leaves the day it started in.
func (c Clock) AddMinutes(minutes int) (Clock, bool) {
	total := c.Minutes() + minutes
	if total < 0 || total >= minutesPerDay {
		return Clock{}, false
	}

	return NewClock(total/60, total%60), true
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Scan implements sql.Scanner.
func (c *Clock) Scan(src any) error {
	switch value := src.(type) {
	case nil:
		*c = Clock{}

		return nil
	case time.Time:
		*c = NewClock(value.Hour(), value.Minute())

		return nil
	case []byte:
		return c.scanString(string(value))
	case string:
		return c.scanString(value)
	default:
		return fmt.Errorf("cannot scan %T into Clock", src)
	}
}

func (c *Clock) scanString(value string) error {
	if idx := strings.IndexAny(value, ".+"); idx > 0 {
		value = value[:idx]
	}

	parsed, err := ParseClock(value)
	if err != nil {
		return err
	}

	*c = parsed

	return nil
}

// Value implements driver.Valuer.
func (c Clock) Value() (driver.Value, error) {
	return fmt.Sprintf("%02d:%02d:00", c.Hour, c.Minute), nil
}

func (c Clock) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Clock) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidClock, err)
	}

	parsed, err := ParseClock(raw)
	if err != nil {
		return err
	}

	*c = parsed

	return nil
}

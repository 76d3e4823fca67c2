package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind groups failures so callers can match them with errors.Is regardless of message.
type Kind string

const (
	KindUnknown          Kind = ""
	KindValidation       Kind = "validation"
	KindSlotUnavailable  Kind = "slot_unavailable"
	KindSlotInUse        Kind = "slot_in_use"
	KindNotFound         Kind = "not_found"
	KindPartialWrite     Kind = "partial_write"
	KindStoreUnavailable Kind = "store_unavailable"
)

// StatusPartialWrite is returned when only the first of two dependent writes committed.
const StatusPartialWrite = http.StatusMultiStatus

// Failure is a domain error carrying the HTTP status it maps to.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Kind    Kind   `json:"kind,omitempty"`
}

var (
	ErrValidation       = &Failure{Kind: KindValidation}
	ErrSlotUnavailable  = &Failure{Kind: KindSlotUnavailable}
	ErrSlotInUse        = &Failure{Kind: KindSlotInUse}
	ErrNotFound         = &Failure{Kind: KindNotFound}
	ErrPartialWrite     = &Failure{Kind: KindPartialWrite}
	ErrStoreUnavailable = &Failure{Kind: KindStoreUnavailable}
)

var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}

func (e *Failure) Error() string {
	return e.Message
}

// Is matches two failures of the same non-empty kind.
func (e *Failure) Is(target error) bool {
	var other *Failure
	if !errors.As(target, &other) {
		return false
	}

	return e.Kind != KindUnknown && e.Kind == other.Kind
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
			Kind:    KindValidation,
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
		Kind:    KindValidation,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
		Kind:    KindNotFound,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// SlotUnavailable reports that the requested slot does not exist or is already booked.
func SlotUnavailable(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
		Kind:    KindSlotUnavailable,
	}
}

// SlotInUse reports an attempt to remove a slot that still holds a booking.
func SlotInUse(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
		Kind:    KindSlotInUse,
	}
}

// StoreUnavailable wraps a connectivity failure of the backing store.
func StoreUnavailable(err error) error {
	if err == nil {
		return nil
	}

	return &StoreError{Err: err}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
	}
}

// StoreError keeps the driver error reachable through errors.As while matching ErrStoreUnavailable.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store unavailable: %v", e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func (e *StoreError) Is(target error) bool {
	return target == ErrStoreUnavailable //nolint:errorlint
}

// PartialWrite describes a dual write where the first step committed and the second did not.
// The ids let an operator find the rows the reconciler has to look at.
type PartialWrite struct {
	Operation     string `json:"operation"`
	AppointmentID string `json:"appointment_id,omitempty"`
	SlotID        string `json:"slot_id,omitempty"`
	Err           error  `json:"-"`
}

func (e *PartialWrite) Error() string {
	return fmt.Sprintf("partial write during %s (appointment %q, slot %q): %v", e.Operation, e.AppointmentID, e.SlotID, e.Err)
}

func (e *PartialWrite) Unwrap() error {
	return e.Err
}

func (e *PartialWrite) Is(target error) bool {
	return target == ErrPartialWrite //nolint:errorlint
}

// GetCode maps any error to the status the API answers with. Unrecognised errors are 500.
func GetCode(err error) int {
	var partial *PartialWrite
	if errors.As(err, &partial) {
		return StatusPartialWrite
	}

	var store *StoreError
	if errors.As(err, &store) {
		return http.StatusServiceUnavailable
	}

	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

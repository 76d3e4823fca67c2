package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"barbershop/shared/constant"
	"barbershop/shared/failure"
	"barbershop/shared/logger"
)

const internalErrorMessage = "internal server error"

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

// Error is the body of every non-2xx answer. Kind lets clients branch without
// parsing the message, Partial names the rows left behind by a half-applied write.
type Error struct {
	Error   *string               `json:"error,omitempty"`
	Kind    failure.Kind          `json:"kind,omitempty"`
	Partial *failure.PartialWrite `json:"partial,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

func WithMessage(writer http.ResponseWriter, code int, message string) {
	write(writer, code, Message{Message: &message})
}

// WithJSON wraps the payload in {"data": ...}.
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	write(writer, code, Data[any]{Data: &jsonPayload})
}

// WithError answers with the status from failure.GetCode. Errors that are not
// domain failures are reported as a generic 500 so driver messages stay internal.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	body := Error{}

	var (
		fail    *failure.Failure
		partial *failure.PartialWrite
	)

	switch {
	case errors.As(err, &partial):
		body.Kind = failure.KindPartialWrite
		body.Partial = partial
	case errors.As(err, &fail):
		body.Kind = fail.Kind
	case errors.Is(err, failure.ErrStoreUnavailable):
		body.Kind = failure.KindStoreUnavailable
	}

	message := err.Error()
	if code == http.StatusInternalServerError && fail == nil {
		logger.ErrorWithStack(err)

		message = internalErrorMessage
	}

	body.Error = &message

	write(writer, code, body)
}

func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func write(writer http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		writer.WriteHeader(http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}

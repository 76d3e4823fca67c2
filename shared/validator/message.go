package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required": "{field} is required",
	"oneof":    "{field} must be one of {param}",
	"max":      "{field} must be at most {param}",
	"min":      "{field} must be at least {param}",
	"email":    "{field} must be a valid email address",
	"date":     "{field} must be a date formatted as YYYY-MM-DD",
	"clock":    "{field} must be a time formatted as HH:MM",
	"service":  "{field} must be one of hair, beard, hair & beard",
}

// message renders every failed rule, in field order, joined by "; ".
func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	rendered := make([]string, 0, len(valErrors))

	for _, valErr := range valErrors {
		template, ok := messages[valErr.Tag()]
		if !ok {
			rendered = append(rendered, valErr.Field()+" is invalid")

			continue
		}

		rendered = append(rendered, strings.NewReplacer(
			"{field}", valErr.Field(),
			"{param}", valErr.Param(),
		).Replace(template))
	}

	return strings.Join(rendered, "; ")
}

// Package form defines the API request bodies and their validation. Instead
// of throwing, validation returns the failing fields so handlers can answer
// 400 with a structured error payload.
package form

import (
	"sort"
	"strings"

	"github.com/asaskevich/govalidator"
)

// FieldErrors maps a request field to a human readable validation message.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for field := range fe {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+fe[field])
	}
	return strings.Join(parts, "; ")
}

// validateStruct runs the govalidator tag rules and collects per-field
// messages.
func validateStruct(s interface{}) FieldErrors {
	if _, err := govalidator.ValidateStruct(s); err != nil {
		fe := FieldErrors{}
		for field, msg := range govalidator.ErrorsByField(err) {
			fe[field] = msg
		}
		return fe
	}
	return nil
}

func asError(fe FieldErrors) error {
	if len(fe) > 0 {
		return fe
	}
	return nil
}

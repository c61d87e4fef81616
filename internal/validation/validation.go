// Package validation turns request-body checks into the structured
// field-error lists the API returns on 400s.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"devconnect/internal/models"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	// Report field names by their json tag so error params match the wire format.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Struct validates s and returns one FieldError per failing field. Request
// structs carry a `msg` tag with the exact client-facing message; fields
// without one get a generic message derived from the json name.
func Struct(s any) []models.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []models.FieldError{{Msg: "Invalid request body"}}
	}

	t := reflect.TypeOf(s)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	fields := make([]models.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg := ""
		if sf, ok := t.FieldByName(fe.StructField()); ok {
			msg = sf.Tag.Get("msg")
		}
		if msg == "" {
			msg = fmt.Sprintf("%s is invalid", fe.Field())
		}
		fields = append(fields, models.FieldError{Param: fe.Field(), Msg: msg})
	}
	return fields
}

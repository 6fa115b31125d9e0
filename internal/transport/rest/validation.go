package rest

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/vocabflash-backend/internal/domain"
)

var validate = newValidator()

// requestValidator checks request DTO shape and reports failures as a
// domain.ValidationError keyed by JSON field path.
type requestValidator struct {
	v *validator.Validate
}

func newValidator() *requestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Use JSON tag names in field paths.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		switch name {
		case "-":
			return ""
		case "":
			return fld.Name
		}
		return name
	})

	return &requestValidator{v: v}
}

// Struct validates s. A nil return means s is well-formed.
func (rv *requestValidator) Struct(s any) error {
	err := rv.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.NewValidationError("body", "invalid request")
	}

	fields := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domain.FieldError{Field: fieldPath(fe), Message: friendlyMessage(fe)})
	}
	return domain.NewValidationErrors(fields)
}

// fieldPath drops the struct name from the namespace: "req.items[0].word"
// becomes "items[0].word".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func friendlyMessage(fe validator.FieldError) string {
	unit := "characters"
	if k := fe.Kind(); k == reflect.Slice || k == reflect.Array {
		unit = "items"
	}

	switch fe.Tag() {
	case "required":
		return "required"
	case "min":
		return fmt.Sprintf("at least %s %s", fe.Param(), unit)
	case "max":
		return fmt.Sprintf("max %s %s", fe.Param(), unit)
	case "uuid", "uuid4":
		return "must be a valid UUID"
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	default:
		return "is invalid"
	}
}

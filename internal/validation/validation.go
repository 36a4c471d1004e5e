// Package validation wraps go-playground/validator with the marketplace's
// custom tags and converts its errors into *errs.ValidationError.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"bookswap/internal/errs"
	"bookswap/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator checks struct tags on request and input types.
type Validator struct {
	validate *validator.Validate
}

// New returns a Validator that reports fields by their JSON names and knows the bookcondition tag.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("bookcondition", func(fl validator.FieldLevel) bool {
		return models.Condition(fl.Field().String()).Valid()
	})
	return &Validator{validate: v}
}

// Struct validates s, returning a *errs.ValidationError listing every failing field.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("failed to validate: %w", err)
	}

	fields := make(map[string]string, len(verrs))
	for _, e := range verrs {
		fields[fieldPath(e)] = message(e)
	}
	return &errs.ValidationError{Fields: fields}
}

// fieldPath drops the top-level struct name, keeping nested names such as location.upazilaId.
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "gte":
		return fmt.Sprintf("must be at least %s", e.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", e.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", e.Param())
	case "bookcondition":
		return fmt.Sprintf("must be one of %s", conditionList())
	case "url":
		return "must be a valid URL"
	case "email":
		return "must be a valid email address"
	default:
		return fmt.Sprintf("failed on the '%s' tag", e.Tag())
	}
}

func conditionList() string {
	names := make([]string, len(models.Conditions))
	for i, c := range models.Conditions {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

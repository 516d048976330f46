package utils

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Egyptian mobile numbers: 010, 011, 012 or 015 followed by eight digits.
var egyptianPhone = regexp.MustCompile(`^01[0125][0-9]{8}$`)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError describes one failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		_ = validate.RegisterValidation("egphone", func(fl validator.FieldLevel) bool {
			return IsValidPhone(fl.Field().String())
		})
	})
	return validate
}

// IsValidPhone reports whether phone is a valid Egyptian mobile number.
func IsValidPhone(phone string) bool {
	return egyptianPhone.MatchString(phone)
}

// ValidateStruct runs the validate tags on obj and returns a ValidationFailure listing each field.
func ValidateStruct(obj any) error {
	err := getValidator().Struct(obj)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return Validation("invalid request data: %v", err)
	}

	appErr := Validation("invalid request data")
	for _, fe := range fieldErrs {
		appErr.Fields = append(appErr.Fields, FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
			Type:    fe.Tag(),
		})
	}
	return appErr
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "egphone":
		return "Invalid phone number"
	case "min":
		return "Value is too short or too small"
	case "max":
		return "Value is too long or too large"
	case "gt":
		return "Value must be greater than " + fe.Param()
	case "gte":
		return "Value must be greater than or equal to " + fe.Param()
	case "lte":
		return "Value must be less than or equal to " + fe.Param()
	case "oneof":
		return "Value must be one of: " + fe.Param()
	case "datetime":
		return "Value must match the format " + fe.Param()
	default:
		return "Invalid value"
	}
}

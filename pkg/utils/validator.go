package utils

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

// maxMoney is the first value that no longer fits NUMERIC(14,2).
var maxMoney = decimal.New(1, 12)

func newValidator() *validator.Validate {
	v := validator.New()
	// money fields are decimals; numeric tags (gt, gte, max) see them as float64
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	_ = v.RegisterValidation("money", validateMoney)
	return v
}

// validateMoney accepts at most two decimal places and magnitudes below maxMoney.
func validateMoney(fl validator.FieldLevel) bool {
	var d decimal.Decimal
	switch field := fl.Field(); field.Kind() {
	case reflect.Float32, reflect.Float64:
		d = decimal.NewFromFloat(field.Float())
	default:
		v, ok := field.Interface().(decimal.Decimal)
		if !ok {
			return false
		}
		d = v
	}
	return d.Abs().LessThan(maxMoney) && d.Equal(d.Truncate(2))
}

func ValidateStruct(data interface{}) map[string]string {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, err := range validationErrors {
			errors[err.Field()] = getErrorMessage(err)
		}
	}

	return errors
}

// converts validator errors to human-readable messages
func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required", "required_without", "required_with":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min", "gte":
		return fmt.Sprintf("Minimum value is %s", err.Param())
	case "max", "lte":
		return fmt.Sprintf("Maximum value is %s", err.Param())
	case "gt":
		return fmt.Sprintf("Must be greater than %s", err.Param())
	case "len":
		return fmt.Sprintf("Must be exactly %s characters", err.Param())
	case "oneof":
		options := strings.ReplaceAll(err.Param(), " ", ", ")
		return fmt.Sprintf("Must be one of: %s", options)
	case "uuid", "uuid4":
		return "Must be a valid UUID"
	case "numeric":
		return "Must contain digits only"
	case "url":
		return "Must be a valid URL"
	case "datetime":
		return fmt.Sprintf("Must match format %s", err.Param())
	case "money":
		return "Must have at most 2 decimal places and be below 1000000000000"
	case "gtfield":
		return fmt.Sprintf("Must be after %s", err.Param())
	default:
		return fmt.Sprintf("Invalid %s field", err.Field())
	}
}

// formats validation errors map into single string
func FormatValidationErrors(errors map[string]string) string {
	fields := make([]string, 0, len(errors))
	for field := range errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, errors[field]))
	}
	return strings.Join(msgs, "; ")
}

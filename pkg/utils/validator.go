package utils

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// PhonePattern accepts a 10-digit Indian mobile number starting with 6-9.
var PhonePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

// oneOfParam splits a oneof parameter, keeping 'quoted values' whole
var oneOfParam = regexp.MustCompile(`'[^']*'|\S+`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// report fields by their json name so clients can map errors to inputs
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return IsValidPhone(fl.Field().String())
	})
	_ = v.RegisterValidation("posint", func(fl validator.FieldLevel) bool {
		_, ok := ParsePositiveInt(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return v
}

// IsValidPhone reports whether s is exactly 10 digits starting with 6-9.
func IsValidPhone(s string) bool {
	return PhonePattern.MatchString(s)
}

// MaxPrice is the largest price the products.price INTEGER column holds.
const MaxPrice = math.MaxInt32

// ParsePositiveInt parses a decimal string holding an integer in
// [1, MaxPrice].
func ParsePositiveInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil || n <= 0 {
		return 0, false
	}
	return int(n), true
}

// ValidateStruct returns field -> message, or nil when data is valid.
func ValidateStruct(data any) map[string]string {
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
	case "required", "notblank":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		return fmt.Sprintf("Minimum length is %s", err.Param())
	case "max":
		return fmt.Sprintf("Maximum length is %s", err.Param())
	case "oneof":
		options := oneOfParam.FindAllString(err.Param(), -1)
		for i, o := range options {
			options[i] = strings.Trim(o, "'")
		}
		return fmt.Sprintf("Must be one of: %s", strings.Join(options, ", "))
	case "eqfield":
		return "Does not match " + err.Param()
	case "uuid", "uuid4":
		return "Must be a valid UUID"
	case "phone":
		return "Enter a valid 10-digit Indian mobile number"
	case "posint":
		return fmt.Sprintf("Price must be a whole number from 1 to %d", MaxPrice)
	default:
		return fmt.Sprintf("Invalid %s field", err.Field())
	}
}

// formats validation errors map into single string, sorted by field
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

package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("money", validateMoney)
	_ = v.RegisterValidation("transaction_kind", validateTransactionKind)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// ValidateStruct validates a struct and returns one detail message per failed
// field, using json field names. A nil slice means the input passed.
func (v *Validator) ValidateStruct(s interface{}) []string {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		details = append(details, formatFieldError(fieldErr))
	}
	return details
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s: is required", fe.Field())
	case "required_if":
		return fmt.Sprintf("%s: is required for this transaction kind", fe.Field())
	case "excluded_if":
		return fmt.Sprintf("%s: must not be set for this transaction kind", fe.Field())
	case "money":
		return fmt.Sprintf("%s: must be a non-negative decimal amount", fe.Field())
	case "transaction_kind":
		return fmt.Sprintf("%s: must be Expense or Income", fe.Field())
	default:
		return fmt.Sprintf("%s: failed %s validation", fe.Field(), fe.Tag())
	}
}

// Custom validation functions

// validateMoney validates that a string amount parses to a finite,
// non-negative decimal number
func validateMoney(fl validator.FieldLevel) bool {
	raw := strings.TrimSpace(fl.Field().String())
	if raw == "" {
		return false
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return false
	}

	return !amount.IsNegative()
}

// validateTransactionKind validates that the kind is one of the allowed kinds
func validateTransactionKind(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "Expense", "Income":
		return true
	default:
		return false
	}
}

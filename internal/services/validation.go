package services

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sbilibin2017/invest-ledger/internal/models"
)

// MinAmount is the smallest deposit or withdrawal accepted.
const MinAmount = 500

var phonePattern = regexp.MustCompile(`^01\d{9}$`)

// DepositInput is the user-supplied part of a deposit.
type DepositInput struct {
	Amount float64 `json:"amount" validate:"gte=500"`
	Method string  `json:"method" validate:"method"`
	Phone  string  `json:"phone" validate:"bdphone"`
	TrxID  string  `json:"trx_id" validate:"required"`
}

// WithdrawInput is the user-supplied part of a withdrawal.
type WithdrawInput struct {
	Amount float64 `json:"amount" validate:"gte=500"`
	Method string  `json:"method" validate:"method"`
	Phone  string  `json:"phone" validate:"bdphone"`
}

// Validator checks ledger inputs.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a Validator with the payment-specific rules registered.
func NewValidator() *Validator {
	v := validator.New()
	_ = v.RegisterValidation("bdphone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("method", func(fl validator.FieldLevel) bool {
		return IsPaymentMethod(fl.Field().String())
	})
	return &Validator{validate: v}
}

// IsPaymentMethod reports whether m names a supported payment method.
func IsPaymentMethod(m string) bool {
	switch m {
	case models.MethodBkash, models.MethodNogod, models.MethodRocket:
		return true
	}
	return false
}

// normalizeMethod lower-cases the method and defaults an empty one to bkash.
func normalizeMethod(m string) string {
	m = strings.ToLower(strings.TrimSpace(m))
	if m == "" {
		return models.MethodBkash
	}
	return m
}

// Struct validates s and converts the first failure into a *ValidationError.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	return &ValidationError{Field: fieldName(fe.Field()), Message: validationMessage(fe.Tag())}
}

func fieldName(f string) string {
	switch f {
	case "TrxID":
		return "trx_id"
	default:
		return strings.ToLower(f)
	}
}

func validationMessage(tag string) string {
	switch tag {
	case "gte":
		return "must be at least 500"
	case "bdphone":
		return "must be an 11-digit number starting with 01"
	case "method":
		return "must be one of bkash, nogod, rocket"
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "is too short"
	default:
		return "failed " + tag + " check"
	}
}

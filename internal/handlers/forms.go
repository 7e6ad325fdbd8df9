package handlers

import (
	"github.com/go-playground/validator/v10"
)

// ValidationHelper wraps the shared validator instance. Form validation
// happens before any core platform call, so an empty rejection reason or
// blank credentials never cost a network round trip.
type ValidationHelper struct {
	validator *validator.Validate
}

func NewValidationHelper() *ValidationHelper {
	return &ValidationHelper{validator: validator.New()}
}

func (vh *ValidationHelper) ValidateStruct(s any) error {
	return vh.validator.Struct(s)
}

type loginForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

type rejectForm struct {
	Reason string `validate:"required"`
}

type creditLimitForm struct {
	CreditLimit int64 `validate:"required,gt=0"`
}

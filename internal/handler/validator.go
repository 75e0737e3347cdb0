package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/matkaworks/matka-backend/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	_ = v.RegisterValidation("game_type", validateGameType)
	_ = v.RegisterValidation("haruf_position", validateHarufPosition)
	_ = v.RegisterValidation("game_status", validateGameStatus)
	_ = v.RegisterValidation("clock", validateClock)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map.
// This prevents leaking internal struct names.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "game_type":
			errs[field] = "Must be one of: jodi, haruf, crossing"
		case "haruf_position":
			errs[field] = "Must be first or last"
		case "game_status":
			errs[field] = "Must be one of: waiting, open, closed, result_declared"
		case "clock":
			errs[field] = "Must be a HH:mm time"
		case "numeric":
			errs[field] = "Must contain only digits"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "gt", "gte":
			errs[field] = "Value is too small"
		case "lt", "lte":
			errs[field] = "Value is too large"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

func validateGameType(fl validator.FieldLevel) bool {
	return domain.ValidGameType(domain.GameType(fl.Field().String()))
}

// validateHarufPosition accepts empty: the required combination is enforced
// where the bet is evaluated, since jodi and crossing bets carry no position.
func validateHarufPosition(fl validator.FieldLevel) bool {
	switch domain.HarufPosition(fl.Field().String()) {
	case "", domain.HarufFirst, domain.HarufLast:
		return true
	}
	return false
}

func validateGameStatus(fl validator.FieldLevel) bool {
	return domain.ValidGameStatus(domain.GameStatus(fl.Field().String()))
}

// validateClock checks a HH:mm wall-clock string.
func validateClock(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	hh := int(s[0]-'0')*10 + int(s[1]-'0')
	mm := int(s[3]-'0')*10 + int(s[4]-'0')
	return hh < 24 && mm < 60
}

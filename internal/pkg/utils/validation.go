package utils

import (
	"preplan-service/internal/pkg/constvars"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("course_code", validateCourseCode)
	validate.RegisterValidation("swap_status", validateSwapStatus)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	hasMinLen := len(password) >= 8
	hasSpecialChar := regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar).MatchString(password)
	hasUppercase := regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase).MatchString(password)
	return hasMinLen && hasSpecialChar && hasUppercase
}

func validateCourseCode(fl validator.FieldLevel) bool {
	return regexp.MustCompile(constvars.RegexCourseCode).MatchString(fl.Field().String())
}

func validateSwapStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.SwapStatusPending, constvars.SwapStatusAccepted, constvars.SwapStatusRejected, constvars.SwapStatusCancelled:
		return true
	}
	return false
}

package utils

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)

// InitValidator registers custom binding rules with gin's validator engine.
func InitValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("username", ValidateUsername)
		_ = v.RegisterValidation("password", ValidatePassword)
	}
}

// ValidateUsername accepts 3-20 characters of letters, digits, underscores.
func ValidateUsername(fl validator.FieldLevel) bool {
	return usernameRegex.MatchString(fl.Field().String())
}

// ValidatePassword enforces the length bounds shared with HashPassword.
func ValidatePassword(fl validator.FieldLevel) bool {
	length := len(fl.Field().String())
	return length >= MinPasswordLength && length <= MaxPasswordLength
}

package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// completePhone matches the fully filled mini-app phone mask
// "+7 (900) 000-00-00". A partially typed number does not match.
var completePhone = regexp.MustCompile(`^\+7 \(\d{3}\) \d{3}-\d{2}-\d{2}$`)

// IsPhoneComplete reports whether the phone number satisfies the masked
// pattern completely.
func IsPhoneComplete(phone string) bool {
	return completePhone.MatchString(phone)
}

func validatePhone(fl validator.FieldLevel) bool {
	return IsPhoneComplete(fl.Field().String())
}

package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// fieldMessages maps field/tag pairs from the binding validator to the
// user-facing validation messages.
var fieldMessages = map[string]map[string]string{
	"Email": {
		"required": "Please enter your email address",
		"email":    "Email must be a valid email",
	},
	"Password": {
		"required": "Please enter your password",
		"min":      "Password must be atleast 5 chars long",
		"max":      "Password must not be more than 150 chars long",
	},
}

// ValidationMessage translates a gin binding error into a field-level
// message. Errors that did not come from the validator (malformed JSON,
// wrong types) fall back to a generic message.
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		// Report the first failing rule, mirroring one-message-per-response.
		fe := verrs[0]
		if tags, ok := fieldMessages[fe.Field()]; ok {
			if msg, ok := tags[fe.Tag()]; ok {
				return msg
			}
		}
	}
	return "Invalid request body"
}

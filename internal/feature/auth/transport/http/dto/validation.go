package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// fieldMessages maps struct fields to the user-facing message for their
// violated rule. Responses carry these fixed strings rather than the
// validator's internal error text.
var fieldMessages = map[string]string{
	"Email":           "Invalid email",
	"Password":        "Password must be at least 10 characters long",
	"CurrentPassword": "Current password must be at least 10 characters long",
	"NewPassword":     "Password must be at least 10 characters long",
}

// ValidationMessages converts a gin binding error into one message per
// violated rule. Errors that are not field validation failures (e.g.
// malformed JSON) collapse to a single generic message.
func ValidationMessages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{"Invalid request body"}
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if msg, ok := fieldMessages[fe.Field()]; ok {
			msgs = append(msgs, msg)
			continue
		}
		msgs = append(msgs, "Invalid "+fe.Field())
	}
	return msgs
}

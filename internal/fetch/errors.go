package fetch

import (
	"errors"
	"strings"
)

// Messages shown when a route identifier cannot be used.
var (
	ErrMissingID = errors.New("Project ID is missing.")
	ErrInvalidID = errors.New("Invalid project ID. ID must be a number.")
)

var errAlreadyRan = errors.New("fetch: loader already ran for this ticket")

// fallbackMessage is shown for errors that carry no text.
const fallbackMessage = "An error occurred"

// Describe turns err into the message a view displays.
func Describe(err error) string {
	if err == nil {
		return fallbackMessage
	}
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return fallbackMessage
}

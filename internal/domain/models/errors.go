package models

import (
	"errors"
	"strings"
)

// ValidationError lists required fields that were missing or empty.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "Error! " + strings.Join(e.Fields, ", ") + " must be not empty"
}

var ErrNothingToUpdate = errors.New("Error! at least one of author, alt, tags, image, description must be provided")

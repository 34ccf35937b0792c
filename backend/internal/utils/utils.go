package utils

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/itchan-dev/punchcards/backend/internal/errors"
	"github.com/itchan-dev/punchcards/shared/config"
)

func checkText(field, text string, maxLen int, required bool) error {
	if required && strings.TrimSpace(text) == "" {
		return &errors.ValidationError{Message: fmt.Sprintf("%s is required", field)}
	}
	if utf8.RuneCountInString(text) > maxLen {
		return &errors.ValidationError{Message: fmt.Sprintf("%s is too long", field)}
	}
	return nil
}

type CardValidator struct {
	Limits config.Limits
}

func (v *CardValidator) Title(title string) error {
	return checkText("title", title, v.Limits.TitleMaxLen, true)
}

// Capacity must be positive; a card with no slots could never be punched.
func (v *CardValidator) Capacity(capacity int) error {
	if capacity <= 0 {
		return &errors.ValidationError{Message: "capacity must be positive"}
	}
	if capacity > v.Limits.MaxCapacity {
		return &errors.ValidationError{Message: fmt.Sprintf("capacity must not exceed %d", v.Limits.MaxCapacity)}
	}
	return nil
}

type PersonValidator struct {
	Limits config.Limits
}

func (v *PersonValidator) Name(name string) error {
	return checkText("name", name, v.Limits.NameMaxLen, true)
}

type PunchValidator struct {
	Limits config.Limits
}

func (v *PunchValidator) Reason(reason string) error {
	return checkText("reason", reason, v.Limits.ReasonMaxLen, false)
}

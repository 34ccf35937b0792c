package utils

import (
	"strings"
	"testing"

	"github.com/itchan-dev/punchcards/backend/internal/errors"
	"github.com/itchan-dev/punchcards/shared/config"
	"github.com/stretchr/testify/assert"
)

var limits = config.Limits{TitleMaxLen: 5, NameMaxLen: 5, ReasonMaxLen: 5, MaxCapacity: 10}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	var vErr *errors.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestCardValidator(t *testing.T) {
	v := &CardValidator{Limits: limits}

	assert.NoError(t, v.Title("Cafe"))
	assert.NoError(t, v.Title("Кофе!"), "length is counted in runes")
	assertValidationError(t, v.Title(""))
	assertValidationError(t, v.Title("   "))
	assertValidationError(t, v.Title(strings.Repeat("a", 6)))

	assert.NoError(t, v.Capacity(1))
	assert.NoError(t, v.Capacity(10))
	assertValidationError(t, v.Capacity(0))
	assertValidationError(t, v.Capacity(-3))
	assertValidationError(t, v.Capacity(11))
}

func TestPersonValidator(t *testing.T) {
	v := &PersonValidator{Limits: limits}

	assert.NoError(t, v.Name("Alice"))
	assertValidationError(t, v.Name(""))
	assertValidationError(t, v.Name("Alexander"))
}

func TestPunchValidator(t *testing.T) {
	v := &PunchValidator{Limits: limits}

	assert.NoError(t, v.Reason(""), "reason may be empty")
	assert.NoError(t, v.Reason("latte"))
	assertValidationError(t, v.Reason("cappuccino"))
}

package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorsCheck(t *testing.T) {
	errs := Errors{}
	assert.True(t, errs.Empty())

	errs.Check("email", nil)
	assert.True(t, errs.Empty())

	errs.Check("email", errors.New("first"))
	errs.Check("email", errors.New("second"))
	errs.Check("day", errors.New("bad day"))

	assert.False(t, errs.Empty())
	assert.Len(t, errs, 2)
	assert.Equal(t, "first", errs["email"])
}

func TestErrorsErrorStableOrder(t *testing.T) {
	errs := Errors{}
	errs.Check("time", errors.New("bad time"))
	errs.Check("activity", errors.New("too long"))
	errs.Check("day", errors.New("bad day"))

	assert.Equal(t, "activity: too long; day: bad day; time: bad time", errs.Error())
}

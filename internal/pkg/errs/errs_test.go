package errs_test

import (
	"errors"
	"testing"

	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	dbDown := errors.New("connection refused")

	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			name:     "product not found",
			err:      errs.NewObjectNotFoundError("slug", "house-coffee"),
			sentinel: errs.ErrObjectNotFound,
			message:  "object not found: house-coffee",
		},
		{
			name:     "cart not found with cause",
			err:      errs.NewObjectNotFoundErrorWithCause("sessionID", "sess-1", dbDown),
			sentinel: errs.ErrObjectNotFound,
			message:  "object not found: param is: sessionID, ID is: sess-1 (cause: connection refused)",
		},
		{
			name:     "invalid quantity",
			err:      errs.NewValueIsInvalidError("quantity"),
			sentinel: errs.ErrValueIsInvalid,
			message:  "value is invalid: quantity",
		},
		{
			name:     "invalid duration with cause",
			err:      errs.NewValueIsInvalidErrorWithCause("CART_TTL", errors.New("time: missing unit")),
			sentinel: errs.ErrValueIsInvalid,
			message:  "value is invalid: CART_TTL (cause: time: missing unit)",
		},
		{
			name:     "prep time out of range",
			err:      errs.NewValueIsOutOfRangeError("prepTimeMinutes", -3, 0, 240),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is invalid: -3 is prepTimeMinutes, min value is 0, max value is 240",
		},
		{
			name:     "selection count out of range with cause",
			err:      errs.NewValueIsOutOfRangeErrorWithCause("maxSelections", 4, 1, 3, errors.New("group size")),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is invalid: 4 is maxSelections, min value is 1, max value is 3 (cause: group size)",
		},
		{
			name:     "missing session",
			err:      errs.NewValueIsRequiredError("sessionID"),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: sessionID",
		},
		{
			name:     "missing secret with cause",
			err:      errs.NewValueIsRequiredErrorWithCause("STAFF_TOKEN_SECRET", errors.New("serve needs it")),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: STAFF_TOKEN_SECRET (cause: serve needs it)",
		},
		{
			name:     "stale order",
			err:      errs.NewVersionIsInvalidError("order"),
			sentinel: errs.ErrVersionIsInvalid,
			message:  "version is invalid: order",
		},
		{
			name:     "stale cart with cause",
			err:      errs.NewVersionIsInvalidErrorWithCause("cart", errors.New("0 rows updated")),
			sentinel: errs.ErrVersionIsInvalid,
			message:  "version is invalid: cart (cause: 0 rows updated)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, tt.err, tt.message)
			assert.ErrorIs(t, tt.err, tt.sentinel)
		})
	}
}

func TestErrorFields(t *testing.T) {
	cause := errors.New("boom")

	notFound := errs.NewObjectNotFoundErrorWithCause("orderID", "ord-7", cause)
	assert.Equal(t, "orderID", notFound.ParamName)
	assert.Equal(t, "ord-7", notFound.ID)
	assert.Same(t, cause, notFound.Cause)

	outOfRange := errs.NewValueIsOutOfRangeError("quantity", 0, 1, 99)
	assert.Equal(t, 0, outOfRange.Value)
	assert.Equal(t, 1, outOfRange.Min)
	assert.Equal(t, 99, outOfRange.Max)
	assert.NoError(t, outOfRange.Cause)
}

func TestOutOfRangeFlattensNewlines(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("notes", "extra\nhot", 0, 500)

	assert.Contains(t, err.Error(), "extra hot")
	assert.NotContains(t, err.Error(), "\n")
}

func TestErrorsAreDistinguishable(t *testing.T) {
	var err error = errs.NewValueIsRequiredError("customer.name")

	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.NotErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.NotErrorIs(t, err, errs.ErrObjectNotFound)

	var required *errs.ValueIsRequiredError
	if assert.ErrorAs(t, err, &required) {
		assert.Equal(t, "customer.name", required.ParamName)
	}
}

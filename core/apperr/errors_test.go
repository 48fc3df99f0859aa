package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	cases := map[error]int{
		ErrBadRequest:           400,
		ErrUnauthenticated:      401,
		ErrForbidden:            403,
		ErrNotFound:             404,
		ErrConflict:             409,
		ErrInsufficientQuantity: 422,
		ErrStorage:              500,
		errors.New("unknown"):   500,
	}

	for err, want := range cases {
		assert.Equal(t, want, Status(err), err.Error())
	}
}

func TestStatusWrapped(t *testing.T) {
	err := fmt.Errorf("%w: item %q", ErrNotFound, "stimpak")
	assert.Equal(t, 404, Status(err))

	err = Wrap(ErrStorage, errors.New("dial tcp: connection refused"))
	assert.Equal(t, 500, Status(err))
	assert.True(t, errors.Is(err, ErrStorage))
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(ErrStorage, nil))
}

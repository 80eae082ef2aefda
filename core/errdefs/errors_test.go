package errdefs

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestKindsSurviveWrapping(t *testing.T) {
	err := InvalidArgumentf("hour %d", 25)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.False(t, errors.Is(err, ErrIndexOutOfRange))
	assert.Contains(t, err.Error(), "hour 25")

	err = errors.Wrap(IndexOutOfRangef("index %d", 3), "get")
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	assert.Equal(t, "get: index 3: index out of range", err.Error())
}

func TestKind(t *testing.T) {
	assert.Equal(t, "invalid_argument", Kind(errors.Wrap(InvalidArgumentf("x"), "add")))
	assert.Equal(t, "index_out_of_range", Kind(IndexOutOfRangef("i")))
	assert.Equal(t, "capacity_exhausted", Kind(errors.Wrap(ErrCapacityExhausted, "insert")))
	assert.Equal(t, "", Kind(errors.New("other")))
	assert.Equal(t, "", Kind(nil))
}

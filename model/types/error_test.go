package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, Kind(""), KindOf(nil))
	assert.Equal(t, KindNotFound, KindOf(NewNotFoundError("/tmp/missing")))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))

	wrapped := fmt.Errorf("handler: %w", NewAlreadyExistsError("/tmp/dst"))
	assert.Equal(t, KindAlreadyExists, KindOf(wrapped))
	assert.True(t, IsKind(wrapped, KindAlreadyExists))
	assert.False(t, IsKind(wrapped, KindNotFound))
}

func TestCommandErrorUnwrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewLaunchError("top", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "failed to launch top")
}

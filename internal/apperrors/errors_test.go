package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("order %d not found", 7)))
	assert.Equal(t, KindInvalidState, KindOf(InvalidState("bad move")))
	assert.Equal(t, KindValidation, KindOf(Validation("bad input")))
	assert.Equal(t, KindUnsupportedContactMethod, KindOf(UnsupportedContactMethod("no email")))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("while sending: %w", InvalidState("order already sent"))
	assert.Equal(t, KindInvalidState, KindOf(err))
	assert.True(t, IsKind(err, KindInvalidState))
}

func TestInternalKeepsCauseButGenericMessage(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal(cause)
	assert.Equal(t, "internal error", err.Error())
	assert.ErrorIs(t, err, cause)
}

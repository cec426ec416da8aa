package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_HamsterAction(t *testing.T) {
	v := GetValidator()

	assert.NoError(t, v.ValidateStruct(ActionRequest{Action: "wheel"}))
	assert.NoError(t, v.ValidateStruct(ActionRequest{Action: "Pet"}))
	assert.Error(t, v.ValidateStruct(ActionRequest{Action: "dance"}))
	assert.Error(t, v.ValidateStruct(ActionRequest{}))
}

func TestFormatValidationError(t *testing.T) {
	err := GetValidator().ValidateStruct(UnequipRequest{Slot: "tail"})
	require.Error(t, err)

	fields := FormatValidationError(err)

	assert.Equal(t, "Must be one of: head face neck body back", fields["slot"])
	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, "Invalid request format", FormatValidationError(errors.New("x"))["error"])
}

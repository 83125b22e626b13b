package validator

import (
	"testing"

	domainerrors "locus/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roleRequest struct {
	Role string `validate:"required,role"`
}

type stateRequest struct {
	State string `validate:"omitempty,asset_state"`
}

func TestRequestValidator(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&roleRequest{Role: "admin"}))
	require.NoError(t, v.Validate(&stateRequest{}))
	require.NoError(t, v.Validate(&stateRequest{State: "Em manutenção"}))

	err := v.Validate(&roleRequest{Role: "owner"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "role role")

	err = v.Validate(&stateRequest{State: "Perdido"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationErrors(t *testing.T) {
	errs := NewValidationErrors("PipelineConfig")
	require.NoError(t, errs.ErrOrNil())

	errs.Add("base.name", ErrMsgFieldRequired)
	errs.Add("base.seed", ErrMsgInvalidInteger)

	err := errs.ErrOrNil()
	require.Error(t, err)
	assert.Equal(t, []string{"base.name", "base.seed"}, errs.Fields())
	assert.Equal(t, "2 validation errors for PipelineConfig\n  base.name: field required\n  base.seed: input should be a valid integer", err.Error())

	var ve *ValidationError
	require.True(t, stderrors.As(err, &ve))
	assert.Equal(t, "base.name", ve.Field)
	assert.True(t, IsValidation(fmt.Errorf("loading: %w", err)))
	assert.False(t, IsParse(err))
}

func TestValidationErrorsSingular(t *testing.T) {
	errs := NewValidationErrors("BaseConfig")
	errs.Add("name", ErrMsgFieldRequired)
	assert.Equal(t, "1 validation error for BaseConfig\n  name: field required", errs.Error())
}

func TestWrappedCauses(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		check  func(error) bool
	}{
		{
			name:   "provision error keeps os cause",
			err:    NewProvisionError("out/run", fs.ErrPermission),
			target: fs.ErrPermission,
			check:  IsProvision,
		},
		{
			name:   "parse error keeps parser cause",
			err:    NewParseError("config.yaml", "yaml", fs.ErrInvalid),
			target: fs.ErrInvalid,
			check:  IsParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.target)
			assert.True(t, tt.check(tt.err))
			assert.False(t, IsValidation(tt.err))
		})
	}
}

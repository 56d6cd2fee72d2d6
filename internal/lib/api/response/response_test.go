package response

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOK(t *testing.T) {
	t.Parallel()

	resp := OK()
	assert.Equal(t, StatusOK, resp.Status)
	assert.Empty(t, resp.Error)
}

func TestError(t *testing.T) {
	t.Parallel()

	resp := Error("something broke")
	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t, "something broke", resp.Error)
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	type request struct {
		Username string `validate:"required"`
		Password string `validate:"required,min=6"`
		Capacity int    `validate:"omitempty,gt=0"`
	}

	err := validator.New().Struct(request{Password: "123", Capacity: -1})

	var validateErr validator.ValidationErrors
	require.ErrorAs(t, err, &validateErr)

	resp := ValidationError(validateErr)
	assert.Equal(t, StatusError, resp.Status)
	assert.Contains(t, resp.Error, "field Username is a required field")
	assert.Contains(t, resp.Error, "field Password is shorter than the minimum length 6")
	assert.Contains(t, resp.Error, "field Capacity must be greater than 0")
}

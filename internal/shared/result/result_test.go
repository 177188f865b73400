package result

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuccess(t *testing.T) {
	res := Success(42)
	assert.True(t, res.IsSuccess())
	assert.Equal(t, 42, res.Data())
	assert.Equal(t, None, res.ErrorType())
	assert.Empty(t, res.ErrorMessage())
}

func TestFailure(t *testing.T) {
	res := Failure[string](NotFound, "Author not found")
	assert.False(t, res.IsSuccess())
	assert.Equal(t, "", res.Data())
	assert.Equal(t, NotFound, res.ErrorType())
	assert.Equal(t, "Author not found", res.ErrorMessage())
}

func TestFailureFrom(t *testing.T) {
	original := Failure[int](Forbidden, "You cannot edit another user's comment")
	converted := FailureFrom[string](original)

	assert.False(t, converted.IsSuccess())
	assert.Equal(t, Forbidden, converted.ErrorType())
	assert.Equal(t, original.ErrorMessage(), converted.ErrorMessage())
}

func TestOK(t *testing.T) {
	res := OK()
	assert.True(t, res.IsSuccess())
}

func TestErrorType_HTTPStatus(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		status    int
	}{
		{None, http.StatusOK},
		{NotFound, http.StatusNotFound},
		{BadRequest, http.StatusBadRequest},
		{Forbidden, http.StatusForbidden},
		{ServerError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.errorType.String(), func(t *testing.T) {
			assert.Equal(t, tt.status, tt.errorType.HTTPStatus())
		})
	}
}

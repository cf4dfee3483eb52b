package validation

import (
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type idParam struct {
	ID string `uri:"id" binding:"required,objectid"`
}

type signup struct {
	Email string `json:"email" binding:"required,email"`
}

func TestObjectIDTag(t *testing.T) {
	Init()
	Init()

	assert.NoError(t, binding.Validator.ValidateStruct(&idParam{ID: "64b7f0c2a1b2c3d4e5f60718"}))

	err := binding.Validator.ValidateStruct(&idParam{ID: "not-an-id"})
	require.Error(t, err)
	assert.Equal(t, map[string]string{"id": "must be a 24 character hex ObjectID"}, ToDetails(err))
}

func TestToDetails(t *testing.T) {
	Init()

	assert.Nil(t, ToDetails(nil))
	assert.Equal(t, map[string]string{"payload": "body is required"}, ToDetails(io.EOF))

	var syn map[string]any
	jsonErr := json.Unmarshal([]byte("{"), &syn)
	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(jsonErr))

	err := binding.Validator.ValidateStruct(&signup{Email: "nope"})
	assert.Equal(t, map[string]string{"email": "must be a valid email"}, ToDetails(err))

	assert.Equal(t, map[string]string{"payload": "invalid payload"}, ToDetails(errors.New("x")))
}

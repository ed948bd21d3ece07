package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexUint64Unmarshal(t *testing.T) {
	var body struct {
		Number FlexUint64 `json:"number"`
		Text   FlexUint64 `json:"text"`
		Null   FlexUint64 `json:"null"`
		Absent FlexUint64 `json:"absent"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"number":7,"text":"42","null":null}`), &body))

	require.NotNil(t, body.Number.Ptr())
	assert.Equal(t, uint64(7), *body.Number.Ptr())
	assert.Equal(t, uint64(42), *body.Text.Ptr())
	assert.False(t, body.Null.IsSet())
	assert.Nil(t, body.Absent.Ptr())
}

func TestFlexUint64RejectsGarbage(t *testing.T) {
	var f FlexUint64
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &f))
	assert.Error(t, json.Unmarshal([]byte(`-1`), &f))
	assert.Error(t, json.Unmarshal([]byte(`true`), &f))
}

func TestFlexUint64Marshal(t *testing.T) {
	out, err := json.Marshal([]FlexUint64{NewFlexUint64(3), {}})
	require.NoError(t, err)
	assert.Equal(t, `[3,null]`, string(out))
}

func TestCustomError(t *testing.T) {
	err := BadRequest("field %q cannot be patched", "id")
	assert.Equal(t, 400, err.Code)
	assert.Equal(t, `field "id" cannot be patched`, err.Message)
	assert.Equal(t, `400: field "id" cannot be patched [type: bad_request]`, err.Error())
	assert.Equal(t, 404, NotFound("gone").Code)
}

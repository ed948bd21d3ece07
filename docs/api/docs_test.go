package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestDocIsRegistered(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var parsed struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))
	assert.Equal(t, "reviewsdb API", parsed.Info.Title)
	for _, path := range []string{"/customer", "/customer/{id}", "/reviews", "/items", "/items/{id}", "/users", "/health"} {
		assert.Contains(t, parsed.Paths, path)
	}
	assert.Contains(t, parsed.Paths["/customer/{id}"], "patch")
}

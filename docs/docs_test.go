package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwaggerInfo_ReadDocEsJSONValido(t *testing.T) {
	var doc struct {
		Info struct {
			Title   string `json:"title"`
			Version string `json:"version"`
		} `json:"info"`
		Paths map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc))

	assert.Equal(t, "categories", doc.Info.Title)
	assert.Equal(t, "v1", doc.Info.Version)
	assert.Contains(t, doc.Paths, "/api/v1/categories")
	assert.Contains(t, doc.Paths, "/api/v1/categories/{id}")
}

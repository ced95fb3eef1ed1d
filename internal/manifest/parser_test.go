package manifest

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_KnownAndExtraKeys(t *testing.T) {
	m, err := Parse([]byte(`{
		"name": "demo",
		"preload": "preload.js",
		"features": [{"code": "x"}],
		"main": "index.html",
		"development": {"main": "http://localhost:5173"}
	}`), "plugin.json")
	require.NoError(t, err)

	assert.Equal(t, "demo", m.Name)
	assert.Equal(t, "preload.js", m.Preload)
	assert.Equal(t, "plugin.json", m.Path)
	assert.JSONEq(t, `[{"code": "x"}]`, string(m.Features))
	assert.Len(t, m.Extra, 2)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"truncated", `{"name": `},
		{"not an object", `["name"]`},
		{"string document", `"plugin"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), "plugin.json")
			var parseErr *ManifestParseError
			assert.ErrorAs(t, err, &parseErr)
		})
	}
}

func TestManifest_MarshalJSONKeepsExtra(t *testing.T) {
	m := &Manifest{
		Name:     "demo",
		Logo:     "/abs/logo.png",
		Features: json.RawMessage(`[]`),
		Extra:    map[string]json.RawMessage{"main": json.RawMessage(`"index.html"`)},
	}

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"demo","logo":"/abs/logo.png","features":[],"main":"index.html"}`, string(data))
}

func TestParse_CoercesNonStringFields(t *testing.T) {
	m, err := Parse([]byte(`{
		"name": "demo",
		"author": {"name": "Jo", "email": "jo@example.com"},
		"version": 1,
		"description": true,
		"logo": ["logo.png"]
	}`), "plugin.json")
	require.NoError(t, err)

	assert.Equal(t, "Jo", m.Author)
	assert.Equal(t, "1", m.Version)
	assert.Empty(t, m.Description)
	assert.Empty(t, m.Logo)
	assert.Empty(t, m.Extra)
}

func TestParse_KnownKeysAreCaseSensitive(t *testing.T) {
	m, err := Parse([]byte(`{"Name": "upper", "NAME": "x"}`), "plugin.json")
	require.NoError(t, err)

	assert.Empty(t, m.Name)
	assert.Len(t, m.Extra, 2)

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Name": "upper", "NAME": "x"}`, string(data))
}

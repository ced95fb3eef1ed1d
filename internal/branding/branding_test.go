package branding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmbeddedValues(t *testing.T) {
	assert.Equal(t, "vpu", CLIName())
	assert.Equal(t, "UTOOLS", EnvPrefix())
	assert.Equal(t, "@ver5/vite-plugin-utools", NPMPackage())
	assert.Contains(t, DocURL(), "u.tools/docs/developer/config.html")
	assert.Equal(t, ".vpu.yaml", ProjectFile())
}

func TestEnvVar(t *testing.T) {
	assert.Equal(t, "UTOOLS_AUTO_TYPE", EnvVar("auto_type"))
}

// Package branding provides compile-time identity values for the CLI.
//
// branding.yaml is baked into the binary with //go:embed; the hard defaults
// below apply when a key is missing from it.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	EnvPrefix   string `yaml:"env_prefix"`
	NPMPackage  string `yaml:"npm_package"`
	DocURL      string `yaml:"doc_url"`
	ProjectFile string `yaml:"project_file"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:     "vpu",
			DisplayName: "vite-plugin-utools",
			Description: "Build helper for uTools plugin manifests",
			EnvPrefix:   "UTOOLS",
			NPMPackage:  "@ver5/vite-plugin-utools",
			DocURL:      "https://www.u.tools/docs/developer/config.html",
			ProjectFile: ".vpu.yaml",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "vpu").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// EnvPrefix returns the environment variable prefix (e.g., "UTOOLS").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// NPMPackage returns the npm package whose ambient types generated
// declaration files reference (e.g., "@ver5/vite-plugin-utools").
func NPMPackage() string { load(); return defaults.NPMPackage }

// DocURL returns the manifest documentation link quoted in configuration errors.
func DocURL() string { load(); return defaults.DocURL }

// ProjectFile returns the per-project options file name (e.g., ".vpu.yaml").
func ProjectFile() string { load(); return defaults.ProjectFile }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("auto_type") → "UTOOLS_AUTO_TYPE".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}

package manifest

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/charmbracelet/log"
)

// scopePrefix is stripped from name when deriving pluginName.
const scopePrefix = "@/"

// descriptorFunc loads the package descriptor on first use.
type descriptorFunc func() (*PackageDescriptor, error)

// requiredField pairs a required key with its emptiness test and the strategy
// used to fill it when empty.
type requiredField struct {
	key     string
	missing func(*Manifest) bool
	fill    func(*Manifest, descriptorFunc) error
}

var requiredFields = []requiredField{
	stringField(KeyName, func(m *Manifest) *string { return &m.Name }),
	{
		key:     KeyPluginName,
		missing: func(m *Manifest) bool { return m.PluginName == "" },
		fill:    derivePluginName,
	},
	stringField(KeyDescription, func(m *Manifest) *string { return &m.Description }),
	stringField(KeyAuthor, func(m *Manifest) *string { return &m.Author }),
	stringField(KeyVersion, func(m *Manifest) *string { return &m.Version }),
	stringField(KeyLogo, func(m *Manifest) *string { return &m.Logo }),
	{
		key:     KeyFeatures,
		missing: func(m *Manifest) bool { return isEmptyValue(m.Features) },
		fill: func(m *Manifest, pkg descriptorFunc) error {
			d, err := pkg()
			if err != nil {
				return err
			}
			m.Features = d.Raw(KeyFeatures)
			return nil
		},
	},
}

// stringField copies the same-named key from the package descriptor.
func stringField(key string, field func(*Manifest) *string) requiredField {
	return requiredField{
		key:     key,
		missing: func(m *Manifest) bool { return *field(m) == "" },
		fill: func(m *Manifest, pkg descriptorFunc) error {
			d, err := pkg()
			if err != nil {
				return err
			}
			*field(m) = d.String(key)
			return nil
		},
	}
}

// derivePluginName builds pluginName from the already filled name.
func derivePluginName(m *Manifest, _ descriptorFunc) error {
	m.PluginName = strings.TrimPrefix(m.Name, scopePrefix)
	return nil
}

// isEmptyValue reports whether raw is absent, null, false, 0 or "".
func isEmptyValue(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return true
	}
	var v any
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return true
	}
	switch val := v.(type) {
	case nil:
		return true
	case bool:
		return !val
	case float64:
		return val == 0
	case string:
		return val == ""
	}
	return false
}

// fillRequired returns a copy of m with every required key filled, or a
// *ConfigurationError naming the first key that stays empty.
func fillRequired(m *Manifest, pkg descriptorFunc, logger *log.Logger) (*Manifest, error) {
	if m.Preload == "" {
		logger.Warn("no preload file specified in manifest")
	}

	out := m.clone()
	for _, f := range requiredFields {
		if f.missing(out) {
			if err := f.fill(out, pkg); err != nil {
				return nil, err
			}
			if !f.missing(out) {
				logger.Debug("filled manifest key", "key", f.key)
			}
		}
		if f.missing(out) {
			return nil, &ConfigurationError{Key: f.key}
		}
	}

	if _, err := semver.NewVersion(strings.TrimPrefix(out.Version, "v")); err != nil {
		logger.Warn("manifest version is not a semantic version", "version", out.Version)
	}
	return out, nil
}

// memoDescriptor wraps load so the descriptor is read at most once.
func memoDescriptor(load descriptorFunc) descriptorFunc {
	var (
		d    *PackageDescriptor
		err  error
		done bool
	)
	return func() (*PackageDescriptor, error) {
		if !done {
			d, err = load()
			done = true
		}
		return d, err
	}
}

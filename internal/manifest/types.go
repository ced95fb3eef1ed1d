package manifest

import (
	"bytes"
	"encoding/json"
)

// Manifest is a parsed plugin.json. After resolution Preload and Logo hold
// absolute filesystem paths.
type Manifest struct {
	Name        string
	PluginName  string
	Description string
	Author      string
	Version     string
	Logo        string
	Preload     string

	// Features is passed through untouched.
	Features json.RawMessage

	// Extra holds every other top-level key (main, homepage, development,
	// pluginSetting, platform, ...) verbatim.
	Extra map[string]json.RawMessage

	// Path is the absolute location the manifest was read from.
	Path string
}

// Manifest keys.
const (
	KeyName        = "name"
	KeyPluginName  = "pluginName"
	KeyDescription = "description"
	KeyAuthor      = "author"
	KeyVersion     = "version"
	KeyLogo        = "logo"
	KeyFeatures    = "features"
	KeyPreload     = "preload"
)

// RequiredKeys lists the keys that must be non-empty after the fallback pass,
// in the order they are checked.
var RequiredKeys = []string{
	KeyName,
	KeyPluginName,
	KeyDescription,
	KeyAuthor,
	KeyVersion,
	KeyLogo,
	KeyFeatures,
}

func isKnownKey(key string) bool {
	switch key {
	case KeyName, KeyPluginName, KeyDescription, KeyAuthor, KeyVersion, KeyLogo, KeyFeatures, KeyPreload:
		return true
	}
	return false
}

// UnmarshalJSON takes the known keys by exact name and keeps the rest in
// Extra. Known string keys holding another JSON type are coerced by
// stringValue; a value that cannot be coerced counts as missing.
func (m *Manifest) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*m = Manifest{
		Name:        stringValue(raw[KeyName]),
		PluginName:  stringValue(raw[KeyPluginName]),
		Description: stringValue(raw[KeyDescription]),
		Author:      stringValue(raw[KeyAuthor]),
		Version:     stringValue(raw[KeyVersion]),
		Logo:        stringValue(raw[KeyLogo]),
		Preload:     stringValue(raw[KeyPreload]),
		Features:    raw[KeyFeatures],
	}
	for k, v := range raw {
		if isKnownKey(k) {
			continue
		}
		if m.Extra == nil {
			m.Extra = make(map[string]json.RawMessage)
		}
		m.Extra[k] = v
	}
	return nil
}

// stringValue coerces a JSON value to a string field: strings as is,
// numbers by their literal text, and an npm person object ({"name": ...})
// by its name. Anything else yields "".
func stringValue(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}

	var person struct {
		Name string `json:"name"`
	}
	if raw[0] == '{' {
		if err := json.Unmarshal(raw, &person); err == nil {
			return person.Name
		}
	}
	return ""
}

// MarshalJSON writes the known keys and Extra back out as one object.
func (m Manifest) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(m.Extra)+8)
	for k, v := range m.Extra {
		out[k] = v
	}

	strs := []struct {
		key, value string
	}{
		{KeyName, m.Name},
		{KeyPluginName, m.PluginName},
		{KeyDescription, m.Description},
		{KeyAuthor, m.Author},
		{KeyVersion, m.Version},
		{KeyLogo, m.Logo},
		{KeyPreload, m.Preload},
	}
	for _, s := range strs {
		if s.value == "" {
			continue
		}
		b, err := json.Marshal(s.value)
		if err != nil {
			return nil, err
		}
		out[s.key] = b
	}
	if len(m.Features) > 0 {
		out[KeyFeatures] = m.Features
	}
	return json.Marshal(out)
}

// clone returns a copy that does not share Extra or Features with m.
func (m *Manifest) clone() *Manifest {
	c := *m
	if m.Features != nil {
		c.Features = append(json.RawMessage(nil), m.Features...)
	}
	if m.Extra != nil {
		c.Extra = make(map[string]json.RawMessage, len(m.Extra))
		for k, v := range m.Extra {
			c.Extra[k] = v
		}
	}
	return &c
}

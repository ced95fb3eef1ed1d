package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
)

// PackageDescriptor is the project's package.json, consulted read-only for
// values missing from the manifest.
type PackageDescriptor struct {
	fields map[string]json.RawMessage
}

// LoadDescriptor reads package.json at path. A missing file yields an empty
// descriptor; malformed JSON is an error.
func LoadDescriptor(path string) (*PackageDescriptor, error) {
	data, err := readFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &PackageDescriptor{}, nil
	}
	if err != nil {
		return nil, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("parsing package descriptor %s: %w", path, err)
	}
	return &PackageDescriptor{fields: fields}, nil
}

// String returns the value of key coerced to a string (see stringValue), or
// "" when the key is absent.
func (d *PackageDescriptor) String(key string) string {
	return stringValue(d.fields[key])
}

// Raw returns the undecoded value of key, or nil.
func (d *PackageDescriptor) Raw(key string) json.RawMessage {
	return d.fields[key]
}

// Package manifest loads, validates and resolves a uTools plugin.json.
// Required fields missing from the manifest are filled from the project's
// package.json, the preload and logo paths are resolved against the manifest's
// directory, and the result is cached by a Resolver until it is invalidated.
package manifest

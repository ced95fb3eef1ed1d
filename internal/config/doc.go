// Package config manages per-project build options stored in .vpu.yaml in the
// project directory, overridable through UTOOLS_* environment variables and
// command flags.
package config

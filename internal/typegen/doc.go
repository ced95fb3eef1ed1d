// Package typegen renders the preload type declaration file that augments
// the global Window interface, and writes it next to the preload script.
package typegen

// Package types defines the records shared across autokanshi: the physical
// display Output as reported by the compositor, and the result structures
// returned by commands.
package types

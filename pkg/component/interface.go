// Package component defines the shared contract for infrastructure
// component configuration.
package component

import "github.com/spf13/pflag"

// ConfigOptions is the standard interface for component options. It
// provides a unified contract for completing configuration with
// defaults, validating it, and binding command-line flags.
type ConfigOptions interface {
	// Complete fills in any fields not set that are required to have
	// valid data.
	Complete() error

	// Validate validates the options and returns an error if any
	// option is invalid. Call after Complete.
	Validate() error

	// AddFlags adds flags for the options to the specified FlagSet.
	// namePrefix is prepended to flag names to avoid conflicts
	// (e.g. "mongodb." yields --mongodb.host).
	AddFlags(fs *pflag.FlagSet, namePrefix string)
}

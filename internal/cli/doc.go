// Package cli defines the Cobra command tree for the rncreate CLI. The root
// command scaffolds artifacts, either directly from its [kind] [name]
// arguments or through the interactive menu. Each other file adds one
// subcommand (version, config, doctor, list). Commands delegate to internal
// packages for the work and only handle flags, output and prompting.
package cli

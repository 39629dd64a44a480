// Package config manages rncreate settings. User-level values live in
// ~/.rncreate/config.yaml and RNCREATE_* environment variables; a project
// may add an rncreate.yaml next to its package.json, which is validated
// against an embedded JSON Schema before it is merged. Command-line flags
// bound by the cli package take precedence over everything else.
package config

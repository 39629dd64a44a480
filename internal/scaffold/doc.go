// Package scaffold writes React Native artifacts to disk. A single Generator
// type is configured per artifact kind with strategy values (base path
// resolver, template builder, style, barrel kind, success message) and the
// Registry maps each Kind to its configured Generator. HandleCreation is the
// entry point used by the CLI: it validates the kind, normalizes the name and
// runs the generator.
//
// Generation is fail-fast. Files already written when a later step fails are
// left in place.
package scaffold

// Package templates renders the React Native boilerplate for each artifact
// kind. Builders are pure: they take the decapitalized artifact name and
// return the files to write, in the order their progress steps are shown.
// Template bodies live under files/ and are embedded at build time. They use
// [[ ]] delimiters so JSX and TypeScript braces pass through untouched.
package templates

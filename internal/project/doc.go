// Package project inspects the React Native app the CLI runs in. It reads
// package.json and checks that the libraries the generated templates import
// are installed at compatible versions.
package project

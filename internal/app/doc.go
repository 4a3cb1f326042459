// Package app wires application dependencies for the CLI.
//
// It loads Config from an optional TOML file and the environment, then builds
// the path resolver, payload codec, asset readers and record store, exposing
// them via the Wire struct for commands to use.
package app

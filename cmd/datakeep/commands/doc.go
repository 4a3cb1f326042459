// Package commands defines the datakeep CLI and wires dependencies for subcommands.
//
// Commands
//
//   - paths      Print the writable and bundled roots
//   - config     Print the effective configuration
//   - save       Store a JSON document as a record
//   - load       Print a stored record
//   - rm         Delete a record from the writable root
//   - encrypt    Encrypt text with the configured codec
//   - decrypt    Decrypt text with the configured codec
//
// # Implementation
//
// The root command loads configuration (TOML file, then environment, then
// flags) and builds the dependency graph via app.NewWire before any
// subcommand runs, so handlers share one resolver, codec and store.
package commands

// Package cli defines the Cobra command tree for the hulotte CLI. Each file
// in this package registers one top-level command (create, install,
// add-module, etc.) with the root command. Commands only parse flags, pick
// the prompter and printer, and delegate to the internal packages.
package cli

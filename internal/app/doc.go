// Package app wires application dependencies for the CLI.
//
// It loads Config from an optional YAML file, builds the logger and the key
// service from it, and exposes them via the App struct for commands to use.
package app

// Package commands defines the edkey CLI and wires dependencies for subcommands.
//
// Commands
//
//   - keygen   Generate an Ed25519 key pair as PKCS#8 and SPKI files
//   - inspect  Decode key files and print their contents
//   - pubkey   Write the SPKI public key for a private key
//   - convert  Re-encode a private key as PKCS#8 v1 or v2
//
// # Implementation
//
// The root command loads the YAML config, builds the logger and the key
// service before any subcommand runs, so handlers share one app context.
// Flags override config values.
package commands

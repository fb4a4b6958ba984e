// Package driving defines the interfaces the core offers to external actors.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// The CLI and TUI adapters call core services through these interfaces.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driving

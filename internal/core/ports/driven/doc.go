// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - PathEnumerator: Walks a directory tree and yields candidate files
//   - ContentClassifier: Decides whether a candidate is binary
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - ConfigStore: Application configuration. Without it, built-in
//     exclusion and binary tables are used.
//   - EditorLauncher: Opens matched files in an external editor. Without
//     it, the result listing is the final output.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven

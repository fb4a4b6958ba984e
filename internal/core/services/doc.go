// Package services implements the driving port interfaces.
// Services contain the core business logic: the bounded worker pool,
// per-file matching, result aggregation and replacement previews,
// orchestrating calls to driven ports (adapters).
package services

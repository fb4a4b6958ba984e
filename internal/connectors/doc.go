// Package connectors provides the infrastructure that feeds candidates to
// the core. Each connector knows how to discover and classify files from a
// specific source; the filesystem connector walks the local directory tree.
package connectors

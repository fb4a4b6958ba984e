// Package filesystem implements the driven ports that touch the local
// filesystem: the path enumerator that walks a directory tree and the
// content classifier that keeps binary files out of a scan.
//
// Exclusion and binary-extension tables are injected at construction, not
// package state, so tests can override them.
package filesystem

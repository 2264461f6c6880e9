// Package catalog defines the immutable in-memory movie table the command
// handlers read from.
//
// A Catalog is built once at startup from the processed catalog store and is
// never mutated afterwards, so it is safe to share across concurrently
// handled chat commands without locking.
package catalog

// Package daemon coordinates the bot's background services and enforces
// single-instance execution via a file lock.
package daemon

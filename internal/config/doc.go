// Package config loads, normalizes, and validates the TOML configuration
// shared by the cinebob CLI and the cinebobd daemon.
package config
